package models

import (
	"preop-service/internal/pkg/asa"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/responses"
	"preop-service/internal/pkg/utils"
	"strings"
	"time"
)

var emotionalStateLabels = map[string]string{
	"calm":             "Calm and confident",
	"somewhat_nervous": "Somewhat nervous when thinking about it, calm otherwise",
	"very_nervous":     "Very nervous, finds it hard to think about anything else",
}

var anesthesiaProblemLabels = map[string]string{
	"venous_access":     "Difficult venous access",
	"nausea_vomiting":   "Nausea and vomiting on waking",
	"severe_pain":       "Severe pain",
	"prolonged_sleep":   "Prolonged sleep",
	"urinary_retention": "Difficulty urinating",
}

var smokerLabels = map[string]string{
	"yes":    "Smoker",
	"no":     "Non-smoker",
	"former": "Former smoker",
}

var alcoholLabels = map[string]string{
	"never":      "Never",
	"occasional": "Occasionally",
	"regular":    "Regularly",
	"daily":      "Daily",
}

var reactionTypeLabels = map[string]string{
	"allergy":     "allergy",
	"side_effect": "side effect",
}

// ConvertIntoSummary flattens the questionnaire into the data a clinical
// report is rendered from. now anchors the patient age.
func (q *Questionnaire) ConvertIntoSummary(now time.Time) responses.QuestionnaireSummary {
	personal := q.Data.Personal
	history := q.Data.History
	meds := q.Data.Medications
	record := q.IntakeRecord()
	assessment := asa.Assess(record)

	var age *int
	if years, ok := utils.CalculateAge(personal.BirthDate, now); ok {
		age = &years
	}

	activities := make([]string, 0, len(personal.PhysicalActivities))
	for _, raw := range personal.PhysicalActivities {
		activities = append(activities, activityLabel(raw))
	}

	problems := make([]string, 0, len(history.AnesthesiaProblemTypes))
	for _, problem := range history.AnesthesiaProblemTypes {
		problems = append(problems, labelOrRaw(anesthesiaProblemLabels, problem))
	}
	if other := strings.TrimSpace(history.OtherProblems); other != "" && len(problems) == 0 && isYes(history.AnesthesiaProblems) {
		problems = append(problems, other)
	}

	medications := make([]responses.QuestionnaireMedication, 0, len(meds.Medications))
	for _, medication := range meds.Medications {
		medications = append(medications, medication.ConvertIntoResponse())
	}

	return responses.QuestionnaireSummary{
		ID:          q.ID,
		SubmittedAt: q.SubmittedAt,
		GeneratedAt: now,
		Reviewed:    q.Reviewed,
		Patient: responses.SummaryPatient{
			FullName:      q.PatientName,
			NationalID:    personal.NationalID,
			BirthDate:     personal.BirthDate,
			Age:           age,
			Gender:        personal.Gender,
			Phone:         personal.Phone,
			Email:         personal.Email,
			Procedure:     personal.Procedure,
			ProcedureDate: personal.ProcedureDate,
		},
		Metrics: responses.SummaryMetrics{
			WeightKg:        personal.WeightKg,
			HeightCm:        personal.HeightCm,
			BMI:             asa.RoundBMI(assessment.BMI),
			BMIAvailable:    assessment.BMI > 0,
			FunctionalLevel: assessment.FunctionalLevel,
			FunctionalClass: asa.ClassifyFunctional(record.PhysicalActivities),
			Activities:      activities,
		},
		Risk:           newRiskBadge(assessment.Category),
		EmotionalState: labelOrRaw(emotionalStateLabels, personal.EmotionalState),
		History: responses.SummaryHistory{
			FirstSurgery:       isYes(history.FirstSurgery),
			AnesthesiaProblems: problems,
			OtherProblems:      history.OtherProblems,
			Pacemaker:          isYes(history.Pacemaker),
			CPAP:               isYes(history.CPAP),
			BleedingDisorder:   isYes(history.BleedingDisorder),
			BleedingDetails:    history.BleedingDetails,
			Smoker:             labelOrRaw(smokerLabels, history.Smoker),
			Alcohol:            labelOrRaw(alcoholLabels, history.Alcohol),
			Drugs:              isYes(history.Drugs),
			DrugDetails:        history.DrugDetails,
			Conditions:         nonNilStrings(history.Conditions),
			Allergies:          history.Allergies,
		},
		Medications: responses.SummaryMedications{
			TakesMedicationRegularly: q.TakesMedicationRegularly(),
			Medications:              medications,
			AdverseReaction:          adverseReactionText(meds),
		},
		Physician: q.Data.Physician.ConvertIntoResponse(),
	}
}

func activityLabel(raw string) string {
	tag, ok := asa.ParseActivityTag(raw)
	if !ok {
		return raw
	}
	for _, activity := range asa.KnownActivities() {
		if activity.Tag == tag {
			return activity.Description
		}
	}
	return raw
}

// adverseReactionText is empty unless the patient reported a reaction.
func adverseReactionText(meds MedicationData) string {
	if !isYes(meds.AdverseReaction) {
		return ""
	}
	text := strings.TrimSpace(meds.AdverseMedication)
	if kind, ok := reactionTypeLabels[meds.ReactionType]; ok {
		text += " (" + kind + ")"
	}
	if details := strings.TrimSpace(meds.SideEffectDetails); details != "" {
		text += ": " + details
	}
	return strings.TrimSpace(text)
}

func labelOrRaw(labels map[string]string, key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}

func isYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), constvars.AnswerYes)
}
