package models

import (
	"preop-service/internal/pkg/asa"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
	"strings"
	"time"
)

type Questionnaire struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	PatientID   string            `json:"patientId,omitempty" bson:"patientId,omitempty"`
	PatientName string            `json:"patientName" bson:"patientName"`
	Email       string            `json:"email" bson:"email"`
	SubmittedAt time.Time         `json:"submittedAt" bson:"submittedAt"`
	Reviewed    bool              `json:"reviewed" bson:"reviewed"`
	Data        QuestionnaireData `json:"data" bson:"data"`
	TimeModel   `bson:",inline"`
}

type QuestionnaireData struct {
	Personal    PersonalData   `json:"personal" bson:"personal"`
	History     MedicalHistory `json:"history" bson:"history"`
	Medications MedicationData `json:"medications" bson:"medications"`
	Physician   PhysicianNotes `json:"physician" bson:"physician"`
}

type PersonalData struct {
	FirstName          string   `json:"firstName" bson:"firstName"`
	LastName           string   `json:"lastName" bson:"lastName"`
	NationalID         string   `json:"nationalId" bson:"nationalId"`
	BirthDate          string   `json:"birthDate" bson:"birthDate"`
	Gender             string   `json:"gender,omitempty" bson:"gender,omitempty"`
	Phone              string   `json:"phone" bson:"phone"`
	Email              string   `json:"email" bson:"email"`
	Procedure          string   `json:"procedure" bson:"procedure"`
	ProcedureDate      string   `json:"procedureDate,omitempty" bson:"procedureDate,omitempty"`
	EmotionalState     string   `json:"emotionalState" bson:"emotionalState"`
	PhysicalActivities []string `json:"physicalActivities" bson:"physicalActivities"`
	WeightKg           string   `json:"weightKg" bson:"weightKg"`
	HeightCm           string   `json:"heightCm" bson:"heightCm"`
}

type MedicalHistory struct {
	FirstSurgery           string   `json:"firstSurgery" bson:"firstSurgery"`
	AnesthesiaProblems     string   `json:"anesthesiaProblems,omitempty" bson:"anesthesiaProblems,omitempty"`
	AnesthesiaProblemTypes []string `json:"anesthesiaProblemTypes" bson:"anesthesiaProblemTypes"`
	OtherProblems          string   `json:"otherProblems,omitempty" bson:"otherProblems,omitempty"`
	Pacemaker              string   `json:"pacemaker" bson:"pacemaker"`
	CPAP                   string   `json:"cpap" bson:"cpap"`
	BleedingDisorder       string   `json:"bleedingDisorder" bson:"bleedingDisorder"`
	BleedingDetails        string   `json:"bleedingDetails,omitempty" bson:"bleedingDetails,omitempty"`
	Smoker                 string   `json:"smoker" bson:"smoker"`
	Alcohol                string   `json:"alcohol" bson:"alcohol"`
	Drugs                  string   `json:"drugs" bson:"drugs"`
	DrugDetails            string   `json:"drugDetails,omitempty" bson:"drugDetails,omitempty"`
	Conditions             []string `json:"conditions" bson:"conditions"`
	Allergies              string   `json:"allergies,omitempty" bson:"allergies,omitempty"`
}

type MedicationData struct {
	TakesMedication   string            `json:"takesMedication" bson:"takesMedication"`
	Medications       []MedicationEntry `json:"medications" bson:"medications"`
	AdverseReaction   string            `json:"adverseReaction" bson:"adverseReaction"`
	AdverseMedication string            `json:"adverseMedication,omitempty" bson:"adverseMedication,omitempty"`
	ReactionType      string            `json:"reactionType,omitempty" bson:"reactionType,omitempty"`
	SideEffectDetails string            `json:"sideEffectDetails,omitempty" bson:"sideEffectDetails,omitempty"`
}

type MedicationEntry struct {
	Name      string `json:"name" bson:"name"`
	Dose      string `json:"dose,omitempty" bson:"dose,omitempty"`
	Frequency string `json:"frequency,omitempty" bson:"frequency,omitempty"`
}

type PhysicianNotes struct {
	Treatment    string     `json:"treatment" bson:"treatment"`
	Observations string     `json:"observations" bson:"observations"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// NewQuestionnaire builds a pending, unreviewed submission with empty
// physician notes.
func NewQuestionnaire(request *requests.SubmitQuestionnaire, submittedAt time.Time) *Questionnaire {
	personal := request.Personal
	history := request.History
	meds := request.Medications

	medications := make([]MedicationEntry, 0, len(meds.Medications))
	for _, medication := range meds.Medications {
		medications = append(medications, MedicationEntry{
			Name:      strings.TrimSpace(medication.Name),
			Dose:      strings.TrimSpace(medication.Dose),
			Frequency: strings.TrimSpace(medication.Frequency),
		})
	}

	questionnaire := &Questionnaire{
		PatientID:   request.PatientID,
		PatientName: strings.TrimSpace(personal.FirstName + " " + personal.LastName),
		Email:       personal.Email,
		SubmittedAt: submittedAt,
		Reviewed:    false,
		Data: QuestionnaireData{
			Personal: PersonalData{
				FirstName:          personal.FirstName,
				LastName:           personal.LastName,
				NationalID:         personal.NationalID,
				BirthDate:          personal.BirthDate,
				Gender:             personal.Gender,
				Phone:              personal.Phone,
				Email:              personal.Email,
				Procedure:          personal.Procedure,
				ProcedureDate:      personal.ProcedureDate,
				EmotionalState:     personal.EmotionalState,
				PhysicalActivities: nonNilStrings(personal.PhysicalActivities),
				WeightKg:           personal.WeightKg,
				HeightCm:           personal.HeightCm,
			},
			History: MedicalHistory{
				FirstSurgery:           history.FirstSurgery,
				AnesthesiaProblems:     history.AnesthesiaProblems,
				AnesthesiaProblemTypes: nonNilStrings(history.AnesthesiaProblemTypes),
				OtherProblems:          history.OtherProblems,
				Pacemaker:              history.Pacemaker,
				CPAP:                   history.CPAP,
				BleedingDisorder:       history.BleedingDisorder,
				BleedingDetails:        history.BleedingDetails,
				Smoker:                 history.Smoker,
				Alcohol:                history.Alcohol,
				Drugs:                  history.Drugs,
				DrugDetails:            history.DrugDetails,
				Conditions:             nonNilStrings(history.Conditions),
				Allergies:              history.Allergies,
			},
			Medications: MedicationData{
				TakesMedication:   meds.TakesMedication,
				Medications:       medications,
				AdverseReaction:   meds.AdverseReaction,
				AdverseMedication: meds.AdverseMedication,
				ReactionType:      meds.ReactionType,
				SideEffectDetails: meds.SideEffectDetails,
			},
			Physician: PhysicianNotes{},
		},
	}
	questionnaire.SetCreatedAtUpdatedAt(submittedAt)
	return questionnaire
}

// TakesMedicationRegularly is true only for an explicit "yes".
func (q *Questionnaire) TakesMedicationRegularly() bool {
	return strings.EqualFold(strings.TrimSpace(q.Data.Medications.TakesMedication), constvars.AnswerYes)
}

func (q *Questionnaire) IntakeRecord() *asa.IntakeRecord {
	activities := make([]asa.ActivityTag, 0, len(q.Data.Personal.PhysicalActivities))
	for _, activity := range q.Data.Personal.PhysicalActivities {
		activities = append(activities, asa.ActivityTag(activity))
	}
	return &asa.IntakeRecord{
		WeightKg:                 q.Data.Personal.WeightKg,
		HeightCm:                 q.Data.Personal.HeightCm,
		TakesMedicationRegularly: q.TakesMedicationRegularly(),
		PhysicalActivities:       activities,
	}
}

func (q *Questionnaire) RiskBadge() responses.RiskBadge {
	return newRiskBadge(asa.Classify(q.IntakeRecord()))
}

func newRiskBadge(category asa.Category) responses.RiskBadge {
	return responses.RiskBadge{
		Category:    category,
		Description: asa.Describe(category),
		Determined:  category.Determined(),
	}
}

func (q *Questionnaire) ConvertIntoListItem() responses.QuestionnaireListItem {
	return responses.QuestionnaireListItem{
		ID:            q.ID,
		PatientName:   q.PatientName,
		Email:         q.Email,
		Procedure:     q.Data.Personal.Procedure,
		ProcedureDate: q.Data.Personal.ProcedureDate,
		SubmittedAt:   q.SubmittedAt,
		Reviewed:      q.Reviewed,
		Risk:          q.RiskBadge(),
	}
}

func (q *Questionnaire) ConvertIntoResponse() responses.Questionnaire {
	personal := q.Data.Personal
	history := q.Data.History
	meds := q.Data.Medications

	medications := make([]responses.QuestionnaireMedication, 0, len(meds.Medications))
	for _, medication := range meds.Medications {
		medications = append(medications, medication.ConvertIntoResponse())
	}

	return responses.Questionnaire{
		ID:          q.ID,
		PatientID:   q.PatientID,
		PatientName: q.PatientName,
		Email:       q.Email,
		SubmittedAt: q.SubmittedAt,
		Reviewed:    q.Reviewed,
		Personal: responses.QuestionnairePersonal{
			FirstName:          personal.FirstName,
			LastName:           personal.LastName,
			NationalID:         personal.NationalID,
			BirthDate:          personal.BirthDate,
			Gender:             personal.Gender,
			Phone:              personal.Phone,
			Email:              personal.Email,
			Procedure:          personal.Procedure,
			ProcedureDate:      personal.ProcedureDate,
			EmotionalState:     personal.EmotionalState,
			PhysicalActivities: nonNilStrings(personal.PhysicalActivities),
			WeightKg:           personal.WeightKg,
			HeightCm:           personal.HeightCm,
		},
		History: responses.QuestionnaireHistory{
			FirstSurgery:           history.FirstSurgery,
			AnesthesiaProblems:     history.AnesthesiaProblems,
			AnesthesiaProblemTypes: nonNilStrings(history.AnesthesiaProblemTypes),
			OtherProblems:          history.OtherProblems,
			Pacemaker:              history.Pacemaker,
			CPAP:                   history.CPAP,
			BleedingDisorder:       history.BleedingDisorder,
			BleedingDetails:        history.BleedingDetails,
			Smoker:                 history.Smoker,
			Alcohol:                history.Alcohol,
			Drugs:                  history.Drugs,
			DrugDetails:            history.DrugDetails,
			Conditions:             nonNilStrings(history.Conditions),
			Allergies:              history.Allergies,
		},
		Medications: responses.QuestionnaireMedications{
			TakesMedication:   meds.TakesMedication,
			Medications:       medications,
			AdverseReaction:   meds.AdverseReaction,
			AdverseMedication: meds.AdverseMedication,
			ReactionType:      meds.ReactionType,
			SideEffectDetails: meds.SideEffectDetails,
		},
		Physician: q.Data.Physician.ConvertIntoResponse(),
		Risk:      q.RiskBadge(),
	}
}

func (m MedicationEntry) ConvertIntoResponse() responses.QuestionnaireMedication {
	return responses.QuestionnaireMedication{
		Name:      m.Name,
		Dose:      m.Dose,
		Frequency: m.Frequency,
	}
}

func (p PhysicianNotes) ConvertIntoResponse() responses.PhysicianNotes {
	return responses.PhysicianNotes{
		Treatment:    p.Treatment,
		Observations: p.Observations,
		UpdatedAt:    p.UpdatedAt,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
