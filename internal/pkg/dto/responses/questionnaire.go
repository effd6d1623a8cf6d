package responses

import (
	"preop-service/internal/pkg/asa"
	"time"
)

// RiskBadge is computed on read and never persisted.
type RiskBadge struct {
	Category    asa.Category `json:"category"`
	Description string       `json:"description"`
	Determined  bool         `json:"determined"`
}

type QuestionnaireListItem struct {
	ID            string    `json:"id"`
	PatientName   string    `json:"patient_name"`
	Email         string    `json:"email"`
	Procedure     string    `json:"procedure"`
	ProcedureDate string    `json:"procedure_date,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Reviewed      bool      `json:"reviewed"`
	Risk          RiskBadge `json:"risk"`
}

type Questionnaire struct {
	ID          string                   `json:"id"`
	PatientID   string                   `json:"patient_id,omitempty"`
	PatientName string                   `json:"patient_name"`
	Email       string                   `json:"email"`
	SubmittedAt time.Time                `json:"submitted_at"`
	Reviewed    bool                     `json:"reviewed"`
	Personal    QuestionnairePersonal    `json:"personal"`
	History     QuestionnaireHistory     `json:"history"`
	Medications QuestionnaireMedications `json:"medications"`
	Physician   PhysicianNotes           `json:"physician"`
	Risk        RiskBadge                `json:"risk"`
}

type QuestionnairePersonal struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	NationalID         string   `json:"national_id"`
	BirthDate          string   `json:"birth_date"`
	Gender             string   `json:"gender,omitempty"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email"`
	Procedure          string   `json:"procedure"`
	ProcedureDate      string   `json:"procedure_date,omitempty"`
	EmotionalState     string   `json:"emotional_state"`
	PhysicalActivities []string `json:"physical_activities"`
	WeightKg           string   `json:"weight_kg"`
	HeightCm           string   `json:"height_cm"`
}

type QuestionnaireHistory struct {
	FirstSurgery           string   `json:"first_surgery"`
	AnesthesiaProblems     string   `json:"anesthesia_problems,omitempty"`
	AnesthesiaProblemTypes []string `json:"anesthesia_problem_types"`
	OtherProblems          string   `json:"other_problems,omitempty"`
	Pacemaker              string   `json:"pacemaker"`
	CPAP                   string   `json:"cpap"`
	BleedingDisorder       string   `json:"bleeding_disorder"`
	BleedingDetails        string   `json:"bleeding_details,omitempty"`
	Smoker                 string   `json:"smoker"`
	Alcohol                string   `json:"alcohol"`
	Drugs                  string   `json:"drugs"`
	DrugDetails            string   `json:"drug_details,omitempty"`
	Conditions             []string `json:"conditions"`
	Allergies              string   `json:"allergies,omitempty"`
}

type QuestionnaireMedications struct {
	TakesMedication   string                    `json:"takes_medication"`
	Medications       []QuestionnaireMedication `json:"medications"`
	AdverseReaction   string                    `json:"adverse_reaction"`
	AdverseMedication string                    `json:"adverse_medication,omitempty"`
	ReactionType      string                    `json:"reaction_type,omitempty"`
	SideEffectDetails string                    `json:"side_effect_details,omitempty"`
}

type QuestionnaireMedication struct {
	Name      string `json:"name"`
	Dose      string `json:"dose,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

type PhysicianNotes struct {
	Treatment    string     `json:"treatment"`
	Observations string     `json:"observations"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type SubmittedQuestionnaire struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Risk        RiskBadge `json:"risk"`
}
