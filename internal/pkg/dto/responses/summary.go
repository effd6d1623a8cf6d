package responses

import (
	"preop-service/internal/pkg/asa"
	"time"
)

// QuestionnaireSummary is the data set a clinical report is rendered from.
type QuestionnaireSummary struct {
	ID             string             `json:"id"`
	SubmittedAt    time.Time          `json:"submitted_at"`
	GeneratedAt    time.Time          `json:"generated_at"`
	Reviewed       bool               `json:"reviewed"`
	Patient        SummaryPatient     `json:"patient"`
	Metrics        SummaryMetrics     `json:"metrics"`
	Risk           RiskBadge          `json:"risk"`
	EmotionalState string             `json:"emotional_state"`
	History        SummaryHistory     `json:"history"`
	Medications    SummaryMedications `json:"medications"`
	Physician      PhysicianNotes     `json:"physician"`
}

type SummaryPatient struct {
	FullName      string `json:"full_name"`
	NationalID    string `json:"national_id"`
	BirthDate     string `json:"birth_date"`
	Age           *int   `json:"age"`
	Gender        string `json:"gender,omitempty"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Procedure     string `json:"procedure"`
	ProcedureDate string `json:"procedure_date,omitempty"`
}

// BMI is rounded to one decimal; BMIAvailable is false when the answers
// could not produce a value.
type SummaryMetrics struct {
	WeightKg        string              `json:"weight_kg"`
	HeightCm        string              `json:"height_cm"`
	BMI             float64             `json:"bmi"`
	BMIAvailable    bool                `json:"bmi_available"`
	FunctionalLevel int                 `json:"functional_level"`
	FunctionalClass asa.FunctionalClass `json:"functional_class"`
	Activities      []string            `json:"activities"`
}

type SummaryHistory struct {
	FirstSurgery       bool     `json:"first_surgery"`
	AnesthesiaProblems []string `json:"anesthesia_problems"`
	OtherProblems      string   `json:"other_problems,omitempty"`
	Pacemaker          bool     `json:"pacemaker"`
	CPAP               bool     `json:"cpap"`
	BleedingDisorder   bool     `json:"bleeding_disorder"`
	BleedingDetails    string   `json:"bleeding_details,omitempty"`
	Smoker             string   `json:"smoker"`
	Alcohol            string   `json:"alcohol"`
	Drugs              bool     `json:"drugs"`
	DrugDetails        string   `json:"drug_details,omitempty"`
	Conditions         []string `json:"conditions"`
	Allergies          string   `json:"allergies,omitempty"`
}

type SummaryMedications struct {
	TakesMedicationRegularly bool                      `json:"takes_medication_regularly"`
	Medications              []QuestionnaireMedication `json:"medications"`
	AdverseReaction          string                    `json:"adverse_reaction,omitempty"`
}
