package requests

type SubmitQuestionnaire struct {
	PatientID   string                   `json:"patient_id" validate:"max=64"`
	Personal    QuestionnairePersonal    `json:"personal"`
	History     QuestionnaireHistory     `json:"history"`
	Medications QuestionnaireMedications `json:"medications"`
}

// WeightKg and HeightCm stay free text, the risk engine copes with bad answers.
type QuestionnairePersonal struct {
	FirstName          string   `json:"first_name" validate:"required,max=100"`
	LastName           string   `json:"last_name" validate:"required,max=150"`
	NationalID         string   `json:"national_id" validate:"required,max=20"`
	BirthDate          string   `json:"birth_date" validate:"required,datetime=2006-01-02,not_future"`
	Gender             string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone              string   `json:"phone" validate:"required,max=20"`
	Email              string   `json:"email" validate:"required,email"`
	Procedure          string   `json:"procedure" validate:"required,max=200"`
	ProcedureDate      string   `json:"procedure_date" validate:"omitempty,datetime=2006-01-02"`
	EmotionalState     string   `json:"emotional_state" validate:"required,oneof=calm somewhat_nervous very_nervous"`
	PhysicalActivities []string `json:"physical_activities" validate:"unique,dive,activity_tag"`
	WeightKg           string   `json:"weight_kg" validate:"max=20"`
	HeightCm           string   `json:"height_cm" validate:"max=20"`
}

type QuestionnaireHistory struct {
	FirstSurgery           string   `json:"first_surgery" validate:"required,oneof=yes no"`
	AnesthesiaProblems     string   `json:"anesthesia_problems" validate:"omitempty,oneof=yes no"`
	AnesthesiaProblemTypes []string `json:"anesthesia_problem_types" validate:"unique,dive,oneof=venous_access nausea_vomiting severe_pain prolonged_sleep urinary_retention"`
	OtherProblems          string   `json:"other_problems" validate:"max=500"`
	Pacemaker              string   `json:"pacemaker" validate:"required,oneof=yes no"`
	CPAP                   string   `json:"cpap" validate:"required,oneof=yes no"`
	BleedingDisorder       string   `json:"bleeding_disorder" validate:"required,oneof=yes no"`
	BleedingDetails        string   `json:"bleeding_details" validate:"max=500"`
	Smoker                 string   `json:"smoker" validate:"required,oneof=yes no former"`
	Alcohol                string   `json:"alcohol" validate:"required,oneof=never occasional regular daily"`
	Drugs                  string   `json:"drugs" validate:"required,oneof=yes no"`
	DrugDetails            string   `json:"drug_details" validate:"max=500"`
	Conditions             []string `json:"conditions" validate:"dive,max=100"`
	Allergies              string   `json:"allergies" validate:"max=500"`
}

type QuestionnaireMedications struct {
	TakesMedication   string                    `json:"takes_medication" validate:"required,oneof=yes no"`
	Medications       []QuestionnaireMedication `json:"medications" validate:"dive"`
	AdverseReaction   string                    `json:"adverse_reaction" validate:"required,oneof=yes no"`
	AdverseMedication string                    `json:"adverse_medication" validate:"required_if=AdverseReaction yes,max=200"`
	ReactionType      string                    `json:"reaction_type" validate:"omitempty,oneof=allergy side_effect"`
	SideEffectDetails string                    `json:"side_effect_details" validate:"max=500"`
}

type QuestionnaireMedication struct {
	Name      string `json:"name" validate:"required,max=200"`
	Dose      string `json:"dose" validate:"max=100"`
	Frequency string `json:"frequency" validate:"max=100"`
}

type ReviewQuestionnaire struct {
	Reviewed *bool `json:"reviewed" validate:"required"`
}

type UpdateTreatment struct {
	Treatment    string `json:"treatment" validate:"max=5000"`
	Observations string `json:"observations" validate:"max=5000"`
}

type QuestionnaireFilter struct {
	Reviewed *bool
	Pagination
}
