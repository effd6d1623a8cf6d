package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Questionnaire messages
	SubmitQuestionnaireSuccessMessage     = "questionnaire submitted successfully"
	GetQuestionnairesSuccessMessage       = "get questionnaires successfully"
	GetQuestionnaireSuccessMessage        = "get questionnaire successfully"
	GetQuestionnaireSummarySuccessMessage = "get questionnaire summary successfully"
	ReviewQuestionnaireSuccessMessage     = "questionnaire review status updated successfully"
	UpdateTreatmentSuccessMessage         = "treatment updated successfully"

	// Classification messages
	ClassifyRiskSuccessMessage  = "risk classified successfully"
	GetActivitiesSuccessMessage = "get activities successfully"

	// Medication messages
	GetMedicationsSuccessMessage = "get medications successfully"
)
