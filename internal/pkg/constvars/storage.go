package constvars

const (
	MongoCollectionQuestionnaires = "questionnaires"
	MongoCollectionMedications    = "medications"
)

const (
	RedisKeyMedicationList             = "medications:list"
	RedisKeyQuestionnaireSummaryFormat = "questionnaires:summary:%s"
)

const (
	EventTypeQuestionnaireSubmitted = "questionnaire.submitted"
	EventTypeQuestionnaireReviewed  = "questionnaire.reviewed"
)
