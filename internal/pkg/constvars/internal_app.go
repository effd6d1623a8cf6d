package constvars

type ContextKey string

const (
	ResourceQuestionnaires      = "questionnaires"
	ResourceRiskClassifications = "risk-classifications"
	ResourceActivities          = "activities"
	ResourceMedications         = "medications"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppEnvProduction       = "production"
	AppEnvDevelopment      = "development"
	AppDateLayout          = "2006-01-02"
)

const (
	DefaultPage               = 1
	DefaultPageSize           = 20
	MaxPageSize               = 100
	DefaultMedicationLimit    = 10
	MaxMedicationLimit        = 50
	MinMedicationSearchLength = 2
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PHYSICIAN_ACCESS_KEY     ContextKey = "physician_access"
)

const (
	REQUEST_ID_PREFIX = "PREOP_SVC_"
)

// Yes/no answers as stored in questionnaire documents.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)
