package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingIsClientRequestIDKey = "is_client_request_id"
	LoggingDataKey              = "data"
	LoggingQueryParamsKey       = "query_params"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingErrorLocationKey     = "location"

	LoggingQuestionnaireIDKey    = "questionnaire_id"
	LoggingQuestionnaireCountKey = "questionnaire_count"
	LoggingReviewedKey           = "reviewed"
	LoggingASACategoryKey        = "asa_category"
	LoggingFunctionalLevelKey    = "functional_level"
	LoggingMedicationCountKey    = "medication_count"
	LoggingSearchKey             = "search"
	LoggingQueueKey              = "queue"
	LoggingEventTypeKey          = "event_type"
	LoggingRedisKey              = "redis_key"
	LoggingPhysicianAccessKey    = "physician_access"
)
