package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"dive":          "contains an invalid item",
	"unique":        "must not contain duplicates",
	"datetime":      "must be a date formatted as %s",
	"activity_tag":  "must be a known activity",
	"measurement":   "must be a positive number",
	"not_future":    "must not be a date in the future",
	"required_if":   "is required when %s is %s",
	"required_with": "is required when %s is present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":           true,
	"max":           true,
	"len":           true,
	"gt":            true,
	"gte":           true,
	"lt":            true,
	"lte":           true,
	"oneof":         true,
	"datetime":      true,
	"required_if":   true,
	"required_with": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientQuestionnaireNotFound         = "questionnaire not found"
	ErrClientInvalidQuestionnaireID        = "questionnaire id is not valid"
)

// Error messages for developers
const (
	ErrDevInvalidInput        = "invalid input"
	ErrDevCannotParseJSON     = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON   = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat       = "invalid %s format"
	ErrDevQueryParamInvalid   = "query parameter %s is invalid"
	ErrDevDocumentNotFound    = "document not found"
	ErrDevMissingRequestID    = "request id missing from context"
	ErrDevQuestionnaireAbsent = "questionnaire with id %s does not exist"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAPIKeyMissing = "physician API key missing"
	ErrDevAPIKeyInvalid = "physician API key invalid"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToCountDocuments   = "failed when do count documents on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitMQ queue %s"
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitMQ channel"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanicRecovered   = "panic recovered while serving request"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
