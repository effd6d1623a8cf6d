package constvars

const (
	URLParamQuestionnaireID = "questionnaire_id"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamLimit    = "limit"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamReviewed = "reviewed"
)
