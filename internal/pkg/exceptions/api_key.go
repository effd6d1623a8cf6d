package exceptions

import "preop-service/internal/pkg/constvars"

func ErrInvalidAPIKey(err error) error {
	return BuildNewCustomError(err, constvars.StatusUnauthorized, "Invalid API key", constvars.ErrDevAPIKeyInvalid)
}

func ErrAPIKeyRequired(err error) error {
	return BuildNewCustomError(err, constvars.StatusUnauthorized, "API key is required", constvars.ErrDevAPIKeyMissing)
}
