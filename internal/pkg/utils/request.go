package utils

import (
	"net/http"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"strconv"
	"strings"
)

// BuildPaginationRequest falls back to defaults for missing or invalid values.
func BuildPaginationRequest(r *http.Request) requests.Pagination {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	pageSize, err := strconv.Atoi(query.Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParseOptionalBool returns nil when the parameter is absent.
func ParseOptionalBool(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func BuildMedicationSearchRequest(r *http.Request) requests.MedicationSearch {
	query := r.URL.Query()

	limit, err := strconv.Atoi(query.Get(constvars.URLQueryParamLimit))
	if err != nil || limit <= 0 {
		limit = constvars.DefaultMedicationLimit
	}
	if limit > constvars.MaxMedicationLimit {
		limit = constvars.MaxMedicationLimit
	}

	return requests.MedicationSearch{
		Query: strings.TrimSpace(query.Get(constvars.URLQueryParamSearch)),
		Limit: limit,
	}
}

// RequestBaseURL is the path used to build pagination links.
func RequestBaseURL(r *http.Request) string {
	return r.URL.Path
}
