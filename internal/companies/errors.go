package companies

import (
	"errors"
	"net/http"
)

// Domain errors for company operations.
var (
	ErrNotFound     = errors.New("company not found")
	ErrNameRequired = errors.New("company name is required")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNameRequired) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
