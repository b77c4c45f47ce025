package entities

import (
	"errors"
	"net/http"
)

// Domain errors for business entity operations.
var (
	ErrNotFound        = errors.New("business entity not found")
	ErrInvalidType     = errors.New("invalid entity type")
	ErrCompanyNotFound = errors.New("company not found")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidType) || errors.Is(err, ErrCompanyNotFound) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
