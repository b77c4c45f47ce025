package validation

import (
	"errors"
	"net/http"
)

// Domain errors for validation flow operations.
var (
	ErrFlowNotActive  = errors.New("validation flow is not enabled")
	ErrNotAuthorized  = errors.New("user is not authorized to act on this document")
	ErrStepNotPending = errors.New("validation step is not pending")
	ErrReasonRequired = errors.New("reason is required for rejection")
	ErrInvalidSteps   = errors.New("validation flow requires at least one step")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
// Authorization failures are distinguished from validation failures so
// clients can tell "wrong user" from "bad request".
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotAuthorized) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrFlowNotActive) ||
		errors.Is(err, ErrStepNotPending) ||
		errors.Is(err, ErrReasonRequired) ||
		errors.Is(err, ErrInvalidSteps) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
