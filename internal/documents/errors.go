package documents

import (
	"errors"
	"net/http"

	"github.com/documenta/docuflow/internal/validation"
)

// Domain errors for document operations.
var (
	ErrNotFound         = errors.New("document not found")
	ErrDuplicateKey     = errors.New("document bucket key already exists")
	ErrMissingFields    = errors.New("missing required fields: company_id, entity, document")
	ErrFileTooLarge     = errors.New("file size exceeds the upload limit")
	ErrUnsupportedMime  = errors.New("mime type not allowed")
	ErrCompanyNotFound  = errors.New("company does not exist")
	ErrEntityNotFound   = errors.New("business entity does not exist")
	ErrNotDownloadable  = errors.New("document is not available for download")
	ErrApproverRequired = errors.New("approver user id is required")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
// Errors raised by the validation workflow fall through to the
// validation package's mapping.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicateKey) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrUnsupportedMime) ||
		errors.Is(err, ErrCompanyNotFound) ||
		errors.Is(err, ErrEntityNotFound) ||
		errors.Is(err, ErrNotDownloadable) ||
		errors.Is(err, ErrApproverRequired) {
		return http.StatusBadRequest
	}
	return validation.MapHTTPStatus(err)
}
