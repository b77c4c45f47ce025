package documents_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/documenta/docuflow/internal/documents"
	"github.com/documenta/docuflow/internal/validation"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", documents.ErrNotFound, http.StatusNotFound},
		{"duplicate key", documents.ErrDuplicateKey, http.StatusConflict},
		{"file too large", documents.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"missing fields", documents.ErrMissingFields, http.StatusBadRequest},
		{"unsupported mime", documents.ErrUnsupportedMime, http.StatusBadRequest},
		{"company not found", documents.ErrCompanyNotFound, http.StatusBadRequest},
		{"entity not found", documents.ErrEntityNotFound, http.StatusBadRequest},
		{"not downloadable", documents.ErrNotDownloadable, http.StatusBadRequest},
		{"approver required", documents.ErrApproverRequired, http.StatusBadRequest},
		{"workflow authorization", validation.ErrNotAuthorized, http.StatusForbidden},
		{"workflow step not pending", validation.ErrStepNotPending, http.StatusBadRequest},
		{"wrapped duplicate", fmt.Errorf("create: %w", documents.ErrDuplicateKey), http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := documents.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
