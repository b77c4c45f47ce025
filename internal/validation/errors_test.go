package validation_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/documenta/docuflow/internal/validation"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not authorized", validation.ErrNotAuthorized, http.StatusForbidden},
		{"flow not active", validation.ErrFlowNotActive, http.StatusBadRequest},
		{"step not pending", validation.ErrStepNotPending, http.StatusBadRequest},
		{"reason required", validation.ErrReasonRequired, http.StatusBadRequest},
		{"invalid steps", validation.ErrInvalidSteps, http.StatusBadRequest},
		{"wrapped not authorized", fmt.Errorf("approve: %w", validation.ErrNotAuthorized), http.StatusForbidden},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validation.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
