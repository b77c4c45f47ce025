package validation_test

import (
	"errors"
	"testing"

	"github.com/documenta/docuflow/internal/validation"
	"github.com/google/uuid"
)

func activeFlow() *validation.Flow {
	return &validation.Flow{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Enabled:    true,
	}
}

func makeSteps(statuses ...validation.Status) []validation.Step {
	steps := make([]validation.Step, len(statuses))
	for i, status := range statuses {
		steps[i] = validation.Step{
			ID:         uuid.New(),
			Order:      i + 1,
			ApproverID: approver(i + 1),
			Status:     status,
		}
	}
	return steps
}

func approver(order int) string {
	return "user-" + string(rune('0'+order))
}

func TestDecideApprove(t *testing.T) {
	tests := []struct {
		name        string
		statuses    []validation.Status
		approverID  string
		wantThrough int
		wantResolve bool
		wantOutcome string
	}{
		{
			"first of three approves own step",
			[]validation.Status{validation.StatusPending, validation.StatusPending, validation.StatusPending},
			approver(1),
			1, false, validation.OutcomeStepApproved,
		},
		{
			"middle approver cascades earlier pending steps",
			[]validation.Status{validation.StatusPending, validation.StatusPending, validation.StatusPending},
			approver(2),
			2, false, validation.OutcomeStepApproved,
		},
		{
			"final approver resolves the document",
			[]validation.Status{validation.StatusApproved, validation.StatusApproved, validation.StatusPending},
			approver(3),
			3, true, validation.OutcomeDocumentApproved,
		},
		{
			"final approver cascades over pending predecessors",
			[]validation.Status{validation.StatusPending, validation.StatusPending, validation.StatusPending},
			approver(3),
			3, true, validation.OutcomeDocumentApproved,
		},
		{
			"single step flow resolves immediately",
			[]validation.Status{validation.StatusPending},
			approver(1),
			1, true, validation.OutcomeDocumentApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := makeSteps(tt.statuses...)
			got, err := validation.DecideApprove(activeFlow(), steps, tt.approverID, "")
			if err != nil {
				t.Fatalf("DecideApprove() error = %v, want nil", err)
			}
			if got.ApproveThrough != tt.wantThrough {
				t.Errorf("ApproveThrough = %d, want %d", got.ApproveThrough, tt.wantThrough)
			}
			if got.Resolved != tt.wantResolve {
				t.Errorf("Resolved = %v, want %v", got.Resolved, tt.wantResolve)
			}
			if got.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %q, want %q", got.Outcome, tt.wantOutcome)
			}
			if tt.wantResolve && got.DocumentStatus != validation.StatusApproved {
				t.Errorf("DocumentStatus = %q, want %q", got.DocumentStatus, validation.StatusApproved)
			}
			if got.RejectOrder != 0 {
				t.Errorf("RejectOrder = %d, want 0 on approve path", got.RejectOrder)
			}
		})
	}
}

func TestDecideApprove_Errors(t *testing.T) {
	tests := []struct {
		name       string
		flow       *validation.Flow
		statuses   []validation.Status
		approverID string
		wantErr    error
	}{
		{
			"nil flow",
			nil,
			[]validation.Status{validation.StatusPending},
			approver(1),
			validation.ErrFlowNotActive,
		},
		{
			"disabled flow",
			&validation.Flow{Enabled: false},
			[]validation.Status{validation.StatusPending},
			approver(1),
			validation.ErrFlowNotActive,
		},
		{
			"approver not in any step",
			activeFlow(),
			[]validation.Status{validation.StatusPending, validation.StatusPending},
			"stranger",
			validation.ErrNotAuthorized,
		},
		{
			"already approved step resubmitted",
			activeFlow(),
			[]validation.Status{validation.StatusApproved, validation.StatusPending},
			approver(1),
			validation.ErrStepNotPending,
		},
		{
			"rejected step resubmitted",
			activeFlow(),
			[]validation.Status{validation.StatusRejected, validation.StatusPending},
			approver(1),
			validation.ErrStepNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := makeSteps(tt.statuses...)
			_, err := validation.DecideApprove(tt.flow, steps, tt.approverID, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecideApprove() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecideApprove_ReasonRecorded(t *testing.T) {
	steps := makeSteps(validation.StatusPending, validation.StatusPending)

	got, err := validation.DecideApprove(activeFlow(), steps, approver(1), "looks good")
	if err != nil {
		t.Fatalf("DecideApprove() error = %v, want nil", err)
	}
	if got.Reason != "looks good" {
		t.Errorf("Reason = %q, want %q", got.Reason, "looks good")
	}
	if got.ReasonOrder != 1 {
		t.Errorf("ReasonOrder = %d, want 1", got.ReasonOrder)
	}
}

func TestDecideReject(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []validation.Status
		approverID string
		wantOrder  int
	}{
		{
			"first approver rejects",
			[]validation.Status{validation.StatusPending, validation.StatusPending, validation.StatusPending},
			approver(1),
			1,
		},
		{
			"middle approver rejects without touching other steps",
			[]validation.Status{validation.StatusApproved, validation.StatusPending, validation.StatusPending},
			approver(2),
			2,
		},
		{
			"final approver rejects",
			[]validation.Status{validation.StatusApproved, validation.StatusApproved, validation.StatusPending},
			approver(3),
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := makeSteps(tt.statuses...)
			got, err := validation.DecideReject(activeFlow(), steps, tt.approverID, "not acceptable")
			if err != nil {
				t.Fatalf("DecideReject() error = %v, want nil", err)
			}
			if got.RejectOrder != tt.wantOrder {
				t.Errorf("RejectOrder = %d, want %d", got.RejectOrder, tt.wantOrder)
			}
			if got.ApproveThrough != 0 {
				t.Errorf("ApproveThrough = %d, want 0 on reject path", got.ApproveThrough)
			}
			if !got.Resolved {
				t.Error("Resolved = false, want true")
			}
			if got.DocumentStatus != validation.StatusRejected {
				t.Errorf("DocumentStatus = %q, want %q", got.DocumentStatus, validation.StatusRejected)
			}
			if got.Outcome != validation.OutcomeDocumentRejected {
				t.Errorf("Outcome = %q, want %q", got.Outcome, validation.OutcomeDocumentRejected)
			}
			if got.Reason != "not acceptable" {
				t.Errorf("Reason = %q, want %q", got.Reason, "not acceptable")
			}
		})
	}
}

func TestDecideReject_Errors(t *testing.T) {
	tests := []struct {
		name       string
		flow       *validation.Flow
		statuses   []validation.Status
		approverID string
		reason     string
		wantErr    error
	}{
		{
			"nil flow",
			nil,
			[]validation.Status{validation.StatusPending},
			approver(1), "bad",
			validation.ErrFlowNotActive,
		},
		{
			"disabled flow checked before reason",
			&validation.Flow{Enabled: false},
			[]validation.Status{validation.StatusPending},
			approver(1), "",
			validation.ErrFlowNotActive,
		},
		{
			"missing reason",
			activeFlow(),
			[]validation.Status{validation.StatusPending},
			approver(1), "",
			validation.ErrReasonRequired,
		},
		{
			"approver not in any step",
			activeFlow(),
			[]validation.Status{validation.StatusPending},
			"stranger", "bad",
			validation.ErrNotAuthorized,
		},
		{
			"already decided step",
			activeFlow(),
			[]validation.Status{validation.StatusApproved},
			approver(1), "bad",
			validation.ErrStepNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := makeSteps(tt.statuses...)
			_, err := validation.DecideReject(tt.flow, steps, tt.approverID, tt.reason)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecideReject() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
