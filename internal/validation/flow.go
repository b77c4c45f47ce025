// Package validation implements the document approval workflow: an
// ordered sequence of approver steps attached to a document, the state
// machine governing each step, and the orchestration that couples step
// outcomes to the parent document's status.
package validation

import (
	"time"

	"github.com/google/uuid"
)

// Status represents a validation step's state, stored as a single
// character code.
type Status string

// Step status constants.
const (
	StatusPending  Status = "P"
	StatusApproved Status = "A"
	StatusRejected Status = "R"
)

// Flow represents a document's validation flow. Enabled is true while
// the workflow is in progress and is cleared exactly once when the flow
// reaches a terminal outcome.
type Flow struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// Step represents one approval step within a flow. Order positions the
// step in the sequence, 1..N. Steps are created in bulk at flow creation
// and never added or removed afterward.
type Step struct {
	ID         uuid.UUID `json:"id"`
	FlowID     uuid.UUID `json:"flow_id"`
	Order      int       `json:"order"`
	ApproverID string    `json:"approver_user_id"`
	Status     Status    `json:"status"`
	Reason     *string   `json:"reason,omitempty"`
}

// StepSpec describes a step to create when initializing a flow.
type StepSpec struct {
	Order      int    `json:"order"`
	ApproverID string `json:"approver_user_id"`
}
