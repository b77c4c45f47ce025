package validation

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// System defines the validation flow orchestration operations. Approve
// and Reject each execute as one atomic transaction serialized per flow;
// Initialize participates in the caller's document-creation transaction.
type System interface {
	Initialize(ctx context.Context, tx *sql.Tx, documentID uuid.UUID, steps []StepSpec) (*Flow, error)
	Approve(ctx context.Context, documentID uuid.UUID, approverID, reason string) (string, error)
	Reject(ctx context.Context, documentID uuid.UUID, approverID, reason string) (string, error)
}
