package documents

import (
	"context"

	"github.com/google/uuid"
)

// System defines the document lifecycle operations: creation with
// optional flow instantiation, the download gate, and the approval
// surface delegated to the validation orchestrator.
type System interface {
	Handler() *Handler
	List(ctx context.Context) ([]Document, error)
	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error)
	Download(ctx context.Context, id uuid.UUID) (string, error)
	Approve(ctx context.Context, id uuid.UUID, approverID, reason string) (string, error)
	Reject(ctx context.Context, id uuid.UUID, approverID, reason string) (string, error)
}
