package companies

import (
	"context"

	"github.com/google/uuid"
)

// System defines the company registry operations.
type System interface {
	Handler() *Handler
	List(ctx context.Context) ([]Company, error)
	Find(ctx context.Context, id uuid.UUID) (*Company, error)
	Create(ctx context.Context, cmd CreateCommand) (*Company, error)
}
