package entities

import (
	"context"

	"github.com/google/uuid"
)

// System defines the business entity registry operations.
type System interface {
	Handler() *Handler
	Find(ctx context.Context, id uuid.UUID) (*BusinessEntity, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]BusinessEntity, error)
	Create(ctx context.Context, cmd CreateCommand) (*BusinessEntity, error)
}
