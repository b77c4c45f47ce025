// Package companies provides the company registry. Companies own
// business entities and the documents uploaded against them.
package companies

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a registered company.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommand contains the data required to register a company.
type CreateCommand struct {
	Name string `json:"name"`
}
