// Package entities provides the business entity registry. A business
// entity is the subject a document is filed against: a vehicle, an
// employee, or another company asset.
package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntityType classifies a business entity.
type EntityType string

// Entity type constants.
const (
	TypeVehicle  EntityType = "vehicle"
	TypeEmployee EntityType = "employee"
	TypeOther    EntityType = "other"
)

// Validate checks if the entity type is one of the known classifications.
func (t EntityType) Validate() error {
	switch t {
	case TypeVehicle, TypeEmployee, TypeOther:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidType, t)
	}
}

// Code returns the single-character storage code for the entity type.
func (t EntityType) Code() string {
	switch t {
	case TypeVehicle:
		return "V"
	case TypeEmployee:
		return "E"
	default:
		return "O"
	}
}

// TypeFromCode converts a storage code back to its EntityType.
func TypeFromCode(code string) EntityType {
	switch code {
	case "V":
		return TypeVehicle
	case "E":
		return TypeEmployee
	default:
		return TypeOther
	}
}

// BusinessEntity represents a registered business entity.
type BusinessEntity struct {
	ID        uuid.UUID  `json:"id"`
	Type      EntityType `json:"entity_type"`
	CompanyID uuid.UUID  `json:"company_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateCommand contains the data required to register a business entity.
type CreateCommand struct {
	Type      EntityType `json:"entity_type"`
	CompanyID uuid.UUID  `json:"company_id"`
}
