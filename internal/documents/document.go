// Package documents provides document registration and lifecycle
// management. Files are uploaded and downloaded directly against object
// storage through presigned URLs; documents with a validation flow must
// be fully approved before they become downloadable.
package documents

import (
	"time"

	"github.com/documenta/docuflow/internal/entities"
	"github.com/documenta/docuflow/internal/validation"
	"github.com/google/uuid"
)

// Status represents a document's validation state, stored as a single
// character code. A document without a validation flow has no status.
type Status string

// Document status constants.
const (
	StatusPending  Status = "P"
	StatusApproved Status = "A"
	StatusRejected Status = "R"
)

// Document represents a registered document with metadata. BucketKey is
// the unique object storage key; Status is nil when no workflow applies.
type Document struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	MimeType         string     `json:"mime_type"`
	SizeBytes        int64      `json:"size_bytes"`
	BucketKey        string     `json:"bucket_key"`
	Status           *Status    `json:"status"`
	CompanyID        uuid.UUID  `json:"company_id"`
	BusinessEntityID uuid.UUID  `json:"business_entity_id"`
	CreatedBy        *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Meta contains the document metadata supplied at creation. BucketKey
// is optional; a globally unique key is derived when absent.
type Meta struct {
	Name      string `json:"name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
	BucketKey string `json:"bucket_key,omitempty"`
}

// EntityRef identifies the business entity a document is filed against.
type EntityRef struct {
	EntityID   uuid.UUID           `json:"entity_id"`
	EntityType entities.EntityType `json:"entity_type"`
}

// FlowSpec requests a validation flow for the document. When Enabled is
// true the spec must carry at least one step.
type FlowSpec struct {
	Enabled bool                  `json:"enabled"`
	Steps   []validation.StepSpec `json:"steps,omitempty"`
}

// Requested reports whether a workflow applies to the document.
func (f *FlowSpec) Requested() bool {
	return f != nil && f.Enabled
}

// CreateCommand contains the data required to register a document.
type CreateCommand struct {
	CompanyID uuid.UUID  `json:"company_id"`
	Entity    *EntityRef `json:"entity"`
	Document  *Meta      `json:"document"`
	Flow      *FlowSpec  `json:"validation_flow,omitempty"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
}

// CreateResult carries the created document and the presigned URL the
// client must PUT the file to.
type CreateResult struct {
	Document  *Document `json:"document"`
	UploadURL string    `json:"upload_url"`
}

var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/jpg":          true,
	"image/png":          true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// MimeAllowed reports whether the MIME type is accepted for upload.
func MimeAllowed(mime string) bool {
	return allowedMimeTypes[mime]
}

// Validate checks the creation command against the metadata rules. All
// failures are detected here, before any external call or write.
func (cmd *CreateCommand) Validate(maxFileSize int64) error {
	if cmd.CompanyID == uuid.Nil || cmd.Entity == nil || cmd.Entity.EntityID == uuid.Nil || cmd.Document == nil {
		return ErrMissingFields
	}
	if cmd.Document.Name == "" || cmd.Document.MimeType == "" || cmd.Document.SizeBytes <= 0 {
		return ErrMissingFields
	}
	if cmd.Document.SizeBytes > maxFileSize {
		return ErrFileTooLarge
	}
	if !MimeAllowed(cmd.Document.MimeType) {
		return ErrUnsupportedMime
	}
	if cmd.Flow.Requested() && len(cmd.Flow.Steps) == 0 {
		return validation.ErrInvalidSteps
	}
	return nil
}
