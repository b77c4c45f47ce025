package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/documenta/docuflow/internal/companies"
	"github.com/documenta/docuflow/internal/entities"
	"github.com/documenta/docuflow/internal/gateway"
	"github.com/documenta/docuflow/internal/validation"
	"github.com/documenta/docuflow/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db          *sql.DB
	gateway     gateway.System
	companies   companies.System
	entities    entities.System
	validation  validation.System
	logger      *slog.Logger
	maxFileSize int64
}

// New creates the document lifecycle coordinator. It persists documents,
// instantiates validation flows, and issues storage URLs through the
// gateway.
func New(
	db *sql.DB,
	gw gateway.System,
	companySys companies.System,
	entitySys entities.System,
	validationSys validation.System,
	logger *slog.Logger,
	maxFileSize int64,
) System {
	return &repo{
		db:          db,
		gateway:     gw,
		companies:   companySys,
		entities:    entitySys,
		validation:  validationSys,
		logger:      logger.With("system", "documents"),
		maxFileSize: maxFileSize,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

const documentColumns = `id, name, mime_type, size_bytes, bucket_key, status,
	company_id, business_entity_id, created_by, created_at, updated_at`

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	var status sql.NullString
	var createdBy uuid.NullUUID

	err := s.Scan(
		&d.ID,
		&d.Name,
		&d.MimeType,
		&d.SizeBytes,
		&d.BucketKey,
		&status,
		&d.CompanyID,
		&d.BusinessEntityID,
		&createdBy,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return d, err
	}

	if status.Valid {
		st := Status(status.String)
		d.Status = &st
	}
	if createdBy.Valid {
		d.CreatedBy = &createdBy.UUID
	}
	return d, nil
}

func (r *repo) List(ctx context.Context) ([]Document, error) {
	q := fmt.Sprintf(`SELECT %s FROM documents ORDER BY created_at DESC`, documentColumns)

	docs, err := repository.QueryMany(ctx, r.db, q, nil, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	return docs, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q := fmt.Sprintf(`SELECT %s FROM documents WHERE id = $1`, documentColumns)

	doc, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateKey)
	}
	return &doc, nil
}

// Create validates the command, resolves its references, presigns the
// upload URL, and persists the document together with its optional
// validation flow in one transaction. A gateway failure aborts before
// any record is written.
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error) {
	if err := cmd.Validate(r.maxFileSize); err != nil {
		return nil, err
	}

	if _, err := r.companies.Find(ctx, cmd.CompanyID); err != nil {
		if errors.Is(err, companies.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("resolve company: %w", err)
	}

	entity, err := r.entities.Find(ctx, cmd.Entity.EntityID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, ErrEntityNotFound
		}
		return nil, fmt.Errorf("resolve entity: %w", err)
	}

	bucketKey := cmd.Document.BucketKey
	if bucketKey == "" {
		bucketKey = buildBucketKey(cmd.CompanyID, entity.Type, entity.ID, cmd.Document.Name)
	}

	var status any
	if cmd.Flow.Requested() {
		status = string(StatusPending)
	}

	uploadURL, err := r.gateway.PresignUpload(ctx, bucketKey, cmd.Document.MimeType)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	q := fmt.Sprintf(`INSERT INTO documents(id, name, mime_type, size_bytes, bucket_key, status,
			company_id, business_entity_id, created_by)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, documentColumns)

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		doc, err := repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Document.Name, cmd.Document.MimeType, cmd.Document.SizeBytes,
			bucketKey, status, cmd.CompanyID, entity.ID, nullableUUID(cmd.CreatedBy),
		}, scanDocument)
		if err != nil {
			return doc, err
		}

		if cmd.Flow.Requested() {
			if _, err := r.validation.Initialize(ctx, tx, doc.ID, cmd.Flow.Steps); err != nil {
				return doc, err
			}
		}
		return doc, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateKey)
	}

	r.logger.Info("document created",
		"id", doc.ID, "name", doc.Name, "bucket_key", bucketKey,
		"flow_requested", cmd.Flow.Requested(),
	)
	return &CreateResult{Document: &doc, UploadURL: uploadURL}, nil
}

// Download gates document retrieval on full approval and returns a
// presigned download URL.
func (r *repo) Download(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return "", err
	}

	if doc.Status == nil || *doc.Status != StatusApproved {
		return "", ErrNotDownloadable
	}

	url, err := r.gateway.PresignDownload(ctx, doc.BucketKey)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

// Approve resolves the document and delegates the decision to the
// validation orchestrator.
func (r *repo) Approve(ctx context.Context, id uuid.UUID, approverID, reason string) (string, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return "", err
	}
	return r.validation.Approve(ctx, id, approverID, reason)
}

// Reject resolves the document and delegates the decision to the
// validation orchestrator.
func (r *repo) Reject(ctx context.Context, id uuid.UUID, approverID, reason string) (string, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return "", err
	}
	return r.validation.Reject(ctx, id, approverID, reason)
}

// buildBucketKey derives a globally unique storage key namespaced by
// company, entity type, and entity, with a random component to avoid
// collisions between same-named files.
func buildBucketKey(companyID uuid.UUID, entityType entities.EntityType, entityID uuid.UUID, name string) string {
	return fmt.Sprintf("companies/%s/%ss/%s/docs/%s-%s", companyID, entityType, entityID, uuid.New(), name)
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
