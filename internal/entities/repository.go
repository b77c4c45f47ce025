package entities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/documenta/docuflow/pkg/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a business entity repository backed by the database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "entities"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func scanEntity(s repository.Scanner) (BusinessEntity, error) {
	var e BusinessEntity
	var code string
	if err := s.Scan(&e.ID, &code, &e.CompanyID, &e.CreatedAt); err != nil {
		return e, err
	}
	e.Type = TypeFromCode(code)
	return e, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*BusinessEntity, error) {
	q := `SELECT id, entity_type, company_id, created_at
		FROM business_entities WHERE id = $1`

	entity, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanEntity)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, err)
	}
	return &entity, nil
}

func (r *repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]BusinessEntity, error) {
	q := `SELECT id, entity_type, company_id, created_at
		FROM business_entities
		WHERE company_id = $1
		ORDER BY created_at DESC`

	list, err := repository.QueryMany(ctx, r.db, q, []any{companyID}, scanEntity)
	if err != nil {
		return nil, fmt.Errorf("query entities: %w", err)
	}
	return list, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*BusinessEntity, error) {
	if err := cmd.Type.Validate(); err != nil {
		return nil, err
	}

	q := `INSERT INTO business_entities(id, entity_type, company_id)
		VALUES($1, $2, $3)
		RETURNING id, entity_type, company_id, created_at`

	entity, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (BusinessEntity, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Type.Code(), cmd.CompanyID,
		}, scanEntity)
	})
	if err != nil {
		// 23503: the company foreign key does not resolve.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("create entity: %w", err)
	}

	r.logger.Info("entity created", "id", entity.ID, "type", entity.Type, "company_id", entity.CompanyID)
	return &entity, nil
}
