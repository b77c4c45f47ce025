package companies

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/documenta/docuflow/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a company repository backed by the database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "companies"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func scanCompany(s repository.Scanner) (Company, error) {
	var c Company
	err := s.Scan(&c.ID, &c.Name, &c.CreatedAt)
	return c, err
}

func (r *repo) List(ctx context.Context) ([]Company, error) {
	q := `SELECT id, name, created_at FROM companies ORDER BY created_at DESC`

	companies, err := repository.QueryMany(ctx, r.db, q, nil, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	return companies, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Company, error) {
	q := `SELECT id, name, created_at FROM companies WHERE id = $1`

	company, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanCompany)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, err)
	}
	return &company, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Company, error) {
	if cmd.Name == "" {
		return nil, ErrNameRequired
	}

	q := `INSERT INTO companies(id, name)
		VALUES($1, $2)
		RETURNING id, name, created_at`

	company, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Company, error) {
		return repository.QueryOne(ctx, tx, q, []any{uuid.New(), cmd.Name}, scanCompany)
	})
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	r.logger.Info("company created", "id", company.ID, "name", company.Name)
	return &company, nil
}
