package validation

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

// New creates a validation flow orchestrator backed by the database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "validation"),
	}
}

func scanFlow(s repository.Scanner) (Flow, error) {
	var f Flow
	err := s.Scan(&f.ID, &f.DocumentID, &f.Enabled, &f.CreatedAt)
	return f, err
}

func scanStep(s repository.Scanner) (Step, error) {
	var st Step
	err := s.Scan(&st.ID, &st.FlowID, &st.Order, &st.ApproverID, &st.Status, &st.Reason)
	return st, err
}

// Initialize creates the flow and its steps in bulk, all Pending, inside
// the caller's transaction so flow setup commits or rolls back with the
// document itself.
func (r *repo) Initialize(ctx context.Context, tx *sql.Tx, documentID uuid.UUID, steps []StepSpec) (*Flow, error) {
	if len(steps) == 0 {
		return nil, ErrInvalidSteps
	}

	q := `INSERT INTO validation_flows(id, document_id, enabled)
		VALUES($1, $2, true)
		RETURNING id, document_id, enabled, created_at`

	flow, err := repository.QueryOne(ctx, tx, q, []any{uuid.New(), documentID}, scanFlow)
	if err != nil {
		return nil, fmt.Errorf("create flow: %w", err)
	}

	stepQ := `INSERT INTO validation_steps(id, flow_id, step_order, approver_id, status)
		VALUES($1, $2, $3, $4, $5)`

	for _, spec := range steps {
		if _, err := tx.ExecContext(ctx, stepQ, uuid.New(), flow.ID, spec.Order, spec.ApproverID, StatusPending); err != nil {
			return nil, fmt.Errorf("create step %d: %w", spec.Order, err)
		}
	}

	r.logger.Info("flow initialized", "flow_id", flow.ID, "document_id", documentID, "steps", len(steps))
	return &flow, nil
}

// Approve applies an approval decision atomically. The flow row is
// locked for the duration of the transaction so concurrent decisions on
// the same flow serialize.
func (r *repo) Approve(ctx context.Context, documentID uuid.UUID, approverID, reason string) (string, error) {
	outcome, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (string, error) {
		flow, steps, err := r.lockFlow(ctx, tx, documentID)
		if err != nil {
			return "", err
		}

		d, err := DecideApprove(flow, steps, approverID, reason)
		if err != nil {
			return "", err
		}

		if err := r.apply(ctx, tx, flow, d); err != nil {
			return "", err
		}
		return d.Outcome, nil
	})
	if err != nil {
		return "", err
	}

	r.logger.Info("approval applied", "document_id", documentID, "approver", approverID, "outcome", outcome)
	return outcome, nil
}

// Reject applies a rejection decision atomically under the same per-flow
// lock discipline as Approve.
func (r *repo) Reject(ctx context.Context, documentID uuid.UUID, approverID, reason string) (string, error) {
	outcome, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (string, error) {
		flow, steps, err := r.lockFlow(ctx, tx, documentID)
		if err != nil {
			return "", err
		}

		d, err := DecideReject(flow, steps, approverID, reason)
		if err != nil {
			return "", err
		}

		if err := r.apply(ctx, tx, flow, d); err != nil {
			return "", err
		}
		return d.Outcome, nil
	})
	if err != nil {
		return "", err
	}

	r.logger.Info("rejection applied", "document_id", documentID, "approver", approverID)
	return outcome, nil
}

// lockFlow reads the document's flow under FOR UPDATE and returns its
// steps in order. A document without a flow reports ErrFlowNotActive.
func (r *repo) lockFlow(ctx context.Context, tx *sql.Tx, documentID uuid.UUID) (*Flow, []Step, error) {
	flowQ := `SELECT id, document_id, enabled, created_at
		FROM validation_flows
		WHERE document_id = $1
		FOR UPDATE`

	flow, err := repository.QueryOne(ctx, tx, flowQ, []any{documentID}, scanFlow)
	if err != nil {
		return nil, nil, repository.MapError(err, ErrFlowNotActive, err)
	}

	stepQ := `SELECT id, flow_id, step_order, approver_id, status, reason
		FROM validation_steps
		WHERE flow_id = $1
		ORDER BY step_order`

	steps, err := repository.QueryMany(ctx, tx, stepQ, []any{flow.ID}, scanStep)
	if err != nil {
		return nil, nil, fmt.Errorf("query steps: %w", err)
	}
	return &flow, steps, nil
}

// apply writes a decision's mutation set within the transaction.
func (r *repo) apply(ctx context.Context, tx *sql.Tx, flow *Flow, d Decision) error {
	if d.ApproveThrough > 0 {
		q := `UPDATE validation_steps SET status = $1
			WHERE flow_id = $2 AND step_order <= $3`
		if _, err := tx.ExecContext(ctx, q, StatusApproved, flow.ID, d.ApproveThrough); err != nil {
			return fmt.Errorf("approve steps: %w", err)
		}
	}

	if d.RejectOrder > 0 {
		q := `UPDATE validation_steps SET status = $1
			WHERE flow_id = $2 AND step_order = $3`
		if _, err := tx.ExecContext(ctx, q, StatusRejected, flow.ID, d.RejectOrder); err != nil {
			return fmt.Errorf("reject step: %w", err)
		}
	}

	if d.ReasonOrder > 0 && d.Reason != "" {
		q := `UPDATE validation_steps SET reason = $1
			WHERE flow_id = $2 AND step_order = $3`
		if _, err := tx.ExecContext(ctx, q, d.Reason, flow.ID, d.ReasonOrder); err != nil {
			return fmt.Errorf("set reason: %w", err)
		}
	}

	if d.Resolved {
		docQ := `UPDATE documents SET status = $1, updated_at = NOW() WHERE id = $2`
		if err := repository.ExecExpectOne(ctx, tx, docQ, d.DocumentStatus, flow.DocumentID); err != nil {
			return fmt.Errorf("update document status: %w", err)
		}

		flowQ := `UPDATE validation_flows SET enabled = false WHERE id = $1`
		if err := repository.ExecExpectOne(ctx, tx, flowQ, flow.ID); err != nil {
			return fmt.Errorf("disable flow: %w", err)
		}
	}
	return nil
}
