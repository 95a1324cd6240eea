package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/hooong/edu-api/internal/domain"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) GetByIDWithRegistration(ctx context.Context, id int64) (*domain.Payment, *domain.Registration, error) {
	query := `SELECT p.id, p.registration_id, p.amount, p.status, p.method,
					 p.paid_at, p.cancelled_at, p.created_at, p.updated_at,
					 r.id, r.user_id, r.item_id, i.item_type, r.status,
					 r.completed_at, r.created_at, r.updated_at
			  FROM payments p
			  JOIN registrations r ON r.id = p.registration_id
			  JOIN items i ON i.id = r.item_id
			  WHERE p.id = $1 AND p.deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	var reg domain.Registration
	if err = row.Scan(
		&p.ID, &p.RegistrationID, &p.Amount, &p.Status, &p.Method,
		&p.PaidAt, &p.CancelledAt, &p.CreatedAt, &p.UpdatedAt,
		&reg.ID, &reg.UserID, &reg.ItemID, &reg.ItemType, &reg.Status,
		&reg.CompletedAt, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrPaymentNotFound
		}
		return nil, nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, &reg, nil
}

// ListByUser returns one page of the user's payment history, newest first,
// optionally filtered by payment status and by paid_at date range.
func (r *PaymentRepository) ListByUser(ctx context.Context, params domain.PaymentListParams) ([]*domain.PaymentDetail, int, error) {
	where := `reg.user_id = $1 AND p.deleted_at IS NULL`
	args := []any{params.UserID}

	if params.Status != "" {
		args = append(args, params.Status)
		where += fmt.Sprintf(` AND p.status = $%d`, len(args))
	}
	if params.From != nil {
		args = append(args, *params.From)
		where += fmt.Sprintf(` AND p.paid_at >= $%d`, len(args))
	}
	if params.To != nil {
		args = append(args, *params.To)
		where += fmt.Sprintf(` AND p.paid_at <= $%d`, len(args))
	}

	from := ` FROM payments p
			  JOIN registrations reg ON reg.id = p.registration_id
			  JOIN items i ON i.id = reg.item_id
			  WHERE ` + where

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*)`+from, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan payment count: %w", err)
	}

	query := `SELECT p.id, p.registration_id, p.amount, p.status, p.method,
					 p.paid_at, p.cancelled_at, p.created_at, p.updated_at,
					 reg.id, reg.user_id, reg.item_id, i.item_type, reg.status,
					 reg.completed_at, reg.deleted_at, i.title` +
		from + fmt.Sprintf(`
			  ORDER BY p.created_at DESC
			  OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)

	args = append(args, (params.Page-1)*params.Size, params.Size)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.PaymentDetail
	for rows.Next() {
		var d domain.PaymentDetail
		if err = rows.Scan(
			&d.ID, &d.RegistrationID, &d.Amount, &d.Status, &d.Method,
			&d.PaidAt, &d.CancelledAt, &d.CreatedAt, &d.UpdatedAt,
			&d.Registration.ID, &d.Registration.UserID, &d.Registration.ItemID,
			&d.Registration.ItemType, &d.Registration.Status,
			&d.Registration.CompletedAt, &d.Registration.DeletedAt, &d.ItemTitle,
		); err != nil {
			return nil, 0, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, &d)
	}

	return res, total, rows.Err()
}
