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

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RegistrationRepository) GetByItemAndUser(ctx context.Context, itemID, userID int64) (*domain.Registration, error) {
	query := `SELECT r.id, r.user_id, r.item_id, i.item_type, r.status,
					 r.completed_at, r.created_at, r.updated_at
			  FROM registrations r
			  JOIN items i ON i.id = r.item_id
			  WHERE r.item_id = $1 AND r.user_id = $2 AND r.deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, itemID, userID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	var reg domain.Registration
	if err = row.Scan(
		&reg.ID, &reg.UserID, &reg.ItemID, &reg.ItemType, &reg.Status,
		&reg.CompletedAt, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &reg, nil
}

// DeleteStalePending removes PENDING registrations that are older than
// olderThan and have no payment row. These are crash orphans: the process
// died between inserting the registration and settling the payment, so the
// row never commits to PAID and would block the user from retrying.
func (r *RegistrationRepository) DeleteStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `DELETE FROM registrations r
			  WHERE r.status = $1
			    AND r.created_at < now() - make_interval(secs => $2)
			    AND NOT EXISTS (SELECT 1 FROM payments p WHERE p.registration_id = r.id)`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, domain.RegistrationStatusPending, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("delete stale pending: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("stale pending rows affected: %w", err)
	}
	return n, nil
}
