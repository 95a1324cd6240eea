package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/service/ports"
)

// UnitOfWork scopes a group of writes to one database transaction.
// Do commits when fn returns nil and rolls back otherwise, on every exit
// path including panics (the deferred Rollback is a no-op after Commit).
type UnitOfWork struct {
	db *dbpg.DB
}

func NewUnitOfWork(db *dbpg.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(tx ports.TxStore) error) error {
	tx, err := u.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(&txStore{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// txStore implements ports.TxStore over a live *sql.Tx.
type txStore struct {
	tx *sql.Tx
}

func (s *txStore) GetRegistrationByItemAndUser(ctx context.Context, itemID, userID int64) (*domain.Registration, error) {
	query := `SELECT r.id, r.user_id, r.item_id, i.item_type, r.status,
					 r.completed_at, r.created_at, r.updated_at
			  FROM registrations r
			  JOIN items i ON i.id = r.item_id
			  WHERE r.item_id = $1 AND r.user_id = $2 AND r.deleted_at IS NULL`

	var reg domain.Registration
	err := s.tx.QueryRowContext(ctx, query, itemID, userID).Scan(
		&reg.ID, &reg.UserID, &reg.ItemID, &reg.ItemType, &reg.Status,
		&reg.CompletedAt, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	return &reg, nil
}

func (s *txStore) SaveRegistration(ctx context.Context, r *domain.Registration) (*domain.Registration, error) {
	query := `INSERT INTO registrations (user_id, item_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $4)
			  RETURNING id, created_at, updated_at`

	now := time.Now().UTC()
	err := s.tx.QueryRowContext(ctx, query, r.UserID, r.ItemID, r.Status, now).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	return r, nil
}

func (s *txStore) UpdateRegistration(ctx context.Context, r *domain.Registration) error {
	query := `UPDATE registrations
			  SET status = $2, completed_at = $3, updated_at = now()
			  WHERE id = $1`

	if _, err := s.tx.ExecContext(ctx, query, r.ID, r.Status, r.CompletedAt); err != nil {
		return fmt.Errorf("update registration: %w", err)
	}
	return nil
}

func (s *txStore) HardDeleteRegistration(ctx context.Context, id int64) (bool, error) {
	res, err := s.tx.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("hard delete registration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("hard delete rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *txStore) SoftDeleteRegistration(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE registrations
			  SET deleted_at = now(), updated_at = now()
			  WHERE id = $1 AND deleted_at IS NULL`

	res, err := s.tx.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("soft delete registration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("soft delete rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *txStore) SavePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `INSERT INTO payments (registration_id, amount, status, method, paid_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)
			  RETURNING id, created_at, updated_at`

	now := time.Now().UTC()
	err := s.tx.QueryRowContext(ctx, query, p.RegistrationID, p.Amount, p.Status, p.Method, p.PaidAt, now).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	return p, nil
}

func (s *txStore) UpdatePayment(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments
			  SET status = $2, cancelled_at = $3, updated_at = now()
			  WHERE id = $1`

	if _, err := s.tx.ExecContext(ctx, query, p.ID, p.Status, p.CancelledAt); err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}
