package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/hooong/edu-api/internal/domain"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (email, hashed_password, created_at, updated_at)
			  VALUES ($1, $2, $3, $3)
			  RETURNING id, created_at, updated_at`

	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, user.Email, user.HashedPassword, now)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if err = row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, hashed_password, created_at, updated_at
			  FROM users
			  WHERE email = $1 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, email, hashed_password, created_at, updated_at
			  FROM users
			  WHERE id = $1 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
