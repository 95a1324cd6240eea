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

type ItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ItemRepository) GetByIDAndType(ctx context.Context, id int64, itemType domain.ItemType) (*domain.Item, error) {
	query := `SELECT id, title, item_type, start_at, end_at, created_at, updated_at
			  FROM items
			  WHERE id = $1 AND item_type = $2 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, itemType)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	var i domain.Item
	if err = row.Scan(&i.ID, &i.Title, &i.Type, &i.StartAt, &i.EndAt, &i.CreatedAt, &i.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return &i, nil
}

// ListWithStats returns one page of items of the given type, each annotated
// with its total non-deleted registration count and whether the calling user
// already holds a registration for it.
func (r *ItemRepository) ListWithStats(ctx context.Context, p domain.ItemListParams) ([]*domain.ItemWithStats, int, error) {
	where := `i.item_type = $1 AND i.deleted_at IS NULL`
	args := []any{p.Type, p.UserID}
	countArgs := []any{p.Type}

	if p.Status == domain.ItemStatusAvailable {
		where += ` AND i.start_at <= now() AND i.end_at >= now()
			AND NOT EXISTS (
				SELECT 1 FROM registrations ur
				WHERE ur.item_id = i.id AND ur.user_id = $2 AND ur.deleted_at IS NULL
			)`
		countArgs = append(countArgs, p.UserID)
	}

	countQuery := `SELECT COUNT(*) FROM items i WHERE ` + where

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan item count: %w", err)
	}

	order := `i.created_at DESC`
	if p.Sort == domain.ItemSortPopular {
		order = `registration_count DESC, i.created_at DESC`
	}

	query := `
		SELECT i.id, i.title, i.item_type, i.start_at, i.end_at, i.created_at, i.updated_at,
			   COUNT(reg.id) AS registration_count,
			   BOOL_OR(reg.user_id = $2) AS is_registered
		FROM items i
		LEFT JOIN registrations reg
			ON reg.item_id = i.id AND reg.deleted_at IS NULL
		WHERE ` + where + `
		GROUP BY i.id
		ORDER BY ` + order + `
		OFFSET $3 LIMIT $4`

	args = append(args, (p.Page-1)*p.Size, p.Size)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var res []*domain.ItemWithStats
	for rows.Next() {
		var it domain.ItemWithStats
		var isRegistered sql.NullBool
		if err = rows.Scan(
			&it.ID, &it.Title, &it.Type, &it.StartAt, &it.EndAt,
			&it.CreatedAt, &it.UpdatedAt, &it.RegistrationCount, &isRegistered,
		); err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		it.IsRegistered = isRegistered.Valid && isRegistered.Bool
		res = append(res, &it)
	}

	return res, total, rows.Err()
}
