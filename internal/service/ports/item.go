package ports

import (
	"context"

	"github.com/hooong/edu-api/internal/domain"
)

type ItemRepo interface {
	GetByIDAndType(ctx context.Context, id int64, itemType domain.ItemType) (*domain.Item, error)
	ListWithStats(ctx context.Context, p domain.ItemListParams) ([]*domain.ItemWithStats, int, error)
}
