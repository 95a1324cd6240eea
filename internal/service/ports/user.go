package ports

import (
	"context"

	"github.com/hooong/edu-api/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
