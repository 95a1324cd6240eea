package ports

import (
	"context"

	"github.com/hooong/edu-api/internal/domain"
)

// TxStore is the slice of the persistence layer visible inside one
// unit-of-work transaction.
type TxStore interface {
	GetRegistrationByItemAndUser(ctx context.Context, itemID, userID int64) (*domain.Registration, error)
	SaveRegistration(ctx context.Context, r *domain.Registration) (*domain.Registration, error)
	UpdateRegistration(ctx context.Context, r *domain.Registration) error
	HardDeleteRegistration(ctx context.Context, id int64) (bool, error)
	SoftDeleteRegistration(ctx context.Context, id int64) (bool, error)
	SavePayment(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, p *domain.Payment) error
}

// UnitOfWork runs fn inside a single database transaction: committed when fn
// returns nil, rolled back otherwise. This replaces any implicit per-request
// session plumbing; services own their transaction boundaries explicitly.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx TxStore) error) error
}
