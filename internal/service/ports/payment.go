package ports

import (
	"context"

	"github.com/hooong/edu-api/internal/domain"
)

type PaymentRepo interface {
	// GetByIDWithRegistration returns the non-deleted payment with its
	// registration attached, or ErrPaymentNotFound.
	GetByIDWithRegistration(ctx context.Context, id int64) (*domain.Payment, *domain.Registration, error)
	ListByUser(ctx context.Context, p domain.PaymentListParams) ([]*domain.PaymentDetail, int, error)
}
