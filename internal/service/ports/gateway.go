package ports

import (
	"context"

	"github.com/hooong/edu-api/internal/domain"
)

// PaymentGateway stands in for an external payment processor. Both calls
// report a plain boolean outcome: a declined charge is a business result,
// not an error.
type PaymentGateway interface {
	Charge(ctx context.Context, info domain.PaymentInfo) bool
	Refund(ctx context.Context, payment *domain.Payment) bool
}
