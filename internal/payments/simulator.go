package payments

import (
	"context"

	"github.com/wb-go/wbf/logger"

	"github.com/hooong/edu-api/internal/domain"
)

// Simulator stands in for a real payment gateway. The approve flags make the
// outcome configurable so failure paths can be exercised end to end.
type Simulator struct {
	approveCharges bool
	approveRefunds bool
	logger         logger.Logger
}

func NewSimulator(approveCharges, approveRefunds bool, log logger.Logger) *Simulator {
	return &Simulator{
		approveCharges: approveCharges,
		approveRefunds: approveRefunds,
		logger:         log,
	}
}

func (s *Simulator) Charge(ctx context.Context, info domain.PaymentInfo) bool {
	s.logger.LogAttrs(ctx, logger.DebugLevel, "simulated charge",
		logger.Int64("amount", info.Amount),
		logger.String("method", string(info.Method)),
		logger.Any("approved", s.approveCharges),
	)
	return s.approveCharges
}

func (s *Simulator) Refund(ctx context.Context, payment *domain.Payment) bool {
	s.logger.LogAttrs(ctx, logger.DebugLevel, "simulated refund",
		logger.Int64("payment_id", payment.ID),
		logger.Int64("amount", payment.Amount),
		logger.Any("approved", s.approveRefunds),
	)
	return s.approveRefunds
}
