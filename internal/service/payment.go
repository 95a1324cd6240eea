package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/service/ports"
)

// PaymentService handles cancellation (the inverse of enrollment) and the
// user-facing payment history. Cancellation takes no distributed lock:
// refunds are low-contention and the PAID-only transition rejects replays.
type PaymentService struct {
	paymentRepo ports.PaymentRepo
	uow         ports.UnitOfWork
	gateway     ports.PaymentGateway
	logger      logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	uow ports.UnitOfWork,
	gateway ports.PaymentGateway,
	log logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		uow:         uow,
		gateway:     gateway,
		logger:      log,
	}
}

// Cancel refunds the payment and soft-deletes its registration, freeing the
// (user, item) pair for re-enrollment.
func (s *PaymentService) Cancel(ctx context.Context, paymentID, userID int64) error {
	payment, reg, err := s.paymentRepo.GetByIDWithRegistration(ctx, paymentID)
	if err != nil {
		return err
	}

	if reg.UserID != userID {
		return domain.ErrNotPaymentOwner
	}

	if reg.IsCompleted() {
		return domain.ErrCompletedNotRefundable
	}

	if !s.gateway.Refund(ctx, payment) {
		return domain.ErrCancelFailed
	}

	err = s.uow.Do(ctx, func(tx ports.TxStore) error {
		if err := payment.Cancel(); err != nil {
			return err
		}
		if err := tx.UpdatePayment(ctx, payment); err != nil {
			return err
		}
		if _, err := tx.SoftDeleteRegistration(ctx, payment.RegistrationID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "payment cancelled",
		logger.Int64("payment_id", paymentID),
		logger.Int64("user_id", userID),
	)

	return nil
}

// ListByUser returns one page of the caller's payment history.
func (s *PaymentService) ListByUser(ctx context.Context, params domain.PaymentListParams) ([]*domain.PaymentDetail, int, error) {
	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		return nil, 0, fmt.Errorf("%w: 시작일은 종료일보다 미래일 수 없습니다.", domain.ErrValidation)
	}

	return s.paymentRepo.ListByUser(ctx, params)
}
