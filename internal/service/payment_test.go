package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/service/ports"
	"github.com/hooong/edu-api/internal/service/ports/mocks"
)

type paymentMocks struct {
	paymentRepo *mocks.MockPaymentRepo
	uow         *mocks.MockUnitOfWork
	gateway     *mocks.MockPaymentGateway
}

func newPaymentService(t *testing.T) (*PaymentService, paymentMocks) {
	t.Helper()
	m := paymentMocks{
		paymentRepo: mocks.NewMockPaymentRepo(t),
		uow:         mocks.NewMockUnitOfWork(t),
		gateway:     mocks.NewMockPaymentGateway(t),
	}
	svc := NewPaymentService(m.paymentRepo, m.uow, m.gateway, newTestLogger(t))
	return svc, m
}

func paidPayment(id, regID int64) *domain.Payment {
	now := time.Now().UTC()
	return &domain.Payment{
		ID:             id,
		RegistrationID: regID,
		Amount:         30000,
		Status:         domain.PaymentStatusPaid,
		Method:         domain.PaymentMethodCard,
		PaidAt:         &now,
	}
}

func TestPaymentService_Cancel_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	payment := paidPayment(20, 10)
	reg := &domain.Registration{ID: 10, UserID: 1, ItemID: 2, Status: domain.RegistrationStatusPaid}

	m.paymentRepo.EXPECT().GetByIDWithRegistration(mock.Anything, int64(20)).
		Return(payment, reg, nil)
	m.gateway.EXPECT().Refund(mock.Anything, payment).Return(true)

	tx := mocks.NewMockTxStore(t)
	tx.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, p *domain.Payment) error {
			assert.Equal(t, domain.PaymentStatusCanceled, p.Status)
			assert.NotNil(t, p.CancelledAt)
			return nil
		},
	)
	tx.EXPECT().SoftDeleteRegistration(mock.Anything, int64(10)).Return(true, nil)
	m.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(ports.TxStore) error) error {
			return fn(tx)
		},
	)

	err := svc.Cancel(context.Background(), 20, 1)

	require.NoError(t, err)
}

func TestPaymentService_Cancel_NotFound(t *testing.T) {
	svc, m := newPaymentService(t)

	m.paymentRepo.EXPECT().GetByIDWithRegistration(mock.Anything, int64(99)).
		Return(nil, nil, domain.ErrPaymentNotFound)

	err := svc.Cancel(context.Background(), 99, 1)

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentService_Cancel_NotOwner(t *testing.T) {
	svc, m := newPaymentService(t)

	payment := paidPayment(20, 10)
	reg := &domain.Registration{ID: 10, UserID: 2, ItemID: 2, Status: domain.RegistrationStatusPaid}

	m.paymentRepo.EXPECT().GetByIDWithRegistration(mock.Anything, int64(20)).
		Return(payment, reg, nil)

	err := svc.Cancel(context.Background(), 20, 1)

	assert.ErrorIs(t, err, domain.ErrNotPaymentOwner)
	m.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestPaymentService_Cancel_CompletedRegistration(t *testing.T) {
	svc, m := newPaymentService(t)

	payment := paidPayment(20, 10)
	reg := &domain.Registration{ID: 10, UserID: 1, ItemID: 2, Status: domain.RegistrationStatusCompleted}

	m.paymentRepo.EXPECT().GetByIDWithRegistration(mock.Anything, int64(20)).
		Return(payment, reg, nil)

	err := svc.Cancel(context.Background(), 20, 1)

	assert.ErrorIs(t, err, domain.ErrCompletedNotRefundable)
}

func TestPaymentService_Cancel_RefundDeclined(t *testing.T) {
	svc, m := newPaymentService(t)

	payment := paidPayment(20, 10)
	reg := &domain.Registration{ID: 10, UserID: 1, ItemID: 2, Status: domain.RegistrationStatusPaid}

	m.paymentRepo.EXPECT().GetByIDWithRegistration(mock.Anything, int64(20)).
		Return(payment, reg, nil)
	m.gateway.EXPECT().Refund(mock.Anything, payment).Return(false)

	err := svc.Cancel(context.Background(), 20, 1)

	assert.ErrorIs(t, err, domain.ErrCancelFailed)
	m.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestPaymentService_ListByUser(t *testing.T) {
	svc, m := newPaymentService(t)

	params := domain.PaymentListParams{UserID: 1, Page: 1, Size: 10}
	details := []*domain.PaymentDetail{
		{Payment: *paidPayment(20, 10), ItemTitle: "백엔드 기초 강의"},
	}

	m.paymentRepo.EXPECT().ListByUser(mock.Anything, params).Return(details, 1, nil)

	got, total, err := svc.ListByUser(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, details, got)
}

func TestPaymentService_ListByUser_InvalidRange(t *testing.T) {
	svc, m := newPaymentService(t)

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := svc.ListByUser(context.Background(), domain.PaymentListParams{
		UserID: 1, Page: 1, Size: 10, From: &from, To: &to,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	m.paymentRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}
