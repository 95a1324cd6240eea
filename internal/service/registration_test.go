package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/lock"
	"github.com/hooong/edu-api/internal/service/ports"
	"github.com/hooong/edu-api/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type registrationMocks struct {
	itemRepo *mocks.MockItemRepo
	regRepo  *mocks.MockRegistrationRepo
	uow      *mocks.MockUnitOfWork
	locker   *mocks.MockLocker
	gateway  *mocks.MockPaymentGateway
}

func newRegistrationService(t *testing.T) (*RegistrationService, registrationMocks) {
	t.Helper()
	m := registrationMocks{
		itemRepo: mocks.NewMockItemRepo(t),
		regRepo:  mocks.NewMockRegistrationRepo(t),
		uow:      mocks.NewMockUnitOfWork(t),
		locker:   mocks.NewMockLocker(t),
		gateway:  mocks.NewMockPaymentGateway(t),
	}
	svc := NewRegistrationService(
		m.itemRepo, m.regRepo, m.uow, m.locker, m.gateway,
		5*time.Second, 3*time.Second,
		newTestLogger(t),
	)
	return svc, m
}

func availableCourse(id int64) *domain.Item {
	now := time.Now().UTC()
	return &domain.Item{
		ID:      id,
		Title:   "백엔드 기초 강의",
		Type:    domain.ItemTypeCourse,
		StartAt: now.Add(-time.Hour),
		EndAt:   now.Add(time.Hour),
	}
}

func runTx(m registrationMocks, tx *mocks.MockTxStore) {
	m.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(ports.TxStore) error) error {
			return fn(tx)
		},
	)
}

var cardPayment = domain.PaymentInfo{Amount: 30000, Method: domain.PaymentMethodCard}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.itemRepo.EXPECT().GetByIDAndType(mock.Anything, int64(2), domain.ItemTypeCourse).
		Return(availableCourse(2), nil)
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, domain.ErrRegistrationNotFound)
	m.locker.EXPECT().Acquire(mock.Anything, "registration:1:2", 5*time.Second, 3*time.Second).
		Return("token-1", nil)
	m.locker.EXPECT().Release(mock.Anything, "registration:1:2", "token-1").Return(true)

	tx := mocks.NewMockTxStore(t)
	tx.EXPECT().GetRegistrationByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, domain.ErrRegistrationNotFound)
	tx.EXPECT().SaveRegistration(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *domain.Registration) (*domain.Registration, error) {
			r.ID = 10
			return r, nil
		},
	)
	tx.EXPECT().SavePayment(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			assert.Equal(t, int64(10), p.RegistrationID)
			assert.Equal(t, domain.PaymentStatusPaid, p.Status)
			p.ID = 20
			return p, nil
		},
	)
	tx.EXPECT().UpdateRegistration(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *domain.Registration) error {
			assert.Equal(t, domain.RegistrationStatusPaid, r.Status)
			return nil
		},
	)
	runTx(m, tx)

	m.gateway.EXPECT().Charge(mock.Anything, cardPayment).Return(true)

	err := svc.Register(context.Background(), 1, 2, domain.ItemTypeCourse, cardPayment)

	require.NoError(t, err)
}

func TestRegistrationService_Register_ItemNotFound(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.itemRepo.EXPECT().GetByIDAndType(mock.Anything, int64(99), domain.ItemTypeCourse).
		Return(nil, domain.ErrItemNotFound)

	err := svc.Register(context.Background(), 1, 99, domain.ItemTypeCourse, cardPayment)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.itemRepo.EXPECT().GetByIDAndType(mock.Anything, int64(2), domain.ItemTypeCourse).
		Return(availableCourse(2), nil)
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(&domain.Registration{ID: 10, UserID: 1, ItemID: 2, Status: domain.RegistrationStatusPaid}, nil)

	// The duplicate fails fast: no lock is taken, no transaction opened.
	err := svc.Register(context.Background(), 1, 2, domain.ItemTypeCourse, cardPayment)

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	m.locker.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_OutsidePeriod(t *testing.T) {
	svc, m := newRegistrationService(t)

	now := time.Now().UTC()
	closed := &domain.Item{
		ID:      2,
		Type:    domain.ItemTypeCourse,
		StartAt: now.Add(-2 * time.Hour),
		EndAt:   now.Add(-time.Hour),
	}

	m.itemRepo.EXPECT().GetByIDAndType(mock.Anything, int64(2), domain.ItemTypeCourse).
		Return(closed, nil)
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, domain.ErrRegistrationNotFound)

	err := svc.Register(context.Background(), 1, 2, domain.ItemTypeCourse, cardPayment)

	assert.ErrorIs(t, err, domain.ErrOutsidePeriod)
}

func TestRegistrationService_Register_LockNotAcquired(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.itemRepo.EXPECT().GetByIDAndType(mock.Anything, int64(2), domain.ItemTypeCourse).
		Return(availableCourse(2), nil)
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, domain.ErrRegistrationNotFound)
	m.locker.EXPECT().Acquire(mock.Anything, "registration:1:2", 5*time.Second, 3*time.Second).
		Return("", lock.ErrNotAcquired)

	err := svc.Register(context.Background(), 1, 2, domain.ItemTypeCourse, cardPayment)

	assert.ErrorIs(t, err, domain.ErrRegistrationBusy)
	m.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_DuplicateInsideLock(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.itemRepo.EXPECT().GetByIDAndType(mock.Anything, int64(2), domain.ItemTypeCourse).
		Return(availableCourse(2), nil)
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, domain.ErrRegistrationNotFound)
	m.locker.EXPECT().Acquire(mock.Anything, "registration:1:2", 5*time.Second, 3*time.Second).
		Return("token-1", nil)
	m.locker.EXPECT().Release(mock.Anything, "registration:1:2", "token-1").Return(true)

	// A concurrent request slipped in between the pre-check and the lock.
	tx := mocks.NewMockTxStore(t)
	tx.EXPECT().GetRegistrationByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(&domain.Registration{ID: 11, UserID: 1, ItemID: 2, Status: domain.RegistrationStatusPaid}, nil)
	runTx(m, tx)

	err := svc.Register(context.Background(), 1, 2, domain.ItemTypeCourse, cardPayment)

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	tx.AssertNotCalled(t, "SaveRegistration", mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_ChargeDeclined(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.itemRepo.EXPECT().GetByIDAndType(mock.Anything, int64(2), domain.ItemTypeCourse).
		Return(availableCourse(2), nil)
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, domain.ErrRegistrationNotFound)
	m.locker.EXPECT().Acquire(mock.Anything, "registration:1:2", 5*time.Second, 3*time.Second).
		Return("token-1", nil)
	m.locker.EXPECT().Release(mock.Anything, "registration:1:2", "token-1").Return(true)

	tx := mocks.NewMockTxStore(t)
	tx.EXPECT().GetRegistrationByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, domain.ErrRegistrationNotFound)
	tx.EXPECT().SaveRegistration(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *domain.Registration) (*domain.Registration, error) {
			r.ID = 10
			return r, nil
		},
	)
	tx.EXPECT().HardDeleteRegistration(mock.Anything, int64(10)).Return(true, nil)
	runTx(m, tx)

	m.gateway.EXPECT().Charge(mock.Anything, cardPayment).Return(false)

	err := svc.Register(context.Background(), 1, 2, domain.ItemTypeCourse, cardPayment)

	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	tx.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_RepoError(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.itemRepo.EXPECT().GetByIDAndType(mock.Anything, int64(2), domain.ItemTypeCourse).
		Return(availableCourse(2), nil)
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, errors.New("connection refused"))

	err := svc.Register(context.Background(), 1, 2, domain.ItemTypeCourse, cardPayment)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Complete_Success(t *testing.T) {
	svc, m := newRegistrationService(t)

	reg := &domain.Registration{
		ID:       10,
		UserID:   1,
		ItemID:   2,
		ItemType: domain.ItemTypeCourse,
		Status:   domain.RegistrationStatusPaid,
	}
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).Return(reg, nil)

	tx := mocks.NewMockTxStore(t)
	tx.EXPECT().UpdateRegistration(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *domain.Registration) error {
			assert.Equal(t, domain.RegistrationStatusCompleted, r.Status)
			assert.NotNil(t, r.CompletedAt)
			return nil
		},
	)
	runTx(m, tx)

	err := svc.Complete(context.Background(), 1, 2, domain.ItemTypeCourse)

	require.NoError(t, err)
}

func TestRegistrationService_Complete_NotFound(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).
		Return(nil, domain.ErrRegistrationNotFound)

	err := svc.Complete(context.Background(), 1, 2, domain.ItemTypeCourse)

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_Complete_WrongItemType(t *testing.T) {
	svc, m := newRegistrationService(t)

	reg := &domain.Registration{
		ID:       10,
		UserID:   1,
		ItemID:   2,
		ItemType: domain.ItemTypeTest,
		Status:   domain.RegistrationStatusPaid,
	}
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).Return(reg, nil)

	err := svc.Complete(context.Background(), 1, 2, domain.ItemTypeCourse)

	assert.ErrorIs(t, err, domain.ErrWrongItemType)
	m.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestRegistrationService_Complete_NotCompletable(t *testing.T) {
	svc, m := newRegistrationService(t)

	reg := &domain.Registration{
		ID:       10,
		UserID:   1,
		ItemID:   2,
		ItemType: domain.ItemTypeCourse,
		Status:   domain.RegistrationStatusPending,
	}
	m.regRepo.EXPECT().GetByItemAndUser(mock.Anything, int64(2), int64(1)).Return(reg, nil)

	tx := mocks.NewMockTxStore(t)
	runTx(m, tx)

	err := svc.Complete(context.Background(), 1, 2, domain.ItemTypeCourse)

	assert.ErrorIs(t, err, domain.ErrNotCompletable)
	tx.AssertNotCalled(t, "UpdateRegistration", mock.Anything, mock.Anything)
}
