package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/service/ports"
)

// RegistrationService owns the enrollment lifecycle: PENDING on creation,
// PAID after a successful charge, COMPLETED on explicit completion. The
// critical section of Register runs under a distributed lock keyed per
// (user, item) because the one-active-registration-per-pair invariant is
// enforced here, not by a database constraint.
type RegistrationService struct {
	itemRepo ports.ItemRepo
	regRepo  ports.RegistrationRepo
	uow      ports.UnitOfWork
	locker   ports.Locker
	gateway  ports.PaymentGateway
	lockTTL  time.Duration
	lockWait time.Duration
	logger   logger.Logger
}

func NewRegistrationService(
	itemRepo ports.ItemRepo,
	regRepo ports.RegistrationRepo,
	uow ports.UnitOfWork,
	locker ports.Locker,
	gateway ports.PaymentGateway,
	lockTTL, lockWait time.Duration,
	log logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		itemRepo: itemRepo,
		regRepo:  regRepo,
		uow:      uow,
		locker:   locker,
		gateway:  gateway,
		lockTTL:  lockTTL,
		lockWait: lockWait,
		logger:   log,
	}
}

func registrationLockKey(userID, itemID int64) string {
	return fmt.Sprintf("registration:%d:%d", userID, itemID)
}

// Register enrolls userID in the item, charging the simulated payment.
//
// The duplicate check runs twice: once before the lock as a cheap fast-fail,
// and again inside the locked transaction, which is the authoritative one —
// two concurrent requests can both pass the pre-check, but only the lock
// holder's in-transaction check decides.
func (s *RegistrationService) Register(ctx context.Context, userID, itemID int64, itemType domain.ItemType, info domain.PaymentInfo) error {
	item, err := s.itemRepo.GetByIDAndType(ctx, itemID, itemType)
	if err != nil {
		return fmt.Errorf("resolve item: %w", err)
	}

	if _, err = s.regRepo.GetByItemAndUser(ctx, itemID, userID); err == nil {
		return domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return fmt.Errorf("check existing registration: %w", err)
	}

	if !item.AvailableAt(time.Now().UTC()) {
		return domain.ErrOutsidePeriod
	}

	key := registrationLockKey(userID, itemID)
	token, err := s.locker.Acquire(ctx, key, s.lockTTL, s.lockWait)
	if err != nil {
		// Fail closed: never run the critical section unguarded.
		s.logger.LogAttrs(ctx, logger.WarnLevel, "registration lock not acquired",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return domain.ErrRegistrationBusy
	}
	defer s.locker.Release(ctx, key, token)

	err = s.uow.Do(ctx, func(tx ports.TxStore) error {
		if _, err := tx.GetRegistrationByItemAndUser(ctx, itemID, userID); err == nil {
			return domain.ErrAlreadyRegistered
		} else if !errors.Is(err, domain.ErrRegistrationNotFound) {
			return fmt.Errorf("recheck existing registration: %w", err)
		}

		reg, err := tx.SaveRegistration(ctx, domain.NewRegistration(userID, itemID))
		if err != nil {
			return err
		}

		if !s.gateway.Charge(ctx, info) {
			if _, err := tx.HardDeleteRegistration(ctx, reg.ID); err != nil {
				return err
			}
			return domain.ErrPaymentFailed
		}

		if _, err = tx.SavePayment(ctx, domain.NewPaidPayment(reg.ID, info.Amount, info.Method)); err != nil {
			return err
		}

		if err = reg.Paid(); err != nil {
			return err
		}
		return tx.UpdateRegistration(ctx, reg)
	})
	if err != nil {
		return err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "registration paid",
		logger.Int64("user_id", userID),
		logger.Int64("item_id", itemID),
		logger.String("item_type", string(itemType)),
	)

	return nil
}

// Complete marks a paid registration as completed. Not guarded by the
// distributed lock: the transition itself rejects anything but PAID, and
// completion has no sibling writes to race against.
func (s *RegistrationService) Complete(ctx context.Context, userID, itemID int64, itemType domain.ItemType) error {
	reg, err := s.regRepo.GetByItemAndUser(ctx, itemID, userID)
	if err != nil {
		return err
	}

	if reg.ItemType != itemType {
		return domain.ErrWrongItemType
	}

	return s.uow.Do(ctx, func(tx ports.TxStore) error {
		if err := reg.Complete(); err != nil {
			return err
		}
		return tx.UpdateRegistration(ctx, reg)
	})
}
