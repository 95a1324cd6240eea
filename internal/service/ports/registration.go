package ports

import (
	"context"
	"time"

	"github.com/hooong/edu-api/internal/domain"
)

type RegistrationRepo interface {
	// GetByItemAndUser returns the non-deleted registration for the pair,
	// with ItemType populated from the joined item, or ErrRegistrationNotFound.
	GetByItemAndUser(ctx context.Context, itemID, userID int64) (*domain.Registration, error)
	// DeleteStalePending hard-deletes PENDING registrations older than
	// olderThan that never got a payment row. Returns the rows removed.
	DeleteStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
}
