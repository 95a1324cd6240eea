package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "PENDING"
	RegistrationStatusPaid      RegistrationStatus = "PAID"
	RegistrationStatusCompleted RegistrationStatus = "COMPLETED"
)

// Legal lifecycle edges. PENDING rows that fail payment are hard-deleted
// rather than transitioned, so no FAILED state exists here.
var registrationNext = map[RegistrationStatus]map[RegistrationStatus]bool{
	RegistrationStatusPending:   {RegistrationStatusPaid: true},
	RegistrationStatusPaid:      {RegistrationStatusCompleted: true},
	RegistrationStatusCompleted: {},
}

// Registration binds one user to one item. At most one non-deleted row may
// exist per (user, item) pair; the registration service enforces this under
// a distributed lock, not a database constraint.
type Registration struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"user_id"`
	ItemID      int64              `json:"item_id"`
	ItemType    ItemType           `json:"item_type"`
	Status      RegistrationStatus `json:"status"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   *time.Time         `json:"deleted_at,omitempty"`
}

func NewRegistration(userID, itemID int64) *Registration {
	return &Registration{
		UserID: userID,
		ItemID: itemID,
		Status: RegistrationStatusPending,
	}
}

func (r *Registration) IsCompleted() bool {
	return r.Status == RegistrationStatusCompleted
}

func (r *Registration) IsCompletable() bool {
	return registrationNext[r.Status][RegistrationStatusCompleted]
}

// Paid transitions PENDING -> PAID.
func (r *Registration) Paid() error {
	if !registrationNext[r.Status][RegistrationStatusPaid] {
		return ErrNotPayable
	}
	r.Status = RegistrationStatusPaid
	return nil
}

// Complete transitions PAID -> COMPLETED and stamps the completion time.
func (r *Registration) Complete() error {
	if !r.IsCompletable() {
		return ErrNotCompletable
	}
	now := time.Now().UTC()
	r.Status = RegistrationStatusCompleted
	r.CompletedAt = &now
	return nil
}
