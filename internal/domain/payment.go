package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodKakaoPay     PaymentMethod = "KAKAO_PAY"
)

// Payment is linked 1:1 to a registration. Created only for a successful
// payment simulation; cancellation is the sole legal transition afterwards.
type Payment struct {
	ID             int64         `json:"id"`
	RegistrationID int64         `json:"registration_id"`
	Amount         int64         `json:"amount"`
	Status         PaymentStatus `json:"status"`
	Method         PaymentMethod `json:"method"`
	PaidAt         *time.Time    `json:"paid_at,omitempty"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	DeletedAt      *time.Time    `json:"deleted_at,omitempty"`
}

func NewPaidPayment(registrationID, amount int64, method PaymentMethod) *Payment {
	now := time.Now().UTC()
	return &Payment{
		RegistrationID: registrationID,
		Amount:         amount,
		Status:         PaymentStatusPaid,
		Method:         method,
		PaidAt:         &now,
	}
}

// Cancel transitions PAID -> CANCELED and stamps the cancellation time.
func (p *Payment) Cancel() error {
	if p.Status != PaymentStatusPaid {
		return ErrNotCancellable
	}
	now := time.Now().UTC()
	p.Status = PaymentStatusCanceled
	p.CancelledAt = &now
	return nil
}

type PaymentInfo struct {
	Amount int64
	Method PaymentMethod
}

// PaymentDetail is a payment joined with its registration and item for the
// user-facing history listing.
type PaymentDetail struct {
	Payment
	Registration Registration `json:"registration"`
	ItemTitle    string       `json:"item_title"`
}

type PaymentListParams struct {
	UserID int64
	Page   int
	Size   int
	Status PaymentStatus
	From   *time.Time
	To     *time.Time
}
