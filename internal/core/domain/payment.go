package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type Payment struct {
	ID      string
	OrderID string
	Status  PaymentStatus
	// TransactionID is the payment provider's reference. Set exactly once,
	// on the first successful confirmation.
	TransactionID string
	AmountCents   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Payment) Completed() bool {
	return p.Status == PaymentStatusCompleted
}
