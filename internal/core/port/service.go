package port

import (
	"context"

	"github.com/rgladkov/shoporder/internal/core/domain"
)

// VerifyResult is the outcome of a client-triggered payment verification.
// Paid=false with no error means the provider still reports the session as
// unpaid, which is a legitimate in-progress state, not a failure.
type VerifyResult struct {
	Paid       bool
	ReceiptURL string
}

// SyncResult reports the outcome of one order's carrier poll within a batch.
type SyncResult struct {
	OrderID   string
	RawStatus string
	Status    domain.OrderStatus
	Err       error
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	// Payment confirmation
	ConfirmPaymentWebhook(ctx context.Context, body []byte, signature string) error
	VerifyPayment(ctx context.Context, sessionID, orderID string) (*VerifyResult, error)

	// Shipment
	RegisterShipment(ctx context.Context, orderID string) (*domain.Order, error)
	SyncShipments(ctx context.Context) ([]SyncResult, error)
	ShippingLabel(ctx context.Context, orderID string) ([]byte, error)

	// GetOrder returns the order and its payment; the payment is nil when
	// no payment row exists for the order.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, *domain.Payment, error)
}
