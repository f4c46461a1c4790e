package port

import "context"

// EventTypeCheckoutCompleted is the provider event that confirms payment.
const EventTypeCheckoutCompleted = "checkout.session.completed"

// WebhookSignatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
const WebhookSignatureHeader = "X-Payment-Signature"

// WebhookEvent is a verified, parsed payment-provider webhook payload.
type WebhookEvent struct {
	Type          string
	OrderID       string
	TransactionID string
}

// CheckoutSession is the provider's view of a hosted checkout session.
type CheckoutSession struct {
	ID            string
	OrderID       string
	TransactionID string
	PaymentStatus string
	SessionStatus string
	ReceiptURL    string
}

func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == "paid" || s.SessionStatus == "complete"
}

//go:generate mockgen -source=payment.go -destination=mock/payment.go -package=mock
type PaymentProvider interface {
	// ParseWebhookEvent verifies the signature against the exact raw body
	// bytes and parses the event. Returns domain.ErrInvalidSignature when
	// verification fails.
	ParseWebhookEvent(body []byte, signature string) (*WebhookEvent, error)

	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
