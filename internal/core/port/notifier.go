package port

import (
	"context"

	"github.com/rgladkov/shoporder/internal/core/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	// PaymentConfirmed sends the order-confirmation email. Callers treat
	// failures as best-effort: log and move on.
	PaymentConfirmed(ctx context.Context, order *domain.Order) error
}
