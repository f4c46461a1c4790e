package port

import (
	"context"

	"github.com/rgladkov/shoporder/internal/core/domain"
)

// UpdateOrderPaymentFn mutates the order/payment pair inside the repository
// transaction. Returning an error rolls the whole update back.
type UpdateOrderPaymentFn func(order *domain.Order, payment *domain.Payment) error

// UpdateOrderFn mutates an order inside the repository transaction, against
// the freshly locked row. Returning an error rolls the update back.
type UpdateOrderFn func(order *domain.Order) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOpenShipments(ctx context.Context) ([]*domain.Order, error)

	// UpdateOrderShipment loads the order under a row lock, applies fn, and
	// persists status and carrier fields in one transaction. fn sees the
	// current stored status, not the caller's possibly stale copy, so
	// forward-only checks inside fn hold against concurrent writers.
	UpdateOrderShipment(ctx context.Context, orderID string, fn UpdateOrderFn) (*domain.Order, error)

	// Payment
	ReadPaymentByOrder(ctx context.Context, orderID string) (*domain.Payment, error)

	// UpdateOrderPayment loads the order and its payment under a row lock,
	// applies fn, and persists both as a single transaction. Concurrent
	// confirmations for the same order serialize here.
	UpdateOrderPayment(ctx context.Context, orderID string, fn UpdateOrderPaymentFn) (*domain.Order, error)
}
