package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// statusRank orders the forward path PENDING < PAID < PROCESSING < SHIPPED < DELIVERED.
// CANCELLED sits outside the path and is handled separately.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusPaid:       1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransition reports whether an order may move from one status to another.
// Only strictly forward moves are allowed; cancellation is accepted from any
// non-terminal state. Everything else is rejected so a stale carrier response
// can never regress an order that already advanced.
func CanTransition(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

type Address struct {
	Name       string
	Phone      string
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
}

type LineItem struct {
	ProductID string
	Quantity  int
	// UnitPriceCents is the price snapshot taken at order time, never
	// re-read from the live catalog.
	UnitPriceCents int64
}

type Order struct {
	ID               string
	CustomerID       string
	CustomerEmail    string
	Status           OrderStatus
	PricePaidInCents int64
	Items            []LineItem
	BillingAddress   Address
	ShippingAddress  Address

	// Carrier fields stay empty until a shipment is registered.
	CarrierOrderID       string
	CarrierStatus        string
	CarrierWaybillNumber string
	CarrierTrackingURL   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) HasShipment() bool {
	return o.CarrierOrderID != ""
}
