package domain_test

import (
	"testing"

	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardOnly(t *testing.T) {
	forward := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusPaid,
		domain.OrderStatusProcessing,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
	}

	for i, from := range forward {
		for j, to := range forward {
			got := domain.CanTransition(from, to)
			want := j > i && from != domain.OrderStatusDelivered
			assert.Equal(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestCanTransition_Cancellation(t *testing.T) {
	tests := []struct {
		from domain.OrderStatus
		want bool
	}{
		{domain.OrderStatusPending, true},
		{domain.OrderStatusPaid, true},
		{domain.OrderStatusProcessing, true},
		{domain.OrderStatusShipped, true},
		{domain.OrderStatusDelivered, false},
		{domain.OrderStatusCancelled, false},
	}

	for _, test := range tests {
		got := domain.CanTransition(test.from, domain.OrderStatusCancelled)
		assert.Equal(t, test.want, got, "cancel from %s", test.from)
	}
}

func TestCanTransition_FromTerminal(t *testing.T) {
	assert.False(t, domain.CanTransition(domain.OrderStatusCancelled, domain.OrderStatusPaid))
	assert.False(t, domain.CanTransition(domain.OrderStatusDelivered, domain.OrderStatusCancelled))
}

func TestStatusFromCarrier(t *testing.T) {
	tests := []struct {
		raw       string
		expStatus domain.OrderStatus
		expKnown  bool
	}{
		{"cancelled", domain.OrderStatusCancelled, true},
		{"canceled", domain.OrderStatusCancelled, true},
		{"CANCELLED", domain.OrderStatusCancelled, true},
		{"delivered", domain.OrderStatusDelivered, true},
		{"DELIVERED", domain.OrderStatusDelivered, true},
		{"shipped", domain.OrderStatusShipped, true},
		{"in-transit", domain.OrderStatusShipped, true},
		{"in_transit", domain.OrderStatusShipped, true},
		{"IN TRANSIT", domain.OrderStatusShipped, true},
		{"awaiting-delivery", domain.OrderStatusShipped, true},
		{"AWAITING_DELIVERY", domain.OrderStatusShipped, true},
		{"new", domain.OrderStatusProcessing, true},
		{"created", domain.OrderStatusProcessing, true},
		{"pending", domain.OrderStatusProcessing, true},
		{"processing", domain.OrderStatusProcessing, true},
		{" Delivered ", domain.OrderStatusDelivered, true},
		{"lost-in-warehouse", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			status, known := domain.StatusFromCarrier(test.raw)
			assert.Equal(t, test.expKnown, known)
			assert.Equal(t, test.expStatus, status)
		})
	}
}
