package domain

import "strings"

// StatusFromCarrier classifies a raw carrier status string into the local
// order status vocabulary. The second return value is false for strings the
// classification does not recognize; callers must keep the current local
// status in that case.
func StatusFromCarrier(raw string) (OrderStatus, bool) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")

	switch norm {
	case "CANCELLED", "CANCELED":
		return OrderStatusCancelled, true
	case "DELIVERED":
		return OrderStatusDelivered, true
	case "SHIPPED", "IN_TRANSIT", "AWAITING_DELIVERY":
		return OrderStatusShipped, true
	case "NEW", "CREATED", "PENDING", "PROCESSING":
		return OrderStatusProcessing, true
	}
	return "", false
}
