// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// OrderPlacedEvent is published when a customer completes checkout.  It
// carries enough information for downstream consumers (kitchen display,
// notifications, analytics) without querying the primary database.
type OrderPlacedEvent struct {
	OrderID       string   `json:"order_id"`
	UserID        string   `json:"user_id"`
	PaymentMethod string   `json:"payment_method"`
	TotalCents    int64    `json:"total_cents"`
	ItemCount     int      `json:"item_count"`
	Items         []string `json:"items"`
	PlacedAt      string   `json:"placed_at"`
}
