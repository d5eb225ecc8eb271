package domain

import "time"

// CheckoutRecord is the persisted result of a successful checkout.
// It is written best-effort; the checkout response never depends on it.
type CheckoutRecord struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	CartItems []CartItem `json:"cartItems" bson:"cartItems"`
	Total     float64    `json:"total" bson:"total"`
	Timestamp time.Time  `json:"timestamp" bson:"timestamp"`
}

// Receipt is the checkout response returned to the client.
type Receipt struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Timestamp string     `json:"timestamp"`
}
