package events

import (
	"time"
)

type OrderPlacedEvent struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	Email      string    `json:"email"`
	TotalItems int       `json:"total_items"`
	GrandTotal string    `json:"grand_total"`
	Payment    string    `json:"payment"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id"`
}

type SellerAppliedEvent struct {
	EventID       string    `json:"event_id"`
	ApplicationID string    `json:"application_id"`
	BusinessName  string    `json:"business_name"`
	BusinessType  string    `json:"business_type"`
	ItemCount     int       `json:"item_count"`
	Timestamp     time.Time `json:"timestamp"`
	RequestID     string    `json:"request_id"`
}
