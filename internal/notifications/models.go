package notifications

import "time"

// BookingConfirmation is the message published when a booking session
// reaches its confirmed state. Downstream consumers (ticket mailers, festival
// dashboards) subscribe to the topic; this service only produces.
type BookingConfirmation struct {
	SessionID   string    `json:"session_id"`
	Reference   string    `json:"reference"`
	EventID     int       `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	EventDay    string    `json:"event_day"`
	TierID      string    `json:"tier_id"`
	TierName    string    `json:"tier_name"`
	Quantity    int       `json:"quantity"`
	TotalPrice  int       `json:"total_price"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
