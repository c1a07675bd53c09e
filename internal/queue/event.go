// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully stored.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingCreatedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	BookingCode string `json:"booking_code"`
	UserID      uint64 `json:"user_id"`
	UserEmail   string `json:"user_email"`
	TourName    string `json:"tour_name"`
	FullName    string `json:"full_name"`
	GuestSize   int    `json:"guest_size"`
	Phone       string `json:"phone"`
	BookAt      string `json:"book_at"`
	CreatedAt   string `json:"created_at"`
}
