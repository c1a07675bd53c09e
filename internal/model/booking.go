package model

import "time"

// Booking mirrors the `bookings` table. BookingCode is a server-generated
// UUID handed to the client as a human-shareable confirmation reference.
// UserID ties the booking to the account that owns it; reads are limited
// to that user or an admin.
type Booking struct {
	ID          uint64    `json:"id"`
	BookingCode string    `json:"bookingCode"`
	UserID      uint64    `json:"userId"`
	UserEmail   string    `json:"userEmail"`
	TourName    string    `json:"tourName"`
	FullName    string    `json:"fullName"`
	GuestSize   int       `json:"guestSize"`
	Phone       string    `json:"phone"`
	BookAt      time.Time `json:"bookAt"`
	CreatedAt   time.Time `json:"created_at"`
}
