package domain

import (
	"fmt"
	"time"
)

// Booking is one confirmed reservation. Rows are append-only: once saved a
// booking is never mutated or deleted, and saving the same trip twice creates
// two distinct bookings.
type Booking struct {
	ID          int64     `json:"booking_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	TravelDate  string    `json:"travel_date"`
	Flight      Flight    `json:"flight"`
	Hotel       Hotel     `json:"hotel"`
	Itinerary   string    `json:"itinerary"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConfirmationCode derives the human-readable code from the primary key.
// The TRV-NNNNNN format is a stable external contract once issued.
func (b Booking) ConfirmationCode() string {
	return ConfirmationCode(b.ID)
}

func ConfirmationCode(id int64) string {
	return fmt.Sprintf("TRV-%06d", id)
}

// BookingSummary is the projection returned by recent-booking listings,
// without the serialized flight/hotel payloads.
type BookingSummary struct {
	ID               int64     `json:"booking_id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	TravelDate       string    `json:"travel_date"`
	ConfirmationCode string    `json:"confirmation_code"`
	CreatedAt        time.Time `json:"created_at"`
}
