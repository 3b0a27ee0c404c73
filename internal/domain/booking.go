package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is the permanent record created by consuming a hold. TotalPrice is
// carried over from the hold, where it was locked at creation time.
type Booking struct {
	ID         string
	HotelID    string
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice int64
	Status     BookingStatus
	// HoldID references the hold this booking was created from.
	HoldID    string
	CreatedAt time.Time
}
