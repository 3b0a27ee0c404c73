package domain

import "time"

// Hold is a temporary exclusive claim on a room type. At most one unexpired
// hold may exist per (HotelID, RoomTypeID) pair; dates do not narrow the
// claim, so an active hold blocks the room type for every date range.
type Hold struct {
	ID         string
	HotelID    string
	RoomTypeID string
	// HolderID identifies the requesting party. This demo generates a
	// pseudo-guest id; a real deployment would use the session user.
	HolderID   string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice int64
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Active reports whether the hold is still valid at the given instant. This
// is the single expiry predicate; every component consults it so the store,
// the sweeper and the availability checks cannot disagree.
func (h Hold) Active(now time.Time) bool {
	return h.ExpiresAt.After(now)
}

// Remaining returns the time left before expiry, floored at zero.
func (h Hold) Remaining(now time.Time) time.Duration {
	rem := h.ExpiresAt.Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date (no time component) as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Nights returns the length of a stay. Check-in is inclusive, check-out
// exclusive.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
