package app

import "github.com/google/uuid"

func newHoldID() string {
	return uuid.New().String()
}

func newBookingID() string {
	return uuid.New().String()
}

// newGuestID fabricates a pseudo-user id for the holder. A real deployment
// would take the authenticated session user instead.
func newGuestID() string {
	return "user_" + uuid.New().String()[:8]
}
