package domain

import "errors"

var (
	ErrInvalidDateRange  = errors.New("check-out must be after check-in")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrInvalidPrice      = errors.New("total price must not be negative")
	ErrHotelNotFound     = errors.New("hotel not found")
	ErrRoomTypeNotFound  = errors.New("room type not found")
	ErrRoomUnavailable   = errors.New("room type is currently held")
	ErrHoldNotFound      = errors.New("hold not found")
	ErrHoldExpired       = errors.New("hold expired")
	ErrBookingMismatch   = errors.New("booking details do not match the hold")
	ErrBookingNotFound   = errors.New("booking not found")
)
