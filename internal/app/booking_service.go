package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tnohrer/HBA/internal/clock"
	"github.com/tnohrer/HBA/internal/domain"
	"github.com/tnohrer/HBA/internal/metrics"
)

// BookingRepository stores the terminal booking records.
type BookingRepository interface {
	Put(b domain.Booking)
	Booking(id string) (domain.Booking, bool)
	SetStatus(id string, status domain.BookingStatus) (domain.Booking, bool)
	List() []domain.Booking
}

// Notifier delivers guest-facing notices. Delivery is best-effort: a failed
// notification never rolls back the booking it announces.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b domain.Booking, hotel domain.Hotel, room domain.RoomType) error
	BookingCancelled(ctx context.Context, b domain.Booking) error
}

// BookingService converts holds into bookings and manages the booking
// records afterwards.
type BookingService struct {
	holds    HoldRepository
	bookings BookingRepository
	catalog  Catalog
	notifier Notifier
	clock    clock.Clock
}

func NewBookingService(holds HoldRepository, bookings BookingRepository, cat Catalog, notifier Notifier, clk clock.Clock) *BookingService {
	return &BookingService{
		holds:    holds,
		bookings: bookings,
		catalog:  cat,
		notifier: notifier,
		clock:    clk,
	}
}

type ConfirmBookingInput struct {
	HoldID     string
	HotelID    string
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
}

// ConfirmBooking consumes a hold into a confirmed booking. The proposed
// booking must match the held hotel, room type, dates and guest count
// exactly; the price is taken from the hold, where it was locked at creation
// time. A mismatch leaves the hold untouched.
func (s *BookingService) ConfirmBooking(ctx context.Context, in ConfirmBookingInput) (domain.Booking, error) {
	hold, ok := s.holds.Hold(in.HoldID)
	if !ok {
		return domain.Booking{}, domain.ErrHoldNotFound
	}

	now := s.clock.Now()
	if !hold.Active(now) {
		// Eviction stays with the sweeper; the hold is just unusable here.
		return domain.Booking{}, domain.ErrHoldExpired
	}

	if in.HotelID != hold.HotelID ||
		in.RoomTypeID != hold.RoomTypeID ||
		!in.CheckIn.Equal(hold.CheckIn) ||
		!in.CheckOut.Equal(hold.CheckOut) ||
		in.Guests != hold.Guests {
		return domain.Booking{}, domain.ErrBookingMismatch
	}

	// A concurrent consume, release or sweep may have won the race since the
	// read above; whoever removes the hold owns the conversion.
	if !s.holds.Remove(in.HoldID) {
		return domain.Booking{}, domain.ErrHoldNotFound
	}

	booking := domain.Booking{
		ID:         newBookingID(),
		HotelID:    hold.HotelID,
		RoomTypeID: hold.RoomTypeID,
		CheckIn:    hold.CheckIn,
		CheckOut:   hold.CheckOut,
		Guests:     hold.Guests,
		TotalPrice: hold.TotalPrice,
		Status:     domain.BookingStatusConfirmed,
		HoldID:     hold.ID,
		CreatedAt:  now,
	}
	s.bookings.Put(booking)
	metrics.BookingsConfirmed.Inc()

	s.notifyConfirmed(ctx, booking)
	return booking, nil
}

func (s *BookingService) notifyConfirmed(ctx context.Context, booking domain.Booking) {
	if s.notifier == nil {
		return
	}
	hotel, err := s.catalog.Hotel(booking.HotelID)
	if err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("skipping confirmation notice")
		return
	}
	room, err := s.catalog.RoomType(booking.HotelID, booking.RoomTypeID)
	if err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("skipping confirmation notice")
		return
	}
	if err := s.notifier.BookingConfirmed(ctx, booking, hotel, room); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("confirmation notice failed")
	}
}

// Booking returns a stored booking by id.
func (s *BookingService) Booking(ctx context.Context, id string) (domain.Booking, error) {
	b, ok := s.bookings.Booking(id)
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return b, nil
}

// CancelBooking marks a booking cancelled. Cancelling twice is harmless.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (domain.Booking, error) {
	b, ok := s.bookings.SetStatus(id, domain.BookingStatusCancelled)
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	if s.notifier != nil {
		if err := s.notifier.BookingCancelled(ctx, b); err != nil {
			log.Warn().Err(err).Str("booking_id", b.ID).Msg("cancellation notice failed")
		}
	}
	return b, nil
}

// Bookings lists all stored bookings, newest first.
func (s *BookingService) Bookings(ctx context.Context) []domain.Booking {
	return s.bookings.List()
}
