package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tnohrer/HBA/internal/clock"
	"github.com/tnohrer/HBA/internal/domain"
	"github.com/tnohrer/HBA/internal/storage/memory"
	"github.com/tnohrer/HBA/internal/testutil"
)

type recordingNotifier struct {
	confirmed []string
	cancelled []string
	err       error
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, b domain.Booking, _ domain.Hotel, _ domain.RoomType) error {
	n.confirmed = append(n.confirmed, b.ID)
	return n.err
}

func (n *recordingNotifier) BookingCancelled(_ context.Context, b domain.Booking) error {
	n.cancelled = append(n.cancelled, b.ID)
	return n.err
}

func confirmInputFor(hold domain.Hold) ConfirmBookingInput {
	return ConfirmBookingInput{
		HoldID:     hold.ID,
		HotelID:    hold.HotelID,
		RoomTypeID: hold.RoomTypeID,
		CheckIn:    hold.CheckIn,
		CheckOut:   hold.CheckOut,
		Guests:     hold.Guests,
	}
}

func setupBooking(t *testing.T, clk clock.Clock) (*HoldService, *BookingService, *recordingNotifier, *memory.HoldStore) {
	t.Helper()
	holdStore := memory.NewHoldStore()
	bookingStore := memory.NewBookingStore()
	cat := testutil.NewCatalog()
	notifier := &recordingNotifier{}
	holdSvc := NewHoldService(holdStore, cat, clk, WithHoldTTL(10*time.Minute))
	bookingSvc := NewBookingService(holdStore, bookingStore, cat, notifier, clk)
	return holdSvc, bookingSvc, notifier, holdStore
}

func TestBookingService_ConfirmBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("consumes the hold into a confirmed booking", func(t *testing.T) {
		holdSvc, bookingSvc, notifier, store := setupBooking(t, clock.NewFixed(now))

		hold, err := holdSvc.CreateHold(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("create hold: %v", err)
		}

		booking, err := bookingSvc.ConfirmBooking(context.Background(), confirmInputFor(hold))
		if err != nil {
			t.Fatalf("confirm: %v", err)
		}
		if booking.Status != domain.BookingStatusConfirmed {
			t.Fatalf("expected confirmed status, got %s", booking.Status)
		}
		if booking.HoldID != hold.ID {
			t.Fatalf("expected booking to reference hold %s, got %s", hold.ID, booking.HoldID)
		}
		if booking.TotalPrice != hold.TotalPrice {
			t.Fatalf("expected price locked from hold (%d), got %d", hold.TotalPrice, booking.TotalPrice)
		}

		// Consume-then-gone.
		if store.Len() != 0 {
			t.Fatalf("expected hold removed, %d left", store.Len())
		}
		if got := holdSvc.RemainingSeconds(context.Background(), hold.ID); got != 0 {
			t.Fatalf("expected 0 remaining after consume, got %d", got)
		}
		if _, err := bookingSvc.ConfirmBooking(context.Background(), confirmInputFor(hold)); err != domain.ErrHoldNotFound {
			t.Fatalf("expected ErrHoldNotFound on second consume, got %v", err)
		}
		if !holdSvc.IsAvailable(context.Background(), hold.HotelID, hold.RoomTypeID) {
			t.Fatalf("expected room available again after consume")
		}

		if len(notifier.confirmed) != 1 {
			t.Fatalf("expected one confirmation notice, got %d", len(notifier.confirmed))
		}
	})

	t.Run("unknown hold", func(t *testing.T) {
		_, bookingSvc, _, _ := setupBooking(t, clock.NewFixed(now))

		_, err := bookingSvc.ConfirmBooking(context.Background(), ConfirmBookingInput{HoldID: "missing"})
		if err != domain.ErrHoldNotFound {
			t.Fatalf("expected ErrHoldNotFound, got %v", err)
		}
	})

	t.Run("expired hold", func(t *testing.T) {
		clk := clock.NewManual(now)
		holdSvc, bookingSvc, _, _ := setupBooking(t, clk)

		hold, err := holdSvc.CreateHold(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("create hold: %v", err)
		}
		clk.Advance(11 * time.Minute)

		_, err = bookingSvc.ConfirmBooking(context.Background(), confirmInputFor(hold))
		if err != domain.ErrHoldExpired {
			t.Fatalf("expected ErrHoldExpired, got %v", err)
		}
	})

	t.Run("mismatch leaves the hold untouched", func(t *testing.T) {
		holdSvc, bookingSvc, _, store := setupBooking(t, clock.NewFixed(now))

		hold, err := holdSvc.CreateHold(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("create hold: %v", err)
		}

		cases := map[string]func(*ConfirmBookingInput){
			"guests":    func(in *ConfirmBookingInput) { in.Guests++ },
			"hotel":     func(in *ConfirmBookingInput) { in.HotelID = "hotel-2" },
			"room type": func(in *ConfirmBookingInput) { in.RoomTypeID = "room-B" },
			"check-in":  func(in *ConfirmBookingInput) { in.CheckIn = in.CheckIn.AddDate(0, 0, 1) },
			"check-out": func(in *ConfirmBookingInput) { in.CheckOut = in.CheckOut.AddDate(0, 0, 1) },
		}
		for name, mutate := range cases {
			in := confirmInputFor(hold)
			mutate(&in)
			if _, err := bookingSvc.ConfirmBooking(context.Background(), in); !errors.Is(err, domain.ErrBookingMismatch) {
				t.Fatalf("%s mismatch: expected ErrBookingMismatch, got %v", name, err)
			}
		}

		stored, ok := store.Hold(hold.ID)
		if !ok {
			t.Fatalf("expected hold to survive mismatched confirms")
		}
		if !stored.ExpiresAt.Equal(hold.ExpiresAt) {
			t.Fatalf("expected expiry unchanged, got %v", stored.ExpiresAt)
		}
	})

	t.Run("notifier failure does not roll back the booking", func(t *testing.T) {
		holdSvc, bookingSvc, notifier, _ := setupBooking(t, clock.NewFixed(now))
		notifier.err = errors.New("smtp down")

		hold, err := holdSvc.CreateHold(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("create hold: %v", err)
		}
		booking, err := bookingSvc.ConfirmBooking(context.Background(), confirmInputFor(hold))
		if err != nil {
			t.Fatalf("expected confirm to succeed despite notifier failure, got %v", err)
		}
		if _, err := bookingSvc.Booking(context.Background(), booking.ID); err != nil {
			t.Fatalf("expected booking stored, got %v", err)
		}
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	holdSvc, bookingSvc, notifier, _ := setupBooking(t, clock.NewFixed(now))

	hold, err := holdSvc.CreateHold(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create hold: %v", err)
	}
	booking, err := bookingSvc.ConfirmBooking(context.Background(), confirmInputFor(hold))
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	cancelled, err := bookingSvc.CancelBooking(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.BookingStatusCancelled {
		t.Fatalf("expected cancelled status, got %s", cancelled.Status)
	}
	if len(notifier.cancelled) != 1 {
		t.Fatalf("expected one cancellation notice, got %d", len(notifier.cancelled))
	}

	// Cancelling again is harmless.
	if _, err := bookingSvc.CancelBooking(context.Background(), booking.ID); err != nil {
		t.Fatalf("second cancel: %v", err)
	}

	if _, err := bookingSvc.CancelBooking(context.Background(), "missing"); err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
