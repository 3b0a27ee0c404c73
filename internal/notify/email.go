// Package notify renders guest-facing notices. There is no real mail
// transport in this demo: notices are written to the log, where a production
// deployment would hand them to an email provider instead.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tnohrer/HBA/internal/domain"
)

// EmailLogger is the stub notifier. It satisfies app.Notifier.
type EmailLogger struct {
	logger zerolog.Logger
}

func NewEmailLogger(logger zerolog.Logger) *EmailLogger {
	return &EmailLogger{logger: logger}
}

// BookingConfirmed renders and "sends" the confirmation notice.
func (e *EmailLogger) BookingConfirmed(ctx context.Context, b domain.Booking, hotel domain.Hotel, room domain.RoomType) error {
	body := renderConfirmation(b, hotel, room)
	e.logger.Info().
		Str("booking_id", b.ID).
		Str("hotel_id", b.HotelID).
		Msg("sending booking confirmation")
	e.logger.Debug().Str("body", body).Msg("confirmation content")
	return nil
}

// BookingCancelled "sends" the cancellation notice.
func (e *EmailLogger) BookingCancelled(ctx context.Context, b domain.Booking) error {
	e.logger.Info().
		Str("booking_id", b.ID).
		Str("hotel_id", b.HotelID).
		Msg("sending booking cancellation")
	return nil
}

func renderConfirmation(b domain.Booking, hotel domain.Hotel, room domain.RoomType) string {
	nights := domain.Nights(b.CheckIn, b.CheckOut)
	var sb strings.Builder
	fmt.Fprintf(&sb, "BOOKING CONFIRMATION - %s\n\n", strings.ToUpper(b.ID))
	fmt.Fprintf(&sb, "Hotel: %s (%s)\n", hotel.Name, hotel.Location)
	fmt.Fprintf(&sb, "Rating: %.1f/5 stars\n", hotel.Rating)
	fmt.Fprintf(&sb, "Room: %s (sleeps %d)\n", room.Name, room.Capacity)
	fmt.Fprintf(&sb, "Check-in: %s\n", b.CheckIn.Format(domain.DateLayout))
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOut.Format(domain.DateLayout))
	fmt.Fprintf(&sb, "Nights: %d, Guests: %d\n", nights, b.Guests)
	fmt.Fprintf(&sb, "Room rate: %s per night\n", FormatPrice(room.Price))
	fmt.Fprintf(&sb, "Total: %s\n", FormatPrice(b.TotalPrice))
	fmt.Fprintf(&sb, "Status: %s\n", strings.ToUpper(string(b.Status)))
	return sb.String()
}

// FormatPrice renders whole USD with thousands separators, e.g. $1,299.
func FormatPrice(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}
