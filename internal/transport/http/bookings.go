package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/tnohrer/HBA/internal/domain"
)

// BookingReader serves the stored booking records.
type BookingReader interface {
	Booking(ctx context.Context, id string) (domain.Booking, error)
	Bookings(ctx context.Context) []domain.Booking
	CancelBooking(ctx context.Context, id string) (domain.Booking, error)
}

// HandleBookings routes GET /bookings, GET /bookings/{id} and
// POST /bookings/{id}/cancel.
func HandleBookings(svc BookingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, action, ok := parseBookingPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch {
		case bookingID == "":
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			listBookings(w, r, svc)
		case action == "":
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			getBooking(w, r, svc, bookingID)
		case action == "cancel":
			if r.Method != http.MethodPost {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			cancelBooking(w, r, svc, bookingID)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func parseBookingPath(path string) (bookingID, action string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 1 || len(parts) > 3 || parts[0] != "bookings" {
		return "", "", false
	}
	if len(parts) == 1 {
		return "", "", true
	}
	if parts[1] == "" {
		return "", "", false
	}
	if len(parts) == 3 {
		if parts[2] == "" {
			return "", "", false
		}
		return parts[1], parts[2], true
	}
	return parts[1], "", true
}

func listBookings(w http.ResponseWriter, r *http.Request, svc BookingReader) {
	bookings := svc.Bookings(r.Context())
	resp := bookingListResponse{Bookings: make([]bookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, bookingToResponse(b))
	}
	resp.Count = len(resp.Bookings)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func getBooking(w http.ResponseWriter, r *http.Request, svc BookingReader, bookingID string) {
	booking, err := svc.Booking(r.Context(), bookingID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(bookingToResponse(booking))
}

func cancelBooking(w http.ResponseWriter, r *http.Request, svc BookingReader, bookingID string) {
	booking, err := svc.CancelBooking(r.Context(), bookingID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(bookingToResponse(booking))
}

type bookingResponse struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotel_id"`
	RoomTypeID string    `json:"room_type_id"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Guests     int       `json:"guests"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	HoldID     string    `json:"hold_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func bookingToResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		HotelID:    b.HotelID,
		RoomTypeID: b.RoomTypeID,
		CheckIn:    b.CheckIn.Format(domain.DateLayout),
		CheckOut:   b.CheckOut.Format(domain.DateLayout),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		HoldID:     b.HoldID,
		CreatedAt:  b.CreatedAt,
	}
}

type bookingListResponse struct {
	Bookings []bookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}
