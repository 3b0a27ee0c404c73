package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tnohrer/HBA/internal/app"
	"github.com/tnohrer/HBA/internal/domain"
)

// HoldCreator is the minimal interface needed to create a hold.
type HoldCreator interface {
	CreateHold(ctx context.Context, in app.CreateHoldInput) (domain.Hold, error)
}

// HoldAccessor covers the per-hold operations routed under /holds/{id}.
type HoldAccessor interface {
	GetHold(ctx context.Context, holdID string) (domain.Hold, error)
	ExtendHold(ctx context.Context, holdID string, by time.Duration) (domain.Hold, error)
	ReleaseHold(ctx context.Context, holdID string) bool
	RemainingSeconds(ctx context.Context, holdID string) int64
}

// BookingConfirmer consumes a hold into a booking.
type BookingConfirmer interface {
	ConfirmBooking(ctx context.Context, in app.ConfirmBookingInput) (domain.Booking, error)
}

// HandleCreateHold returns the handler for POST /holds.
func HandleCreateHold(svc HoldCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req createHoldRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		in, err := req.validate()
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
			return
		}

		hold, err := svc.CreateHold(r.Context(), in)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(holdToResponse(hold))
	}
}

// HandleHoldByID routes the /holds/{id}[/action] subresources: GET and
// DELETE on the hold itself, POST extend, GET remaining, POST confirm.
func HandleHoldByID(svc HoldAccessor, confirmer BookingConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holdID, action, ok := parseHoldPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch action {
		case "":
			switch r.Method {
			case http.MethodGet:
				getHold(w, r, svc, holdID)
			case http.MethodDelete:
				releaseHold(w, r, svc, holdID)
			default:
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			}
		case "extend":
			if r.Method != http.MethodPost {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			extendHold(w, r, svc, holdID)
		case "remaining":
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			remaining(w, r, svc, holdID)
		case "confirm":
			if r.Method != http.MethodPost {
				writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
				return
			}
			confirmHold(w, r, confirmer, holdID)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func parseHoldPath(path string) (holdID, action string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || len(parts) > 3 || parts[0] != "holds" || parts[1] == "" {
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

func getHold(w http.ResponseWriter, r *http.Request, svc HoldAccessor, holdID string) {
	hold, err := svc.GetHold(r.Context(), holdID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	resp := holdToResponse(hold)
	resp.RemainingSeconds = svc.RemainingSeconds(r.Context(), holdID)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func releaseHold(w http.ResponseWriter, r *http.Request, svc HoldAccessor, holdID string) {
	released := svc.ReleaseHold(r.Context(), holdID)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(releaseHoldResponse{Released: released})
}

func extendHold(w http.ResponseWriter, r *http.Request, svc HoldAccessor, holdID string) {
	var req extendHoldRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// An empty body means "use the default extension".
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if req.AdditionalSeconds < 0 {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "additional_seconds must not be negative")
		return
	}

	hold, err := svc.ExtendHold(r.Context(), holdID, time.Duration(req.AdditionalSeconds)*time.Second)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := holdToResponse(hold)
	resp.RemainingSeconds = svc.RemainingSeconds(r.Context(), holdID)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func remaining(w http.ResponseWriter, r *http.Request, svc HoldAccessor, holdID string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(remainingResponse{
		HoldID:           holdID,
		RemainingSeconds: svc.RemainingSeconds(r.Context(), holdID),
	})
}

func confirmHold(w http.ResponseWriter, r *http.Request, confirmer BookingConfirmer, holdID string) {
	var req confirmHoldRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	in, err := req.validate(holdID)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		return
	}

	booking, err := confirmer.ConfirmBooking(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(bookingToResponse(booking))
}

type createHoldRequest struct {
	HotelID    string `json:"hotel_id"`
	RoomTypeID string `json:"room_type_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
	TotalPrice int64  `json:"total_price"`
}

func (r createHoldRequest) validate() (app.CreateHoldInput, error) {
	if r.HotelID == "" || r.RoomTypeID == "" {
		return app.CreateHoldInput{}, errors.New("hotel_id and room_type_id are required")
	}
	checkIn, err := domain.ParseDate(r.CheckIn)
	if err != nil {
		return app.CreateHoldInput{}, errors.New("check_in must be a YYYY-MM-DD date")
	}
	checkOut, err := domain.ParseDate(r.CheckOut)
	if err != nil {
		return app.CreateHoldInput{}, errors.New("check_out must be a YYYY-MM-DD date")
	}
	return app.CreateHoldInput{
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
	}, nil
}

type extendHoldRequest struct {
	AdditionalSeconds int64 `json:"additional_seconds"`
}

type confirmHoldRequest struct {
	HotelID    string `json:"hotel_id"`
	RoomTypeID string `json:"room_type_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
}

func (r confirmHoldRequest) validate(holdID string) (app.ConfirmBookingInput, error) {
	if r.HotelID == "" || r.RoomTypeID == "" {
		return app.ConfirmBookingInput{}, errors.New("hotel_id and room_type_id are required")
	}
	checkIn, err := domain.ParseDate(r.CheckIn)
	if err != nil {
		return app.ConfirmBookingInput{}, errors.New("check_in must be a YYYY-MM-DD date")
	}
	checkOut, err := domain.ParseDate(r.CheckOut)
	if err != nil {
		return app.ConfirmBookingInput{}, errors.New("check_out must be a YYYY-MM-DD date")
	}
	return app.ConfirmBookingInput{
		HoldID:     holdID,
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     r.Guests,
	}, nil
}

type holdResponse struct {
	ID               string    `json:"id"`
	HotelID          string    `json:"hotel_id"`
	RoomTypeID       string    `json:"room_type_id"`
	HolderID         string    `json:"holder_id"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	Guests           int       `json:"guests"`
	TotalPrice       int64     `json:"total_price"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	RemainingSeconds int64     `json:"remaining_seconds,omitempty"`
}

func holdToResponse(h domain.Hold) holdResponse {
	return holdResponse{
		ID:         h.ID,
		HotelID:    h.HotelID,
		RoomTypeID: h.RoomTypeID,
		HolderID:   h.HolderID,
		CheckIn:    h.CheckIn.Format(domain.DateLayout),
		CheckOut:   h.CheckOut.Format(domain.DateLayout),
		Guests:     h.Guests,
		TotalPrice: h.TotalPrice,
		CreatedAt:  h.CreatedAt,
		ExpiresAt:  h.ExpiresAt,
	}
}

type releaseHoldResponse struct {
	Released bool `json:"released"`
}

type remainingResponse struct {
	HoldID           string `json:"hold_id"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}
