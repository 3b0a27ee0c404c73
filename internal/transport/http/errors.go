package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tnohrer/HBA/internal/domain"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidDateRange   = "invalid_date_range"
	codeInvalidGuestCount  = "invalid_guest_count"
	codeInvalidPrice       = "invalid_price"
	codeInvalidQuery       = "invalid_query"
	codeHotelNotFound      = "hotel_not_found"
	codeRoomTypeNotFound   = "room_type_not_found"
	codeRoomUnavailable    = "room_unavailable"
	codeHoldNotFound       = "hold_not_found"
	codeHoldExpired        = "hold_expired"
	codeBookingMismatch    = "booking_mismatch"
	codeBookingNotFound    = "booking_not_found"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps domain sentinel errors onto HTTP statuses and codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, codeInvalidDateRange, err.Error())
	case errors.Is(err, domain.ErrInvalidGuestCount):
		writeError(w, http.StatusBadRequest, codeInvalidGuestCount, err.Error())
	case errors.Is(err, domain.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
	case errors.Is(err, domain.ErrHotelNotFound):
		writeError(w, http.StatusNotFound, codeHotelNotFound, err.Error())
	case errors.Is(err, domain.ErrRoomTypeNotFound):
		writeError(w, http.StatusNotFound, codeRoomTypeNotFound, err.Error())
	case errors.Is(err, domain.ErrRoomUnavailable):
		writeError(w, http.StatusConflict, codeRoomUnavailable, err.Error())
	case errors.Is(err, domain.ErrHoldNotFound):
		writeError(w, http.StatusNotFound, codeHoldNotFound, err.Error())
	case errors.Is(err, domain.ErrHoldExpired):
		writeError(w, http.StatusConflict, codeHoldExpired, err.Error())
	case errors.Is(err, domain.ErrBookingMismatch):
		writeError(w, http.StatusConflict, codeBookingMismatch, err.Error())
	case errors.Is(err, domain.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, codeBookingNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
