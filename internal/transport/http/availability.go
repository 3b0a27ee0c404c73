package http

import (
	"context"
	"encoding/json"
	"net/http"
)

// AvailabilityChecker answers whether a room type is free to hold right now.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, hotelID, roomTypeID string) bool
}

// HandleAvailability returns the handler for GET /availability.
func HandleAvailability(svc AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		hotelID := r.URL.Query().Get("hotel_id")
		roomTypeID := r.URL.Query().Get("room_type_id")
		if hotelID == "" || roomTypeID == "" {
			writeError(w, http.StatusBadRequest, codeInvalidQuery, "hotel_id and room_type_id are required")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(availabilityResponse{
			HotelID:    hotelID,
			RoomTypeID: roomTypeID,
			Available:  svc.IsAvailable(r.Context(), hotelID, roomTypeID),
		})
	}
}

type availabilityResponse struct {
	HotelID    string `json:"hotel_id"`
	RoomTypeID string `json:"room_type_id"`
	Available  bool   `json:"available"`
}
