package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tnohrer/HBA/internal/app"
	"github.com/tnohrer/HBA/internal/domain"
)

func TestHandleCreateHold(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	successHold := domain.Hold{
		ID:         "hold-123",
		HotelID:    "hotel-1",
		RoomTypeID: "room-A",
		CheckIn:    now,
		CheckOut:   now.AddDate(0, 0, 2),
		Guests:     2,
		TotalPrice: 398,
		CreatedAt:  now,
		ExpiresAt:  now.Add(10 * time.Minute),
	}

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"hotel_id":"hotel-1","room_type_id":"room-A","check_in":"2025-06-01","check_out":"2025-06-03","guests":2,"total_price":398}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"id":"hold-123"`,
		},
		{
			name:           "invalid json",
			body:           `{"hotel_id":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown field",
			body:           `{"hotel_id":"hotel-1","room_type_id":"room-A","check_in":"2025-06-01","check_out":"2025-06-03","guests":2,"surprise":true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing room type",
			body:           `{"hotel_id":"hotel-1","check_in":"2025-06-01","check_out":"2025-06-03","guests":2}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad date",
			body:           `{"hotel_id":"hotel-1","room_type_id":"room-A","check_in":"June 1st","check_out":"2025-06-03","guests":2}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid guest count",
			body:           `{"hotel_id":"hotel-1","room_type_id":"room-A","check_in":"2025-06-01","check_out":"2025-06-03","guests":0}`,
			serviceErr:     domain.ErrInvalidGuestCount,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "room type not found",
			body:           `{"hotel_id":"hotel-1","room_type_id":"room-X","check_in":"2025-06-01","check_out":"2025-06-03","guests":2}`,
			serviceErr:     domain.ErrRoomTypeNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "room unavailable",
			body:           `{"hotel_id":"hotel-1","room_type_id":"room-A","check_in":"2025-06-01","check_out":"2025-06-03","guests":2}`,
			serviceErr:     domain.ErrRoomUnavailable,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "internal error",
			body:           `{"hotel_id":"hotel-1","room_type_id":"room-A","check_in":"2025-06-01","check_out":"2025-06-03","guests":2}`,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubHoldCreator{
				hold: successHold,
				err:  tt.serviceErr,
			}
			req := httptest.NewRequest(http.MethodPost, "/holds", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler := HandleCreateHold(svc)
			handler.ServeHTTP(rec, req)

			res := rec.Result()
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
			if tt.expectedSubstr != "" {
				body := rec.Body.String()
				if !strings.Contains(body, tt.expectedSubstr) {
					t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, body)
				}
			}
		})
	}
}

func TestHandleHoldByID_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "get hold",
			method:         http.MethodGet,
			path:           "/holds/hold-123",
			expectedStatus: http.StatusOK,
			expectedSubstr: `"id":"hold-123"`,
		},
		{
			name:           "release hold",
			method:         http.MethodDelete,
			path:           "/holds/hold-123",
			expectedStatus: http.StatusOK,
			expectedSubstr: `"released":true`,
		},
		{
			name:           "remaining",
			method:         http.MethodGet,
			path:           "/holds/hold-123/remaining",
			expectedStatus: http.StatusOK,
			expectedSubstr: `"remaining_seconds":300`,
		},
		{
			name:           "extend",
			method:         http.MethodPost,
			path:           "/holds/hold-123/extend",
			body:           `{"additional_seconds":120}`,
			expectedStatus: http.StatusOK,
			expectedSubstr: `"id":"hold-123"`,
		},
		{
			name:           "extend empty body uses default",
			method:         http.MethodPost,
			path:           "/holds/hold-123/extend",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "extend negative seconds",
			method:         http.MethodPost,
			path:           "/holds/hold-123/extend",
			body:           `{"additional_seconds":-5}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "confirm",
			method:         http.MethodPost,
			path:           "/holds/hold-123/confirm",
			body:           `{"hotel_id":"hotel-1","room_type_id":"room-A","check_in":"2025-06-01","check_out":"2025-06-03","guests":2}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"status":"confirmed"`,
		},
		{
			name:           "confirm bad body",
			method:         http.MethodPost,
			path:           "/holds/hold-123/confirm",
			body:           `{"hotel_id":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown action",
			method:         http.MethodGet,
			path:           "/holds/hold-123/upgrade",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrong method on hold",
			method:         http.MethodPut,
			path:           "/holds/hold-123",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "wrong method on extend",
			method:         http.MethodGet,
			path:           "/holds/hold-123/extend",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "missing id",
			method:         http.MethodGet,
			path:           "/holds//remaining",
			expectedStatus: http.StatusNotFound,
		},
	}

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubHoldAccessor{
				hold: domain.Hold{
					ID:         "hold-123",
					HotelID:    "hotel-1",
					RoomTypeID: "room-A",
					CheckIn:    now,
					CheckOut:   now.AddDate(0, 0, 2),
					Guests:     2,
					ExpiresAt:  now.Add(5 * time.Minute),
				},
				released:  true,
				remaining: 300,
			}
			confirmer := &stubConfirmer{
				booking: domain.Booking{
					ID:         "booking-1",
					HotelID:    "hotel-1",
					RoomTypeID: "room-A",
					CheckIn:    now,
					CheckOut:   now.AddDate(0, 0, 2),
					Guests:     2,
					Status:     domain.BookingStatusConfirmed,
					HoldID:     "hold-123",
				},
			}

			var body *bytes.Buffer
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			} else {
				body = &bytes.Buffer{}
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()

			handler := HandleHoldByID(svc, confirmer)
			handler.ServeHTTP(rec, req)

			res := rec.Result()
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, res.StatusCode, rec.Body.String())
			}
			if tt.expectedSubstr != "" {
				if !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
					t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
				}
			}
		})
	}
}

func TestHandleHoldByID_NotFoundAndExpired(t *testing.T) {
	t.Parallel()

	svc := &stubHoldAccessor{err: domain.ErrHoldNotFound}

	req := httptest.NewRequest(http.MethodGet, "/holds/gone", nil)
	rec := httptest.NewRecorder()
	HandleHoldByID(svc, &stubConfirmer{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for absent hold, got %d", rec.Code)
	}

	confirmer := &stubConfirmer{err: domain.ErrHoldExpired}
	body := bytes.NewBufferString(`{"hotel_id":"h","room_type_id":"r","check_in":"2025-06-01","check_out":"2025-06-02","guests":1}`)
	req = httptest.NewRequest(http.MethodPost, "/holds/stale/confirm", body)
	rec = httptest.NewRecorder()
	HandleHoldByID(svc, confirmer).ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for expired hold, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hold_expired") {
		t.Fatalf("expected hold_expired code, got %q", rec.Body.String())
	}
}

func TestHandleHoldByID_MismatchKeepsConflictCode(t *testing.T) {
	t.Parallel()

	svc := &stubHoldAccessor{}
	confirmer := &stubConfirmer{err: domain.ErrBookingMismatch}

	body := bytes.NewBufferString(`{"hotel_id":"other","room_type_id":"r","check_in":"2025-06-01","check_out":"2025-06-02","guests":1}`)
	req := httptest.NewRequest(http.MethodPost, "/holds/hold-123/confirm", body)
	rec := httptest.NewRecorder()

	HandleHoldByID(svc, confirmer).ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "booking_mismatch") {
		t.Fatalf("expected booking_mismatch code, got %q", rec.Body.String())
	}
}

type stubHoldCreator struct {
	hold domain.Hold
	err  error
}

func (s *stubHoldCreator) CreateHold(_ context.Context, _ app.CreateHoldInput) (domain.Hold, error) {
	return s.hold, s.err
}

type stubHoldAccessor struct {
	hold      domain.Hold
	err       error
	released  bool
	remaining int64
}

func (s *stubHoldAccessor) GetHold(_ context.Context, _ string) (domain.Hold, error) {
	return s.hold, s.err
}

func (s *stubHoldAccessor) ExtendHold(_ context.Context, _ string, _ time.Duration) (domain.Hold, error) {
	return s.hold, s.err
}

func (s *stubHoldAccessor) ReleaseHold(_ context.Context, _ string) bool {
	return s.released
}

func (s *stubHoldAccessor) RemainingSeconds(_ context.Context, _ string) int64 {
	return s.remaining
}

type stubConfirmer struct {
	booking domain.Booking
	err     error
}

func (s *stubConfirmer) ConfirmBooking(_ context.Context, _ app.ConfirmBookingInput) (domain.Booking, error) {
	return s.booking, s.err
}
