package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		target         string
		available      bool
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "available",
			target:         "/availability?hotel_id=hotel-1&room_type_id=room-A",
			available:      true,
			expectedStatus: http.StatusOK,
			expectedSubstr: `"available":true`,
		},
		{
			name:           "held room",
			target:         "/availability?hotel_id=hotel-1&room_type_id=room-A",
			available:      false,
			expectedStatus: http.StatusOK,
			expectedSubstr: `"available":false`,
		},
		{
			name:           "missing hotel_id",
			target:         "/availability?room_type_id=room-A",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing room_type_id",
			target:         "/availability?hotel_id=hotel-1",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubAvailability{available: tt.available}
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			HandleAvailability(svc).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleAvailability_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/availability?hotel_id=h&room_type_id=r", nil)
	rec := httptest.NewRecorder()

	HandleAvailability(&stubAvailability{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

type stubAvailability struct {
	available bool
}

func (s *stubAvailability) IsAvailable(_ context.Context, _, _ string) bool {
	return s.available
}
