package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tnohrer/HBA/internal/domain"
)

// HoldLister exposes the active-hold snapshot for the admin view.
type HoldLister interface {
	ActiveHolds(ctx context.Context) []domain.Hold
}

// HandleAdminHolds returns the handler for GET /admin/holds.
func HandleAdminHolds(svc HoldLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		holds := svc.ActiveHolds(r.Context())
		resp := adminHoldsResponse{Holds: make([]holdResponse, 0, len(holds))}
		for _, h := range holds {
			resp.Holds = append(resp.Holds, holdToResponse(h))
		}
		resp.Count = len(resp.Holds)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type adminHoldsResponse struct {
	Holds []holdResponse `json:"holds"`
	Count int            `json:"count"`
}
