package app

import (
	"context"
	"time"

	"github.com/tnohrer/HBA/internal/clock"
	"github.com/tnohrer/HBA/internal/domain"
	"github.com/tnohrer/HBA/internal/metrics"
)

// HoldRepository is the store surface the hold lifecycle needs. The two
// compound operations (CreateIfRoomFree, ExtendActive) must be atomic with
// respect to each other and to every other mutation.
type HoldRepository interface {
	CreateIfRoomFree(hold domain.Hold, now time.Time) bool
	Hold(id string) (domain.Hold, bool)
	Remove(id string) bool
	ExtendActive(id string, by time.Duration, now time.Time) (domain.Hold, bool)
	HasActiveForRoom(hotelID, roomTypeID string, now time.Time) bool
	ActiveHolds(now time.Time) []domain.Hold
}

// Catalog is the read-only inventory surface used to validate that a hold
// targets a real room.
type Catalog interface {
	Hotel(id string) (domain.Hotel, error)
	RoomType(hotelID, roomTypeID string) (domain.RoomType, error)
	Hotels() []domain.Hotel
}

const (
	defaultHoldTTL  = 10 * time.Minute
	defaultExtendBy = 5 * time.Minute
)

// HoldService implements the hold lifecycle: create, extend, release, query
// and the availability check used by search.
type HoldService struct {
	repo     HoldRepository
	catalog  Catalog
	clock    clock.Clock
	holdTTL  time.Duration
	extendBy time.Duration
}

func NewHoldService(repo HoldRepository, cat Catalog, clk clock.Clock, opts ...HoldServiceOption) *HoldService {
	svc := &HoldService{
		repo:     repo,
		catalog:  cat,
		clock:    clk,
		holdTTL:  defaultHoldTTL,
		extendBy: defaultExtendBy,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type HoldServiceOption func(*HoldService)

// WithHoldTTL overrides the default lifetime of new holds.
func WithHoldTTL(d time.Duration) HoldServiceOption {
	return func(s *HoldService) {
		if d > 0 {
			s.holdTTL = d
		}
	}
}

// WithExtendBy overrides the default extension granted when a request does
// not specify one.
func WithExtendBy(d time.Duration) HoldServiceOption {
	return func(s *HoldService) {
		if d > 0 {
			s.extendBy = d
		}
	}
}

type CreateHoldInput struct {
	HotelID    string
	RoomTypeID string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice int64
}

// CreateHold places a new exclusive hold on a room type. The availability
// check and the insert happen atomically in the store, so concurrent
// requests for the same room type cannot both succeed.
func (s *HoldService) CreateHold(ctx context.Context, in CreateHoldInput) (domain.Hold, error) {
	if in.Guests < 1 {
		return domain.Hold{}, domain.ErrInvalidGuestCount
	}
	if !in.CheckOut.After(in.CheckIn) {
		return domain.Hold{}, domain.ErrInvalidDateRange
	}
	if in.TotalPrice < 0 {
		return domain.Hold{}, domain.ErrInvalidPrice
	}
	if _, err := s.catalog.RoomType(in.HotelID, in.RoomTypeID); err != nil {
		return domain.Hold{}, err
	}

	now := s.clock.Now()
	hold := domain.Hold{
		ID:         newHoldID(),
		HotelID:    in.HotelID,
		RoomTypeID: in.RoomTypeID,
		HolderID:   newGuestID(),
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     in.Guests,
		TotalPrice: in.TotalPrice,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.holdTTL),
	}

	if !s.repo.CreateIfRoomFree(hold, now) {
		return domain.Hold{}, domain.ErrRoomUnavailable
	}

	metrics.HoldsCreated.Inc()
	return hold, nil
}

// ExtendHold pushes an active hold's expiry forward. A non-positive duration
// applies the configured default. Repeated extension is allowed without an
// upper bound. An absent or expired hold is reported as not found; expiry is
// final even when the sweeper has not evicted the record yet.
func (s *HoldService) ExtendHold(ctx context.Context, holdID string, by time.Duration) (domain.Hold, error) {
	if by <= 0 {
		by = s.extendBy
	}
	hold, ok := s.repo.ExtendActive(holdID, by, s.clock.Now())
	if !ok {
		return domain.Hold{}, domain.ErrHoldNotFound
	}
	metrics.HoldsExtended.Inc()
	return hold, nil
}

// ReleaseHold removes a hold and reports whether it still existed. Releasing
// an absent hold is not an error: the sweep routinely beats an explicit
// cancel.
func (s *HoldService) ReleaseHold(ctx context.Context, holdID string) bool {
	released := s.repo.Remove(holdID)
	if released {
		metrics.HoldsReleased.Inc()
	}
	return released
}

// RemainingSeconds returns the whole seconds left on a hold, or zero for an
// absent or expired hold. It never fails; UI countdowns poll it.
func (s *HoldService) RemainingSeconds(ctx context.Context, holdID string) int64 {
	hold, ok := s.repo.Hold(holdID)
	if !ok {
		return 0
	}
	return int64(hold.Remaining(s.clock.Now()).Seconds())
}

// GetHold returns an active hold. Expired-but-unswept records count as not
// found.
func (s *HoldService) GetHold(ctx context.Context, holdID string) (domain.Hold, error) {
	hold, ok := s.repo.Hold(holdID)
	if !ok || !hold.Active(s.clock.Now()) {
		return domain.Hold{}, domain.ErrHoldNotFound
	}
	return hold, nil
}

// IsAvailable reports whether a room type is currently free to hold. The
// answer is computed against the clock at call time, so it is correct even
// between sweeps. Unknown room ids simply report available, matching the
// product behavior of the availability check.
func (s *HoldService) IsAvailable(ctx context.Context, hotelID, roomTypeID string) bool {
	return !s.repo.HasActiveForRoom(hotelID, roomTypeID, s.clock.Now())
}

// ActiveHolds returns a snapshot of all unexpired holds for the admin view.
func (s *HoldService) ActiveHolds(ctx context.Context) []domain.Hold {
	return s.repo.ActiveHolds(s.clock.Now())
}
