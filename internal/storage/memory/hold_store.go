// Package memory holds the in-process stores behind the booking services.
// There is deliberately no database here: holds are transient by nature and
// the service runs as a single process, so a mutex-guarded map is the
// authoritative store.
package memory

import (
	"sync"
	"time"

	"github.com/tnohrer/HBA/internal/domain"
)

// HoldStore owns every hold record. Consumers keep only hold ids and
// re-fetch state through the store; the read-modify-write sequences that
// matter for correctness (availability-check-then-insert and
// not-expired-check-then-extend) are single methods executed under the write
// lock.
//
// Known limitation carried over from the product behavior: exclusivity is
// per (hotel, room type) only. An active hold blocks the room type for every
// date range, not just overlapping stays.
type HoldStore struct {
	mu    sync.RWMutex
	holds map[string]domain.Hold
}

func NewHoldStore() *HoldStore {
	return &HoldStore{holds: make(map[string]domain.Hold)}
}

// Put inserts or replaces a hold by id.
func (s *HoldStore) Put(hold domain.Hold) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holds[hold.ID] = hold
}

// Hold returns the stored record for id, expired or not. Callers decide what
// expiry means for their operation via domain.Hold.Active.
func (s *HoldStore) Hold(id string) (domain.Hold, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.holds[id]
	return h, ok
}

// Remove deletes a hold and reports whether it existed. Removing an absent
// id is not an error; double release is an expected race.
func (s *HoldStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.holds[id]; !ok {
		return false
	}
	delete(s.holds, id)
	return true
}

// CreateIfRoomFree atomically checks that no unexpired hold exists for the
// hold's (hotel, room type) pair and inserts it. Returns false without
// modifying the store when the pair is already held, so two concurrent
// creates for the same room type cannot both succeed.
func (s *HoldStore) CreateIfRoomFree(hold domain.Hold, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.holds {
		if h.HotelID == hold.HotelID && h.RoomTypeID == hold.RoomTypeID && h.Active(now) {
			return false
		}
	}
	s.holds[hold.ID] = hold
	return true
}

// ExtendActive pushes the expiry of an active hold forward by the given
// duration and returns the updated record. An absent or already expired hold
// is reported as not found; expiry is authoritative once reached, so an
// expired-but-not-yet-swept record is never extended back to life.
func (s *HoldStore) ExtendActive(id string, by time.Duration, now time.Time) (domain.Hold, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holds[id]
	if !ok || !h.Active(now) {
		return domain.Hold{}, false
	}
	h.ExpiresAt = h.ExpiresAt.Add(by)
	s.holds[id] = h
	return h, true
}

// HasActiveForRoom reports whether an unexpired hold exists for the pair.
func (s *HoldStore) HasActiveForRoom(hotelID, roomTypeID string, now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.holds {
		if h.HotelID == hotelID && h.RoomTypeID == roomTypeID && h.Active(now) {
			return true
		}
	}
	return false
}

// ActiveHolds returns a snapshot of every unexpired hold.
func (s *HoldStore) ActiveHolds(now time.Time) []domain.Hold {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Hold, 0, len(s.holds))
	for _, h := range s.holds {
		if h.Active(now) {
			out = append(out, h)
		}
	}
	return out
}

// RemoveExpired evicts every hold whose expiry has passed and returns the
// evicted records. Evicting nothing is a normal outcome.
func (s *HoldStore) RemoveExpired(now time.Time) []domain.Hold {
	s.mu.Lock()
	defer s.mu.Unlock()
	var evicted []domain.Hold
	for id, h := range s.holds {
		if !h.Active(now) {
			evicted = append(evicted, h)
			delete(s.holds, id)
		}
	}
	return evicted
}

// Len returns the number of stored holds, expired or not.
func (s *HoldStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.holds)
}
