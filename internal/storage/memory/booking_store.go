package memory

import (
	"sort"
	"sync"

	"github.com/tnohrer/HBA/internal/domain"
)

// BookingStore keeps confirmed bookings for the lifetime of the process.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{bookings: make(map[string]domain.Booking)}
}

func (s *BookingStore) Put(b domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
}

func (s *BookingStore) Booking(id string) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	return b, ok
}

// SetStatus updates a booking's status and returns the updated record.
func (s *BookingStore) SetStatus(id string, status domain.BookingStatus) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return domain.Booking{}, false
	}
	b.Status = status
	s.bookings[id] = b
	return b, true
}

// List returns all bookings ordered by creation time, newest first.
func (s *BookingStore) List() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
