// Package catalog provides the static hotel inventory. Data is seeded at
// construction and read-only afterwards, so lookups need no locking.
package catalog

import (
	"strings"

	"github.com/tnohrer/HBA/internal/domain"
)

type Catalog struct {
	hotels  []domain.Hotel
	byID    map[string]domain.Hotel
	destins []domain.DestinationSuggestion
}

// New returns a catalog seeded with the demo inventory.
func New() *Catalog {
	return NewWith(seedHotels(), seedDestinations())
}

// NewWith builds a catalog from explicit data (used by tests).
func NewWith(hotels []domain.Hotel, destinations []domain.DestinationSuggestion) *Catalog {
	byID := make(map[string]domain.Hotel, len(hotels))
	for _, h := range hotels {
		byID[h.ID] = h
	}
	return &Catalog{hotels: hotels, byID: byID, destins: destinations}
}

// Hotels returns the full inventory.
func (c *Catalog) Hotels() []domain.Hotel {
	return c.hotels
}

// Hotel looks up a hotel by id.
func (c *Catalog) Hotel(id string) (domain.Hotel, error) {
	h, ok := c.byID[id]
	if !ok {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	return h, nil
}

// RoomType looks up a room type within a hotel.
func (c *Catalog) RoomType(hotelID, roomTypeID string) (domain.RoomType, error) {
	h, ok := c.byID[hotelID]
	if !ok {
		return domain.RoomType{}, domain.ErrHotelNotFound
	}
	for _, rt := range h.RoomTypes {
		if rt.ID == roomTypeID {
			return rt, nil
		}
	}
	return domain.RoomType{}, domain.ErrRoomTypeNotFound
}

// Cities returns the distinct city part of every hotel location, in
// inventory order.
func (c *Catalog) Cities() []string {
	seen := make(map[string]struct{}, len(c.hotels))
	var cities []string
	for _, h := range c.hotels {
		city := strings.TrimSpace(strings.SplitN(h.Location, ",", 2)[0])
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}
	return cities
}

// Destinations returns the autocomplete destination list.
func (c *Catalog) Destinations() []domain.DestinationSuggestion {
	return c.destins
}
