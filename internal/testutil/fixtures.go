// Package testutil provides shared fixtures for service tests: a small
// deterministic catalog instead of the full demo inventory.
package testutil

import (
	"github.com/tnohrer/HBA/internal/catalog"
	"github.com/tnohrer/HBA/internal/domain"
)

// NewCatalog returns a two-hotel catalog with known ids, capacities and
// prices.
func NewCatalog() *catalog.Catalog {
	return catalog.NewWith(Hotels(), Destinations())
}

func Hotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:        "hotel-1",
			Name:      "Grand City Hotel",
			Location:  "New York, New York",
			Rating:    4.5,
			Price:     199,
			Amenities: []string{"Free WiFi", "Pool", "Gym"},
			RoomTypes: []domain.RoomType{
				{ID: "room-A", Name: "Standard Room", Price: 199, Capacity: 2, Status: domain.RoomStatusAvailable},
				{ID: "room-B", Name: "Luxury Suite", Price: 399, Capacity: 4, Status: domain.RoomStatusAvailable},
			},
		},
		{
			ID:        "hotel-2",
			Name:      "Seaside Resort & Spa",
			Location:  "Miami, Florida",
			Rating:    4.8,
			Price:     299,
			Amenities: []string{"Beachfront", "Free WiFi", "Spa"},
			RoomTypes: []domain.RoomType{
				{ID: "room-C", Name: "Ocean View Room", Price: 299, Capacity: 3, Status: domain.RoomStatusAvailable},
			},
		},
	}
}

func Destinations() []domain.DestinationSuggestion {
	return []domain.DestinationSuggestion{
		{ID: "new-york", Name: "New York", Country: "United States", PopularityScore: 95},
		{ID: "miami", Name: "Miami", Country: "United States", PopularityScore: 88},
		{ID: "florida", Name: "Florida", Country: "United States", PopularityScore: 91},
	}
}
