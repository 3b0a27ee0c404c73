package app

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tnohrer/HBA/internal/domain"
)

// Availability is the oracle consulted while filtering search results. A
// room type with an active hold is not bookable capacity.
type Availability interface {
	IsAvailable(ctx context.Context, hotelID, roomTypeID string) bool
}

// SearchCatalog extends the core catalog surface with the search-only data.
type SearchCatalog interface {
	Catalog
	Cities() []string
	Destinations() []domain.DestinationSuggestion
}

// SearchService answers catalog queries: hotel search, details, destination
// suggestions, cities and popular hotels.
type SearchService struct {
	catalog      SearchCatalog
	availability Availability
}

func NewSearchService(cat SearchCatalog, avail Availability) *SearchService {
	return &SearchService{catalog: cat, availability: avail}
}

// stateAbbreviations lets "FL" match "Miami, Florida" and the like.
var stateAbbreviations = map[string][]string{
	"california":    {"ca", "calif"},
	"florida":       {"fl", "fla"},
	"new york":      {"ny"},
	"nevada":        {"nv", "nev"},
	"massachusetts": {"ma", "mass"},
	"illinois":      {"il", "ill"},
	"colorado":      {"co", "colo"},
	"hawaii":        {"hi"},
}

// SearchHotels filters and sorts the inventory. A hotel survives filtering
// only if at least one of its rooms fits the guest count, is in sellable
// catalog status and has no active hold; prices are then adjusted for the
// requested dates.
func (s *SearchService) SearchHotels(ctx context.Context, params domain.SearchParams, sortBy domain.SortOption) []domain.Hotel {
	var results []domain.Hotel
	for _, hotel := range s.catalog.Hotels() {
		if !matchesLocation(hotel.Location, params.Location) {
			continue
		}
		if !s.hasBookableRoom(ctx, hotel, params.Guests) {
			continue
		}
		f := params.Filters
		if f.MinPrice != nil && hotel.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && hotel.Price > *f.MaxPrice {
			continue
		}
		if f.MinRating != nil && hotel.Rating < *f.MinRating {
			continue
		}
		if !hasAmenities(hotel.Amenities, f.Amenities) {
			continue
		}
		results = append(results, hotel)
	}

	if !params.CheckIn.IsZero() && !params.CheckOut.IsZero() {
		results = adjustPricesForDates(results, params.CheckIn)
	}

	sortHotels(results, sortBy)
	return results
}

func (s *SearchService) hasBookableRoom(ctx context.Context, hotel domain.Hotel, guests int) bool {
	for _, room := range hotel.RoomTypes {
		if room.Capacity >= guests &&
			room.Status == domain.RoomStatusAvailable &&
			s.availability.IsAvailable(ctx, hotel.ID, room.ID) {
			return true
		}
	}
	return false
}

func matchesLocation(hotelLocation, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	location := strings.ToLower(hotelLocation)
	if strings.Contains(location, search) {
		return true
	}
	for _, part := range strings.Split(location, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, search) || strings.Contains(search, part) {
			return true
		}
	}
	for fullName, abbrevs := range stateAbbreviations {
		if !strings.Contains(location, fullName) {
			continue
		}
		if search == fullName {
			return true
		}
		for _, abbrev := range abbrevs {
			if search == abbrev {
				return true
			}
		}
	}
	return false
}

func hasAmenities(hotelAmenities, wanted []string) bool {
	for _, want := range wanted {
		found := false
		for _, have := range hotelAmenities {
			haveLower := strings.ToLower(have)
			wantLower := strings.ToLower(want)
			if strings.Contains(haveLower, wantLower) || strings.Contains(wantLower, haveLower) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// adjustPricesForDates applies the demand model: weekends cost 20% more and
// the June-September peak season 30% more, compounding.
func adjustPricesForDates(hotels []domain.Hotel, checkIn time.Time) []domain.Hotel {
	multiplier := 1.0
	if wd := checkIn.Weekday(); wd == time.Saturday || wd == time.Sunday {
		multiplier *= 1.2
	}
	if m := checkIn.Month(); m >= time.June && m <= time.September {
		multiplier *= 1.3
	}
	if multiplier == 1.0 {
		return hotels
	}

	adjusted := make([]domain.Hotel, len(hotels))
	for i, hotel := range hotels {
		hotel.Price = int64(math.Round(float64(hotel.Price) * multiplier))
		rooms := make([]domain.RoomType, len(hotel.RoomTypes))
		for j, room := range hotel.RoomTypes {
			room.Price = int64(math.Round(float64(room.Price) * multiplier))
			rooms[j] = room
		}
		hotel.RoomTypes = rooms
		adjusted[i] = hotel
	}
	return adjusted
}

func sortHotels(hotels []domain.Hotel, sortBy domain.SortOption) {
	switch sortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Price < hotels[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Price > hotels[j].Price })
	case domain.SortRatingAsc:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Rating < hotels[j].Rating })
	case domain.SortNameAsc:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Name < hotels[j].Name })
	case domain.SortPopularityDesc:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].PopularityScore() > hotels[j].PopularityScore() })
	default: // rating-desc
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Rating > hotels[j].Rating })
	}
}

// HotelDetails returns a single hotel by id.
func (s *SearchService) HotelDetails(ctx context.Context, id string) (domain.Hotel, error) {
	return s.catalog.Hotel(id)
}

const maxSuggestions = 5

// Suggestions returns up to five destinations matching the query, most
// popular first. An empty query yields nothing.
func (s *SearchService) Suggestions(ctx context.Context, query string) []domain.DestinationSuggestion {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var matches []domain.DestinationSuggestion
	for _, d := range s.catalog.Destinations() {
		if strings.Contains(strings.ToLower(d.Name), query) || strings.Contains(strings.ToLower(d.Country), query) {
			matches = append(matches, d)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].PopularityScore > matches[j].PopularityScore
	})
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return matches
}

// Cities returns the distinct cities with inventory.
func (s *SearchService) Cities(ctx context.Context) []string {
	return s.catalog.Cities()
}

const defaultPopularLimit = 3

// PopularHotels returns the top-rated hotels for the landing page.
func (s *SearchService) PopularHotels(ctx context.Context, limit int) []domain.Hotel {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	hotels := append([]domain.Hotel(nil), s.catalog.Hotels()...)
	sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Rating > hotels[j].Rating })
	if len(hotels) > limit {
		hotels = hotels[:limit]
	}
	return hotels
}
