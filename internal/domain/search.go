package domain

import "time"

// SearchParams describe a hotel search. Zero-valued dates skip the
// date-based price adjustment.
type SearchParams struct {
	Location string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Filters  SearchFilters
}

// SearchFilters narrow search results. Nil fields are inactive.
type SearchFilters struct {
	MinPrice  *int64
	MaxPrice  *int64
	MinRating *float64
	Amenities []string
}

type SortOption string

const (
	SortPriceAsc       SortOption = "price-asc"
	SortPriceDesc      SortOption = "price-desc"
	SortRatingDesc     SortOption = "rating-desc"
	SortRatingAsc      SortOption = "rating-asc"
	SortNameAsc        SortOption = "name-asc"
	SortPopularityDesc SortOption = "popularity-desc"
)

// DestinationSuggestion is an autocomplete entry for the search box.
type DestinationSuggestion struct {
	ID              string
	Name            string
	Country         string
	PopularityScore int
}
