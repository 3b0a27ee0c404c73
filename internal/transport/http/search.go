package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tnohrer/HBA/internal/domain"
)

// HotelSearcher is the query surface behind the catalog routes.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, params domain.SearchParams, sortBy domain.SortOption) []domain.Hotel
	HotelDetails(ctx context.Context, id string) (domain.Hotel, error)
	PopularHotels(ctx context.Context, limit int) []domain.Hotel
	Suggestions(ctx context.Context, query string) []domain.DestinationSuggestion
	Cities(ctx context.Context) []string
}

// HandleSearch returns the handler for GET /search.
func HandleSearch(svc HotelSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		params, sortBy, err := parseSearchQuery(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidQuery, err.Error())
			return
		}

		hotels := svc.SearchHotels(r.Context(), params, sortBy)
		writeHotelList(w, hotels)
	}
}

func parseSearchQuery(q map[string][]string) (domain.SearchParams, domain.SortOption, error) {
	get := func(key string) string {
		if vs := q[key]; len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	params := domain.SearchParams{Location: get("location")}

	if v := get("check_in"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return domain.SearchParams{}, "", errInvalidQueryParam("check_in")
		}
		params.CheckIn = d
	}
	if v := get("check_out"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return domain.SearchParams{}, "", errInvalidQueryParam("check_out")
		}
		params.CheckOut = d
	}
	if v := get("guests"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return domain.SearchParams{}, "", errInvalidQueryParam("guests")
		}
		params.Guests = n
	}
	if v := get("min_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return domain.SearchParams{}, "", errInvalidQueryParam("min_price")
		}
		params.Filters.MinPrice = &n
	}
	if v := get("max_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return domain.SearchParams{}, "", errInvalidQueryParam("max_price")
		}
		params.Filters.MaxPrice = &n
	}
	if v := get("min_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return domain.SearchParams{}, "", errInvalidQueryParam("min_rating")
		}
		params.Filters.MinRating = &f
	}
	if v := get("amenities"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				params.Filters.Amenities = append(params.Filters.Amenities, a)
			}
		}
	}

	sortBy := domain.SortOption(get("sort"))
	switch sortBy {
	case "", domain.SortPriceAsc, domain.SortPriceDesc, domain.SortRatingDesc,
		domain.SortRatingAsc, domain.SortNameAsc, domain.SortPopularityDesc:
	default:
		return domain.SearchParams{}, "", errInvalidQueryParam("sort")
	}
	return params, sortBy, nil
}

func errInvalidQueryParam(name string) error {
	return fmt.Errorf("invalid query parameter: %s", name)
}

// HandleHotels routes GET /hotels/{id} and GET /hotels/popular.
func HandleHotels(svc HotelSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 2 || parts[0] != "hotels" || parts[1] == "" {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		if parts[1] == "popular" {
			limit := 0
			if v := r.URL.Query().Get("limit"); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil || n < 1 {
					writeError(w, http.StatusBadRequest, codeInvalidQuery, errInvalidQueryParam("limit").Error())
					return
				}
				limit = n
			}
			writeHotelList(w, svc.PopularHotels(r.Context(), limit))
			return
		}

		hotel, err := svc.HotelDetails(r.Context(), parts[1])
		if err != nil {
			writeDomainError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(hotelToResponse(hotel))
	}
}

// HandleDestinations returns the handler for GET /destinations, the search
// box autocomplete.
func HandleDestinations(svc HotelSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		suggestions := svc.Suggestions(r.Context(), r.URL.Query().Get("q"))
		resp := destinationListResponse{Destinations: make([]destinationResponse, 0, len(suggestions))}
		for _, d := range suggestions {
			resp.Destinations = append(resp.Destinations, destinationResponse{
				ID:              d.ID,
				Name:            d.Name,
				Country:         d.Country,
				PopularityScore: d.PopularityScore,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// HandleCities returns the handler for GET /cities.
func HandleCities(svc HotelSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		cities := svc.Cities(r.Context())
		if cities == nil {
			cities = []string{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cityListResponse{Cities: cities})
	}
}

func writeHotelList(w http.ResponseWriter, hotels []domain.Hotel) {
	resp := hotelListResponse{Hotels: make([]hotelResponse, 0, len(hotels))}
	for _, h := range hotels {
		resp.Hotels = append(resp.Hotels, hotelToResponse(h))
	}
	resp.Count = len(resp.Hotels)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

type hotelResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	Price       int64               `json:"price"`
	Rating      float64             `json:"rating"`
	Images      hotelImagesResponse `json:"images"`
	Amenities   []string            `json:"amenities"`
	RoomTypes   []roomTypeResponse  `json:"room_types"`
}

type hotelImagesResponse struct {
	Lobby    []string `json:"lobby"`
	Exterior []string `json:"exterior"`
	Rooms    []string `json:"rooms"`
}

type roomTypeResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Capacity    int      `json:"capacity"`
	Status      string   `json:"status"`
	Images      []string `json:"images"`
}

func hotelToResponse(h domain.Hotel) hotelResponse {
	rooms := make([]roomTypeResponse, 0, len(h.RoomTypes))
	for _, room := range h.RoomTypes {
		rooms = append(rooms, roomTypeResponse{
			ID:          room.ID,
			Name:        room.Name,
			Description: room.Description,
			Price:       room.Price,
			Capacity:    room.Capacity,
			Status:      string(room.Status),
			Images:      room.Images,
		})
	}
	return hotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Location:    h.Location,
		Price:       h.Price,
		Rating:      h.Rating,
		Images: hotelImagesResponse{
			Lobby:    h.Images.Lobby,
			Exterior: h.Images.Exterior,
			Rooms:    h.Images.Rooms,
		},
		Amenities: h.Amenities,
		RoomTypes: rooms,
	}
}

type hotelListResponse struct {
	Hotels []hotelResponse `json:"hotels"`
	Count  int             `json:"count"`
}

type destinationResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Country         string `json:"country"`
	PopularityScore int    `json:"popularity_score"`
}

type destinationListResponse struct {
	Destinations []destinationResponse `json:"destinations"`
}

type cityListResponse struct {
	Cities []string `json:"cities"`
}
