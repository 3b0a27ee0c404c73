package domain

// RoomStatus is the static catalog status of a room type. A room that is
// "available" here may still be unavailable to guests while someone holds it.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusBooked      RoomStatus = "booked"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusReserved    RoomStatus = "reserved"
)

// Hotel is a catalog entry. Price is the nightly headline rate in whole USD.
type Hotel struct {
	ID          string
	Name        string
	Description string
	Location    string
	Price       int64
	Rating      float64
	Images      HotelImages
	Amenities   []string
	RoomTypes   []RoomType
}

// HotelImages groups image paths by category.
type HotelImages struct {
	Lobby    []string
	Exterior []string
	Rooms    []string
}

// RoomType is a bookable room category within a hotel.
type RoomType struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Capacity    int
	Status      RoomStatus
	Images      []string
}

// PopularityScore ranks hotels for the default sort: rating weighted by how
// much the hotel offers.
func (h Hotel) PopularityScore() float64 {
	return h.Rating * float64(len(h.Amenities))
}
