package catalog

import "github.com/tnohrer/HBA/internal/domain"

// seedHotels is the demo inventory. Image paths reference the static IMG
// tree served by the frontend.
func seedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:          "hotel-1",
			Name:        "Grand City Hotel",
			Description: "A luxurious hotel in the heart of the city with stunning views and world-class amenities. Perfect for business travelers and tourists alike.",
			Location:    "New York, New York",
			Rating:      4.5,
			Price:       199,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior.jpg", "/IMG/Hotel/HotelExterior2.jpg"},
				Rooms:    []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg", "/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
			},
			Amenities: []string{"Free WiFi", "Pool", "Gym", "Restaurant", "Bar", "Spa", "Room Service", "Concierge"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "basic-room-1",
					Name:        "Standard Room",
					Description: "Comfortable room with city view, perfect for business travelers",
					Price:       199,
					Capacity:    2,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg"},
				},
				{
					ID:          "luxury-room-1",
					Name:        "Luxury Suite",
					Description: "Spacious suite with premium amenities and stunning city views",
					Price:       399,
					Capacity:    4,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
				},
			},
		},
		{
			ID:          "hotel-2",
			Name:        "Seaside Resort & Spa",
			Description: "Escape to paradise at our beachfront resort featuring pristine beaches, world-class spa services, and exceptional dining experiences.",
			Location:    "Miami, Florida",
			Rating:      4.8,
			Price:       299,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior3.jpg", "/IMG/Hotel/HotelExterior.jpg"},
				Rooms:    []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif", "/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
			},
			Amenities: []string{"Beachfront", "Free WiFi", "Pool", "Spa", "Restaurant", "Bar", "Water Sports", "Kids Club"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "middle-room-1",
					Name:        "Ocean View Room",
					Description: "Beautiful room with direct ocean views and modern amenities",
					Price:       299,
					Capacity:    3,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
				},
				{
					ID:          "luxury-room-2",
					Name:        "Presidential Suite",
					Description: "Ultimate luxury with panoramic ocean views, private terrace, and butler service",
					Price:       799,
					Capacity:    6,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
				},
			},
		},
		{
			ID:          "hotel-3",
			Name:        "Mountain Lodge Retreat",
			Description: "A cozy mountain retreat perfect for nature lovers, featuring rustic charm with modern comforts and breathtaking mountain views.",
			Location:    "Aspen, Colorado",
			Rating:      4.3,
			Price:       249,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior2.jpg", "/IMG/Hotel/HotelExterior.jpg"},
				Rooms:    []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg"},
			},
			Amenities: []string{"Mountain Views", "Free WiFi", "Fireplace", "Restaurant", "Ski Storage", "Hot Tub", "Hiking Trails"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "basic-room-2",
					Name:        "Mountain View Room",
					Description: "Cozy room with stunning mountain views and rustic decor",
					Price:       249,
					Capacity:    2,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg"},
				},
			},
		},
		{
			ID:          "hotel-4",
			Name:        "Metropolitan Business Center",
			Description: "Modern business hotel in the financial district, featuring state-of-the-art meeting facilities and executive amenities.",
			Location:    "Chicago, Illinois",
			Rating:      4.2,
			Price:       179,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior4.jpg", "/IMG/Hotel/HotelExterior2.jpg"},
				Rooms:    []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg", "/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
			},
			Amenities: []string{"Free WiFi", "Business Center", "Gym", "Restaurant", "Airport Shuttle", "Meeting Rooms", "Printer Access"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "business-room-1",
					Name:        "Executive Room",
					Description: "Spacious room designed for business travelers with work desk and city views",
					Price:       179,
					Capacity:    2,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg"},
				},
				{
					ID:          "suite-room-1",
					Name:        "Executive Suite",
					Description: "Premium suite with separate living area and panoramic city views",
					Price:       329,
					Capacity:    4,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
				},
			},
		},
		{
			ID:          "hotel-5",
			Name:        "Tropical Paradise Resort",
			Description: "Experience authentic Hawaiian hospitality at our luxury beachfront resort with volcanic mountain backdrops and pristine beaches.",
			Location:    "Maui, Hawaii",
			Rating:      4.7,
			Price:       449,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior5.jpg", "/IMG/Hotel/HotelExterior3.jpg"},
				Rooms:    []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg", "/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
			},
			Amenities: []string{"Beachfront", "Free WiFi", "Multiple Pools", "Spa", "Luau", "Snorkeling", "Golf Course", "Cultural Activities"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "tropical-room-1",
					Name:        "Garden View Room",
					Description: "Beautiful room overlooking tropical gardens with Hawaiian decor",
					Price:       449,
					Capacity:    3,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
				},
				{
					ID:          "oceanfront-suite-1",
					Name:        "Oceanfront Villa",
					Description: "Exclusive villa with direct beach access and private lanai",
					Price:       899,
					Capacity:    6,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
				},
			},
		},
		{
			ID:          "hotel-6",
			Name:        "Bay View Boutique Hotel",
			Description: "Charming boutique hotel in the heart of San Francisco with personalized service and unique artistic design.",
			Location:    "San Francisco, California",
			Rating:      4.1,
			Price:       229,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior6.jpg", "/IMG/Hotel/HotelExterior4.jpg"},
				Rooms:    []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif", "/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg"},
			},
			Amenities: []string{"Free WiFi", "Rooftop Terrace", "Restaurant", "Art Gallery", "Pet-Friendly", "Bike Rental", "Wine Bar"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "boutique-room-1",
					Name:        "Artist Room",
					Description: "Uniquely designed room featuring local artwork and bay views",
					Price:       229,
					Capacity:    2,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
				},
				{
					ID:          "penthouse-1",
					Name:        "Penthouse Suite",
					Description: "Stunning penthouse with panoramic bay and city views",
					Price:       459,
					Capacity:    4,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg"},
				},
			},
		},
		{
			ID:          "hotel-7",
			Name:        "Pacific Coastal Resort",
			Description: "Spectacular beachfront resort along the California coast featuring world-class surfing, fine dining, and luxury accommodations.",
			Location:    "Malibu, California",
			Rating:      4.6,
			Price:       379,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior7.webp", "/IMG/Hotel/HotelExterior5.jpg"},
				Rooms:    []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg", "/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
			},
			Amenities: []string{"Beachfront", "Free WiFi", "Infinity Pool", "Spa", "Surfboard Rental", "Fine Dining", "Yoga Classes", "Private Beach"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "ocean-room-1",
					Name:        "Ocean View Room",
					Description: "Elegant room with floor-to-ceiling windows overlooking the Pacific",
					Price:       379,
					Capacity:    2,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
				},
				{
					ID:          "beachfront-suite-1",
					Name:        "Beachfront Suite",
					Description: "Luxury suite with direct beach access and private patio",
					Price:       679,
					Capacity:    5,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
				},
			},
		},
		{
			ID:          "hotel-8",
			Name:        "Vegas Strip Hotel & Casino",
			Description: "Experience the excitement of Las Vegas at our vibrant hotel featuring gaming, entertainment, and dining in the heart of the Strip.",
			Location:    "Las Vegas, Nevada",
			Rating:      3.9,
			Price:       129,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior8.jpg", "/IMG/Hotel/HotelExterior6.jpg"},
				Rooms:    []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg", "/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
			},
			Amenities: []string{"Casino", "Free WiFi", "Pool", "Multiple Restaurants", "Entertainment Shows", "Shopping", "Parking"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "vegas-room-1",
					Name:        "Strip View Room",
					Description: "Modern room with exciting Las Vegas Strip views",
					Price:       129,
					Capacity:    2,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg"},
				},
				{
					ID:          "vegas-suite-1",
					Name:        "High Roller Suite",
					Description: "Luxurious suite with premium Strip views and VIP amenities",
					Price:       299,
					Capacity:    4,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
				},
			},
		},
		{
			ID:          "hotel-9",
			Name:        "Emerald Coast Luxury Resort",
			Description: "Ultimate luxury resort on Florida's Emerald Coast featuring championship golf, world-class spa, and pristine white sand beaches.",
			Location:    "Destin, Florida",
			Rating:      4.9,
			Price:       549,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior9.jpg", "/IMG/Hotel/HotelExterior7.webp"},
				Rooms:    []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
			},
			Amenities: []string{"Beachfront", "Championship Golf", "Luxury Spa", "Fine Dining", "Private Beach", "Butler Service", "Helicopter Tours", "Marina"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "emerald-room-1",
					Name:        "Gulf View Room",
					Description: "Luxurious room with stunning Gulf of Mexico views",
					Price:       549,
					Capacity:    3,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
				},
				{
					ID:          "presidential-1",
					Name:        "Presidential Villa",
					Description: "Ultimate luxury villa with private beach, pool, and dedicated staff",
					Price:       1299,
					Capacity:    8,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/LuxuryRooms/LuxuryRoom.jpg"},
				},
			},
		},
		{
			ID:          "hotel-10",
			Name:        "Historic Harbor Hotel",
			Description: "Elegant historic hotel in Boston's waterfront district, combining timeless charm with modern luxury and harbor views.",
			Location:    "Boston, Massachusetts",
			Rating:      4.0,
			Price:       219,
			Images: domain.HotelImages{
				Lobby:    []string{"/IMG/Hotel/Lobby.jpg"},
				Exterior: []string{"/IMG/Hotel/HotelExterior10.jpg", "/IMG/Hotel/HotelExterior8.jpg"},
				Rooms:    []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg", "/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
			},
			Amenities: []string{"Historic Charm", "Free WiFi", "Restaurant", "Harbor Views", "Fitness Center", "Business Center", "Valet Parking"},
			RoomTypes: []domain.RoomType{
				{
					ID:          "historic-room-1",
					Name:        "Harbor View Room",
					Description: "Classic room with historic details and beautiful harbor views",
					Price:       219,
					Capacity:    2,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Basic Room/Basic_HotelRoom.jpg"},
				},
				{
					ID:          "historic-suite-1",
					Name:        "Admiral Suite",
					Description: "Elegant suite with panoramic harbor views and period furnishings",
					Price:       419,
					Capacity:    4,
					Status:      domain.RoomStatusAvailable,
					Images:      []string{"/IMG/ROOMS/Middle Room/MiddleTierRoom.avif"},
				},
			},
		},
	}
}

func seedDestinations() []domain.DestinationSuggestion {
	return []domain.DestinationSuggestion{
		{ID: "new-york", Name: "New York", Country: "United States", PopularityScore: 95},
		{ID: "miami", Name: "Miami", Country: "United States", PopularityScore: 88},
		{ID: "las-vegas", Name: "Las Vegas", Country: "United States", PopularityScore: 92},
		{ID: "los-angeles", Name: "Los Angeles", Country: "United States", PopularityScore: 90},
		{ID: "chicago", Name: "Chicago", Country: "United States", PopularityScore: 85},
		{ID: "san-francisco", Name: "San Francisco", Country: "United States", PopularityScore: 87},
		{ID: "boston", Name: "Boston", Country: "United States", PopularityScore: 83},
		{ID: "seattle", Name: "Seattle", Country: "United States", PopularityScore: 80},
		{ID: "washington", Name: "Washington DC", Country: "United States", PopularityScore: 86},
		{ID: "aspen", Name: "Aspen", Country: "United States", PopularityScore: 82},
		{ID: "malibu", Name: "Malibu", Country: "United States", PopularityScore: 78},
		{ID: "destin", Name: "Destin", Country: "United States", PopularityScore: 75},
		{ID: "maui", Name: "Maui", Country: "United States", PopularityScore: 89},
		{ID: "california", Name: "California", Country: "United States", PopularityScore: 94},
		{ID: "florida", Name: "Florida", Country: "United States", PopularityScore: 91},
		{ID: "new-york-state", Name: "New York State", Country: "United States", PopularityScore: 88},
		{ID: "nevada", Name: "Nevada", Country: "United States", PopularityScore: 84},
		{ID: "hawaii", Name: "Hawaii", Country: "United States", PopularityScore: 93},
		{ID: "colorado", Name: "Colorado", Country: "United States", PopularityScore: 79},
		{ID: "massachusetts", Name: "Massachusetts", Country: "United States", PopularityScore: 76},
		{ID: "illinois", Name: "Illinois", Country: "United States", PopularityScore: 77},
	}
}
