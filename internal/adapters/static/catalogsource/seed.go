package catalogsource

import "github.com/TECHBREW-hub/TravelSure/internal/domain"

func price(v int64) *int64 { return &v }

var seedDestinations = []domain.Destination{
	{
		ID:            "1",
		Name:          "Goa",
		State:         "Goa",
		Country:       "India",
		Image:         "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
		Rating:        4.5,
		ReviewCount:   2543,
		StartingPrice: 8999,
		Description:   "Famous for its beaches, nightlife, and Portuguese heritage",
		Highlights:    []string{"Beaches", "Nightlife", "Water Sports", "Heritage Sites"},
	},
	{
		ID:            "2",
		Name:          "Manali",
		State:         "Himachal Pradesh",
		Country:       "India",
		Image:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
		Rating:        4.7,
		ReviewCount:   1876,
		StartingPrice: 12999,
		Description:   "Hill station known for adventure sports and scenic beauty",
		Highlights:    []string{"Adventure Sports", "Snow", "Trekking", "Mountain Views"},
	},
	{
		ID:            "3",
		Name:          "Kerala",
		State:         "Kerala",
		Country:       "India",
		Image:         "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=800&h=600&fit=crop",
		Rating:        4.6,
		ReviewCount:   3214,
		StartingPrice: 15999,
		Description:   "God's Own Country with backwaters, beaches, and hill stations",
		Highlights:    []string{"Backwaters", "Ayurveda", "Spices", "Beaches"},
	},
	{
		ID:            "4",
		Name:          "Rajasthan",
		State:         "Rajasthan",
		Country:       "India",
		Image:         "https://images.unsplash.com/photo-1477587458883-47145ed94245?w=800&h=600&fit=crop",
		Rating:        4.8,
		ReviewCount:   4321,
		StartingPrice: 18999,
		Description:   "Land of Kings with majestic palaces and desert landscapes",
		Highlights:    []string{"Palaces", "Desert Safari", "Culture", "Heritage"},
	},
}

var seedPackages = []domain.TravelPackage{
	{
		ID:            "1",
		DestinationID: "1",
		Name:          "Goa Beach Paradise",
		Duration:      "4D/3N",
		Price:         8999,
		OriginalPrice: price(12999),
		Image:         "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
		Rating:        4.5,
		ReviewCount:   234,
		Includes:      []string{"Hotel", "Breakfast", "Airport Transfer", "Sightseeing"},
		Description:   "Experience the best of Goa with pristine beaches and vibrant nightlife",
		Itinerary:     []string{"Day 1: Arrival & Beach Time", "Day 2: North Goa Tour", "Day 3: South Goa Exploration", "Day 4: Departure"},
	},
	{
		ID:            "2",
		DestinationID: "2",
		Name:          "Manali Adventure",
		Duration:      "6D/5N",
		Price:         12999,
		OriginalPrice: price(16999),
		Image:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
		Rating:        4.7,
		ReviewCount:   189,
		Includes:      []string{"Hotel", "All Meals", "Adventure Activities", "Transport"},
		Description:   "Thrilling adventure package with trekking, paragliding, and river rafting",
		Itinerary:     []string{"Day 1: Arrival", "Day 2: Solang Valley", "Day 3: Rohtang Pass", "Day 4: Adventure Sports", "Day 5: Local Sightseeing", "Day 6: Departure"},
	},
	{
		ID:            "3",
		DestinationID: "3",
		Name:          "Kerala Backwaters",
		Duration:      "5D/4N",
		Price:         15999,
		OriginalPrice: price(19999),
		Image:         "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=800&h=600&fit=crop",
		Rating:        4.6,
		ReviewCount:   312,
		Includes:      []string{"Houseboat", "All Meals", "Ayurveda Spa", "Transfers"},
		Description:   "Serene backwater experience with houseboat stay and Ayurveda treatments",
		Itinerary:     []string{"Day 1: Cochin Arrival", "Day 2: Munnar Hill Station", "Day 3: Thekkady Wildlife", "Day 4: Alleppey Houseboat", "Day 5: Departure"},
	},
	{
		ID:            "4",
		DestinationID: "4",
		Name:          "Royal Rajasthan",
		Duration:      "7D/6N",
		Price:         18999,
		OriginalPrice: price(24999),
		Image:         "https://images.unsplash.com/photo-1477587458883-47145ed94245?w=800&h=600&fit=crop",
		Rating:        4.8,
		ReviewCount:   456,
		Includes:      []string{"Heritage Hotels", "All Meals", "Desert Safari", "Cultural Shows"},
		Description:   "Royal treatment with palace stays and desert adventures",
		Itinerary:     []string{"Day 1: Jaipur Arrival", "Day 2: Jaipur Sightseeing", "Day 3: Jodhpur", "Day 4: Jaisalmer", "Day 5: Desert Safari", "Day 6: Udaipur", "Day 7: Departure"},
	},
}

var seedHotels = []domain.Hotel{
	{
		ID:            "1",
		Name:          "Taj Exotica Resort & Spa, Goa",
		Location:      "Benaulim, Goa",
		Price:         15999,
		OriginalPrice: price(19999),
		Image:         "https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800&h=600&fit=crop",
		Rating:        4.8,
		ReviewCount:   1234,
		Amenities:     []string{"Beach Access", "Spa", "Pool", "Wi-Fi", "Restaurant"},
		Description:   "Luxury beach resort with world-class amenities and stunning ocean views",
	},
	{
		ID:            "2",
		Name:          "The Oberoi, Udaipur",
		Location:      "Udaipur, Rajasthan",
		Price:         22999,
		OriginalPrice: price(27999),
		Image:         "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&h=600&fit=crop",
		Rating:        4.9,
		ReviewCount:   987,
		Amenities:     []string{"Lake View", "Spa", "Fine Dining", "Butler Service", "Pool"},
		Description:   "Premium lake-facing hotel offering royal Rajasthani hospitality",
	},
	{
		ID:            "3",
		Name:          "Kumarakom Lake Resort",
		Location:      "Kumarakom, Kerala",
		Price:         18999,
		OriginalPrice: price(23999),
		Image:         "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&h=600&fit=crop",
		Rating:        4.7,
		ReviewCount:   765,
		Amenities:     []string{"Backwater View", "Ayurveda Spa", "Traditional Cuisine", "Boat Rides"},
		Description:   "Luxury backwater resort offering authentic Kerala experience",
	},
	{
		ID:            "4",
		Name:          "Snow Peak Retreat, Manali",
		Location:      "Old Manali, Himachal Pradesh",
		Price:         8999,
		OriginalPrice: price(11999),
		Image:         "https://images.unsplash.com/photo-1540979388789-6cee28a1cdc9?w=800&h=600&fit=crop",
		Rating:        4.4,
		ReviewCount:   543,
		Amenities:     []string{"Mountain View", "Fireplace", "Adventure Desk", "Organic Food"},
		Description:   "Cozy mountain retreat perfect for adventure enthusiasts",
	},
}

var seedExperiences = []domain.Experience{
	{
		ID:            "1",
		Name:          "Sunset Dolphin Cruise",
		Location:      "Goa",
		Duration:      "3 hours",
		Price:         1499,
		OriginalPrice: price(1999),
		Image:         "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&h=600&fit=crop",
		Rating:        4.6,
		ReviewCount:   324,
		Category:      "Water Sports",
		Description:   "Magical sunset cruise with dolphin spotting in Arabian Sea",
		Highlights:    []string{"Dolphin Spotting", "Sunset Views", "Refreshments", "Photography"},
	},
	{
		ID:            "2",
		Name:          "Paragliding Adventure",
		Location:      "Manali",
		Duration:      "2 hours",
		Price:         2999,
		OriginalPrice: price(3999),
		Image:         "https://images.unsplash.com/photo-1540979388789-6cee28a1cdc9?w=800&h=600&fit=crop",
		Rating:        4.8,
		ReviewCount:   198,
		Category:      "Adventure",
		Description:   "Soar above the Himalayas with professional paragliding instructors",
		Highlights:    []string{"Mountain Views", "Professional Instructor", "Safety Gear", "Certificate"},
	},
	{
		ID:            "3",
		Name:          "Ayurveda Spa Therapy",
		Location:      "Kerala",
		Duration:      "4 hours",
		Price:         3999,
		OriginalPrice: price(5999),
		Image:         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&h=600&fit=crop",
		Rating:        4.7,
		ReviewCount:   267,
		Category:      "Wellness",
		Description:   "Authentic Ayurveda treatments by certified therapists",
		Highlights:    []string{"Herbal Oils", "Traditional Massage", "Consultation", "Relaxation"},
	},
	{
		ID:            "4",
		Name:          "Desert Safari with Cultural Show",
		Location:      "Jaisalmer, Rajasthan",
		Duration:      "6 hours",
		Price:         2499,
		OriginalPrice: price(3499),
		Image:         "https://images.unsplash.com/photo-1477587458883-47145ed94245?w=800&h=600&fit=crop",
		Rating:        4.9,
		ReviewCount:   432,
		Category:      "Culture",
		Description:   "Camel safari in Thar Desert with traditional Rajasthani dinner and folk dance",
		Highlights:    []string{"Camel Ride", "Desert Sunset", "Folk Dance", "Traditional Dinner"},
	},
}
