package domain

// Destination is a bookable region (e.g. Goa, Kerala). Other catalog items
// may reference it by ID.
type Destination struct {
	ID      DestinationID
	Name    string
	State   string
	Country string

	Image       string
	Rating      float64
	ReviewCount int

	// StartingPrice is the lowest package price for the destination, in INR.
	StartingPrice int64

	Description string
	Highlights  []string
}

// TravelPackage is a multi-day tour bound to a destination. Packages carry no
// location text of their own; location is resolved through DestinationID.
type TravelPackage struct {
	ID            PackageID
	DestinationID DestinationID
	Name          string
	Duration      string

	Price int64
	// OriginalPrice is the pre-discount price; nil means no discount shown.
	OriginalPrice *int64

	Image       string
	Rating      float64
	ReviewCount int

	Includes    []string
	Description string
	Itinerary   []string
}

// Hotel is a bookable stay.
type Hotel struct {
	ID       HotelID
	Name     string
	Location string

	Price         int64
	OriginalPrice *int64

	Image       string
	Rating      float64
	ReviewCount int

	Amenities   []string
	Description string
}

// Experience is a bookable activity (cruise, safari, spa, ...).
type Experience struct {
	ID       ExperienceID
	Name     string
	Location string
	Duration string

	Price         int64
	OriginalPrice *int64

	Image       string
	Rating      float64
	ReviewCount int

	Category    string
	Description string
	Highlights  []string
}
