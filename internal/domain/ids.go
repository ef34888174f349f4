package domain

// UserID is an internal identifier for a user record. The simulated auth
// provider fabricates these; a real identity provider would own their format.
type UserID string

// DestinationID identifies a destination in the catalog.
type DestinationID string

// PackageID identifies a travel package in the catalog.
type PackageID string

// HotelID identifies a hotel in the catalog.
type HotelID string

// ExperienceID identifies an experience in the catalog.
type ExperienceID string

// BookingID is an internal identifier for a booking record.
type BookingID string
