package domain

import (
	"errors"
	"time"
)

type BookingType string

const (
	BookingTypePackage    BookingType = "package"
	BookingTypeHotel      BookingType = "hotel"
	BookingTypeExperience BookingType = "experience"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// BookingItem is the catalog item a booking was made against, embedded by
// value at creation time. Exactly one variant is set, matching the booking's
// Type; later catalog changes never retroactively alter a booking.
type BookingItem struct {
	Package    *TravelPackage
	Hotel      *Hotel
	Experience *Experience
}

// Kind reports which variant is set, or "" when none (or more than one) is.
func (i BookingItem) Kind() BookingType {
	switch {
	case i.Package != nil && i.Hotel == nil && i.Experience == nil:
		return BookingTypePackage
	case i.Hotel != nil && i.Package == nil && i.Experience == nil:
		return BookingTypeHotel
	case i.Experience != nil && i.Package == nil && i.Hotel == nil:
		return BookingTypeExperience
	default:
		return ""
	}
}

// Name returns the display name of whichever variant is set.
func (i BookingItem) Name() string {
	switch {
	case i.Package != nil:
		return i.Package.Name
	case i.Hotel != nil:
		return i.Hotel.Name
	case i.Experience != nil:
		return i.Experience.Name
	default:
		return ""
	}
}

var ErrInvalidBookingItem = errors.New("booking item must carry exactly one variant matching its type")

// Validate checks that the item carries exactly one variant and that it
// matches the declared booking type.
func (i BookingItem) Validate(t BookingType) error {
	if k := i.Kind(); k == "" || k != t {
		return ErrInvalidBookingItem
	}
	return nil
}

// Booking is a user's reservation against one catalog item.
type Booking struct {
	ID     BookingID
	Type   BookingType
	UserID UserID

	// Item is owned by value: the full catalog item as of creation time.
	Item BookingItem

	Status BookingStatus

	BookingDate time.Time
	TravelDate  time.Time
	Guests      int

	// TotalAmount is the amount charged, in INR.
	TotalAmount int64

	PaymentStatus PaymentStatus
	// Payment holds method-specific details; nil when the booking was created
	// without going through a payment flow.
	Payment *PaymentDetails
}
