package store

import (
	"time"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

// Action is the closed set of state transitions. The unexported marker method
// seals the set: invalid actions are unreachable by construction, so Reduce
// raises no errors of its own. Precondition checks (e.g. "booking creation
// requires a session") belong to the services wrapping the store.
type Action interface {
	isAction()
}

// SetUser replaces the session user; nil clears it. IsAuthenticated follows
// the presence of the user.
type SetUser struct {
	User *domain.User
}

// SetLoading toggles the global busy flag used to gate duplicate auth
// submissions. The gate is advisory only.
type SetLoading struct {
	Loading bool
}

// SetDestinations replaces the destination list wholesale.
type SetDestinations struct {
	Destinations []domain.Destination
}

// SetPackages replaces the package list wholesale.
type SetPackages struct {
	Packages []domain.TravelPackage
}

// SetHotels replaces the hotel list wholesale.
type SetHotels struct {
	Hotels []domain.Hotel
}

// SetExperiences replaces the experience list wholesale.
type SetExperiences struct {
	Experiences []domain.Experience
}

// SetBookings replaces the booking list wholesale.
type SetBookings struct {
	Bookings []domain.Booking
}

// AddBooking appends one booking.
type AddBooking struct {
	Booking domain.Booking
}

// BookingPatch is a partial booking update; nil fields are left unchanged.
type BookingPatch struct {
	Status        *domain.BookingStatus
	PaymentStatus *domain.PaymentStatus
	TravelDate    *time.Time
	Guests        *int
}

// UpdateBooking merges Patch into the booking with the given ID. Unknown IDs
// reduce to the identity transition.
type UpdateBooking struct {
	ID    domain.BookingID
	Patch BookingPatch
}

// SetSearchQuery replaces the transient free-text query.
type SetSearchQuery struct {
	Query string
}

// SetSelectedDestination replaces the transient destination filter.
type SetSelectedDestination struct {
	DestinationID domain.DestinationID
}

// SetDateRange replaces the transient travel window.
type SetDateRange struct {
	Dates domain.DateRange
}

// SetGuests replaces the transient guest count.
type SetGuests struct {
	Guests int
}

// Login establishes the session for the given user.
type Login struct {
	User domain.User
}

// Logout clears the session and discards all in-memory bookings. Bookings
// are session-scoped and irrecoverable after this transition.
type Logout struct{}

func (SetUser) isAction()                {}
func (SetLoading) isAction()             {}
func (SetDestinations) isAction()        {}
func (SetPackages) isAction()            {}
func (SetHotels) isAction()              {}
func (SetExperiences) isAction()         {}
func (SetBookings) isAction()            {}
func (AddBooking) isAction()             {}
func (UpdateBooking) isAction()          {}
func (SetSearchQuery) isAction()         {}
func (SetSelectedDestination) isAction() {}
func (SetDateRange) isAction()           {}
func (SetGuests) isAction()              {}
func (Login) isAction()                  {}
func (Logout) isAction()                 {}
