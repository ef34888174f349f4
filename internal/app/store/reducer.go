package store

import "github.com/TECHBREW-hub/TravelSure/internal/domain"

// Reduce computes the next state from (prior state, action). It is a pure
// function: it reads no external state, performs no side effects, and never
// mutates its input. Slices are replaced, not edited in place.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetUser:
		s.User = cloneUser(a.User)
		s.IsAuthenticated = a.User != nil
		return s
	case SetLoading:
		s.IsLoading = a.Loading
		return s
	case SetDestinations:
		s.Destinations = a.Destinations
		return s
	case SetPackages:
		s.Packages = a.Packages
		return s
	case SetHotels:
		s.Hotels = a.Hotels
		return s
	case SetExperiences:
		s.Experiences = a.Experiences
		return s
	case SetBookings:
		s.Bookings = a.Bookings
		return s
	case AddBooking:
		bs := make([]domain.Booking, 0, len(s.Bookings)+1)
		bs = append(bs, s.Bookings...)
		bs = append(bs, a.Booking)
		s.Bookings = bs
		return s
	case UpdateBooking:
		return reduceUpdateBooking(s, a)
	case SetSearchQuery:
		s.Search.Query = a.Query
		return s
	case SetSelectedDestination:
		s.Search.SelectedDestination = a.DestinationID
		return s
	case SetDateRange:
		s.Search.Dates = cloneDateRange(a.Dates)
		return s
	case SetGuests:
		s.Search.Guests = a.Guests
		return s
	case Login:
		u := a.User
		s.User = cloneUser(&u)
		s.IsAuthenticated = true
		return s
	case Logout:
		s.User = nil
		s.IsAuthenticated = false
		s.Bookings = nil
		return s
	default:
		return s
	}
}

func reduceUpdateBooking(s State, a UpdateBooking) State {
	idx := -1
	for i := range s.Bookings {
		if s.Bookings[i].ID == a.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Unknown id: identity transition. Callers that need to distinguish
		// "updated" from "didn't exist" must check the list first.
		return s
	}

	bs := append([]domain.Booking(nil), s.Bookings...)
	b := bs[idx]
	if a.Patch.Status != nil {
		b.Status = *a.Patch.Status
	}
	if a.Patch.PaymentStatus != nil {
		b.PaymentStatus = *a.Patch.PaymentStatus
	}
	if a.Patch.TravelDate != nil {
		b.TravelDate = *a.Patch.TravelDate
	}
	if a.Patch.Guests != nil {
		b.Guests = *a.Patch.Guests
	}
	bs[idx] = b
	s.Bookings = bs
	return s
}
