package store

import (
	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

// State is the full cross-page application state. It is only ever replaced
// through Reduce; consumers read deep-copied snapshots.
//
// Invariant: IsAuthenticated == (User != nil) after every transition.
type State struct {
	User            *domain.User
	IsAuthenticated bool
	IsLoading       bool

	Destinations []domain.Destination
	Packages     []domain.TravelPackage
	Hotels       []domain.Hotel
	Experiences  []domain.Experience

	Bookings []domain.Booking

	Search domain.SearchCriteria
}

// InitialState is the state before the catalog is seeded: anonymous, empty
// lists, one guest.
func InitialState() State {
	return State{
		Search: domain.SearchCriteria{Guests: 1},
	}
}

func cloneState(s State) State {
	out := s
	out.User = cloneUser(s.User)
	out.Destinations = cloneDestinations(s.Destinations)
	out.Packages = clonePackages(s.Packages)
	out.Hotels = cloneHotels(s.Hotels)
	out.Experiences = cloneExperiences(s.Experiences)
	out.Bookings = cloneBookings(s.Bookings)
	out.Search.Dates = cloneDateRange(s.Search.Dates)
	return out
}

func cloneDestinations(ds []domain.Destination) []domain.Destination {
	if ds == nil {
		return nil
	}
	out := make([]domain.Destination, len(ds))
	for i := range ds {
		out[i] = cloneDestination(ds[i])
	}
	return out
}

func cloneDestination(d domain.Destination) domain.Destination {
	d.Highlights = cloneStrings(d.Highlights)
	return d
}

func clonePackages(ps []domain.TravelPackage) []domain.TravelPackage {
	if ps == nil {
		return nil
	}
	out := make([]domain.TravelPackage, len(ps))
	for i := range ps {
		out[i] = clonePackage(ps[i])
	}
	return out
}

func clonePackage(p domain.TravelPackage) domain.TravelPackage {
	p.OriginalPrice = cloneInt64(p.OriginalPrice)
	p.Includes = cloneStrings(p.Includes)
	p.Itinerary = cloneStrings(p.Itinerary)
	return p
}

func cloneHotels(hs []domain.Hotel) []domain.Hotel {
	if hs == nil {
		return nil
	}
	out := make([]domain.Hotel, len(hs))
	for i := range hs {
		out[i] = cloneHotel(hs[i])
	}
	return out
}

func cloneHotel(h domain.Hotel) domain.Hotel {
	h.OriginalPrice = cloneInt64(h.OriginalPrice)
	h.Amenities = cloneStrings(h.Amenities)
	return h
}

func cloneExperiences(es []domain.Experience) []domain.Experience {
	if es == nil {
		return nil
	}
	out := make([]domain.Experience, len(es))
	for i := range es {
		out[i] = cloneExperience(es[i])
	}
	return out
}

func cloneExperience(e domain.Experience) domain.Experience {
	e.OriginalPrice = cloneInt64(e.OriginalPrice)
	e.Highlights = cloneStrings(e.Highlights)
	return e
}

func cloneBookings(bs []domain.Booking) []domain.Booking {
	if bs == nil {
		return nil
	}
	out := make([]domain.Booking, len(bs))
	for i := range bs {
		out[i] = cloneBooking(bs[i])
	}
	return out
}

func cloneBooking(b domain.Booking) domain.Booking {
	if b.Item.Package != nil {
		p := clonePackage(*b.Item.Package)
		b.Item.Package = &p
	}
	if b.Item.Hotel != nil {
		h := cloneHotel(*b.Item.Hotel)
		b.Item.Hotel = &h
	}
	if b.Item.Experience != nil {
		e := cloneExperience(*b.Item.Experience)
		b.Item.Experience = &e
	}
	b.Payment = clonePayment(b.Payment)
	return b
}

func clonePayment(p *domain.PaymentDetails) *domain.PaymentDetails {
	if p == nil {
		return nil
	}
	out := *p
	if p.UPI != nil {
		v := *p.UPI
		out.UPI = &v
	}
	if p.NetBanking != nil {
		v := *p.NetBanking
		out.NetBanking = &v
	}
	if p.Card != nil {
		v := *p.Card
		out.Card = &v
	}
	return &out
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	return append([]string(nil), ss...)
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Avatar != nil {
		v := *u.Avatar
		out.Avatar = &v
	}
	return &out
}

func cloneDateRange(r domain.DateRange) domain.DateRange {
	out := r
	if r.From != nil {
		v := *r.From
		out.From = &v
	}
	if r.To != nil {
		v := *r.To
		out.To = &v
	}
	return out
}
