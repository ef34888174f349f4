// Package search filters catalog collections by a free-text query.
//
// All filters are pure and order-preserving: they never reorder or mutate the
// source collection. An empty (or all-whitespace) query is the identity and
// returns the input unchanged; a query matching nothing returns an empty,
// non-nil slice.
package search

import (
	"strings"

	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

// Packages returns the packages whose name, description, or resolved
// destination name contains the query, case-insensitively. Packages carry no
// location text of their own, so the destination reference is resolved
// against dests; a dangling reference simply never matches on location.
func Packages(ps []domain.TravelPackage, dests []domain.Destination, query string) []domain.TravelPackage {
	q := normalizeQuery(query)
	if q == "" {
		return ps
	}

	destName := make(map[domain.DestinationID]string, len(dests))
	for _, d := range dests {
		destName[d.ID] = strings.ToLower(d.Name)
	}

	out := make([]domain.TravelPackage, 0)
	for _, p := range ps {
		if containsFold(p.Name, q) || containsFold(p.Description, q) || strings.Contains(destName[p.DestinationID], q) {
			out = append(out, p)
		}
	}
	return out
}

// Hotels returns the hotels whose name, location, or description contains
// the query, case-insensitively.
func Hotels(hs []domain.Hotel, query string) []domain.Hotel {
	q := normalizeQuery(query)
	if q == "" {
		return hs
	}
	out := make([]domain.Hotel, 0)
	for _, h := range hs {
		if containsFold(h.Name, q) || containsFold(h.Location, q) || containsFold(h.Description, q) {
			out = append(out, h)
		}
	}
	return out
}

// Experiences returns the experiences whose name, location, or description
// contains the query, case-insensitively.
func Experiences(es []domain.Experience, query string) []domain.Experience {
	q := normalizeQuery(query)
	if q == "" {
		return es
	}
	out := make([]domain.Experience, 0)
	for _, e := range es {
		if containsFold(e.Name, q) || containsFold(e.Location, q) || containsFold(e.Description, q) {
			out = append(out, e)
		}
	}
	return out
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func containsFold(hay, needle string) bool {
	return strings.Contains(strings.ToLower(hay), needle)
}

// Service runs the pure filters against store snapshots.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Destinations() []domain.Destination {
	return s.store.Snapshot().Destinations
}

func (s *Service) Packages(query string) []domain.TravelPackage {
	snap := s.store.Snapshot()
	return Packages(snap.Packages, snap.Destinations, query)
}

func (s *Service) Hotels(query string) []domain.Hotel {
	return Hotels(s.store.Snapshot().Hotels, query)
}

func (s *Service) Experiences(query string) []domain.Experience {
	return Experiences(s.store.Snapshot().Experiences, query)
}
