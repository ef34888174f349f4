// Package catalogsource reads the catalog from Postgres. The four tables are
// provisioned and populated by an external data pipeline; this adapter only
// ever reads them.
package catalogsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	catalogport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/catalogsource"
)

// Source is a Postgres implementation of catalogsource.Source.
type Source struct {
	pool *pgxpool.Pool
}

func NewSource(pool *pgxpool.Pool) *Source {
	return &Source{pool: pool}
}

func (s *Source) Load(ctx context.Context) (catalogport.Catalog, error) {
	if s.pool == nil {
		return catalogport.Catalog{}, fmt.Errorf("nil postgres pool: %w", catalogport.ErrUnavailable)
	}

	var out catalogport.Catalog
	var err error
	if out.Destinations, err = s.loadDestinations(ctx); err != nil {
		return catalogport.Catalog{}, unavailable("load destinations", err)
	}
	if out.Packages, err = s.loadPackages(ctx); err != nil {
		return catalogport.Catalog{}, unavailable("load packages", err)
	}
	if out.Hotels, err = s.loadHotels(ctx); err != nil {
		return catalogport.Catalog{}, unavailable("load hotels", err)
	}
	if out.Experiences, err = s.loadExperiences(ctx); err != nil {
		return catalogport.Catalog{}, unavailable("load experiences", err)
	}
	return out, nil
}

// unavailable tags a load failure with the port's sentinel so callers can
// match it with errors.Is.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, catalogport.ErrUnavailable, err)
}

func (s *Source) loadDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT external_id, name, state, country, image_url, rating, review_count,
		       starting_price, description, highlights
		FROM catalog_destinations
		ORDER BY external_id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Destination, error) {
		var d domain.Destination
		var id string
		err := row.Scan(&id, &d.Name, &d.State, &d.Country, &d.Image, &d.Rating,
			&d.ReviewCount, &d.StartingPrice, &d.Description, &d.Highlights)
		d.ID = domain.DestinationID(id)
		return d, err
	})
}

func (s *Source) loadPackages(ctx context.Context) ([]domain.TravelPackage, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT external_id, destination_id, name, duration, price, original_price,
		       image_url, rating, review_count, includes, description, itinerary
		FROM catalog_packages
		ORDER BY external_id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TravelPackage, error) {
		var p domain.TravelPackage
		var id, destID string
		err := row.Scan(&id, &destID, &p.Name, &p.Duration, &p.Price, &p.OriginalPrice,
			&p.Image, &p.Rating, &p.ReviewCount, &p.Includes, &p.Description, &p.Itinerary)
		p.ID = domain.PackageID(id)
		p.DestinationID = domain.DestinationID(destID)
		return p, err
	})
}

func (s *Source) loadHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT external_id, name, location, price, original_price, image_url,
		       rating, review_count, amenities, description
		FROM catalog_hotels
		ORDER BY external_id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Hotel, error) {
		var h domain.Hotel
		var id string
		err := row.Scan(&id, &h.Name, &h.Location, &h.Price, &h.OriginalPrice,
			&h.Image, &h.Rating, &h.ReviewCount, &h.Amenities, &h.Description)
		h.ID = domain.HotelID(id)
		return h, err
	})
}

func (s *Source) loadExperiences(ctx context.Context) ([]domain.Experience, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT external_id, name, location, duration, price, original_price,
		       image_url, rating, review_count, category, description, highlights
		FROM catalog_experiences
		ORDER BY external_id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Experience, error) {
		var e domain.Experience
		var id string
		err := row.Scan(&id, &e.Name, &e.Location, &e.Duration, &e.Price, &e.OriginalPrice,
			&e.Image, &e.Rating, &e.ReviewCount, &e.Category, &e.Description, &e.Highlights)
		e.ID = domain.ExperienceID(id)
		return e, err
	})
}
