package catalogsource

import (
	"context"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

// Catalog is the full set of bookable items, loaded once at startup. The
// lists are treated as immutable after loading: the store replaces them
// wholesale and never mutates them in place.
type Catalog struct {
	Destinations []domain.Destination
	Packages     []domain.TravelPackage
	Hotels       []domain.Hotel
	Experiences  []domain.Experience
}

// Source provides the catalog seed. How the data is authored and updated is
// owned by an external provisioning concern; this port only reads it.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}
