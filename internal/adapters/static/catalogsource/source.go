// Package catalogsource serves the built-in catalog seed. The seed is
// versioned with the binary; updating it means shipping a new build, which is
// the intended provisioning model for the demo storefront.
package catalogsource

import (
	"context"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	catalogport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/catalogsource"
)

// Source returns the static seed catalog.
type Source struct{}

func NewSource() Source { return Source{} }

func (Source) Load(ctx context.Context) (catalogport.Catalog, error) {
	_ = ctx
	// Fresh slices per call: holders of a previous load must never observe
	// later mutations.
	return catalogport.Catalog{
		Destinations: append([]domain.Destination(nil), seedDestinations...),
		Packages:     append([]domain.TravelPackage(nil), seedPackages...),
		Hotels:       append([]domain.Hotel(nil), seedHotels...),
		Experiences:  append([]domain.Experience(nil), seedExperiences...),
	}, nil
}
