package authprovider

import (
	"context"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

// Registration is the caller-supplied signup form.
type Registration struct {
	Name     string
	Email    string
	Phone    string
	Password string
	// Avatar is an optional profile image URL; nil means unset.
	Avatar *string
}

// Provider authenticates and registers users.
//
// This is the seam the original storefront simulated: the shipped adapter
// always succeeds after a fixed delay, but the interface is written so a real
// identity backend's failures (rejection, outage, timeout via ctx) reach the
// caller as distinguishable error kinds instead of being modeled as
// impossible.
type Provider interface {
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, reg Registration) (domain.User, error)
}
