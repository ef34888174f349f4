// Package authprovider is the demo identity backend: it accepts any
// credentials after a short delay that models a network round trip. It is the
// substitutable always-succeeds implementation of the auth seam; a real
// identity backend would return the port's error kinds instead.
package authprovider

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	"github.com/TECHBREW-hub/TravelSure/internal/ports/out/authprovider"
)

// Demo login fixtures, matching the original storefront's mock user.
const (
	demoUserID = "1"
	demoName   = "John Doe"
	demoPhone  = "+91 9876543210"
	demoAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop"
)

// Provider implements authprovider.Provider.
type Provider struct {
	delay time.Duration

	newUserID func() domain.UserID
}

// NewProvider returns a provider that sleeps for delay before answering.
// Zero delay answers immediately (used by tests).
func NewProvider(delay time.Duration) *Provider {
	return &Provider{
		delay: delay,
		newUserID: func() domain.UserID {
			return domain.UserID(uuid.NewString())
		},
	}
}

// SetNewUserIDForTest overrides user ID generation for deterministic tests.
func (p *Provider) SetNewUserIDForTest(fn func() domain.UserID) {
	if fn != nil {
		p.newUserID = fn
	}
}

// Authenticate fabricates the fixed demo user with the supplied email. The
// password is accepted unchecked; that is the point of the demo backend.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	_ = password
	if err := p.wait(ctx); err != nil {
		return domain.User{}, err
	}
	avatar := demoAvatar
	return domain.User{
		ID:     demoUserID,
		Name:   demoName,
		Email:  email,
		Phone:  demoPhone,
		Avatar: &avatar,
	}, nil
}

// Register fabricates a user from the signup form with a fresh id.
func (p *Provider) Register(ctx context.Context, reg authprovider.Registration) (domain.User, error) {
	if err := p.wait(ctx); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:     p.newUserID(),
		Name:   reg.Name,
		Email:  reg.Email,
		Phone:  reg.Phone,
		Avatar: reg.Avatar,
	}, nil
}

// wait models the network round trip; a cancelled context wins over the timer.
func (p *Provider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
