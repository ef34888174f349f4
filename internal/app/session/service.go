package session

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	"github.com/TECHBREW-hub/TravelSure/internal/ports/out/authprovider"
	"github.com/TECHBREW-hub/TravelSure/internal/ports/out/sessionstore"
)

// Service bridges user-entered credentials to store mutations and durable
// session storage. It owns the anonymous -> authenticating -> authenticated
// lifecycle; the store's reducer stays pure underneath it.
type Service struct {
	store    *store.Store
	sessions sessionstore.Store
	auth     authprovider.Provider
}

func NewService(st *store.Store, sessions sessionstore.Store, auth authprovider.Provider) *Service {
	return &Service{
		store:    st,
		sessions: sessions,
		auth:     auth,
	}
}

// Login authenticates and establishes the session. The loading flag is set
// for the duration of the provider call; it is an advisory gate only, so two
// concurrent logins race and the last one to complete wins.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return domain.User{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid email", Details: map[string]any{"email": err.Error()}}
	}
	if password == "" {
		return domain.User{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid password", Details: map[string]any{"password": "must be non-empty"}}
	}

	s.store.Dispatch(store.SetLoading{Loading: true})
	defer s.store.Dispatch(store.SetLoading{Loading: false})

	u, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return domain.User{}, mapProviderError(err)
	}

	return u, s.establish(ctx, u)
}

// Register creates an account and establishes the session.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	name := domain.NormalizeHumanName(in.Name)
	if name == "" {
		return domain.User{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid name", Details: map[string]any{"name": "must be non-empty"}}
	}
	email := strings.TrimSpace(in.Email)
	if err := validateEmail(email); err != nil {
		return domain.User{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid email", Details: map[string]any{"email": err.Error()}}
	}
	if in.Password == "" {
		return domain.User{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid password", Details: map[string]any{"password": "must be non-empty"}}
	}

	s.store.Dispatch(store.SetLoading{Loading: true})
	defer s.store.Dispatch(store.SetLoading{Loading: false})

	u, err := s.auth.Register(ctx, authprovider.Registration{
		Name:     name,
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Password: in.Password,
		Avatar:   in.Avatar,
	})
	if err != nil {
		return domain.User{}, mapProviderError(err)
	}

	return u, s.establish(ctx, u)
}

// Logout clears the session from the store (which also discards in-memory
// bookings) and removes the durable entry.
func (s *Service) Logout(ctx context.Context) error {
	s.store.Dispatch(store.Logout{})
	if err := s.sessions.Clear(ctx); err != nil && !errors.Is(err, sessionstore.ErrNotFound) {
		return err
	}
	return nil
}

// Restore rehydrates the session from durable storage at startup. An absent
// record leaves the state anonymous; a corrupt record is discarded and also
// leaves the state anonymous. Neither case is an error, so restoration never
// surfaces storage trouble to the user.
func (s *Service) Restore(ctx context.Context) (domain.User, bool, error) {
	u, err := s.sessions.Load(ctx)
	switch {
	case err == nil:
		s.store.Dispatch(store.SetUser{User: &u})
		return u, true, nil
	case errors.Is(err, sessionstore.ErrNotFound):
		return domain.User{}, false, nil
	case errors.Is(err, sessionstore.ErrCorrupt):
		// Stale entry: drop it and stay anonymous.
		if cerr := s.sessions.Clear(ctx); cerr != nil && !errors.Is(cerr, sessionstore.ErrNotFound) {
			return domain.User{}, false, cerr
		}
		return domain.User{}, false, nil
	default:
		return domain.User{}, false, err
	}
}

// establish dispatches the session into the store and mirrors it to durable
// storage. The in-memory session is kept even if the durable write fails;
// the failure is surfaced so the caller can warn.
func (s *Service) establish(ctx context.Context, u domain.User) error {
	s.store.Dispatch(store.Login{User: u})
	return s.sessions.Save(ctx, u)
}

func mapProviderError(err error) error {
	switch {
	case errors.Is(err, authprovider.ErrInvalidCredentials):
		return &Error{Status: 401, Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
	case errors.Is(err, authprovider.ErrEmailTaken):
		return &Error{Status: 409, Code: "EMAIL_ALREADY_IN_USE", Message: "email address is already in use"}
	case errors.Is(err, authprovider.ErrUnavailable):
		return &Error{Status: 502, Code: "AUTH_UNAVAILABLE", Message: "authentication service unavailable"}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Status: 504, Code: "AUTH_TIMEOUT", Message: "authentication timed out"}
	default:
		return err
	}
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("must be non-empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return err
	}
	// Ensure no "Name <email@x>" format sneaks in.
	if addr.Address != email {
		return errors.New("must be a bare email address")
	}
	return nil
}
