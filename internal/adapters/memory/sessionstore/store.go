package sessionstore

import (
	"context"
	"sync"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	"github.com/TECHBREW-hub/TravelSure/internal/ports/out/sessionstore"
)

// Store is an in-memory implementation of sessionstore.Store.
// It is safe for concurrent use. Sessions kept here do not survive a process
// restart; use the file or redis adapter for durability.
type Store struct {
	mu   sync.RWMutex
	user *domain.User
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Save(ctx context.Context, u domain.User) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	c := cloneUser(u)
	s.user = &c
	return nil
}

func (s *Store) Load(ctx context.Context) (domain.User, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, sessionstore.ErrNotFound
	}
	return cloneUser(*s.user), nil
}

func (s *Store) Clear(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

func cloneUser(u domain.User) domain.User {
	out := u
	if u.Avatar != nil {
		v := *u.Avatar
		out.Avatar = &v
	}
	return out
}
