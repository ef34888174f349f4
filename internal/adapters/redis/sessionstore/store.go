// Package sessionstore persists the session record in Redis, for deployments
// where the storefront process is restarted or scaled and a local file will
// not do.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	sessionport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/sessionstore"
)

type record struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Avatar *string `json:"avatar,omitempty"`
}

// Store keeps one session record under sessionstore.SessionKey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore wraps an existing client. ttl of zero means the record never
// expires (matching localStorage semantics).
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(record{
		ID:     string(u.ID),
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Avatar: u.Avatar,
	})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionport.SessionKey, data, s.ttl).Err()
}

func (s *Store) Load(ctx context.Context) (domain.User, error) {
	data, err := s.client.Get(ctx, sessionport.SessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.User{}, sessionport.ErrNotFound
		}
		return domain.User{}, err
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.ID == "" {
		return domain.User{}, sessionport.ErrCorrupt
	}
	return domain.User{
		ID:     domain.UserID(rec.ID),
		Name:   rec.Name,
		Email:  rec.Email,
		Phone:  rec.Phone,
		Avatar: rec.Avatar,
	}, nil
}

func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, sessionport.SessionKey).Err()
}
