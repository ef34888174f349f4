// Package sessionstore persists the session record as a JSON file, the
// closest server-side analog to the original storefront's localStorage entry.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	sessionport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/sessionstore"
)

// record is the on-disk shape. JSON field names match the original
// localStorage payload so existing exports remain readable.
type record struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Avatar *string `json:"avatar,omitempty"`
}

// Store keeps one session record at <dir>/<SessionKey>.json.
type Store struct {
	path string
}

// NewStore returns a file store rooted at dir, creating dir if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, sessionport.SessionKey+".json")}, nil
}

func (s *Store) Save(ctx context.Context, u domain.User) error {
	_ = ctx
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

	// Write-then-rename so readers never observe a torn record.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) Load(ctx context.Context) (domain.User, error) {
	_ = ctx
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
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
	_ = ctx
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
