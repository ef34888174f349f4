package sessionstore

import (
	"context"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

// SessionKey is the fixed key the serialized user record is stored under.
// It mirrors the browser localStorage key of the original storefront.
const SessionKey = "tourism_user"

// Store persists at most one user session record.
//
// Implementations hold a single record under SessionKey: Save overwrites,
// Load returns ErrNotFound when absent and ErrCorrupt when the stored record
// no longer deserializes, Clear removes the record (clearing an absent record
// is not an error).
type Store interface {
	Save(ctx context.Context, u domain.User) error
	Load(ctx context.Context) (domain.User, error)
	Clear(ctx context.Context) error
}
