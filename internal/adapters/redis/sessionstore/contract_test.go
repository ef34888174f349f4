package sessionstore

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/TECHBREW-hub/TravelSure/internal/adapters/contracttest"
	sessionport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/sessionstore"
)

// Runs against a real Redis when TEST_REDIS_ADDR is set; skipped otherwise.
func TestContract_RedisSessionStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	contracttest.RunSessionStore(t, func(t *testing.T) (sessionport.Store, func()) {
		t.Helper()
		store := NewStore(client, 0)
		// Each run starts from an empty key.
		_ = store.Clear(context.Background())
		return store, nil
	})
}
