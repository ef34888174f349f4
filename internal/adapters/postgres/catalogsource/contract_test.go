package catalogsource

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/TECHBREW-hub/TravelSure/internal/adapters/contracttest"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/postgres"
	catalogport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/catalogsource"
)

// Runs against a real database when TEST_DATABASE_URL is set; skipped
// otherwise. The catalog tables must already be provisioned and seeded.
func TestContract_PostgresCatalogSource(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := postgres.NewPool(context.Background(), dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	contracttest.RunCatalogSource(t, func(t *testing.T) (catalogport.Source, func()) {
		t.Helper()
		return NewSource(pool), nil
	})
}

func TestLoad_UnreachableBackendIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := NewSource(nil).Load(context.Background())
	if !errors.Is(err, catalogport.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}
