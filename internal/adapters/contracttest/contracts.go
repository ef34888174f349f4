// Package contracttest holds behavior suites shared by every adapter
// implementing a given port. Each adapter package runs the suite from its own
// contract_test.go, so memory/file/redis stay interchangeable.
package contracttest

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	catalogport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/catalogsource"
	idemport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/idempotency"
	sessionport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/sessionstore"
)

type CleanupFunc = func()

type SessionStoreFactory func(t *testing.T) (sessionport.Store, CleanupFunc)
type CatalogSourceFactory func(t *testing.T) (catalogport.Source, CleanupFunc)
type IdempotencyStoreFactory func(t *testing.T) (idemport.Store, CleanupFunc)

// RunSessionStore exercises the single-record session store contract:
// load-before-save is ErrNotFound, save round-trips field-for-field, save
// overwrites, clear removes, and clearing an absent record is not an error.
func RunSessionStore(t *testing.T, newStore SessionStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	if _, err := store.Load(ctx); !errors.Is(err, sessionport.ErrNotFound) {
		t.Fatalf("Load before Save: err=%v, want ErrNotFound", err)
	}

	// Clearing an absent record is a no-op.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear absent: %v", err)
	}

	avatar := "https://example.com/a.png"
	u := domain.User{
		ID:     domain.UserID("u-1"),
		Name:   "John Doe",
		Email:  "a@x.com",
		Phone:  "+91 9876543210",
		Avatar: &avatar,
	}
	if err := store.Save(ctx, u); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID != u.ID || got.Name != u.Name || got.Email != u.Email || got.Phone != u.Phone {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, u)
	}
	if got.Avatar == nil || *got.Avatar != avatar {
		t.Fatalf("avatar not round-tripped: %+v", got.Avatar)
	}

	// Overwrite semantics: one record, last save wins.
	u2 := domain.User{ID: "u-2", Name: "Priya Sharma", Email: "priya@x.com", Phone: "+91 9000000000"}
	if err := store.Save(ctx, u2); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil || got.ID != "u-2" {
		t.Fatalf("expected overwritten record, got %+v err=%v", got, err)
	}
	if got.Avatar != nil {
		t.Fatalf("stale avatar survived overwrite: %+v", got.Avatar)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, sessionport.ErrNotFound) {
		t.Fatalf("Load after Clear: err=%v, want ErrNotFound", err)
	}
}

// RunIdempotencyStore exercises the replay-record contract: a miss reports
// found=false, a put round-trips the full record under its fingerprint,
// fingerprints that differ in any field stay isolated, and a second put for
// the same fingerprint overwrites.
func RunIdempotencyStore(t *testing.T, newStore IdempotencyStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	fp := idemport.Fingerprint{
		Key:      "idem-1",
		UserID:   domain.UserID("u-1"),
		Method:   "POST",
		Route:    "/v1/bookings",
		BodyHash: "abc123",
	}

	if _, found, err := store.Get(ctx, fp); err != nil || found {
		t.Fatalf("Get before Put: found=%v err=%v", found, err)
	}

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rec := idemport.Record{
		StatusCode:  201,
		ContentType: "application/json",
		Body:        []byte(`{"booking":{"id":"bk-1"}}`),
		CreatedAt:   created,
	}
	if err := store.Put(ctx, fp, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := store.Get(ctx, fp)
	if err != nil || !found {
		t.Fatalf("Get after Put: found=%v err=%v", found, err)
	}
	if got.StatusCode != rec.StatusCode || got.ContentType != rec.ContentType {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, rec)
	}
	if !bytes.Equal(got.Body, rec.Body) {
		t.Fatalf("body not round-tripped: %q", got.Body)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created-at not round-tripped: %v", got.CreatedAt)
	}

	// Same key, different payload hash: a distinct fingerprint, never a hit.
	reused := fp
	reused.BodyHash = "def456"
	if _, found, err := store.Get(ctx, reused); err != nil || found {
		t.Fatalf("Get with different body hash: found=%v err=%v", found, err)
	}

	other := idemport.Fingerprint{
		Key:      "idem-2",
		UserID:   domain.UserID("u-1"),
		Method:   "POST",
		Route:    "/v1/bookings",
		BodyHash: "abc123",
	}
	if err := store.Put(ctx, other, idemport.Record{StatusCode: 200}); err != nil {
		t.Fatalf("Put second fingerprint: %v", err)
	}
	if got, _, _ := store.Get(ctx, fp); got.StatusCode != 201 {
		t.Fatalf("second fingerprint clobbered the first: %+v", got)
	}

	rec.StatusCode = 409
	if err := store.Put(ctx, fp, rec); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	if got, found, _ := store.Get(ctx, fp); !found || got.StatusCode != 409 {
		t.Fatalf("expected overwritten record, got %+v found=%v", got, found)
	}
}

// RunCatalogSource checks that a source yields a non-empty, internally
// consistent catalog: every package's destination reference resolves.
func RunCatalogSource(t *testing.T, newSource CatalogSourceFactory) {
	t.Helper()
	ctx := context.Background()

	src, cleanup := newSource(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	c, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Destinations) == 0 || len(c.Packages) == 0 || len(c.Hotels) == 0 || len(c.Experiences) == 0 {
		t.Fatalf("catalog has empty collections: %d/%d/%d/%d",
			len(c.Destinations), len(c.Packages), len(c.Hotels), len(c.Experiences))
	}

	dests := make(map[domain.DestinationID]bool, len(c.Destinations))
	for _, d := range c.Destinations {
		if d.ID == "" || d.Name == "" {
			t.Fatalf("destination missing id or name: %+v", d)
		}
		dests[d.ID] = true
	}
	for _, p := range c.Packages {
		if !dests[p.DestinationID] {
			t.Fatalf("package %s references unknown destination %s", p.ID, p.DestinationID)
		}
		if p.Price <= 0 {
			t.Fatalf("package %s has non-positive price", p.ID)
		}
	}
}
