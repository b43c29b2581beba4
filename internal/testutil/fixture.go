package testutil

import (
	"testing"
	"time"

	"gramgrid/internal/store"
	"gramgrid/internal/village"
)

// Fixture bundles a repository wired over an in-memory store with a
// controllable clock and deterministic record IDs.
type Fixture struct {
	Store       *store.MemoryStore
	Clock       *StubClock
	IDs         *StubIDGenerator
	Logger      *RecordingLogger
	Collections *village.Collections
	Hasher      *village.PasswordHasher
	Repo        *village.Repository
	Sessions    *village.SessionManager
}

// NewFixture creates a Fixture with the default session TTL.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return NewFixtureWithTTL(t, village.DefaultSessionTTL)
}

// NewFixtureWithTTL creates a Fixture whose session manager uses the given TTL.
func NewFixtureWithTTL(t *testing.T, ttl time.Duration) *Fixture {
	t.Helper()

	s := store.NewMemoryStore()
	clock := FixedClock()
	ids := NewStubIDGenerator()
	logger := NewRecordingLogger()
	collections := village.NewCollections(s, village.DefaultPrefix, logger)
	hasher := village.NewPasswordHasher()
	repo := village.NewRepository(collections, clock, ids, logger)
	sessions := village.NewSessionManager(collections, repo, hasher, clock, logger, ttl)

	return &Fixture{
		Store:       s,
		Clock:       clock,
		IDs:         ids,
		Logger:      logger,
		Collections: collections,
		Hasher:      hasher,
		Repo:        repo,
		Sessions:    sessions,
	}
}

// Seed populates the fixture's store with the demo dataset.
func (f *Fixture) Seed(t *testing.T) {
	t.Helper()
	if err := f.Repo.EnsureSeeded(f.Hasher); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
}
