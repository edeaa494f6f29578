package security

import (
	"context"
	"testing"
	"time"

	"booking-client/domain"
)

// mapSessionStorage is an in-memory stand-in for the redis cache
type mapSessionStorage struct {
	sessions map[string]*domain.Session
	deletes  int
}

func newMapSessionStorage() *mapSessionStorage {
	return &mapSessionStorage{sessions: make(map[string]*domain.Session)}
}

func (m *mapSessionStorage) PostSession(sessionID string, session *domain.Session, ctx context.Context) error {
	m.sessions[sessionID] = session
	return nil
}

func (m *mapSessionStorage) GetSession(sessionID string, ctx context.Context) (*domain.Session, error) {
	return m.sessions[sessionID], nil
}

func (m *mapSessionStorage) DeleteSession(sessionID string, ctx context.Context) error {
	delete(m.sessions, sessionID)
	m.deletes++
	return nil
}

func newTestStore(storage SessionStorage, now time.Time) *CredentialStore {
	store := NewCredentialStore(storage)
	store.now = func() time.Time { return now }
	return store
}

func TestCredentialStoreRoleWithoutSession(t *testing.T) {
	store := newTestStore(newMapSessionStorage(), time.Now())
	ctx := context.Background()

	if store.IsAuthenticated("missing", ctx) {
		t.Error("IsAuthenticated = true with no session")
	}
	if got := store.Role("missing", ctx); got != domain.RoleGuest {
		t.Errorf("Role = %v, want %v", got, domain.RoleGuest)
	}
	if got := store.Role("", ctx); got != domain.RoleGuest {
		t.Errorf("Role with empty id = %v, want %v", got, domain.RoleGuest)
	}
}

func TestCredentialStoreSetAndClear(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	storage := newMapSessionStorage()
	store := newTestStore(storage, now)
	ctx := context.Background()

	session := &domain.Session{Token: "tok", Role: domain.RoleUser, ExpiresAt: now.Add(time.Hour)}
	if err := store.SetSession("sid", session, ctx); err != nil {
		t.Fatalf("SetSession returned error: %v", err)
	}

	if !store.IsAuthenticated("sid", ctx) {
		t.Error("IsAuthenticated = false after SetSession")
	}
	if got := store.Role("sid", ctx); got != domain.RoleUser {
		t.Errorf("Role = %v, want %v", got, domain.RoleUser)
	}

	if err := store.Clear("sid", ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if store.IsAuthenticated("sid", ctx) {
		t.Error("IsAuthenticated = true after Clear")
	}

	// clearing again is idempotent
	if err := store.Clear("sid", ctx); err != nil {
		t.Errorf("second Clear returned error: %v", err)
	}
}

func TestCredentialStorePurgesExpiredSession(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	storage := newMapSessionStorage()
	store := newTestStore(storage, now)
	ctx := context.Background()

	expired := &domain.Session{Token: "tok", Role: domain.RoleAdmin, ExpiresAt: now.Add(-time.Minute)}
	storage.sessions["sid"] = expired

	if store.IsAuthenticated("sid", ctx) {
		t.Error("expired session reported as authenticated")
	}
	if got := store.Role("sid", ctx); got != domain.RoleGuest {
		t.Errorf("Role for expired session = %v, want %v", got, domain.RoleGuest)
	}
	if storage.deletes == 0 {
		t.Error("expired session was not purged")
	}
}

func TestCredentialStoreReplaceIsAtomic(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	storage := newMapSessionStorage()
	store := newTestStore(storage, now)
	ctx := context.Background()

	first := &domain.Session{Token: "tok1", Role: domain.RoleUser, ExpiresAt: now.Add(time.Hour)}
	second := &domain.Session{Token: "tok2", Role: domain.RoleAdmin, ExpiresAt: now.Add(time.Hour)}
	_ = store.SetSession("sid", first, ctx)
	_ = store.SetSession("sid", second, ctx)

	got := store.Session("sid", ctx)
	if got == nil {
		t.Fatal("Session = nil after replace")
	}
	if got.Token != "tok2" || got.Role != domain.RoleAdmin {
		t.Errorf("Session after replace = %+v, want the second session whole", got)
	}
}
