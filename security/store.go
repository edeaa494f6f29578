package security

import (
	"context"
	"time"

	"booking-client/domain"
)

// SessionStorage is the persisted home of sessions. The redis cache
// implements it in production; tests swap in a map.
type SessionStorage interface {
	PostSession(sessionID string, session *domain.Session, ctx context.Context) error
	GetSession(sessionID string, ctx context.Context) (*domain.Session, error)
	DeleteSession(sessionID string, ctx context.Context) error
}

// CredentialStore holds the authenticated state for each session ID and
// answers the capability questions the guard asks. An expired session is
// treated as no session at all and purged on sight.
type CredentialStore struct {
	storage SessionStorage
	now     func() time.Time
}

func NewCredentialStore(storage SessionStorage) *CredentialStore {
	return &CredentialStore{
		storage: storage,
		now:     time.Now,
	}
}

// SetSession replaces the stored session as a whole. Readers either see the
// previous session or the new one, never a partial update.
func (cs *CredentialStore) SetSession(sessionID string, session *domain.Session, ctx context.Context) error {
	return cs.storage.PostSession(sessionID, session, ctx)
}

// Clear removes the session. Clearing an absent session is not an error.
func (cs *CredentialStore) Clear(sessionID string, ctx context.Context) error {
	return cs.storage.DeleteSession(sessionID, ctx)
}

// Session returns the current non-expired session, or nil.
func (cs *CredentialStore) Session(sessionID string, ctx context.Context) *domain.Session {
	if sessionID == "" {
		return nil
	}

	session, err := cs.storage.GetSession(sessionID, ctx)
	if err != nil || session == nil {
		return nil
	}

	if session.Expired(cs.now()) {
		// lazy purge; Clear is idempotent
		_ = cs.storage.DeleteSession(sessionID, ctx)
		return nil
	}
	return session
}

func (cs *CredentialStore) IsAuthenticated(sessionID string, ctx context.Context) bool {
	return cs.Session(sessionID, ctx) != nil
}

// Role reports RoleGuest when there is no live session.
func (cs *CredentialStore) Role(sessionID string, ctx context.Context) domain.UserRole {
	session := cs.Session(sessionID, ctx)
	if session == nil {
		return domain.RoleGuest
	}
	return session.Role
}
