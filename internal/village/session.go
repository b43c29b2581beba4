package village

import (
	"fmt"
	"time"

	"gramgrid/internal/model"
)

// DefaultSessionTTL is how long a login session stays valid.
const DefaultSessionTTL = 24 * time.Hour

// SessionManager issues, persists, validates, and discards the single login
// session. A session is either valid at read time or treated as absent;
// expiry is checked lazily, never by a background timer.
type SessionManager struct {
	collections *Collections
	repo        *Repository
	hasher      *PasswordHasher
	clock       Clock
	logger      Logger
	ttl         time.Duration
}

// NewSessionManager creates a SessionManager. A ttl <= 0 means the default
// of 24 hours.
func NewSessionManager(collections *Collections, repo *Repository, hasher *PasswordHasher, clock Clock, logger Logger, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		collections: collections,
		repo:        repo,
		hasher:      hasher,
		clock:       clock,
		logger:      logger,
		ttl:         ttl,
	}
}

// Current returns the active session, or nil when anonymous. A session
// that is expired, unparseable, or whose user no longer exists is
// discarded and reported as absent. Called on startup and before any
// authenticated operation.
func (m *SessionManager) Current() (*model.Session, error) {
	var s model.Session
	ok, err := m.collections.ReadItem(sessionItemName, &s)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	expires, err := time.Parse(time.RFC3339, s.ExpiresAt)
	if err != nil || !expires.After(m.clock.Now()) {
		m.logger.Debug("discarding expired session", "email", s.Email)
		if err := m.collections.DeleteItem(sessionItemName); err != nil {
			return nil, err
		}
		return nil, nil
	}

	user, err := m.repo.GetUserByID(s.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		m.logger.Warn("session references a missing user, discarding", "userId", s.UserID)
		if err := m.collections.DeleteItem(sessionItemName); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &s, nil
}

// Login authenticates by email and password. A known email with the wrong
// password returns (false, nil) and leaves the caller anonymous. An unseen
// email is auto-registered with the given role and full name, attached to
// the first existing village, and then logged straight in.
//
// Two logins with different unseen emails create two users; nothing detects
// a duplicate registration. That matches the intake flow this replaces.
func (m *SessionManager) Login(email, password string, role model.Role, fullName string) (bool, error) {
	user, err := m.repo.GetUserByEmail(email)
	if err != nil {
		return false, err
	}

	if user != nil {
		if !m.hasher.Verify(password, user.PasswordHash) {
			m.logger.Info("login rejected", "email", email)
			return false, nil
		}
	} else {
		user, err = m.Register(email, password, role, fullName, "")
		if err != nil {
			return false, fmt.Errorf("auto-registering %s: %w", email, err)
		}
		m.logger.Info("new user auto-registered on login", "email", email)
	}

	session := model.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: m.clock.Now().UTC().Add(m.ttl).Format(time.RFC3339),
	}
	if err := m.collections.WriteItem(sessionItemName, session); err != nil {
		return false, err
	}
	m.logger.Info("login succeeded", "email", email, "role", user.Role)
	return true, nil
}

// Register creates a user with a hashed password. An empty villageID
// attaches the user to the first existing village, or to the sentinel
// default village when none exist yet.
func (m *SessionManager) Register(email, password string, role model.Role, fullName, villageID string) (*model.User, error) {
	if villageID == "" {
		var err error
		villageID, err = m.repo.FirstVillageID()
		if err != nil {
			return nil, err
		}
	}
	return m.repo.CreateUser(model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: m.hasher.Hash(password),
		Role:         role,
		VillageID:    villageID,
	})
}

// Logout clears the persisted session unconditionally.
func (m *SessionManager) Logout() error {
	if err := m.collections.DeleteItem(sessionItemName); err != nil {
		return err
	}
	m.logger.Info("logged out")
	return nil
}
