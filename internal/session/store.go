package session

import (
	"context"
	"encoding/json"
	"sync"

	"shopsphere/storefront/internal/config"
	"shopsphere/storefront/internal/domain"
	"shopsphere/storefront/internal/storage"

	log "github.com/sirupsen/logrus"
)

const storageKey = "session"

// Store owns the signed-in identity for the current browsing session.
// The session is either signed out or signed in; login and logout are the
// only transitions. The last identity is persisted so a reload restores it.
type Store struct {
	mutex   sync.Mutex
	session domain.Session
	demo    config.DemoConfig
	storage storage.Storage
}

// NewStore restores the session from storage. Missing or corrupt data
// means signed out.
func NewStore(ctx context.Context, store storage.Storage, demo config.DemoConfig) *Store {
	s := &Store{storage: store, demo: demo}

	data, ok, err := store.Get(ctx, storageKey)
	if err != nil {
		log.Warnf("Failed to load session from storage, starting signed out: %v", err)
		return s
	}
	if !ok {
		return s
	}

	if err := json.Unmarshal(data, &s.session); err != nil {
		log.Warnf("Corrupt session data in storage, starting signed out: %v", err)
		s.session = domain.Session{}
	}

	return s
}

// Authenticate runs the simulated local credential check against the
// configured demo account. It does not change the session; callers invoke
// Login with the returned user on success.
func (s *Store) Authenticate(email, password string) (domain.User, error) {
	if email != s.demo.Email || password != s.demo.Password {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return domain.User{
		ID:    s.demo.UserID,
		Name:  s.demo.Name,
		Email: s.demo.Email,
	}, nil
}

// Register creates a local-only account and returns its user profile.
// There is no backend; the profile exists only in this session.
func (s *Store) Register(name, email string) domain.User {
	return domain.User{
		ID:    "1",
		Name:  name,
		Email: email,
	}
}

// Login unconditionally signs the given user in.
func (s *Store) Login(ctx context.Context, user domain.User) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.session = domain.Session{Authenticated: true, User: user}
	s.persist(ctx)
	log.Infof("👤 Signed in as %s", user.Email)
}

// Logout signs out, discarding the identity.
func (s *Store) Logout(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.session = domain.Session{}
	s.persist(ctx)
	log.Info("👤 Signed out")
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.session.Authenticated
}

// User returns the signed-in user, if any.
func (s *Store) User() (domain.User, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.session.User, s.session.Authenticated
}

// persist is called with the mutex held.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.session)
	if err != nil {
		log.Errorf("Failed to serialize session: %v", err)
		return
	}

	if err := s.storage.Set(ctx, storageKey, data); err != nil {
		log.Warnf("Failed to persist session: %v", err)
	}
}
