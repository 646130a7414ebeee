package session

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"shopsphere/storefront/internal/config"
	"shopsphere/storefront/internal/domain"
	"shopsphere/storefront/internal/storage"
)

var demoAccount = config.DemoConfig{
	UserID:   "1",
	Name:     "Demo User",
	Email:    "user@example.com",
	Password: "password",
}

type SessionStoreSuite struct {
	suite.Suite
	store   *Store
	backend storage.Storage
	ctx     context.Context
}

func (s *SessionStoreSuite) SetupTest() {
	backend, err := storage.NewFileStorage(afero.NewMemMapFs(), "/data", "test")
	s.Require().NoError(err)
	s.backend = backend
	s.ctx = context.Background()
	s.store = NewStore(s.ctx, backend, demoAccount)
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) TestInitialState() {
	s.False(s.store.IsAuthenticated())

	_, ok := s.store.User()
	s.False(ok)
}

func (s *SessionStoreSuite) TestLoginLogout() {
	user := domain.User{ID: "1", Name: "Demo User", Email: "user@example.com"}

	s.Run("login signs the user in", func() {
		s.store.Login(s.ctx, user)

		s.True(s.store.IsAuthenticated())
		got, ok := s.store.User()
		s.True(ok)
		s.Equal(user, got)
	})

	s.Run("logout discards the identity", func() {
		s.store.Logout(s.ctx)

		s.False(s.store.IsAuthenticated())
		got, ok := s.store.User()
		s.False(ok)
		s.Equal(domain.User{}, got)
	})
}

func (s *SessionStoreSuite) TestAuthenticate() {
	s.Run("accepts the demo credentials", func() {
		user, err := s.store.Authenticate("user@example.com", "password")
		s.Require().NoError(err)
		s.Equal("1", user.ID)
		s.Equal("Demo User", user.Name)

		// Authenticate alone does not change the session.
		s.False(s.store.IsAuthenticated())
	})

	s.Run("rejects a wrong password", func() {
		_, err := s.store.Authenticate("user@example.com", "wrong")
		s.Require().ErrorIs(err, domain.ErrInvalidCredentials)
	})

	s.Run("rejects an unknown email", func() {
		_, err := s.store.Authenticate("other@example.com", "password")
		s.Require().ErrorIs(err, domain.ErrInvalidCredentials)
	})
}

func (s *SessionStoreSuite) TestRegister() {
	user := s.store.Register("New Shopper", "new@example.com")

	s.Equal("New Shopper", user.Name)
	s.Equal("new@example.com", user.Email)
	s.NotEmpty(user.ID)
}

func (s *SessionStoreSuite) TestPersistence() {
	s.Run("identity survives a reload", func() {
		s.store.Login(s.ctx, domain.User{ID: "1", Name: "Demo User", Email: "user@example.com"})

		restored := NewStore(s.ctx, s.backend, demoAccount)
		s.True(restored.IsAuthenticated())
		user, ok := restored.User()
		s.True(ok)
		s.Equal("user@example.com", user.Email)
	})

	s.Run("logout persists too", func() {
		s.store.Logout(s.ctx)

		restored := NewStore(s.ctx, s.backend, demoAccount)
		s.False(restored.IsAuthenticated())
	})

	s.Run("corrupt storage means signed out", func() {
		s.Require().NoError(s.backend.Set(s.ctx, "session", []byte("???")))

		restored := NewStore(s.ctx, s.backend, demoAccount)
		s.False(restored.IsAuthenticated())
	})
}
