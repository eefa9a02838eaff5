package session

import (
	"sync"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

// Identity is the authenticated user as seen by the booking forms
type Identity struct {
	Email    string
	Name     string
	LastName string
	Phone    string
	Role     domain.Role
	Token    string // bearer token for the reservation gateway
}

// IsAdmin reports whether the identity has the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// Store holds the current identity. It is read by every controller and
// written only on sign-in and sign-out. Pass it explicitly; there is no global instance.
type Store struct {
	mu       sync.RWMutex
	identity *Identity
}

// NewStore creates an empty (signed-out) store
func NewStore() *Store {
	return &Store{}
}

// SignIn replaces the current identity. An identity without email is treated as sign-out
func (s *Store) SignIn(identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if identity.Email == "" {
		s.identity = nil
		return
	}
	if identity.Role == "" {
		identity.Role = domain.RoleUser
	}
	s.identity = &identity
}

// SignOut clears the current identity
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
}

// Current returns a copy of the identity and whether someone is signed in
func (s *Store) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}
