// Package auth manages the registered-user set and the single active
// session. It is the sole authority for "who is logged in"; the trip store
// consults it for ownership stamping and mutation checks.
package auth

import (
	"log"

	"github.com/google/uuid"

	"github.com/tripventure/tripventure-go/internal/dto"
	"github.com/tripventure/tripventure-go/internal/models"
	"github.com/tripventure/tripventure-go/internal/storage"
)

// Seeded demo account, created on first use when no user set is persisted.
const (
	DemoUserID   = "demo-user-001"
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123" // demo artifact only, see models.User
)

// Store holds the user set and the current session, both mirrored to
// durable storage on every mutation.
type Store struct {
	storage *storage.Store
	users   []models.User
	current *models.User
}

// NewStore loads the persisted user set (seeding the demo account when none
// exists) and restores any persisted session. A restored session is not
// re-validated against the user set.
func NewStore(st *storage.Store) (*Store, error) {
	s := &Store{storage: st}
	if err := s.loadUsers(); err != nil {
		return nil, err
	}
	s.loadCurrentUser()
	return s, nil
}

func (s *Store) loadUsers() error {
	ok, err := s.storage.GetItem(storage.KeyUsers, &s.users)
	if err != nil {
		log.Printf("auth: discarding stored users: %v", err)
	}
	if ok && err == nil {
		return nil
	}
	s.users = []models.User{{
		ID:       DemoUserID,
		Email:    DemoEmail,
		Password: DemoPassword,
	}}
	return s.storage.SetItem(storage.KeyUsers, s.users)
}

func (s *Store) loadCurrentUser() {
	var user models.User
	ok, err := s.storage.GetItem(storage.KeyCurrentUser, &user)
	if err != nil {
		log.Printf("auth: discarding stored session: %v", err)
		return
	}
	if ok {
		s.current = &user
	}
}

// IsAuthenticated reports whether a session user is set.
func (s *Store) IsAuthenticated() bool {
	return s.current != nil
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Register creates a new account and logs it in. Fails when the email is
// already registered (exact, case-sensitive match).
func (s *Store) Register(email, password string) dto.AuthResult {
	for _, u := range s.users {
		if u.Email == email {
			return dto.AuthResult{Success: false, Error: "Email already registered"}
		}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: password,
	}
	s.users = append(s.users, user)
	if err := s.storage.SetItem(storage.KeyUsers, s.users); err != nil {
		log.Printf("auth: persist users: %v", err)
	}

	s.setSession(user)
	return dto.AuthResult{Success: true}
}

// Login matches email and password exactly against the user set. Unknown
// email and wrong password fail identically.
func (s *Store) Login(email, password string) dto.AuthResult {
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			s.setSession(u)
			return dto.AuthResult{Success: true}
		}
	}
	return dto.AuthResult{Success: false, Error: "Invalid email or password"}
}

// Logout clears the active session and removes its persisted record.
// It always succeeds.
func (s *Store) Logout() {
	s.current = nil
	if err := s.storage.RemoveItem(storage.KeyCurrentUser); err != nil {
		log.Printf("auth: remove session: %v", err)
	}
}

func (s *Store) setSession(user models.User) {
	s.current = &user
	if err := s.storage.SetItem(storage.KeyCurrentUser, user); err != nil {
		log.Printf("auth: persist session: %v", err)
	}
}
