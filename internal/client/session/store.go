// Package session keeps the signed-in account on the client side.
package session

import (
	"sync"

	"recruit/internal/domain/entity"
)

// Store holds at most one account and the session token it was verified
// with. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	account entity.Account
	token   string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the current session.
func (s *Store) Set(account entity.Account, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account = account
	s.token = token
}

// Get returns the current session, if any.
func (s *Store) Get() (entity.Account, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.account, s.token, s.account != nil
}

// Clear drops the current session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account = nil
	s.token = ""
}

// Require returns the current account if it has the given role. It applies
// the same guard the server uses, so a student never reaches recruiter calls.
func (s *Store) Require(role entity.Role) (entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := entity.RequireRole(s.account, role); err != nil {
		return nil, err
	}

	return s.account, nil
}
