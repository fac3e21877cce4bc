// Package session holds the client's in-memory authentication state.
//
// A single Session instance is created at startup and shared by
// reference with every component that needs it: the request pipeline
// reads the token when building each request, services mutate it after
// successful API calls. It carries no I/O of its own — persistence and
// network access live elsewhere.
package session

import (
	"sync"

	"github.com/eduline/eduline-client/internal/core/domain"
)

// Session is the mutable {token, user} pair. The token being empty is
// the definition of "unauthenticated"; the user may lag behind token
// validity until a profile refresh succeeds.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *domain.User
}

func New() *Session {
	return &Session{}
}

// Set replaces token and user atomically.
func (s *Session) Set(token string, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

// SetUser overwrites the profile only, leaving the token untouched.
func (s *Session) SetUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Clear empties the session. Safe to call repeatedly; concurrent
// clears from overlapping 401 handlers are harmless.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a bearer credential is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// FullName returns the display name of the current user, or "" when
// no profile is loaded.
func (s *Session) FullName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.FullName
}

// AvatarURL returns the profile image URL, or "" when none is set.
func (s *Session) AvatarURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || s.user.ImageURL == nil {
		return ""
	}
	return *s.user.ImageURL
}

// Snapshot captures the current state as a persistable record.
func (s *Session) Snapshot() *domain.SessionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &domain.SessionRecord{Token: s.token, User: s.user}
}
