// Package session holds the unlocked state of a single authenticated
// client session. The Master Key lives here and nowhere else: every
// cryptographic operation receives the session explicitly, so there is no
// ambient process-wide key state to leak or to outlive a logout.
package session

import (
	"errors"
	"sync"

	"github.com/cryptbox/cryptbox/internal/crypto"
)

// ErrClosed is returned when a session is used after Close.
var ErrClosed = errors.New("session is closed")

// Session is the explicit per-login context object. It is created at
// login, registration, or vault unlock and torn down at logout. Closing
// the session zeroes the Master Key's backing memory.
type Session struct {
	userID int64

	mu     sync.RWMutex
	master *crypto.MasterKey
}

// New binds an unlocked Master Key to userID. The session takes
// ownership of the key: callers must not retain or zero it themselves.
func New(userID int64, master *crypto.MasterKey) *Session {
	return &Session{userID: userID, master: master}
}

// UserID returns the authenticated user this session belongs to.
func (s *Session) UserID() int64 {
	return s.userID
}

// MasterKey returns the session's Master Key for use in a cryptographic
// call. Returns [ErrClosed] after logout.
func (s *Session) MasterKey() (*crypto.MasterKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.master == nil {
		return nil, ErrClosed
	}
	return s.master, nil
}

// Close tears the session down: the Master Key is zeroed and detached.
// Safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.master != nil {
		s.master.Zero()
		s.master = nil
	}
}
