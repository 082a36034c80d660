// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// Session is the client's authenticated state: the server-assigned identity
// plus the symmetric key derived from the user's credentials at login. The
// key exists only in memory and only for the lifetime of the session; nothing
// in the session is ever written to disk.
type Session struct {
	UserID   int64
	Username string

	mu  sync.RWMutex
	key []byte
}

// NewSession wraps a successful login into a Session. The key slice is
// copied, so the caller may zero its own copy.
func NewSession(userID int64, username string, key []byte) *Session {
	owned := make([]byte, len(key))
	copy(owned, key)
	return &Session{
		UserID:   userID,
		Username: username,
		key:      owned,
	}
}

// Key returns the session's encryption key, or nil after Close.
func (s *Session) Key() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

// Active reports whether the session still holds a usable key.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.key) > 0
}

// Close wipes the key material. The session is unusable afterwards; a new
// login is required.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
}
