// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/diarisk/form"
)

// Session is one in-progress questionnaire.
type Session struct {
	Token     string
	State     *form.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store keeps wizard sessions in memory. Sessions live for at most the
// configured TTL since their last update; expired ones are swept
// opportunistically on Start.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start creates a new session at the first section and returns its token.
func (s *Store) Start() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	now := s.now()
	sess := &Session{
		Token:     uuid.NewString(),
		State:     form.NewState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sess.Token] = sess
	return sess
}

// Snapshot returns a copy of the session's form state, or false if the
// token is unknown or expired.
func (s *Store) Snapshot(token string) (form.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.liveLocked(token)
	if !ok {
		return form.State{}, false
	}
	return copyState(sess.State), true
}

// Update runs fn against the session's state under the store lock and
// returns a copy of the result. Returns false for unknown or expired
// tokens.
func (s *Store) Update(token string, fn func(*form.State)) (form.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.liveLocked(token)
	if !ok {
		return form.State{}, false
	}
	fn(sess.State)
	sess.UpdatedAt = s.now()
	return copyState(sess.State), true
}

// Consume removes the session and returns it. Exactly one caller wins
// for a given token, so concurrent submits cannot both proceed.
func (s *Store) Consume(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.liveLocked(token)
	if !ok {
		return nil, false
	}
	delete(s.sessions, token)
	return sess, true
}

// Restore puts a consumed session back, keeping the same token. Used
// when the upstream prediction fails so the user can retry.
func (s *Store) Restore(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.UpdatedAt = s.now()
	s.sessions[sess.Token] = sess
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// liveLocked looks up a session, deleting it if expired. Caller holds the lock.
func (s *Store) liveLocked(token string) (*Session, bool) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.UpdatedAt) > s.ttl {
		delete(s.sessions, token)
		return nil, false
	}
	return sess, true
}

func (s *Store) sweepLocked() {
	cutoff := s.now().Add(-s.ttl)
	for token, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
}

func copyState(st *form.State) form.State {
	out := form.State{Index: st.Index, Values: form.Values{}}
	for k, v := range st.Values {
		out.Values[k] = v
	}
	return out
}
