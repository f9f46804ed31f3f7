package service

import (
	"sync"
	"time"
)

// SessionStore owns the session ledgers. A ledger is created the first
// time a session id is seen and disposed of after the session has been
// idle for the configured TTL. Ledgers are never shared across sessions
// and never persisted.
type SessionStore struct {
	mu          sync.RWMutex
	sessions    map[string]*sessionEntry
	ttl         time.Duration
	cleanupTick time.Duration
}

type sessionEntry struct {
	ledger   *Ledger
	lastSeen time.Time
}

// NewSessionStore creates a session store and starts its cleanup loop.
// Non-positive durations fall back to defaults.
func NewSessionStore(ttl, cleanupInterval time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	s := &SessionStore{
		sessions:    make(map[string]*sessionEntry),
		ttl:         ttl,
		cleanupTick: cleanupInterval,
	}

	go s.cleanupLoop()

	return s
}

// Ledger returns the ledger for a session, creating it on first use.
func (s *SessionStore) Ledger(sessionID string) *Ledger {
	s.mu.RLock()
	entry, exists := s.sessions[sessionID]
	s.mu.RUnlock()

	if exists {
		s.mu.Lock()
		entry.lastSeen = time.Now()
		s.mu.Unlock()
		return entry.ledger
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double check after acquiring write lock
	if entry, exists := s.sessions[sessionID]; exists {
		entry.lastSeen = time.Now()
		return entry.ledger
	}

	ledger := NewLedger()
	s.sessions[sessionID] = &sessionEntry{
		ledger:   ledger,
		lastSeen: time.Now(),
	}

	return ledger
}

// ActiveSessions returns the number of ledgers currently held.
func (s *SessionStore) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// cleanupLoop periodically disposes of idle session ledgers
func (s *SessionStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

// cleanup removes sessions that have been idle longer than the TTL
func (s *SessionStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
