// Package alerts implements the session-scoped alert list. Resolution
// removes an alert from the active view for this session only; nothing
// is persisted, and a new store restores the original unresolved set.
// That ephemerality is the contract, not an omission.
package alerts

import (
	"sync"

	"solarfleet/internal/domain"
)

// SessionStore holds the alerts visible in the current session.
type SessionStore struct {
	mu       sync.RWMutex
	active   []domain.Alert
	resolved []domain.Alert
}

// NewSessionStore seeds the store from a registry snapshot.
func NewSessionStore(seed []domain.Alert) *SessionStore {
	active := make([]domain.Alert, len(seed))
	copy(active, seed)
	return &SessionStore{active: active}
}

// Active returns the current alert list, order preserved.
func (s *SessionStore) Active() []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Alert, len(s.active))
	copy(out, s.active)
	return out
}

// Resolved returns alerts resolved during this session, in resolution
// order.
func (s *SessionStore) Resolved() []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Alert, len(s.resolved))
	copy(out, s.resolved)
	return out
}

// Resolve removes the alert with the given id from the active list.
// Resolving an unknown or already-removed id is a silent no-op; the
// boolean only drives the confirmation message, which shows either way.
func (s *SessionStore) Resolve(id string) (domain.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.active {
		if a.ID == id {
			s.active = append(s.active[:i], s.active[i+1:]...)
			a.Resolved = true
			s.resolved = append(s.resolved, a)
			return a, true
		}
	}
	return domain.Alert{}, false
}
