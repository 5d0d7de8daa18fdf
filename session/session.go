package session

import (
	"sync"
	"time"

	"github.com/hupe1980/shopmesh/core"
	"github.com/hupe1980/shopmesh/logging"
)

// HistoryLimit caps the retained conversation history per identity. Appends
// beyond the limit drop the oldest entries (sliding window).
const HistoryLimit = 20

// Phase is the onboarding state of an identity.
type Phase string

const (
	// PhaseAnonymous is the initial phase before any connect.
	PhaseAnonymous Phase = "ANONYMOUS"
	// PhaseAwaitingName means the identity connected without a known display name.
	PhaseAwaitingName Phase = "AWAITING_NAME"
	// PhaseReady is the terminal onboarding phase; later name updates do not
	// change it.
	PhaseReady Phase = "READY"
)

// State is the per-identity session snapshot.
//
// Contract:
//   - History length never exceeds HistoryLimit and stays chronologically ordered
//   - User/assistant pairing is not enforced; a cancelled turn may leave an
//     unpaired trailing user entry and consumers must tolerate that
//   - Returned snapshots are defensive copies safe for caller mutation
type State struct {
	Identity    string         `json:"identity"`
	Phase       Phase          `json:"phase"`
	DisplayName string         `json:"display_name,omitempty"`
	History     []core.Message `json:"history"`
	Created     time.Time      `json:"created"`
	Updated     time.Time      `json:"updated"`
}

// Manager owns all session states, keyed by identity. Operations never fail:
// any string, including the empty string, is a valid (degenerate) identity key.
type Manager struct {
	mu     sync.RWMutex
	states map[string]*State
	logger logging.Logger
}

// ManagerOption mutates Manager construction settings.
type ManagerOption func(*Manager)

// WithLogger injects a logger; defaults to NoOpLogger.
func WithLogger(l logging.Logger) ManagerOption {
	return func(m *Manager) { m.logger = l }
}

// NewManager constructs an empty session manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{states: make(map[string]*State), logger: logging.NoOpLogger{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns a snapshot of the identity's state, lazily creating it in
// PhaseAnonymous on first access.
func (m *Manager) Get(identity string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getLocked(identity).snapshot()
}

// Connect transitions the identity out of PhaseAnonymous. With a known
// display name it lands directly in PhaseReady; otherwise it moves to
// PhaseAwaitingName. Connecting an already onboarded identity is a no-op
// beyond refreshing a newly supplied name.
func (m *Manager) Connect(identity, knownName string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.getLocked(identity)
	if knownName != "" {
		st.DisplayName = knownName
		st.Phase = PhaseReady
	} else if st.Phase == PhaseAnonymous {
		st.Phase = PhaseAwaitingName
	}
	st.Updated = time.Now()
	m.logger.Debug("session connected", "identity", identity, "phase", string(st.Phase))
	return st.snapshot()
}

// ResolveName records a resolved display name. An identity in
// PhaseAwaitingName advances to PhaseReady; PhaseReady is terminal and only
// the name is refreshed.
func (m *Manager) ResolveName(identity, name string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.getLocked(identity)
	st.DisplayName = name
	if st.Phase == PhaseAwaitingName {
		st.Phase = PhaseReady
	}
	st.Updated = time.Now()
	return st.snapshot()
}

// AppendTurn appends a conversational turn and truncates the history to the
// most recent HistoryLimit entries.
func (m *Manager) AppendTurn(identity, role, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.getLocked(identity)
	st.History = append(st.History, core.Message{Role: role, Text: text})
	if overflow := len(st.History) - HistoryLimit; overflow > 0 {
		st.History = append(st.History[:0], st.History[overflow:]...)
	}
	st.Updated = time.Now()
}

// History returns a copy of the retained conversation history.
func (m *Manager) History(identity string) []core.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.states[identity]
	if !ok {
		return nil
	}
	history := make([]core.Message, len(st.History))
	copy(history, st.History)
	return history
}

// Reset deletes the identity's state entirely; the next access reconstructs
// it in PhaseAnonymous.
func (m *Manager) Reset(identity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, identity)
	m.logger.Debug("session reset", "identity", identity)
}

// getLocked returns the live state for identity, creating it lazily. Caller
// must hold the write lock.
func (m *Manager) getLocked(identity string) *State {
	st, ok := m.states[identity]
	if !ok {
		now := time.Now()
		st = &State{Identity: identity, Phase: PhaseAnonymous, Created: now, Updated: now}
		m.states[identity] = st
	}
	return st
}

// snapshot returns a defensive copy safe for external use.
func (s *State) snapshot() State {
	out := *s
	out.History = make([]core.Message, len(s.History))
	copy(out.History, s.History)
	return out
}
