package calculator

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is a server-held calculator. All mutations of one session are
// serialized; different sessions proceed independently.
type Session struct {
	ID string

	mu       sync.Mutex
	machine  *Machine
	lastUsed time.Time
}

// Input is a batch of tokens and key events applied to a machine in order:
// tokens first, then keys.
type Input struct {
	Tokens []Token    `json:"tokens"`
	Keys   []KeyEvent `json:"keys"`
}

// Result is the state after an input batch together with the state each
// solve in the batch produced, in order.
type Result struct {
	Snapshot Snapshot
	Solves   []State
}

// Apply feeds the input to the session's machine and returns the new state.
func (s *Session) Apply(in Input, now time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	solves := in.applyTo(s.machine)
	s.lastUsed = now
	return Result{Snapshot: s.machine.Snapshot(), Solves: solves}
}

// Snapshot returns the session's current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Snapshot()
}

func (in Input) applyTo(m *Machine) []State {
	var solves []State
	for _, t := range in.Tokens {
		m.Press(t)
		if t == Solve {
			solves = append(solves, m.State())
		}
	}
	for _, ev := range in.Keys {
		if !m.HandleKey(ev) {
			continue
		}
		if t, _ := TokenForKey(ev.Key); t == Solve {
			solves = append(solves, m.State())
		}
	}
	return solves
}

// Apply runs input against a detached machine rebuilt from a snapshot.
func Apply(from Snapshot, in Input) (Result, error) {
	m, err := FromSnapshot(from)
	if err != nil {
		return Result{}, err
	}
	solves := in.applyTo(m)
	return Result{Snapshot: m.Snapshot(), Solves: solves}, nil
}

// SessionStore keeps calculator sessions in memory and evicts idle ones.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store whose sessions expire after ttl of inactivity.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new idle session.
func (st *SessionStore) Create() *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		machine:  New(),
		lastUsed: st.now(),
	}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

// Get looks up a session by ID.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Apply feeds input to the session with the given ID.
func (st *SessionStore) Apply(id string, in Input) (Result, error) {
	sess, err := st.Get(id)
	if err != nil {
		return Result{}, err
	}
	return sess.Apply(in, st.now()), nil
}

// Delete removes a session.
func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (st *SessionStore) Sweep() int {
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		sess.mu.Lock()
		idle := sess.lastUsed.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every interval tick until ctx is cancelled. After each
// sweep observe, when set, receives the number of live sessions.
func (st *SessionStore) Run(ctx context.Context, interval time.Duration, observe func(live int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				log.Printf("Evicted %d idle calculator sessions", n)
			}
			if observe != nil {
				observe(st.Len())
			}
		}
	}
}
