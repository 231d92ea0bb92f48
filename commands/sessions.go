package commands

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mobile-next/swipecli/gesture"
	"github.com/mobile-next/swipecli/utils"
)

// DefaultMaxSessions bounds the number of live sessions a registry keeps
const DefaultMaxSessions = 256

// SessionResult is returned by every session operation
type SessionResult struct {
	ID     string                `json:"sessionId"`
	Phase  gesture.Phase         `json:"phase"`
	Events []EventRecord         `json:"events"`
	State  *gesture.GestureState `json:"gestureState,omitempty"`
}

type liveSession struct {
	mu      sync.Mutex
	id      string
	session *gesture.Session
	log     *eventLog
	created time.Time
}

func (s *liveSession) result() SessionResult {
	res := SessionResult{
		ID:     s.id,
		Phase:  s.session.Phase(),
		Events: s.log.drain(),
	}
	if state, ok := s.session.GestureState(); ok {
		res.State = &state
	}
	return res
}

// SessionRegistry holds the live gesture sessions driven through the server.
// The least recently used session is terminated and dropped once the
// registry is full.
type SessionRegistry struct {
	cache *lru.Cache[string, *liveSession]
}

// NewSessionRegistry creates a registry holding at most size sessions
func NewSessionRegistry(size int) (*SessionRegistry, error) {
	if size <= 0 {
		size = DefaultMaxSessions
	}

	cache, err := lru.NewWithEvict[string, *liveSession](size, func(id string, s *liveSession) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.session.OnTerminate()
		utils.Verbose("session %s dropped after %s", id, time.Since(s.created).Round(time.Millisecond))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session registry: %w", err)
	}

	return &SessionRegistry{cache: cache}, nil
}

// Create starts a new session and returns its id
func (r *SessionRegistry) Create(c gesture.Config) SessionResult {
	log := &eventLog{}
	s := &liveSession{
		id:      uuid.NewString(),
		session: gesture.NewSession(c, log.handlers()),
		log:     log,
		created: time.Now(),
	}

	r.cache.Add(s.id, s)
	utils.Verbose("session %s created, directions=%v", s.id, c.Enabled())

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result()
}

func (r *SessionRegistry) get(id string) (*liveSession, error) {
	if id == "" {
		return nil, fmt.Errorf("session ID is required")
	}

	s, ok := r.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	return s, nil
}

// Claim answers the capture probe for a session without changing it
func (r *SessionRegistry) Claim(id string, sample gesture.MotionSample) (bool, error) {
	s, err := r.get(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ShouldClaim(sample), nil
}

// Sample delivers motion samples to a session and returns the emitted events
func (r *SessionRegistry) Sample(id string, samples ...gesture.MotionSample) (SessionResult, error) {
	s, err := r.get(id)
	if err != nil {
		return SessionResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sample := range samples {
		s.session.OnSample(sample)
	}
	return s.result(), nil
}

// Terminate ends the current interaction of a session. The session stays
// registered and the next sample starts a new interaction.
func (r *SessionRegistry) Terminate(id string) (SessionResult, error) {
	s, err := r.get(id)
	if err != nil {
		return SessionResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.OnTerminate()
	return s.result(), nil
}

// State returns the current snapshot of a session
func (r *SessionRegistry) State(id string) (SessionResult, error) {
	s, err := r.get(id)
	if err != nil {
		return SessionResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result(), nil
}

// Delete terminates a session and removes it from the registry
func (r *SessionRegistry) Delete(id string) (SessionResult, error) {
	s, err := r.get(id)
	if err != nil {
		return SessionResult{}, err
	}

	s.mu.Lock()
	s.session.OnTerminate()
	res := s.result()
	s.mu.Unlock()

	r.cache.Remove(id)
	return res, nil
}

// Len returns the number of live sessions
func (r *SessionRegistry) Len() int {
	return r.cache.Len()
}

// CloseAll terminates and removes every session
func (r *SessionRegistry) CloseAll() {
	if r.cache.Len() == 0 {
		return
	}
	r.cache.Purge()
}
