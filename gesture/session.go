package gesture

import (
	"github.com/mobile-next/swipecli/utils"
)

// Phase is the externally visible state of a session
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseArmed
	PhaseLocked
)

func (p Phase) String() string {
	switch p {
	case PhaseArmed:
		return "armed"
	case PhaseLocked:
		return "locked"
	}
	return "idle"
}

func (p Phase) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// Recognizer is what the host capture layer drives
type Recognizer interface {
	ShouldClaim(sample MotionSample) bool
	OnSample(sample MotionSample)
	OnTerminate()
}

// Handlers receive the lifecycle events of a swipe. Nil handlers are skipped.
type Handlers struct {
	OnSwipeBegin func(SwipeEvent)
	OnSwipe      func(SwipeEvent)
	OnSwipeEnd   func(SwipeEndEvent)
}

// lockState is one of idle, armed or locked
type lockState interface {
	phase() Phase
}

type idle struct{}

type armed struct{}

type locked struct {
	direction Direction
	axis      Axis
}

func (idle) phase() Phase   { return PhaseIdle }
func (armed) phase() Phase  { return PhaseArmed }
func (locked) phase() Phase { return PhaseLocked }

// Session turns the motion samples of one interaction at a time into
// begin/progress/end events. It is not safe for concurrent use.
type Session struct {
	config   Config
	handlers Handlers
	state    lockState
	snapshot GestureState
}

var _ Recognizer = (*Session)(nil)

// NewSession creates a session ready for the first interaction
func NewSession(config Config, handlers Handlers) *Session {
	return &Session{
		config:   config,
		handlers: handlers,
		state:    armed{},
	}
}

// Config returns the configuration the session was built with
func (s *Session) Config() Config {
	return s.config
}

// Phase returns the current state
func (s *Session) Phase() Phase {
	return s.state.phase()
}

// Locked returns the locked direction and axis, if any
func (s *Session) Locked() (Direction, Axis, bool) {
	if l, ok := s.state.(locked); ok {
		return l.direction, l.axis, true
	}
	return NoDirection, AxisNone, false
}

// GestureState returns the last reported swipe. ok is false when the session
// was configured not to report state.
func (s *Session) GestureState() (state GestureState, ok bool) {
	if !s.config.ReportGestureState {
		return GestureState{}, false
	}
	return s.snapshot, true
}

// ShouldClaim answers the host's capture probe without changing state
func (s *Session) ShouldClaim(sample MotionSample) bool {
	return ClassifyEligibility(sample, s.config)
}

// Arm marks the start of a new interaction. Samples delivered while idle arm
// the session implicitly.
func (s *Session) Arm() {
	if _, ok := s.state.(idle); ok {
		s.state = armed{}
	}
}

// OnSample feeds one motion sample of the current interaction
func (s *Session) OnSample(sample MotionSample) {
	switch st := s.state.(type) {
	case idle:
		s.state = armed{}
		s.lockIn(sample)
	case armed:
		s.lockIn(sample)
	case locked:
		if !s.config.Continuous {
			return
		}
		event := st.event(sample)
		s.report(event)
		if s.handlers.OnSwipe != nil {
			s.handlers.OnSwipe(event)
		}
	}
}

func (s *Session) lockIn(sample MotionSample) {
	direction, axis := Resolve(sample, s.config)
	if direction == NoDirection {
		return
	}

	l := locked{direction: direction, axis: axis}
	s.state = l
	utils.Verbose("swipe locked: direction=%s axis=%s", direction, axis)

	event := l.event(sample)
	s.report(event)
	if s.handlers.OnSwipeBegin != nil {
		s.handlers.OnSwipeBegin(event)
	}
}

// OnTerminate ends the current interaction, emitting an end event only if a
// direction was locked. Calling it again is a no-op.
func (s *Session) OnTerminate() {
	l, wasLocked := s.state.(locked)
	s.state = idle{}

	if !wasLocked {
		return
	}

	utils.Verbose("swipe ended: direction=%s", l.direction)
	if s.handlers.OnSwipeEnd != nil {
		s.handlers.OnSwipeEnd(SwipeEndEvent{Direction: l.direction})
	}
}

func (s *Session) report(event SwipeEvent) {
	if !s.config.ReportGestureState {
		return
	}
	s.snapshot = GestureState(event)
}

func (l locked) event(sample MotionSample) SwipeEvent {
	return SwipeEvent{
		Direction: l.direction,
		Distance:  sample.distance(l.axis),
		Velocity:  sample.velocity(l.axis),
	}
}
