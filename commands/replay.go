package commands

import (
	"fmt"
	"time"

	"github.com/mobile-next/swipecli/gesture"
	"github.com/mobile-next/swipecli/pointer"
	"github.com/mobile-next/swipecli/utils"
)

// ReplayRequest represents the parameters for a replay command
type ReplayRequest struct {
	Samples   []gesture.MotionSample
	Config    gesture.Config
	Terminate bool
}

// ReplayResponse is the outcome of driving a session through samples
type ReplayResponse struct {
	Events []EventRecord           `json:"events"`
	Phase  gesture.Phase           `json:"phase"`
	State  *gesture.GestureState   `json:"gestureState,omitempty"`
	Script *pointer.ActionsRequest `json:"script,omitempty"`
}

// ReplayCommand feeds recorded samples through a fresh session
func ReplayCommand(req ReplayRequest) *CommandResponse {
	if len(req.Samples) == 0 {
		return NewErrorResponse(fmt.Errorf("samples array is required and cannot be empty"))
	}

	log := &eventLog{}
	session := gesture.NewSession(req.Config, log.handlers())

	for _, sample := range req.Samples {
		session.OnSample(sample)
	}

	if req.Terminate {
		session.OnTerminate()
	}

	utils.Verbose("replayed %d samples, %d events", len(req.Samples), len(log.records))
	return NewSuccessResponse(replayResponse(session, log))
}

func replayResponse(session *gesture.Session, log *eventLog) ReplayResponse {
	resp := ReplayResponse{
		Events: log.drain(),
		Phase:  session.Phase(),
	}
	if state, ok := session.GestureState(); ok {
		resp.State = &state
	}
	return resp
}

// SwipeRequest represents the parameters for a synthesized swipe
type SwipeRequest struct {
	X1       int
	Y1       int
	X2       int
	Y2       int
	Duration int
	Step     int
	Config   gesture.Config
}

// GestureRequest represents the parameters for an arbitrary pointer script
type GestureRequest struct {
	Actions []pointer.Action
	Step    int
	Config  gesture.Config
}

// SwipeCommand plays a straight swipe from (x1,y1) to (x2,y2) through a session
func SwipeCommand(req SwipeRequest) *CommandResponse {
	if req.X1 < 0 || req.Y1 < 0 || req.X2 < 0 || req.Y2 < 0 {
		return NewErrorResponse(fmt.Errorf("coordinates must be non-negative, got (%d,%d) to (%d,%d)", req.X1, req.Y1, req.X2, req.Y2))
	}

	actions := pointer.SwipeActions(req.X1, req.Y1, req.X2, req.Y2, req.Duration)
	return GestureCommand(GestureRequest{
		Actions: actions,
		Step:    req.Step,
		Config:  req.Config,
	})
}

// GestureCommand plays a pointer action script through a tracker and a session.
// Every pointer up terminates the interaction.
func GestureCommand(req GestureRequest) *CommandResponse {
	events, err := pointer.Playback(req.Actions, req.Step)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("invalid gesture: %w", err))
	}

	log := &eventLog{}
	session := gesture.NewSession(req.Config, log.handlers())
	tracker := gesture.NewTracker(0)
	base := time.Unix(0, 0)

	for _, e := range events {
		at := base.Add(time.Duration(e.At) * time.Millisecond)
		switch e.Kind {
		case pointer.EventDown:
			tracker.Start(e.X, e.Y, at)
			session.Arm()
		case pointer.EventMove:
			session.OnSample(tracker.Move(e.X, e.Y, at))
		case pointer.EventUp:
			session.OnTerminate()
			tracker.Reset()
		}
	}

	resp := replayResponse(session, log)
	script := pointer.NewTouchRequest(req.Actions)
	resp.Script = &script
	return NewSuccessResponse(resp)
}
