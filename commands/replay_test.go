package commands

import (
	"testing"

	"github.com/mobile-next/swipecli/gesture"
	"github.com/mobile-next/swipecli/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventTypes(events []EventRecord) []string {
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestReplayCommand(t *testing.T) {
	c := gesture.DefaultConfig()
	c.Horizontal = true

	resp := ReplayCommand(ReplayRequest{
		Samples: []gesture.MotionSample{
			{Dx: 5, Dy: 0, Vx: 0.2},
			{Dx: 50, Dy: 2, Vx: 0.9},
			{Dx: 70, Dy: 3, Vx: 0.8},
		},
		Config:    c,
		Terminate: true,
	})
	require.Equal(t, "ok", resp.Status, resp.Error)

	data := resp.Data.(ReplayResponse)
	assert.Equal(t, []string{EventBegin, EventMove, EventEnd}, eventTypes(data.Events))
	assert.Equal(t, 50.0, *data.Events[0].Distance)
	assert.Equal(t, 70.0, *data.Events[1].Distance)
	assert.Nil(t, data.Events[2].Distance)
	assert.Equal(t, gesture.PhaseIdle, data.Phase)
	require.NotNil(t, data.State)
	assert.Equal(t, gesture.SwipeRight, data.State.Direction)
}

func TestReplayCommand_NoSamples(t *testing.T) {
	resp := ReplayCommand(ReplayRequest{Config: gesture.DefaultConfig()})
	assert.Equal(t, "error", resp.Status)
}

func TestReplayCommand_WithoutTerminate(t *testing.T) {
	c := gesture.DefaultConfig()
	c.Up = true
	c.ReportGestureState = false

	resp := ReplayCommand(ReplayRequest{
		Samples: []gesture.MotionSample{{Dx: 1, Dy: -30, Vy: -1}},
		Config:  c,
	})
	require.Equal(t, "ok", resp.Status)

	data := resp.Data.(ReplayResponse)
	assert.Equal(t, []string{EventBegin}, eventTypes(data.Events))
	assert.Equal(t, gesture.SwipeUp, data.Events[0].Direction)
	assert.Equal(t, gesture.PhaseLocked, data.Phase)
	assert.Nil(t, data.State)
}

func TestSwipeCommand(t *testing.T) {
	c := gesture.DefaultConfig()
	c.Horizontal = true
	c.Vertical = true

	tests := []struct {
		name      string
		req       SwipeRequest
		direction gesture.Direction
	}{
		{"right", SwipeRequest{X1: 100, Y1: 500, X2: 400, Y2: 500, Duration: 300}, gesture.SwipeRight},
		{"left", SwipeRequest{X1: 400, Y1: 500, X2: 100, Y2: 500, Duration: 300}, gesture.SwipeLeft},
		{"up", SwipeRequest{X1: 200, Y1: 800, X2: 200, Y2: 200, Duration: 300}, gesture.SwipeUp},
		{"down", SwipeRequest{X1: 200, Y1: 200, X2: 200, Y2: 800, Duration: 300}, gesture.SwipeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Config = c
			resp := SwipeCommand(req)
			require.Equal(t, "ok", resp.Status, resp.Error)

			data := resp.Data.(ReplayResponse)
			require.NotEmpty(t, data.Events)
			assert.Equal(t, EventBegin, data.Events[0].Type)
			assert.Equal(t, EventEnd, data.Events[len(data.Events)-1].Type)
			for _, e := range data.Events {
				assert.Equal(t, tt.direction, e.Direction)
			}
			require.NotNil(t, data.Script)
			assert.Len(t, data.Script.Actions[0].Actions, 4)
		})
	}
}

func TestSwipeCommand_TooSlow(t *testing.T) {
	c := gesture.DefaultConfig()
	c.Horizontal = true

	// 100 units over 1000ms is 0.1 units/ms
	resp := SwipeCommand(SwipeRequest{X1: 0, Y1: 0, X2: 100, Y2: 0, Duration: 1000, Config: c})
	require.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.Data.(ReplayResponse).Events)
}

func TestSwipeCommand_NegativeCoordinates(t *testing.T) {
	resp := SwipeCommand(SwipeRequest{X1: -1, Config: gesture.DefaultConfig()})
	assert.Equal(t, "error", resp.Status)
}

func TestGestureCommand_TwoInteractions(t *testing.T) {
	c := gesture.DefaultConfig()
	c.Horizontal = true

	actions := append(
		pointer.SwipeActions(0, 100, 300, 100, 200),
		pointer.SwipeActions(300, 100, 0, 100, 200)...,
	)

	resp := GestureCommand(GestureRequest{Actions: actions, Config: c})
	require.Equal(t, "ok", resp.Status, resp.Error)

	data := resp.Data.(ReplayResponse)
	var ends []gesture.Direction
	for _, e := range data.Events {
		if e.Type == EventEnd {
			ends = append(ends, e.Direction)
		}
	}
	assert.Equal(t, []gesture.Direction{gesture.SwipeRight, gesture.SwipeLeft}, ends)
}

func TestGestureCommand_InvalidScript(t *testing.T) {
	resp := GestureCommand(GestureRequest{Config: gesture.DefaultConfig()})
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "invalid gesture")
}
