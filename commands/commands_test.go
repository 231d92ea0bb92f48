package commands

import (
	"encoding/json"
	"testing"

	"github.com/mobile-next/swipecli/config"
	"github.com/mobile-next/swipecli/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig(t *testing.T) {
	c, err := ResolveConfig("", nil)
	require.NoError(t, err)
	assert.True(t, c.Horizontal)
	assert.True(t, c.Vertical)

	c, err = ResolveConfig("horizontal", json.RawMessage(`{"continuous":false,"verticalThreshold":4}`))
	require.NoError(t, err)
	assert.True(t, c.Horizontal)
	assert.False(t, c.Vertical)
	assert.False(t, c.Continuous)
	assert.Equal(t, 4.0, c.VerticalThreshold)
	assert.Equal(t, gesture.DefaultInitialVelocityThreshold, c.InitialVelocityThreshold)

	_, err = ResolveConfig("nope", nil)
	assert.Error(t, err)

	_, err = ResolveConfig("", json.RawMessage(`{"continuous":"yes"}`))
	assert.Error(t, err)

	_, err = ResolveConfig("", json.RawMessage(`{"horizontalThreshold":-3}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestSetProfiles(t *testing.T) {
	original := GetProfiles()
	defer SetProfiles(original)

	p, err := config.LoadBytes([]byte("[tabs]\nleft = true\n"))
	require.NoError(t, err)
	SetProfiles(p)

	c, err := ResolveConfig("tabs", nil)
	require.NoError(t, err)
	assert.Equal(t, []gesture.Direction{gesture.SwipeLeft}, c.Enabled())
}

func TestProfilesCommand(t *testing.T) {
	resp := ProfilesCommand()
	require.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"horizontal"`)
	assert.Contains(t, string(data), `"SWIPE_LEFT"`)
}

func TestClassifyCommand(t *testing.T) {
	c := gesture.DefaultConfig()
	c.Horizontal = true

	resp := ClassifyCommand(ClassifyRequest{
		Sample: gesture.MotionSample{Dx: 50, Dy: 2, Vx: 0.9, Vy: 0.1},
		Config: c,
	})
	require.Equal(t, "ok", resp.Status)
	assert.Equal(t, ClassifyResponse{Eligible: true, Direction: gesture.SwipeRight, Axis: gesture.AxisHorizontal}, resp.Data)

	resp = ClassifyCommand(ClassifyRequest{
		Sample: gesture.MotionSample{Dx: 50, Dy: 20, Vx: 0.9, Vy: 0.1},
		Config: c,
	})
	assert.Equal(t, ClassifyResponse{}, resp.Data)
}
