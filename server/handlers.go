package server

import (
	"encoding/json"
	"fmt"

	"github.com/mobile-next/swipecli/commands"
	"github.com/mobile-next/swipecli/gesture"
	"github.com/mobile-next/swipecli/pointer"
)

// ConfigParams selects the gesture configuration of a request: a named
// profile with optional overrides on top
type ConfigParams struct {
	Profile string          `json:"profile,omitempty"`
	Config  json.RawMessage `json:"config,omitempty"`
}

type ClassifyParams struct {
	ConfigParams
	Sample *gesture.MotionSample `json:"sample"`
}

type ReplayParams struct {
	ConfigParams
	Samples   []gesture.MotionSample `json:"samples"`
	Terminate bool                   `json:"terminate"`
}

type SwipeParams struct {
	ConfigParams
	X1       *int `json:"x1"`
	Y1       *int `json:"y1"`
	X2       *int `json:"x2"`
	Y2       *int `json:"y2"`
	Duration int  `json:"duration,omitempty"`
	Step     int  `json:"step,omitempty"`
}

type GestureParams struct {
	ConfigParams
	Actions []pointer.Action `json:"actions"`
	Step    int              `json:"step,omitempty"`
}

type SessionParams struct {
	SessionID string                 `json:"sessionId"`
	Sample    *gesture.MotionSample  `json:"sample,omitempty"`
	Samples   []gesture.MotionSample `json:"samples,omitempty"`
}

func (p SessionParams) allSamples() []gesture.MotionSample {
	samples := p.Samples
	if p.Sample != nil {
		samples = append([]gesture.MotionSample{*p.Sample}, samples...)
	}
	return samples
}

func decodeParams(params json.RawMessage, v interface{}, fields string) error {
	if len(params) == 0 {
		return invalidParams("'params' is required with fields: %s", fields)
	}
	if err := json.Unmarshal(params, v); err != nil {
		return invalidParams("invalid parameters: %v. Expected fields: %s", err, fields)
	}
	return nil
}

func (p ConfigParams) resolve() (gesture.Config, error) {
	c, err := commands.ResolveConfig(p.Profile, p.Config)
	if err != nil {
		return gesture.Config{}, invalidParams("%v", err)
	}
	return c, nil
}

// unwrap turns a command response into a handler result
func unwrap(response *commands.CommandResponse) (interface{}, error) {
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleClassify(params json.RawMessage) (interface{}, error) {
	var p ClassifyParams
	if err := decodeParams(params, &p, "sample, profile, config"); err != nil {
		return nil, err
	}

	if p.Sample == nil {
		return nil, invalidParams("'sample' is required")
	}

	c, err := p.resolve()
	if err != nil {
		return nil, err
	}

	return unwrap(commands.ClassifyCommand(commands.ClassifyRequest{Sample: *p.Sample, Config: c}))
}

func handleReplay(params json.RawMessage) (interface{}, error) {
	var p ReplayParams
	if err := decodeParams(params, &p, "samples, terminate, profile, config"); err != nil {
		return nil, err
	}

	c, err := p.resolve()
	if err != nil {
		return nil, err
	}

	return unwrap(commands.ReplayCommand(commands.ReplayRequest{
		Samples:   p.Samples,
		Config:    c,
		Terminate: p.Terminate,
	}))
}

func handleSwipe(params json.RawMessage) (interface{}, error) {
	var p SwipeParams
	if err := decodeParams(params, &p, "x1, y1, x2, y2, duration, step, profile, config"); err != nil {
		return nil, err
	}

	required := []struct {
		name  string
		value *int
	}{
		{"x1", p.X1}, {"y1", p.Y1}, {"x2", p.X2}, {"y2", p.Y2},
	}
	for _, field := range required {
		if field.value == nil {
			return nil, invalidParams("'%s' is required", field.name)
		}
	}

	c, err := p.resolve()
	if err != nil {
		return nil, err
	}

	return unwrap(commands.SwipeCommand(commands.SwipeRequest{
		X1:       *p.X1,
		Y1:       *p.Y1,
		X2:       *p.X2,
		Y2:       *p.Y2,
		Duration: p.Duration,
		Step:     p.Step,
		Config:   c,
	}))
}

func handleGesture(params json.RawMessage) (interface{}, error) {
	var p GestureParams
	if err := decodeParams(params, &p, "actions, step, profile, config"); err != nil {
		return nil, err
	}

	if err := pointer.Validate(p.Actions); err != nil {
		return nil, invalidParams("%v", err)
	}

	c, err := p.resolve()
	if err != nil {
		return nil, err
	}

	return unwrap(commands.GestureCommand(commands.GestureRequest{
		Actions: p.Actions,
		Step:    p.Step,
		Config:  c,
	}))
}

func handleProfiles(params json.RawMessage) (interface{}, error) {
	return unwrap(commands.ProfilesCommand())
}

func handleSessionCreate(params json.RawMessage) (interface{}, error) {
	var p ConfigParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, invalidParams("invalid parameters: %v. Expected fields: profile, config", err)
		}
	}

	c, err := p.resolve()
	if err != nil {
		return nil, err
	}

	return unwrap(commands.SessionCreateCommand(c))
}

func decodeSession(params json.RawMessage, fields string) (SessionParams, error) {
	var p SessionParams
	if err := decodeParams(params, &p, fields); err != nil {
		return p, err
	}
	if p.SessionID == "" {
		return p, invalidParams("'sessionId' is required")
	}
	return p, nil
}

func handleSessionClaim(params json.RawMessage) (interface{}, error) {
	p, err := decodeSession(params, "sessionId, sample")
	if err != nil {
		return nil, err
	}

	if p.Sample == nil {
		return nil, invalidParams("'sample' is required")
	}

	return unwrap(commands.SessionClaimCommand(commands.SessionSampleRequest{
		SessionID: p.SessionID,
		Samples:   []gesture.MotionSample{*p.Sample},
	}))
}

func handleSessionSample(params json.RawMessage) (interface{}, error) {
	p, err := decodeSession(params, "sessionId, sample or samples")
	if err != nil {
		return nil, err
	}

	samples := p.allSamples()
	if len(samples) == 0 {
		return nil, invalidParams("'sample' or 'samples' is required")
	}

	return unwrap(commands.SessionSampleCommand(commands.SessionSampleRequest{
		SessionID: p.SessionID,
		Samples:   samples,
	}))
}

func handleSessionTerminate(params json.RawMessage) (interface{}, error) {
	p, err := decodeSession(params, "sessionId")
	if err != nil {
		return nil, err
	}
	return unwrap(commands.SessionTerminateCommand(commands.SessionRequest{SessionID: p.SessionID}))
}

func handleSessionState(params json.RawMessage) (interface{}, error) {
	p, err := decodeSession(params, "sessionId")
	if err != nil {
		return nil, err
	}
	return unwrap(commands.SessionStateCommand(commands.SessionRequest{SessionID: p.SessionID}))
}

func handleSessionDelete(params json.RawMessage) (interface{}, error) {
	p, err := decodeSession(params, "sessionId")
	if err != nil {
		return nil, err
	}
	return unwrap(commands.SessionDeleteCommand(commands.SessionRequest{SessionID: p.SessionID}))
}
