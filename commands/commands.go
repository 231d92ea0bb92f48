package commands

import (
	"encoding/json"
	"fmt"

	"github.com/mobile-next/swipecli/config"
	"github.com/mobile-next/swipecli/gesture"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// profiles holds the gesture profiles commands resolve configs from.
// It is replaced once at startup when a profiles file is given.
var profiles = config.BuiltinProfiles()

// SetProfiles replaces the available gesture profiles.
// This should be called once at application startup (cli or server).
func SetProfiles(p config.Profiles) {
	profiles = p
}

// GetProfiles returns the available gesture profiles
func GetProfiles() config.Profiles {
	return profiles
}

// ResolveConfig picks a profile and overlays the given JSON object on it.
// Keys absent from overrides keep the profile's values.
func ResolveConfig(profile string, overrides json.RawMessage) (gesture.Config, error) {
	c, err := profiles.Get(profile)
	if err != nil {
		return gesture.Config{}, err
	}

	if len(overrides) == 0 || string(overrides) == "null" {
		return c, nil
	}

	if err := json.Unmarshal(overrides, &c); err != nil {
		return gesture.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if c.InitialVelocityThreshold < 0 || c.VerticalThreshold < 0 || c.HorizontalThreshold < 0 {
		return gesture.Config{}, fmt.Errorf("thresholds must be non-negative")
	}

	return c, nil
}

// ProfilesCommand lists the available gesture profiles
func ProfilesCommand() *CommandResponse {
	list := make([]map[string]interface{}, 0, len(profiles))
	for _, name := range profiles.Names() {
		c := profiles[name]
		list = append(list, map[string]interface{}{
			"name":       name,
			"directions": c.Enabled(),
			"config":     c,
		})
	}

	return NewSuccessResponse(map[string]interface{}{
		"profiles": list,
	})
}
