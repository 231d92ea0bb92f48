package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mobile-next/swipecli/gesture"
	"howett.net/plist"
)

// LoadSamples decodes a recorded sample stream. JSON arrays of
// {dx, dy, vx, vy} objects and property lists holding an array of
// dictionaries with the same keys are accepted.
func LoadSamples(data []byte) ([]gesture.MotionSample, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("samples input is empty")
	}

	var samples []gesture.MotionSample
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &samples); err != nil {
			return nil, fmt.Errorf("failed to parse samples json: %w", err)
		}
		return samples, nil
	}

	if _, err := plist.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse samples plist: %w", err)
	}
	return samples, nil
}
