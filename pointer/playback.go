package pointer

import (
	"encoding/json"
	"fmt"
)

// DefaultStep is the sampling interval of playback, in milliseconds
const DefaultStep = 16

// ParseActions decodes a JSON action script and validates it
func ParseActions(data []byte) ([]Action, error) {
	var actions []Action
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, fmt.Errorf("failed to parse gesture actions: %w", err)
	}

	if err := Validate(actions); err != nil {
		return nil, err
	}

	return actions, nil
}

// Validate checks that every action has a known type and a sane duration
func Validate(actions []Action) error {
	if len(actions) == 0 {
		return fmt.Errorf("actions array is required and cannot be empty")
	}

	for i, a := range actions {
		switch a.Type {
		case ActionPointerMove, ActionPointerDown, ActionPointerUp, ActionPause:
		default:
			return fmt.Errorf("unknown action type at index %d: '%s'", i, a.Type)
		}

		if a.Duration < 0 {
			return fmt.Errorf("negative duration at index %d: %d", i, a.Duration)
		}
	}

	return nil
}

// Playback expands a script into timed pointer events. Moves with a
// duration are interpolated in steps of step milliseconds while the pointer
// is down; moves while the pointer is up only reposition it.
func Playback(actions []Action, step int) ([]Event, error) {
	if err := Validate(actions); err != nil {
		return nil, err
	}

	if step <= 0 {
		step = DefaultStep
	}

	var events []Event
	var x, y float64
	now := 0
	down := false

	for _, a := range actions {
		switch a.Type {
		case ActionPause:
			now += a.Duration

		case ActionPointerDown:
			down = true
			events = append(events, Event{Kind: EventDown, X: x, Y: y, At: now})

		case ActionPointerUp:
			if down {
				events = append(events, Event{Kind: EventUp, X: x, Y: y, At: now})
			}
			down = false

		case ActionPointerMove:
			tx, ty := float64(a.X), float64(a.Y)
			if !down {
				x, y = tx, ty
				now += a.Duration
				continue
			}

			if a.Duration == 0 {
				x, y = tx, ty
				events = append(events, Event{Kind: EventMove, X: x, Y: y, At: now})
				continue
			}

			fromX, fromY, start := x, y, now
			for elapsed := step; ; elapsed += step {
				if elapsed > a.Duration {
					elapsed = a.Duration
				}
				f := float64(elapsed) / float64(a.Duration)
				x = fromX + (tx-fromX)*f
				y = fromY + (ty-fromY)*f
				now = start + elapsed
				events = append(events, Event{Kind: EventMove, X: x, Y: y, At: now})
				if elapsed == a.Duration {
					break
				}
			}
		}
	}

	return events, nil
}
