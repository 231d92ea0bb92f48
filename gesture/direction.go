package gesture

import (
	"encoding/json"
	"fmt"
)

// Direction is one of the four swipe directions. The zero value means no
// direction has been detected.
type Direction string

const (
	NoDirection Direction = ""
	SwipeUp     Direction = "SWIPE_UP"
	SwipeDown   Direction = "SWIPE_DOWN"
	SwipeLeft   Direction = "SWIPE_LEFT"
	SwipeRight  Direction = "SWIPE_RIGHT"
)

// Directions lists every detectable direction
var Directions = []Direction{SwipeUp, SwipeDown, SwipeLeft, SwipeRight}

func (d Direction) String() string {
	if d == NoDirection {
		return "none"
	}
	return string(d)
}

// Axis returns the axis the direction runs along
func (d Direction) Axis() Axis {
	switch d {
	case SwipeLeft, SwipeRight:
		return AxisHorizontal
	case SwipeUp, SwipeDown:
		return AxisVertical
	}
	return AxisNone
}

// MarshalJSON encodes NoDirection as null
func (d Direction) MarshalJSON() ([]byte, error) {
	if d == NoDirection {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = NoDirection
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection accepts the exported names, empty string means no direction
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case NoDirection, SwipeUp, SwipeDown, SwipeLeft, SwipeRight:
		return Direction(s), nil
	}
	return NoDirection, fmt.Errorf("unknown swipe direction: %s", s)
}

// Axis identifies which pair of sample fields a locked swipe reads:
// dx/vx for horizontal, dy/vy for vertical.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	}
	return "none"
}

func (a Axis) MarshalJSON() ([]byte, error) {
	if a == AxisNone {
		return []byte("null"), nil
	}
	return json.Marshal(a.String())
}
