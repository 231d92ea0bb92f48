package gesture

// MotionSample is one snapshot of an in-progress drag. Dx and Dy are the
// cumulative displacement since the gesture started, Vx and Vy the signed
// instantaneous velocity on the same axes.
type MotionSample struct {
	Dx float64 `json:"dx" plist:"dx"`
	Dy float64 `json:"dy" plist:"dy"`
	Vx float64 `json:"vx" plist:"vx"`
	Vy float64 `json:"vy" plist:"vy"`
}

// distance reads the displacement along the axis
func (s MotionSample) distance(a Axis) float64 {
	switch a {
	case AxisHorizontal:
		return s.Dx
	case AxisVertical:
		return s.Dy
	}
	return 0
}

// velocity reads the velocity along the axis
func (s MotionSample) velocity(a Axis) float64 {
	switch a {
	case AxisHorizontal:
		return s.Vx
	case AxisVertical:
		return s.Vy
	}
	return 0
}

// GestureState is the snapshot a session exposes to the host after each event
type GestureState struct {
	Direction Direction `json:"direction"`
	Distance  float64   `json:"distance"`
	Velocity  float64   `json:"velocity"`
}

// SwipeEvent is delivered to OnSwipeBegin and OnSwipe
type SwipeEvent struct {
	Direction Direction `json:"direction"`
	Distance  float64   `json:"distance"`
	Velocity  float64   `json:"velocity"`
}

// SwipeEndEvent is delivered to OnSwipeEnd
type SwipeEndEvent struct {
	Direction Direction `json:"direction"`
}
