package pointer

// DefaultSwipeDuration is the move duration used by a swipe, in milliseconds
const DefaultSwipeDuration = 1000

// SwipeActions builds the script of a single finger swipe from (x1,y1) to
// (x2,y2)
func SwipeActions(x1, y1, x2, y2, duration int) []Action {
	if duration <= 0 {
		duration = DefaultSwipeDuration
	}

	return []Action{
		{Type: ActionPointerMove, Duration: 0, X: x1, Y: y1},
		{Type: ActionPointerDown, Button: 0},
		{Type: ActionPointerMove, Duration: duration, X: x2, Y: y2},
		{Type: ActionPointerUp, Button: 0},
	}
}

// NewTouchRequest wraps a script in a request for one touch pointer
func NewTouchRequest(actions []Action) ActionsRequest {
	return ActionsRequest{
		Actions: []Pointer{
			{
				Type: "pointer",
				ID:   "finger1",
				Parameters: Parameters{
					PointerType: "touch",
				},
				Actions: actions,
			},
		},
	}
}
