package pointer

const (
	ActionPointerMove = "pointerMove"
	ActionPointerDown = "pointerDown"
	ActionPointerUp   = "pointerUp"
	ActionPause       = "pause"
)

// Action is one step of a W3C pointer action script
type Action struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Button   int    `json:"button"`
}

type Parameters struct {
	PointerType string `json:"pointerType"`
}

// Pointer is a single input source with its action script
type Pointer struct {
	Type       string     `json:"type"`
	ID         string     `json:"id"`
	Parameters Parameters `json:"parameters"`
	Actions    []Action   `json:"actions"`
}

type ActionsRequest struct {
	Actions []Pointer `json:"actions"`
}

// EventKind is the kind of a played back pointer event
type EventKind string

const (
	EventDown EventKind = "down"
	EventMove EventKind = "move"
	EventUp   EventKind = "up"
)

// Event is a pointer position at a point in time, in milliseconds from the
// start of the script
type Event struct {
	Kind EventKind `json:"kind"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	At   int       `json:"at"`
}
