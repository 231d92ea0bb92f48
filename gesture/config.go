package gesture

const (
	DefaultInitialVelocityThreshold float64 = 0.7
	DefaultVerticalThreshold        float64 = 10
	DefaultHorizontalThreshold      float64 = 10
)

// Config selects which directions a session detects and how strict the
// detection is. All direction flags default to false.
type Config struct {
	Horizontal bool `json:"horizontal"`
	Vertical   bool `json:"vertical"`
	Left       bool `json:"left"`
	Right      bool `json:"right"`
	Up         bool `json:"up"`
	Down       bool `json:"down"`

	// Continuous allows progress events after the lock-in sample
	Continuous bool `json:"continuous"`

	// InitialVelocityThreshold is the minimum velocity magnitude on the
	// candidate axis
	InitialVelocityThreshold float64 `json:"initialVelocityThreshold"`

	// VerticalThreshold is the maximum vertical drift of a horizontal swipe
	VerticalThreshold float64 `json:"verticalThreshold"`

	// HorizontalThreshold is the maximum horizontal drift of a vertical swipe
	HorizontalThreshold float64 `json:"horizontalThreshold"`

	ReportGestureState bool `json:"reportGestureState"`
}

// DefaultConfig returns a config with the default thresholds and no
// direction enabled
func DefaultConfig() Config {
	return Config{
		Continuous:               true,
		InitialVelocityThreshold: DefaultInitialVelocityThreshold,
		VerticalThreshold:        DefaultVerticalThreshold,
		HorizontalThreshold:      DefaultHorizontalThreshold,
		ReportGestureState:       true,
	}
}

func (c Config) checkHorizontal() bool {
	return c.Horizontal || c.Left || c.Right
}

func (c Config) checkVertical() bool {
	return c.Vertical || c.Up || c.Down
}

// Allows reports whether the flags enable the direction
func (c Config) Allows(d Direction) bool {
	switch d {
	case SwipeLeft:
		return c.Horizontal || c.Left
	case SwipeRight:
		return c.Horizontal || c.Right
	case SwipeUp:
		return c.Vertical || c.Up
	case SwipeDown:
		return c.Vertical || c.Down
	}
	return false
}

// Enabled lists the directions this config can ever detect
func (c Config) Enabled() []Direction {
	var enabled []Direction
	for _, d := range Directions {
		if c.Allows(d) {
			enabled = append(enabled, d)
		}
	}
	return enabled
}
