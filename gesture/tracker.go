package gesture

import "time"

// Tracker derives motion samples from raw pointer positions. Velocity is in
// units per millisecond, which is the scale DefaultInitialVelocityThreshold
// is expressed in.
type Tracker struct {
	// smoothing in [0, 1); 0 reports the raw velocity of each step
	smoothing float64

	started bool
	originX float64
	originY float64
	x       float64
	y       float64

	// position and time the current velocity was measured from
	lastX    float64
	lastY    float64
	lastTime time.Time
	vx       float64
	vy       float64
}

// NewTracker creates a tracker. Out of range smoothing factors are clamped.
func NewTracker(smoothing float64) *Tracker {
	if smoothing < 0 {
		smoothing = 0
	}
	if smoothing >= 1 {
		smoothing = 0.99
	}
	return &Tracker{smoothing: smoothing}
}

// Start records the point where the pointer went down
func (t *Tracker) Start(x, y float64, at time.Time) {
	t.started = true
	t.originX, t.originY = x, y
	t.x, t.y = x, y
	t.lastX, t.lastY = x, y
	t.lastTime = at
	t.vx, t.vy = 0, 0
}

// Started reports whether Start has been called since the last Reset
func (t *Tracker) Started() bool {
	return t.started
}

// Move records a pointer move and returns the resulting sample
func (t *Tracker) Move(x, y float64, at time.Time) MotionSample {
	if !t.started {
		t.Start(x, y, at)
		return MotionSample{}
	}

	elapsed := float64(at.Sub(t.lastTime)) / float64(time.Millisecond)
	if elapsed > 0 {
		stepVx := (x - t.lastX) / elapsed
		stepVy := (y - t.lastY) / elapsed
		f := t.smoothing
		t.vx = stepVx*(1-f) + t.vx*f
		t.vy = stepVy*(1-f) + t.vy*f
		t.lastX, t.lastY = x, y
		t.lastTime = at
	}
	t.x, t.y = x, y

	return t.Sample()
}

// Sample returns the current sample without recording a move
func (t *Tracker) Sample() MotionSample {
	return MotionSample{
		Dx: t.x - t.originX,
		Dy: t.y - t.originY,
		Vx: t.vx,
		Vy: t.vy,
	}
}

// Reset discards the current interaction
func (t *Tracker) Reset() {
	*t = Tracker{smoothing: t.smoothing}
}
