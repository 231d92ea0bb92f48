package gesture

import "math"

// IsEligible reports whether a motion is fast enough along its primary axis
// and straight enough along the orthogonal one. NaN inputs never qualify.
func IsEligible(primaryVelocity, orthogonalDisplacement, velocityThreshold, displacementThreshold float64) bool {
	return math.Abs(primaryVelocity) >= velocityThreshold &&
		math.Abs(orthogonalDisplacement) <= displacementThreshold
}

func horizontalEligible(s MotionSample, c Config) bool {
	return c.checkHorizontal() && IsEligible(s.Vx, s.Dy, c.InitialVelocityThreshold, c.VerticalThreshold)
}

func verticalEligible(s MotionSample, c Config) bool {
	return c.checkVertical() && IsEligible(s.Vy, s.Dx, c.InitialVelocityThreshold, c.HorizontalThreshold)
}

// Resolve decides which direction, if any, the sample locks in. The
// horizontal axis is tested first; when it qualifies the vertical axis is not
// considered, even if the horizontal sign turns out to be disabled.
func Resolve(s MotionSample, c Config) (Direction, Axis) {
	if horizontalEligible(s, c) {
		switch {
		case s.Dx < 0 && c.Allows(SwipeLeft):
			return SwipeLeft, AxisHorizontal
		case s.Dx > 0 && c.Allows(SwipeRight):
			return SwipeRight, AxisHorizontal
		}
		return NoDirection, AxisNone
	}

	if verticalEligible(s, c) {
		switch {
		case s.Dy < 0 && c.Allows(SwipeUp):
			return SwipeUp, AxisVertical
		case s.Dy > 0 && c.Allows(SwipeDown):
			return SwipeDown, AxisVertical
		}
	}

	return NoDirection, AxisNone
}

// ClassifyEligibility is the stateless probe used before capture is granted.
// It applies the same rules as lock-in.
func ClassifyEligibility(s MotionSample, c Config) bool {
	d, _ := Resolve(s, c)
	return d != NoDirection
}
