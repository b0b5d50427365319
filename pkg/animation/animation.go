package animation

import "time"

// Animation interpolates between two values over a duration. It is a plain
// value meant to live inside a widget's state cell; nothing ticks it, the
// widget samples it while drawing and requests redraws until it settles.
type Animation struct {
	start    time.Time
	duration time.Duration
	from     float64
	to       float64
	curve    Curve
}

// Settled returns an animation resting at v.
func Settled(v float64) Animation {
	return Animation{from: v, to: v}
}

// Start returns an animation from the current value at now towards to.
func (a Animation) Start(now time.Time, to float64, duration time.Duration, curve Curve) Animation {
	if curve == nil {
		curve = Linear
	}
	return Animation{
		start:    now,
		duration: duration,
		from:     a.Value(now),
		to:       to,
		curve:    curve,
	}
}

// Value samples the animation at now.
func (a Animation) Value(now time.Time) float64 {
	t := a.progress(now)
	if t >= 1 {
		return a.to
	}
	curve := a.curve
	if curve == nil {
		curve = Linear
	}
	return a.from + (a.to-a.from)*curve(t)
}

// IsAnimating reports whether the animation has not reached its target at now.
func (a Animation) IsAnimating(now time.Time) bool {
	return a.progress(now) < 1
}

// Target returns the value the animation settles at.
func (a Animation) Target() float64 {
	return a.to
}

func (a Animation) progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return 0
	}
	return clampUnit(float64(elapsed) / float64(a.duration))
}
