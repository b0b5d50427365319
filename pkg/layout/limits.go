package layout

import (
	"math"

	"github.com/go-drift/pure/pkg/geometry"
)

// Limits bounds the size a widget may take. Limits are comparable, so they
// can key layout caches.
type Limits struct {
	min geometry.Size
	max geometry.Size
}

// NoLimits allows any size.
var NoLimits = Limits{max: geometry.Infinite}

// NewLimits builds limits from a minimum and maximum size. Negative and NaN
// components become zero and the minimum never exceeds the maximum, so
// degenerate input resolves to an empty node instead of failing.
func NewLimits(min, max geometry.Size) Limits {
	max = geometry.Size{Width: sanitize(max.Width), Height: sanitize(max.Height)}
	min = geometry.Size{Width: sanitize(min.Width), Height: sanitize(min.Height)}
	return Limits{min: min.Min(max), max: max}
}

// Tight returns limits that only allow the given size.
func Tight(size geometry.Size) Limits {
	return NewLimits(size, size)
}

// Min returns the minimum size.
func (l Limits) Min() geometry.Size {
	return l.min
}

// Max returns the maximum size.
func (l Limits) Max() geometry.Size {
	return l.max
}

// Width narrows the limits to a fixed width. Other lengths leave them unchanged.
func (l Limits) Width(width Length) Limits {
	if amount, ok := width.Amount(); ok {
		w := math.Max(math.Min(amount, l.max.Width), l.min.Width)
		l.min.Width = w
		l.max.Width = w
	}
	return l
}

// Height narrows the limits to a fixed height. Other lengths leave them unchanged.
func (l Limits) Height(height Length) Limits {
	if amount, ok := height.Amount(); ok {
		h := math.Max(math.Min(amount, l.max.Height), l.min.Height)
		l.min.Height = h
		l.max.Height = h
	}
	return l
}

// MaxWidth caps the maximum width.
func (l Limits) MaxWidth(w float64) Limits {
	l.max.Width = math.Max(math.Min(l.max.Width, sanitize(w)), l.min.Width)
	return l
}

// MaxHeight caps the maximum height.
func (l Limits) MaxHeight(h float64) Limits {
	l.max.Height = math.Max(math.Min(l.max.Height, sanitize(h)), l.min.Height)
	return l
}

// Shrink removes the given size from both bounds, clamping at zero.
func (l Limits) Shrink(s geometry.Size) Limits {
	return Limits{
		min: geometry.Size{
			Width:  math.Max(l.min.Width-s.Width, 0),
			Height: math.Max(l.min.Height-s.Height, 0),
		},
		max: geometry.Size{
			Width:  math.Max(l.max.Width-s.Width, 0),
			Height: math.Max(l.max.Height-s.Height, 0),
		},
	}
}

// ShrinkPadding removes the padding from both bounds.
func (l Limits) ShrinkPadding(p geometry.Padding) Limits {
	return l.Shrink(geometry.Size{Width: p.Horizontal(), Height: p.Vertical()})
}

// Loose drops the minimum size.
func (l Limits) Loose() Limits {
	return Limits{max: l.max}
}

// Resolve computes the final size for the given lengths and the content's
// natural size. Shrink takes the smaller of the available space and the
// natural size; fill takes all available space unless it is unbounded.
func (l Limits) Resolve(width, height Length, intrinsic geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  resolveAxis(width, l.min.Width, l.max.Width, intrinsic.Width),
		Height: resolveAxis(height, l.min.Height, l.max.Height, intrinsic.Height),
	}
}

func resolveAxis(length Length, min, max, intrinsic float64) float64 {
	clamp := func(v float64) float64 {
		return math.Max(math.Min(v, max), min)
	}
	if amount, ok := length.Amount(); ok {
		return clamp(amount)
	}
	if length.IsFill() && !math.IsInf(max, 1) {
		return max
	}
	return clamp(sanitize(intrinsic))
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
