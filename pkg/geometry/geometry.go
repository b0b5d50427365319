// Package geometry provides the two-dimensional value types shared by the
// layout, event, and drawing layers.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point is a position in logical pixels.
type Point struct {
	X float64
	Y float64
}

// Origin is the zero point.
var Origin = Point{}

// Add returns p moved by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Vector is a displacement in logical pixels.
type Vector struct {
	X float64
	Y float64
}

// ZeroVector is the zero displacement.
var ZeroVector = Vector{}

// Add returns the sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns the opposite vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Infinite is a size unbounded on both axes.
var Infinite = Size{Width: math.Inf(1), Height: math.Inf(1)}

// Min returns the component-wise minimum.
func (s Size) Min(o Size) Size {
	return Size{Width: math.Min(s.Width, o.Width), Height: math.Min(s.Height, o.Height)}
}

// Max returns the component-wise maximum.
func (s Size) Max(o Size) Size {
	return Size{Width: math.Max(s.Width, o.Width), Height: math.Max(s.Height, o.Height)}
}

// Expand grows the size by the given padding.
func (s Size) Expand(p Padding) Size {
	return Size{Width: s.Width + p.Horizontal(), Height: s.Height + p.Vertical()}
}

// Equal reports whether two sizes match within epsilon.
func (s Size) Equal(o Size) bool {
	return floatEqual(s.Width, o.Width) && floatEqual(s.Height, o.Height)
}

// IsZero reports whether either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rectangle is an axis-aligned rectangle defined by its top-left corner and size.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectangleAt builds a rectangle from a position and a size.
func RectangleAt(p Point, s Size) Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// RectangleWithSize builds a rectangle at the origin.
func RectangleWithSize(s Size) Rectangle {
	return Rectangle{Width: s.Width, Height: s.Height}
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Contains reports whether p lies inside the rectangle. The right and bottom
// edges are exclusive.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns the rectangle moved by v.
func (r Rectangle) Translate(v Vector) Rectangle {
	return Rectangle{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// Shrink returns the rectangle inset by the given padding.
func (r Rectangle) Shrink(p Padding) Rectangle {
	return Rectangle{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  math.Max(0, r.Width-p.Horizontal()),
		Height: math.Max(0, r.Height-p.Vertical()),
	}
}

// Intersection returns the overlap of two rectangles. The boolean is false
// when they do not overlap.
func (r Rectangle) Intersection(o Rectangle) (Rectangle, bool) {
	left := math.Max(r.X, o.X)
	top := math.Max(r.Y, o.Y)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	if left >= right || top >= bottom {
		return Rectangle{}, false
	}
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	left := math.Min(r.X, o.X)
	top := math.Min(r.Y, o.Y)
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Padding is the space around the edges of a box.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// PaddingAll returns uniform padding.
func PaddingAll(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// PaddingSymmetric returns padding with the given vertical and horizontal values.
func PaddingSymmetric(vertical, horizontal float64) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the left plus right padding.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the top plus bottom padding.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Fit clamps the padding so it never exceeds the available space on either
// axis, keeping the ratio between opposite sides.
func (p Padding) Fit(inner, outer Size) Padding {
	available := Size{
		Width:  math.Max(0, outer.Width-inner.Width),
		Height: math.Max(0, outer.Height-inner.Height),
	}
	fit := p
	if h := p.Horizontal(); h > available.Width && h > 0 {
		scale := available.Width / h
		fit.Left *= scale
		fit.Right *= scale
	}
	if v := p.Vertical(); v > available.Height && v > 0 {
		scale := available.Height / v
		fit.Top *= scale
		fit.Bottom *= scale
	}
	return fit
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= epsilon
}
