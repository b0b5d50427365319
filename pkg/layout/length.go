package layout

import "strconv"

// lengthKind identifies the sizing policy of a Length.
type lengthKind uint8

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthFixed
)

// Length is the sizing policy of a widget along one axis: shrink to content,
// fill a weighted share of the remaining space, or a fixed size.
type Length struct {
	kind   lengthKind
	weight uint16
	amount float64
}

// Shrink sizes to the content's natural size, bounded by the available space.
var Shrink = Length{kind: lengthShrink}

// Fill takes a share of weight 1 of the remaining space.
var Fill = Length{kind: lengthFill, weight: 1}

// FillPortion takes a share of the given weight of the remaining space.
// A zero weight behaves like Shrink.
func FillPortion(weight uint16) Length {
	if weight == 0 {
		return Shrink
	}
	return Length{kind: lengthFill, weight: weight}
}

// Fixed is an exact size in logical pixels.
func Fixed(amount float64) Length {
	if amount < 0 {
		amount = 0
	}
	return Length{kind: lengthFixed, amount: amount}
}

// FillFactor returns the fill weight, or zero for non-fill lengths.
func (l Length) FillFactor() uint16 {
	if l.kind == lengthFill {
		return l.weight
	}
	return 0
}

// IsFill reports whether the length takes a share of remaining space.
func (l Length) IsFill() bool {
	return l.kind == lengthFill
}

// IsShrink reports whether the length sizes to content.
func (l Length) IsShrink() bool {
	return l.kind == lengthShrink
}

// Amount returns the fixed size, if the length is fixed.
func (l Length) Amount() (float64, bool) {
	return l.amount, l.kind == lengthFixed
}

// Fluid collapses the length to Fill if it fills or Shrink otherwise.
func (l Length) Fluid() Length {
	if l.kind == lengthFill {
		return Fill
	}
	return Shrink
}

// Enclose returns the length a container holding a child of length o should
// use: a fill child makes a shrink container fill.
func (l Length) Enclose(o Length) Length {
	if l.kind == lengthShrink && o.kind == lengthFill {
		return o.Fluid()
	}
	return l
}

// String returns a human-readable representation of the length.
func (l Length) String() string {
	switch l.kind {
	case lengthFill:
		if l.weight == 1 {
			return "fill"
		}
		return "fill(" + strconv.Itoa(int(l.weight)) + ")"
	case lengthFixed:
		return "fixed(" + strconv.FormatFloat(l.amount, 'g', -1, 64) + ")"
	default:
		return "shrink"
	}
}

// Sizing is the pair of lengths a widget reports to its parent.
type Sizing struct {
	Width  Length
	Height Length
}

// ShrinkBoth is the default sizing of content-sized widgets.
var ShrinkBoth = Sizing{Width: Shrink, Height: Shrink}

// FillBoth fills the remaining space on both axes.
var FillBoth = Sizing{Width: Fill, Height: Fill}
