package layout

import (
	"math"

	"github.com/go-drift/pure/pkg/geometry"
)

// Axis is the main axis of a flex layout.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

func (a Axis) main(s geometry.Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

func (a Axis) cross(s geometry.Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

func (a Axis) pack(main, cross float64) (float64, float64) {
	if a == Horizontal {
		return main, cross
	}
	return cross, main
}

// Item is a child taking part in a flex layout.
type Item interface {
	// Sizing returns the lengths the child requests.
	Sizing() Sizing
	// Layout computes the child node under limits.
	Layout(limits Limits) Node
}

// Flex configures a flex layout pass.
type Flex struct {
	Axis    Axis
	Width   Length
	Height  Length
	Padding geometry.Padding
	Spacing float64
	// Align positions children on the cross axis.
	Align Alignment
}

// Distribute splits space among the given weights proportionally. The last
// weighted entry absorbs the rounding remainder so the shares sum to space
// exactly. Entries with zero weight get zero. Unbounded space yields
// unbounded shares.
func Distribute(space float64, weights []uint16) []float64 {
	shares := make([]float64, len(weights))
	sum := 0
	last := -1
	for i, w := range weights {
		sum += int(w)
		if w > 0 {
			last = i
		}
	}
	if sum == 0 {
		return shares
	}
	if math.IsInf(space, 1) {
		for i, w := range weights {
			if w > 0 {
				shares[i] = space
			}
		}
		return shares
	}
	space = math.Max(space, 0)
	used := 0.0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		if i == last {
			shares[i] = space - used
			break
		}
		shares[i] = space * float64(w) / float64(sum)
		used += shares[i]
	}
	return shares
}

// Resolve lays out items along the axis. Children that do not fill the main
// axis are measured first; the remaining space is then split among fill
// children by weight, and each is laid out tightly in its share.
func (f Flex) Resolve(limits Limits, items []Item) Node {
	limits = limits.Width(f.Width).Height(f.Height).ShrinkPadding(f.Padding)
	totalSpacing := f.Spacing * float64(max(len(items)-1, 0))
	maxCross := f.Axis.cross(limits.Max())

	crossLength := f.Height
	if f.Axis == Vertical {
		crossLength = f.Width
	}
	cross := maxCross
	if crossLength.IsShrink() {
		cross = 0
	}

	available := f.Axis.main(limits.Max()) - totalSpacing
	nodes := make([]Node, len(items))
	weights := make([]uint16, len(items))
	crossFill := make([]bool, len(items))

	for i, item := range items {
		s := item.Sizing()
		mainFactor, crossFactor := f.factors(s)
		crossFill[i] = crossFactor != 0
		if mainFactor != 0 {
			weights[i] = mainFactor
			continue
		}
		cmax := maxCross
		if crossFill[i] {
			cmax = cross
		}
		w, h := f.Axis.pack(math.Max(available, 0), cmax)
		node := item.Layout(NewLimits(geometry.Size{}, geometry.Size{Width: w, Height: h}))
		available -= f.Axis.main(node.Size())
		cross = math.Max(cross, f.Axis.cross(node.Size()))
		nodes[i] = node
	}

	mainLength := f.Width
	if f.Axis == Vertical {
		mainLength = f.Height
	}
	remaining := math.Max(available, 0)
	if mainLength.IsShrink() {
		remaining = 0
	}

	shares := Distribute(remaining, weights)
	for i, item := range items {
		if weights[i] == 0 {
			continue
		}
		maxMain := shares[i]
		minMain := maxMain
		if math.IsInf(maxMain, 1) {
			minMain = 0
		}
		cmax := maxCross
		if crossFill[i] {
			cmax = cross
		}
		minW, minH := f.Axis.pack(minMain, 0)
		maxW, maxH := f.Axis.pack(maxMain, cmax)
		node := item.Layout(NewLimits(
			geometry.Size{Width: minW, Height: minH},
			geometry.Size{Width: maxW, Height: maxH},
		))
		cross = math.Max(cross, f.Axis.cross(node.Size()))
		nodes[i] = node
	}

	padMain, padCross := f.Padding.Left, f.Padding.Top
	if f.Axis == Vertical {
		padMain, padCross = f.Padding.Top, f.Padding.Left
	}
	main := padMain
	for i := range nodes {
		if i > 0 {
			main += f.Spacing
		}
		x, y := f.Axis.pack(main, padCross)
		node := nodes[i].MoveTo(geometry.Point{X: x, Y: y})
		if f.Axis == Horizontal {
			node = node.Align(Start, f.Align, geometry.Size{Height: cross})
		} else {
			node = node.Align(f.Align, Start, geometry.Size{Width: cross})
		}
		nodes[i] = node
		main += f.Axis.main(node.Size())
	}

	iw, ih := f.Axis.pack(main-padMain, cross)
	size := limits.Resolve(f.Width, f.Height, geometry.Size{Width: iw, Height: ih})
	return WithChildren(size.Expand(f.Padding), nodes)
}

func (f Flex) factors(s Sizing) (mainFactor, crossFactor uint16) {
	if f.Axis == Horizontal {
		return s.Width.FillFactor(), s.Height.FillFactor()
	}
	return s.Height.FillFactor(), s.Width.FillFactor()
}
