package layout

import "github.com/go-drift/pure/pkg/geometry"

// Alignment positions content along one axis.
type Alignment int

const (
	Start Alignment = iota
	Center
	End
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Node is the computed size and relative position of a widget, with the nodes
// of its children. Nodes are values: produced fresh every cycle and replaced,
// never mutated in place by their consumers.
type Node struct {
	bounds   geometry.Rectangle
	children []Node
}

// NewNode returns a childless node of the given size at the origin.
func NewNode(size geometry.Size) Node {
	return Node{bounds: geometry.RectangleWithSize(size)}
}

// WithChildren returns a node of the given size owning children.
func WithChildren(size geometry.Size, children []Node) Node {
	return Node{bounds: geometry.RectangleWithSize(size), children: children}
}

// Container returns a node sized to child expanded by padding, with the child
// moved inside the padding.
func Container(child Node, padding geometry.Padding) Node {
	size := child.Size().Expand(padding)
	return WithChildren(size, []Node{child.MoveTo(geometry.Point{X: padding.Left, Y: padding.Top})})
}

// Size returns the size of the node.
func (n Node) Size() geometry.Size {
	return n.bounds.Size()
}

// Bounds returns the node bounds relative to its parent.
func (n Node) Bounds() geometry.Rectangle {
	return n.bounds
}

// Children returns the child nodes. The slice must not be modified.
func (n Node) Children() []Node {
	return n.children
}

// MoveTo returns a copy of the node positioned at p.
func (n Node) MoveTo(p geometry.Point) Node {
	n.bounds.X = p.X
	n.bounds.Y = p.Y
	return n
}

// Translate returns a copy of the node moved by v.
func (n Node) Translate(v geometry.Vector) Node {
	n.bounds = n.bounds.Translate(v)
	return n
}

// Align returns a copy of the node aligned inside space, starting from its
// current position.
func (n Node) Align(horizontal, vertical Alignment, space geometry.Size) Node {
	switch horizontal {
	case Center:
		n.bounds.X += (space.Width - n.bounds.Width) / 2
	case End:
		n.bounds.X += space.Width - n.bounds.Width
	}
	switch vertical {
	case Center:
		n.bounds.Y += (space.Height - n.bounds.Height) / 2
	case End:
		n.bounds.Y += space.Height - n.bounds.Height
	}
	return n
}

// Layout is a read-only view of a Node positioned in absolute coordinates.
type Layout struct {
	offset geometry.Vector
	node   *Node
}

// New returns the layout of a root node.
func New(node *Node) Layout {
	return Layout{node: node}
}

// WithOffset returns the layout of node whose parent sits at offset.
func WithOffset(offset geometry.Vector, node *Node) Layout {
	return Layout{offset: offset, node: node}
}

// Position returns the absolute position of the node.
func (l Layout) Position() geometry.Point {
	return geometry.Point{X: l.node.bounds.X + l.offset.X, Y: l.node.bounds.Y + l.offset.Y}
}

// Bounds returns the absolute bounds of the node.
func (l Layout) Bounds() geometry.Rectangle {
	return l.node.bounds.Translate(l.offset)
}

// Node returns the underlying node.
func (l Layout) Node() *Node {
	return l.node
}

// Len returns the number of children.
func (l Layout) Len() int {
	return len(l.node.children)
}

// Child returns the layout of the i-th child.
func (l Layout) Child(i int) Layout {
	p := l.Position()
	return Layout{offset: geometry.Vector{X: p.X, Y: p.Y}, node: &l.node.children[i]}
}

// Children returns the layouts of all children.
func (l Layout) Children() []Layout {
	out := make([]Layout, len(l.node.children))
	for i := range l.node.children {
		out[i] = l.Child(i)
	}
	return out
}
