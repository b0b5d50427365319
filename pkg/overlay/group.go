// Package overlay composes the floating layers widgets return: groups of
// simultaneous overlays ordered by index, and the nested layering that lets
// an overlay open further overlays.
package overlay

import (
	"cmp"
	"slices"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Group shows several overlays at once. Children are ordered by Index: drawn
// from lowest to highest and offered events from highest to lowest.
type Group[M any] struct {
	children []core.Overlay[M]
}

// NewGroup returns a group of the non-nil overlays, sorted by index. Overlays
// with equal indices keep their order.
func NewGroup[M any](children ...core.Overlay[M]) *Group[M] {
	g := &Group[M]{}
	for _, c := range children {
		if c != nil {
			g.children = append(g.children, c)
		}
	}
	slices.SortStableFunc(g.children, func(a, b core.Overlay[M]) int {
		return cmp.Compare(a.Index(), b.Index())
	})
	return g
}

// Len returns the number of overlays in the group.
func (g *Group[M]) Len() int {
	return len(g.children)
}

// Collapse returns the group as a single overlay: nil when empty, the only
// child when there is one.
func (g *Group[M]) Collapse() core.Overlay[M] {
	switch len(g.children) {
	case 0:
		return nil
	case 1:
		return g.children[0]
	default:
		return g
	}
}

func (g *Group[M]) Layout(renderer graphics.Renderer, bounds geometry.Size) layout.Node {
	nodes := make([]layout.Node, len(g.children))
	for i, c := range g.children {
		nodes[i] = c.Layout(renderer, bounds)
	}
	return layout.WithChildren(bounds, nodes)
}

func (g *Group[M]) Update(ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M]) {
	over := false
	for i := len(g.children) - 1; i >= 0; i-- {
		child, cl := g.children[i], l.Child(i)
		child.Update(ev, cl, cursor.Levitate(over), renderer, clipboard, shell)
		if p, ok := cursor.Position(); ok && child.IsOver(cl, renderer, p) {
			over = true
		}
	}
}

func (g *Group[M]) Draw(renderer graphics.Renderer, style graphics.Style, l layout.Layout, cursor event.Cursor) {
	for i, child := range g.children {
		cl := l.Child(i)
		child.Draw(renderer, style, cl, cursor.Levitate(g.coveredAbove(i, l, renderer, cursor)))
	}
}

// coveredAbove reports whether an overlay above index i is under the cursor.
func (g *Group[M]) coveredAbove(i int, l layout.Layout, renderer graphics.Renderer, cursor event.Cursor) bool {
	p, ok := cursor.Position()
	if !ok {
		return false
	}
	for j := i + 1; j < len(g.children); j++ {
		if g.children[j].IsOver(l.Child(j), renderer, p) {
			return true
		}
	}
	return false
}

func (g *Group[M]) MouseInteraction(l layout.Layout, cursor event.Cursor, renderer graphics.Renderer) event.Interaction {
	p, ok := cursor.Position()
	for i := len(g.children) - 1; i >= 0; i-- {
		child, cl := g.children[i], l.Child(i)
		if ok && child.IsOver(cl, renderer, p) {
			return child.MouseInteraction(cl, cursor, renderer)
		}
	}
	return event.InteractionNone
}

func (g *Group[M]) IsOver(l layout.Layout, renderer graphics.Renderer, position geometry.Point) bool {
	for i, child := range g.children {
		if child.IsOver(l.Child(i), renderer, position) {
			return true
		}
	}
	return false
}

func (g *Group[M]) Overlay(l layout.Layout, renderer graphics.Renderer) core.Overlay[M] {
	nested := make([]core.Overlay[M], 0, len(g.children))
	for i, child := range g.children {
		nested = append(nested, child.Overlay(l.Child(i), renderer))
	}
	return NewGroup(nested...).Collapse()
}

func (g *Group[M]) Index() float64 {
	if len(g.children) == 0 {
		return 1
	}
	return g.children[len(g.children)-1].Index()
}

var _ core.Overlay[struct{}] = (*Group[struct{}])(nil)

// FromChildren collects the overlays of children into one overlay. The
// translation is passed through unchanged since child layouts are already
// absolute.
func FromChildren[M any](children []core.Widget[M], tree *core.Tree, l layout.Layout,
	renderer graphics.Renderer, translation geometry.Vector) core.Overlay[M] {
	overlays := make([]core.Overlay[M], 0, len(children))
	for i, child := range children {
		overlays = append(overlays, child.Overlay(&tree.Children[i], l.Child(i), renderer, translation))
	}
	return NewGroup(overlays...).Collapse()
}
