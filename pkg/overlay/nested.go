package overlay

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Nested runs the overlay pass for a root overlay and every layer it opens.
//
// The layout of a layer is a node whose first child is the layer's own node
// and whose optional second child is the layout of the layer it opens. Layers
// are drawn bottom-up, each in its own renderer layer; events go top-down and
// a layer sees an unavailable cursor whenever a layer above it is under the
// cursor.
type Nested[M any] struct {
	root core.Overlay[M]
}

// NewNested wraps root.
func NewNested[M any](root core.Overlay[M]) *Nested[M] {
	return &Nested[M]{root: root}
}

// Layout lays out every layer inside bounds.
func (n *Nested[M]) Layout(renderer graphics.Renderer, bounds geometry.Size) layout.Node {
	var recurse func(o core.Overlay[M]) layout.Node
	recurse = func(o core.Overlay[M]) layout.Node {
		node := o.Layout(renderer, bounds)
		if nested := o.Overlay(layout.New(&node), renderer); nested != nil {
			return layout.WithChildren(node.Size(), []layout.Node{node, recurse(nested)})
		}
		return layout.WithChildren(node.Size(), []layout.Node{node})
	}
	return recurse(n.root)
}

// Update dispatches ev to the topmost layer first. Lower layers only see the
// event while it is not captured.
func (n *Nested[M]) Update(ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M]) {
	var recurse func(o core.Overlay[M], l layout.Layout) bool
	recurse = func(o core.Overlay[M], l layout.Layout) bool {
		if l.Len() == 0 {
			return false
		}
		own := l.Child(0)
		nestedOver := false
		if l.Len() > 1 {
			if nested := o.Overlay(own, renderer); nested != nil {
				nestedOver = recurse(nested, l.Child(1))
			}
		}
		if shell.IsEventCaptured() {
			return nestedOver
		}
		over := nestedOver
		if p, ok := cursor.Position(); ok && !over {
			over = o.IsOver(own, renderer, p)
		}
		o.Update(ev, own, cursor.Levitate(nestedOver), renderer, clipboard, shell)
		return over
	}
	recurse(n.root, l)
}

// Draw paints the layers from the bottom up.
func (n *Nested[M]) Draw(renderer graphics.Renderer, style graphics.Style, l layout.Layout, cursor event.Cursor) {
	var recurse func(o core.Overlay[M], l layout.Layout)
	recurse = func(o core.Overlay[M], l layout.Layout) {
		if l.Len() == 0 {
			return
		}
		own := l.Child(0)
		var nested core.Overlay[M]
		if l.Len() > 1 {
			nested = o.Overlay(own, renderer)
		}
		nestedOver := false
		if p, ok := cursor.Position(); ok && nested != nil {
			nestedOver = nestedIsOver(nested, l.Child(1), renderer, p)
		}
		renderer.WithLayer(own.Bounds(), func() {
			o.Draw(renderer, style, own, cursor.Levitate(nestedOver))
		})
		if nested != nil {
			recurse(nested, l.Child(1))
		}
	}
	recurse(n.root, l)
}

// MouseInteraction returns the interaction of the topmost layer under the
// cursor.
func (n *Nested[M]) MouseInteraction(l layout.Layout, cursor event.Cursor, renderer graphics.Renderer) event.Interaction {
	p, ok := cursor.Position()
	if !ok {
		return event.InteractionNone
	}
	var recurse func(o core.Overlay[M], l layout.Layout) (event.Interaction, bool)
	recurse = func(o core.Overlay[M], l layout.Layout) (event.Interaction, bool) {
		if l.Len() == 0 {
			return event.InteractionNone, false
		}
		own := l.Child(0)
		if l.Len() > 1 {
			if nested := o.Overlay(own, renderer); nested != nil {
				if i, hit := recurse(nested, l.Child(1)); hit {
					return i, true
				}
			}
		}
		if !o.IsOver(own, renderer, p) {
			return event.InteractionNone, false
		}
		return o.MouseInteraction(own, cursor, renderer), true
	}
	i, _ := recurse(n.root, l)
	return i
}

// IsOver reports whether any layer is under position.
func (n *Nested[M]) IsOver(l layout.Layout, renderer graphics.Renderer, position geometry.Point) bool {
	return nestedIsOver(n.root, l, renderer, position)
}

func nestedIsOver[M any](o core.Overlay[M], l layout.Layout, renderer graphics.Renderer, p geometry.Point) bool {
	if l.Len() == 0 {
		return false
	}
	own := l.Child(0)
	if o.IsOver(own, renderer, p) {
		return true
	}
	if l.Len() > 1 {
		if nested := o.Overlay(own, renderer); nested != nil {
			return nestedIsOver(nested, l.Child(1), renderer, p)
		}
	}
	return false
}
