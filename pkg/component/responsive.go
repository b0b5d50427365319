package component

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// ResponsiveWidget builds its content from the space it is given.
type ResponsiveWidget[M any] struct {
	view func(geometry.Size) core.Widget[M]
}

// Responsive returns a widget that fills the available space and lays out
// view(size), where size is the maximum its limits allow. The content is
// rebuilt when that size changes and on every rebuild of the parent, since
// view may close over application state.
func Responsive[M any](view func(geometry.Size) core.Widget[M]) ResponsiveWidget[M] {
	return ResponsiveWidget[M]{view: view}
}

type responsiveCell[M any] struct {
	view  func(geometry.Size) core.Widget[M]
	size  geometry.Size
	built core.Widget[M]
	inner core.Tree
	stale bool
}

func (w ResponsiveWidget[M]) Size() layout.Sizing { return layout.FillBoth }

func (w ResponsiveWidget[M]) Tag() core.Tag { return core.TagOf[responsiveCell[M]]() }

func (w ResponsiveWidget[M]) State() core.State {
	return core.StateFrom(&responsiveCell[M]{view: w.view, stale: true})
}

func (w ResponsiveWidget[M]) Children() []core.Tree { return nil }

func (w ResponsiveWidget[M]) Diff(tree *core.Tree) {
	c := core.StateOf[responsiveCell[M]](tree)
	c.view = w.view
	c.stale = true
}

func (w ResponsiveWidget[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	c := core.StateOf[responsiveCell[M]](tree)
	size := limits.Max()
	if c.built == nil || c.stale || c.size != size {
		next := c.view(size)
		if c.built == nil {
			c.inner = core.NewTree(next)
		} else {
			core.Diff(&c.inner, next)
		}
		c.built, c.size, c.stale = next, size, false
	}
	child := c.built.Layout(&c.inner, renderer, layout.NewLimits(geometry.Size{}, size))
	return layout.WithChildren(size, []layout.Node{child})
}

func (w ResponsiveWidget[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	c := core.StateOf[responsiveCell[M]](tree)
	if c.built == nil {
		return
	}
	c.built.Update(&c.inner, ev, l.Child(0), cursor, renderer, clipboard, shell, viewport)
}

func (w ResponsiveWidget[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	c := core.StateOf[responsiveCell[M]](tree)
	if c.built == nil {
		return
	}
	c.built.Draw(&c.inner, renderer, style, l.Child(0), cursor, viewport)
}

func (w ResponsiveWidget[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	c := core.StateOf[responsiveCell[M]](tree)
	if c.built == nil {
		return event.InteractionNone
	}
	return c.built.MouseInteraction(&c.inner, l.Child(0), cursor, viewport, renderer)
}

func (w ResponsiveWidget[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	c := core.StateOf[responsiveCell[M]](tree)
	if c.built == nil {
		return nil
	}
	return c.built.Overlay(&c.inner, l.Child(0), renderer, translation)
}
