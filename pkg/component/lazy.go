package component

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// LazyWidget builds its content from a dependency and keeps the built
// content until the dependency changes.
type LazyWidget[M any, D comparable] struct {
	dep    D
	view   func(D) core.Widget[M]
	sizing layout.Sizing
}

// Lazy returns a widget whose content is view(dep). The content is built
// once and rebuilt only when a later Lazy carries a different dep, so view
// is not called on rebuilds that leave dep unchanged.
func Lazy[M any, D comparable](dep D, view func(D) core.Widget[M]) LazyWidget[M, D] {
	return LazyWidget[M, D]{dep: dep, view: view, sizing: layout.ShrinkBoth}
}

// Sized sets the sizing the widget reports to its parent.
func (w LazyWidget[M, D]) Sized(s layout.Sizing) LazyWidget[M, D] {
	w.sizing = s
	return w
}

type lazyCell[M any, D comparable] struct {
	dep   D
	view  core.Widget[M]
	inner core.Tree
}

func (w LazyWidget[M, D]) Size() layout.Sizing { return w.sizing }

func (w LazyWidget[M, D]) Tag() core.Tag { return core.TagOf[lazyCell[M, D]]() }

func (w LazyWidget[M, D]) State() core.State {
	c := &lazyCell[M, D]{dep: w.dep, view: w.view(w.dep)}
	c.inner = core.NewTree(c.view)
	return core.StateFrom(c)
}

func (w LazyWidget[M, D]) Children() []core.Tree { return nil }

func (w LazyWidget[M, D]) Diff(tree *core.Tree) {
	c := core.StateOf[lazyCell[M, D]](tree)
	if c.dep == w.dep {
		return
	}
	c.dep = w.dep
	c.view = w.view(w.dep)
	core.Diff(&c.inner, c.view)
}

func (w LazyWidget[M, D]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	c := core.StateOf[lazyCell[M, D]](tree)
	return c.view.Layout(&c.inner, renderer, limits)
}

func (w LazyWidget[M, D]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	c := core.StateOf[lazyCell[M, D]](tree)
	c.view.Update(&c.inner, ev, l, cursor, renderer, clipboard, shell, viewport)
}

func (w LazyWidget[M, D]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	c := core.StateOf[lazyCell[M, D]](tree)
	c.view.Draw(&c.inner, renderer, style, l, cursor, viewport)
}

func (w LazyWidget[M, D]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	c := core.StateOf[lazyCell[M, D]](tree)
	return c.view.MouseInteraction(&c.inner, l, cursor, viewport, renderer)
}

func (w LazyWidget[M, D]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	c := core.StateOf[lazyCell[M, D]](tree)
	return c.view.Overlay(&c.inner, l, renderer, translation)
}
