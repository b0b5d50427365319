// Package component embeds a small application inside a widget tree.
//
// A Component owns private state S and a private message type E. Its view
// publishes E; the component translates each E into an optional outer
// message M through Update. The internal view is rebuilt only when an
// internal message was handled or when the component value itself changed,
// and its layout is cached until either happens, the limits change, or the
// view invalidates the layout.
package component

import (
	"reflect"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Component is an embedded application.
type Component[M, E, S any] interface {
	// Update handles an internal event, returning an outer message if any.
	Update(state *S, ev E) (M, bool)
	// View builds the internal widget tree.
	View(state *S) core.Widget[E]
}

// Listener is implemented by components that translate raw platform events
// into internal events before their view sees them.
type Listener[E, S any] interface {
	Listen(state *S, ev event.Event) (E, bool)
}

// Sizer is implemented by components that report a size to their parent.
// Components without it shrink on both axes.
type Sizer interface {
	SizeHint() layout.Sizing
}

// New returns a widget hosting c.
//
// Props are compared with reflect.DeepEqual on every rebuild. Func values are
// only deeply equal when both are nil, so a component holding a non-nil func
// field rebuilds its view each cycle. Keep callbacks out of props or accept
// the rebuild.
func New[M, E, S any](c Component[M, E, S]) core.Widget[M] {
	return instance[M, E, S]{component: c}
}

// cell is the durable state of a hosted component.
type cell[E, S any] struct {
	state S
	view  core.Widget[E]
	inner core.Tree
	props any

	cached       bool
	cachedLimits layout.Limits
	cachedNode   layout.Node
}

type instance[M, E, S any] struct {
	component Component[M, E, S]
}

func (i instance[M, E, S]) Size() layout.Sizing {
	if s, ok := i.component.(Sizer); ok {
		return s.SizeHint()
	}
	return layout.ShrinkBoth
}

func (i instance[M, E, S]) Tag() core.Tag {
	return core.TagOf[cell[E, S]]()
}

func (i instance[M, E, S]) State() core.State {
	c := &cell[E, S]{props: i.component}
	c.view = i.component.View(&c.state)
	c.inner = core.NewTree(c.view)
	return core.StateFrom(c)
}

func (i instance[M, E, S]) Children() []core.Tree { return nil }

func (i instance[M, E, S]) Diff(tree *core.Tree) {
	c := core.StateOf[cell[E, S]](tree)
	if !reflect.DeepEqual(c.props, any(i.component)) {
		c.props = i.component
		i.rebuild(c)
	}
}

// rebuild refreshes the internal view from the current state and drops the
// layout cache.
func (i instance[M, E, S]) rebuild(c *cell[E, S]) {
	c.view = i.component.View(&c.state)
	core.Diff(&c.inner, c.view)
	c.cached = false
}

func (i instance[M, E, S]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	c := core.StateOf[cell[E, S]](tree)
	if c.cached && c.cachedLimits == limits {
		return c.cachedNode
	}
	c.cachedNode = c.view.Layout(&c.inner, renderer, limits)
	c.cachedLimits = limits
	c.cached = true
	return c.cachedNode
}

func (i instance[M, E, S]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	c := core.StateOf[cell[E, S]](tree)

	var events []E
	local := core.NestedShell(shell, &events)
	if listener, ok := i.component.(Listener[E, S]); ok {
		if e, ok := listener.Listen(&c.state, ev); ok {
			local.Publish(e)
		}
	}
	c.view.Update(&c.inner, ev, l, cursor, renderer, clipboard, local, viewport)
	if local.IsLayoutInvalid() {
		c.cached = false
	}
	core.MergeEffects(shell, local)
	i.apply(c, events, shell)
}

// apply feeds internal events to the component, forwards outer messages,
// and rebuilds the view when any event was handled.
func (i instance[M, E, S]) apply(c *cell[E, S], events []E, shell *core.Shell[M]) {
	if len(events) == 0 {
		return
	}
	for _, e := range events {
		if m, ok := i.component.Update(&c.state, e); ok {
			shell.Publish(m)
		}
	}
	i.rebuild(c)
	shell.InvalidateLayout()
}

func (i instance[M, E, S]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	c := core.StateOf[cell[E, S]](tree)
	c.view.Draw(&c.inner, renderer, style, l, cursor, viewport)
}

func (i instance[M, E, S]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	c := core.StateOf[cell[E, S]](tree)
	return c.view.MouseInteraction(&c.inner, l, cursor, viewport, renderer)
}

func (i instance[M, E, S]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	c := core.StateOf[cell[E, S]](tree)
	inner := c.view.Overlay(&c.inner, l, renderer, translation)
	if inner == nil {
		return nil
	}
	return overlay[M, E, S]{instance: i, cell: c, inner: inner}
}

// overlay routes the messages of the view's overlay through the component.
type overlay[M, E, S any] struct {
	instance instance[M, E, S]
	cell     *cell[E, S]
	inner    core.Overlay[E]
}

func (o overlay[M, E, S]) Layout(renderer graphics.Renderer, bounds geometry.Size) layout.Node {
	return o.inner.Layout(renderer, bounds)
}

func (o overlay[M, E, S]) Update(ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M]) {
	var events []E
	local := core.NestedShell(shell, &events)
	o.inner.Update(ev, l, cursor, renderer, clipboard, local)
	if local.IsLayoutInvalid() {
		o.cell.cached = false
	}
	core.MergeEffects(shell, local)
	o.instance.apply(o.cell, events, shell)
}

func (o overlay[M, E, S]) Draw(renderer graphics.Renderer, style graphics.Style, l layout.Layout, cursor event.Cursor) {
	o.inner.Draw(renderer, style, l, cursor)
}

func (o overlay[M, E, S]) MouseInteraction(l layout.Layout, cursor event.Cursor, renderer graphics.Renderer) event.Interaction {
	return o.inner.MouseInteraction(l, cursor, renderer)
}

func (o overlay[M, E, S]) IsOver(l layout.Layout, renderer graphics.Renderer, position geometry.Point) bool {
	return o.inner.IsOver(l, renderer, position)
}

func (o overlay[M, E, S]) Overlay(l layout.Layout, renderer graphics.Renderer) core.Overlay[M] {
	nested := o.inner.Overlay(l, renderer)
	if nested == nil {
		return nil
	}
	return overlay[M, E, S]{instance: o.instance, cell: o.cell, inner: nested}
}

func (o overlay[M, E, S]) Index() float64 {
	return o.inner.Index()
}
