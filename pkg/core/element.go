package core

import (
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Map returns a widget that behaves exactly like w but publishes f(msg) for
// every message w publishes. Tags, state, and children are w's own, so
// wrapping never changes the shape of the state tree.
func Map[A, B any](w Widget[A], f func(A) B) Widget[B] {
	return mapped[A, B]{widget: w, mapper: f}
}

type mapped[A, B any] struct {
	widget Widget[A]
	mapper func(A) B
}

func (m mapped[A, B]) Size() layout.Sizing { return m.widget.Size() }

func (m mapped[A, B]) Tag() Tag { return m.widget.Tag() }

func (m mapped[A, B]) State() State { return m.widget.State() }

func (m mapped[A, B]) Children() []Tree { return m.widget.Children() }

func (m mapped[A, B]) Diff(tree *Tree) { m.widget.Diff(tree) }

func (m mapped[A, B]) Layout(tree *Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	return m.widget.Layout(tree, renderer, limits)
}

func (m mapped[A, B]) Update(tree *Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard Clipboard, shell *Shell[B], viewport geometry.Rectangle) {
	var local []A
	inner := NestedShell(shell, &local)
	m.widget.Update(tree, ev, l, cursor, renderer, clipboard, inner, viewport)
	MergeShell(shell, inner, m.mapper)
}

func (m mapped[A, B]) Draw(tree *Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	m.widget.Draw(tree, renderer, style, l, cursor, viewport)
}

func (m mapped[A, B]) MouseInteraction(tree *Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	return m.widget.MouseInteraction(tree, l, cursor, viewport, renderer)
}

func (m mapped[A, B]) Overlay(tree *Tree, l layout.Layout, renderer graphics.Renderer, translation geometry.Vector) Overlay[B] {
	return MapOverlay(m.widget.Overlay(tree, l, renderer, translation), m.mapper)
}

// Explain returns a widget that draws w and then a one-pixel border of color
// around every layout node of w's subtree.
func Explain[M any](w Widget[M], color graphics.Color) Widget[M] {
	return explained[M]{Widget: w, color: color}
}

type explained[M any] struct {
	Widget[M]
	color graphics.Color
}

func (e explained[M]) Draw(tree *Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	e.Widget.Draw(tree, renderer, style, l, cursor, viewport)
	explainLayout(renderer, e.color, l)
}

func explainLayout(renderer graphics.Renderer, color graphics.Color, l layout.Layout) {
	renderer.FillQuad(graphics.Quad{
		Bounds: l.Bounds(),
		Border: graphics.Border{Color: color, Width: 1},
	}, graphics.ColorTransparent)
	for _, child := range l.Children() {
		explainLayout(renderer, color, child)
	}
}
