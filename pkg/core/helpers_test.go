package core

import (
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// fakeRenderer counts draw calls and measures 8px per rune.
type fakeRenderer struct {
	quads []graphics.Quad
	texts []string
}

func (r *fakeRenderer) FillQuad(q graphics.Quad, _ graphics.Color) { r.quads = append(r.quads, q) }

func (r *fakeRenderer) FillText(t graphics.Text, _ geometry.Point, _ graphics.Color, _ geometry.Rectangle) {
	r.texts = append(r.texts, t.Content)
}

func (r *fakeRenderer) DrawImage(graphics.Image, geometry.Rectangle) {}

func (r *fakeRenderer) WithLayer(_ geometry.Rectangle, draw func()) { draw() }

func (r *fakeRenderer) WithTranslation(_ geometry.Vector, draw func()) { draw() }

func (r *fakeRenderer) MeasureText(content string, size float64) geometry.Size {
	return geometry.Size{Width: 8 * float64(len([]rune(content))), Height: size}
}

type counterState struct{ presses int }

type otherState struct{ label string }

// pad is a fixed-size leaf that captures left presses over it and publishes
// its message.
type pad[M any] struct {
	Base[M]
	msg  M
	size geometry.Size
}

func (p pad[M]) Size() layout.Sizing {
	return layout.Sizing{Width: layout.Fixed(p.size.Width), Height: layout.Fixed(p.size.Height)}
}

func (p pad[M]) Tag() Tag { return TagOf[counterState]() }

func (p pad[M]) State() State { return NewState(counterState{}) }

func (p pad[M]) Layout(_ *Tree, _ graphics.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Resolve(layout.Fixed(p.size.Width), layout.Fixed(p.size.Height), p.size))
}

func (p pad[M]) Update(tree *Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	_ graphics.Renderer, _ Clipboard, shell *Shell[M], _ geometry.Rectangle) {
	m, ok := ev.(event.Mouse)
	if !ok || !m.IsPress(event.ButtonLeft) || shell.IsEventCaptured() || !cursor.IsOver(l.Bounds()) {
		return
	}
	StateOf[counterState](tree).presses++
	shell.Publish(p.msg)
	shell.CaptureEvent()
}

func (p pad[M]) Draw(*Tree, graphics.Renderer, graphics.Style, layout.Layout, event.Cursor, geometry.Rectangle) {
}

// label is a stateful leaf of a different state type.
type label[M any] struct {
	Base[M]
}

func (label[M]) Size() layout.Sizing { return layout.ShrinkBoth }

func (label[M]) Tag() Tag { return TagOf[otherState]() }

func (label[M]) State() State { return NewState(otherState{label: "fresh"}) }

func (label[M]) Layout(*Tree, graphics.Renderer, layout.Limits) layout.Node {
	return layout.NewNode(geometry.Size{Width: 10, Height: 10})
}

func (label[M]) Draw(*Tree, graphics.Renderer, graphics.Style, layout.Layout, event.Cursor, geometry.Rectangle) {
}

// row lays children out horizontally and delivers events to each of them.
type row[M any] struct {
	Base[M]
	children []Widget[M]
}

func (r row[M]) Size() layout.Sizing { return layout.ShrinkBoth }

func (r row[M]) Children() []Tree { return ChildTrees(r.children) }

func (r row[M]) Diff(tree *Tree) { DiffChildren(tree, r.children) }

func (r row[M]) Layout(tree *Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	return layout.Flex{Axis: layout.Horizontal}.Resolve(limits, ChildItems(r.children, tree.Children, renderer))
}

func (r row[M]) Update(tree *Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard Clipboard, shell *Shell[M], viewport geometry.Rectangle) {
	for i, child := range r.children {
		child.Update(&tree.Children[i], ev, l.Child(i), cursor, renderer, clipboard, shell, viewport)
	}
}

func (r row[M]) Draw(tree *Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	for i, child := range r.children {
		child.Draw(&tree.Children[i], renderer, style, l.Child(i), cursor, viewport)
	}
}

// fallback captures any left press not captured by its child.
type fallback[M any] struct {
	Base[M]
	child Widget[M]
	msg   M
}

func (f fallback[M]) Size() layout.Sizing { return f.child.Size() }

func (f fallback[M]) Children() []Tree { return []Tree{NewTree(f.child)} }

func (f fallback[M]) Diff(tree *Tree) { DiffChildren(tree, []Widget[M]{f.child}) }

func (f fallback[M]) Layout(tree *Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	child := f.child.Layout(&tree.Children[0], renderer, limits)
	return layout.WithChildren(child.Size(), []layout.Node{child})
}

func (f fallback[M]) Update(tree *Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard Clipboard, shell *Shell[M], viewport geometry.Rectangle) {
	f.child.Update(&tree.Children[0], ev, l.Child(0), cursor, renderer, clipboard, shell, viewport)
	if shell.IsEventCaptured() {
		return
	}
	if m, ok := ev.(event.Mouse); ok && m.IsPress(event.ButtonLeft) {
		shell.Publish(f.msg)
		shell.CaptureEvent()
	}
}

func (f fallback[M]) Draw(tree *Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	f.child.Draw(&tree.Children[0], renderer, style, l.Child(0), cursor, viewport)
}
