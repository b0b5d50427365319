package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// MouseArea publishes messages for pointer activity over its content that
// the content itself did not capture.
type MouseArea[M any] struct {
	Content core.Widget[M]

	onPress, onRelease, onEnter, onExit     M
	hasPress, hasRelease, hasEnter, hasExit bool
}

// MouseAreaOf wraps content.
func MouseAreaOf[M any](content core.Widget[M]) MouseArea[M] {
	return MouseArea[M]{Content: content}
}

// WithOnPress returns a copy publishing msg on a left press.
func (m MouseArea[M]) WithOnPress(msg M) MouseArea[M] {
	m.onPress, m.hasPress = msg, true
	return m
}

// WithOnRelease returns a copy publishing msg on a left release.
func (m MouseArea[M]) WithOnRelease(msg M) MouseArea[M] {
	m.onRelease, m.hasRelease = msg, true
	return m
}

// WithOnEnter returns a copy publishing msg when the cursor enters.
func (m MouseArea[M]) WithOnEnter(msg M) MouseArea[M] {
	m.onEnter, m.hasEnter = msg, true
	return m
}

// WithOnExit returns a copy publishing msg when the cursor leaves.
func (m MouseArea[M]) WithOnExit(msg M) MouseArea[M] {
	m.onExit, m.hasExit = msg, true
	return m
}

type mouseAreaState struct {
	hovered bool
}

func (m MouseArea[M]) Size() layout.Sizing { return m.Content.Size() }
func (m MouseArea[M]) Tag() core.Tag       { return core.TagOf[mouseAreaState]() }
func (m MouseArea[M]) State() core.State   { return core.NewState(mouseAreaState{}) }

func (m MouseArea[M]) Children() []core.Tree {
	return []core.Tree{core.NewTree(m.Content)}
}

func (m MouseArea[M]) Diff(tree *core.Tree) {
	core.DiffChildren(tree, []core.Widget[M]{m.Content})
}

func (m MouseArea[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	content := m.Content.Layout(&tree.Children[0], renderer, limits)
	return layout.WithChildren(content.Size(), []layout.Node{content})
}

func (m MouseArea[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	m.Content.Update(&tree.Children[0], ev, l.Child(0), cursor, renderer, clipboard, shell, viewport)

	st := core.StateOf[mouseAreaState](tree)
	over := cursor.IsOver(l.Bounds())
	if over != st.hovered {
		st.hovered = over
		switch {
		case over && m.hasEnter:
			shell.Publish(m.onEnter)
		case !over && m.hasExit:
			shell.Publish(m.onExit)
		}
	}

	if shell.IsEventCaptured() || !over {
		return
	}
	if _, ok := pressPosition(ev); ok && m.hasPress {
		shell.Publish(m.onPress)
		shell.CaptureEvent()
		return
	}
	if isRelease(ev) && m.hasRelease {
		shell.Publish(m.onRelease)
		shell.CaptureEvent()
	}
}

func (m MouseArea[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	m.Content.Draw(&tree.Children[0], renderer, style, l.Child(0), cursor, viewport)
}

func (m MouseArea[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	inner := m.Content.MouseInteraction(&tree.Children[0], l.Child(0), cursor, viewport, renderer)
	if inner == event.InteractionNone && m.hasPress && cursor.IsOver(l.Bounds()) {
		return event.InteractionPointer
	}
	return inner
}

func (m MouseArea[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	return m.Content.Overlay(&tree.Children[0], l.Child(0), renderer, translation)
}
