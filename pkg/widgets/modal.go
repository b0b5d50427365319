package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/overlay"
)

// modalIndex keeps modal dialogs above ordinary overlays of the underlay.
const modalIndex = 10

// Modal shows Content centered above Underlay, dimming everything beneath.
// While Content is non-nil the underlay receives no pointer input; a press
// outside the content, or Escape, publishes the dismiss message.
type Modal[M any] struct {
	Underlay core.Widget[M]
	// Content is the dialog. Nil hides the modal.
	Content  core.Widget[M]
	Backdrop graphics.Color

	onDismiss  M
	hasDismiss bool
}

// ModalOf creates a modal over underlay. Pass nil content to hide it.
func ModalOf[M any](underlay, content core.Widget[M]) Modal[M] {
	return Modal[M]{
		Underlay: underlay,
		Content:  content,
		Backdrop: graphics.RGBA(0, 0, 0, 0.5),
	}
}

// WithOnDismiss returns a copy publishing msg when the user dismisses the
// dialog.
func (m Modal[M]) WithOnDismiss(msg M) Modal[M] {
	m.onDismiss, m.hasDismiss = msg, true
	return m
}

// WithBackdrop returns a copy with the given backdrop color.
func (m Modal[M]) WithBackdrop(c graphics.Color) Modal[M] {
	m.Backdrop = c
	return m
}

func (m Modal[M]) widgets() []core.Widget[M] {
	if m.Content == nil {
		return []core.Widget[M]{m.Underlay}
	}
	return []core.Widget[M]{m.Underlay, m.Content}
}

func (m Modal[M]) Size() layout.Sizing   { return m.Underlay.Size() }
func (m Modal[M]) Tag() core.Tag         { return core.Stateless() }
func (m Modal[M]) State() core.State     { return core.None }
func (m Modal[M]) Children() []core.Tree { return core.ChildTrees(m.widgets()) }
func (m Modal[M]) Diff(tree *core.Tree)  { core.DiffChildren(tree, m.widgets()) }

func (m Modal[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	underlay := m.Underlay.Layout(&tree.Children[0], renderer, limits)
	return layout.WithChildren(underlay.Size(), []layout.Node{underlay})
}

func (m Modal[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	m.Underlay.Update(&tree.Children[0], ev, l.Child(0), cursor, renderer, clipboard, shell, viewport)
}

func (m Modal[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	m.Underlay.Draw(&tree.Children[0], renderer, style, l.Child(0), cursor, viewport)
}

func (m Modal[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	return m.Underlay.MouseInteraction(&tree.Children[0], l.Child(0), cursor, viewport, renderer)
}

func (m Modal[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	base := m.Underlay.Overlay(&tree.Children[0], l.Child(0), renderer, translation)
	if m.Content == nil {
		return base
	}
	return overlay.NewGroup(base, modalOverlay[M]{modal: m, tree: &tree.Children[1]}).Collapse()
}

type modalOverlay[M any] struct {
	modal Modal[M]
	tree  *core.Tree
}

// Layout fills the window and centers the dialog in it.
func (o modalOverlay[M]) Layout(renderer graphics.Renderer, bounds geometry.Size) layout.Node {
	content := o.modal.Content.Layout(o.tree, renderer, layout.NewLimits(geometry.Size{}, bounds))
	content = content.MoveTo(geometry.Point{}).Align(layout.Center, layout.Center, bounds)
	return layout.WithChildren(bounds, []layout.Node{content})
}

func (o modalOverlay[M]) dismiss(shell *core.Shell[M]) {
	if o.modal.hasDismiss {
		shell.Publish(o.modal.onDismiss)
	}
	shell.CaptureEvent()
}

func (o modalOverlay[M]) Update(ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M]) {
	content := l.Child(0)
	if _, ok := pointerDown(ev); ok {
		if !touchCursor(ev, cursor).IsOver(content.Bounds()) {
			if !shell.IsEventCaptured() {
				o.dismiss(shell)
			}
			return
		}
	}

	o.modal.Content.Update(o.tree, ev, content, cursor, renderer, clipboard, shell, l.Bounds())
	if shell.IsEventCaptured() {
		return
	}
	if k, ok := ev.(event.Keyboard); ok && k.Kind == event.KeyPressed && k.Key == event.KeyEscape {
		o.dismiss(shell)
		return
	}
	// Pointer input never reaches the underlay.
	switch ev.(type) {
	case event.Mouse, event.Touch:
		shell.CaptureEvent()
	}
}

func (o modalOverlay[M]) Draw(renderer graphics.Renderer, style graphics.Style, l layout.Layout, cursor event.Cursor) {
	renderer.FillQuad(graphics.Quad{Bounds: l.Bounds()}, o.modal.Backdrop)
	o.modal.Content.Draw(o.tree, renderer, style, l.Child(0), cursor, l.Bounds())
}

func (o modalOverlay[M]) MouseInteraction(l layout.Layout, cursor event.Cursor, renderer graphics.Renderer) event.Interaction {
	inner := o.modal.Content.MouseInteraction(o.tree, l.Child(0), cursor, l.Bounds(), renderer)
	if inner == event.InteractionNone {
		return event.InteractionIdle
	}
	return inner
}

// IsOver covers the whole window.
func (o modalOverlay[M]) IsOver(l layout.Layout, _ graphics.Renderer, p geometry.Point) bool {
	return l.Bounds().Contains(p)
}

func (o modalOverlay[M]) Overlay(l layout.Layout, renderer graphics.Renderer) core.Overlay[M] {
	return o.modal.Content.Overlay(o.tree, l.Child(0), renderer, geometry.Vector{})
}

func (o modalOverlay[M]) Index() float64 { return modalIndex }
