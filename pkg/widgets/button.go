package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Button publishes a message when pressed and released over its bounds.
// A button without an OnPress message is disabled.
type Button[M any] struct {
	Content core.Widget[M]
	Padding geometry.Padding
	Width   layout.Length
	Height  layout.Length
	// Background is drawn while idle, Pressed while held.
	Background graphics.Color
	Pressed    graphics.Color
	Border     graphics.Border

	onPress M
	enabled bool
}

// ButtonOf creates a disabled button around content with standard padding.
func ButtonOf[M any](content core.Widget[M]) Button[M] {
	return Button[M]{
		Content:    content,
		Padding:    geometry.PaddingSymmetric(5, 10),
		Background: graphics.RGB(0x33, 0x66, 0xcc),
		Pressed:    graphics.RGB(0x22, 0x44, 0x99),
	}
}

// WithOnPress returns an enabled copy publishing msg when pressed.
func (b Button[M]) WithOnPress(msg M) Button[M] {
	b.onPress = msg
	b.enabled = true
	return b
}

// WithPadding returns a copy with the given padding.
func (b Button[M]) WithPadding(p geometry.Padding) Button[M] {
	b.Padding = p
	return b
}

// WithSize returns a copy with the given lengths.
func (b Button[M]) WithSize(width, height layout.Length) Button[M] {
	b.Width = width
	b.Height = height
	return b
}

// Enabled reports whether the button publishes on press.
func (b Button[M]) Enabled() bool { return b.enabled }

type buttonState struct {
	pressed bool
}

func (b Button[M]) Size() layout.Sizing {
	return layout.Sizing{Width: b.Width, Height: b.Height}
}

func (b Button[M]) Tag() core.Tag     { return core.TagOf[buttonState]() }
func (b Button[M]) State() core.State { return core.NewState(buttonState{}) }

func (b Button[M]) Children() []core.Tree {
	return []core.Tree{core.NewTree(b.Content)}
}

func (b Button[M]) Diff(tree *core.Tree) {
	core.DiffChildren(tree, []core.Widget[M]{b.Content})
}

func (b Button[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(b.Width).Height(b.Height)
	content := b.Content.Layout(&tree.Children[0], renderer, limits.Loose().ShrinkPadding(b.Padding))
	size := limits.Resolve(b.Width, b.Height, content.Size().Expand(b.Padding))
	content = content.
		MoveTo(geometry.Point{X: b.Padding.Left, Y: b.Padding.Top}).
		Align(layout.Center, layout.Center, geometry.Size{
			Width:  max(size.Width-b.Padding.Horizontal(), 0),
			Height: max(size.Height-b.Padding.Vertical(), 0),
		})
	return layout.WithChildren(size, []layout.Node{content})
}

func (b Button[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	b.Content.Update(&tree.Children[0], ev, l.Child(0), cursor, renderer, clipboard, shell, viewport)
	if shell.IsEventCaptured() || !b.enabled {
		return
	}

	st := core.StateOf[buttonState](tree)
	cursor = touchCursor(ev, cursor)
	if _, ok := pressPosition(ev); ok {
		if cursor.IsOver(l.Bounds()) {
			st.pressed = true
			shell.CaptureEvent()
			shell.RequestRedraw()
		}
		return
	}
	if isRelease(ev) && st.pressed {
		st.pressed = false
		if cursor.IsOver(l.Bounds()) {
			shell.Publish(b.onPress)
		}
		shell.CaptureEvent()
		shell.RequestRedraw()
		return
	}
	if t, ok := ev.(event.Touch); ok && t.Kind == event.FingerLost {
		st.pressed = false
	}
}

func (b Button[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	bg := b.Background
	if core.StateOf[buttonState](tree).pressed {
		bg = b.Pressed
	}
	if !b.enabled {
		bg = bg.ScaleAlpha(0.5)
	}
	renderer.FillQuad(graphics.Quad{Bounds: l.Bounds(), Border: b.Border}, bg)
	b.Content.Draw(&tree.Children[0], renderer, style, l.Child(0), cursor, viewport)
}

func (b Button[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	if !cursor.IsOver(l.Bounds()) {
		return event.InteractionNone
	}
	if !b.enabled {
		return event.InteractionNotAllowed
	}
	return event.InteractionPointer
}

func (b Button[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	return b.Content.Overlay(&tree.Children[0], l.Child(0), renderer, translation)
}
