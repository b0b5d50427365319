package widgets

import (
	"math"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Scrollable shows a vertically scrolling window onto content taller than
// itself. The scroll offset lives in the widget state and survives rebuilds.
type Scrollable[M any] struct {
	Content core.Widget[M]
	Width   layout.Length
	Height  layout.Length
	// Scrollbar is the color of the scroll indicator. Transparent hides it.
	Scrollbar graphics.Color
}

// ScrollableOf creates a scrollable that fills its parent.
func ScrollableOf[M any](content core.Widget[M]) Scrollable[M] {
	return Scrollable[M]{
		Content:   content,
		Width:     layout.Fill,
		Height:    layout.Fill,
		Scrollbar: graphics.ColorGray,
	}
}

type scrollState struct {
	offset float64
}

// clamp keeps the offset within the scrollable range.
func (s *scrollState) clamp(content, viewport float64) {
	s.offset = math.Min(math.Max(s.offset, 0), math.Max(content-viewport, 0))
}

func (s Scrollable[M]) Size() layout.Sizing {
	return layout.Sizing{Width: s.Width, Height: s.Height}
}

func (s Scrollable[M]) Tag() core.Tag     { return core.TagOf[scrollState]() }
func (s Scrollable[M]) State() core.State { return core.NewState(scrollState{}) }

func (s Scrollable[M]) Children() []core.Tree {
	return []core.Tree{core.NewTree(s.Content)}
}

func (s Scrollable[M]) Diff(tree *core.Tree) {
	core.DiffChildren(tree, []core.Widget[M]{s.Content})
}

func (s Scrollable[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(s.Width).Height(s.Height)
	content := s.Content.Layout(&tree.Children[0], renderer, layout.NewLimits(
		geometry.Size{},
		geometry.Size{Width: limits.Max().Width, Height: math.Inf(1)},
	))
	size := limits.Resolve(s.Width, s.Height, content.Size())
	core.StateOf[scrollState](tree).clamp(content.Size().Height, size.Height)
	return layout.WithChildren(size, []layout.Node{content})
}

// contentCursor maps the cursor into content coordinates. Outside the
// viewport the content sees no cursor.
func contentCursor(cursor event.Cursor, bounds geometry.Rectangle, offset float64) event.Cursor {
	if !cursor.IsOver(bounds) {
		return event.Unavailable
	}
	return cursor.Translate(geometry.Vector{Y: offset})
}

func (s Scrollable[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	st := core.StateOf[scrollState](tree)
	bounds := l.Bounds()
	inner := bounds.Translate(geometry.Vector{Y: st.offset})

	s.Content.Update(&tree.Children[0], ev, l.Child(0), contentCursor(cursor, bounds, st.offset),
		renderer, clipboard, shell, inner)
	if shell.IsEventCaptured() {
		return
	}
	if m, ok := ev.(event.Mouse); ok && m.Kind == event.MouseWheel && cursor.IsOver(bounds) {
		before := st.offset
		st.offset -= m.Delta.Y
		st.clamp(l.Child(0).Bounds().Height, bounds.Height)
		if st.offset != before {
			shell.CaptureEvent()
			shell.RequestRedraw()
		}
	}
}

func (s Scrollable[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	st := core.StateOf[scrollState](tree)
	bounds := l.Bounds()
	visible, ok := bounds.Intersection(viewport)
	if !ok {
		return
	}
	inner := bounds.Translate(geometry.Vector{Y: st.offset})
	renderer.WithLayer(visible, func() {
		renderer.WithTranslation(geometry.Vector{Y: -st.offset}, func() {
			s.Content.Draw(&tree.Children[0], renderer, style, l.Child(0),
				contentCursor(cursor, bounds, st.offset), inner)
		})
	})

	content := l.Child(0).Bounds().Height
	if s.Scrollbar.IsTransparent() || content <= bounds.Height {
		return
	}
	ratio := bounds.Height / content
	renderer.FillQuad(graphics.Quad{
		Bounds: geometry.Rectangle{
			X:      bounds.Right() - 4,
			Y:      bounds.Y + st.offset*ratio,
			Width:  4,
			Height: bounds.Height * ratio,
		},
		Border: graphics.Border{Radius: 2},
	}, s.Scrollbar)
}

func (s Scrollable[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	st := core.StateOf[scrollState](tree)
	bounds := l.Bounds()
	return s.Content.MouseInteraction(&tree.Children[0], l.Child(0),
		contentCursor(cursor, bounds, st.offset), bounds.Translate(geometry.Vector{Y: st.offset}), renderer)
}

func (s Scrollable[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	st := core.StateOf[scrollState](tree)
	return s.Content.Overlay(&tree.Children[0], l.Child(0), renderer,
		translation.Add(geometry.Vector{Y: -st.offset}))
}
