package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// defaultTextSize is the font size used when a widget specifies none.
const defaultTextSize = 16

func textSize(size float64) float64 {
	if size <= 0 {
		return defaultTextSize
	}
	return size
}

// updateChildren delivers ev to every child in order.
func updateChildren[M any](children []core.Widget[M], tree *core.Tree, ev event.Event, l layout.Layout,
	cursor event.Cursor, renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M],
	viewport geometry.Rectangle) {
	for i, child := range children {
		child.Update(&tree.Children[i], ev, l.Child(i), cursor, renderer, clipboard, shell, viewport)
	}
}

// drawChildren draws the children visible in the viewport.
func drawChildren[M any](children []core.Widget[M], tree *core.Tree, renderer graphics.Renderer,
	style graphics.Style, l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle) {
	for i, child := range children {
		cl := l.Child(i)
		if _, visible := cl.Bounds().Intersection(viewport); !visible && !cl.Bounds().IsEmpty() {
			continue
		}
		child.Draw(&tree.Children[i], renderer, style, cl, cursor, viewport)
	}
}

// childrenInteraction returns the strongest interaction any child requests.
func childrenInteraction[M any](children []core.Widget[M], tree *core.Tree, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	best := event.InteractionNone
	for i, child := range children {
		best = max(best, child.MouseInteraction(&tree.Children[i], l.Child(i), cursor, viewport, renderer))
	}
	return best
}

// pressPosition returns where a left press or finger press happened.
func pressPosition(ev event.Event) (geometry.Point, bool) {
	switch e := ev.(type) {
	case event.Mouse:
		if e.IsPress(event.ButtonLeft) {
			return e.Position, true
		}
	case event.Touch:
		if e.Kind == event.FingerPressed {
			return e.Position, true
		}
	}
	return geometry.Point{}, false
}

// isRelease reports whether ev ends a left press or a finger press.
func isRelease(ev event.Event) bool {
	switch e := ev.(type) {
	case event.Mouse:
		return e.IsRelease(event.ButtonLeft)
	case event.Touch:
		return e.Kind == event.FingerLifted
	}
	return false
}

// touchCursor returns the cursor to use for ev: touch events carry their own
// position.
func touchCursor(ev event.Event, cursor event.Cursor) event.Cursor {
	if t, ok := ev.(event.Touch); ok {
		return event.CursorAt(t.Position)
	}
	return cursor
}

// pointerDown returns where any mouse button or finger went down.
func pointerDown(ev event.Event) (geometry.Point, bool) {
	switch e := ev.(type) {
	case event.Mouse:
		if e.Kind == event.MousePressed {
			return e.Position, true
		}
	case event.Touch:
		if e.Kind == event.FingerPressed {
			return e.Position, true
		}
	}
	return geometry.Point{}, false
}
