package core

import (
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Overlay is floating content returned by a widget for the current cycle. It
// borrows the state of its owner and is discarded when the cycle ends. Its
// layout is in window coordinates.
type Overlay[M any] interface {
	// Layout computes the overlay node inside the window bounds.
	Layout(renderer graphics.Renderer, bounds geometry.Size) layout.Node
	// Update handles an event before the base tree sees it.
	Update(ev event.Event, l layout.Layout, cursor event.Cursor,
		renderer graphics.Renderer, clipboard Clipboard, shell *Shell[M])
	// Draw paints the overlay.
	Draw(renderer graphics.Renderer, style graphics.Style, l layout.Layout, cursor event.Cursor)
	// MouseInteraction returns the cursor icon the overlay requests.
	MouseInteraction(l layout.Layout, cursor event.Cursor, renderer graphics.Renderer) event.Interaction
	// IsOver reports whether position hits the overlay. A hit hides the
	// cursor from everything beneath.
	IsOver(l layout.Layout, renderer graphics.Renderer, position geometry.Point) bool
	// Overlay returns a further layer opened from this one, or nil.
	Overlay(l layout.Layout, renderer graphics.Renderer) Overlay[M]
	// Index orders overlays of a group; higher indices sit on top.
	Index() float64
}

// OverlayBase provides the defaults of a passive overlay. Embed it and
// override what the overlay needs.
type OverlayBase[M any] struct{}

// Update ignores the event.
func (OverlayBase[M]) Update(event.Event, layout.Layout, event.Cursor,
	graphics.Renderer, Clipboard, *Shell[M]) {
}

// MouseInteraction requests no particular cursor.
func (OverlayBase[M]) MouseInteraction(layout.Layout, event.Cursor, graphics.Renderer) event.Interaction {
	return event.InteractionNone
}

// IsOver hit-tests the overlay bounds.
func (OverlayBase[M]) IsOver(l layout.Layout, _ graphics.Renderer, position geometry.Point) bool {
	return l.Bounds().Contains(position)
}

// Overlay returns no nested layer.
func (OverlayBase[M]) Overlay(layout.Layout, graphics.Renderer) Overlay[M] {
	return nil
}

// Index returns the default index.
func (OverlayBase[M]) Index() float64 { return 1 }

// MapOverlay translates the messages of an overlay with f.
func MapOverlay[A, B any](o Overlay[A], f func(A) B) Overlay[B] {
	if o == nil {
		return nil
	}
	return mappedOverlay[A, B]{overlay: o, mapper: f}
}

type mappedOverlay[A, B any] struct {
	overlay Overlay[A]
	mapper  func(A) B
}

func (m mappedOverlay[A, B]) Layout(renderer graphics.Renderer, bounds geometry.Size) layout.Node {
	return m.overlay.Layout(renderer, bounds)
}

func (m mappedOverlay[A, B]) Update(ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard Clipboard, shell *Shell[B]) {
	var local []A
	inner := NestedShell(shell, &local)
	m.overlay.Update(ev, l, cursor, renderer, clipboard, inner)
	MergeShell(shell, inner, m.mapper)
}

func (m mappedOverlay[A, B]) Draw(renderer graphics.Renderer, style graphics.Style, l layout.Layout, cursor event.Cursor) {
	m.overlay.Draw(renderer, style, l, cursor)
}

func (m mappedOverlay[A, B]) MouseInteraction(l layout.Layout, cursor event.Cursor, renderer graphics.Renderer) event.Interaction {
	return m.overlay.MouseInteraction(l, cursor, renderer)
}

func (m mappedOverlay[A, B]) IsOver(l layout.Layout, renderer graphics.Renderer, position geometry.Point) bool {
	return m.overlay.IsOver(l, renderer, position)
}

func (m mappedOverlay[A, B]) Overlay(l layout.Layout, renderer graphics.Renderer) Overlay[B] {
	return MapOverlay(m.overlay.Overlay(l, renderer), m.mapper)
}

func (m mappedOverlay[A, B]) Index() float64 {
	return m.overlay.Index()
}
