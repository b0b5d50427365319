package event

import "github.com/go-drift/pure/pkg/geometry"

// Status reports whether an event was consumed.
type Status int

const (
	// Ignored means no widget claimed the event.
	Ignored Status = iota
	// Captured means a widget claimed the event; ancestors must not reuse it.
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Merge returns Captured if either status is Captured.
func (s Status) Merge(o Status) Status {
	if s == Captured || o == Captured {
		return Captured
	}
	return Ignored
}

// Cursor is the mouse cursor as seen by a widget. An unavailable cursor means
// something above the widget owns the pointer.
type Cursor struct {
	position  geometry.Point
	available bool
}

// CursorAt returns an available cursor at p.
func CursorAt(p geometry.Point) Cursor {
	return Cursor{position: p, available: true}
}

// Unavailable is a cursor hidden from the receiving widget.
var Unavailable = Cursor{}

// Position returns the cursor position, if available.
func (c Cursor) Position() (geometry.Point, bool) {
	return c.position, c.available
}

// IsAvailable reports whether the cursor is visible to the widget.
func (c Cursor) IsAvailable() bool {
	return c.available
}

// IsOver reports whether the cursor is available and inside bounds.
func (c Cursor) IsOver(bounds geometry.Rectangle) bool {
	return c.available && bounds.Contains(c.position)
}

// PositionIn returns the cursor position relative to bounds if the cursor is
// over them.
func (c Cursor) PositionIn(bounds geometry.Rectangle) (geometry.Point, bool) {
	if !c.IsOver(bounds) {
		return geometry.Point{}, false
	}
	return geometry.Point{X: c.position.X - bounds.X, Y: c.position.Y - bounds.Y}, true
}

// Translate moves an available cursor by v.
func (c Cursor) Translate(v geometry.Vector) Cursor {
	if !c.available {
		return c
	}
	return CursorAt(c.position.Add(v))
}

// Levitate hides the cursor when over is true.
func (c Cursor) Levitate(over bool) Cursor {
	if over {
		return Unavailable
	}
	return c
}

// Interaction is the mouse cursor icon a widget requests. Larger values win
// when interactions are combined.
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionIdle
	InteractionText
	InteractionPointer
	InteractionGrab
	InteractionGrabbing
	InteractionNotAllowed
)

func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "none"
	case InteractionIdle:
		return "idle"
	case InteractionText:
		return "text"
	case InteractionPointer:
		return "pointer"
	case InteractionGrab:
		return "grab"
	case InteractionGrabbing:
		return "grabbing"
	case InteractionNotAllowed:
		return "not_allowed"
	default:
		return "unknown"
	}
}
