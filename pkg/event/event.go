// Package event defines the platform events the engine dispatches and the
// cursor and status values that travel with them.
package event

import (
	"time"

	"github.com/go-drift/pure/pkg/geometry"
)

// Event is a platform event delivered to the widget tree. The concrete types
// are Mouse, Keyboard, Touch, and Window.
type Event interface {
	isEvent()
}

// MouseKind identifies the kind of a mouse event.
type MouseKind int

const (
	MouseMoved MouseKind = iota
	MouseEntered
	MouseLeft
	MousePressed
	MouseReleased
	MouseWheel
)

func (k MouseKind) String() string {
	switch k {
	case MouseMoved:
		return "moved"
	case MouseEntered:
		return "entered"
	case MouseLeft:
		return "left"
	case MousePressed:
		return "pressed"
	case MouseReleased:
		return "released"
	case MouseWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Mouse is a pointer event.
type Mouse struct {
	Kind     MouseKind
	Button   Button
	Position geometry.Point
	// Delta is the scroll amount for MouseWheel events, in pixels.
	Delta geometry.Vector
}

func (Mouse) isEvent() {}

// IsPress reports whether e is a press of button b.
func (e Mouse) IsPress(b Button) bool {
	return e.Kind == MousePressed && e.Button == b
}

// IsRelease reports whether e is a release of button b.
func (e Mouse) IsRelease(b Button) bool {
	return e.Kind == MouseReleased && e.Button == b
}

// KeyKind identifies the kind of a keyboard event.
type KeyKind int

const (
	KeyPressed KeyKind = iota
	KeyReleased
)

func (k KeyKind) String() string {
	switch k {
	case KeyPressed:
		return "pressed"
	case KeyReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Named keys. Printable keys carry their text in Keyboard.Text instead.
const (
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyBackspace = "Backspace"
	KeyTab       = "Tab"
	KeyUp        = "ArrowUp"
	KeyDown      = "ArrowDown"
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether all bits of m are set.
func (m Modifiers) Has(o Modifiers) bool {
	return m&o == o
}

// Keyboard is a key event.
type Keyboard struct {
	Kind      KeyKind
	Key       string
	Text      string
	Modifiers Modifiers
}

func (Keyboard) isEvent() {}

// TouchKind identifies the phase of a touch event.
type TouchKind int

const (
	FingerPressed TouchKind = iota
	FingerMoved
	FingerLifted
	FingerLost
)

func (k TouchKind) String() string {
	switch k {
	case FingerPressed:
		return "pressed"
	case FingerMoved:
		return "moved"
	case FingerLifted:
		return "lifted"
	case FingerLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Touch is a touch-screen event.
type Touch struct {
	Kind     TouchKind
	Finger   uint64
	Position geometry.Point
}

func (Touch) isEvent() {}

// WindowKind identifies the kind of a window event.
type WindowKind int

const (
	WindowResized WindowKind = iota
	WindowRedrawRequested
	WindowFocused
	WindowUnfocused
)

func (k WindowKind) String() string {
	switch k {
	case WindowResized:
		return "resized"
	case WindowRedrawRequested:
		return "redraw_requested"
	case WindowFocused:
		return "focused"
	case WindowUnfocused:
		return "unfocused"
	default:
		return "unknown"
	}
}

// Window is a window lifecycle event.
type Window struct {
	Kind WindowKind
	Size geometry.Size
	// Now is the frame time for WindowRedrawRequested.
	Now time.Time
}

func (Window) isEvent() {}
