package testing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/pure/pkg/backend/record"
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/runtime"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrNotFound is returned when a finder matches nothing that was drawn.
var ErrNotFound = errors.New("no drawn operation matches")

// Finder selects recorded draw operations.
type Finder func(op record.Op) bool

// ByText matches text drawn with exactly content.
func ByText(content string) Finder {
	return func(op record.Op) bool { return op.Op == "text" && op.Text == content }
}

// ByOp matches operations of a kind ("quad", "text", "image", "layer").
func ByOp(kind string) Finder {
	return func(op record.Op) bool { return op.Op == kind }
}

// Tester mounts a widget and drives it with synthetic input.
type Tester[M any] struct {
	root      core.Widget[M]
	ui        *runtime.UserInterface[M]
	renderer  *record.Recorder
	clipboard *core.MemoryClipboard
	clock     *FakeClock
	restore   func()
	size      geometry.Size
	style     graphics.Style
	cursor    event.Cursor

	messages    []M
	state       runtime.State
	interaction event.Interaction
}

// NewTester creates a tester that restores the animation clock when the
// test ends.
func NewTester[M any](t testing.TB) *Tester[M] {
	clock := NewFakeClock()
	tester := &Tester[M]{
		renderer:  record.New(nil),
		clipboard: &core.MemoryClipboard{},
		clock:     clock,
		restore:   clock.Install(),
		size:      geometry.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		style:     graphics.DefaultStyle,
		cursor:    event.Unavailable,
	}
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the animation clock.
func (t *Tester[M]) Cleanup() {
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
}

// SetSize sets the surface size, relaying out a mounted widget.
func (t *Tester[M]) SetSize(size geometry.Size) {
	t.size = size
	if t.ui != nil {
		t.ui = t.ui.Relayout(size, t.renderer)
	}
}

// Clock returns the fake clock.
func (t *Tester[M]) Clock() *FakeClock { return t.clock }

// Clipboard returns the in-memory clipboard widgets read and write.
func (t *Tester[M]) Clipboard() *core.MemoryClipboard { return t.clipboard }

// Renderer returns the recording renderer.
func (t *Tester[M]) Renderer() *record.Recorder { return t.renderer }

// Mount builds widget with a fresh state tree and draws it.
func (t *Tester[M]) Mount(widget core.Widget[M]) {
	t.root = widget
	t.ui = runtime.Build(widget, t.size, runtime.Cache{}, t.renderer)
	t.Draw()
}

// Rebuild replaces the widget, keeping the state tree, and draws it.
func (t *Tester[M]) Rebuild(widget core.Widget[M]) {
	t.root = widget
	t.ui = runtime.Build(widget, t.size, t.ui.IntoCache(), t.renderer)
	t.Draw()
}

// Interface returns the mounted user interface.
func (t *Tester[M]) Interface() *runtime.UserInterface[M] { return t.ui }

// Tree returns the state tree of the mounted widget.
func (t *Tester[M]) Tree() *core.Tree { return t.ui.Tree() }

// State returns the outcome of the last dispatch.
func (t *Tester[M]) State() runtime.State { return t.state }

// Interaction returns the cursor interaction of the last draw.
func (t *Tester[M]) Interaction() event.Interaction { return t.interaction }

// Messages returns every message published since the last TakeMessages.
func (t *Tester[M]) Messages() []M { return t.messages }

// TakeMessages returns and clears the published messages.
func (t *Tester[M]) TakeMessages() []M {
	out := t.messages
	t.messages = nil
	return out
}

// Dispatch delivers events in one update cycle and redraws.
func (t *Tester[M]) Dispatch(events ...event.Event) []event.Status {
	state, statuses := t.ui.Update(events, t.cursor, t.renderer, t.clipboard, &t.messages)
	t.state = state
	t.Draw()
	return statuses
}

// Draw repaints the interface into a fresh recording.
func (t *Tester[M]) Draw() *record.Recorder {
	t.renderer.Reset()
	t.interaction = t.ui.Draw(t.renderer, t.style, t.cursor)
	return t.renderer
}

// MoveTo moves the cursor to p.
func (t *Tester[M]) MoveTo(p geometry.Point) event.Status {
	t.cursor = event.CursorAt(p)
	return t.Dispatch(event.Mouse{Kind: event.MouseMoved, Position: p})[0]
}

// Press presses the left button at p.
func (t *Tester[M]) Press(p geometry.Point) event.Status {
	t.cursor = event.CursorAt(p)
	return t.Dispatch(event.Mouse{Kind: event.MousePressed, Button: event.ButtonLeft, Position: p})[0]
}

// Release releases the left button at p.
func (t *Tester[M]) Release(p geometry.Point) event.Status {
	t.cursor = event.CursorAt(p)
	return t.Dispatch(event.Mouse{Kind: event.MouseReleased, Button: event.ButtonLeft, Position: p})[0]
}

// Click moves to p, then presses and releases there.
func (t *Tester[M]) Click(p geometry.Point) {
	t.MoveTo(p)
	t.Press(p)
	t.Release(p)
}

// Scroll sends a wheel event of dy pixels at p.
func (t *Tester[M]) Scroll(p geometry.Point, dy float64) event.Status {
	t.cursor = event.CursorAt(p)
	return t.Dispatch(event.Mouse{Kind: event.MouseWheel, Position: p, Delta: geometry.Vector{Y: dy}})[0]
}

// Key presses and releases a named key.
func (t *Tester[M]) Key(key string, mods event.Modifiers) event.Status {
	status := t.Dispatch(event.Keyboard{Kind: event.KeyPressed, Key: key, Modifiers: mods})[0]
	t.Dispatch(event.Keyboard{Kind: event.KeyReleased, Key: key, Modifiers: mods})
	return status
}

// Type sends one key press per rune of s.
func (t *Tester[M]) Type(s string) {
	for _, r := range s {
		t.Dispatch(event.Keyboard{Kind: event.KeyPressed, Key: string(r), Text: string(r)})
	}
}

// Advance moves the clock forward by d and delivers a redraw event.
func (t *Tester[M]) Advance(d time.Duration) {
	now := t.clock.Advance(d)
	t.Dispatch(event.Window{Kind: event.WindowRedrawRequested, Now: now})
}

// Find returns every drawn operation f matches.
func (t *Tester[M]) Find(f Finder) []record.Op {
	var out []record.Op
	for _, op := range t.renderer.Ops() {
		if f(op) {
			out = append(out, op)
		}
	}
	return out
}

// Exists reports whether anything drawn matches f.
func (t *Tester[M]) Exists(f Finder) bool {
	return len(t.Find(f)) > 0
}

// Tap clicks the center of the last drawn operation f matches, which is the
// topmost one.
func (t *Tester[M]) Tap(f Finder) error {
	found := t.Find(f)
	if len(found) == 0 {
		return ErrNotFound
	}
	target := found[len(found)-1].Rect()
	if target.IsEmpty() {
		return fmt.Errorf("tap target %v is empty", target)
	}
	t.Click(target.Center())
	return nil
}
