package core

import (
	"time"

	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
)

// redrawKind orders redraw requests by urgency. The zero value waits.
type redrawKind uint8

const (
	redrawWait redrawKind = iota
	redrawAt
	redrawNextFrame
)

// RedrawRequest states when the window should be redrawn next.
type RedrawRequest struct {
	kind redrawKind
	at   time.Time
}

// RedrawWait waits for the next event. It is the zero-urgency request.
func RedrawWait() RedrawRequest { return RedrawRequest{kind: redrawWait} }

// RedrawNextFrame redraws on the next frame.
func RedrawNextFrame() RedrawRequest { return RedrawRequest{kind: redrawNextFrame} }

// RedrawAt redraws at the given instant.
func RedrawAt(t time.Time) RedrawRequest { return RedrawRequest{kind: redrawAt, at: t} }

// IsWait reports whether no redraw was requested.
func (r RedrawRequest) IsWait() bool { return r.kind == redrawWait }

// IsNextFrame reports whether a redraw on the next frame was requested.
func (r RedrawRequest) IsNextFrame() bool { return r.kind == redrawNextFrame }

// At returns the instant of a timed request.
func (r RedrawRequest) At() (time.Time, bool) {
	return r.at, r.kind == redrawAt
}

// Min returns the earlier of two requests: next frame beats any instant,
// an earlier instant beats a later one, and anything beats waiting.
func (r RedrawRequest) Min(o RedrawRequest) RedrawRequest {
	if o.kind > r.kind {
		return o
	}
	if o.kind == redrawAt && r.kind == redrawAt && o.at.Before(r.at) {
		return o
	}
	return r
}

func (r RedrawRequest) String() string {
	switch r.kind {
	case redrawNextFrame:
		return "next_frame"
	case redrawAt:
		return "at(" + r.at.Format(time.RFC3339Nano) + ")"
	default:
		return "wait"
	}
}

// Purpose hints the platform input method about the expected text.
type Purpose int

const (
	PurposeNormal Purpose = iota
	PurposeSecure
	PurposeTerminal
)

// InputMethod is a request to show the platform input method near a caret.
type InputMethod struct {
	Enabled  bool
	Position geometry.Point
	Purpose  Purpose
	Preedit  string
}

// Merge keeps the first enabled request.
func (i *InputMethod) Merge(o InputMethod) {
	if !i.Enabled && o.Enabled {
		*i = o
	}
}

// Shell collects the effects of one Update call: published messages, event
// capture, redraw requests, and layout or widget invalidation.
type Shell[M any] struct {
	messages       *[]M
	status         event.Status
	redraw         RedrawRequest
	inputMethod    InputMethod
	layoutInvalid  bool
	widgetsInvalid bool
}

// NewShell returns a shell appending published messages to messages.
func NewShell[M any](messages *[]M) *Shell[M] {
	return &Shell[M]{messages: messages, redraw: RedrawWait()}
}

// NestedShell returns a shell for a wrapped child of parent. It starts with
// the parent's capture status so the child sees events already claimed.
func NestedShell[A, B any](parent *Shell[B], messages *[]A) *Shell[A] {
	s := NewShell(messages)
	s.status = parent.status
	return s
}

// Publish queues a message for the application.
func (s *Shell[M]) Publish(msg M) {
	*s.messages = append(*s.messages, msg)
}

// CaptureEvent marks the current event as consumed.
func (s *Shell[M]) CaptureEvent() {
	s.status = event.Captured
}

// IsEventCaptured reports whether the current event was consumed.
func (s *Shell[M]) IsEventCaptured() bool {
	return s.status == event.Captured
}

// EventStatus returns the capture status of the current event.
func (s *Shell[M]) EventStatus() event.Status {
	return s.status
}

// RequestRedraw asks for a redraw on the next frame.
func (s *Shell[M]) RequestRedraw() {
	s.redraw = RedrawNextFrame()
}

// RequestRedrawAt asks for a redraw, keeping the earliest request.
func (s *Shell[M]) RequestRedrawAt(r RedrawRequest) {
	s.redraw = s.redraw.Min(r)
}

// RedrawRequest returns the earliest redraw requested so far.
func (s *Shell[M]) RedrawRequest() RedrawRequest {
	return s.redraw
}

// RequestInputMethod asks the platform to show an input method.
func (s *Shell[M]) RequestInputMethod(im InputMethod) {
	s.inputMethod.Merge(im)
}

// InputMethod returns the input method request.
func (s *Shell[M]) InputMethod() InputMethod {
	return s.inputMethod
}

// InvalidateLayout marks the layout as stale, forcing a relayout before the
// next event is processed.
func (s *Shell[M]) InvalidateLayout() {
	s.layoutInvalid = true
}

// IsLayoutInvalid reports whether the layout was invalidated.
func (s *Shell[M]) IsLayoutInvalid() bool {
	return s.layoutInvalid
}

// RevalidateLayout calls f and clears the flag if the layout was invalidated.
func (s *Shell[M]) RevalidateLayout(f func()) {
	if s.layoutInvalid {
		s.layoutInvalid = false
		f()
	}
}

// InvalidateWidgets marks the widget tree as outdated, forcing the
// application to rebuild it even without messages.
func (s *Shell[M]) InvalidateWidgets() {
	s.widgetsInvalid = true
}

// AreWidgetsInvalid reports whether the widgets were invalidated.
func (s *Shell[M]) AreWidgetsInvalid() bool {
	return s.widgetsInvalid
}

// IsEmpty reports whether no messages are queued.
func (s *Shell[M]) IsEmpty() bool {
	return len(*s.messages) == 0
}

// MergeShell merges the effects of src into dst and translates its messages
// with f, preserving their order. Flags merge by disjunction, redraw requests
// by taking the earliest, and the first enabled input method wins.
func MergeShell[A, B any](dst *Shell[B], src *Shell[A], f func(A) B) {
	for _, msg := range *src.messages {
		dst.Publish(f(msg))
	}
	*src.messages = (*src.messages)[:0]
	MergeEffects(dst, src)
}

// MergeEffects merges the effects of src into dst without touching messages.
func MergeEffects[A, B any](dst *Shell[B], src *Shell[A]) {
	dst.layoutInvalid = dst.layoutInvalid || src.layoutInvalid
	dst.widgetsInvalid = dst.widgetsInvalid || src.widgetsInvalid
	dst.redraw = dst.redraw.Min(src.redraw)
	dst.status = dst.status.Merge(src.status)
	dst.inputMethod.Merge(src.inputMethod)
}
