package core

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

func TestRedrawRequestMin(t *testing.T) {
	now := time.Unix(1000, 0)
	early, late := RedrawAt(now), RedrawAt(now.Add(time.Second))
	tests := []struct {
		name string
		a, b RedrawRequest
		want RedrawRequest
	}{
		{"wait loses", RedrawWait(), late, late},
		{"wait leaves untouched", early, RedrawWait(), early},
		{"earlier instant wins", late, early, early},
		{"next frame wins", early, RedrawNextFrame(), RedrawNextFrame()},
		{"next frame stays", RedrawNextFrame(), early, RedrawNextFrame()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Min(tt.b); got != tt.want {
				t.Errorf("Min = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeShell(t *testing.T) {
	now := time.Unix(2000, 0)
	var parentMsgs []string
	parent := NewShell(&parentMsgs)
	parent.RequestRedrawAt(RedrawAt(now.Add(time.Minute)))

	var childMsgs []int
	child := NewShell(&childMsgs)
	child.Publish(1)
	child.Publish(2)
	child.Publish(3)
	child.CaptureEvent()
	child.InvalidateLayout()
	child.RequestRedrawAt(RedrawAt(now))
	child.RequestInputMethod(InputMethod{Enabled: true, Position: geometry.Point{X: 4}})

	MergeShell(parent, child, strconv.Itoa)

	if diff := cmp.Diff([]string{"1", "2", "3"}, parentMsgs); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if len(childMsgs) != 0 {
		t.Error("child messages should be drained by the merge")
	}
	if !parent.IsEventCaptured() || !parent.IsLayoutInvalid() {
		t.Error("flags should merge by disjunction")
	}
	if at, ok := parent.RedrawRequest().At(); !ok || !at.Equal(now) {
		t.Errorf("redraw = %v, want earliest instant", parent.RedrawRequest())
	}
	if !parent.InputMethod().Enabled {
		t.Error("input method request should propagate")
	}
}

func TestMergeShellWaitKeepsParentRedraw(t *testing.T) {
	var a []int
	parent := NewShell(&a)
	parent.RequestRedraw()
	var b []int
	MergeShell(parent, NewShell(&b), func(i int) int { return i })
	if !parent.RedrawRequest().IsNextFrame() {
		t.Errorf("redraw = %v, want next_frame", parent.RedrawRequest())
	}
	if parent.IsEventCaptured() || parent.IsLayoutInvalid() || parent.AreWidgetsInvalid() {
		t.Error("an empty child shell must not set parent flags")
	}
}

func TestNestedShellSeedsCapture(t *testing.T) {
	var outer []string
	var inner []int
	parent := NewShell(&outer)
	if NestedShell(parent, &inner).IsEventCaptured() {
		t.Fatal("child of an ignoring parent starts captured")
	}

	parent.CaptureEvent()
	child := NestedShell(parent, &inner)
	if !child.IsEventCaptured() {
		t.Error("child does not see the parent's capture")
	}
	if child.IsLayoutInvalid() || child.RedrawRequest() != RedrawWait() {
		t.Error("child inherited effects other than the capture status")
	}
}

func TestRevalidateLayout(t *testing.T) {
	var msgs []int
	s := NewShell(&msgs)
	calls := 0
	s.RevalidateLayout(func() { calls++ })
	s.InvalidateLayout()
	s.RevalidateLayout(func() { calls++ })
	if calls != 1 || s.IsLayoutInvalid() {
		t.Errorf("calls = %d, invalid = %v", calls, s.IsLayoutInvalid())
	}
}

type counterMsg int

const (
	increment counterMsg = iota
	decrement
)

type appMsg struct {
	second bool
	inner  counterMsg
}

func counter() Widget[counterMsg] {
	return row[counterMsg]{children: []Widget[counterMsg]{
		pad[counterMsg]{msg: increment, size: geometry.Size{Width: 20, Height: 20}},
		pad[counterMsg]{msg: decrement, size: geometry.Size{Width: 20, Height: 20}},
	}}
}

func dispatch[M any](w Widget[M], tree *Tree, ev event.Event, cursor event.Cursor) ([]M, *Shell[M]) {
	r := &fakeRenderer{}
	node := w.Layout(tree, r, layout.NewLimits(geometry.Size{}, geometry.Size{Width: 800, Height: 600}))
	var msgs []M
	shell := NewShell(&msgs)
	viewport := geometry.Rectangle{Width: 800, Height: 600}
	w.Update(tree, ev, layout.New(&node), cursor, r, NullClipboard{}, shell, viewport)
	return msgs, shell
}

func press(x, y float64) (event.Event, event.Cursor) {
	p := geometry.Point{X: x, Y: y}
	return event.Mouse{Kind: event.MousePressed, Button: event.ButtonLeft, Position: p}, event.CursorAt(p)
}

func TestMapTwoCounters(t *testing.T) {
	app := row[appMsg]{children: []Widget[appMsg]{
		Map(counter(), func(m counterMsg) appMsg { return appMsg{inner: m} }),
		Map(counter(), func(m counterMsg) appMsg { return appMsg{second: true, inner: m} }),
	}}
	tree := NewTree[appMsg](app)

	ev, cursor := press(5, 5)
	msgs, shell := dispatch[appMsg](app, &tree, ev, cursor)

	if diff := cmp.Diff([]appMsg{{inner: increment}}, msgs, cmp.AllowUnexported(appMsg{})); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if !shell.IsEventCaptured() {
		t.Error("the press should be captured")
	}

	ev, cursor = press(65, 5)
	msgs, _ = dispatch[appMsg](app, &tree, ev, cursor)
	if diff := cmp.Diff([]appMsg{{second: true, inner: decrement}}, msgs, cmp.AllowUnexported(appMsg{})); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestMapPreservesStructure(t *testing.T) {
	inner := counter()
	mapped := Map(inner, func(m counterMsg) string { return "x" })
	if mapped.Tag() != inner.Tag() {
		t.Error("Map must keep the tag")
	}
	a, b := NewTree(inner), NewTree(mapped)
	if a.String() != b.String() {
		t.Errorf("tree shapes differ: %s vs %s", a, b)
	}
	if mapped.Size() != inner.Size() {
		t.Error("Map must keep the size")
	}
}

func TestMapPreservesOrder(t *testing.T) {
	multi := fanout{msgs: []counterMsg{decrement, increment, decrement}}
	mapped := Map[counterMsg, string](multi, func(m counterMsg) string { return strconv.Itoa(int(m)) })
	tree := NewTree(mapped)
	ev, cursor := press(1, 1)
	msgs, _ := dispatch(mapped, &tree, ev, cursor)
	if diff := cmp.Diff([]string{"1", "0", "1"}, msgs); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCaptureStopsFallback(t *testing.T) {
	w := fallback[string]{
		child: row[string]{children: []Widget[string]{
			pad[string]{msg: "button", size: geometry.Size{Width: 10, Height: 10}},
		}},
		msg: "container",
	}
	tree := NewTree[string](w)

	ev, cursor := press(5, 5)
	msgs, _ := dispatch[string](w, &tree, ev, cursor)
	if diff := cmp.Diff([]string{"button"}, msgs); diff != "" {
		t.Errorf("captured press (-want +got):\n%s", diff)
	}

	ev, cursor = press(50, 50)
	msgs, _ = dispatch[string](w, &tree, ev, cursor)
	if diff := cmp.Diff([]string{"container"}, msgs); diff != "" {
		t.Errorf("uncaptured press (-want +got):\n%s", diff)
	}
}

func TestExplainDrawsEveryNode(t *testing.T) {
	w := Explain(counter(), graphics.ColorRed)
	tree := NewTree(w)
	r := &fakeRenderer{}
	node := w.Layout(&tree, r, layout.NoLimits)
	w.Draw(&tree, r, graphics.DefaultStyle, layout.New(&node), event.Unavailable, geometry.Rectangle{Width: 100, Height: 100})
	if len(r.quads) != 3 {
		t.Fatalf("quads = %d, want 3 (row and two pads)", len(r.quads))
	}
	for _, q := range r.quads {
		if q.Border.Width != 1 || q.Border.Color != graphics.ColorRed {
			t.Errorf("unexpected border %+v", q.Border)
		}
	}
	if r.quads[2].Bounds.X != 20 {
		t.Errorf("second pad border at x=%v, want 20", r.quads[2].Bounds.X)
	}
}

// fanout publishes several messages for any event.
type fanout struct {
	Base[counterMsg]
	msgs []counterMsg
}

func (fanout) Size() layout.Sizing { return layout.ShrinkBoth }

func (fanout) Layout(*Tree, graphics.Renderer, layout.Limits) layout.Node {
	return layout.NewNode(geometry.Size{Width: 1, Height: 1})
}

func (f fanout) Update(_ *Tree, _ event.Event, _ layout.Layout, _ event.Cursor,
	_ graphics.Renderer, _ Clipboard, shell *Shell[counterMsg], _ geometry.Rectangle) {
	for _, m := range f.msgs {
		shell.Publish(m)
	}
}

func (fanout) Draw(*Tree, graphics.Renderer, graphics.Style, layout.Layout, event.Cursor, geometry.Rectangle) {
}
