package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

type recorder struct {
	ops []string
}

func (r *recorder) FillQuad(q graphics.Quad, _ graphics.Color) {}

func (r *recorder) FillText(t graphics.Text, _ geometry.Point, _ graphics.Color, _ geometry.Rectangle) {
	r.ops = append(r.ops, "text:"+t.Content)
}

func (r *recorder) DrawImage(graphics.Image, geometry.Rectangle) {}

func (r *recorder) WithLayer(_ geometry.Rectangle, draw func()) {
	r.ops = append(r.ops, "layer")
	draw()
}

func (r *recorder) WithTranslation(_ geometry.Vector, draw func()) { draw() }

func (r *recorder) MeasureText(string, float64) geometry.Size { return geometry.Size{} }

// panel is a rectangular overlay that captures presses over it.
type panel struct {
	core.OverlayBase[string]
	name   string
	bounds geometry.Rectangle
	index  float64
	child  *panel
	seen   *[]string
}

func (p panel) Layout(graphics.Renderer, geometry.Size) layout.Node {
	return layout.NewNode(p.bounds.Size()).MoveTo(p.bounds.Position())
}

func (p panel) Update(ev event.Event, l layout.Layout, cursor event.Cursor,
	_ graphics.Renderer, _ core.Clipboard, shell *core.Shell[string]) {
	if p.seen != nil {
		state := "hidden"
		if cursor.IsAvailable() {
			state = "visible"
		}
		*p.seen = append(*p.seen, p.name+":"+state)
	}
	m, ok := ev.(event.Mouse)
	if ok && m.IsPress(event.ButtonLeft) && !shell.IsEventCaptured() && cursor.IsOver(l.Bounds()) {
		shell.Publish(p.name)
		shell.CaptureEvent()
	}
}

func (p panel) Draw(r graphics.Renderer, _ graphics.Style, _ layout.Layout, cursor event.Cursor) {
	suffix := ""
	if !cursor.IsAvailable() {
		suffix = "(hidden)"
	}
	r.FillText(graphics.Text{Content: p.name + suffix}, geometry.Point{}, graphics.ColorBlack, geometry.Rectangle{})
}

func (p panel) MouseInteraction(layout.Layout, event.Cursor, graphics.Renderer) event.Interaction {
	return event.InteractionPointer
}

func (p panel) Overlay(layout.Layout, graphics.Renderer) core.Overlay[string] {
	if p.child == nil {
		return nil
	}
	return *p.child
}

func (p panel) Index() float64 { return p.index }

var screen = geometry.Size{Width: 800, Height: 600}

func run(o core.Overlay[string], ev event.Event, cursor event.Cursor) []string {
	r := &recorder{}
	nested := NewNested(o)
	node := nested.Layout(r, screen)
	var msgs []string
	shell := core.NewShell(&msgs)
	nested.Update(ev, layout.New(&node), cursor, r, core.NullClipboard{}, shell)
	return msgs
}

func pressAt(x, y float64) (event.Event, event.Cursor) {
	p := geometry.Point{X: x, Y: y}
	return event.Mouse{Kind: event.MousePressed, Button: event.ButtonLeft, Position: p}, event.CursorAt(p)
}

func TestGroupOrdersByIndex(t *testing.T) {
	low := panel{name: "low", bounds: geometry.Rectangle{Width: 100, Height: 100}, index: 1}
	high := panel{name: "high", bounds: geometry.Rectangle{X: 50, Y: 50, Width: 100, Height: 100}, index: 5}
	group := NewGroup[string](high, low)

	r := &recorder{}
	node := group.Layout(r, screen)
	group.Draw(r, graphics.DefaultStyle, layout.New(&node), event.CursorAt(geometry.Point{X: 75, Y: 75}))
	if diff := cmp.Diff([]string{"text:low(hidden)", "text:high"}, r.ops); diff != "" {
		t.Errorf("draw order (-want +got):\n%s", diff)
	}

	ev, cursor := pressAt(75, 75)
	if diff := cmp.Diff([]string{"high"}, run(group, ev, cursor)); diff != "" {
		t.Errorf("topmost should get first refusal (-want +got):\n%s", diff)
	}
	ev, cursor = pressAt(10, 10)
	if diff := cmp.Diff([]string{"low"}, run(group, ev, cursor)); diff != "" {
		t.Errorf("uncovered press (-want +got):\n%s", diff)
	}
}

func TestGroupCollapses(t *testing.T) {
	if NewGroup[string](nil, nil).Collapse() != nil {
		t.Error("empty group should collapse to nil")
	}
	only := panel{name: "only"}
	if _, ok := NewGroup[string](nil, only).Collapse().(panel); !ok {
		t.Error("single overlay should be returned unwrapped")
	}
	g := NewGroup[string](panel{index: 2}, panel{index: 7})
	if g.Index() != 7 || g.Len() != 2 {
		t.Errorf("Index = %v, Len = %d", g.Index(), g.Len())
	}
	var collapsed core.Overlay[string] = g.Collapse()
	if _, ok := collapsed.(*Group[string]); !ok {
		t.Errorf("two overlays should stay grouped, got %T", collapsed)
	}
}

func TestNestedDispatchesTopDown(t *testing.T) {
	var seen []string
	menu := &panel{name: "menu", bounds: geometry.Rectangle{X: 100, Y: 100, Width: 50, Height: 50}, seen: &seen}
	dialog := panel{name: "dialog", bounds: geometry.Rectangle{Width: 300, Height: 300}, child: menu, seen: &seen}

	ev, cursor := pressAt(110, 110)
	msgs := run(dialog, ev, cursor)
	if diff := cmp.Diff([]string{"menu"}, msgs); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"menu:visible"}, seen); diff != "" {
		t.Errorf("dialog must not see a captured event (-want +got):\n%s", diff)
	}

	seen = nil
	move := event.Mouse{Kind: event.MouseMoved, Position: geometry.Point{X: 110, Y: 110}}
	run(dialog, move, event.CursorAt(geometry.Point{X: 110, Y: 110}))
	if diff := cmp.Diff([]string{"menu:visible", "dialog:hidden"}, seen); diff != "" {
		t.Errorf("lower layer should see a hidden cursor (-want +got):\n%s", diff)
	}
}

func TestNestedDrawsBottomUpInLayers(t *testing.T) {
	menu := &panel{name: "menu", bounds: geometry.Rectangle{X: 100, Y: 100, Width: 50, Height: 50}}
	dialog := panel{name: "dialog", bounds: geometry.Rectangle{Width: 300, Height: 300}, child: menu}
	nested := NewNested[string](dialog)
	r := &recorder{}
	node := nested.Layout(r, screen)
	nested.Draw(r, graphics.DefaultStyle, layout.New(&node), event.CursorAt(geometry.Point{X: 120, Y: 120}))

	want := []string{"layer", "text:dialog(hidden)", "layer", "text:menu"}
	if diff := cmp.Diff(want, r.ops); diff != "" {
		t.Errorf("draw ops (-want +got):\n%s", diff)
	}
	if !nested.IsOver(layout.New(&node), r, geometry.Point{X: 120, Y: 120}) {
		t.Error("expected nested to be over the menu")
	}
	if got := nested.MouseInteraction(layout.New(&node), event.CursorAt(geometry.Point{X: 500, Y: 500}), r); got != event.InteractionNone {
		t.Errorf("interaction outside = %v", got)
	}
}

func TestMapOverlayTranslatesMessages(t *testing.T) {
	p := panel{name: "p", bounds: geometry.Rectangle{Width: 10, Height: 10}}
	mapped := core.MapOverlay[string, int](p, func(s string) int { return len(s) })
	r := &recorder{}
	node := mapped.Layout(r, screen)
	var msgs []int
	ev, cursor := pressAt(5, 5)
	mapped.Update(ev, layout.New(&node), cursor, r, core.NullClipboard{}, core.NewShell(&msgs))
	if diff := cmp.Diff([]int{1}, msgs); diff != "" {
		t.Errorf("mapped messages (-want +got):\n%s", diff)
	}
}
