package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/layout"
	puretest "github.com/go-drift/pure/pkg/testing"
	"github.com/go-drift/pure/pkg/widgets"
)

func dialog(open bool) widgets.Modal[string] {
	underlay := widgets.ButtonOf(widgets.TextOf[string]("under")).WithOnPress("under")
	var content core.Widget[string]
	if open {
		content = widgets.ContainerOf[string](
			widgets.ButtonOf(widgets.TextOf[string]("ok")).WithOnPress("ok").WithSize(layout.Fill, layout.Fill),
		).WithSize(layout.Fixed(300), layout.Fixed(200))
	}
	return widgets.ModalOf[string](underlay, content).WithOnDismiss("dismiss")
}

func TestModal_ClickOutsideDismisses(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(dialog(true))

	tester.Click(geometry.Point{X: 10, Y: 10})
	if diff := cmp.Diff([]string{"dismiss"}, tester.TakeMessages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestModal_ContentReceivesClicks(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(dialog(true))

	ok := tester.Find(puretest.ByText("ok"))
	if len(ok) != 1 {
		t.Fatalf("expected the dialog to be drawn, got %d ok labels", len(ok))
	}
	tester.Click(geometry.Point{X: 400, Y: 300})
	if diff := cmp.Diff([]string{"ok"}, tester.TakeMessages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestModal_CentersContent(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(dialog(true))

	// The backdrop covers the window; the dialog's button fills the dialog.
	quads := tester.Find(puretest.ByOp("quad"))
	var found bool
	for _, q := range quads {
		if q.Rect() == (geometry.Rectangle{X: 250, Y: 200, Width: 300, Height: 200}) {
			found = true
		}
	}
	if !found {
		t.Errorf("no quad at the centered dialog bounds in %+v", quads)
	}
}

func TestModal_EscapeDismisses(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(dialog(true))

	if got := tester.Key(event.KeyEscape, 0); got != event.Captured {
		t.Errorf("escape status = %v, want captured", got)
	}
	if diff := cmp.Diff([]string{"dismiss"}, tester.TakeMessages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestModal_BlocksUnderlay(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(dialog(true))

	if got := tester.MoveTo(geometry.Point{X: 20, Y: 10}); got != event.Captured {
		t.Errorf("move status = %v, want captured", got)
	}
	if got := tester.Interaction(); got != event.InteractionIdle {
		t.Errorf("interaction over backdrop = %v, want idle", got)
	}
}

func TestModal_Hidden(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(dialog(false))

	if tester.Exists(puretest.ByText("ok")) {
		t.Error("hidden dialog was drawn")
	}
	tester.Click(geometry.Point{X: 10, Y: 10})
	if diff := cmp.Diff([]string{"under"}, tester.TakeMessages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestModal_ReopenKeepsUnderlayState(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(dialog(false))
	tester.Press(geometry.Point{X: 10, Y: 10})

	tester.Rebuild(dialog(true))
	tester.Rebuild(dialog(false))
	tester.Release(geometry.Point{X: 10, Y: 10})
	if diff := cmp.Diff([]string{"under"}, tester.TakeMessages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}
