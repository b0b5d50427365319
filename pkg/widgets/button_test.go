package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/layout"
	puretest "github.com/go-drift/pure/pkg/testing"
	"github.com/go-drift/pure/pkg/widgets"
)

// --- Button tests ---

func TestButton_Tap(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.ButtonOf(widgets.TextOf[string]("Click")).WithOnPress("clicked"))

	if err := tester.Tap(puretest.ByText("Click")); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	if diff := cmp.Diff([]string{"clicked"}, tester.TakeMessages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestButton_ReleaseOutsideCancels(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.ButtonOf(widgets.TextOf[string]("Click")).WithOnPress("clicked"))

	if got := tester.Press(geometry.Point{X: 5, Y: 5}); got != event.Captured {
		t.Errorf("press status = %v, want captured", got)
	}
	tester.Release(geometry.Point{X: 500, Y: 500})
	if got := tester.TakeMessages(); len(got) != 0 {
		t.Errorf("expected no messages, got %v", got)
	}
}

func TestButton_Disabled(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.ButtonOf(widgets.TextOf[string]("Click")))

	if err := tester.Tap(puretest.ByText("Click")); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	if got := tester.TakeMessages(); len(got) != 0 {
		t.Errorf("disabled button published %v", got)
	}
	if got := tester.Interaction(); got != event.InteractionNotAllowed {
		t.Errorf("interaction = %v, want not-allowed", got)
	}
}

func TestButton_CapturesBeforeMouseArea(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.MouseAreaOf[string](
		widgets.ColumnOf[string](
			widgets.ButtonOf(widgets.TextOf[string]("inner")).WithOnPress("button"),
			widgets.SpaceOf[string](layout.Fixed(100), layout.Fixed(50)),
		),
	).WithOnPress("area"))

	if err := tester.Tap(puretest.ByText("inner")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"button"}, tester.TakeMessages()); diff != "" {
		t.Errorf("button tap (-want +got):\n%s", diff)
	}

	// Below the button only the mouse area reacts.
	tester.Click(geometry.Point{X: 10, Y: 60})
	if diff := cmp.Diff([]string{"area"}, tester.TakeMessages()); diff != "" {
		t.Errorf("area tap (-want +got):\n%s", diff)
	}
}

func TestMouseArea_EnterExit(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.MouseAreaOf[string](widgets.SpaceOf[string](layout.Fixed(50), layout.Fixed(50))).
		WithOnEnter("enter").
		WithOnExit("exit"))

	tester.MoveTo(geometry.Point{X: 10, Y: 10})
	tester.MoveTo(geometry.Point{X: 20, Y: 20})
	tester.MoveTo(geometry.Point{X: 100, Y: 100})
	if diff := cmp.Diff([]string{"enter", "exit"}, tester.TakeMessages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}
