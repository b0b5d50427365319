package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/pure/pkg/animation"
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/widgets"
)

func TestNewTester_Defaults(t *testing.T) {
	tester := NewTester[string](t)

	if tester.size.Width != DefaultTestWidth || tester.size.Height != DefaultTestHeight {
		t.Errorf("expected default size %dx%d, got %v", DefaultTestWidth, DefaultTestHeight, tester.size)
	}
	if !animation.Now().Equal(Epoch) {
		t.Errorf("animation clock = %v, want fake epoch", animation.Now())
	}
}

func TestCleanupRestoresClock(t *testing.T) {
	tester := NewTester[string](t)
	tester.Cleanup()
	if animation.Now().Equal(Epoch) {
		t.Error("expected real clock after Cleanup")
	}
	tester.Cleanup()
}

func TestMount_DrawsText(t *testing.T) {
	tester := NewTester[string](t)
	tester.Mount(widgets.TextOf[string]("hello"))

	found := tester.Find(ByText("hello"))
	if len(found) != 1 {
		t.Fatalf("found %d text ops, want 1", len(found))
	}
	if got := found[0].Rect(); got != (geometry.Rectangle{Width: 40, Height: 16}) {
		t.Errorf("text bounds = %v", got)
	}
}

func TestTap_PublishesAndNotFound(t *testing.T) {
	tester := NewTester[string](t)
	tester.Mount(widgets.ButtonOf[string](widgets.TextOf[string]("go")).WithOnPress("pressed"))

	if err := tester.Tap(ByText("missing")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Tap(missing) = %v, want ErrNotFound", err)
	}
	if err := tester.Tap(ByText("go")); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	got := tester.TakeMessages()
	if len(got) != 1 || got[0] != "pressed" {
		t.Errorf("messages = %v, want [pressed]", got)
	}
	if len(tester.Messages()) != 0 {
		t.Error("TakeMessages did not clear")
	}
}

func TestRebuild_KeepsState(t *testing.T) {
	tester := NewTester[string](t)
	view := widgets.ScrollableOf[string](widgets.SpaceOf[string](layout.Fixed(100), layout.Fixed(2000)))
	tester.Mount(view)
	tester.Scroll(geometry.Point{X: 10, Y: 10}, -300)

	// The scrollbar sits at offset * viewport / content.
	thumbY := func() float64 {
		quads := tester.Find(ByOp("quad"))
		if len(quads) != 1 {
			t.Fatalf("found %d quads, want the scrollbar only", len(quads))
		}
		return quads[0].Rect().Y
	}
	if got := thumbY(); got != 90 {
		t.Fatalf("thumb at %v after scroll, want 90", got)
	}
	tester.Rebuild(view)
	if got := thumbY(); got != 90 {
		t.Errorf("thumb at %v after rebuild, want 90", got)
	}
}

func TestAdvance_MovesClock(t *testing.T) {
	tester := NewTester[string](t)
	tester.Mount(widgets.TextOf[string]("tick"))
	tester.Advance(250 * time.Millisecond)
	if got := tester.Clock().Now().Sub(Epoch); got != 250*time.Millisecond {
		t.Errorf("clock advanced %v", got)
	}
}

func TestClipboard_IsShared(t *testing.T) {
	tester := NewTester[string](t)
	tester.Clipboard().Write(core.ClipboardStandard, "x")
	if got, ok := tester.Clipboard().Read(core.ClipboardStandard); !ok || got != "x" {
		t.Errorf("clipboard = %q, %v", got, ok)
	}
}

func TestFakeClock_AdvanceAndSet(t *testing.T) {
	clk := NewFakeClock()
	if got := clk.Advance(100 * time.Millisecond).Sub(Epoch); got != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", got)
	}
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}
