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

// rows builds a scrollable list of n clickable rows, each 20 tall, in a
// 100 tall viewport.
func rows(n int) widgets.Scrollable[int] {
	items := make([]core.Widget[int], n)
	for i := range items {
		items[i] = widgets.MouseAreaOf[int](widgets.SpaceOf[int](layout.Fill, layout.Fixed(20))).WithOnPress(i)
	}
	s := widgets.ScrollableOf[int](widgets.Column[int]{Items: items})
	s.Height = layout.Fixed(100)
	return s
}

func TestScrollable_ClickAfterScroll(t *testing.T) {
	tester := puretest.NewTester[int](t)
	tester.Mount(rows(30))

	if got := tester.Scroll(geometry.Point{X: 10, Y: 10}, -50); got != event.Captured {
		t.Errorf("scroll status = %v, want captured", got)
	}
	tester.Click(geometry.Point{X: 10, Y: 10})
	if diff := cmp.Diff([]int{3}, tester.TakeMessages()); diff != "" {
		t.Errorf("after scrolling 50 (-want +got):\n%s", diff)
	}

	tester.Scroll(geometry.Point{X: 10, Y: 10}, -10000)
	tester.Click(geometry.Point{X: 10, Y: 95})
	if diff := cmp.Diff([]int{29}, tester.TakeMessages()); diff != "" {
		t.Errorf("after scrolling to the end (-want +got):\n%s", diff)
	}
}

func TestScrollable_AtLimitIgnoresWheel(t *testing.T) {
	tester := puretest.NewTester[int](t)
	tester.Mount(rows(30))

	if got := tester.Scroll(geometry.Point{X: 10, Y: 10}, 40); got != event.Ignored {
		t.Errorf("scrolling past the top = %v, want ignored", got)
	}
}

func TestScrollable_ContentOutsideViewportIsUnreachable(t *testing.T) {
	tester := puretest.NewTester[int](t)
	tester.Mount(rows(30))

	tester.Click(geometry.Point{X: 10, Y: 150})
	if got := tester.TakeMessages(); len(got) != 0 {
		t.Errorf("click below the viewport published %v", got)
	}
}

func TestScrollable_OffsetSurvivesRebuild(t *testing.T) {
	tester := puretest.NewTester[int](t)
	tester.Mount(rows(30))
	tester.Scroll(geometry.Point{X: 10, Y: 10}, -10000)

	tester.Rebuild(rows(30))
	tester.Click(geometry.Point{X: 10, Y: 10})
	if diff := cmp.Diff([]int{25}, tester.TakeMessages()); diff != "" {
		t.Errorf("after rebuild (-want +got):\n%s", diff)
	}

	// Shrinking the content clamps the offset.
	tester.Rebuild(rows(6))
	tester.Click(geometry.Point{X: 10, Y: 10})
	if diff := cmp.Diff([]int{1}, tester.TakeMessages()); diff != "" {
		t.Errorf("after shrinking (-want +got):\n%s", diff)
	}
}

func TestScrollable_ClipsContent(t *testing.T) {
	tester := puretest.NewTester[int](t)
	tester.Mount(widgets.Scrollable[int]{
		Content: widgets.ColumnOf[int](
			widgets.SpaceOf[int](layout.Fill, layout.Fixed(90)),
			widgets.TextOf[int]("visible"),
			widgets.SpaceOf[int](layout.Fill, layout.Fixed(100)),
			widgets.TextOf[int]("hidden"),
		),
		Width:  layout.Fill,
		Height: layout.Fixed(100),
	})

	if !tester.Exists(puretest.ByText("visible")) {
		t.Error("expected the partly visible text to be drawn")
	}
	if tester.Exists(puretest.ByText("hidden")) {
		t.Error("expected the text below the viewport to be clipped")
	}
	if got := len(tester.Find(puretest.ByOp("layer"))); got != 1 {
		t.Errorf("layers = %d, want 1", got)
	}
}
