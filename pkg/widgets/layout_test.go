package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
	puretest "github.com/go-drift/pure/pkg/testing"
	"github.com/go-drift/pure/pkg/widgets"
)

func childBounds(l layout.Layout) []geometry.Rectangle {
	var out []geometry.Rectangle
	for _, c := range l.Children() {
		out = append(out, c.Bounds())
	}
	return out
}

func TestRow_FillPortions(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.Row[string]{
		Width: layout.Fixed(230),
		Items: []core.Widget[string]{
			widgets.SpaceOf[string](layout.Fixed(50), layout.Fixed(10)),
			widgets.SpaceOf[string](layout.FillPortion(1), layout.Fixed(10)),
			widgets.SpaceOf[string](layout.FillPortion(2), layout.Fixed(10)),
		},
	})

	want := []geometry.Rectangle{
		{X: 0, Y: 0, Width: 50, Height: 10},
		{X: 50, Y: 0, Width: 60, Height: 10},
		{X: 110, Y: 0, Width: 120, Height: 10},
	}
	if diff := cmp.Diff(want, childBounds(tester.Interface().Layout())); diff != "" {
		t.Errorf("child bounds (-want +got):\n%s", diff)
	}
}

func TestColumn_SpacingAndPadding(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.ColumnOf[string](
		widgets.TextOf[string]("one"),
		widgets.TextOf[string]("three"),
	).WithSpacing(10).WithPadding(geometry.PaddingAll(5)))

	root := tester.Interface().Layout()
	if got, want := root.Bounds().Size(), (geometry.Size{Width: 50, Height: 52}); got != want {
		t.Errorf("column size = %v, want %v", got, want)
	}
	want := []geometry.Rectangle{
		{X: 5, Y: 5, Width: 24, Height: 16},
		{X: 5, Y: 31, Width: 40, Height: 16},
	}
	if diff := cmp.Diff(want, childBounds(root)); diff != "" {
		t.Errorf("child bounds (-want +got):\n%s", diff)
	}
}

func TestColumn_EnclosesFillChild(t *testing.T) {
	col := widgets.ColumnOf[string](widgets.SpaceOf[string](layout.Fill, layout.Fixed(10)))
	if !col.Size().Width.IsFill() {
		t.Errorf("column width = %v, want fill", col.Size().Width)
	}
	if !col.Size().Height.IsShrink() {
		t.Errorf("column height = %v, want shrink", col.Size().Height)
	}
}

func TestContainer_Centered(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.ContainerOf[string](
		widgets.SpaceOf[string](layout.Fixed(20), layout.Fixed(10)),
	).Centered().WithSize(layout.Fixed(100), layout.Fixed(50)))

	root := tester.Interface().Layout()
	if got, want := root.Bounds(), (geometry.Rectangle{Width: 100, Height: 50}); got != want {
		t.Errorf("container bounds = %v, want %v", got, want)
	}
	if got, want := root.Child(0).Bounds(), (geometry.Rectangle{X: 40, Y: 20, Width: 20, Height: 10}); got != want {
		t.Errorf("child bounds = %v, want %v", got, want)
	}
}

func TestContainer_DrawsBackground(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.ContainerOf[string](widgets.TextOf[string]("hi")).
		WithPadding(geometry.PaddingAll(2)).
		WithBackground(graphics.ColorWhite))

	quads := tester.Find(puretest.ByOp("quad"))
	if len(quads) != 1 {
		t.Fatalf("expected 1 quad, got %d", len(quads))
	}
	if got, want := quads[0].Rect(), (geometry.Rectangle{Width: 20, Height: 20}); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}
	text := tester.Find(puretest.ByText("hi"))
	if len(text) != 1 || text[0].Rect().Position() != (geometry.Point{X: 2, Y: 2}) {
		t.Errorf("text ops = %+v, want one at (2, 2)", text)
	}
}

func TestTable_ColumnsAndRows(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.TableOf(
		widgets.TableColumn[string]{Header: widgets.TextOf[string]("Name"), Width: layout.Shrink},
		widgets.TableColumn[string]{Header: widgets.TextOf[string]("Qty"), Width: layout.Fill},
	).WithRow(widgets.TextOf[string]("apple"), widgets.TextOf[string]("3")))

	pos := func(content string) geometry.Point {
		t.Helper()
		ops := tester.Find(puretest.ByText(content))
		if len(ops) != 1 {
			t.Fatalf("expected one %q, got %d", content, len(ops))
		}
		return ops[0].Rect().Position()
	}
	want := map[string]geometry.Point{
		"Name":  {X: 0, Y: 0},
		"Qty":   {X: 48, Y: 0},
		"apple": {X: 0, Y: 20},
		"3":     {X: 48, Y: 20},
	}
	for content, p := range want {
		if got := pos(content); got != p {
			t.Errorf("%q at %v, want %v", content, got, p)
		}
	}
}

func TestTable_ShortRowsArePadded(t *testing.T) {
	table := widgets.TableOf(
		widgets.TableColumn[string]{Width: layout.Shrink},
		widgets.TableColumn[string]{Width: layout.Shrink},
	).WithRow(widgets.TextOf[string]("only"))

	if got := len(table.Children()); got != 2 {
		t.Errorf("children = %d, want 2", got)
	}
}
