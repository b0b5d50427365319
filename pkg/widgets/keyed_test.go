package widgets_test

import (
	"testing"

	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/geometry"
	puretest "github.com/go-drift/pure/pkg/testing"
	"github.com/go-drift/pure/pkg/widgets"
)

func keyedTexts(keys ...string) widgets.KeyedColumn[string, string] {
	col := widgets.KeyedColumnOf[string, string]()
	for _, k := range keys {
		col = col.Push(k, widgets.TextOf[string](k))
	}
	return col
}

func TestKeyedColumn_DiffStats(t *testing.T) {
	tree := core.NewTree[string](keyedTexts("a", "b", "c", "d", "e"))

	stats := keyedTexts("a", "b", "d", "e").DiffStats(&tree)
	if want := (core.KeyedStats{Reused: 4, Discarded: 1}); stats != want {
		t.Errorf("remove: stats = %+v, want %+v", stats, want)
	}

	stats = keyedTexts("e", "x", "a", "b", "d").DiffStats(&tree)
	if want := (core.KeyedStats{Reused: 4, Created: 1}); stats != want {
		t.Errorf("insert and move: stats = %+v, want %+v", stats, want)
	}
	if got := len(tree.Children); got != 5 {
		t.Errorf("children = %d, want 5", got)
	}
}

func TestKeyedColumn_MismatchedKeysDiffByPosition(t *testing.T) {
	col := keyedTexts("a", "b")
	tree := core.NewTree[string](col)

	col.Keys = col.Keys[:1]
	if stats := col.DiffStats(&tree); stats != (core.KeyedStats{}) {
		t.Errorf("stats = %+v, want zero", stats)
	}
	if got := len(tree.Children); got != 2 {
		t.Errorf("children = %d, want 2", got)
	}
}

var fruits = []string{"xenon", "yak"}

func combo(key string) core.Widget[string] {
	return widgets.ComboBoxOf(fruits, "", func(s string) string { return key + ":" + s }).WithPlaceholder(key)
}

// queryY returns where the typed query "x" is drawn inside a combo box.
func queryY(t *testing.T, tester *puretest.Tester[string]) float64 {
	t.Helper()
	ops := tester.Find(puretest.ByText("x"))
	if len(ops) != 1 {
		t.Fatalf("expected the query to be drawn once, got %d", len(ops))
	}
	return ops[0].Rect().Y
}

func TestKeyedColumn_StateFollowsKey(t *testing.T) {
	tester := puretest.NewTester[string](t)
	build := func(keys ...string) widgets.KeyedColumn[string, string] {
		col := widgets.KeyedColumnOf[string, string]()
		for _, k := range keys {
			col = col.Push(k, combo(k))
		}
		return col
	}
	tester.Mount(build("a", "b", "c"))

	// Focus the second box and type into it.
	tester.Click(geometry.Point{X: 100, Y: 36})
	tester.Type("x")
	if got := queryY(t, tester); got != 28 {
		t.Fatalf("query drawn at y=%v, want 28", got)
	}

	tester.Rebuild(build("b", "c"))
	if got := queryY(t, tester); got != 4 {
		t.Errorf("after removing the first row the query is at y=%v, want 4", got)
	}
}

func TestColumn_StateFollowsPosition(t *testing.T) {
	tester := puretest.NewTester[string](t)
	tester.Mount(widgets.ColumnOf(combo("a"), combo("b"), combo("c")))

	tester.Click(geometry.Point{X: 100, Y: 36})
	tester.Type("x")

	tester.Rebuild(widgets.ColumnOf(combo("b"), combo("c")))
	if got := queryY(t, tester); got != 28 {
		t.Errorf("positional state: query at y=%v, want 28", got)
	}
}
