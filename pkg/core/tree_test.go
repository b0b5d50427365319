package core

import (
	"math/rand"
	"testing"

	"github.com/go-drift/pure/pkg/errors"
)

func shapeMatches[M any](t *testing.T, tree *Tree, w Widget[M], path string) {
	t.Helper()
	if tree.Tag != w.Tag() {
		t.Fatalf("%s: tag %s, widget tag %s", path, tree.Tag, w.Tag())
	}
	var children []Widget[M]
	switch v := w.(type) {
	case row[M]:
		children = v.children
	case fallback[M]:
		children = []Widget[M]{v.child}
	}
	if len(tree.Children) != len(children) {
		t.Fatalf("%s: %d child trees, %d child widgets", path, len(tree.Children), len(children))
	}
	for i, c := range children {
		shapeMatches(t, &tree.Children[i], c, path+"/"+string(rune('0'+i)))
	}
}

func randomWidget(rng *rand.Rand, depth int) Widget[int] {
	switch n := rng.Intn(4); {
	case depth > 3 || n == 0:
		return pad[int]{msg: 1}
	case n == 1:
		return label[int]{}
	case n == 2:
		return fallback[int]{child: randomWidget(rng, depth+1)}
	default:
		children := make([]Widget[int], rng.Intn(5))
		for i := range children {
			children[i] = randomWidget(rng, depth+1)
		}
		return row[int]{children: children}
	}
}

func TestDiffShapeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		w := randomWidget(rng, 0)
		tree := NewTree(w)
		shapeMatches(t, &tree, w, "root")
		for step := 0; step < 10; step++ {
			w = randomWidget(rng, 0)
			Diff(&tree, w)
			shapeMatches(t, &tree, w, "root")
		}
	}
}

func TestDiffPreservesState(t *testing.T) {
	build := func() Widget[int] {
		return row[int]{children: []Widget[int]{label[int]{}, pad[int]{msg: 1}}}
	}
	tree := NewTree(build())
	before := StateOf[counterState](&tree.Children[1])
	before.presses = 3

	Diff(&tree, build())

	after := StateOf[counterState](&tree.Children[1])
	if after != before {
		t.Fatal("expected the same state cell after diffing an equal-shaped tree")
	}
	if after.presses != 3 {
		t.Errorf("presses = %d, want 3", after.presses)
	}
}

func TestDiffResetsStateOnTypeChange(t *testing.T) {
	tree := NewTree(row[int]{children: []Widget[int]{pad[int]{msg: 1}}})
	StateOf[counterState](&tree.Children[0]).presses = 5

	Diff(&tree, row[int]{children: []Widget[int]{label[int]{}}})
	if got := StateOf[otherState](&tree.Children[0]).label; got != "fresh" {
		t.Errorf("label = %q, want fresh default", got)
	}

	Diff(&tree, row[int]{children: []Widget[int]{pad[int]{msg: 1}}})
	if got := StateOf[counterState](&tree.Children[0]).presses; got != 0 {
		t.Errorf("presses = %d, want fresh default 0", got)
	}
}

func TestDiffChildrenTruncatesAndAppends(t *testing.T) {
	tree := NewTree(row[int]{children: []Widget[int]{pad[int]{}, pad[int]{}, pad[int]{}}})
	first := StateOf[counterState](&tree.Children[0])

	Diff(&tree, row[int]{children: []Widget[int]{pad[int]{}}})
	if len(tree.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(tree.Children))
	}
	if StateOf[counterState](&tree.Children[0]) != first {
		t.Error("first child state should survive truncation")
	}

	Diff(&tree, row[int]{children: []Widget[int]{pad[int]{}, label[int]{}}})
	if len(tree.Children) != 2 || tree.Children[1].Tag != TagOf[otherState]() {
		t.Errorf("tree after append = %s", tree)
	}
}

func TestStateOfMismatchIsInvariantViolation(t *testing.T) {
	old := errors.SetHandler(quietHandler{})
	defer errors.SetHandler(old)

	tree := NewTree[int](label[int]{})
	defer func() {
		if _, ok := recover().(*errors.InvariantError); !ok {
			t.Fatal("expected an *errors.InvariantError panic")
		}
	}()
	StateOf[counterState](&tree)
}

func TestTagIdentity(t *testing.T) {
	if TagOf[counterState]() != TagOf[counterState]() {
		t.Error("tags of the same type must be equal")
	}
	if TagOf[counterState]() == TagOf[otherState]() {
		t.Error("tags of different types must differ")
	}
	if Stateless() == TagOf[counterState]() {
		t.Error("stateless tag must differ from stateful tags")
	}
}

func TestDiffKeyedRemovesMiddle(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}
	widgets := func(n int) []Widget[int] {
		ws := make([]Widget[int], n)
		for i := range ws {
			ws[i] = pad[int]{}
		}
		return ws
	}
	tree := EmptyTree()
	tree.Children = ChildTrees(widgets(5))
	cells := map[string]*counterState{}
	for i, k := range keys {
		s := StateOf[counterState](&tree.Children[i])
		s.presses = i + 1
		cells[k] = s
	}

	newKeys := []string{"a", "b", "d", "e"}
	stats := DiffKeyed(&tree, keys, newKeys, widgets(4))

	if stats != (KeyedStats{Reused: 4, Discarded: 1}) {
		t.Errorf("stats = %+v", stats)
	}
	for i, k := range newKeys {
		if got := StateOf[counterState](&tree.Children[i]); got != cells[k] {
			t.Errorf("key %s at %d lost its state cell", k, i)
		}
	}
}

func TestDiffKeyedReorderAndInsert(t *testing.T) {
	tree := EmptyTree()
	tree.Children = ChildTrees([]Widget[int]{pad[int]{}, label[int]{}})
	padCell := StateOf[counterState](&tree.Children[0])

	stats := DiffKeyed(&tree, []int{1, 2}, []int{3, 2, 1},
		[]Widget[int]{pad[int]{}, label[int]{}, pad[int]{}})

	if stats != (KeyedStats{Reused: 2, Created: 1}) {
		t.Errorf("stats = %+v", stats)
	}
	if StateOf[counterState](&tree.Children[2]) != padCell {
		t.Error("moved child should keep its state")
	}
	if StateOf[counterState](&tree.Children[0]) == padCell {
		t.Error("new key should get fresh state")
	}
}

func TestDiffKeyedTagMismatchResets(t *testing.T) {
	tree := EmptyTree()
	tree.Children = ChildTrees([]Widget[int]{pad[int]{}})
	DiffKeyed(&tree, []string{"x"}, []string{"x"}, []Widget[int]{label[int]{}})
	if tree.Children[0].Tag != TagOf[otherState]() {
		t.Error("same key with a new state type must reset the cell")
	}
}

type quietHandler struct{}

func (quietHandler) HandleError(*errors.EngineError)         {}
func (quietHandler) HandlePanic(*errors.PanicError)          {}
func (quietHandler) HandleInvariant(*errors.InvariantError) {}
