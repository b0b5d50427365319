package core

import (
	"reflect"

	"github.com/go-drift/pure/pkg/errors"
)

// Tag identifies the concrete type of a state cell. Two tags are equal only
// if they were derived from the same Go type.
type Tag struct {
	t reflect.Type
}

// TagOf returns the tag of state type T.
func TagOf[T any]() Tag {
	return Tag{t: reflect.TypeFor[T]()}
}

type stateless struct{}

// Stateless is the tag of widgets that keep no state.
func Stateless() Tag {
	return TagOf[stateless]()
}

// String returns the name of the tagged type.
func (t Tag) String() string {
	if t.t == nil {
		return "<none>"
	}
	return t.t.String()
}

// State is a type-erased pointer to a widget's durable state.
type State struct {
	value any
}

// None is the state of stateless widgets.
var None = State{}

// NewState boxes v into a fresh state cell.
func NewState[T any](v T) State {
	return State{value: &v}
}

// StateFrom wraps an existing pointer as a state cell.
func StateFrom[T any](p *T) State {
	return State{value: p}
}

// IsNone reports whether the cell holds no state.
func (s State) IsNone() bool {
	return s.value == nil
}

// Tree is the durable state of a widget and its descendants. After a diff
// its shape mirrors the widget tree it was diffed against.
type Tree struct {
	Tag      Tag
	State    State
	Children []Tree
}

// EmptyTree returns a stateless, childless tree.
func EmptyTree() Tree {
	return Tree{Tag: Stateless()}
}

// NewTree creates the default state tree of widget.
func NewTree[M any](widget Widget[M]) Tree {
	return Tree{
		Tag:      widget.Tag(),
		State:    widget.State(),
		Children: widget.Children(),
	}
}

// StateOf returns the state of tree as *T. A cell holding another type means
// the tree and widget disagree, which diffing never allows; it panics with an
// *errors.InvariantError.
func StateOf[T any](tree *Tree) *T {
	p, ok := tree.State.value.(*T)
	if !ok {
		errors.Invariant("core.StateOf",
			"state cell tagged %s holds %T, want *%s", tree.Tag, tree.State.value, reflect.TypeFor[T]())
	}
	return p
}

// Diff reconciles tree with widget. A matching tag lets the widget reconcile
// its own state and children; any other tag discards the subtree and creates
// fresh state.
func Diff[M any](tree *Tree, widget Widget[M]) {
	if tree.Tag == widget.Tag() {
		widget.Diff(tree)
		return
	}
	*tree = NewTree(widget)
}

// DiffChildren reconciles tree's children with widgets by position.
func DiffChildren[M any](tree *Tree, widgets []Widget[M]) {
	DiffChildrenCustom(tree, widgets,
		func(t *Tree, w Widget[M]) { Diff(t, w) },
		func(w Widget[M]) Tree { return NewTree(w) },
	)
}

// DiffChildrenCustom reconciles tree's children with items by position using
// the supplied diff and constructor. Children beyond len(items) are dropped
// and missing ones are created.
func DiffChildrenCustom[T any](tree *Tree, items []T, diff func(*Tree, T), create func(T) Tree) {
	if len(tree.Children) > len(items) {
		clear(tree.Children[len(items):])
		tree.Children = tree.Children[:len(items)]
	}
	for i := range tree.Children {
		diff(&tree.Children[i], items[i])
	}
	for _, item := range items[len(tree.Children):] {
		tree.Children = append(tree.Children, create(item))
	}
}

// ChildTrees creates the default state trees of widgets.
func ChildTrees[M any](widgets []Widget[M]) []Tree {
	trees := make([]Tree, len(widgets))
	for i, w := range widgets {
		trees[i] = NewTree(w)
	}
	return trees
}

// String renders the tree shape for debugging.
func (t Tree) String() string {
	s := t.Tag.String()
	if len(t.Children) == 0 {
		return s
	}
	s += "["
	for i, c := range t.Children {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s + "]"
}
