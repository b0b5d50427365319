package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/overlay"
)

// KeyedColumn is a column whose children are identified by key instead of
// position. Removing, inserting, or reordering children keeps the state of
// every child whose key survives.
type KeyedColumn[M any, K comparable] struct {
	Keys    []K
	Items   []core.Widget[M]
	Spacing float64
	Padding geometry.Padding
	Width   layout.Length
	Height  layout.Length
	Align   layout.Alignment
}

// KeyedColumnOf creates an empty keyed column.
func KeyedColumnOf[M any, K comparable]() KeyedColumn[M, K] {
	return KeyedColumn[M, K]{}
}

// Push returns a copy with child appended under key.
func (k KeyedColumn[M, K]) Push(key K, child core.Widget[M]) KeyedColumn[M, K] {
	k.Keys = append(k.Keys[:len(k.Keys):len(k.Keys)], key)
	k.Items = append(k.Items[:len(k.Items):len(k.Items)], child)
	return k
}

// WithSpacing returns a copy with the given gap between children.
func (k KeyedColumn[M, K]) WithSpacing(spacing float64) KeyedColumn[M, K] {
	k.Spacing = spacing
	return k
}

// keyedState remembers the keys the children were built with.
type keyedState[K comparable] struct {
	keys []K
}

func (k KeyedColumn[M, K]) flex() flex[M] {
	return newFlex(k.Items, layout.Flex{
		Axis: layout.Vertical, Width: k.Width, Height: k.Height,
		Padding: k.Padding, Spacing: k.Spacing, Align: k.Align,
	})
}

func (k KeyedColumn[M, K]) Size() layout.Sizing { return k.flex().Size() }
func (k KeyedColumn[M, K]) Tag() core.Tag       { return core.TagOf[keyedState[K]]() }

func (k KeyedColumn[M, K]) State() core.State {
	return core.NewState(keyedState[K]{keys: append([]K(nil), k.Keys...)})
}

func (k KeyedColumn[M, K]) Children() []core.Tree { return core.ChildTrees(k.Items) }

// Diff matches children by key.
func (k KeyedColumn[M, K]) Diff(tree *core.Tree) {
	k.DiffStats(tree)
}

// DiffStats reconciles tree like Diff and reports how many children were
// reused, created, and discarded.
func (k KeyedColumn[M, K]) DiffStats(tree *core.Tree) core.KeyedStats {
	if len(k.Keys) != len(k.Items) {
		core.DiffChildren(tree, k.Items)
		core.StateOf[keyedState[K]](tree).keys = nil
		return core.KeyedStats{}
	}
	st := core.StateOf[keyedState[K]](tree)
	stats := core.DiffKeyed(tree, st.keys, k.Keys, k.Items)
	st.keys = append(st.keys[:0:0], k.Keys...)
	return stats
}

func (k KeyedColumn[M, K]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	return k.flex().Layout(tree, renderer, limits)
}

func (k KeyedColumn[M, K]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	updateChildren(k.Items, tree, ev, l, cursor, renderer, clipboard, shell, viewport)
}

func (k KeyedColumn[M, K]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	drawChildren(k.Items, tree, renderer, style, l, cursor, viewport)
}

func (k KeyedColumn[M, K]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	return childrenInteraction(k.Items, tree, l, cursor, viewport, renderer)
}

func (k KeyedColumn[M, K]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	return overlay.FromChildren(k.Items, tree, l, renderer, translation)
}
