package core

import (
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Widget is a disposable description of part of the interface producing
// messages of type M. Every method receives the widget's own state tree node;
// the layout passed to Update, Draw, MouseInteraction, and Overlay is the one
// Layout returned for that node during the same cycle.
type Widget[M any] interface {
	// Size returns the lengths the widget requests from its parent.
	Size() layout.Sizing
	// Tag names the type of the widget's state.
	Tag() Tag
	// State creates the default state.
	State() State
	// Children creates the default state trees of the widget's children.
	Children() []Tree
	// Diff reconciles the widget's own state tree node, whose tag already
	// matches, with the widget.
	Diff(tree *Tree)
	// Layout computes the widget's node under limits.
	Layout(tree *Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node
	// Update handles an event.
	Update(tree *Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
		renderer graphics.Renderer, clipboard Clipboard, shell *Shell[M], viewport geometry.Rectangle)
	// Draw paints the widget.
	Draw(tree *Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
		cursor event.Cursor, viewport geometry.Rectangle)
	// MouseInteraction returns the cursor icon the widget requests.
	MouseInteraction(tree *Tree, l layout.Layout, cursor event.Cursor,
		viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction
	// Overlay returns floating content to show above the tree, or nil.
	// Translation is the offset between the layout's coordinates and the
	// window, accumulated from scrolled ancestors.
	Overlay(tree *Tree, l layout.Layout, renderer graphics.Renderer, translation geometry.Vector) Overlay[M]
}

// Base provides the defaults of a stateless, childless widget that ignores
// events. Embed it and override what the widget needs.
type Base[M any] struct{}

// Tag returns the stateless tag.
func (Base[M]) Tag() Tag { return Stateless() }

// State returns no state.
func (Base[M]) State() State { return None }

// Children returns no children.
func (Base[M]) Children() []Tree { return nil }

// Diff drops any children the tree may have.
func (Base[M]) Diff(tree *Tree) { tree.Children = nil }

// Update ignores the event.
func (Base[M]) Update(*Tree, event.Event, layout.Layout, event.Cursor,
	graphics.Renderer, Clipboard, *Shell[M], geometry.Rectangle) {
}

// MouseInteraction requests no particular cursor.
func (Base[M]) MouseInteraction(*Tree, layout.Layout, event.Cursor,
	geometry.Rectangle, graphics.Renderer) event.Interaction {
	return event.InteractionNone
}

// Overlay returns no overlay.
func (Base[M]) Overlay(*Tree, layout.Layout, graphics.Renderer, geometry.Vector) Overlay[M] {
	return nil
}

// ChildItems adapts children and their trees into flex layout items.
func ChildItems[M any](children []Widget[M], trees []Tree, renderer graphics.Renderer) []layout.Item {
	items := make([]layout.Item, len(children))
	for i, child := range children {
		items[i] = childItem[M]{widget: child, tree: &trees[i], renderer: renderer}
	}
	return items
}

type childItem[M any] struct {
	widget   Widget[M]
	tree     *Tree
	renderer graphics.Renderer
}

func (c childItem[M]) Sizing() layout.Sizing { return c.widget.Size() }

func (c childItem[M]) Layout(limits layout.Limits) layout.Node {
	return c.widget.Layout(c.tree, c.renderer, limits)
}
