package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/overlay"
)

// Row lays out its children horizontally.
type Row[M any] struct {
	Items   []core.Widget[M]
	Spacing float64
	Padding geometry.Padding
	Width   layout.Length
	Height  layout.Length
	// Align positions children vertically.
	Align layout.Alignment
}

// RowOf creates a row of children.
func RowOf[M any](children ...core.Widget[M]) Row[M] {
	return Row[M]{Items: children}
}

// WithSpacing returns a copy with the given gap between children.
func (r Row[M]) WithSpacing(spacing float64) Row[M] {
	r.Spacing = spacing
	return r
}

// WithPadding returns a copy with the given padding.
func (r Row[M]) WithPadding(p geometry.Padding) Row[M] {
	r.Padding = p
	return r
}

// WithAlign returns a copy with the given cross-axis alignment.
func (r Row[M]) WithAlign(a layout.Alignment) Row[M] {
	r.Align = a
	return r
}

// Push returns a copy with child appended.
func (r Row[M]) Push(child core.Widget[M]) Row[M] {
	r.Items = append(r.Items[:len(r.Items):len(r.Items)], child)
	return r
}

func (r Row[M]) flex() flex[M] {
	return newFlex(r.Items, layout.Flex{
		Axis: layout.Horizontal, Width: r.Width, Height: r.Height,
		Padding: r.Padding, Spacing: r.Spacing, Align: r.Align,
	})
}

func (r Row[M]) Size() layout.Sizing   { return r.flex().Size() }
func (r Row[M]) Tag() core.Tag         { return core.Stateless() }
func (r Row[M]) State() core.State     { return core.None }
func (r Row[M]) Children() []core.Tree { return core.ChildTrees(r.Items) }
func (r Row[M]) Diff(tree *core.Tree)  { core.DiffChildren(tree, r.Items) }

func (r Row[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	return r.flex().Layout(tree, renderer, limits)
}

func (r Row[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	updateChildren(r.Items, tree, ev, l, cursor, renderer, clipboard, shell, viewport)
}

func (r Row[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	drawChildren(r.Items, tree, renderer, style, l, cursor, viewport)
}

func (r Row[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	return childrenInteraction(r.Items, tree, l, cursor, viewport, renderer)
}

func (r Row[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	return overlay.FromChildren(r.Items, tree, l, renderer, translation)
}

// Column lays out its children vertically.
type Column[M any] struct {
	Items   []core.Widget[M]
	Spacing float64
	Padding geometry.Padding
	Width   layout.Length
	Height  layout.Length
	// Align positions children horizontally.
	Align layout.Alignment
}

// ColumnOf creates a column of children.
func ColumnOf[M any](children ...core.Widget[M]) Column[M] {
	return Column[M]{Items: children}
}

// WithSpacing returns a copy with the given gap between children.
func (c Column[M]) WithSpacing(spacing float64) Column[M] {
	c.Spacing = spacing
	return c
}

// WithPadding returns a copy with the given padding.
func (c Column[M]) WithPadding(p geometry.Padding) Column[M] {
	c.Padding = p
	return c
}

// WithAlign returns a copy with the given cross-axis alignment.
func (c Column[M]) WithAlign(a layout.Alignment) Column[M] {
	c.Align = a
	return c
}

// WithWidth returns a copy with the given width.
func (c Column[M]) WithWidth(w layout.Length) Column[M] {
	c.Width = w
	return c
}

// Push returns a copy with child appended.
func (c Column[M]) Push(child core.Widget[M]) Column[M] {
	c.Items = append(c.Items[:len(c.Items):len(c.Items)], child)
	return c
}

func (c Column[M]) flex() flex[M] {
	return newFlex(c.Items, layout.Flex{
		Axis: layout.Vertical, Width: c.Width, Height: c.Height,
		Padding: c.Padding, Spacing: c.Spacing, Align: c.Align,
	})
}

func (c Column[M]) Size() layout.Sizing   { return c.flex().Size() }
func (c Column[M]) Tag() core.Tag         { return core.Stateless() }
func (c Column[M]) State() core.State     { return core.None }
func (c Column[M]) Children() []core.Tree { return core.ChildTrees(c.Items) }
func (c Column[M]) Diff(tree *core.Tree)  { core.DiffChildren(tree, c.Items) }

func (c Column[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	return c.flex().Layout(tree, renderer, limits)
}

func (c Column[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	updateChildren(c.Items, tree, ev, l, cursor, renderer, clipboard, shell, viewport)
}

func (c Column[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	drawChildren(c.Items, tree, renderer, style, l, cursor, viewport)
}

func (c Column[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	return childrenInteraction(c.Items, tree, l, cursor, viewport, renderer)
}

func (c Column[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	return overlay.FromChildren(c.Items, tree, l, renderer, translation)
}

// flex is the layout shared by Row, Column, and KeyedColumn.
type flex[M any] struct {
	children []core.Widget[M]
	config   layout.Flex
}

// newFlex encloses the children: a shrink axis holding a fill child fills.
func newFlex[M any](children []core.Widget[M], config layout.Flex) flex[M] {
	for _, child := range children {
		s := child.Size()
		config.Width = config.Width.Enclose(s.Width)
		config.Height = config.Height.Enclose(s.Height)
	}
	return flex[M]{children: children, config: config}
}

func (f flex[M]) Size() layout.Sizing {
	return layout.Sizing{Width: f.config.Width, Height: f.config.Height}
}

func (f flex[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	return f.config.Resolve(limits, core.ChildItems(f.children, tree.Children, renderer))
}
