package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Container wraps a single child with padding, alignment, and an optional
// background and border.
type Container[M any] struct {
	Child   core.Widget[M]
	Padding geometry.Padding
	Width   layout.Length
	Height  layout.Length
	// AlignX and AlignY position the child inside the content area.
	AlignX layout.Alignment
	AlignY layout.Alignment
	// Background fills the container bounds when not transparent.
	Background graphics.Color
	Border     graphics.Border
}

// ContainerOf wraps child in a container that shrinks to fit it.
func ContainerOf[M any](child core.Widget[M]) Container[M] {
	return Container[M]{Child: child}
}

// WithPadding returns a copy with the given padding.
func (c Container[M]) WithPadding(p geometry.Padding) Container[M] {
	c.Padding = p
	return c
}

// WithSize returns a copy with the given lengths.
func (c Container[M]) WithSize(width, height layout.Length) Container[M] {
	c.Width = width
	c.Height = height
	return c
}

// Centered returns a copy that fills its parent and centers the child.
func (c Container[M]) Centered() Container[M] {
	c.Width, c.Height = layout.Fill, layout.Fill
	c.AlignX, c.AlignY = layout.Center, layout.Center
	return c
}

// WithBackground returns a copy with the given background color.
func (c Container[M]) WithBackground(color graphics.Color) Container[M] {
	c.Background = color
	return c
}

// WithBorder returns a copy with the given border.
func (c Container[M]) WithBorder(b graphics.Border) Container[M] {
	c.Border = b
	return c
}

func (c Container[M]) Size() layout.Sizing {
	return layout.Sizing{Width: c.Width, Height: c.Height}
}

func (c Container[M]) Tag() core.Tag     { return core.Stateless() }
func (c Container[M]) State() core.State { return core.None }

func (c Container[M]) Children() []core.Tree {
	return []core.Tree{core.NewTree(c.Child)}
}

func (c Container[M]) Diff(tree *core.Tree) {
	core.DiffChildren(tree, []core.Widget[M]{c.Child})
}

func (c Container[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(c.Width).Height(c.Height)
	child := c.Child.Layout(&tree.Children[0], renderer, limits.Loose().ShrinkPadding(c.Padding))
	size := limits.Resolve(c.Width, c.Height, child.Size().Expand(c.Padding))

	content := geometry.Size{
		Width:  max(size.Width-c.Padding.Horizontal(), 0),
		Height: max(size.Height-c.Padding.Vertical(), 0),
	}
	child = child.
		MoveTo(geometry.Point{X: c.Padding.Left, Y: c.Padding.Top}).
		Align(c.AlignX, c.AlignY, content)
	return layout.WithChildren(size, []layout.Node{child})
}

func (c Container[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	c.Child.Update(&tree.Children[0], ev, l.Child(0), cursor, renderer, clipboard, shell, viewport)
}

func (c Container[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	if !c.Background.IsTransparent() || c.Border.Width > 0 {
		renderer.FillQuad(graphics.Quad{Bounds: l.Bounds(), Border: c.Border}, c.Background)
	}
	c.Child.Draw(&tree.Children[0], renderer, style, l.Child(0), cursor, viewport)
}

func (c Container[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	return c.Child.MouseInteraction(&tree.Children[0], l.Child(0), cursor, viewport, renderer)
}

func (c Container[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	return c.Child.Overlay(&tree.Children[0], l.Child(0), renderer, translation)
}
