package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Space is an empty region. A fill space pushes its siblings apart.
type Space[M any] struct {
	core.Base[M]
	Width  layout.Length
	Height layout.Length
}

// SpaceOf creates a space with the given lengths.
func SpaceOf[M any](width, height layout.Length) Space[M] {
	return Space[M]{Width: width, Height: height}
}

// HorizontalSpace fills the available width.
func HorizontalSpace[M any]() Space[M] {
	return Space[M]{Width: layout.Fill}
}

// VerticalSpace fills the available height.
func VerticalSpace[M any]() Space[M] {
	return Space[M]{Height: layout.Fill}
}

func (s Space[M]) Size() layout.Sizing {
	return layout.Sizing{Width: s.Width, Height: s.Height}
}

func (s Space[M]) Layout(_ *core.Tree, _ graphics.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Resolve(s.Width, s.Height, geometry.Size{}))
}

func (Space[M]) Draw(*core.Tree, graphics.Renderer, graphics.Style, layout.Layout, event.Cursor, geometry.Rectangle) {
}
