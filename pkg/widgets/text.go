package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
)

// Text displays a string. Newlines start new lines.
type Text[M any] struct {
	core.Base[M]
	// Content is the text string to display.
	Content string
	// TextSize is the font size. Defaults to 16 if zero.
	TextSize float64
	// Color is the text color. Defaults to the inherited style if zero.
	Color graphics.Color
	// Align positions the text inside its bounds.
	Align  graphics.HorizontalAlignment
	Width  layout.Length
	Height layout.Length
}

// TextOf creates a text widget with default styling.
func TextOf[M any](content string) Text[M] {
	return Text[M]{Content: content}
}

// WithSize returns a copy of the text with the given font size.
func (t Text[M]) WithSize(size float64) Text[M] {
	t.TextSize = size
	return t
}

// WithColor returns a copy of the text with the given color.
func (t Text[M]) WithColor(c graphics.Color) Text[M] {
	t.Color = c
	return t
}

// WithWidth returns a copy of the text with the given width.
func (t Text[M]) WithWidth(w layout.Length) Text[M] {
	t.Width = w
	return t
}

func (t Text[M]) Size() layout.Sizing {
	return layout.Sizing{Width: t.Width, Height: t.Height}
}

func (t Text[M]) Layout(_ *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	natural := renderer.MeasureText(t.Content, textSize(t.TextSize))
	return layout.NewNode(limits.Resolve(t.Width, t.Height, natural))
}

func (t Text[M]) Draw(_ *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	_ event.Cursor, _ geometry.Rectangle) {
	color := t.Color
	if color == 0 {
		color = style.TextColor
	}
	bounds := l.Bounds()
	renderer.FillText(graphics.Text{
		Content: t.Content,
		Bounds:  bounds.Size(),
		Size:    textSize(t.TextSize),
		Align:   t.Align,
	}, bounds.Position(), color, bounds)
}
