// Package graphics defines the drawing primitives widgets emit and the
// Renderer interface backends implement.
package graphics

import "github.com/go-drift/pure/pkg/geometry"

// Border describes the outline of a quad.
type Border struct {
	Color  Color
	Width  float64
	Radius float64
}

// Quad is a filled, optionally bordered rectangle.
type Quad struct {
	Bounds geometry.Rectangle
	Border Border
}

// HorizontalAlignment positions text inside its bounds.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// String returns a human-readable representation of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Text is a run of text to draw.
type Text struct {
	Content string
	Bounds  geometry.Size
	Size    float64
	Align   HorizontalAlignment
}

// Image is an opaque handle to image data owned by the backend.
type Image struct {
	Handle string
}

// Style carries inherited drawing defaults down the tree.
type Style struct {
	TextColor Color
}

// DefaultStyle is the style used when the caller supplies none.
var DefaultStyle = Style{TextColor: ColorBlack}

// Renderer is the drawing surface supplied by a backend. Layers clip their
// content to the given bounds and composite above everything drawn before.
type Renderer interface {
	// FillQuad fills a quad with the given background color.
	FillQuad(quad Quad, background Color)
	// FillText draws text with its top-left at position, clipped to clip.
	FillText(text Text, position geometry.Point, color Color, clip geometry.Rectangle)
	// DrawImage draws an image scaled into bounds.
	DrawImage(image Image, bounds geometry.Rectangle)
	// WithLayer runs draw inside a new layer clipped to bounds.
	WithLayer(bounds geometry.Rectangle, draw func())
	// WithTranslation runs draw with all coordinates moved by v.
	WithTranslation(v geometry.Vector, draw func())
	// MeasureText returns the natural size of content at the given font size.
	MeasureText(content string, size float64) geometry.Size
}
