// Package text measures text for layout. Measurement is the only text
// service the engine needs; shaping and rasterization belong to backends.
package text

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/pure/pkg/geometry"
)

// Measurer reports the natural size of a string at a font size.
type Measurer interface {
	Measure(content string, size float64) geometry.Size
}

// FaceMeasurer measures text with a fixed font face scaled to the requested
// size.
type FaceMeasurer struct {
	face       font.Face
	nativeSize float64
}

// NewFaceMeasurer returns a measurer backed by the 7x13 basic font.
func NewFaceMeasurer() *FaceMeasurer {
	return NewFaceMeasurerWith(basicfont.Face7x13, 13)
}

// NewFaceMeasurerWith returns a measurer for face, whose glyphs were designed
// at nativeSize pixels.
func NewFaceMeasurerWith(face font.Face, nativeSize float64) *FaceMeasurer {
	if nativeSize <= 0 {
		nativeSize = 13
	}
	return &FaceMeasurer{face: face, nativeSize: nativeSize}
}

// Measure returns the bounding size of content at size pixels. Lines are
// split on newlines.
func (m *FaceMeasurer) Measure(content string, size float64) geometry.Size {
	if size <= 0 {
		return geometry.Size{}
	}
	scale := size / m.nativeSize
	lineHeight := float64(m.face.Metrics().Height.Ceil()) * scale
	lines := strings.Split(content, "\n")
	width := 0.0
	for _, line := range lines {
		w := float64(font.MeasureString(m.face, line).Ceil()) * scale
		width = math.Max(width, w)
	}
	return geometry.Size{Width: width, Height: lineHeight * float64(len(lines))}
}

// CellMeasurer measures text in terminal cells: one unit per column, one per
// line. The font size is ignored.
type CellMeasurer struct{}

// Measure returns the width in cells of the widest line and the line count.
func (CellMeasurer) Measure(content string, _ float64) geometry.Size {
	lines := strings.Split(content, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, uniseg.StringWidth(line))
	}
	return geometry.Size{Width: float64(width), Height: float64(len(lines))}
}

// Monospace measures text as a grid of equal cells scaled by the font size:
// each column advances Ratio*size and each line is size tall.
type Monospace struct {
	// Ratio is the advance of one column relative to the font size.
	// Defaults to 0.5.
	Ratio float64
}

// Measure returns the size of content at size pixels.
func (m Monospace) Measure(content string, size float64) geometry.Size {
	ratio := m.Ratio
	if ratio <= 0 {
		ratio = 0.5
	}
	cells := CellMeasurer{}.Measure(content, size)
	return geometry.Size{Width: cells.Width * ratio * size, Height: cells.Height * size}
}
