// Package term renders widget trees to a grid of terminal cells. One unit of
// layout space is one cell; text is measured with text.CellMeasurer.
package term

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/text"
)

// Cell is one terminal cell. Wide graphemes occupy their first cell; the
// cells they cover after it are continuations with an empty Content.
type Cell struct {
	Content      string
	Foreground   graphics.Color
	Background   graphics.Color
	continuation bool
}

// Canvas is a graphics.Renderer drawing into cells.
type Canvas struct {
	width, height int
	cells         []Cell
	offset        geometry.Vector
	clips         []geometry.Rectangle
	border        lipgloss.Border
	measurer      text.Measurer
}

// NewCanvas returns a blank canvas of width by height cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:    max(width, 0),
		height:   max(height, 0),
		border:   lipgloss.RoundedBorder(),
		measurer: text.CellMeasurer{},
	}
	c.Clear()
	return c
}

// WithBorder sets the box characters used for bordered quads.
func (c *Canvas) WithBorder(b lipgloss.Border) *Canvas {
	c.border = b
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() geometry.Size {
	return geometry.Size{Width: float64(c.width), Height: float64(c.height)}
}

// Clear blanks every cell and drops translation and clipping.
func (c *Canvas) Clear() {
	c.cells = make([]Cell, c.width*c.height)
	for i := range c.cells {
		c.cells[i].Content = " "
	}
	c.offset = geometry.Vector{}
	c.clips = nil
}

// At returns the cell at column x and row y.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) clip() geometry.Rectangle {
	if len(c.clips) == 0 {
		return geometry.Rectangle{Width: float64(c.width), Height: float64(c.height)}
	}
	return c.clips[len(c.clips)-1]
}

// span converts r to the half-open cell ranges it covers inside clip.
func span(r, clip geometry.Rectangle) (x0, y0, x1, y1 int, ok bool) {
	r, ok = r.Intersection(clip)
	if !ok {
		return 0, 0, 0, 0, false
	}
	x0, y0 = int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 = int(math.Round(r.Right())), int(math.Round(r.Bottom()))
	return x0, y0, x1, y1, x1 > x0 && y1 > y0
}

func (c *Canvas) set(x, y int, fn func(*Cell)) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	fn(&c.cells[y*c.width+x])
}

func (c *Canvas) FillQuad(q graphics.Quad, background graphics.Color) {
	rect := q.Bounds.Translate(c.offset)
	x0, y0, x1, y1, ok := span(rect, c.clip())
	if !ok {
		return
	}
	if !background.IsTransparent() {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.set(x, y, func(cell *Cell) {
					*cell = Cell{Content: " ", Background: background}
				})
			}
		}
	}
	if q.Border.Width > 0 && !q.Border.Color.IsTransparent() {
		c.strokeBorder(rect, q.Border.Color)
	}
}

// strokeBorder draws the box characters of the border around rect, clipped.
func (c *Canvas) strokeBorder(rect geometry.Rectangle, fg graphics.Color) {
	left, top := int(math.Round(rect.X)), int(math.Round(rect.Y))
	right, bottom := int(math.Round(rect.Right()))-1, int(math.Round(rect.Bottom()))-1
	if right <= left || bottom <= top {
		return
	}
	clip := c.clip()
	put := func(x, y int, s string) {
		p := geometry.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
		if !clip.Contains(p) {
			return
		}
		c.set(x, y, func(cell *Cell) {
			cell.Content, cell.Foreground, cell.continuation = s, fg, false
		})
	}
	for x := left + 1; x < right; x++ {
		put(x, top, c.border.Top)
		put(x, bottom, c.border.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		put(left, y, c.border.Left)
		put(right, y, c.border.Right)
	}
	put(left, top, c.border.TopLeft)
	put(right, top, c.border.TopRight)
	put(left, bottom, c.border.BottomLeft)
	put(right, bottom, c.border.BottomRight)
}

func (c *Canvas) FillText(t graphics.Text, position geometry.Point, fg graphics.Color, clip geometry.Rectangle) {
	position = position.Add(c.offset)
	bounds := c.clip()
	if !clip.IsEmpty() {
		var ok bool
		if bounds, ok = clip.Translate(c.offset).Intersection(bounds); !ok {
			return
		}
	}
	for row, line := range strings.Split(t.Content, "\n") {
		y := int(math.Round(position.Y)) + row
		x := int(math.Round(position.X)) + alignOffset(t, line)
		c.writeLine(line, x, y, fg, bounds)
	}
}

// alignOffset returns the column offset of line inside the text bounds.
func alignOffset(t graphics.Text, line string) int {
	free := int(t.Bounds.Width) - uniseg.StringWidth(line)
	if free <= 0 {
		return 0
	}
	switch t.Align {
	case graphics.AlignCenter:
		return free / 2
	case graphics.AlignRight:
		return free
	}
	return 0
}

// writeLine places the graphemes of line starting at column x, keeping the
// background already under them.
func (c *Canvas) writeLine(line string, x, y int, fg graphics.Color, clip geometry.Rectangle) {
	inside := func(col, width int) bool {
		return float64(col) >= math.Floor(clip.X) && float64(col+width) <= math.Ceil(clip.Right()) &&
			float64(y) >= math.Floor(clip.Y) && float64(y+1) <= math.Ceil(clip.Bottom())
	}
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width == 0 {
			continue
		}
		if inside(x, width) {
			c.set(x, y, func(cell *Cell) {
				cell.Content, cell.Foreground, cell.continuation = cluster, fg, false
			})
			for i := 1; i < width; i++ {
				c.set(x+i, y, func(cell *Cell) {
					cell.Content, cell.Foreground, cell.continuation = "", fg, true
				})
			}
		}
		x += width
	}
}

// DrawImage marks the image bounds with its handle; terminals have no pixels.
func (c *Canvas) DrawImage(img graphics.Image, bounds geometry.Rectangle) {
	c.FillQuad(graphics.Quad{Bounds: bounds, Border: graphics.Border{Color: graphics.ColorGray, Width: 1}},
		graphics.ColorTransparent)
	c.FillText(graphics.Text{Content: img.Handle, Bounds: bounds.Size(), Align: graphics.AlignCenter},
		geometry.Point{X: bounds.X, Y: bounds.Y + math.Floor(bounds.Height/2)}, graphics.ColorGray, bounds)
}

func (c *Canvas) WithLayer(bounds geometry.Rectangle, draw func()) {
	clip, ok := bounds.Translate(c.offset).Intersection(c.clip())
	if !ok {
		return
	}
	c.clips = append(c.clips, clip)
	defer func() { c.clips = c.clips[:len(c.clips)-1] }()
	draw()
}

func (c *Canvas) WithTranslation(v geometry.Vector, draw func()) {
	c.offset = c.offset.Add(v)
	defer func() { c.offset = c.offset.Add(v.Neg()) }()
	draw()
}

func (c *Canvas) MeasureText(content string, size float64) geometry.Size {
	return c.measurer.Measure(content, size)
}

// Plain returns the canvas content without styling, one line per row with
// trailing spaces trimmed.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y := range c.height {
		var b strings.Builder
		for x := range c.width {
			b.WriteString(c.At(x, y).Content)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Render returns the canvas as styled terminal output. Consecutive cells
// sharing colors are rendered as one lipgloss run.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y := range c.height {
		var b strings.Builder
		var run strings.Builder
		var fg, bg graphics.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(styleFor(fg, bg).Render(run.String()))
			run.Reset()
		}
		for x := range c.width {
			cell := c.At(x, y)
			if cell.continuation {
				continue
			}
			if cell.Foreground != fg || cell.Background != bg {
				flush()
				fg, bg = cell.Foreground, cell.Background
			}
			run.WriteString(cell.Content)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func styleFor(fg, bg graphics.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !fg.IsTransparent() {
		style = style.Foreground(rgba(fg))
	}
	if !bg.IsTransparent() {
		style = style.Background(rgba(bg))
	}
	return style
}

// rgba drops alpha: a terminal cell is either painted or not.
func rgba(c graphics.Color) color.Color {
	r, g, b, _ := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
