package widgets

import (
	"github.com/go-drift/pure/pkg/core"
	"github.com/go-drift/pure/pkg/event"
	"github.com/go-drift/pure/pkg/geometry"
	"github.com/go-drift/pure/pkg/graphics"
	"github.com/go-drift/pure/pkg/layout"
	"github.com/go-drift/pure/pkg/overlay"
)

// TableColumn describes one column of a Table.
type TableColumn[M any] struct {
	// Header is shown above the rows. Nil leaves the header cell empty.
	Header core.Widget[M]
	Width  layout.Length
}

// Table arranges cells in rows and columns. Column widths follow each
// column's length; row heights fit their tallest cell.
type Table[M any] struct {
	Columns []TableColumn[M]
	Rows    [][]core.Widget[M]

	Padding       geometry.Padding
	ColumnSpacing float64
	RowSpacing    float64
	Width         layout.Length
	Height        layout.Length
	AlignX        layout.Alignment
	AlignY        layout.Alignment
	// Separator draws a line between rows when not transparent.
	Separator graphics.Color
}

// TableOf creates a table with the given columns and no rows.
func TableOf[M any](columns ...TableColumn[M]) Table[M] {
	return Table[M]{Columns: columns, ColumnSpacing: 8, RowSpacing: 4}
}

// WithRow returns a copy with a row of cells appended. Missing cells are
// left empty; extra cells are dropped.
func (t Table[M]) WithRow(cells ...core.Widget[M]) Table[M] {
	t.Rows = append(t.Rows[:len(t.Rows):len(t.Rows)], cells)
	return t
}

func (t Table[M]) hasHeader() bool {
	for _, c := range t.Columns {
		if c.Header != nil {
			return true
		}
	}
	return false
}

// grid returns every row padded to the column count, header first.
func (t Table[M]) grid() [][]core.Widget[M] {
	n := len(t.Columns)
	out := make([][]core.Widget[M], 0, len(t.Rows)+1)
	pad := func(cells []core.Widget[M]) []core.Widget[M] {
		row := make([]core.Widget[M], n)
		for i := range row {
			if i < len(cells) && cells[i] != nil {
				row[i] = cells[i]
			} else {
				row[i] = Space[M]{}
			}
		}
		return row
	}
	if t.hasHeader() {
		headers := make([]core.Widget[M], n)
		for i, c := range t.Columns {
			headers[i] = c.Header
		}
		out = append(out, pad(headers))
	}
	for _, r := range t.Rows {
		out = append(out, pad(r))
	}
	return out
}

// cells flattens the grid row-major.
func (t Table[M]) cells() []core.Widget[M] {
	var flat []core.Widget[M]
	for _, row := range t.grid() {
		flat = append(flat, row...)
	}
	return flat
}

func (t Table[M]) Size() layout.Sizing {
	return layout.Sizing{Width: t.Width, Height: t.Height}
}

func (t Table[M]) Tag() core.Tag         { return core.Stateless() }
func (t Table[M]) State() core.State     { return core.None }
func (t Table[M]) Children() []core.Tree { return core.ChildTrees(t.cells()) }
func (t Table[M]) Diff(tree *core.Tree)  { core.DiffChildren(tree, t.cells()) }

func (t Table[M]) Layout(tree *core.Tree, renderer graphics.Renderer, limits layout.Limits) layout.Node {
	grid := t.grid()
	n := len(t.Columns)
	rows := make([][]layout.Item, len(grid))
	for r, row := range grid {
		rows[r] = core.ChildItems(row, tree.Children[r*n:(r+1)*n], renderer)
	}
	columns := make([]layout.Length, n)
	for i, c := range t.Columns {
		columns[i] = c.Width
	}
	return layout.Table{
		Columns:       columns,
		Width:         t.Width,
		Height:        t.Height,
		Padding:       t.Padding,
		ColumnSpacing: t.ColumnSpacing,
		RowSpacing:    t.RowSpacing,
		AlignX:        t.AlignX,
		AlignY:        t.AlignY,
	}.Resolve(limits, rows)
}

func (t Table[M]) Update(tree *core.Tree, ev event.Event, l layout.Layout, cursor event.Cursor,
	renderer graphics.Renderer, clipboard core.Clipboard, shell *core.Shell[M], viewport geometry.Rectangle) {
	updateChildren(t.cells(), tree, ev, l, cursor, renderer, clipboard, shell, viewport)
}

func (t Table[M]) Draw(tree *core.Tree, renderer graphics.Renderer, style graphics.Style, l layout.Layout,
	cursor event.Cursor, viewport geometry.Rectangle) {
	cells := t.cells()
	drawChildren(cells, tree, renderer, style, l, cursor, viewport)
	if t.Separator.IsTransparent() || len(t.Columns) == 0 {
		return
	}
	bounds := l.Bounds()
	for i := len(t.Columns); i < len(cells); i += len(t.Columns) {
		y := l.Child(i).Bounds().Y - t.RowSpacing/2
		renderer.FillQuad(graphics.Quad{
			Bounds: geometry.Rectangle{X: bounds.X, Y: y, Width: bounds.Width, Height: 1},
		}, t.Separator)
	}
}

func (t Table[M]) MouseInteraction(tree *core.Tree, l layout.Layout, cursor event.Cursor,
	viewport geometry.Rectangle, renderer graphics.Renderer) event.Interaction {
	return childrenInteraction(t.cells(), tree, l, cursor, viewport, renderer)
}

func (t Table[M]) Overlay(tree *core.Tree, l layout.Layout, renderer graphics.Renderer,
	translation geometry.Vector) core.Overlay[M] {
	return overlay.FromChildren(t.cells(), tree, l, renderer, translation)
}
