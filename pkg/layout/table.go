package layout

import (
	"math"

	"github.com/go-drift/pure/pkg/geometry"
)

// Table configures a grid layout of rows of cells sharing column widths.
type Table struct {
	// Columns holds the width policy of each column. Fixed columns take
	// their amount, shrink columns their widest cell, and fill columns a
	// weighted share of what remains.
	Columns       []Length
	Width         Length
	Height        Length
	Padding       geometry.Padding
	ColumnSpacing float64
	RowSpacing    float64
	// AlignX and AlignY position each cell inside its slot.
	AlignX Alignment
	AlignY Alignment
}

type tableCell struct {
	row, column int
	item        Item
	fluidWidth  bool
	fluidHeight bool
}

// Resolve lays out rows of cells in three passes: cells that do not fill are
// measured to find per-column and per-row maxima, fill columns split the
// remaining width, and fluid cells are laid out again against those maxima.
// Cells are finally positioned into their slots. The returned node lists
// cells row by row; rows may be shorter than the column count.
func (t Table) Resolve(limits Limits, rows [][]Item) Node {
	limits = limits.Width(t.Width).Height(t.Height).ShrinkPadding(t.Padding)
	ncols := len(t.Columns)
	widths := make([]float64, ncols)
	heights := make([]float64, len(rows))
	available := limits.Max()

	var cells []tableCell
	for r, row := range rows {
		for c, item := range row {
			if c >= ncols {
				break
			}
			s := item.Sizing()
			cells = append(cells, tableCell{
				row: r, column: c, item: item,
				fluidWidth:  s.Width.IsFill(),
				fluidHeight: s.Height.IsFill(),
			})
		}
	}
	nodes := make([]Node, len(cells))

	for c, length := range t.Columns {
		if amount, ok := length.Amount(); ok {
			widths[c] = amount
		}
	}

	measure := func(i int, maxWidth float64) {
		cell := cells[i]
		node := cell.item.Layout(NewLimits(geometry.Size{}, geometry.Size{Width: maxWidth, Height: math.Inf(1)}))
		nodes[i] = node
		heights[cell.row] = math.Max(heights[cell.row], node.Size().Height)
		if !t.Columns[cell.column].IsFill() {
			if _, fixed := t.Columns[cell.column].Amount(); !fixed {
				widths[cell.column] = math.Max(widths[cell.column], node.Size().Width)
			}
		}
	}

	// Pass one: non-fluid cells of fixed and shrink columns.
	for i, cell := range cells {
		length := t.Columns[cell.column]
		if length.IsFill() || cell.fluidWidth || cell.fluidHeight {
			continue
		}
		maxWidth := available.Width
		if amount, ok := length.Amount(); ok {
			maxWidth = amount
		}
		measure(i, maxWidth)
	}

	// Pass two: split the remaining width among fill columns.
	used := t.ColumnSpacing * float64(max(ncols-1, 0))
	weights := make([]uint16, ncols)
	for c, length := range t.Columns {
		if length.IsFill() {
			weights[c] = length.FillFactor()
		} else {
			used += widths[c]
		}
	}
	remaining := math.Max(available.Width-used, 0)
	shares := Distribute(remaining, weights)
	for c := range t.Columns {
		if weights[c] > 0 && !math.IsInf(shares[c], 1) {
			widths[c] = shares[c]
		}
	}
	for i, cell := range cells {
		if !t.Columns[cell.column].IsFill() || cell.fluidWidth || cell.fluidHeight {
			continue
		}
		measure(i, shares[cell.column])
		if math.IsInf(shares[cell.column], 1) {
			widths[cell.column] = math.Max(widths[cell.column], nodes[i].Size().Width)
		}
	}

	// Pass three: fluid cells, width-fluid first since they may grow rows.
	for i, cell := range cells {
		if !cell.fluidWidth || cell.fluidHeight {
			continue
		}
		w := widths[cell.column]
		node := cell.item.Layout(NewLimits(
			geometry.Size{Width: w},
			geometry.Size{Width: w, Height: math.Inf(1)},
		))
		nodes[i] = node
		heights[cell.row] = math.Max(heights[cell.row], node.Size().Height)
	}
	for i, cell := range cells {
		if !cell.fluidHeight {
			continue
		}
		w, h := widths[cell.column], heights[cell.row]
		minW := 0.0
		if cell.fluidWidth {
			minW = w
		}
		nodes[i] = cell.item.Layout(NewLimits(
			geometry.Size{Width: minW, Height: h},
			geometry.Size{Width: w, Height: h},
		))
	}

	xs := make([]float64, ncols)
	x := t.Padding.Left
	for c := range widths {
		xs[c] = x
		x += widths[c] + t.ColumnSpacing
	}
	ys := make([]float64, len(rows))
	y := t.Padding.Top
	for r := range heights {
		ys[r] = y
		y += heights[r] + t.RowSpacing
	}

	for i, cell := range cells {
		slot := geometry.Size{Width: widths[cell.column], Height: heights[cell.row]}
		nodes[i] = nodes[i].
			MoveTo(geometry.Point{X: xs[cell.column], Y: ys[cell.row]}).
			Align(t.AlignX, t.AlignY, slot)
	}

	intrinsic := geometry.Size{
		Width:  sum(widths) + t.ColumnSpacing*float64(max(ncols-1, 0)),
		Height: sum(heights) + t.RowSpacing*float64(max(len(rows)-1, 0)),
	}
	size := limits.Resolve(t.Width, t.Height, intrinsic)
	return WithChildren(size.Expand(t.Padding), nodes)
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
