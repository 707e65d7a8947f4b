package tiles

import (
	"math"

	"github.com/go-theft-auto/quad"
)

// CellRange is a rectangular block of level cells.
type CellRange struct {
	Col0, Row0 int // First visible cell (inclusive)
	Col1, Row1 int // Last visible cell (exclusive)
}

// Empty reports whether the range has no cells.
func (c CellRange) Empty() bool {
	return c.Col0 >= c.Col1 || c.Row0 >= c.Row1
}

// Contains reports whether (col, row) is inside the range.
func (c CellRange) Contains(col, row int) bool {
	return col >= c.Col0 && col < c.Col1 && row >= c.Row0 && row < c.Row1
}

// Len returns the number of cells in the range.
func (c CellRange) Len() int {
	if c.Empty() {
		return 0
	}
	return (c.Col1 - c.Col0) * (c.Row1 - c.Row0)
}

// VisibleCells returns the cells of l that overlap view when the level is
// drawn with its top-left cell at origin and cells dim units square.
// Partially covered cells are included.
func VisibleCells(l *Level, origin quad.Vec2, dim float32, view quad.Rect) CellRange {
	if dim <= 0 || view.W <= 0 || view.H <= 0 {
		return CellRange{}
	}

	clampi := func(v float64, hi int) int {
		if v < 0 {
			return 0
		}
		if v > float64(hi) {
			return hi
		}
		return int(v)
	}

	d := float64(dim)
	return CellRange{
		Col0: clampi(math.Floor(float64(view.X-origin.X)/d), l.cols),
		Row0: clampi(math.Floor(float64(view.Y-origin.Y)/d), l.rows),
		Col1: clampi(math.Ceil(float64(view.X+view.W-origin.X)/d), l.cols),
		Row1: clampi(math.Ceil(float64(view.Y+view.H-origin.Y)/d), l.rows),
	}
}

// DrawLevelView is DrawLevel limited to the cells overlapping view. Large
// levels then cost only as many quads as fit on screen.
func DrawLevelView(b *quad.Batch, sheet Sheet, l *Level, origin quad.Vec2, dim float32, view quad.Rect) error {
	return drawCells(b, sheet, l, origin, dim, VisibleCells(l, origin, dim, view))
}
