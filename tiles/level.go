package tiles

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for cell coordinates outside the level.
var ErrOutOfBounds = errors.New("tiles: cell out of bounds")

// Default level size in cells.
const (
	DefaultCols = 32
	DefaultRows = 32
)

// Level is a grid of tile kinds stored row by row.
type Level struct {
	cols, rows int
	cells      []Kind
}

// NewLevel creates a cols x rows level with walls along the border and
// ground everywhere else. Non-positive sizes produce an empty level.
func NewLevel(cols, rows int) *Level {
	cols, rows = max(cols, 0), max(rows, 0)
	l := &Level{
		cols:  cols,
		rows:  rows,
		cells: make([]Kind, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			k := KindGround
			if row == 0 || row == rows-1 || col == 0 || col == cols-1 {
				k = KindWall
			}
			l.cells[row*cols+col] = k
		}
	}
	return l
}

// Size returns the level dimensions in cells.
func (l *Level) Size() (cols, rows int) {
	return l.cols, l.rows
}

// InBounds reports whether (col, row) is a cell of the level.
func (l *Level) InBounds(col, row int) bool {
	return col >= 0 && col < l.cols && row >= 0 && row < l.rows
}

// At returns the kind at (col, row).
func (l *Level) At(col, row int) (Kind, error) {
	if !l.InBounds(col, row) {
		return KindNone, fmt.Errorf("%w: (%d,%d) in %dx%d level", ErrOutOfBounds, col, row, l.cols, l.rows)
	}
	return l.cells[row*l.cols+col], nil
}

// Set changes the kind at (col, row).
func (l *Level) Set(col, row int, k Kind) error {
	if !l.InBounds(col, row) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d level", ErrOutOfBounds, col, row, l.cols, l.rows)
	}
	l.cells[row*l.cols+col] = k
	return nil
}

// Walkable reports whether an entity may stand on (col, row).
func (l *Level) Walkable(col, row int) bool {
	k, err := l.At(col, row)
	return err == nil && k == KindGround
}
