package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrMalformedBoard is returned for boards with ragged or zero-width rows
var ErrMalformedBoard = errors.New("malformed board")

// Board is a rectangular grid of cells, indexed by (row, col)
type Board struct {
	rows  int
	cols  int
	cells [][]rules.Cell
}

// NewBoard creates an all-Dead board with the specified dimensions
func NewBoard(rows, cols int) *Board {
	rows, cols = max(rows, 0), max(cols, 0)
	if rows == 0 {
		cols = 0
	}
	cells := make([][]rules.Cell, rows)
	for i := range cells {
		cells[i] = make([]rules.Cell, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// NewBoardFromRows creates a board from rows of cells, rejecting ragged or empty rows.
// The rows are copied.
func NewBoardFromRows(rows [][]rules.Cell) (*Board, error) {
	if len(rows) == 0 {
		return NewBoard(0, 0), nil
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.Wrap(ErrMalformedBoard, "[NewBoardFromRows] row 0 is empty")
	}

	b := NewBoard(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrMalformedBoard,
				"[NewBoardFromRows] row %d has %d cells, expected %d", r, len(row), cols)
		}
		copy(b.cells[r], row)
	}
	return b, nil
}

// GetRows returns the number of rows
func (b *Board) GetRows() int {
	return b.rows
}

// GetCols returns the number of columns
func (b *Board) GetCols() int {
	return b.cols
}

// InBounds reports whether (r, c) is a position on the board
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// Cell returns the state of a cell, Dead when out of bounds
func (b *Board) Cell(r, c int) rules.Cell {
	if !b.InBounds(r, c) {
		return rules.Dead
	}
	return b.cells[r][c]
}

// Set sets the state of a cell, ignoring out of bounds positions
func (b *Board) Set(r, c int, cell rules.Cell) {
	if b.InBounds(r, c) {
		b.cells[r][c] = cell
	}
}

// IsInterior reports whether (r, c) has all 8 neighbors on the board
func (b *Board) IsInterior(r, c int) bool {
	return r >= 1 && r < b.rows-1 && c >= 1 && c < b.cols-1
}

// Neighborhood returns the 3x3 block centered at (r, c), which must be an interior cell
func (b *Board) Neighborhood(r, c int) (rules.Neighborhood, error) {
	if !b.IsInterior(r, c) {
		return rules.Neighborhood{}, errors.Wrapf(rules.ErrInvalidNeighborhood,
			"[Neighborhood] (%d, %d) is not interior to a %dx%d board", r, c, b.rows, b.cols)
	}
	return b.neighborhood(r, c), nil
}

func (b *Board) neighborhood(r, c int) rules.Neighborhood {
	var (
		above = b.cells[r-1]
		row   = b.cells[r]
		below = b.cells[r+1]
	)
	return rules.Neighborhood{
		{above[c-1], above[c], above[c+1]},
		{row[c-1], row[c], row[c+1]},
		{below[c-1], below[c], below[c+1]},
	}
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, row := range b.cells {
		for _, cell := range row {
			count += cell.Int()
		}
	}
	return
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := NewBoard(b.rows, b.cols)
	for r := range b.cells {
		copy(c.cells[r], b.cells[r])
	}
	return c
}

// Equal reports whether both boards have the same shape and cells
func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// textWriter is satisfied by both strings.Builder and bytes.Buffer
type textWriter interface {
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

// RenderSize returns an upper bound on the length of the rendered board
func (b *Board) RenderSize(g rules.Glyphs) int {
	return b.rows * (b.cols*max(len(g.Dead), len(g.Live)) + 1)
}

// Render returns each row's glyphs followed by a newline
func (b *Board) Render(g rules.Glyphs) string {
	var sb strings.Builder
	sb.Grow(b.RenderSize(g))
	b.renderTo(&sb, g)
	return sb.String()
}

func (b *Board) renderTo(w textWriter, g rules.Glyphs) {
	for _, row := range b.cells {
		for _, cell := range row {
			w.WriteString(cell.Glyph(g))
		}
		w.WriteByte('\n')
	}
}

func (b *Board) String() string {
	return b.Render(rules.DefaultGlyphs())
}
