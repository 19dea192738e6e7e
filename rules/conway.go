package rules

import "github.com/pkg/errors"

// ErrInvalidNeighborhood is returned when a neighborhood is not 3x3
var ErrInvalidNeighborhood = errors.New("invalid neighborhood")

// Neighborhood is the 3x3 block of cells centered on the cell being updated, row-major
type Neighborhood [3][3]Cell

// NeighborhoodFromRows builds a Neighborhood from a slice of rows, which must be exactly 3x3
func NeighborhoodFromRows(rows [][]Cell) (Neighborhood, error) {
	var n Neighborhood
	if len(rows) != 3 {
		return n, errors.Wrapf(ErrInvalidNeighborhood, "[NeighborhoodFromRows] got %d rows", len(rows))
	}
	for r, row := range rows {
		if len(row) != 3 {
			return n, errors.Wrapf(ErrInvalidNeighborhood, "[NeighborhoodFromRows] row %d has %d cells", r, len(row))
		}
		copy(n[r][:], row)
	}
	return n, nil
}

// Center returns the cell being updated
func (n Neighborhood) Center() Cell {
	return n[1][1]
}

// Sum returns the number of live cells in the block, the center included
func (n Neighborhood) Sum() (sum int) {
	for _, row := range n {
		for _, c := range row {
			sum += c.Int()
		}
	}
	return
}

// Key packs the 9 cells into a bitmask, row-major from the most significant bit
func (n Neighborhood) Key() uint16 {
	var k uint16
	for _, row := range n {
		for _, c := range row {
			k = k<<1 | uint16(c)
		}
	}
	return k
}

/*
Transition returns the next state of the center cell of n.

The sum counts the center cell too, so survival is a total of 3 or 4
(2 or 3 neighbors plus the live center) and birth is a total of exactly 3.
*/
func Transition(n Neighborhood) Cell {
	total := n.Sum()
	switch n.Center() {
	case Live:
		if total == 3 || total == 4 {
			return Live
		}
	case Dead:
		if total == 3 {
			return Live
		}
	}
	return Dead
}
