package model

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

func TestNewBoardAllDead(t *testing.T) {
	b := NewBoard(3, 4)
	if b.GetRows() != 3 || b.GetCols() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 3x4", b.GetRows(), b.GetCols())
	}
	if n := b.CountLivingCells(); n != 0 {
		t.Fatalf("CountLivingCells() = %d, expected 0", n)
	}
	if got, want := b.Render(rules.DigitGlyphs()), "0000\n0000\n0000\n"; got != want {
		t.Fatalf("Render() = %q, expected %q", got, want)
	}
}

func TestNewBoardFromRowsRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		rows [][]rules.Cell
	}{
		{name: "ragged", rows: [][]rules.Cell{{0, 1, 0}, {0, 1}}},
		{name: "zero width", rows: [][]rules.Cell{{}, {}}},
		{name: "empty later row", rows: [][]rules.Cell{{1, 1}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBoardFromRows(tt.rows); !errors.Is(err, ErrMalformedBoard) {
				t.Fatalf("err = %v, expected ErrMalformedBoard", err)
			}
		})
	}
}

func TestNewBoardFromRowsCopies(t *testing.T) {
	rows := [][]rules.Cell{{0, 1}, {1, 0}}
	b, err := NewBoardFromRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows[0][0] = rules.Live
	if b.Cell(0, 0) != rules.Dead {
		t.Fatal("board shares storage with its input rows")
	}
}

func TestCellAndSet(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(1, 2, rules.Live)
	b.Set(-1, 0, rules.Live)
	b.Set(3, 3, rules.Live)

	if b.Cell(1, 2) != rules.Live {
		t.Fatal("Set(1, 2) did not take effect")
	}
	if b.Cell(-1, 0) != rules.Dead || b.Cell(3, 3) != rules.Dead {
		t.Fatal("out of bounds cells should read as Dead")
	}
	if n := b.CountLivingCells(); n != 1 {
		t.Fatalf("CountLivingCells() = %d, expected 1", n)
	}
}

func TestNeighborhood(t *testing.T) {
	b := mustParse(t, "010\n110\n001\n")

	n, err := b.Neighborhood(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := rules.Neighborhood{{0, 1, 0}, {1, 1, 0}, {0, 0, 1}}
	if n != want {
		t.Fatalf("Neighborhood(1, 1) = %v, expected %v", n, want)
	}

	for _, pos := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {2, 2}, {1, 2}} {
		if _, err := b.Neighborhood(pos[0], pos[1]); !errors.Is(err, rules.ErrInvalidNeighborhood) {
			t.Fatalf("Neighborhood(%d, %d) err = %v, expected ErrInvalidNeighborhood", pos[0], pos[1], err)
		}
	}
}

func TestCloneAndEqual(t *testing.T) {
	b := mustParse(t, "0110\n1001\n")
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.Set(0, 0, rules.Live)
	if b.Equal(c) {
		t.Fatal("mutating the clone changed the original")
	}
	if b.Equal(NewBoard(2, 3)) {
		t.Fatal("boards of different shape compare equal")
	}
}

func TestRender(t *testing.T) {
	b := mustParse(t, "01\n10\n")
	g := rules.Glyphs{Dead: "  ", Live: "██"}

	if got, want := b.Render(g), "  ██\n██  \n"; got != want {
		t.Fatalf("Render() = %q, expected %q", got, want)
	}
	if got, want := b.String(), "░█\n█░\n"; got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}
	if got := NewBoard(0, 0).Render(g); got != "" {
		t.Fatalf("empty board rendered %q", got)
	}
}
