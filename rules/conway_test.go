package rules

import (
	"testing"

	"github.com/pkg/errors"
)

// neighborhoodFromKey is the inverse of Neighborhood.Key
func neighborhoodFromKey(k uint16) Neighborhood {
	var n Neighborhood
	for i := 0; i < 9; i++ {
		if k&(1<<(8-i)) != 0 {
			n[i/3][i%3] = Live
		}
	}
	return n
}

func TestTransitionAllNeighborhoods(t *testing.T) {
	for k := uint16(0); k < 512; k++ {
		n := neighborhoodFromKey(k)
		if n.Key() != k {
			t.Fatalf("Key() = %d, expected %d", n.Key(), k)
		}

		total := n.Sum()
		want := Dead
		if n.Center() == Live && (total == 3 || total == 4) {
			want = Live
		}
		if n.Center() == Dead && total == 3 {
			want = Live
		}

		if got := Transition(n); got != want {
			t.Fatalf("Transition(%v) = %d, expected %d (sum %d)", n, got, want, total)
		}
	}
}

func TestTransitionExamples(t *testing.T) {
	tests := []struct {
		name string
		n    Neighborhood
		want Cell
	}{
		{
			name: "lonely live cell dies",
			n:    Neighborhood{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
			want: Dead,
		},
		{
			name: "live cell with two neighbors survives",
			n:    Neighborhood{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			want: Live,
		},
		{
			name: "live cell with three neighbors survives",
			n:    Neighborhood{{1, 1, 1}, {0, 1, 0}, {0, 0, 0}},
			want: Live,
		},
		{
			name: "live cell with four neighbors dies",
			n:    Neighborhood{{1, 1, 1}, {1, 1, 0}, {0, 0, 0}},
			want: Dead,
		},
		{
			name: "dead cell with three neighbors is born",
			n:    Neighborhood{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
			want: Live,
		},
		{
			name: "dead cell with two neighbors stays dead",
			n:    Neighborhood{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}},
			want: Dead,
		},
		{
			name: "dead cell with four neighbors stays dead",
			n:    Neighborhood{{1, 1, 0}, {0, 0, 1}, {1, 0, 0}},
			want: Dead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transition(tt.n); got != tt.want {
				t.Fatalf("Transition() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestNeighborhoodFromRows(t *testing.T) {
	n, err := NeighborhoodFromRows([][]Cell{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Sum() != 3 || n.Center() != Live {
		t.Fatalf("unexpected neighborhood %v", n)
	}

	bad := [][][]Cell{
		nil,
		{{0, 0, 0}, {0, 0, 0}},
		{{0, 0, 0}, {0, 0}, {0, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	}
	for _, rows := range bad {
		if _, err := NeighborhoodFromRows(rows); !errors.Is(err, ErrInvalidNeighborhood) {
			t.Fatalf("NeighborhoodFromRows(%v) err = %v, expected ErrInvalidNeighborhood", rows, err)
		}
	}
}
