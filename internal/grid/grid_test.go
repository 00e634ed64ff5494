package grid

import (
	"math"
	"math/rand"
	"testing"
)

func TestResetClearsCells(t *testing.T) {
	g := New(4, 4, 4, 4, 50)
	g.Bind(0, 0.5, 0.5)
	g.Bind(1, 1.5, 1.5)

	total := 0
	for _, c := range g.Cells() {
		total += len(c.Particles)
	}
	if total != 2 {
		t.Fatalf("expected 2 bound particles, got %d", total)
	}

	g.Reset()
	total = 0
	for _, c := range g.Cells() {
		total += len(c.Particles)
	}
	if total != 0 {
		t.Errorf("expected 0 bound particles after reset, got %d", total)
	}
}

func TestBindOutOfBoundsIgnored(t *testing.T) {
	g := New(4, 4, 4, 4, 50)
	if err := g.Bind(0, -1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Bind(0, 10, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for _, c := range g.Cells() {
		total += len(c.Particles)
	}
	if total != 0 {
		t.Errorf("out-of-bounds binds should be silently ignored, got %d bound", total)
	}
}

func TestCellOverflowSilentByDefault(t *testing.T) {
	g := New(1, 1, 1, 1, 2)
	for i := 0; i < 5; i++ {
		if err := g.Bind(i, 0.5, 0.5); err != nil {
			t.Fatalf("non-strict overflow should not error, got %v", err)
		}
	}
	if len(g.Cells()[0].Particles) != 2 {
		t.Errorf("expected overflow capped at 2, got %d", len(g.Cells()[0].Particles))
	}
}

func TestCellOverflowStrict(t *testing.T) {
	g := New(1, 1, 1, 1, 1)
	g.Strict = true
	if err := g.Bind(0, 0.5, 0.5); err != nil {
		t.Fatalf("first bind should succeed: %v", err)
	}
	if err := g.Bind(1, 0.5, 0.5); err != ErrCellOverflow {
		t.Errorf("expected ErrCellOverflow, got %v", err)
	}
}

func TestHalfNeighborNeverSelf(t *testing.T) {
	g := New(4, 4, 4, 4, 50)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			c := &g.cells[g.index(i, j)]
			for _, nb := range c.Neighbors {
				if nb == c {
					t.Fatalf("cell (%d,%d) lists itself as a half-neighbor", i, j)
				}
			}
		}
	}
}

// TestHalfNeighborCompleteness verifies scenario 5: grid.Pairwise visits
// exactly the set of unordered pairs whose cells are the same or
// Moore-adjacent (Chebyshev distance 1), each exactly once.
func TestHalfNeighborCompleteness(t *testing.T) {
	const nx, ny = 4, 4
	const cellSize = 1.0
	g := New(nx, ny, nx*cellSize, ny*cellSize, 50)

	rng := rand.New(rand.NewSource(42))
	type pos struct{ x, y float64 }
	n := 40
	positions := make([]pos, n)
	cellOf := make([][2]int, n)
	for k := 0; k < n; k++ {
		x := rng.Float64() * nx * cellSize
		y := rng.Float64() * ny * cellSize
		positions[k] = pos{x, y}
		cellOf[k] = [2]int{int(math.Floor(x / cellSize)), int(math.Floor(y / cellSize))}
		g.Bind(k, x, y)
	}

	expected := make(map[[2]int]bool)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			di := cellOf[a][0] - cellOf[b][0]
			dj := cellOf[a][1] - cellOf[b][1]
			if di < 0 {
				di = -di
			}
			if dj < 0 {
				dj = -dj
			}
			if di <= 1 && dj <= 1 {
				expected[[2]int{a, b}] = true
			}
		}
	}

	seen := make(map[[2]int]int)
	g.Pairwise(func(p, q int) {
		key := [2]int{p, q}
		if p > q {
			key = [2]int{q, p}
		}
		seen[key]++
	})

	for k, v := range seen {
		if v != 1 {
			t.Errorf("pair %v visited %d times, want 1", k, v)
		}
		if !expected[k] {
			t.Errorf("pair %v visited but not expected (cells not adjacent)", k)
		}
	}
	for k := range expected {
		if seen[k] != 1 {
			t.Errorf("expected pair %v was not visited exactly once (got %d)", k, seen[k])
		}
	}
}

func TestCellAt(t *testing.T) {
	g := New(2, 2, 2, 2, 10)
	c := g.CellAt(0.5, 0.5)
	if c == nil {
		t.Fatal("expected a cell for in-bounds point")
	}
	if got := g.CellAt(5, 5); got != nil {
		t.Errorf("expected nil for out-of-bounds point, got %v", got)
	}
}
