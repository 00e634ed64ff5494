// Package grid implements the uniform spatial hash grid used to enumerate
// all particle pairs within the kernel support radius in O(N): each cell
// is pre-linked to a "half neighborhood" so that iterating every cell
// against its own contents and that half neighborhood visits every
// unordered in-range pair exactly once.
package grid

import (
	"errors"
	"math"
)

// ErrCellOverflow is returned by Bind in strict mode when a cell is
// already at capacity. In the default (non-strict) mode, overflow is
// silently dropped instead -- the documented trade that lets the
// simulation degrade smoothly under local crowding rather than
// reallocating on the hot path.
var ErrCellOverflow = errors.New("grid: cell capacity exceeded")

// Cell owns a capacity-bounded list of particle indices and a
// precomputed "top-right half-neighbor" set: the right neighbor plus the
// three neighbors in the row above, clipped to the grid. This is the
// relation that lets pairwise enumeration visit each unordered cell pair
// exactly once.
type Cell struct {
	Particles []int
	Neighbors []*Cell
}

// Grid is a fixed-size uniform partition of a [0,Width] x [0,Height]
// region into Nx x Ny cells. Binding is done in grid-local coordinates;
// callers translate world/domain coordinates into this space (typically
// by subtracting the domain's xmin/ymin) before calling Bind.
type Grid struct {
	Nx, Ny        int
	Width, Height float64
	CellCap       int
	Strict        bool

	cells []Cell
}

// New constructs a grid and precomputes every cell's half-neighborhood.
// Cell backing arrays are allocated once and reused for the grid's
// lifetime; Reset never reallocates them.
func New(nx, ny int, width, height float64, cellCap int) *Grid {
	g := &Grid{
		Nx: nx, Ny: ny,
		Width: width, Height: height,
		CellCap: cellCap,
		cells:   make([]Cell, nx*ny),
	}
	for i := range g.cells {
		g.cells[i].Particles = make([]int, 0, cellCap)
	}
	g.linkNeighbors()
	return g
}

func (g *Grid) index(i, j int) int { return i + g.Nx*j }

func (g *Grid) inBounds(i, j int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny
}

// linkNeighbors precomputes, for every cell (i,j), the half-neighborhood
// N+(c) = {(i+1,j)} U {(i-1,j+1), (i,j+1), (i+1,j+1)}, clipped to the
// grid and never including the cell itself.
func (g *Grid) linkNeighbors() {
	offsets := [4][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			c := &g.cells[g.index(i, j)]
			for _, off := range offsets {
				ni, nj := i+off[0], j+off[1]
				if !g.inBounds(ni, nj) {
					continue
				}
				if ni == i && nj == j {
					continue
				}
				c.Neighbors = append(c.Neighbors, &g.cells[g.index(ni, nj)])
			}
		}
	}
}

// SetExtent updates the world extent a grid of this size covers, without
// touching cell topology or reallocating backing arrays. Used when the
// domain is resized but the cell count (nx, ny) stays the same.
func (g *Grid) SetExtent(width, height float64) {
	g.Width, g.Height = width, height
}

// Reset zeroes every cell's occupancy in O(#cells) without reallocating
// the backing arrays.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Particles = g.cells[i].Particles[:0]
	}
}

// cellCoords converts a grid-local position into cell indices, matching
// cell_index(p) = floor(nx*p.x/w) + nx*floor(ny*p.y/h) from the spec.
func (g *Grid) cellCoords(x, y float64) (int, int, bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, 0, false
	}
	i := int(math.Floor(float64(g.Nx) * x / g.Width))
	j := int(math.Floor(float64(g.Ny) * y / g.Height))
	if i >= g.Nx {
		i = g.Nx - 1
	}
	if j >= g.Ny {
		j = g.Ny - 1
	}
	return i, j, true
}

// Bind places particle index idx into the cell covering (x, y) in
// grid-local coordinates. Out-of-bounds positions are silently ignored --
// they will be pulled back in by boundary handling on the next
// integration step. A full cell silently drops the push unless the grid
// is in strict mode, in which case ErrCellOverflow is returned.
func (g *Grid) Bind(idx int, x, y float64) error {
	i, j, ok := g.cellCoords(x, y)
	if !ok {
		return nil
	}
	c := &g.cells[g.index(i, j)]
	if len(c.Particles) >= g.CellCap {
		if g.Strict {
			return ErrCellOverflow
		}
		return nil
	}
	c.Particles = append(c.Particles, idx)
	return nil
}

// CellAt returns the cell covering grid-local (x, y), or nil if out of
// bounds.
func (g *Grid) CellAt(x, y float64) *Cell {
	i, j, ok := g.cellCoords(x, y)
	if !ok {
		return nil
	}
	return &g.cells[g.index(i, j)]
}

// Pairwise calls f(p, q) exactly once for every unordered pair of bound
// particle indices that share a cell or occupy half-neighbor cells. It
// does not filter by distance -- that's left to the density/force passes,
// which already need the squared distance themselves.
func (g *Grid) Pairwise(f func(p, q int)) {
	for ci := range g.cells {
		c := &g.cells[ci]
		n := len(c.Particles)
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				f(c.Particles[a], c.Particles[b])
			}
		}
		for _, nb := range c.Neighbors {
			for _, p := range c.Particles {
				for _, q := range nb.Particles {
					f(p, q)
				}
			}
		}
	}
}

// Cells exposes the backing cell slice for diagnostics (e.g. counting
// bound particles); callers must not mutate it.
func (g *Grid) Cells() []Cell { return g.cells }
