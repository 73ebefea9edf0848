package voxel

import "gonum.org/v1/gonum/floats"

// Grid is a cubic voxel grid of side Size. Data is flat with index
// ix*Size*Size + iy*Size + iz.
type Grid struct {
	Size int
	Data []float64
}

// NewGrid allocates a zero-initialized grid.
func NewGrid(n int) *Grid {
	return &Grid{Size: n, Data: make([]float64, n*n*n)}
}

// Index returns the flat buffer index for a voxel.
func (g *Grid) Index(ix, iy, iz int) int {
	return (ix*g.Size+iy)*g.Size + iz
}

// At returns the value of a voxel.
func (g *Grid) At(ix, iy, iz int) float64 {
	return g.Data[g.Index(ix, iy, iz)]
}

// Sum returns the total accumulated energy.
func (g *Grid) Sum() float64 {
	return floats.Sum(g.Data)
}

// Slices copies the grid into a nested [ix][iy][iz] array.
func (g *Grid) Slices() [][][]float64 {
	n := g.Size
	out := make([][][]float64, n)
	for ix := range out {
		out[ix] = make([][]float64, n)
		for iy := range out[ix] {
			start := g.Index(ix, iy, 0)
			out[ix][iy] = append([]float64(nil), g.Data[start:start+n]...)
		}
	}
	return out
}
