package voxel

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GridStats summarizes the contents of a grid.
type GridStats struct {
	Size          int     `yaml:"size" json:"size"`
	TotalVoxels   int     `yaml:"total_voxels" json:"total_voxels"`
	NonZeroVoxels int     `yaml:"non_zero_voxels" json:"non_zero_voxels"`
	Occupancy     float64 `yaml:"occupancy" json:"occupancy"`
	Min           float64 `yaml:"min" json:"min"`
	Max           float64 `yaml:"max" json:"max"`
	Sum           float64 `yaml:"sum" json:"sum"`
	Mean          float64 `yaml:"mean" json:"mean"`
	MeanNonZero   float64 `yaml:"mean_non_zero" json:"mean_non_zero"`
	StdNonZero    float64 `yaml:"std_non_zero" json:"std_non_zero"`
}

// Stats computes summary statistics. The non-zero statistics only consider
// strictly positive voxels; StdNonZero is the population standard deviation.
func Stats(g *Grid) GridStats {
	st := GridStats{Size: g.Size, TotalVoxels: len(g.Data)}
	if len(g.Data) == 0 {
		return st
	}

	st.Min = floats.Min(g.Data)
	st.Max = floats.Max(g.Data)
	st.Sum = floats.Sum(g.Data)
	st.Mean = st.Sum / float64(len(g.Data))

	var nonZero []float64
	for _, v := range g.Data {
		if v > 0 {
			nonZero = append(nonZero, v)
		}
	}
	st.NonZeroVoxels = len(nonZero)
	st.Occupancy = float64(len(nonZero)) / float64(len(g.Data))
	if len(nonZero) > 0 {
		st.MeanNonZero, st.StdNonZero = stat.PopMeanStdDev(nonZero, nil)
	}
	return st
}
