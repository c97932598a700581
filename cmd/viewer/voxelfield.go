package main

import (
	"math"

	"github.com/voxelgen/transvoxel"
	"github.com/voxelgen/transvoxel/internal/world"
)

// VoxelField is a transvoxel.Oracle over a procedural density: a sphere
// perturbed by 3D octave noise, so extraction has both a clear overall
// silhouette and enough high-frequency detail to exercise transition
// faces and the shared-vertex cache at a block boundary. Grounded on the
// donor's DensityGenerator (internal/world/density.go, since removed -
// see DESIGN.md), reworked from "sample onto a chunk lattice, then
// trilinearly interpolate" into "evaluate continuously at any oracle-
// requested coordinate", which is what an Oracle must do: the engine
// calls it at halo and transition half-cell positions that never sit on
// a fixed lattice.
type VoxelField struct {
	Center [3]float32
	Radius float32
	Seed   int64
}

// DataAt implements transvoxel.Oracle.
func (f VoxelField) DataAt(x, y, z float32) transvoxel.ScalarDensity[float32] {
	dx := float64(x - f.Center[0])
	dy := float64(y - f.Center[1])
	dz := float64(z - f.Center[2])
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

	// Positive density means "inside"; a bare sphere would be
	// radius - dist, here perturbed by low-amplitude octave noise so the
	// surface isn't perfectly round.
	n := world.OctaveNoise3D(dx*0.15, dy*0.15, dz*0.15, f.Seed, 4, 0.5, 2.0)
	bump := float32(n-0.5) * f.Radius * 0.35

	return transvoxel.ScalarDensity[float32](f.Radius + bump - float32(dist))
}
