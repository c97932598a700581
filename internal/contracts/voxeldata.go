package contracts

// VoxelData is any value that surfaces a density and is otherwise opaque
// to the extraction engine. The engine never inspects fields beyond
// Density; it forwards both endpoints of an edge to the mesh sink so the
// sink can interpolate arbitrary per-vertex attributes (colour, material,
// ...) on its own.
type VoxelData[C Coordinate] interface {
	Density() C
}

// ScalarDensity is the trivial VoxelData: a bare density value with no
// extra payload, for callers who have nothing else to carry per voxel.
// The value is stored as a float64 for every C; Density converts it to C.
type ScalarDensity[C Coordinate] float64

// Density implements VoxelData.
func (d ScalarDensity[C]) Density() C {
	return C(d)
}
