// Package voxelindex implements the typed index-space arithmetic of the
// extraction algorithm: regular cells and voxels, transition cells, and
// high-resolution voxels within a transition cell. It is a direct port of
// transvoxel_rs's voxel_coordinates.rs: distinct nominal types so that
// mixing index spaces fails to compile rather than producing a silently
// wrong address.
package voxelindex

// RegularCellIndex addresses one of a block's N^3 regular cells.
// X, Y, Z range over [0, subdivisions).
type RegularCellIndex struct {
	X, Y, Z int
}

// RegularVoxelDelta is a relative offset between regular voxels, in units
// of one cell edge.
type RegularVoxelDelta struct {
	X, Y, Z int
}

// RegularVoxelIndex addresses a regular voxel relative to the block. It
// can reach one step outside the block ([-1, subdivisions+1]) because
// gradient stencils need to sample just past the boundary.
type RegularVoxelIndex struct {
	X, Y, Z int
}

// Plus adds a delta to a regular voxel index.
func (v RegularVoxelIndex) Plus(d RegularVoxelDelta) RegularVoxelIndex {
	return RegularVoxelIndex{v.X + d.X, v.Y + d.Y, v.Z + d.Z}
}

// Corner returns the regular voxel index at one of a cell's eight corner
// offsets (the "regular cell voxels" table: corner i has bit 0 of i
// contributing to X, bit 1 to Y, bit 2 to Z).
func (c RegularCellIndex) Corner(i int) RegularVoxelIndex {
	d := RegularCellVoxels[i]
	return RegularVoxelIndex{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// RegularCellVoxels is the fixed table mapping a regular cell's eight
// corner indices (0-7) to their voxel offset from the cell's lowest
// corner. Corner 0 is the cell's own (x,y,z) origin; corner i sets bit 0
// toward +X, bit 1 toward +Y, bit 2 toward +Z - i.e. corner index =
// x + 2y + 4z. Verbatim from the reference implementation's
// REGULAR_CELL_VOXELS table.
var RegularCellVoxels = [8]RegularVoxelDelta{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{1, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{0, 1, 1},
	{1, 1, 1},
}
