package voxelindex

import "github.com/voxelgen/transvoxel/internal/contracts"

// TransitionCellIndex addresses one of a transition face's N^2 cells.
// CellU, CellV range over [0, subdivisions).
type TransitionCellIndex struct {
	Side  contracts.TransitionSide
	CellU int
	CellV int
}

// HighResolutionVoxelDelta is an offset from a transition cell's UV
// origin, in units of half a cell edge. U and V range over [-1, 3] (0-2
// lie within the cell, -1 and 3 extend out for gradient stencils); W
// ranges over [-1, 1] (0 is on the face, 1 is toward the block interior,
// -1 is outside the block).
type HighResolutionVoxelDelta struct {
	DU, DV, DW int
}

// HighResolutionVoxelIndex addresses a high-resolution voxel within a
// block: a transition cell plus a delta from its origin.
type HighResolutionVoxelIndex struct {
	Cell  TransitionCellIndex
	Delta HighResolutionVoxelDelta
}

// Plus adds a delta, keeping the same cell.
func (v HighResolutionVoxelIndex) Plus(d HighResolutionVoxelDelta) HighResolutionVoxelIndex {
	return HighResolutionVoxelIndex{v.Cell, HighResolutionVoxelDelta{
		v.Delta.DU + d.DU, v.Delta.DV + d.DV, v.Delta.DW + d.DW,
	}}
}

// Minus subtracts a delta, keeping the same cell.
func (v HighResolutionVoxelIndex) Minus(d HighResolutionVoxelDelta) HighResolutionVoxelIndex {
	return HighResolutionVoxelIndex{v.Cell, HighResolutionVoxelDelta{
		v.Delta.DU - d.DU, v.Delta.DV - d.DV, v.Delta.DW - d.DW,
	}}
}

// OnRegularGrid reports whether this high-resolution voxel coincides with
// a voxel on the block's regular (single-resolution) grid: both U and V
// deltas even, and W exactly 0.
func (v HighResolutionVoxelIndex) OnRegularGrid() bool {
	return v.Delta.DU%2 == 0 && v.Delta.DV%2 == 0 && v.Delta.DW == 0
}

// TransitionCellGridPoint is one of a transition cell's 13 grid points: 9
// on the high-resolution face (a 3x3 pattern), 4 on the low-resolution
// face (the cell's four corners on the block's regular grid).
type TransitionCellGridPoint struct {
	HighRes     bool
	Delta       HighResolutionVoxelDelta // valid when HighRes
	FaceU, FaceV int                     // valid when !HighRes
}

// TransitionCellGridPoints is the fixed 13-entry table addressing a
// transition cell's grid points, verbatim from the reference
// implementation's TRANSITION_CELL_GRID_POINTS: entries 0-8 are the 3x3
// high-resolution face in row-major (u,v) order, entries 9-12 are the
// four low-resolution face corners.
var TransitionCellGridPoints = [13]TransitionCellGridPoint{
	{HighRes: true, Delta: HighResolutionVoxelDelta{0, 0, 0}},
	{HighRes: true, Delta: HighResolutionVoxelDelta{1, 0, 0}},
	{HighRes: true, Delta: HighResolutionVoxelDelta{2, 0, 0}},
	{HighRes: true, Delta: HighResolutionVoxelDelta{0, 1, 0}},
	{HighRes: true, Delta: HighResolutionVoxelDelta{1, 1, 0}},
	{HighRes: true, Delta: HighResolutionVoxelDelta{2, 1, 0}},
	{HighRes: true, Delta: HighResolutionVoxelDelta{0, 2, 0}},
	{HighRes: true, Delta: HighResolutionVoxelDelta{1, 2, 0}},
	{HighRes: true, Delta: HighResolutionVoxelDelta{2, 2, 0}},
	{FaceU: 0, FaceV: 0},
	{FaceU: 1, FaceV: 0},
	{FaceU: 0, FaceV: 1},
	{FaceU: 1, FaceV: 1},
}

// transitionCaseContribution pairs a high-resolution face voxel delta
// with the bit it contributes to the transition cell's 9-bit case number.
type transitionCaseContribution struct {
	Delta        HighResolutionVoxelDelta
	Contribution int
}

// TransitionHighResFaceCaseContributions is the fixed 9-entry table used
// to compute a transition cell's case number from its nine high-resolution
// face voxels. The bit values are not powers of two in delta order - this
// non-power-of-two ordering comes straight from the Transvoxel tables and
// must be reproduced exactly; it is not a derivable formula.
var TransitionHighResFaceCaseContributions = [9]transitionCaseContribution{
	{HighResolutionVoxelDelta{0, 0, 0}, 0x01},
	{HighResolutionVoxelDelta{1, 0, 0}, 0x02},
	{HighResolutionVoxelDelta{2, 0, 0}, 0x04},
	{HighResolutionVoxelDelta{0, 1, 0}, 0x80},
	{HighResolutionVoxelDelta{1, 1, 0}, 0x100},
	{HighResolutionVoxelDelta{2, 1, 0}, 0x08},
	{HighResolutionVoxelDelta{0, 2, 0}, 0x40},
	{HighResolutionVoxelDelta{1, 2, 0}, 0x20},
	{HighResolutionVoxelDelta{2, 2, 0}, 0x10},
}
