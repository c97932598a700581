// Package rotation maps each block face's local UVW coordinate system onto
// the block's world-aligned XYZ, and back. It is a direct port of
// transvoxel_rs's implementation/rotation.rs: the mapping for each of the
// six faces is a fixed linear transform, hardcoded rather than computed,
// because there are only six of them and they never change.
//
// Rotation-dependent conversions live here rather than as methods on
// voxelindex types, so that internal/voxelindex stays a leaf package with
// no dependency on internal/rotation (which itself depends on voxelindex)
// - avoiding an import cycle.
package rotation

import (
	"github.com/voxelgen/transvoxel/internal/contracts"
	"github.com/voxelgen/transvoxel/internal/voxelindex"
)

// xyz is a small integer 3-vector, used only for the fixed rotation
// coefficients below (never exposed outside this package).
type xyz struct{ X, Y, Z int }

// Rotation is the fixed coordinate mapping for one transition face: UVW
// axes expressed in world XYZ (uvwBase, u, v, w), and the reverse mapping
// (plusXAsUVW etc.), the unit world-axis steps in UVW that gradient
// stencils on a transition face walk along.
type Rotation struct {
	Side       contracts.TransitionSide
	UVWBase    xyz
	U, V, W    xyz
	PlusXAsUVW voxelindex.HighResolutionVoxelDelta
	PlusYAsUVW voxelindex.HighResolutionVoxelDelta
	PlusZAsUVW voxelindex.HighResolutionVoxelDelta
}

func mk(
	side contracts.TransitionSide,
	uvwBase, u, v, w [3]int,
	x, y, z [3]int,
) Rotation {
	return Rotation{
		Side:       side,
		UVWBase:    xyz{uvwBase[0], uvwBase[1], uvwBase[2]},
		U:          xyz{u[0], u[1], u[2]},
		V:          xyz{v[0], v[1], v[2]},
		W:          xyz{w[0], w[1], w[2]},
		PlusXAsUVW: voxelindex.HighResolutionVoxelDelta{DU: x[0], DV: x[1], DW: x[2]},
		PlusYAsUVW: voxelindex.HighResolutionVoxelDelta{DU: y[0], DV: y[1], DW: y[2]},
		PlusZAsUVW: voxelindex.HighResolutionVoxelDelta{DU: z[0], DV: z[1], DW: z[2]},
	}
}

// table is indexed by contracts.TransitionSide.Index(). Gives, for each
// face: world coords of UVW base/U/V/W, and UVW coords of world X/Y/Z.
// Verbatim from the reference implementation's ROTATIONS table - these
// coefficients are not derivable from a formula, they are simply the six
// possible axis-permuting rotations and must be reproduced exactly.
var table = [6]Rotation{
	// LowX: +X is +W, +Y is +V, +Z is -U
	mk(contracts.LowX,
		[3]int{0, 0, 1}, [3]int{0, 0, -1}, [3]int{0, 1, 0}, [3]int{1, 0, 0},
		[3]int{0, 0, 1}, [3]int{0, 1, 0}, [3]int{-1, 0, 0}),
	mk(contracts.HighX,
		[3]int{1, 0, 0}, [3]int{0, 0, 1}, [3]int{0, 1, 0}, [3]int{-1, 0, 0},
		[3]int{0, 0, -1}, [3]int{0, 1, 0}, [3]int{1, 0, 0}),
	// LowY: U: +X, V: -Z, W: +Y
	mk(contracts.LowY,
		[3]int{0, 0, 1}, [3]int{1, 0, 0}, [3]int{0, 0, -1}, [3]int{0, 1, 0},
		[3]int{1, 0, 0}, [3]int{0, 0, 1}, [3]int{0, -1, 0}),
	mk(contracts.HighY,
		[3]int{0, 1, 0}, [3]int{1, 0, 0}, [3]int{0, 0, 1}, [3]int{0, -1, 0},
		[3]int{1, 0, 0}, [3]int{0, 0, -1}, [3]int{0, 1, 0}),
	// LowZ: U: +X, V: +Y, W: +Z - the identity case
	mk(contracts.LowZ,
		[3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, 1},
		[3]int{1, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, 1}),
	mk(contracts.HighZ,
		[3]int{1, 0, 1}, [3]int{-1, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, -1},
		[3]int{-1, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, -1}),
}

// ForSide returns the fixed Rotation for a transition face.
func ForSide(side contracts.TransitionSide) Rotation {
	return table[side.Index()]
}

// Default is the identity rotation (LowZ: U=+X, V=+Y, W=+Z), used where the
// reference implementation falls back to Rotation::default().
func Default() Rotation {
	return table[contracts.LowZ.Index()]
}

// ToPositionInBlock converts a high-resolution voxel index to a position
// relative to the block, in [0, blockSubdivisions] along each axis. Uses
// doubled integer coordinates throughout and divides by 2 only once at the
// end, to avoid accumulating half-step rounding error.
func ToPositionInBlock[C contracts.Coordinate](rot Rotation, blockSubdivisions int, v voxelindex.HighResolutionVoxelIndex) [3]C {
	cell, d := v.Cell, v.Delta
	twiceU := 2*cell.CellU + d.DU
	twiceV := 2*cell.CellV + d.DV
	x := rot.UVWBase.X*2*blockSubdivisions + rot.U.X*twiceU + rot.V.X*twiceV + rot.W.X*d.DW
	y := rot.UVWBase.Y*2*blockSubdivisions + rot.U.Y*twiceU + rot.V.Y*twiceV + rot.W.Y*d.DW
	z := rot.UVWBase.Z*2*blockSubdivisions + rot.U.Z*twiceU + rot.V.Z*twiceV + rot.W.Z*d.DW
	return [3]C{C(x) * 0.5, C(y) * 0.5, C(z) * 0.5}
}

// ToRegularVoxelIndex converts a transition cell (plus a UV offset within
// it, 0 or 1 on each axis) to the regular voxel index it coincides with.
func ToRegularVoxelIndex(rot Rotation, blockSubdivisions int, cell voxelindex.TransitionCellIndex, faceU, faceV int) voxelindex.RegularVoxelIndex {
	u := cell.CellU + faceU
	v := cell.CellV + faceV
	x := rot.UVWBase.X*blockSubdivisions + rot.U.X*u + rot.V.X*v
	y := rot.UVWBase.Y*blockSubdivisions + rot.U.Y*u + rot.V.Y*v
	z := rot.UVWBase.Z*blockSubdivisions + rot.U.Z*u + rot.V.Z*v
	return voxelindex.RegularVoxelIndex{X: x, Y: y, Z: z}
}

// AsRegularIndex converts a high-resolution voxel that lies on the regular
// grid (v.OnRegularGrid() must hold) to its coinciding RegularVoxelIndex.
func AsRegularIndex(blockSubdivisions int, v voxelindex.HighResolutionVoxelIndex) voxelindex.RegularVoxelIndex {
	rot := ForSide(v.Cell.Side)
	return ToRegularVoxelIndex(rot, blockSubdivisions, v.Cell, v.Delta.DU/2, v.Delta.DV/2)
}

// ToHigherResNeighbourBlockIndex locates the voxel, in the neighbouring
// (higher-resolution) block across v's transition face, that coincides
// with v. thisBlockSize is this block's subdivision count.
func ToHigherResNeighbourBlockIndex(thisBlockSize int, v voxelindex.HighResolutionVoxelIndex) voxelindex.RegularVoxelIndex {
	higherResBlockSize := thisBlockSize * 2
	cell, d := v.Cell, v.Delta
	rot := ForSide(cell.Side)
	twiceU := 2*cell.CellU + d.DU
	twiceV := 2*cell.CellV + d.DV
	x := higherResBlockSize*(rot.UVWBase.X+rot.W.X) + d.DW*rot.W.X + twiceU*rot.U.X + twiceV*rot.V.X
	y := higherResBlockSize*(rot.UVWBase.Y+rot.W.Y) + d.DW*rot.W.Y + twiceU*rot.U.Y + twiceV*rot.V.Y
	z := higherResBlockSize*(rot.UVWBase.Z+rot.W.Z) + d.DW*rot.W.Z + twiceU*rot.U.Z + twiceV*rot.V.Z
	return voxelindex.RegularVoxelIndex{X: x, Y: y, Z: z}
}
