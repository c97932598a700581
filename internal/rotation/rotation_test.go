package rotation

import (
	"testing"

	"github.com/voxelgen/transvoxel/internal/contracts"
	"github.com/voxelgen/transvoxel/internal/voxelindex"
)

func TestForSideIndexesTheRightEntry(t *testing.T) {
	for _, side := range contracts.AllSides {
		rot := ForSide(side)
		if rot.Side != side {
			t.Errorf("ForSide(%v) returned a Rotation for %v", side, rot.Side)
		}
	}
}

func TestDefaultIsLowZIdentity(t *testing.T) {
	d := Default()
	lowZ := ForSide(contracts.LowZ)
	if d != lowZ {
		t.Errorf("Default() = %+v, want the LowZ entry %+v", d, lowZ)
	}
	if d.U != (xyz{1, 0, 0}) || d.V != (xyz{0, 1, 0}) || d.W != (xyz{0, 0, 1}) {
		t.Errorf("LowZ should be the identity mapping (U=+X, V=+Y, W=+Z), got U=%+v V=%+v W=%+v", d.U, d.V, d.W)
	}
}

// The PlusXAsUVW/PlusYAsUVW/PlusZAsUVW reverse maps must be the inverse of
// U/V/W forward map. Since every Rotation is an axis-permuting orthogonal
// matrix, its inverse is its transpose: PlusXAsUVW should read out row X of
// the forward matrix (U.X, V.X, W.X), and likewise for Y and Z.
func TestReverseMapsAreTheTransposeOfTheForwardMap(t *testing.T) {
	for _, side := range contracts.AllSides {
		rot := ForSide(side)
		wantX := voxelindex.HighResolutionVoxelDelta{DU: rot.U.X, DV: rot.V.X, DW: rot.W.X}
		wantY := voxelindex.HighResolutionVoxelDelta{DU: rot.U.Y, DV: rot.V.Y, DW: rot.W.Y}
		wantZ := voxelindex.HighResolutionVoxelDelta{DU: rot.U.Z, DV: rot.V.Z, DW: rot.W.Z}
		if rot.PlusXAsUVW != wantX {
			t.Errorf("%v: PlusXAsUVW = %+v, want %+v", side, rot.PlusXAsUVW, wantX)
		}
		if rot.PlusYAsUVW != wantY {
			t.Errorf("%v: PlusYAsUVW = %+v, want %+v", side, rot.PlusYAsUVW, wantY)
		}
		if rot.PlusZAsUVW != wantZ {
			t.Errorf("%v: PlusZAsUVW = %+v, want %+v", side, rot.PlusZAsUVW, wantZ)
		}
	}
}

func TestToRegularVoxelIndexIdentityOnLowZ(t *testing.T) {
	rot := ForSide(contracts.LowZ)
	cell := voxelindex.TransitionCellIndex{Side: contracts.LowZ, CellU: 3, CellV: 5}
	got := ToRegularVoxelIndex(rot, 8, cell, 1, 0)
	want := voxelindex.RegularVoxelIndex{X: 4, Y: 5, Z: 0}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestToPositionInBlockIdentityOnLowZ(t *testing.T) {
	rot := ForSide(contracts.LowZ)
	v := voxelindex.HighResolutionVoxelIndex{
		Cell:  voxelindex.TransitionCellIndex{Side: contracts.LowZ, CellU: 2, CellV: 1},
		Delta: voxelindex.HighResolutionVoxelDelta{DU: 1, DV: 0, DW: 0},
	}
	got := ToPositionInBlock[float64](rot, 8, v)
	want := [3]float64{2.5, 1, 0}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAsRegularIndexRoundTripsOnGridPoints(t *testing.T) {
	for _, side := range contracts.AllSides {
		cell := voxelindex.TransitionCellIndex{Side: side, CellU: 1, CellV: 1}
		v := voxelindex.HighResolutionVoxelIndex{Cell: cell, Delta: voxelindex.HighResolutionVoxelDelta{DU: 2, DV: 0, DW: 0}}
		if !v.OnRegularGrid() {
			t.Fatalf("%v: test fixture delta is not on the regular grid", side)
		}
		rot := ForSide(side)
		direct := ToRegularVoxelIndex(rot, 4, cell, 1, 0)
		viaHelper := AsRegularIndex(4, v)
		if direct != viaHelper {
			t.Errorf("%v: ToRegularVoxelIndex = %+v, AsRegularIndex = %+v", side, direct, viaHelper)
		}
	}
}
