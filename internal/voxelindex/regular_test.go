package voxelindex

import "testing"

func TestRegularCellIndexCornerMatchesBitConvention(t *testing.T) {
	cell := RegularCellIndex{X: 2, Y: 3, Z: 4}
	for i := 0; i < 8; i++ {
		want := RegularVoxelIndex{
			X: cell.X + i&1,
			Y: cell.Y + (i>>1)&1,
			Z: cell.Z + (i>>2)&1,
		}
		if got := cell.Corner(i); got != want {
			t.Errorf("corner %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestRegularVoxelIndexPlus(t *testing.T) {
	v := RegularVoxelIndex{X: 1, Y: 2, Z: 3}
	got := v.Plus(RegularVoxelDelta{X: -1, Y: 0, Z: 5})
	want := RegularVoxelIndex{X: 0, Y: 2, Z: 8}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRegularCellVoxelsAreTheEightUnitCubeCorners(t *testing.T) {
	seen := make(map[RegularVoxelDelta]bool)
	for _, d := range RegularCellVoxels {
		if d.X < 0 || d.X > 1 || d.Y < 0 || d.Y > 1 || d.Z < 0 || d.Z > 1 {
			t.Fatalf("delta %+v is not a unit-cube corner", d)
		}
		seen[d] = true
	}
	if len(seen) != 8 {
		t.Fatalf("want 8 distinct corners, got %d", len(seen))
	}
}
