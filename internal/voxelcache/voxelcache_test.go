package voxelcache

import (
	"testing"

	"github.com/voxelgen/transvoxel/internal/contracts"
	"github.com/voxelgen/transvoxel/internal/voxelindex"
)

type countingOracle struct {
	calls int
	fn    func(x, y, z float64) float64
}

func (o *countingOracle) DataAt(x, y, z float64) contracts.ScalarDensity[float64] {
	o.calls++
	return contracts.ScalarDensity[float64](o.fn(x, y, z))
}

func planeOracle() *countingOracle {
	return &countingOracle{fn: func(x, y, z float64) float64 { return x + y + z }}
}

func TestRegularAtMatchesEagerSample(t *testing.T) {
	oracle := planeOracle()
	block := contracts.Block[float64]{Base: [3]float64{0, 0, 0}, Size: 4, Subdivisions: 4}
	c := New[float64, contracts.ScalarDensity[float64]](oracle, block)

	got := c.RegularAt(voxelindex.RegularVoxelIndex{X: 2, Y: 1, Z: 0})
	if float64(got) != 3 {
		t.Fatalf("RegularAt(2,1,0) = %v, want 3", got)
	}
}

func TestRegularAtDoesNotResampleInBlockVoxels(t *testing.T) {
	oracle := planeOracle()
	block := contracts.Block[float64]{Base: [3]float64{0, 0, 0}, Size: 4, Subdivisions: 4}
	c := New[float64, contracts.ScalarDensity[float64]](oracle, block)
	before := oracle.calls

	c.RegularAt(voxelindex.RegularVoxelIndex{X: 1, Y: 1, Z: 1})
	c.RegularAt(voxelindex.RegularVoxelIndex{X: 1, Y: 1, Z: 1})

	if oracle.calls != before {
		t.Fatalf("RegularAt resampled an in-block voxel: %d extra oracle calls", oracle.calls-before)
	}
}

func TestRegularAtMemoizesHaloSamples(t *testing.T) {
	oracle := planeOracle()
	block := contracts.Block[float64]{Base: [3]float64{0, 0, 0}, Size: 4, Subdivisions: 4}
	c := New[float64, contracts.ScalarDensity[float64]](oracle, block)

	haloIdx := voxelindex.RegularVoxelIndex{X: -1, Y: 0, Z: 0}
	first := oracle.calls
	got1 := c.RegularAt(haloIdx)
	afterFirst := oracle.calls
	got2 := c.RegularAt(haloIdx)
	afterSecond := oracle.calls

	if afterFirst == first {
		t.Fatalf("expected the first halo access to call the oracle")
	}
	if afterSecond != afterFirst {
		t.Fatalf("second halo access should be memoized, called oracle %d more times", afterSecond-afterFirst)
	}
	if got1 != got2 {
		t.Fatalf("memoized halo value changed between calls: %v vs %v", got1, got2)
	}
	if float64(got1) != -1 {
		t.Fatalf("RegularAt(-1,0,0) = %v, want -1", got1)
	}
}

func TestTransitionAtMemoizesPerFacePoint(t *testing.T) {
	oracle := planeOracle()
	block := contracts.Block[float64]{Base: [3]float64{0, 0, 0}, Size: 4, Subdivisions: 4}
	c := New[float64, contracts.ScalarDensity[float64]](oracle, block)

	idx := voxelindex.HighResolutionVoxelIndex{
		Cell:  voxelindex.TransitionCellIndex{Side: contracts.LowZ, CellU: 1, CellV: 1},
		Delta: voxelindex.HighResolutionVoxelDelta{DU: 1, DV: 0, DW: 0},
	}
	before := oracle.calls
	v1 := c.TransitionAt(idx)
	afterFirst := oracle.calls
	v2 := c.TransitionAt(idx)
	afterSecond := oracle.calls

	if afterFirst == before {
		t.Fatalf("expected the first transition access to call the oracle")
	}
	if afterSecond != afterFirst {
		t.Fatalf("second transition access should be memoized, called oracle %d more times", afterSecond-afterFirst)
	}
	if v1 != v2 {
		t.Fatalf("memoized transition value changed between calls: %v vs %v", v1, v2)
	}
}
