package vertexcache

import (
	"testing"

	"github.com/voxelgen/transvoxel/internal/contracts"
)

func TestStoreThenLookupSameOrder(t *testing.T) {
	c := New(4)
	a := RegularAddress(0, 0, 0)
	b := RegularAddress(1, 0, 0)
	c.Store(a, b, contracts.VertexIndex(7))
	got, ok := c.Lookup(a, b)
	if !ok || got != 7 {
		t.Fatalf("Lookup(a,b) = %v, %v; want 7, true", got, ok)
	}
}

func TestLookupIsOrderIndependent(t *testing.T) {
	c := New(4)
	a := RegularAddress(2, 3, 4)
	b := TransitionAddress(contracts.LowX, 5, 6)
	c.Store(a, b, contracts.VertexIndex(3))
	got, ok := c.Lookup(b, a)
	if !ok || got != 3 {
		t.Fatalf("Lookup(b,a) = %v, %v; want 3, true", got, ok)
	}
}

func TestLookupMissReturnsFalse(t *testing.T) {
	c := New(4)
	_, ok := c.Lookup(RegularAddress(0, 0, 0), RegularAddress(1, 1, 1))
	if ok {
		t.Fatalf("expected a miss on an empty cache")
	}
}

func TestDistinctAddressesDoNotCollide(t *testing.T) {
	c := New(4)
	c.Store(RegularAddress(0, 0, 0), RegularAddress(1, 0, 0), contracts.VertexIndex(1))
	c.Store(RegularAddress(0, 0, 0), RegularAddress(0, 1, 0), contracts.VertexIndex(2))
	c.Store(TransitionAddress(contracts.LowX, 0, 0), TransitionAddress(contracts.LowX, 1, 0), contracts.VertexIndex(3))
	c.Store(TransitionAddress(contracts.HighX, 0, 0), TransitionAddress(contracts.HighX, 1, 0), contracts.VertexIndex(4))

	cases := []struct {
		a, b Address
		want contracts.VertexIndex
	}{
		{RegularAddress(0, 0, 0), RegularAddress(1, 0, 0), 1},
		{RegularAddress(0, 0, 0), RegularAddress(0, 1, 0), 2},
		{TransitionAddress(contracts.LowX, 0, 0), TransitionAddress(contracts.LowX, 1, 0), 3},
		{TransitionAddress(contracts.HighX, 0, 0), TransitionAddress(contracts.HighX, 1, 0), 4},
	}
	for _, tc := range cases {
		got, ok := c.Lookup(tc.a, tc.b)
		if !ok || got != tc.want {
			t.Errorf("Lookup(%+v, %+v) = %v, %v; want %v, true", tc.a, tc.b, got, ok, tc.want)
		}
	}
}
