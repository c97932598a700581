// Package vertexcache gives each block extraction a scratch cache so that
// a vertex lying on an edge shared by several cells (or, on a transition
// face, by several pyramid quadrants within a cell) is created once and
// reused, rather than re-emitted once per cell that touches it.
//
// The reference implementation's SharedVertexIndices keys reuse with a
// packed "direction + slot" byte decoded from the (absent, see
// internal/tables) proprietary vertex-data tables: each case entry says
// precisely which already-visited neighbour cell owns the vertex for a
// given edge. The contour marching in internal/tables has no equivalent
// per-case table to read that from, but it doesn't need one: an edge
// between two lattice points always interpolates to the same vertex
// regardless of which cell or quadrant produced it, so keying the cache directly by the edge's two
// absolute lattice addresses is sufficient and gives the same crack-free,
// no-duplicate-vertices guarantee with a plain map instead of a
// preallocated flat array.
package vertexcache

import "github.com/voxelgen/transvoxel/internal/contracts"

// Address identifies a lattice point an edge can run between: either a
// regular-grid voxel (Regular true; RX/RY/RZ hold the voxel coordinates)
// or a transition face's high-resolution point
// (Side/U/V, in half-cell units global to that face, so that two
// neighbouring transition cells on the same face compute the same address
// for the point they share).
type Address struct {
	Regular    bool
	RX, RY, RZ int
	Side       contracts.TransitionSide
	U, V       int
}

// RegularAddress builds the address of a regular-grid voxel.
func RegularAddress(x, y, z int) Address {
	return Address{Regular: true, RX: x, RY: y, RZ: z}
}

// TransitionAddress builds the address of a transition face's
// high-resolution point at global half-cell coordinates (u, v) on side.
func TransitionAddress(side contracts.TransitionSide, u, v int) Address {
	return Address{Side: side, U: u, V: v}
}

// edgeKey is an unordered pair of addresses, normalized so lookups don't
// care which endpoint was visited first.
type edgeKey struct{ A, B Address }

func makeEdgeKey(a, b Address) edgeKey {
	if less(b, a) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func less(a, b Address) bool {
	if a.Regular != b.Regular {
		return a.Regular
	}
	if a.Regular {
		if a.RX != b.RX {
			return a.RX < b.RX
		}
		if a.RY != b.RY {
			return a.RY < b.RY
		}
		return a.RZ < b.RZ
	}
	if a.Side != b.Side {
		return a.Side < b.Side
	}
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}

// Cache is a single extraction's scratch vertex-reuse table. It is owned
// by one Extractor call and discarded afterwards - there is no cross-call
// sharing, matching the rest of the engine's per-extraction state.
type Cache struct {
	entries map[edgeKey]contracts.VertexIndex
}

// New returns an empty cache, sized for a block with the given number of
// subdivisions per axis (used only to presize the map; it holds no
// subdivision-dependent logic).
func New(subdivisions int) *Cache {
	return &Cache{entries: make(map[edgeKey]contracts.VertexIndex, 4*subdivisions*subdivisions*subdivisions)}
}

// Lookup returns the vertex previously stored for the edge between a and
// b, if any.
func (c *Cache) Lookup(a, b Address) (contracts.VertexIndex, bool) {
	v, ok := c.entries[makeEdgeKey(a, b)]
	return v, ok
}

// Store records the vertex created for the edge between a and b.
func (c *Cache) Store(a, b Address, v contracts.VertexIndex) {
	c.entries[makeEdgeKey(a, b)] = v
}
