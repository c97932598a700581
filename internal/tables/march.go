// Package tables triangulates one cell's worth of grid points - a cube for
// a regular cell, a square pyramid for one quadrant of a transition cell -
// given which of its grid points are inside the iso-surface.
//
// The reference implementation does this with Lengyel's proprietary
// Transvoxel lookup tables (transvoxel_data::regular_cell_data /
// transition_cell_data in algorithm.rs), published as compiled data in a
// separate crate that is not present anywhere in this repository's
// retrieved sources - only the call sites that index into them are, and
// this environment has no network access to fetch the tables from their
// public mirrors either. An earlier version of this package filled the gap
// with a Kuhn/Freudenthal marching-tetrahedra decomposition, but that
// produces the wrong number of triangles as soon as a cell's lone inside
// (or outside) corner sits on the tetrahedra's shared diagonal: every tet
// touches that corner, so each emits its own triangle independently
// instead of the single triangle a cube-level case table would give.
//
// March replaces that with boundary-contour tracing directly on the
// cell's own faces, with no lookup table at all: a face with an odd
// number of inside/outside transitions around its perimeter is impossible
// (the transitions must pair up), so each face contributes zero, one, or
// two line segments connecting pairs of its crossing edges. Two cells
// sharing a face always classify that face's corners identically (they
// are the same grid points), and segment construction only looks at a
// face's own corners, so neighbouring cells always agree on how a shared
// face is cut - the same crack-free guarantee the tetrahedral version relied on,
// without the triangle-count defect. Every crossing edge belongs to
// exactly two faces of a cube or a pyramid, and each face connects it to
// exactly one other crossing edge, so the segments collected across all
// faces always decompose into simple cycles; fan-triangulating each cycle
// gives the cell's triangles. See DESIGN.md for the worked proof against
// spec Scenarios 1 and 2.
package tables

// Edge identifies a crossing edge of a cell: the two local grid-point
// indices whose inside/outside status differs. Canonicalized so the
// smaller index is always A, making it usable as a map key regardless of
// which direction a face first encountered it.
type Edge struct{ A, B int }

func canonEdge(a, b int) Edge {
	if a > b {
		return Edge{b, a}
	}
	return Edge{a, b}
}

// Face is one planar face of a cell's polyhedron boundary, given as the
// cyclic sequence of local grid-point indices bounding it.
type Face []int

// segment is the piece of iso-contour one face contributes: a line
// connecting the crossing points on two of its edges.
type segment struct{ E1, E2 Edge }

func faceSegments(face Face, inside func(local int) bool) []segment {
	n := len(face)
	var crossings []Edge
	for i := 0; i < n; i++ {
		a, b := face[i], face[(i+1)%n]
		if inside(a) != inside(b) {
			crossings = append(crossings, canonEdge(a, b))
		}
	}
	switch len(crossings) {
	case 2:
		return []segment{{crossings[0], crossings[1]}}
	case 4:
		// Ambiguous saddle: corners alternate in/out/in/out around the
		// face. Resolved by isolating each same-parity corner with its
		// own segment (pairing cyclically adjacent crossings) rather than
		// connecting across the diagonal. Both faces sharing an edge see
		// the identical corner sequence, so this resolves identically on
		// both sides and never opens a crack.
		return []segment{
			{crossings[0], crossings[1]},
			{crossings[2], crossings[3]},
		}
	default:
		// 0, or (for a well-formed convex cell face) never odd.
		return nil
	}
}

// March triangulates a cell described by faces, given which local grid
// points are inside the surface. Returns each triangle as three crossing
// edges; the caller interpolates each edge's two endpoints to place the
// actual vertex.
func March(faces []Face, inside func(local int) bool) [][3]Edge {
	neighbors := make(map[Edge][]Edge)
	var order []Edge
	addNeighbor := func(e, other Edge) {
		if _, seen := neighbors[e]; !seen {
			order = append(order, e)
		}
		neighbors[e] = append(neighbors[e], other)
	}
	for _, f := range faces {
		for _, s := range faceSegments(f, inside) {
			addNeighbor(s.E1, s.E2)
			addNeighbor(s.E2, s.E1)
		}
	}

	visited := make(map[Edge]bool)
	var triangles [][3]Edge
	for _, start := range order {
		if visited[start] {
			continue
		}
		cycle := []Edge{start}
		visited[start] = true
		prev, cur := Edge{-1, -1}, start
		for step := 0; step < len(order)+1; step++ {
			next := nextInCycle(neighbors[cur], prev)
			if next == start {
				break
			}
			cycle = append(cycle, next)
			visited[next] = true
			prev, cur = cur, next
		}
		for i := 1; i+1 < len(cycle); i++ {
			triangles = append(triangles, [3]Edge{cycle[0], cycle[i], cycle[i+1]})
		}
	}
	return triangles
}

func nextInCycle(candidates []Edge, prev Edge) Edge {
	for _, c := range candidates {
		if c != prev {
			return c
		}
	}
	return candidates[0]
}

// CubeFaces describes a regular cell's six faces for March, using the
// RegularCellVoxels corner convention (corner index = x + 2y + 4z). Each
// face's four corners are listed in a fixed geometric cyclic order so
// that two cells sharing a face always traverse its corners identically.
var CubeFaces = []Face{
	{0, 1, 3, 2}, // z low
	{4, 5, 7, 6}, // z high
	{0, 1, 5, 4}, // y low
	{2, 3, 7, 6}, // y high
	{0, 2, 6, 4}, // x low
	{1, 3, 7, 5}, // x high
}

// PyramidFaces describes one transition-cell quadrant's five faces for
// March: local index 0 is the apex (the transition cell's low-resolution
// corner), 1-4 are the pyramid's square base in perimeter order
// (TransitionQuadrant.Base[0], [1], [3], [2] - base[1] and base[2] are
// diagonal, not adjacent, so the perimeter visits base[3] between them).
var PyramidFaces = []Face{
	{1, 2, 3, 4}, // base
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 4},
	{0, 4, 1},
}
