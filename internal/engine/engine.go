// Package engine is the extraction algorithm itself: given an Oracle, a
// Block, and a Sink, it walks every regular cell and every active
// transition face's high-resolution cells, marches each cell's cube or
// pyramid via internal/tables.March, and feeds the resulting triangles to
// the sink. It is a direct generic port of transvoxel_rs's
// implementation/algorithm.rs, adapted from table-driven regular/
// transition cases to boundary-contour marching (see internal/tables for
// why). The cell walk order and the gradient reuse rule follow
// algorithm.rs; the voxel and vertex caches are Go maps, and vertex reuse
// is keyed by an edge's two endpoint addresses rather than by table-given
// reuse slots (see internal/vertexcache).
package engine

import (
	"github.com/voxelgen/transvoxel/internal/contracts"
	"github.com/voxelgen/transvoxel/internal/profiling"
	"github.com/voxelgen/transvoxel/internal/rotation"
	"github.com/voxelgen/transvoxel/internal/tables"
	"github.com/voxelgen/transvoxel/internal/vertexcache"
	"github.com/voxelgen/transvoxel/internal/voxelcache"
	"github.com/voxelgen/transvoxel/internal/voxelindex"
)

// Extractor owns everything needed to turn one block into a mesh: the
// caller's oracle and sink, the block geometry, the extraction options,
// and the scratch voxel/vertex caches for this one call. Nothing here is
// shared across extractions.
type Extractor[C contracts.Coordinate, V contracts.VoxelData[C]] struct {
	oracle contracts.Oracle[C, V]
	sink   contracts.Sink[C, V]
	block  contracts.Block[C]
	opts   Options[C]

	voxels *voxelcache.Cache[C, V]
	verts  *vertexcache.Cache
}

// New builds an Extractor for one block extraction.
func New[C contracts.Coordinate, V contracts.VoxelData[C]](
	oracle contracts.Oracle[C, V],
	sink contracts.Sink[C, V],
	block contracts.Block[C],
	opts Options[C],
) *Extractor[C, V] {
	return &Extractor[C, V]{
		oracle: oracle,
		sink:   sink,
		block:  block,
		opts:   opts,
		voxels: voxelcache.New[C, V](oracle, block),
		verts:  vertexcache.New(block.Subdivisions),
	}
}

// Extract walks the block and feeds every triangle of its iso-surface to
// the sink. Regular cells run first, then each active transition face -
// matching algorithm.rs's ordering, though nothing downstream depends on
// it since the two phases never touch the same cache entries except at
// their shared boundary, where they intentionally agree.
func (e *Extractor[C, V]) Extract() {
	defer profiling.Track("engine.Extract")()
	e.extractRegularCells()
	e.opts.TransitionFaces.Each(func(side contracts.TransitionSide) {
		e.extractTransitionFace(side)
	})
}

func (e *Extractor[C, V]) extractRegularCells() {
	defer profiling.Track("engine.RegularCells")()
	n := e.block.Subdivisions
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				e.extractRegularCell(voxelindex.RegularCellIndex{X: x, Y: y, Z: z})
			}
		}
	}
}

func (e *Extractor[C, V]) extractRegularCell(cell voxelindex.RegularCellIndex) {
	var corners [8]voxelindex.RegularVoxelIndex
	var data [8]V
	var density [8]C
	for i := 0; i < 8; i++ {
		corners[i] = cell.Corner(i)
		data[i] = e.voxels.RegularAt(corners[i])
		density[i] = data[i].Density()
	}

	inside := func(local int) bool { return contracts.Inside(density[local], e.opts.Threshold) }
	for _, tri := range tables.March(tables.CubeFaces, inside) {
		var vi [3]contracts.VertexIndex
		for k, edge := range tri {
			idxA, idxB := corners[edge.A], corners[edge.B]
			vi[k] = e.regularEdgeVertex(idxA, data[edge.A], density[edge.A], idxB, data[edge.B], density[edge.B])
		}
		e.sink.AddTriangle(vi[0], vi[1], vi[2])
	}
}

func (e *Extractor[C, V]) regularEdgeVertex(idxA voxelindex.RegularVoxelIndex, dataA V, densityA C, idxB voxelindex.RegularVoxelIndex, dataB V, densityB C) contracts.VertexIndex {
	addrA := vertexcache.RegularAddress(idxA.X, idxA.Y, idxA.Z)
	addrB := vertexcache.RegularAddress(idxB.X, idxB.Y, idxB.Z)
	if vi, ok := e.verts.Lookup(addrA, addrB); ok {
		return vi
	}
	gpA := e.regularGridPoint(idxA, dataA)
	gpB := e.regularGridPoint(idxB, dataB)
	t := contracts.Interp(densityA, densityB, e.opts.Threshold)
	vi := e.sink.AddVertexBetween(gpA, gpB, t)
	e.verts.Store(addrA, addrB, vi)
	return vi
}

func (e *Extractor[C, V]) regularGridPoint(idx voxelindex.RegularVoxelIndex, data V) contracts.GridPoint[C, V] {
	cellSize := e.block.CellSize()
	pos := [3]C{
		e.block.Base[0] + C(idx.X)*cellSize,
		e.block.Base[1] + C(idx.Y)*cellSize,
		e.block.Base[2] + C(idx.Z)*cellSize,
	}
	off := e.shrinkOffset(idx)
	pos[0] += off[0]
	pos[1] += off[1]
	pos[2] += off[2]
	return contracts.GridPoint[C, V]{
		Position: pos,
		Gradient: e.regularGradient(idx),
		Data:     data,
	}
}

// shrinkOffset retracts a regular voxel lying on an active transition
// face toward the block interior, by ShrinkFactor of one cell edge along
// each active axis it touches - unless it also touches a boundary that is
// not an active transition face, in which case it is left unshrunk so it
// stays flush with the non-stitched neighbour on that side.
func (e *Extractor[C, V]) shrinkOffset(idx voxelindex.RegularVoxelIndex) [3]C {
	n := e.block.Subdivisions
	type touch struct {
		axis int
		side contracts.TransitionSide
		dir  C
	}
	var touches []touch
	if idx.X == 0 {
		touches = append(touches, touch{0, contracts.LowX, 1})
	}
	if idx.X == n {
		touches = append(touches, touch{0, contracts.HighX, -1})
	}
	if idx.Y == 0 {
		touches = append(touches, touch{1, contracts.LowY, 1})
	}
	if idx.Y == n {
		touches = append(touches, touch{1, contracts.HighY, -1})
	}
	if idx.Z == 0 {
		touches = append(touches, touch{2, contracts.LowZ, 1})
	}
	if idx.Z == n {
		touches = append(touches, touch{2, contracts.HighZ, -1})
	}
	if len(touches) == 0 {
		return [3]C{}
	}
	anyActive, anyInactive := false, false
	for _, t := range touches {
		if e.opts.TransitionFaces.Contains(t.side) {
			anyActive = true
		} else {
			anyInactive = true
		}
	}
	if !anyActive || anyInactive {
		return [3]C{}
	}
	shrink := contracts.ShrinkFactor[C]() * e.block.CellSize()
	var off [3]C
	for _, t := range touches {
		off[t.axis] = t.dir * shrink
	}
	return off
}

func (e *Extractor[C, V]) regularGradient(idx voxelindex.RegularVoxelIndex) [3]C {
	plusX := e.voxels.RegularAt(idx.Plus(voxelindex.RegularVoxelDelta{X: 1})).Density()
	minusX := e.voxels.RegularAt(idx.Plus(voxelindex.RegularVoxelDelta{X: -1})).Density()
	plusY := e.voxels.RegularAt(idx.Plus(voxelindex.RegularVoxelDelta{Y: 1})).Density()
	minusY := e.voxels.RegularAt(idx.Plus(voxelindex.RegularVoxelDelta{Y: -1})).Density()
	plusZ := e.voxels.RegularAt(idx.Plus(voxelindex.RegularVoxelDelta{Z: 1})).Density()
	minusZ := e.voxels.RegularAt(idx.Plus(voxelindex.RegularVoxelDelta{Z: -1})).Density()
	return [3]C{contracts.Diff(plusX, minusX), contracts.Diff(plusY, minusY), contracts.Diff(plusZ, minusZ)}
}

func (e *Extractor[C, V]) extractTransitionFace(side contracts.TransitionSide) {
	defer profiling.Track("engine.TransitionFace." + sideName(side))()
	n := e.block.Subdivisions
	for cellU := 0; cellU < n; cellU++ {
		for cellV := 0; cellV < n; cellV++ {
			e.extractTransitionCell(voxelindex.TransitionCellIndex{Side: side, CellU: cellU, CellV: cellV})
		}
	}
}

func (e *Extractor[C, V]) extractTransitionCell(cell voxelindex.TransitionCellIndex) {
	rot := rotation.ForSide(cell.Side)
	n := e.block.Subdivisions

	var data [13]V
	var density [13]C
	var addr [13]vertexcache.Address
	gp := make([]*contracts.GridPoint[C, V], 13)

	for i, gridPt := range voxelindex.TransitionCellGridPoints {
		if gridPt.HighRes {
			hrIdx := voxelindex.HighResolutionVoxelIndex{Cell: cell, Delta: gridPt.Delta}
			data[i] = e.voxels.TransitionAt(hrIdx)
			density[i] = data[i].Density()
			u := cell.CellU*2 + gridPt.Delta.DU
			v := cell.CellV*2 + gridPt.Delta.DV
			addr[i] = vertexcache.TransitionAddress(cell.Side, u, v)
		} else {
			regIdx := rotation.ToRegularVoxelIndex(rot, n, cell, gridPt.FaceU, gridPt.FaceV)
			data[i] = e.voxels.RegularAt(regIdx)
			density[i] = data[i].Density()
			addr[i] = vertexcache.RegularAddress(regIdx.X, regIdx.Y, regIdx.Z)
		}
	}

	for _, quadrant := range tables.TransitionCellQuadrants() {
		points := quadrant.Points()
		inside := func(local int) bool { return contracts.Inside(density[points[local]], e.opts.Threshold) }
		for _, tri := range tables.March(tables.PyramidFaces, inside) {
			var vi [3]contracts.VertexIndex
			for k, edge := range tri {
				pa, pb := points[edge.A], points[edge.B]
				vi[k] = e.transitionEdgeVertex(cell, rot, pa, pb, addr, data, density, gp)
			}
			e.sink.AddTriangle(vi[0], vi[1], vi[2])
		}
	}
}

func (e *Extractor[C, V]) transitionEdgeVertex(
	cell voxelindex.TransitionCellIndex,
	rot rotation.Rotation,
	pa, pb int,
	addr [13]vertexcache.Address,
	data [13]V,
	density [13]C,
	gp []*contracts.GridPoint[C, V],
) contracts.VertexIndex {
	if vi, ok := e.verts.Lookup(addr[pa], addr[pb]); ok {
		return vi
	}
	if gp[pa] == nil {
		p := e.transitionGridPoint(cell, rot, pa, data[pa])
		gp[pa] = &p
	}
	if gp[pb] == nil {
		p := e.transitionGridPoint(cell, rot, pb, data[pb])
		gp[pb] = &p
	}
	t := contracts.Interp(density[pa], density[pb], e.opts.Threshold)
	vi := e.sink.AddVertexBetween(*gp[pa], *gp[pb], t)
	e.verts.Store(addr[pa], addr[pb], vi)
	return vi
}

func (e *Extractor[C, V]) transitionGridPoint(cell voxelindex.TransitionCellIndex, rot rotation.Rotation, pointIdx int, data V) contracts.GridPoint[C, V] {
	gridPt := voxelindex.TransitionCellGridPoints[pointIdx]
	cellSize := e.block.CellSize()
	if gridPt.HighRes {
		hrIdx := voxelindex.HighResolutionVoxelIndex{Cell: cell, Delta: gridPt.Delta}
		rel := rotation.ToPositionInBlock[C](rot, e.block.Subdivisions, hrIdx)
		pos := [3]C{
			e.block.Base[0] + rel[0]*cellSize,
			e.block.Base[1] + rel[1]*cellSize,
			e.block.Base[2] + rel[2]*cellSize,
		}
		var gradient [3]C
		if hrIdx.OnRegularGrid() {
			gradient = e.regularGradient(rotation.AsRegularIndex(e.block.Subdivisions, hrIdx))
		} else {
			gradient = e.transitionGradient(rot, hrIdx)
		}
		return contracts.GridPoint[C, V]{
			Position: pos,
			Gradient: gradient,
			Data:     data,
		}
	}
	regIdx := rotation.ToRegularVoxelIndex(rot, e.block.Subdivisions, cell, gridPt.FaceU, gridPt.FaceV)
	return e.regularGridPoint(regIdx, data)
}

// transitionGradient computes a high-resolution transition grid point's
// gradient by central differences in UVW along the face's plus_x/y/z_as_uvw
// stencil, sampling through voxelcache.Cache.TransitionAt rather than the
// oracle directly - so a stencil sample that itself lands back on the
// regular grid is served from the regular cache instead of re-querying the
// oracle, and in-face samples are memoized the same as any other
// transition read.
func (e *Extractor[C, V]) transitionGradient(rot rotation.Rotation, hrIdx voxelindex.HighResolutionVoxelIndex) [3]C {
	px := e.voxels.TransitionAt(hrIdx.Plus(rot.PlusXAsUVW)).Density()
	mx := e.voxels.TransitionAt(hrIdx.Minus(rot.PlusXAsUVW)).Density()
	py := e.voxels.TransitionAt(hrIdx.Plus(rot.PlusYAsUVW)).Density()
	my := e.voxels.TransitionAt(hrIdx.Minus(rot.PlusYAsUVW)).Density()
	pz := e.voxels.TransitionAt(hrIdx.Plus(rot.PlusZAsUVW)).Density()
	mz := e.voxels.TransitionAt(hrIdx.Minus(rot.PlusZAsUVW)).Density()
	return [3]C{contracts.Diff(px, mx), contracts.Diff(py, my), contracts.Diff(pz, mz)}
}

func sideName(side contracts.TransitionSide) string {
	switch side {
	case contracts.LowX:
		return "LowX"
	case contracts.HighX:
		return "HighX"
	case contracts.LowY:
		return "LowY"
	case contracts.HighY:
		return "HighY"
	case contracts.LowZ:
		return "LowZ"
	case contracts.HighZ:
		return "HighZ"
	default:
		return "Unknown"
	}
}
