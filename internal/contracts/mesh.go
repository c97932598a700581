package contracts

// GridPoint is a point on the algorithm's internal grid, used only for
// output purposes: it carries everything needed to emit a vertex between
// it and another grid point. It is not necessarily at the same place as
// the voxel it was sampled from, since grid points on a transition face
// may be retracted ("shrunk") toward the block interior.
type GridPoint[C Coordinate, V VoxelData[C]] struct {
	Position [3]C
	// Gradient holds the raw (un-normalized) density gradient components
	// at this point. A Sink interpolates it alongside Position and
	// normalizes the result itself (see GradientsToNormal) - normalizing
	// per-endpoint first and lerping the unit vectors would not, in
	// general, produce a unit normal at the interpolated point.
	Gradient [3]C
	Data     V
}

// VertexIndex is an opaque handle returned by a Sink when a vertex is
// created. The engine never fabricates or inspects these; it only stores
// them in the shared-vertex cache for later reuse.
type VertexIndex int

// Sink receives the vertex-and-triangle stream that makes up the
// extracted mesh. It is supplied by the caller and is the only path by
// which geometry leaves the engine - the engine itself stores no
// vertices.
type Sink[C Coordinate, V VoxelData[C]] interface {
	// AddVertexBetween is called to create a vertex lying between two
	// grid points, at parameter t along the A-to-B segment (t in [0,1]).
	// The returned index is later passed back via AddTriangle, and may be
	// cached and replayed without AddVertexBetween being called again.
	AddVertexBetween(a, b GridPoint[C, V], t C) VertexIndex

	// AddTriangle is called once per emitted triangle, referencing three
	// indices previously returned by AddVertexBetween.
	AddTriangle(i1, i2, i3 VertexIndex)
}

// Oracle supplies voxel data at arbitrary world coordinates. It must be
// deterministic over the course of one extraction. It may be called with
// coordinates just outside the block (the halo, for gradient sampling)
// and, for transition faces, at half-cell offsets along the face.
type Oracle[C Coordinate, V VoxelData[C]] interface {
	DataAt(x, y, z C) V
}

// ScalarField is an alias for Oracle: the reference implementation this
// engine is ported from gives the user-supplied world-density callable
// two names (ScalarField as the trait object, VoxelSource internally) even
// though the shape callers implement is identical; ExtractFromField keeps
// that name for readers coming from the Rust implementation.
type ScalarField[C Coordinate, V VoxelData[C]] = Oracle[C, V]

// OracleFunc adapts a bare function to the Oracle interface, for callers
// who would rather pass a closure than define a named type.
type OracleFunc[C Coordinate, V VoxelData[C]] func(x, y, z C) V

// DataAt implements Oracle.
func (f OracleFunc[C, V]) DataAt(x, y, z C) V {
	return f(x, y, z)
}
