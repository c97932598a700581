package transvoxel

import "github.com/voxelgen/transvoxel/internal/contracts"

// Mesh is a flat, engine-agnostic mesh: consecutive triples in Positions
// and Normals give one vertex's xyz each, and consecutive triples in
// Triangles index three such vertices. Ported from the reference
// implementation's generic_mesh.rs Mesh/GenericMeshBuilder, which exists
// for exactly this purpose - a default Sink for callers who don't already
// have their own mesh representation to build into.
type Mesh[C Coordinate] struct {
	Positions []C
	Normals   []C
	Triangles []int
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh[C]) NumTriangles() int {
	return len(m.Triangles) / 3
}

// Triangle is one triangle's three vertices, copied out for inspection or
// testing.
type Triangle[C Coordinate] struct {
	Vertices [3]Vertex[C]
}

// Vertex is a position and normal, copied out for inspection or testing.
type Vertex[C Coordinate] struct {
	Position [3]C
	Normal   [3]C
}

// TrianglesStructured returns a copy of the mesh's triangles in structured form.
func (m *Mesh[C]) TrianglesStructured() []Triangle[C] {
	out := make([]Triangle[C], 0, m.NumTriangles())
	vertex := func(i int) Vertex[C] {
		return Vertex[C]{
			Position: [3]C{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]},
			Normal:   [3]C{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]},
		}
	}
	for t := 0; t < m.NumTriangles(); t++ {
		i1, i2, i3 := m.Triangles[3*t], m.Triangles[3*t+1], m.Triangles[3*t+2]
		out = append(out, Triangle[C]{Vertices: [3]Vertex[C]{vertex(i1), vertex(i2), vertex(i3)}})
	}
	return out
}

// GenericMeshBuilder is the default Sink implementation: it builds a
// Mesh[C] in place as the engine streams vertices and triangles to it.
// Vertex data is a bare ScalarDensity[C] - GenericMeshBuilder carries no
// per-voxel payload beyond what Mesh itself stores (position, normal).
type GenericMeshBuilder[C Coordinate] struct {
	positions []C
	normals   []C
	triangles []int
}

// NewGenericMeshBuilder returns a fresh, empty builder.
func NewGenericMeshBuilder[C Coordinate]() *GenericMeshBuilder[C] {
	return &GenericMeshBuilder[C]{}
}

// Build consumes the builder and returns the finished Mesh.
func (b *GenericMeshBuilder[C]) Build() *Mesh[C] {
	return &Mesh[C]{Positions: b.positions, Normals: b.normals, Triangles: b.triangles}
}

// AddVertexBetween implements Sink: it linearly interpolates position and
// gradient between the two grid points, normalizes the gradient into a
// surface normal, and appends the new vertex.
func (b *GenericMeshBuilder[C]) AddVertexBetween(a, b2 GridPoint[C, ScalarDensity[C]], t C) VertexIndex {
	var pos, grad [3]C
	for i := 0; i < 3; i++ {
		pos[i] = a.Position[i] + t*(b2.Position[i]-a.Position[i])
		grad[i] = a.Gradient[i] + t*(b2.Gradient[i]-a.Gradient[i])
	}
	normal := contracts.GradientsToNormal(grad[0], grad[1], grad[2])
	index := len(b.positions) / 3
	b.positions = append(b.positions, pos[0], pos[1], pos[2])
	b.normals = append(b.normals, normal[0], normal[1], normal[2])
	return VertexIndex(index)
}

// AddTriangle implements Sink.
func (b *GenericMeshBuilder[C]) AddTriangle(i1, i2, i3 VertexIndex) {
	b.triangles = append(b.triangles, int(i1), int(i2), int(i3))
}
