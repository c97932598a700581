package transvoxel

import (
	"math"
	"testing"

	"github.com/voxelgen/transvoxel/internal/contracts"
)

func TestAddVertexBetweenInterpolatesPositionLinearly(t *testing.T) {
	b := NewGenericMeshBuilder[float64]()
	a := GridPoint[float64, ScalarDensity[float64]]{Position: [3]float64{0, 0, 0}, Gradient: [3]float64{1, 0, 0}}
	c := GridPoint[float64, ScalarDensity[float64]]{Position: [3]float64{10, 0, 0}, Gradient: [3]float64{1, 0, 0}}

	b.AddVertexBetween(a, c, 0.25)
	mesh := b.Build()

	if mesh.Positions[0] != 2.5 {
		t.Fatalf("interpolated x = %v, want 2.5", mesh.Positions[0])
	}
}

// AddVertexBetween must interpolate the two endpoints' raw gradient
// components and normalize once at the end, not normalize each endpoint
// first and then lerp the unit vectors - the latter does not, in general,
// produce a unit vector at the interpolated point.
func TestAddVertexBetweenNormalizesAfterInterpolatingGradients(t *testing.T) {
	b := NewGenericMeshBuilder[float64]()
	a := GridPoint[float64, ScalarDensity[float64]]{Gradient: [3]float64{1, 0, 0}}
	c := GridPoint[float64, ScalarDensity[float64]]{Gradient: [3]float64{0, 1, 0}}

	b.AddVertexBetween(a, c, 0.5)
	mesh := b.Build()

	wantRaw := [3]float64{0.5, 0.5, 0}
	want := contracts.GradientsToNormal(wantRaw[0], wantRaw[1], wantRaw[2])
	got := [3]float64{mesh.Normals[0], mesh.Normals[1], mesh.Normals[2]}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("normal %v, want %v (normalize-after-lerp of raw gradients)", got, want)
		}
	}
	length := math.Sqrt(got[0]*got[0] + got[1]*got[1] + got[2]*got[2])
	if math.Abs(length-1) > 1e-9 {
		t.Fatalf("normal length %v, want 1", length)
	}
}

func TestAddTriangleAppendsIndices(t *testing.T) {
	b := NewGenericMeshBuilder[float64]()
	b.AddTriangle(2, 0, 1)
	mesh := b.Build()
	if len(mesh.Triangles) != 3 || mesh.Triangles[0] != 2 || mesh.Triangles[1] != 0 || mesh.Triangles[2] != 1 {
		t.Fatalf("Triangles = %v, want [2 0 1]", mesh.Triangles)
	}
	if mesh.NumTriangles() != 1 {
		t.Fatalf("NumTriangles() = %d, want 1", mesh.NumTriangles())
	}
}

func TestTrianglesStructured(t *testing.T) {
	b := NewGenericMeshBuilder[float64]()
	v0 := b.AddVertexBetween(
		GridPoint[float64, ScalarDensity[float64]]{Position: [3]float64{0, 0, 0}, Gradient: [3]float64{0, 0, 1}},
		GridPoint[float64, ScalarDensity[float64]]{Position: [3]float64{2, 0, 0}, Gradient: [3]float64{0, 0, 1}},
		0,
	)
	v1 := b.AddVertexBetween(
		GridPoint[float64, ScalarDensity[float64]]{Position: [3]float64{0, 2, 0}, Gradient: [3]float64{0, 0, 1}},
		GridPoint[float64, ScalarDensity[float64]]{Position: [3]float64{2, 2, 0}, Gradient: [3]float64{0, 0, 1}},
		0,
	)
	v2 := b.AddVertexBetween(
		GridPoint[float64, ScalarDensity[float64]]{Position: [3]float64{0, 0, 2}, Gradient: [3]float64{0, 0, 1}},
		GridPoint[float64, ScalarDensity[float64]]{Position: [3]float64{2, 0, 2}, Gradient: [3]float64{0, 0, 1}},
		0,
	)
	b.AddTriangle(v0, v1, v2)

	tris := b.Build().TrianglesStructured()
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	if tris[0].Vertices[0].Position != [3]float64{0, 0, 0} {
		t.Fatalf("first vertex position = %v, want origin", tris[0].Vertices[0].Position)
	}
}
