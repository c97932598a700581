// Package transvoxel extracts crack-free iso-surface meshes from a
// density field, using Eric Lengyel's Transvoxel algorithm to stitch
// blocks of differing level of detail along shared faces.
//
// A caller supplies an Oracle (or a plain function, via OracleFunc) that
// answers a density at any world position, a Block describing the region
// and its subdivision count, and a Sink to receive the resulting vertices
// and triangles. Extract (or ExtractFromField/ExtractFromFunc, for the
// common cases) runs the algorithm once and returns.
package transvoxel

import (
	"github.com/voxelgen/transvoxel/internal/contracts"
)

// Coordinate is the numeric scalar used for world positions and
// densities: float32 or float64 (or any named type over either).
type Coordinate = contracts.Coordinate

// VoxelData is the per-voxel payload the engine samples from an Oracle
// and forwards, unmodified, to a Sink. Implementations need only surface
// a Density.
type VoxelData[C Coordinate] = contracts.VoxelData[C]

// ScalarDensity is the trivial VoxelData: a bare density with no
// additional payload.
type ScalarDensity[C Coordinate] = contracts.ScalarDensity[C]

// Block is a cubic region of space plus its subdivision count.
type Block[C Coordinate] = contracts.Block[C]

// TransitionSide identifies one of a block's six faces.
type TransitionSide = contracts.TransitionSide

// TransitionSides is a set of TransitionSide.
type TransitionSides = contracts.TransitionSides

const (
	LowX  = contracts.LowX
	HighX = contracts.HighX
	LowY  = contracts.LowY
	HighY = contracts.HighY
	LowZ  = contracts.LowZ
	HighZ = contracts.HighZ
)

// NoTransitionSides is the empty set of transition faces.
func NoTransitionSides() TransitionSides { return contracts.NoSides() }

// Sides builds a TransitionSides set from individual sides.
func Sides(sides ...TransitionSide) TransitionSides { return contracts.Sides(sides...) }

// GridPoint is a point on the algorithm's internal grid: everything a
// Sink needs to emit a vertex lying between it and another GridPoint.
type GridPoint[C Coordinate, V VoxelData[C]] = contracts.GridPoint[C, V]

// VertexIndex is an opaque handle a Sink returns from AddVertexBetween.
type VertexIndex = contracts.VertexIndex

// Sink receives the vertex-and-triangle stream of an extraction.
type Sink[C Coordinate, V VoxelData[C]] = contracts.Sink[C, V]

// Oracle supplies voxel data at arbitrary world coordinates.
type Oracle[C Coordinate, V VoxelData[C]] = contracts.Oracle[C, V]

// ScalarField is an alias for Oracle, kept for readers coming from the
// reference implementation this engine is ported from, which gives the
// same shape two names depending on context.
type ScalarField[C Coordinate, V VoxelData[C]] = contracts.ScalarField[C, V]

// OracleFunc adapts a bare function to the Oracle interface.
type OracleFunc[C Coordinate, V VoxelData[C]] = contracts.OracleFunc[C, V]

// Shrink is the fraction of one cell edge by which a regular grid point
// on an active transition face is retracted toward the block interior,
// to meet the higher-resolution face without leaving a gap.
func Shrink[C Coordinate]() C { return contracts.ShrinkFactor[C]() }
