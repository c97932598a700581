package engine

import "github.com/voxelgen/transvoxel/internal/contracts"

// Options configures one extraction. It is a plain value passed to New,
// not a global - every call owns its own extraction end to end, so two
// goroutines extracting different blocks never share mutable state.
type Options[C contracts.Coordinate] struct {
	// Threshold is the density value the surface crosses: a voxel is
	// "inside" the surface when its density is greater than Threshold.
	Threshold C

	// TransitionFaces lists which of the block's six faces should be
	// extracted at double resolution to stitch with a more finely
	// subdivided neighbour.
	TransitionFaces contracts.TransitionSides
}

// DefaultOptions returns the zero-threshold, no-transition-faces option
// set: every regular cell, nothing stitched.
func DefaultOptions[C contracts.Coordinate]() Options[C] {
	return Options[C]{Threshold: 0, TransitionFaces: contracts.NoSides()}
}
