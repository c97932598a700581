package transvoxel

import (
	"github.com/voxelgen/transvoxel/internal/engine"
)

// ExtractOptions configures one extraction: the density threshold the
// surface crosses, and which of the block's faces should be stitched to
// a higher-resolution neighbour.
type ExtractOptions[C Coordinate] = engine.Options[C]

// DefaultExtractOptions returns threshold zero and no transition faces.
func DefaultExtractOptions[C Coordinate]() ExtractOptions[C] {
	return engine.DefaultOptions[C]()
}

// Extract runs the algorithm over block, sampling density from oracle and
// sending the resulting mesh to sink.
func Extract[C Coordinate, V VoxelData[C]](
	oracle Oracle[C, V],
	sink Sink[C, V],
	block Block[C],
	opts ExtractOptions[C],
) {
	engine.New[C, V](oracle, sink, block, opts).Extract()
}

// ExtractFromField is Extract under the reference implementation's other
// name for the same oracle shape (ScalarField), kept for readers coming
// from there.
func ExtractFromField[C Coordinate, V VoxelData[C]](
	field ScalarField[C, V],
	sink Sink[C, V],
	block Block[C],
	opts ExtractOptions[C],
) {
	Extract[C, V](field, sink, block, opts)
}

// ExtractFromFunc adapts a bare closure to Oracle and runs Extract.
func ExtractFromFunc[C Coordinate, V VoxelData[C]](
	f func(x, y, z C) V,
	sink Sink[C, V],
	block Block[C],
	opts ExtractOptions[C],
) {
	Extract[C, V](OracleFunc[C, V](f), sink, block, opts)
}
