package tables

// TransitionHighResGridIndex returns the index into
// voxelindex.TransitionCellGridPoints for a high-resolution face point at
// local (i, j) in [0,2]x[0,2].
func TransitionHighResGridIndex(i, j int) int { return j*3 + i }

// TransitionLowResGridIndex returns the index into
// voxelindex.TransitionCellGridPoints for a low-resolution face corner at
// local (faceU, faceV) in [0,1]x[0,1].
func TransitionLowResGridIndex(faceU, faceV int) int { return 9 + faceV*2 + faceU }

// TransitionQuadrant is one of the four overlapping pyramids a transition
// cell is decomposed into for marching: a quad of four high-resolution
// face points (the 2x2 sub-block of the 3x3 face grid nearest one
// low-resolution corner) with that corner as the pyramid's apex. Each
// pyramid is marched directly via March and PyramidFaces - two adjacent
// quadrants share a base edge's two grid points, and since a face's
// contour only depends on its own corners (see march.go), they always
// agree on how that shared edge is cut.
type TransitionQuadrant struct {
	// Base, in grid-point indices: base[0] and base[3] are the pyramid
	// base's fixed diagonal, base[1] and base[2] the other two corners.
	Base [4]int
	Apex int
}

// TransitionCellQuadrants returns the four pyramids making up one
// transition cell, in faceU/faceV order matching
// voxelindex.TransitionCellGridPoints' low-resolution corners (9-12).
func TransitionCellQuadrants() [4]TransitionQuadrant {
	var qs [4]TransitionQuadrant
	for faceV := 0; faceV < 2; faceV++ {
		for faceU := 0; faceU < 2; faceU++ {
			q := TransitionQuadrant{
				Base: [4]int{
					TransitionHighResGridIndex(faceU, faceV),
					TransitionHighResGridIndex(faceU+1, faceV),
					TransitionHighResGridIndex(faceU, faceV+1),
					TransitionHighResGridIndex(faceU+1, faceV+1),
				},
				Apex: TransitionLowResGridIndex(faceU, faceV),
			}
			qs[faceV*2+faceU] = q
		}
	}
	return qs
}

// Points returns the pyramid's five grid-point indices in the local order
// PyramidFaces expects: apex first, then the base in perimeter order
// (Base[0], Base[1], Base[3], Base[2]).
func (q TransitionQuadrant) Points() [5]int {
	return [5]int{q.Apex, q.Base[0], q.Base[1], q.Base[3], q.Base[2]}
}
