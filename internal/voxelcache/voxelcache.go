// Package voxelcache memoizes an Oracle so the engine never samples the
// same world position twice during one extraction. It is a generic port
// of transvoxel_rs's density_caching.rs (PreCachingVoxelSource): the
// block's (N+1)^3 regular voxels are sampled eagerly at construction (every
// one of them is touched by some cell regardless of the iso-surface's
// shape), the one-voxel halo needed for gradient stencils is sampled
// lazily the first time a cell reaches past the block edge, and each
// active transition face's high-resolution voxels are sampled lazily the
// first time that (side, u, v) is read. A transition voxel that coincides
// with the regular grid is always routed through the regular cache rather
// than sampled on its own, so the two addressings never disagree.
package voxelcache

import (
	"github.com/voxelgen/transvoxel/internal/contracts"
	"github.com/voxelgen/transvoxel/internal/rotation"
	"github.com/voxelgen/transvoxel/internal/voxelindex"
)

// Cache is one extraction's memoized view of an Oracle over one block.
type Cache[C contracts.Coordinate, V contracts.VoxelData[C]] struct {
	oracle contracts.Oracle[C, V]
	block  contracts.Block[C]

	n       int // subdivisions
	regular []V // (n+1)^3, row-major x,y,z

	halo map[voxelindex.RegularVoxelIndex]V

	transition map[contracts.TransitionSide]map[[2]int]V
}

// New builds a cache over block, eagerly sampling every regular voxel.
func New[C contracts.Coordinate, V contracts.VoxelData[C]](oracle contracts.Oracle[C, V], block contracts.Block[C]) *Cache[C, V] {
	n := block.Subdivisions
	c := &Cache[C, V]{
		oracle:     oracle,
		block:      block,
		n:          n,
		regular:    make([]V, (n+1)*(n+1)*(n+1)),
		halo:       make(map[voxelindex.RegularVoxelIndex]V),
		transition: make(map[contracts.TransitionSide]map[[2]int]V),
	}
	cell := block.CellSize()
	for z := 0; z <= n; z++ {
		for y := 0; y <= n; y++ {
			for x := 0; x <= n; x++ {
				c.regular[c.regularOffset(x, y, z)] = c.sampleRegular(cell, x, y, z)
			}
		}
	}
	return c
}

func (c *Cache[C, V]) regularOffset(x, y, z int) int {
	n1 := c.n + 1
	return (z*n1+y)*n1 + x
}

func (c *Cache[C, V]) sampleRegular(cellSize C, x, y, z int) V {
	wx := c.block.Base[0] + C(x)*cellSize
	wy := c.block.Base[1] + C(y)*cellSize
	wz := c.block.Base[2] + C(z)*cellSize
	return c.oracle.DataAt(wx, wy, wz)
}

// RegularAt returns the voxel data at a regular voxel index, which may
// reach one step outside the block (the halo). In-block voxels come from
// the eager cache; halo voxels are sampled on first access and memoized.
func (c *Cache[C, V]) RegularAt(idx voxelindex.RegularVoxelIndex) V {
	if idx.X >= 0 && idx.X <= c.n && idx.Y >= 0 && idx.Y <= c.n && idx.Z >= 0 && idx.Z <= c.n {
		return c.regular[c.regularOffset(idx.X, idx.Y, idx.Z)]
	}
	if v, ok := c.halo[idx]; ok {
		return v
	}
	cellSize := c.block.CellSize()
	wx := c.block.Base[0] + C(idx.X)*cellSize
	wy := c.block.Base[1] + C(idx.Y)*cellSize
	wz := c.block.Base[2] + C(idx.Z)*cellSize
	v := c.oracle.DataAt(wx, wy, wz)
	c.halo[idx] = v
	return v
}

// TransitionAt returns the voxel data at a high-resolution transition
// voxel. A voxel that coincides with the block's regular grid (even U and
// V, W exactly 0) is routed through RegularAt instead of sampled
// independently, so it is addressed identically - and sampled at most
// once - whether reached as a regular voxel or as a transition voxel
// (invariant (iii)). A voxel off the face plane (W != 0, used only for
// gradient stencils) is resolved against the oracle on every call rather
// than memoized, since the halo it reaches into has no fixed (u, v) slab
// to key a cache entry by. Everything else - odd U or V, W = 0, within
// the face's UV range - is sampled at world position via
// rotation.ToPositionInBlock and memoized per (side, u, v, w).
func (c *Cache[C, V]) TransitionAt(idx voxelindex.HighResolutionVoxelIndex) V {
	if idx.OnRegularGrid() {
		return c.RegularAt(rotation.AsRegularIndex(c.n, idx))
	}
	if idx.Delta.DW != 0 || !c.inFaceRange(idx) {
		return c.sampleTransition(idx)
	}
	side := idx.Cell.Side
	faceCache, ok := c.transition[side]
	if !ok {
		faceCache = make(map[[2]int]V)
		c.transition[side] = faceCache
	}
	key := [2]int{idx.Cell.CellU*2 + idx.Delta.DU, idx.Cell.CellV*2 + idx.Delta.DV}
	if v, ok := faceCache[key]; ok {
		return v
	}
	v := c.sampleTransition(idx)
	faceCache[key] = v
	return v
}

func (c *Cache[C, V]) inFaceRange(idx voxelindex.HighResolutionVoxelIndex) bool {
	u := idx.Cell.CellU*2 + idx.Delta.DU
	v := idx.Cell.CellV*2 + idx.Delta.DV
	return u >= 0 && u <= 2*c.n && v >= 0 && v <= 2*c.n
}

func (c *Cache[C, V]) sampleTransition(idx voxelindex.HighResolutionVoxelIndex) V {
	rot := rotation.ForSide(idx.Cell.Side)
	rel := rotation.ToPositionInBlock[C](rot, c.n, idx)
	cellSize := c.block.CellSize()
	wx := c.block.Base[0] + rel[0]*cellSize
	wy := c.block.Base[1] + rel[1]*cellSize
	wz := c.block.Base[2] + rel[2]*cellSize
	return c.oracle.DataAt(wx, wy, wz)
}
