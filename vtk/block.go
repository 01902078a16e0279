package vtk

import (
	"github.com/gscearl/go-dgtile/geom"
	"github.com/gscearl/go-dgtile/tree"
)

// Block is a read-only view of one grid block of the spatial decomposition.
// The writers consume it; ownership of the underlying mesh state stays with
// the caller.
type Block struct {
	// Degree is the polynomial degree p of the block's basis.
	Degree int
	// Cells holds the per axis cell counts (nx, ny, nz).
	Cells geom.Vec3i
	// Domain is the block's physical box.
	Domain geom.Box3
	// Pt is the block's position in the refinement hierarchy.
	Pt tree.Point
	// ID is the block's unique id, Owner the rank that owns it.
	ID    int
	Owner int
}

// Spacing returns the per axis cell width. Degenerate axes yield zero.
func (b Block) Spacing() geom.Vec3 {
	ext := b.Domain.Extents()
	var dx geom.Vec3
	for axis := 0; axis < geom.Dims; axis++ {
		if b.Cells[axis] > 0 {
			dx[axis] = ext[axis] / float64(b.Cells[axis])
		}
	}
	return dx
}

// wholeExtent is the sample node extent per axis: each cell subdivides into
// p+1 nodes per axis for a degree p representation.
func wholeExtent(b Block) geom.Vec3i {
	return b.Cells.Scale(b.Degree + 1)
}
