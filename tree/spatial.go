package tree

import "github.com/gscearl/go-dgtile/geom"

// BlockDomain returns the physical box covered by the block at pt. The
// domain is divided into base.IJK[axis] << (pt.Depth - base.Depth) blocks
// per axis and pt.IJK selects one cell of that partition. Axes absent from
// the base grid (extent zero) stay degenerate.
func BlockDomain(base Point, pt Point, domain geom.Box3) geom.Box3 {
	ext := domain.Extents()
	var box geom.Box3
	for axis := 0; axis < geom.Dims; axis++ {
		n := base.IJK[axis] << uint(pt.Depth-base.Depth)
		if n < 1 {
			n = 1
		}
		dx := ext[axis] / float64(n)
		box.Lower[axis] = domain.Lower[axis] + float64(pt.IJK[axis])*dx
		box.Upper[axis] = box.Lower[axis] + dx
	}
	return box
}
