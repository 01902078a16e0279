package geom

// Box3 is an axis aligned box. Degenerate axes (Lower == Upper) are legal
// and represent 2D domains.
type Box3 struct {
	Lower Vec3
	Upper Vec3
}

// Extents returns the per axis widths of the box.
func (b Box3) Extents() Vec3 {
	return b.Upper.Sub(b.Lower)
}
