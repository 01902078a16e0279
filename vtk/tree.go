package vtk

import (
	"bytes"
	"io"

	"github.com/gscearl/go-dgtile/dual"
	"github.com/gscearl/go-dgtile/geom"
	"github.com/gscearl/go-dgtile/tree"
)

// cellTypes maps mesh dimensionality to the external format's cell type
// code: vertex, line, quad, hexahedron.
var cellTypes = [4]int8{1, 3, 9, 12}

// cellCorners lists the unit cube corners in the vertex order the cell
// types above expect. 2D cells use the first four entries.
var cellCorners = [8]geom.Vec3i{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

// WriteTree snapshots the tree's current shape to <path>.vtu as an
// unstructured grid with one cell per leaf. The file lands atomically: it
// is either complete under its final name or absent.
func WriteTree(path string, t *tree.Tree, domain geom.Box3) error {
	var buf bytes.Buffer
	if err := writeTreeGrid(&buf, t, domain); err != nil {
		return err
	}
	return writeFileAtomic(path+".vtu", buf.Bytes())
}

// writeTreeGrid emits the unstructured grid. Leaves are collected exactly
// once; connectivity, coordinates and the per leaf cell data all derive
// their ordering from indices into that one sequence.
func writeTreeGrid(w io.Writer, t *tree.Tree, domain geom.Box3) error {
	leaves := tree.CollectLeaves(t)
	nleaves := len(leaves)
	ncorners := 1 << uint(t.Dim)
	npoints := nleaves * ncorners

	sw := &stickyWriter{w: w}
	sw.printf("<VTKFile type=\"UnstructuredGrid\" header_type=\"UInt64\" " +
		"compressor=\"vtkZLibDataCompressor\">\n")
	sw.printf("<UnstructuredGrid>\n")
	sw.printf("<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", npoints, nleaves)

	sw.printf("<Cells>\n")
	types := make([]int8, nleaves)
	for i := range types {
		types[i] = cellTypes[t.Dim]
	}
	if err := writeBinaryArray(sw, "types", dual.Wrap(types, 1)); err != nil {
		return err
	}
	offsets := make([]int32, nleaves)
	for i := range offsets {
		offsets[i] = int32((i + 1) * ncorners)
	}
	if err := writeBinaryArray(sw, "offsets", dual.Wrap(offsets, 1)); err != nil {
		return err
	}
	// Every leaf owns its corner points outright; adjacent leaves do not
	// share geometry, so connectivity is the identity.
	connectivity := make([]int32, npoints)
	for i := range connectivity {
		connectivity[i] = int32(i)
	}
	if err := writeBinaryArray(sw, "connectivity", dual.Wrap(connectivity, 1)); err != nil {
		return err
	}
	sw.printf("</Cells>\n")

	sw.printf("<Points>\n")
	coords := make([]float64, 0, npoints*geom.Dims)
	for _, leaf := range leaves {
		box := tree.BlockDomain(t.Base, leaf.Pt, domain)
		o := box.Lower
		dx := box.Extents()
		for c := 0; c < ncorners; c++ {
			x := o.Add(dx.Mul(cellCorners[c].Vec3()))
			coords = append(coords, x[geom.X], x[geom.Y], x[geom.Z])
		}
	}
	if err := writeBinaryArray(sw, "coordinates", dual.Wrap(coords, geom.Dims)); err != nil {
		return err
	}
	sw.printf("</Points>\n")

	sw.printf("<CellData>\n")
	depths := make([]int32, nleaves)
	ijks := make([]int32, 0, nleaves*geom.Dims)
	for i, leaf := range leaves {
		depths[i] = int32(leaf.Pt.Depth)
		ijks = append(ijks,
			int32(leaf.Pt.IJK[geom.X]),
			int32(leaf.Pt.IJK[geom.Y]),
			int32(leaf.Pt.IJK[geom.Z]))
	}
	if err := writeBinaryArray(sw, "depth", dual.Wrap(depths, 1)); err != nil {
		return err
	}
	if err := writeBinaryArray(sw, "ijk", dual.Wrap(ijks, geom.Dims)); err != nil {
		return err
	}
	sw.printf("</CellData>\n")

	sw.printf("<PointData>\n")
	sw.printf("</PointData>\n")
	sw.printf("</Piece>\n")
	sw.printf("</UnstructuredGrid>\n")
	sw.printf("</VTKFile>\n")
	return sw.err
}
