package vtk

import (
	"fmt"
	"io"

	"github.com/gscearl/go-dgtile/dual"
	"github.com/gscearl/go-dgtile/geom"
)

// nodeOffsets[p][i mod (p+1)] shifts sample node i off the uniform lattice,
// in units of the node spacing. Degrees 0 and 1 sample uniformly; degree 2
// places the two interior nodes of each cell non-uniformly to match the
// quadratic element's nodal layout.
var nodeOffsets = [3][3]float64{
	{0, 0, 0},
	{0, 0, 0},
	{0, -2.0 / 9.0, 2.0 / 9.0},
}

// maxDegree is the highest degree nodeOffsets covers. Higher degrees are
// rejected, not approximated.
const maxDegree = len(nodeOffsets) - 1

var axisNames = [geom.Dims]string{"x", "y", "z"}

// axisCoordinates generates the (p+1)*cells+1 sample node coordinates along
// one axis: point i sits at lower + i*dx + offset[p][i mod (p+1)]*dx where
// dx is the node spacing spacing/(p+1).
func axisCoordinates(b Block, axis int) ([]float32, error) {
	p := b.Degree
	if p < 0 || p > maxDegree {
		return nil, fmt.Errorf("%w: degree %d", ErrUnsupportedDegree, p)
	}
	n := (p+1)*b.Cells[axis] + 1
	o := b.Domain.Lower[axis]
	dx := b.Spacing()[axis] / float64(p+1)
	pts := make([]float32, n)
	for i := 0; i < n; i++ {
		pts[i] = float32(o + float64(i)*dx + nodeOffsets[p][i%(p+1)]*dx)
	}
	return pts, nil
}

// RectilinearWriter emits one block as a rectilinear grid file in a single
// forward pass: Start, any number of WriteField calls, then End. The writer
// holds no state beyond its destination; interleaving and selection of
// fields is entirely the caller's business.
type RectilinearWriter struct {
	w io.Writer
}

func NewRectilinearWriter(w io.Writer) *RectilinearWriter {
	return &RectilinearWriter{w: w}
}

// Start emits everything up to and including the opening of the CellData
// section: file header, whole extent, ascii block metadata, piece extent
// and the per axis coordinate arrays. An unsupported degree fails before a
// single byte is written.
func (rw *RectilinearWriter) Start(b Block, time float64, step int) error {
	// Validate up front so a degree outside the offset table cannot leave
	// a partially written header behind.
	if b.Degree < 0 || b.Degree > maxDegree {
		return fmt.Errorf("%w: degree %d", ErrUnsupportedDegree, b.Degree)
	}
	n := wholeExtent(b)
	sw := &stickyWriter{w: rw.w}
	sw.printf("<VTKFile type=\"RectilinearGrid\" version=\"1.0\" " +
		"compressor=\"vtkZLibDataCompressor\" header_type=\"UInt64\">\n")
	sw.printf("<RectilinearGrid WholeExtent=\"0 %d 0 %d 0 %d\">\n",
		n[geom.X], n[geom.Y], n[geom.Z])
	writeFieldData(sw, b, time, step)
	sw.printf("<Piece Extent=\"0 %d 0 %d 0 %d\">\n",
		n[geom.X], n[geom.Y], n[geom.Z])
	if err := writeCoordinates(sw, b); err != nil {
		return err
	}
	sw.printf("<CellData>\n")
	return sw.err
}

// End closes the sections Start opened.
func (rw *RectilinearWriter) End() error {
	sw := &stickyWriter{w: rw.w}
	sw.printf("</CellData>\n")
	sw.printf("</Piece>\n")
	sw.printf("</RectilinearGrid>\n")
	sw.printf("</VTKFile>\n")
	return sw.err
}

// WriteField emits one named per cell array into an open CellData section.
// The array may have any component count; its semantics are opaque here. A
// stale host side is synced before the bytes are read.
func WriteField[T dual.Scalar](rw *RectilinearWriter, name string, f *dual.Array[T]) error {
	return writeBinaryArray(rw.w, name, f)
}

// writeFieldData emits the ascii per block metadata: simulation time and
// step, then the block's tree position, id and owner.
func writeFieldData(sw *stickyWriter, b Block, time float64, step int) {
	sw.printf("<FieldData>\n")
	writeFDataStart(sw, "Float64", "TIME", 1)
	sw.printf("%.12e\n", time)
	writeDataEnd(sw)
	writeFDataStart(sw, "Int32", "STEP", 1)
	sw.printf("%d\n", step)
	writeDataEnd(sw)
	writeFDataStart(sw, "Int32", "block_depth", 1)
	sw.printf("%d\n", b.Pt.Depth)
	writeDataEnd(sw)
	writeFDataStart(sw, "Int32", "block_ijk", geom.Dims)
	sw.printf("%d %d %d\n", b.Pt.IJK[geom.X], b.Pt.IJK[geom.Y], b.Pt.IJK[geom.Z])
	writeDataEnd(sw)
	writeFDataStart(sw, "Int32", "block_id", 1)
	sw.printf("%d\n", b.ID)
	writeDataEnd(sw)
	writeFDataStart(sw, "Int32", "block_owner", 1)
	sw.printf("%d\n", b.Owner)
	writeDataEnd(sw)
	sw.printf("</FieldData>\n")
}

func writeCoordinates(sw *stickyWriter, b Block) error {
	sw.printf("<Coordinates>\n")
	for axis := 0; axis < geom.Dims; axis++ {
		pts, err := axisCoordinates(b, axis)
		if err != nil {
			return err
		}
		if err := writeBinaryArray(sw, axisNames[axis], dual.Wrap(pts, 1)); err != nil {
			return err
		}
	}
	sw.printf("</Coordinates>\n")
	return sw.err
}

// stickyWriter latches the first write error and turns subsequent writes
// into no-ops, so emission code reads as a straight run of prints.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *stickyWriter) Write(p []byte) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := sw.w.Write(p)
	sw.err = err
	return n, err
}
