package vtk

import "io"

// WriteManifest emits the multi-block manifest that stitches nblocks block
// files into one logical dataset. Entry i references <prefix><i>.vtr; the
// naming convention is the whole contract with the block writer, and no
// existence validation is performed.
func WriteManifest(w io.Writer, prefix string, nblocks int) error {
	sw := &stickyWriter{w: w}
	sw.printf("<VTKFile type=\"vtkMultiBlockDataSet\" version=\"1.0\">\n")
	sw.printf("<vtkMultiBlockDataSet>\n")
	for i := 0; i < nblocks; i++ {
		sw.printf("<DataSet index=\"%d\" file=\"%s%d.vtr\"/>\n", i, prefix, i)
	}
	sw.printf("</vtkMultiBlockDataSet>\n")
	sw.printf("</VTKFile>")
	return sw.err
}
