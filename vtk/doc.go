/*
Package vtk serializes simulation state into the VTK XML file family for
consumption by external visualization tools.

Three file kinds are produced:

  - one RectilinearGrid (.vtr) file per block, via RectilinearWriter;
  - one vtkMultiBlockDataSet (.vtm) manifest tying the block files of a
    step together, via WriteManifest;
  - one UnstructuredGrid (.vtu) snapshot of the adaptive tree's leaves,
    via WriteTree.

Binary arrays follow the format's fixed convention: the raw little endian
bytes are deflated with zlib, then a 32 byte header of four uint64s
{1, rawBytes, rawBytes, compressedBytes} and the compressed payload are
base64 encoded separately and concatenated with no delimiter, newline
terminated. Scalar metadata is emitted as plain ascii. The emitted bytes
are a wire format: identical input state must always produce identical
files, so nothing here depends on map iteration or wall clock state.
*/
package vtk
