package vtk

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"

	"github.com/gscearl/go-dgtile/dual"
)

// encodedHeaderBytes is the appended-data header width: four uint64 words
// {blockCount=1, rawBytes, rawBytes, compressedBytes}.
const encodedHeaderBytes = 4 * 8

// writeEncoded compresses raw at best speed and emits
// base64(header) || base64(payload) || "\n". The two sections are encoded
// separately, each with its own padding, and concatenated with no
// delimiter. Every call recompresses; outputs are deterministic for a
// given input.
func writeEncoded(w io.Writer, raw []byte) error {
	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, zlib.BestSpeed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCompress, err)
	}
	if _, err = zw.Write(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrCompress, err)
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrCompress, err)
	}

	var header [encodedHeaderBytes]byte
	binary.LittleEndian.PutUint64(header[0:], 1)
	binary.LittleEndian.PutUint64(header[8:], uint64(len(raw)))
	binary.LittleEndian.PutUint64(header[16:], uint64(len(raw)))
	binary.LittleEndian.PutUint64(header[24:], uint64(compressed.Len()))

	enc := base64.StdEncoding
	if _, err = io.WriteString(w, enc.EncodeToString(header[:])); err != nil {
		return err
	}
	if _, err = io.WriteString(w, enc.EncodeToString(compressed.Bytes())); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// typeName maps a scalar element type to its name in the file schema.
func typeName[T dual.Scalar]() string {
	var z T
	switch any(z).(type) {
	case int8:
		return "Int8"
	case int32:
		return "Int32"
	case float32:
		return "Float32"
	case float64:
		return "Float64"
	}
	return ""
}

// scalarBytes flattens vals to its little endian byte layout, the layout
// declared by the enclosing DataArray element.
func scalarBytes[T dual.Scalar](vals []T) []byte {
	switch vs := any(vals).(type) {
	case []int8:
		out := make([]byte, len(vs))
		for i, v := range vs {
			out[i] = byte(v)
		}
		return out
	case []int32:
		out := make([]byte, 4*len(vs))
		for i, v := range vs {
			binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
		}
		return out
	case []float32:
		out := make([]byte, 4*len(vs))
		for i, v := range vs {
			binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
		}
		return out
	case []float64:
		out := make([]byte, 8*len(vs))
		for i, v := range vs {
			binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(v))
		}
		return out
	}
	return nil
}

// writeBinaryArray emits one named binary DataArray from a dual resident
// array. A stale host side is synced first; Sync blocks until the device
// transfer lands.
func writeBinaryArray[T dual.Scalar](w io.Writer, name string, arr *dual.Array[T]) error {
	if !arr.HostCurrent() {
		if err := arr.Sync(); err != nil {
			return err
		}
	}
	if err := writeDataStart(w, typeName[T](), name, arr.Comps()); err != nil {
		return err
	}
	if err := writeEncoded(w, scalarBytes(arr.Host())); err != nil {
		return err
	}
	return writeDataEnd(w)
}

func writeDataStart(w io.Writer, typ, name string, ncomps int) error {
	_, err := fmt.Fprintf(w,
		"<DataArray type=\"%s\" Name=\"%s\" NumberOfComponents=\"%d\" format=\"binary\">\n",
		typ, name, ncomps)
	return err
}

// writeFDataStart opens an ascii FieldData array.
func writeFDataStart(w io.Writer, typ, name string, ntuples int) error {
	_, err := fmt.Fprintf(w,
		"<DataArray type=\"%s\" Name=\"%s\" NumberOfTuples=\"%d\" format=\"ascii\">\n",
		typ, name, ntuples)
	return err
}

func writeDataEnd(w io.Writer) error {
	_, err := io.WriteString(w, "</DataArray>\n")
	return err
}
