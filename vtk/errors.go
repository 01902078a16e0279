package vtk

import "errors"

var (
	// ErrCompress indicates the zlib backend failed. The current file's
	// export is abandoned; no manifest may reference it.
	ErrCompress = errors.New("vtk: zlib compression failed")

	// ErrUnsupportedDegree is returned when coordinate generation is
	// requested for a polynomial degree outside the supported node offset
	// table. It is raised before any coordinate byte is emitted.
	ErrUnsupportedDegree = errors.New("vtk: unsupported polynomial degree")
)
