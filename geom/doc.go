// Package geom provides the small fixed-size vector and box value types the
// visualization writers work in. Everything is plain arithmetic on value
// types; two dimensional meshes are represented with a degenerate z axis so
// callers never branch on dimensionality for component access.
package geom
