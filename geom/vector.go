package geom

// Axis indices for Vec3 and Vec3i components.
const (
	X = iota
	Y
	Z
	// Dims is the component count of every vector, regardless of the mesh
	// dimensionality. 2D meshes carry a degenerate z component.
	Dims
)

// Vec3 is a 3 component double precision vector.
type Vec3 [Dims]float64

// Vec3i is a 3 component integer vector.
type Vec3i [Dims]int

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[X] + u[X], v[Y] + u[Y], v[Z] + u[Z]}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[X] - u[X], v[Y] - u[Y], v[Z] - u[Z]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[X], s * v[Y], s * v[Z]}
}

// Mul is the elementwise (hadamard) product.
func (v Vec3) Mul(u Vec3) Vec3 {
	return Vec3{v[X] * u[X], v[Y] * u[Y], v[Z] * u[Z]}
}

// Vec3 widens an integer vector to floating point.
func (v Vec3i) Vec3() Vec3 {
	return Vec3{float64(v[X]), float64(v[Y]), float64(v[Z])}
}

func (v Vec3i) Scale(s int) Vec3i {
	return Vec3i{s * v[X], s * v[Y], s * v[Z]}
}

func (v Vec3i) Add(u Vec3i) Vec3i {
	return Vec3i{v[X] + u[X], v[Y] + u[Y], v[Z] + u[Z]}
}
