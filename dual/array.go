package dual

// Scalar enumerates the element types the visualization file family can
// carry.
type Scalar interface {
	int8 | int32 | float32 | float64
}

// Mirror is the device side source of an Array. CopyToHost must block until
// dst holds the device contents; it is called with the array's full host
// slice.
type Mirror[T Scalar] interface {
	CopyToHost(dst []T) error
}

// Array is a dual resident array of Len() tuples with Comps() components
// each, stored row major in one contiguous host slice. When a Mirror is
// attached and the device side has been modified, the host slice is stale
// until Sync completes.
type Array[T Scalar] struct {
	host        []T
	comps       int
	mirror      Mirror[T]
	hostCurrent bool
}

// NewArray allocates a host resident array of n tuples by comps components.
// A freshly allocated array is host current.
func NewArray[T Scalar](n, comps int) *Array[T] {
	return &Array[T]{
		host:        make([]T, n*comps),
		comps:       comps,
		hostCurrent: true,
	}
}

// Wrap adopts an existing host slice as a host current array. len(host)
// must be a multiple of comps.
func Wrap[T Scalar](host []T, comps int) *Array[T] {
	return &Array[T]{host: host, comps: comps, hostCurrent: true}
}

// AttachMirror associates a device side source. Attaching marks the host
// side stale: the mirror is assumed to hold newer contents until Sync.
func (a *Array[T]) AttachMirror(m Mirror[T]) {
	a.mirror = m
	a.hostCurrent = false
}

// MarkDeviceModified records that the device contents have moved ahead of
// the host copy.
func (a *Array[T]) MarkDeviceModified() {
	if a.mirror != nil {
		a.hostCurrent = false
	}
}

// HostCurrent reports whether the host slice reflects the latest contents.
func (a *Array[T]) HostCurrent() bool {
	return a.hostCurrent
}

// Sync blocks until the host slice holds the device contents. It is a no-op
// when the host is already current or no mirror is attached.
func (a *Array[T]) Sync() error {
	if a.hostCurrent || a.mirror == nil {
		return nil
	}
	if err := a.mirror.CopyToHost(a.host); err != nil {
		return err
	}
	a.hostCurrent = true
	return nil
}

// Host returns the backing host slice. Callers that need current contents
// must Sync first.
func (a *Array[T]) Host() []T { return a.host }

// Len returns the tuple count.
func (a *Array[T]) Len() int {
	if a.comps == 0 {
		return 0
	}
	return len(a.host) / a.comps
}

// Comps returns the per tuple component count.
func (a *Array[T]) Comps() int { return a.comps }

// At returns component c of tuple i.
func (a *Array[T]) At(i, c int) T { return a.host[i*a.comps+c] }

// Set writes component c of tuple i on the host side.
func (a *Array[T]) Set(i, c int, v T) { a.host[i*a.comps+c] = v }
