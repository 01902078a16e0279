package dual

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceMirror struct {
	data   []float64
	copies int
	err    error
}

func (m *sliceMirror) CopyToHost(dst []float64) error {
	if m.err != nil {
		return m.err
	}
	m.copies++
	copy(dst, m.data)
	return nil
}

func TestNewArrayIsHostCurrent(t *testing.T) {
	a := NewArray[int32](4, 2)
	assert.True(t, a.HostCurrent())
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 2, a.Comps())
	assert.Len(t, a.Host(), 8)
}

func TestSyncCopiesDeviceContents(t *testing.T) {
	a := NewArray[float64](3, 1)
	m := &sliceMirror{data: []float64{1.5, 2.5, 3.5}}
	a.AttachMirror(m)
	require.False(t, a.HostCurrent())

	require.NoError(t, a.Sync())
	assert.True(t, a.HostCurrent())
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, a.Host())
	assert.Equal(t, 1, m.copies)

	// Already current: no second copy.
	require.NoError(t, a.Sync())
	assert.Equal(t, 1, m.copies)

	a.MarkDeviceModified()
	require.False(t, a.HostCurrent())
	require.NoError(t, a.Sync())
	assert.Equal(t, 2, m.copies)
}

func TestSyncWithoutMirrorIsNoop(t *testing.T) {
	a := Wrap([]int32{7, 8}, 1)
	a.MarkDeviceModified() // no mirror attached, stays current
	assert.True(t, a.HostCurrent())
	assert.NoError(t, a.Sync())
}

func TestSyncPropagatesMirrorError(t *testing.T) {
	boom := errors.New("transfer failed")
	a := NewArray[float64](1, 1)
	a.AttachMirror(&sliceMirror{err: boom})
	err := a.Sync()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, a.HostCurrent(), "failed sync must not mark host current")
}

func TestAtSetRowMajor(t *testing.T) {
	a := NewArray[int32](2, 3)
	a.Set(1, 2, 42)
	assert.Equal(t, int32(42), a.At(1, 2))
	assert.Equal(t, int32(42), a.Host()[5])
}
