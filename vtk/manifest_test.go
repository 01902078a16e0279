package vtk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteManifestThreeBlocks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, "out_", 3))
	want := `<VTKFile type="vtkMultiBlockDataSet" version="1.0">
<vtkMultiBlockDataSet>
<DataSet index="0" file="out_0.vtr"/>
<DataSet index="1" file="out_1.vtr"/>
<DataSet index="2" file="out_2.vtr"/>
</vtkMultiBlockDataSet>
</VTKFile>`
	assert.Equal(t, want, buf.String())
}

func TestWriteManifestSequentialOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, "step12_", 5))
	out := buf.String()
	last := -1
	for i := 0; i < 5; i++ {
		pos := strings.Index(out, `file="step12_`+string(rune('0'+i))+`.vtr"`)
		require.GreaterOrEqual(t, pos, 0, "entry %d missing", i)
		assert.Greater(t, pos, last, "entry %d out of order", i)
		last = pos
	}
}

func TestWriteManifestZeroBlocks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, "out_", 0))
	assert.NotContains(t, buf.String(), "<DataSet")
}
