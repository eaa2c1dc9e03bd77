package readfiles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGeoJSON(t *testing.T) {
	m, err := ReadEasyMesh(writeEasyMesh(t, squareNodes, squareSides, squareElements), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportGeoJSON(&buf, m))
	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	// Two triangles and the four marked outer sides, the diagonal is interior
	require.Len(t, fc.Features, 6)

	poly, ok := fc.Features[1].Geometry.(orb.Polygon)
	require.True(t, ok)
	assert.Equal(t, orb.Ring{{0, 0}, {1, 1}, {0, 1}, {0, 0}}, poly[0])
	assert.Equal(t, orb.CCW, poly[0].Orientation())
	assert.Equal(t, 1, fc.Features[1].Properties.MustInt("index"))

	for _, f := range fc.Features[2:] {
		_, ok := f.Geometry.(orb.LineString)
		assert.True(t, ok)
		assert.Equal(t, 1, f.Properties.MustInt("mark"))
		assert.NotEqual(t, 4, f.Properties.MustInt("index"))
	}

	filename := filepath.Join(t.TempDir(), "square.geojson")
	require.NoError(t, WriteGeoJSON(filename, m))
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), data)
}
