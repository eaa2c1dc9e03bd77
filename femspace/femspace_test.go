package femspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/easymesh/mesh"
	"github.com/notargets/easymesh/utils"
)

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{TemplateDir: dir}
	assert.Equal(t, filepath.Join(dir, TemplateDOF), cfg.Path(TemplateDOF))

	err := cfg.Validate()
	assert.True(t, errors.Is(err, mesh.ErrIO))
	for _, name := range TemplateFiles {
		require.NoError(t, os.WriteFile(cfg.Path(name), []byte("0\n"), 0644))
	}
	assert.NoError(t, cfg.Validate())

	assert.True(t, errors.Is(Config{}.Validate(), mesh.ErrIO))
	assert.True(t, errors.Is(Config{TemplateDir: cfg.Path(TemplateGeometry)}.Validate(), mesh.ErrIO))
	assert.True(t, errors.Is(Config{TemplateDir: filepath.Join(dir, "missing")}.Validate(), mesh.ErrIO))
}

// strip is three unit squares in a row. The left end (x=0) carries mark 1, the
// right end (x=3) mark 2 and the top and bottom mark 3.
func strip(t *testing.T) *mesh.Mesh {
	t.Helper()
	b := mesh.NewBuilder(mesh.ConventionSpan)
	// 0..3 along y=0, 4..7 along y=1
	for _, n := range [][3]float64{
		{0, 0, 1}, {1, 0, 3}, {2, 0, 3}, {3, 0, 2},
		{0, 1, 1}, {1, 1, 3}, {2, 1, 3}, {3, 1, 2},
	} {
		require.NoError(t, b.AddNode(n[0], n[1], int(n[2])))
	}
	sides := [][3]int{
		{0, 1, 3}, {1, 2, 3}, {2, 3, 3}, // bottom 0-2
		{5, 4, 3}, {6, 5, 3}, {7, 6, 3}, // top 3-5
		{4, 0, 1}, {3, 7, 2}, // ends 6-7
		{1, 5, 0}, {2, 6, 0}, // interior verticals 8-9
		{0, 5, 0}, {1, 6, 0}, {2, 7, 0}, // diagonals 10-12
	}
	for _, s := range sides {
		require.NoError(t, b.AddSide(s[0], s[1], s[2]))
	}
	for _, e := range [][6]int{
		{0, 1, 5, 0, 8, 10}, {0, 5, 4, 10, 3, 6},
		{1, 2, 6, 1, 9, 11}, {1, 6, 5, 11, 4, 8},
		{2, 3, 7, 2, 7, 12}, {2, 7, 6, 12, 5, 9},
	} {
		require.NoError(t, b.AddElement([3]int{e[0], e[1], e[2]}, [3]int{e[3], e[4], e[5]}))
	}
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestSelectBoundary(t *testing.T) {
	m := strip(t)
	bs, err := SelectBoundary(m, map[int]utils.BCType{
		1: utils.BCDirichlet,
		2: utils.BCDirichlet,
		3: utils.BCNeumann,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4, 7}, bs.Vertices(utils.BCDirichlet))
	assert.Equal(t, []int{6, 7}, bs.Sides(utils.BCDirichlet))
	assert.Equal(t, []int{1, 2, 5, 6}, bs.Vertices(utils.BCNeumann))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, bs.Sides(utils.BCNeumann))
	assert.Empty(t, bs.Sides(utils.BCRobin))

	// Unassigned marks are left alone
	bs, err = SelectBoundary(m, map[int]utils.BCType{2: utils.BCRobin})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, bs.Vertices(utils.BCRobin))
	assert.Empty(t, bs.Vertices(utils.BCDirichlet))

	// Returned slices are copies
	v := bs.Vertices(utils.BCRobin)
	v[0] = 100
	assert.Equal(t, []int{3, 7}, bs.Vertices(utils.BCRobin))

	_, err = SelectBoundary(m, map[int]utils.BCType{0: utils.BCDirichlet})
	assert.Error(t, err)
	_, err = SelectBoundary(m, map[int]utils.BCType{1: utils.BCNone})
	assert.Error(t, err)
}
