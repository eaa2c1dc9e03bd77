package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/easymesh/mesh"
)

type testMesh struct {
	nodes    [][3]float64
	sides    [][3]int
	elements [][6]int
}

func (tm testMesh) build(t *testing.T) *mesh.Mesh {
	t.Helper()
	b := mesh.NewBuilder(mesh.ConventionAny)
	for _, n := range tm.nodes {
		require.NoError(t, b.AddNode(n[0], n[1], int(n[2])))
	}
	for _, s := range tm.sides {
		require.NoError(t, b.AddSide(s[0], s[1], s[2]))
	}
	for _, e := range tm.elements {
		require.NoError(t, b.AddElement([3]int{e[0], e[1], e[2]}, [3]int{e[3], e[4], e[5]}))
	}
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

var square = testMesh{
	nodes:    [][3]float64{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	sides:    [][3]int{{3, 0, 1}, {0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {0, 2, 0}},
	elements: [][6]int{{0, 1, 2, 1, 2, 4}, {0, 2, 3, 4, 3, 0}},
}

func TestConnectivity_UnitSquare(t *testing.T) {
	c := New(square.build(t))

	assert.Equal(t, []int{0, 1}, c.SideTriangles(4))
	assert.Equal(t, []int{1}, c.SideTriangles(0))
	assert.Equal(t, []int{0}, c.SideTriangles(2))
	assert.Equal(t, []int{1}, c.TriangleNeighbors(0))
	assert.Equal(t, []int{0}, c.TriangleNeighbors(1))
	assert.Equal(t, []int{0, 1, 4}, c.VertexSides(0))
	assert.Equal(t, []int{1, 2, 3}, c.VertexNeighbors(0))
	assert.Equal(t, []int{0, 2}, c.VertexNeighbors(1))
	assert.Equal(t, [][]int{{0, 1}}, c.Components())
	assert.Empty(t, c.Check())

	assert.Panics(t, func() { c.SideTriangles(5) })
	assert.Panics(t, func() { c.TriangleNeighbors(-1) })
}

func TestConnectivity_Diagnostics(t *testing.T) {
	tm := testMesh{
		nodes: [][3]float64{
			{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, // first triangle
			{5, 5, 2}, {6, 5, 2}, {5, 6, 2}, // detached triangle
			{9, 9, 0}, // unused
		},
		sides: [][3]int{
			{0, 1, 1}, {1, 2, 0}, {2, 0, 1},
			{3, 4, 2}, {4, 5, 2}, {5, 3, 2},
			{0, 6, 0},
		},
		elements: [][6]int{{0, 1, 2, 0, 1, 2}, {3, 4, 5, 3, 4, 5}},
	}
	c := New(tm.build(t))
	kinds := make(map[DiagnosticKind][]int)
	for _, d := range c.Check() {
		kinds[d.Kind] = append(kinds[d.Kind], d.Index)
		assert.NotEmpty(t, d.String())
	}
	assert.Equal(t, map[DiagnosticKind][]int{
		OrphanSide:           {6},
		UnmarkedBoundarySide: {1},
		Disconnected:         {1},
	}, kinds)
	assert.Equal(t, [][]int{{0}, {1}}, c.Components())
}

func TestConnectivity_MarkedInteriorAndOrphanVertex(t *testing.T) {
	tm := square
	tm.nodes = append(append([][3]float64{}, square.nodes...), [3]float64{3, 3, 0})
	tm.sides = append([][3]int{}, square.sides...)
	tm.sides[4] = [3]int{0, 2, 7}
	c := New(tm.build(t))
	diags := c.Check()
	require.Len(t, diags, 2)
	assert.Equal(t, OrphanVertex, diags[0].Kind)
	assert.Equal(t, 4, diags[0].Index)
	assert.Equal(t, MarkedInteriorSide, diags[1].Kind)
	assert.Equal(t, 4, diags[1].Index)
}

func TestConnectivity_Empty(t *testing.T) {
	m, err := mesh.NewBuilder(mesh.ConventionSpan).Build()
	require.NoError(t, err)
	c := New(m)
	assert.Empty(t, c.Components())
	assert.Empty(t, c.Check())
}
