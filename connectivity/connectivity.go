// Package connectivity derives adjacency between vertices, sides and triangles
// from the records of a loaded mesh. It only reads the mesh.
package connectivity

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/notargets/easymesh/mesh"
)

type Connectivity struct {
	r          mesh.Reader
	nv, ns, nt int
	SpSToT     *sparse.CSR // side to triangle incidence, ns x nt
	SpTToT     *sparse.CSR // shared side counts between triangles, nt x nt
	SpVToS     *sparse.CSR // vertex to side incidence, nv x ns
	SpVToV     *sparse.CSR // vertex adjacency through sides, nv x nv
}

func New(r mesh.Reader) (c *Connectivity) {
	c = &Connectivity{
		r:  r,
		nv: r.NGeometry(mesh.Vertex),
		ns: r.NGeometry(mesh.Edge),
		nt: r.NGeometry(mesh.Triangle),
	}
	// Sparse matrices are allocated with at least one row and column so an
	// empty collection still has a valid shape
	var (
		nv, ns, nt = max(c.nv, 1), max(c.ns, 1), max(c.nt, 1)
		TToS_Tmp   = sparse.NewDOK(nt, ns)
		SToT_Tmp   = sparse.NewDOK(ns, nt)
		SToV_Tmp   = sparse.NewDOK(ns, nv)
		VToS_Tmp   = sparse.NewDOK(nv, ns)
	)
	for t := 0; t < c.nt; t++ {
		for k := 0; k < mesh.Triangle.Arity(); k++ {
			s := r.Boundary(mesh.Triangle, t, k)
			TToS_Tmp.Set(t, s, 1)
			SToT_Tmp.Set(s, t, 1)
		}
	}
	for s := 0; s < c.ns; s++ {
		for k := 0; k < mesh.Edge.Arity(); k++ {
			v := r.Vertex(mesh.Edge, s, k)
			SToV_Tmp.Set(s, v, 1)
			VToS_Tmp.Set(v, s, 1)
		}
	}
	SpTToS := TToS_Tmp.ToCSR()
	c.SpSToT = SToT_Tmp.ToCSR()
	c.SpVToS = VToS_Tmp.ToCSR()
	c.SpTToT = sparse.NewCSR(nt, nt, nil, nil, nil)
	c.SpTToT.Mul(SpTToS, SpTToS.T())
	c.SpVToV = sparse.NewCSR(nv, nv, nil, nil, nil)
	c.SpVToV.Mul(c.SpVToS, SToV_Tmp.ToCSR())
	return
}

// row returns the sorted column indices of the non-zero entries of row i,
// skipping column skip
func row(m *sparse.CSR, i, skip int) (cols []int) {
	raw := m.RawMatrix()
	cols = make([]int, 0, raw.Indptr[i+1]-raw.Indptr[i])
	for j := raw.Indptr[i]; j < raw.Indptr[i+1]; j++ {
		if raw.Data[j] != 0 && raw.Ind[j] != skip {
			cols = append(cols, raw.Ind[j])
		}
	}
	sort.Ints(cols)
	return
}

func check(what string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%s index %d out of range [0,%d)", what, i, n))
	}
}

// SideTriangles returns the triangles bounded by side s
func (c *Connectivity) SideTriangles(s int) []int {
	check("side", s, c.ns)
	return row(c.SpSToT, s, -1)
}

// TriangleNeighbors returns the triangles sharing a side with triangle t
func (c *Connectivity) TriangleNeighbors(t int) []int {
	check("triangle", t, c.nt)
	return row(c.SpTToT, t, t)
}

// VertexSides returns the sides incident to vertex v
func (c *Connectivity) VertexSides(v int) []int {
	check("vertex", v, c.nv)
	return row(c.SpVToS, v, -1)
}

// VertexNeighbors returns the vertices joined to v by a side. This is the
// off-diagonal sparsity pattern of a linear element stiffness matrix row.
func (c *Connectivity) VertexNeighbors(v int) []int {
	check("vertex", v, c.nv)
	return row(c.SpVToV, v, v)
}

// Components groups triangles into the connected components of the dual graph,
// where two triangles are adjacent when they share a side
func (c *Connectivity) Components() (comps [][]int) {
	g := simple.NewUndirectedGraph()
	for t := 0; t < c.nt; t++ {
		g.AddNode(simple.Node(t))
	}
	for t := 0; t < c.nt; t++ {
		for _, n := range c.TriangleNeighbors(t) {
			if n > t {
				g.SetEdge(g.NewEdge(simple.Node(t), simple.Node(n)))
			}
		}
	}
	for _, cc := range topo.ConnectedComponents(g) {
		comp := make([]int, len(cc))
		for i, node := range cc {
			comp[i] = int(node.ID())
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return
}
