package mesh

import "fmt"

// Reader is the read-only query surface consumed by element-space construction,
// assembly and boundary-condition selection
type Reader interface {
	NGeometry(d Dimension) int
	Point(i int) [DOW]float64
	BoundaryMark(d Dimension, i int) int
	Vertex(d Dimension, i, k int) int
	Boundary(d Dimension, i, k int) int
}

// Geometry is a copy of one record of a dimension collection
type Geometry struct {
	Dim          Dimension
	Index        int
	Vertices     []int // indices into the vertex collection
	Boundary     []int // indices into the collection of dimension Dim-1, empty for vertices
	BoundaryMark int
}

// collection stores the records of one dimension flat, with stride Arity
type collection struct {
	dim      Dimension
	vertices []int
	boundary []int
	marks    []int
}

func newCollection(d Dimension, n int) collection {
	c := collection{
		dim:      d,
		vertices: make([]int, 0, n*d.Arity()),
		marks:    make([]int, 0, n),
	}
	if d != Vertex {
		c.boundary = make([]int, 0, n*d.Arity())
	}
	return c
}

func (c *collection) len() int { return len(c.marks) }

// Mesh is an immutable planar simplicial mesh. It is only produced by Builder.Build
// and is safe for concurrent readers.
type Mesh struct {
	points []float64 // Point store, stride DOW
	geom   [NDimensions]collection
}

var _ Reader = (*Mesh)(nil)

func (m *Mesh) NGeometry(d Dimension) int {
	m.checkDim(d)
	return m.geom[d].len()
}

func (m *Mesh) NPoints() int { return len(m.points) / DOW }

func (m *Mesh) Point(i int) (p [DOW]float64) {
	if i < 0 || i >= m.NPoints() {
		panic(fmt.Errorf("point index %d out of range [0,%d)", i, m.NPoints()))
	}
	copy(p[:], m.points[i*DOW:(i+1)*DOW])
	return
}

func (m *Mesh) BoundaryMark(d Dimension, i int) int {
	m.checkRecord(d, i)
	return m.geom[d].marks[i]
}

func (m *Mesh) Vertex(d Dimension, i, k int) int {
	m.checkEntry(d, i, k)
	return m.geom[d].vertices[i*d.Arity()+k]
}

func (m *Mesh) Boundary(d Dimension, i, k int) int {
	if d == Vertex {
		panic(fmt.Errorf("boundary is undefined for dimension %v", d))
	}
	m.checkEntry(d, i, k)
	return m.geom[d].boundary[i*d.Arity()+k]
}

// Geometry returns a copy of record i of dimension d
func (m *Mesh) Geometry(d Dimension, i int) (g Geometry) {
	m.checkRecord(d, i)
	var (
		c = &m.geom[d]
		n = d.Arity()
	)
	g = Geometry{
		Dim:          d,
		Index:        i,
		Vertices:     append([]int(nil), c.vertices[i*n:(i+1)*n]...),
		Boundary:     []int{},
		BoundaryMark: c.marks[i],
	}
	if d != Vertex {
		g.Boundary = append(g.Boundary, c.boundary[i*n:(i+1)*n]...)
	}
	return
}

// SignedArea of triangle i, half the Jacobian determinant of its affine map
func (m *Mesh) SignedArea(i int) float64 {
	m.checkRecord(Triangle, i)
	return TriangleArea(m, i)
}

func (m *Mesh) checkDim(d Dimension) {
	if !d.Valid() {
		panic(fmt.Errorf("invalid dimension %d", uint8(d)))
	}
}

func (m *Mesh) checkRecord(d Dimension, i int) {
	m.checkDim(d)
	if n := m.geom[d].len(); i < 0 || i >= n {
		panic(fmt.Errorf("%v index %d out of range [0,%d)", d, i, n))
	}
}

func (m *Mesh) checkEntry(d Dimension, i, k int) {
	m.checkRecord(d, i)
	if n := d.Arity(); k < 0 || k >= n {
		panic(fmt.Errorf("%v entry %d out of range [0,%d)", d, k, n))
	}
}
