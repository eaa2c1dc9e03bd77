package mesh

import (
	"fmt"
	"math"
)

// Builder assembles a Mesh dimension by dimension: all vertices, then all sides,
// then all triangles. Each record is checked against the collections already
// complete. The Mesh is only handed out by Build, after orientation validation.
type Builder struct {
	m          *Mesh
	stage      Dimension
	convention SideConvention
}

func NewBuilder(convention SideConvention) *Builder {
	return &Builder{
		m:          &Mesh{},
		convention: convention,
	}
}

// Reserve preallocates storage for n records of dimension d
func (b *Builder) Reserve(d Dimension, n int) {
	b.advance(d)
	if n < 0 {
		n = 0
	}
	b.m.geom[d] = newCollection(d, n)
	if d == Vertex {
		b.m.points = make([]float64, 0, n*DOW)
	}
}

func (b *Builder) Len(d Dimension) int {
	b.live()
	return b.m.geom[d].len()
}

func (b *Builder) AddNode(x, y float64, mark int) error {
	b.advance(Vertex)
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return fmt.Errorf("%w: non-finite coordinate (%g, %g)", ErrFormat, x, y)
	}
	c := &b.m.geom[Vertex]
	if c.marks == nil {
		*c = newCollection(Vertex, 0)
	}
	i := c.len()
	c.vertices = append(c.vertices, i)
	c.marks = append(c.marks, mark)
	b.m.points = append(b.m.points, x, y)
	return nil
}

func (b *Builder) AddSide(v0, v1, mark int) error {
	b.advance(Edge)
	nv := b.m.geom[Vertex].len()
	for k, v := range [2]int{v0, v1} {
		if v < 0 || v >= nv {
			return fmt.Errorf("%w: vertex %d index %d out of range [0,%d)", ErrIndex, k, v, nv)
		}
	}
	if v0 == v1 {
		return fmt.Errorf("%w: side joins vertex %d to itself", ErrTopology, v0)
	}
	c := &b.m.geom[Edge]
	if c.marks == nil {
		*c = newCollection(Edge, 0)
	}
	c.vertices = append(c.vertices, v0, v1)
	c.boundary = append(c.boundary, v0, v1)
	c.marks = append(c.marks, mark)
	return nil
}

// AddElement appends a triangle with vertices v and bounding sides s. Triangles
// never carry a boundary mark.
func (b *Builder) AddElement(v, s [3]int) error {
	b.advance(Triangle)
	var (
		nv    = b.m.geom[Vertex].len()
		ns    = b.m.geom[Edge].len()
		sides [3][2]int
	)
	for k := range v {
		if v[k] < 0 || v[k] >= nv {
			return fmt.Errorf("%w: vertex %d index %d out of range [0,%d)", ErrIndex, k, v[k], nv)
		}
	}
	for k := range s {
		if s[k] < 0 || s[k] >= ns {
			return fmt.Errorf("%w: side %d index %d out of range [0,%d)", ErrIndex, k, s[k], ns)
		}
	}
	if s[0] == s[1] || s[1] == s[2] || s[0] == s[2] {
		return fmt.Errorf("%w: sides (%d,%d,%d) are not distinct", ErrTopology, s[0], s[1], s[2])
	}
	edges := &b.m.geom[Edge]
	for k := range s {
		sides[k] = [2]int{edges.vertices[2*s[k]], edges.vertices[2*s[k]+1]}
	}
	if err := b.convention.check(v, sides); err != nil {
		return err
	}
	c := &b.m.geom[Triangle]
	if c.marks == nil {
		*c = newCollection(Triangle, 0)
	}
	c.vertices = append(c.vertices, v[:]...)
	c.boundary = append(c.boundary, s[:]...)
	c.marks = append(c.marks, 0)
	return nil
}

// Build validates triangle orientation and returns the finished Mesh. The
// Builder is spent afterwards, whatever the outcome.
func (b *Builder) Build() (m *Mesh, err error) {
	b.live()
	m, b.m = b.m, nil
	for d := Vertex; d < NDimensions; d++ {
		if m.geom[d].marks == nil {
			m.geom[d] = newCollection(d, 0)
		}
	}
	if err = ValidateOrientation(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (b *Builder) live() {
	if b.m == nil {
		panic("mesh builder used after Build")
	}
}

// advance moves the builder to dimension d. Going back to a completed dimension
// is a programming error.
func (b *Builder) advance(d Dimension) {
	b.live()
	if !d.Valid() {
		panic(fmt.Errorf("invalid dimension %d", uint8(d)))
	}
	if d < b.stage {
		panic(fmt.Errorf("cannot add %v records after %v records", d, b.stage))
	}
	b.stage = d
}
