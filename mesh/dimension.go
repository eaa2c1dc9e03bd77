package mesh

import "fmt"

// Dimension is the topological dimension of a geometry record
type Dimension uint8

const (
	Vertex Dimension = iota
	Edge
	Triangle
)

// NDimensions is the number of dimension collections held by a planar mesh
const NDimensions = 3

// DOW is the dimension of the embedding space
const DOW = 2

func (d Dimension) String() string {
	switch d {
	case Vertex:
		return "Vertex"
	case Edge:
		return "Edge"
	case Triangle:
		return "Triangle"
	}
	return fmt.Sprintf("Dimension(%d)", uint8(d))
}

// Arity is the number of vertices (and boundary entries, for d > 0) of a record
func (d Dimension) Arity() int {
	switch d {
	case Vertex:
		return 1
	case Edge:
		return 2
	case Triangle:
		return 3
	}
	panic(fmt.Errorf("invalid dimension %d", uint8(d)))
}

func (d Dimension) Valid() bool { return d < NDimensions }
