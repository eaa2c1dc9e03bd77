package femspace

import (
	"fmt"

	"github.com/notargets/easymesh/mesh"
	"github.com/notargets/easymesh/utils"
)

// BoundarySelection groups the vertices and sides of a mesh by the condition
// type assigned to their boundary mark
type BoundarySelection struct {
	vertices map[utils.BCType][]int
	sides    map[utils.BCType][]int
}

// SelectBoundary assigns conditions to geometry by material id. Marks without an
// assignment are left unselected. Mark 0 is interior and cannot be assigned.
func SelectBoundary(r mesh.Reader, assign map[int]utils.BCType) (bs *BoundarySelection, err error) {
	for mark, bc := range assign {
		if mark == 0 {
			return nil, fmt.Errorf("boundary mark 0 is interior and cannot carry %v", bc)
		}
		if bc == utils.BCNone {
			return nil, fmt.Errorf("boundary mark %d assigned no condition", mark)
		}
	}
	bs = &BoundarySelection{
		vertices: make(map[utils.BCType][]int),
		sides:    make(map[utils.BCType][]int),
	}
	collect := func(d mesh.Dimension, into map[utils.BCType][]int) {
		for i := 0; i < r.NGeometry(d); i++ {
			if bc, ok := assign[r.BoundaryMark(d, i)]; ok {
				into[bc] = append(into[bc], i)
			}
		}
	}
	collect(mesh.Vertex, bs.vertices)
	collect(mesh.Edge, bs.sides)
	return
}

// Vertices returns the ascending vertex indices carrying condition bc
func (bs *BoundarySelection) Vertices(bc utils.BCType) []int {
	return append([]int(nil), bs.vertices[bc]...)
}

// Sides returns the ascending side indices carrying condition bc
func (bs *BoundarySelection) Sides(bc utils.BCType) []int {
	return append([]int(nil), bs.sides[bc]...)
}
