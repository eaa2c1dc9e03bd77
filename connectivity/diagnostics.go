package connectivity

import (
	"fmt"

	"github.com/notargets/easymesh/mesh"
)

type DiagnosticKind uint8

const (
	OrphanVertex DiagnosticKind = iota
	OrphanSide
	NonManifoldSide
	UnmarkedBoundarySide
	MarkedInteriorSide
	Disconnected
)

func (k DiagnosticKind) String() string {
	return [...]string{"OrphanVertex", "OrphanSide", "NonManifoldSide",
		"UnmarkedBoundarySide", "MarkedInteriorSide", "Disconnected"}[k]
}

// Diagnostic is a non-fatal finding about mesh topology
type Diagnostic struct {
	Kind    DiagnosticKind
	Dim     mesh.Dimension
	Index   int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %v %d: %s", d.Kind, d.Dim, d.Index, d.Message)
}

// Check reports topology the loader accepts but a solver may not expect
func (c *Connectivity) Check() (diags []Diagnostic) {
	add := func(kind DiagnosticKind, d mesh.Dimension, i int, format string, args ...interface{}) {
		diags = append(diags, Diagnostic{Kind: kind, Dim: d, Index: i, Message: fmt.Sprintf(format, args...)})
	}
	for v := 0; v < c.nv; v++ {
		if len(c.VertexSides(v)) == 0 {
			add(OrphanVertex, mesh.Vertex, v, "vertex belongs to no side")
		}
	}
	for s := 0; s < c.ns; s++ {
		var (
			tris = c.SideTriangles(s)
			mark = c.r.BoundaryMark(mesh.Edge, s)
		)
		switch {
		case len(tris) == 0:
			add(OrphanSide, mesh.Edge, s, "side bounds no triangle")
		case len(tris) > 2:
			add(NonManifoldSide, mesh.Edge, s, "side bounds %d triangles %v", len(tris), tris)
		case len(tris) == 1 && mark == 0:
			add(UnmarkedBoundarySide, mesh.Edge, s, "boundary side of triangle %d has interior mark 0", tris[0])
		case len(tris) == 2 && mark != 0:
			add(MarkedInteriorSide, mesh.Edge, s, "interior side between triangles %v has mark %d", tris, mark)
		}
	}
	if comps := c.Components(); len(comps) > 1 {
		for _, comp := range comps[1:] {
			add(Disconnected, mesh.Triangle, comp[0], "component of %d triangles not connected to triangle 0", len(comp))
		}
	}
	return
}
