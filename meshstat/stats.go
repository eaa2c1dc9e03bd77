package meshstat

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/easymesh/mesh"
	"github.com/notargets/easymesh/utils"
)

type Stats struct {
	NVertices, NSides, NTriangles int
	Bound                         orb.Bound
	TotalArea                     float64
	MinArea, MaxArea, MeanArea    float64
	MinSide, MaxSide              float64
	VertexMarks, SideMarks        map[int]int // boundary mark -> record count
}

// Compute gathers mesh statistics. Triangle areas and side lengths are computed
// by parallelDegree goroutines reading the mesh concurrently.
func Compute(r mesh.Reader, parallelDegree int) (st Stats) {
	st = Stats{
		NVertices:   r.NGeometry(mesh.Vertex),
		NSides:      r.NGeometry(mesh.Edge),
		NTriangles:  r.NGeometry(mesh.Triangle),
		VertexMarks: make(map[int]int),
		SideMarks:   make(map[int]int),
	}
	var mp orb.MultiPoint
	for i := 0; i < st.NVertices; i++ {
		p := r.Point(i)
		mp = append(mp, orb.Point{p[0], p[1]})
		st.VertexMarks[r.BoundaryMark(mesh.Vertex, i)]++
	}
	if len(mp) > 0 {
		st.Bound = mp.Bound()
	}
	for i := 0; i < st.NSides; i++ {
		st.SideMarks[r.BoundaryMark(mesh.Edge, i)]++
	}

	areas := parallelFill(st.NTriangles, parallelDegree, func(i int) float64 {
		return mesh.TriangleArea(r, i)
	})
	lengths := parallelFill(st.NSides, parallelDegree, func(i int) float64 {
		p0, p1 := r.Point(r.Vertex(mesh.Edge, i, 0)), r.Point(r.Vertex(mesh.Edge, i, 1))
		return math.Hypot(p1[0]-p0[0], p1[1]-p0[1])
	})
	if len(areas) > 0 {
		st.TotalArea = floats.Sum(areas)
		st.MinArea, st.MaxArea = floats.Min(areas), floats.Max(areas)
		st.MeanArea = stat.Mean(areas, nil)
	}
	if len(lengths) > 0 {
		st.MinSide, st.MaxSide = floats.Min(lengths), floats.Max(lengths)
	}
	return
}

// parallelFill evaluates f over [0,n), one bucket of the index range per goroutine
func parallelFill(n, parallelDegree int, f func(i int) float64) (vals []float64) {
	vals = make([]float64, n)
	if n == 0 {
		return
	}
	var (
		pm = utils.NewPartitionMap(min(parallelDegree, n), n)
		wg sync.WaitGroup
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				vals[k] = f(k)
			}
		}(np)
	}
	wg.Wait()
	return
}

func (st Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "%d vertices, %d sides, %d triangles\n", st.NVertices, st.NSides, st.NTriangles)
	fmt.Fprintf(w, "Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\n",
		st.Bound.Min[0], st.Bound.Max[0], st.Bound.Min[1], st.Bound.Max[1])
	fmt.Fprintf(w, "Area: total %g, min %g, max %g, mean %g\n",
		st.TotalArea, st.MinArea, st.MaxArea, st.MeanArea)
	fmt.Fprintf(w, "Side length: min %g, max %g\n", st.MinSide, st.MaxSide)
	printMarks := func(label string, marks map[int]int) {
		keys := make([]int, 0, len(marks))
		for k := range marks {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s mark[%d] = %d\n", label, k, marks[k])
		}
	}
	printMarks("Vertex", st.VertexMarks)
	printMarks("Side", st.SideMarks)
}
