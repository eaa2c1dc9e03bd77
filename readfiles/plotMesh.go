package readfiles

import (
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/notargets/easymesh/mesh"
)

// MeshFeatures renders the triangles of r as polygons and every side carrying a
// non-zero boundary mark as a line string
func MeshFeatures(r mesh.Reader) (fc *geojson.FeatureCollection) {
	var (
		nt = r.NGeometry(mesh.Triangle)
		ns = r.NGeometry(mesh.Edge)
	)
	point := func(i int) orb.Point {
		p := r.Point(i)
		return orb.Point{p[0], p[1]}
	}
	fc = geojson.NewFeatureCollection()
	for i := 0; i < nt; i++ {
		var (
			ring  = make(orb.Ring, 0, 4)
			sides = make([]int, 3)
		)
		for k := 0; k < 3; k++ {
			ring = append(ring, point(r.Vertex(mesh.Triangle, i, k)))
			sides[k] = r.Boundary(mesh.Triangle, i, k)
		}
		ring = append(ring, ring[0])
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["dim"] = int(mesh.Triangle)
		f.Properties["index"] = i
		f.Properties["sides"] = sides
		fc.Append(f)
	}
	for i := 0; i < ns; i++ {
		mark := r.BoundaryMark(mesh.Edge, i)
		if mark == 0 {
			continue
		}
		f := geojson.NewFeature(orb.LineString{
			point(r.Vertex(mesh.Edge, i, 0)),
			point(r.Vertex(mesh.Edge, i, 1)),
		})
		f.Properties["dim"] = int(mesh.Edge)
		f.Properties["index"] = i
		f.Properties["mark"] = mark
		fc.Append(f)
	}
	return
}

func ExportGeoJSON(w io.Writer, r mesh.Reader) (err error) {
	var data []byte
	if data, err = MeshFeatures(r).MarshalJSON(); err != nil {
		return fmt.Errorf("unable to encode mesh features: %w", err)
	}
	_, err = w.Write(data)
	return
}

func WriteGeoJSON(filename string, r mesh.Reader) (err error) {
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return
	}
	if err = ExportGeoJSON(file, r); err != nil {
		file.Close()
		return
	}
	return file.Close()
}
