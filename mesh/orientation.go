package mesh

import "fmt"

// SignedArea is positive when p0, p1, p2 are counter-clockwise
func SignedArea(p0, p1, p2 [DOW]float64) float64 {
	return 0.5 * ((p1[0]-p0[0])*(p2[1]-p0[1]) - (p2[0]-p0[0])*(p1[1]-p0[1]))
}

// TriangleArea is the signed area of triangle i of r
func TriangleArea(r Reader, i int) float64 {
	return SignedArea(
		r.Point(r.Vertex(Triangle, i, 0)),
		r.Point(r.Vertex(Triangle, i, 1)),
		r.Point(r.Vertex(Triangle, i, 2)),
	)
}

// ValidateOrientation requires every triangle to be strictly counter-clockwise.
// Clockwise or degenerate triangles are rejected, never reordered.
func ValidateOrientation(r Reader) error {
	for i := 0; i < r.NGeometry(Triangle); i++ {
		if area := TriangleArea(r, i); !(area > 0) {
			return &ElementError{
				Index: i,
				Area:  area,
				Err: fmt.Errorf("%w: vertices (%d,%d,%d) are not counter-clockwise, signed area %g",
					ErrOrientation, r.Vertex(Triangle, i, 0), r.Vertex(Triangle, i, 1),
					r.Vertex(Triangle, i, 2), area),
			}
		}
	}
	return nil
}
