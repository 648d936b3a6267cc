package geometry

import "github.com/go-gl/mathgl/mgl64"

// ClipPolygonAgainstPlane drops every point of the polygon that lies above
// the half-space (normal, pointOnPlane) onto the plane itself, projecting
// it along normal; points on or below the plane are left untouched. This
// is the exact clipping rule spec.md §4.4 describes for OBB/OBB face
// contact generation; it is not Sutherland-Hodgman edge clipping, just a
// per-vertex projection, and it never changes the number of points.
func ClipPolygonAgainstPlane(points []mgl64.Vec3, normal, pointOnPlane mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(points))
	for i, v := range points {
		d := normal.Dot(v.Sub(pointOnPlane))
		if d > 0 {
			out[i] = v.Sub(normal.Mul(d))
		} else {
			out[i] = v
		}
	}
	return out
}
