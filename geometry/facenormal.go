// Package geometry holds the polyhedron helpers shared by the overlap
// tests and the contact generators in package collision: face-normal
// computation, polygon clipping against a half-space, and segment/segment
// and segment/plane closest-point routines. Grounded on
// original_source/src/geometry (helper.rs, geometry_traits.rs) and
// original_source/src/math/sat.rs, which the original engine also keeps
// separate from the per-shape-pair intersection and contact routines.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// FaceNormalFromTriangle computes the outward normal of the triangle
// (p0,p1,p2) wound counter-clockwise when viewed from the side the normal
// points to.
func FaceNormalFromTriangle(p0, p1, p2 mgl64.Vec3) mgl64.Vec3 {
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}
