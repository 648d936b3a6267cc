package collision

import (
	"math"

	"github.com/akmonengine/rigid3d/actor"
	"github.com/akmonengine/rigid3d/geometry"
)

// OverlapSphereSphere reports whether two spheres touch or overlap:
// |r1+r2| >= d and |r1-r2| < d (one sphere strictly inside the other is
// not a collision, spec.md §4.3).
func OverlapSphereSphere(a, b *actor.Sphere) bool {
	d := b.Position().Sub(a.Position()).Len()
	return (a.Radius+b.Radius) >= d && math.Abs(a.Radius-b.Radius) < d
}

// OverlapSphereOBB reports whether a sphere and a box overlap.
func OverlapSphereOBB(s *actor.Sphere, b *actor.OBB) bool {
	closest := b.ProjectOntoContourOrInside(s.Position())
	d := s.Position().Sub(closest)
	return d.Dot(d) <= s.Radius*s.Radius
}

// OverlapSpherePlane reports whether a sphere and a plane overlap.
func OverlapSpherePlane(s *actor.Sphere, p *actor.Plane) bool {
	return math.Abs(p.SignedDistance(s.Position())) <= s.Radius
}

// OverlapOBBPlane reports whether a box and a plane overlap: separating
// axis test along the plane normal.
func OverlapOBBPlane(b *actor.OBB, p *actor.Plane) bool {
	he := b.HalfExtents
	radius := he.X()*math.Abs(p.Normal.Dot(b.FaceNormalWorld(0))) +
		he.Y()*math.Abs(p.Normal.Dot(b.FaceNormalWorld(2))) +
		he.Z()*math.Abs(p.Normal.Dot(b.FaceNormalWorld(4)))
	return math.Abs(p.SignedDistance(b.Transform.Translation)) <= radius
}

// OverlapPlanePlane reports whether two planes overlap: true unless they
// are parallel with different distances from the origin.
func OverlapPlanePlane(a, b *actor.Plane) bool {
	cross := a.Normal.Cross(b.Normal)
	if cross.Len() > 1e-9 {
		return true
	}
	return math.Abs(a.Distance-b.Distance) < 1e-9
}

// OverlapOBBOBB reports whether two boxes overlap via the full SAT test.
func OverlapOBBOBB(a, b *actor.OBB) bool {
	return !geometry.SATOBBOBB(a, b).Separated
}
