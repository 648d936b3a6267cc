package geometry

import "github.com/go-gl/mathgl/mgl64"

// ClosestPointsSegmentSegment returns the closest pair of points between
// segments (p1,q1) and (p2,q2) (Ericson, Real-Time Collision Detection
// §5.1.9). Degenerate (zero-length) segments are handled by treating the
// degenerate side as a point, sidestepping the division-by-zero spec.md §7
// calls out for colinear/degenerate edges.
func ClosestPointsSegmentSegment(p1, q1, p2, q2 mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	const epsilon = 1e-12

	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)

	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64

	if a <= epsilon && e <= epsilon {
		return p1, p2
	}
	if a <= epsilon {
		s = 0
		t = clamp01(f / e)
	} else {
		c := d1.Dot(r)
		if e <= epsilon {
			t = 0
			s = clamp01(-c / a)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = clamp01((b*f - c*e) / denom)
			} else {
				s = 0
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp01(-c / a)
			} else if t > 1 {
				t = 1
				s = clamp01((b - c) / a)
			}
		}
	}

	c1 := p1.Add(d1.Mul(s))
	c2 := p2.Add(d2.Mul(t))
	return c1, c2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SegmentPlaneIntersection intersects segment (a,b) with the plane
// (normal, pointOnPlane). Returns the intersection point and true if the
// segment crosses the plane; false if the segment is (near-)parallel to
// it (degenerate case, spec.md §7).
func SegmentPlaneIntersection(a, b, normal, pointOnPlane mgl64.Vec3) (mgl64.Vec3, bool) {
	const epsilon = 1e-12

	ab := b.Sub(a)
	denom := normal.Dot(ab)
	if denom > -epsilon && denom < epsilon {
		return mgl64.Vec3{}, false
	}
	t := normal.Dot(pointOnPlane.Sub(a)) / denom
	if t < 0 || t > 1 {
		return mgl64.Vec3{}, false
	}
	return a.Add(ab.Mul(t)), true
}
