package collision

import (
	"github.com/akmonengine/rigid3d/actor"
	"github.com/akmonengine/rigid3d/geometry"
)

// Dispatch routes a pair of shapes to its overlap/contact routine and
// returns the contact information with normal_a_to_b oriented from the
// first argument toward the second, or ok=false if they don't overlap
// (spec.md §4.5). Every (Sphere,OBB,Plane) combination is covered by a
// fixed table; cells that reuse a routine with reversed arguments flip
// the returned normal to keep the caller's argument order authoritative.
// Plane/Plane has no contact routine: that cell always returns ok=false,
// whether or not the two planes overlap.
func Dispatch(a, b actor.Shape) (ContactInformation, bool) {
	return dispatchTable[a.Kind()][b.Kind()](a, b)
}

type dispatchFunc func(a, b actor.Shape) (ContactInformation, bool)

var dispatchTable = [3][3]dispatchFunc{
	actor.ShapeSphere: {
		actor.ShapeSphere: dispatchSphereSphere,
		actor.ShapeOBB:    dispatchSphereOBB,
		actor.ShapePlane:  dispatchSpherePlane,
	},
	actor.ShapeOBB: {
		actor.ShapeSphere: dispatchOBBSphere,
		actor.ShapeOBB:    dispatchOBBOBB,
		actor.ShapePlane:  dispatchOBBPlane,
	},
	actor.ShapePlane: {
		actor.ShapeSphere: dispatchPlaneSphere,
		actor.ShapeOBB:    dispatchPlaneOBB,
		actor.ShapePlane:  dispatchPlanePlane,
	},
}

func dispatchSphereSphere(a, b actor.Shape) (ContactInformation, bool) {
	s1, s2 := a.(*actor.Sphere), b.(*actor.Sphere)
	if !OverlapSphereSphere(s1, s2) {
		return ContactInformation{}, false
	}
	return ContactSphereSphere(s1, s2), true
}

func dispatchSpherePlane(a, b actor.Shape) (ContactInformation, bool) {
	s, p := a.(*actor.Sphere), b.(*actor.Plane)
	if !OverlapSpherePlane(s, p) {
		return ContactInformation{}, false
	}
	return ContactPlaneSphere(p, s).flipNormal(), true
}

func dispatchPlaneSphere(a, b actor.Shape) (ContactInformation, bool) {
	p, s := a.(*actor.Plane), b.(*actor.Sphere)
	if !OverlapSpherePlane(s, p) {
		return ContactInformation{}, false
	}
	return ContactPlaneSphere(p, s), true
}

func dispatchOBBSphere(a, b actor.Shape) (ContactInformation, bool) {
	obb, s := a.(*actor.OBB), b.(*actor.Sphere)
	if !OverlapSphereOBB(s, obb) {
		return ContactInformation{}, false
	}
	return ContactOBBSphere(obb, s), true
}

func dispatchSphereOBB(a, b actor.Shape) (ContactInformation, bool) {
	s, obb := a.(*actor.Sphere), b.(*actor.OBB)
	if !OverlapSphereOBB(s, obb) {
		return ContactInformation{}, false
	}
	return ContactOBBSphere(obb, s).flipNormal(), true
}

func dispatchOBBPlane(a, b actor.Shape) (ContactInformation, bool) {
	obb, p := a.(*actor.OBB), b.(*actor.Plane)
	if !OverlapOBBPlane(obb, p) {
		return ContactInformation{}, false
	}
	return ContactOBBPlane(obb, p), true
}

func dispatchPlaneOBB(a, b actor.Shape) (ContactInformation, bool) {
	p, obb := a.(*actor.Plane), b.(*actor.OBB)
	if !OverlapOBBPlane(obb, p) {
		return ContactInformation{}, false
	}
	return ContactOBBPlane(obb, p).flipNormal(), true
}

func dispatchOBBOBB(a, b actor.Shape) (ContactInformation, bool) {
	obb1, obb2 := a.(*actor.OBB), b.(*actor.OBB)
	sat := geometry.SATOBBOBB(obb1, obb2)
	if sat.Separated {
		return ContactInformation{}, false
	}
	return ContactOBBOBB(obb1, obb2, sat), true
}

func dispatchPlanePlane(a, b actor.Shape) (ContactInformation, bool) {
	return ContactInformation{}, false
}
