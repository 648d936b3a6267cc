package collision

import (
	"testing"

	"github.com/akmonengine/rigid3d/actor"
	"github.com/akmonengine/rigid3d/geometry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func vec3InDelta(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), delta)
	assert.InDelta(t, expected.Y(), actual.Y(), delta)
	assert.InDelta(t, expected.Z(), actual.Z(), delta)
}

func TestOverlapSphereSphereBoundaryTouching(t *testing.T) {
	a := &actor.Sphere{Radius: 1, Transform: actor.Identity()}
	b := &actor.Sphere{Radius: 1, Transform: actor.Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{2, 0, 0}}}
	assert.True(t, OverlapSphereSphere(a, b))
}

func TestOverlapSphereSphereOneInsideOther(t *testing.T) {
	a := &actor.Sphere{Radius: 5, Transform: actor.Identity()}
	b := &actor.Sphere{Radius: 1, Transform: actor.Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{0.5, 0, 0}}}
	assert.False(t, OverlapSphereSphere(a, b))
}

func TestContactSphereSphere(t *testing.T) {
	s1 := &actor.Sphere{Radius: 2, Transform: actor.Identity()}
	s2 := &actor.Sphere{Radius: 1.5, Transform: actor.Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{3, 0, 0}}}

	c := ContactSphereSphere(s1, s2)
	assert.InDelta(t, 0.25, c.PenetrationDistance, 1e-9)
	assert.InDelta(t, 1.75, c.Points[0].X(), 1e-9)
	vec3InDelta(t, mgl64.Vec3{1, 0, 0}, c.NormalAToB, 1e-9)
}

func TestContactOBBPlaneSymmetry(t *testing.T) {
	obb := &actor.OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: actor.Transform{
		Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{0, 0.5, 0},
	}}
	plane := actor.NewPlane(mgl64.Vec3{0, 1, 0}, actor.Identity())

	direct, ok := Dispatch(obb, plane)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, direct.PenetrationDistance, 1e-9)
	vec3InDelta(t, mgl64.Vec3{0, -1, 0}, direct.NormalAToB, 1e-9)
	// Vertex-collection lifts each sunk vertex halfway to the plane
	// (spec.md §4.4), so a vertex at y=-0.5 against a plane at y=0
	// lands at y=-0.25, not on the plane itself.
	if assert.Len(t, direct.Points, 4) {
		for _, p := range direct.Points {
			assert.InDelta(t, -0.25, p.Y(), 1e-9)
		}
	}

	reversed, ok := Dispatch(plane, obb)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, reversed.PenetrationDistance, 1e-9)
	vec3InDelta(t, direct.NormalAToB.Mul(-1), reversed.NormalAToB, 1e-9)
	assert.Len(t, reversed.Points, len(direct.Points))
}

func TestContactOBBOBBFaceContact(t *testing.T) {
	a := &actor.OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: actor.Identity()}
	b := &actor.OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: actor.Transform{
		Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{1.5, 0, 0},
	}}

	sat := geometry.SATOBBOBB(a, b)
	assert.False(t, sat.Separated)

	c := ContactOBBOBB(a, b, sat)
	assert.InDelta(t, 0.5, c.PenetrationDistance, 1e-9)
	assert.True(t, c.NormalAToB.X() > 0)
	assert.NotEmpty(t, c.Points)
}

func TestDispatchFlipsNormalForReversedCell(t *testing.T) {
	s := &actor.Sphere{Radius: 1, Transform: actor.Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{1.5, 0, 0}}}
	obb := &actor.OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: actor.Identity()}

	sphereFirst, ok1 := Dispatch(s, obb)
	obbFirst, ok2 := Dispatch(obb, s)
	assert.True(t, ok1)
	assert.True(t, ok2)
	vec3InDelta(t, sphereFirst.NormalAToB.Mul(-1), obbFirst.NormalAToB, 1e-9)
}

func TestWorldStepProducesOneManifold(t *testing.T) {
	w := NewWorld()
	obb := &actor.OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: actor.Transform{
		Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{0, -10, 0},
	}}
	plane := actor.NewPlane(mgl64.Vec3{0, 1, 0}, actor.Transform{
		Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{0, -10, 0},
	})

	idA := w.Add(obb, false, 1)
	idB := w.Add(plane, true, 2)

	w.Step()
	manifolds := w.Manifolds()
	assert.Len(t, manifolds, 1)
	assert.Equal(t, idA, manifolds[0].ObjectA)
	assert.Equal(t, idB, manifolds[0].ObjectB)

	w.ClearManifold()
	assert.Empty(t, w.Manifolds())
}

func TestWorldStepSkipsBothStatic(t *testing.T) {
	w := NewWorld()
	p1 := actor.NewPlane(mgl64.Vec3{0, 1, 0}, actor.Identity())
	p2 := actor.NewPlane(mgl64.Vec3{0, 1, 0}, actor.Identity())
	w.Add(p1, true, 1)
	w.Add(p2, true, 2)

	w.Step()
	assert.Empty(t, w.Manifolds())
}

func TestWorldAreColliding(t *testing.T) {
	w := NewWorld()
	s1 := &actor.Sphere{Radius: 1, Transform: actor.Identity()}
	s2 := &actor.Sphere{Radius: 1, Transform: actor.Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{1, 0, 0}}}
	id1 := w.Add(s1, false, 1)
	id2 := w.Add(s2, false, 2)

	manifold, ok := w.AreColliding(id1, id2)
	assert.True(t, ok)
	assert.Equal(t, id1, manifold.ObjectA)
	assert.Equal(t, id2, manifold.ObjectB)
}
