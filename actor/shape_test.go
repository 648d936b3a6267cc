package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSphereClosestPoint(t *testing.T) {
	s := &Sphere{Radius: 2, Transform: Transform{Translation: mgl64.Vec3{0, 0, 0}, Rotation: mgl64.Ident3()}}
	p := s.ClosestPoint(mgl64.Vec3{10, 0, 0})
	vec3InDelta(t, mgl64.Vec3{2, 0, 0}, p, 1e-9)
}

func TestSphereInertia(t *testing.T) {
	s := &Sphere{Radius: 2}
	inertia := s.Inertia(5)
	expected := 0.4 * 5 * 4.0
	assert.InDelta(t, expected, inertia.At(0, 0), 1e-9)
	assert.InDelta(t, expected, inertia.At(1, 1), 1e-9)
	assert.InDelta(t, expected, inertia.At(2, 2), 1e-9)
}

func TestPlaneNormalizesNormal(t *testing.T) {
	p := NewPlane(mgl64.Vec3{0, 2, 0}, Identity())
	assert.InDelta(t, 1.0, p.Normal.Len(), 1e-9)
}

func TestPlaneSignedDistance(t *testing.T) {
	p := NewPlane(mgl64.Vec3{0, 1, 0}, Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{0, -10, 0}})
	assert.InDelta(t, 5.0, p.SignedDistance(mgl64.Vec3{0, -5, 0}), 1e-9)
}

func TestPlaneRejectPointOntoPlane(t *testing.T) {
	p := NewPlane(mgl64.Vec3{0, 1, 0}, Identity())
	projected := p.RejectPointOntoPlane(mgl64.Vec3{3, 7, -2})
	vec3InDelta(t, mgl64.Vec3{3, 0, -2}, projected, 1e-9)
}

func TestPlaneInertiaPanics(t *testing.T) {
	p := NewPlane(mgl64.Vec3{0, 1, 0}, Identity())
	assert.Panics(t, func() { p.Inertia(1) })
}

func TestOBBInertia(t *testing.T) {
	box := &OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: Identity()}
	inertia := box.Inertia(12)
	// unit cube, full side 2: factor = 1, diag = (2^2+2^2) = 8
	assert.InDelta(t, 8.0, inertia.At(0, 0), 1e-9)
	assert.InDelta(t, 8.0, inertia.At(1, 1), 1e-9)
	assert.InDelta(t, 8.0, inertia.At(2, 2), 1e-9)
}

func TestOBBVertexCountAndTopology(t *testing.T) {
	box := &OBB{HalfExtents: mgl64.Vec3{1, 2, 3}, Transform: Identity()}
	assert.Equal(t, 8, box.VertexCount())
	assert.Equal(t, 12, box.EdgeCount())
	assert.Equal(t, 6, box.FaceCount())

	v0 := box.WorldVertex(0)
	vec3InDelta(t, mgl64.Vec3{-1, -2, -3}, v0, 1e-9)
	v7 := box.WorldVertex(7)
	vec3InDelta(t, mgl64.Vec3{1, 2, 3}, v7, 1e-9)
}

func TestOBBFaceNormals(t *testing.T) {
	box := &OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: Identity()}
	vec3InDelta(t, mgl64.Vec3{1, 0, 0}, box.FaceNormalWorld(0), 1e-9)
	vec3InDelta(t, mgl64.Vec3{-1, 0, 0}, box.FaceNormalWorld(1), 1e-9)
	vec3InDelta(t, mgl64.Vec3{0, 1, 0}, box.FaceNormalWorld(2), 1e-9)
	vec3InDelta(t, mgl64.Vec3{0, 0, 1}, box.FaceNormalWorld(4), 1e-9)
}

func TestOBBSeparatingAxisIndices(t *testing.T) {
	box := &OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: Identity()}
	assert.Equal(t, [3]int{0, 2, 4}, box.SeparatingAxisIndices())
}

func TestOBBIsInside(t *testing.T) {
	box := &OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: Identity()}
	assert.True(t, box.IsInside(mgl64.Vec3{0.5, 0.5, 0.5}))
	assert.True(t, box.IsInside(mgl64.Vec3{1, 1, 1}))
	assert.False(t, box.IsInside(mgl64.Vec3{1.1, 0, 0}))
}

func TestOBBProjectOntoContourOrInside(t *testing.T) {
	box := &OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: Identity()}
	inside := box.ProjectOntoContourOrInside(mgl64.Vec3{0.2, 0.2, 0.2})
	vec3InDelta(t, mgl64.Vec3{0.2, 0.2, 0.2}, inside, 1e-9)

	outside := box.ProjectOntoContourOrInside(mgl64.Vec3{5, 0, 0})
	vec3InDelta(t, mgl64.Vec3{1, 0, 0}, outside, 1e-9)
}

func TestOBBProjectOntoContourTieBreaksPositive(t *testing.T) {
	box := &OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: Identity()}
	support := box.ProjectOntoContour(mgl64.Vec3{0, 1, 0})
	vec3InDelta(t, mgl64.Vec3{1, 1, 1}, support, 1e-9)
}

func TestOBBProjectOntoContourAlignedWithFace(t *testing.T) {
	box := &OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: Identity()}
	support := box.ProjectOntoContour(mgl64.Vec3{1, 0, 0})
	assert.InDelta(t, 1.0, support.X(), 1e-9)
}

func TestOBBRotatedFaceNormal(t *testing.T) {
	transform := Transform{Rotation: RotZ(math.Pi / 2), Translation: mgl64.Vec3{0, 0, 0}}
	box := &OBB{HalfExtents: mgl64.Vec3{1, 1, 1}, Transform: transform}
	// +X face normal rotated 90 deg about Z should point along +Y.
	vec3InDelta(t, mgl64.Vec3{0, 1, 0}, box.FaceNormalWorld(0), 1e-9)
}
