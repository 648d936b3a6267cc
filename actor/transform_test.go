package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func vec3InDelta(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), delta)
	assert.InDelta(t, expected.Y(), actual.Y(), delta)
	assert.InDelta(t, expected.Z(), actual.Z(), delta)
}

func TestIdentityTransformIsNoOp(t *testing.T) {
	p := mgl64.Vec3{1, 2, 3}
	vec3InDelta(t, p, Identity().TransformPoint(p), 1e-9)
}

func TestRotXMapsUpToForward(t *testing.T) {
	up := mgl64.Vec3{0, 1, 0}
	forward := mgl64.Vec3{0, 0, 1}
	vec3InDelta(t, forward, RotX(math.Pi/2).Mul3x1(up), 1e-9)
}

func TestRotYMapsForwardToRight(t *testing.T) {
	forward := mgl64.Vec3{0, 0, 1}
	right := mgl64.Vec3{1, 0, 0}
	vec3InDelta(t, right, RotY(math.Pi/2).Mul3x1(forward), 1e-9)
}

func TestRotZMapsRightToUp(t *testing.T) {
	right := mgl64.Vec3{1, 0, 0}
	up := mgl64.Vec3{0, 1, 0}
	vec3InDelta(t, up, RotZ(math.Pi/2).Mul3x1(right), 1e-9)
}

func TestRotationMatricesAreOrthonormal(t *testing.T) {
	for _, m := range []mgl64.Mat3{
		RotX(0.73), RotY(-1.1), RotZ(2.4), Composed(0.3, -0.6, 1.2),
	} {
		rrt := m.Mul3(m.Transpose())
		ident := mgl64.Ident3()
		for i := 0; i < 9; i++ {
			assert.InDelta(t, ident[i], rrt[i], 1e-5)
		}
		assert.Greater(t, m.Det(), 0.0)
	}
}

func TestComposedMatchesQuaternionEuler(t *testing.T) {
	x, y, z := 0.4, -0.9, 1.3
	fromMatrix := Composed(x, y, z)
	fromQuat := QuatToMat3(QuatFromEulerRads(x, y, z))
	for i := 0; i < 9; i++ {
		assert.InDelta(t, fromMatrix[i], fromQuat[i], 1e-9)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(math.Pi/2, mgl64.Vec3{0, 1, 0})
	assert.InDelta(t, math.Cos(math.Pi/4), q.W, 1e-9)
	vec3InDelta(t, mgl64.Vec3{0, math.Sin(math.Pi / 4), 0}, q.V, 1e-9)
}

func TestMat3QuatRoundTrip(t *testing.T) {
	q := QuatFromEulerRads(0.2, 0.5, -0.8)
	m := QuatToMat3(q)
	back := Mat3ToQuat(m)

	if back.W < 0 {
		back = mgl64.Quat{W: -back.W, V: back.V.Mul(-1)}
	}
	if q.W < 0 {
		q = mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	}

	assert.InDelta(t, q.W, back.W, 1e-5)
	vec3InDelta(t, q.V, back.V, 1e-5)
}

func TestIntegrateQuatStaysUnit(t *testing.T) {
	q := mgl64.QuatIdent()
	omega := mgl64.Vec3{0.3, -1.1, 0.7}
	for i := 0; i < 50; i++ {
		q = IntegrateQuat(q, omega, 1.0/60.0)
	}
	assert.InDelta(t, 1.0, q.Len(), 1e-4)
}

func TestTransformComposeIsAdditiveOnTranslation(t *testing.T) {
	a := Transform{Rotation: RotY(math.Pi / 2), Translation: mgl64.Vec3{1, 0, 0}}
	b := Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{0, 2, 0}}

	composed := a.Compose(b)
	vec3InDelta(t, mgl64.Vec3{1, 2, 0}, composed.Translation, 1e-9)

	expectedRotation := a.Rotation.Mul3(b.Rotation)
	for i := 0; i < 9; i++ {
		assert.InDelta(t, expectedRotation[i], composed.Rotation[i], 1e-9)
	}
}
