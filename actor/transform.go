// Package actor holds the math kernel, the collision-shape primitives, and
// the rigid body type. Everything downstream (geometry helpers, overlap
// tests, contact generation, the resolver) is built on top of these types.
package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a rigid transform: a rotation matrix followed by a
// translation. Shapes and rigid bodies each own one.
type Transform struct {
	Rotation    mgl64.Mat3
	Translation mgl64.Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{0, 0, 0}}
}

// TransformPoint maps a point from the transform's local space to world
// space: R*p + t.
func (t Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Mul3x1(p).Add(t.Translation)
}

// TransformVec maps a direction (no translation): R*v.
func (t Transform) TransformVec(v mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Mul3x1(v)
}

// InverseTransformPoint maps a world-space point into local space. The
// rotation is assumed orthonormal, so its inverse is its transpose.
func (t Transform) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Transpose().Mul3x1(p.Sub(t.Translation))
}

// InverseTransformVec maps a world-space direction into local space.
func (t Transform) InverseTransformVec(v mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Transpose().Mul3x1(v)
}

// Compose implements the source engine's additive transform composition:
// rotations multiply, translations simply add. This is *not* standard SE(3)
// composition (that would be t.Rotation*other.Translation + t.Translation
// for the translation part), an intentional parity choice; see
// SPEC_FULL.md §6. It is only meant for local/identity chaining, never for
// general nested transforms.
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		Rotation:    t.Rotation.Mul3(other.Rotation),
		Translation: t.Translation.Add(other.Translation),
	}
}

// RotX builds the rotation matrix for a right-handed rotation of theta
// radians about the X axis: RotX(pi/2) maps (0,1,0) to (0,0,1).
func RotX(theta float64) mgl64.Mat3 {
	s, c := math.Sin(theta), math.Cos(theta)
	return mgl64.Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotY builds the rotation matrix for a right-handed rotation of theta
// radians about the Y axis: RotY(pi/2) maps (0,0,1) to (1,0,0).
func RotY(theta float64) mgl64.Mat3 {
	s, c := math.Sin(theta), math.Cos(theta)
	return mgl64.Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotZ builds the rotation matrix for a right-handed rotation of theta
// radians about the Z axis: RotZ(pi/2) maps (1,0,0) to (0,1,0).
func RotZ(theta float64) mgl64.Mat3 {
	s, c := math.Sin(theta), math.Cos(theta)
	return mgl64.Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Composed builds the matrix equivalent of the intrinsic Z*Y*X Euler
// rotation order: Composed(x,y,z) == QuatToMat3(QuatFromEulerRads(x,y,z)).
func Composed(x, y, z float64) mgl64.Mat3 {
	return RotZ(z).Mul3(RotY(y)).Mul3(RotX(x))
}

// QuatFromAxisAngle builds a unit quaternion rotating by theta radians
// around axis (axis is normalized internally).
func QuatFromAxisAngle(theta float64, axis mgl64.Vec3) mgl64.Quat {
	half := theta / 2
	return mgl64.Quat{W: math.Cos(half), V: axis.Normalize().Mul(math.Sin(half))}
}

// QuatFromEulerRads builds the quaternion for the same intrinsic Z*Y*X
// order as Composed.
func QuatFromEulerRads(x, y, z float64) mgl64.Quat {
	qx := QuatFromAxisAngle(x, mgl64.Vec3{1, 0, 0})
	qy := QuatFromAxisAngle(y, mgl64.Vec3{0, 1, 0})
	qz := QuatFromAxisAngle(z, mgl64.Vec3{0, 0, 1})
	return qz.Mul(qy).Mul(qx)
}

// QuatToMat3 converts a (unit) quaternion to its rotation matrix.
func QuatToMat3(q mgl64.Quat) mgl64.Mat3 {
	return q.Mat4().Mat3()
}

// Mat3ToQuat converts a rotation matrix to a unit quaternion, canonicalized
// to a non-negative w component. Uses the standard trace-based (Shepperd)
// extraction, so it is the exact inverse of QuatToMat3 up to sign.
func Mat3ToQuat(m mgl64.Mat3) mgl64.Quat {
	m00, m10, m20 := m.At(0, 0), m.At(1, 0), m.At(2, 0)
	m01, m11, m21 := m.At(0, 1), m.At(1, 1), m.At(2, 1)
	m02, m12, m22 := m.At(0, 2), m.At(1, 2), m.At(2, 2)

	trace := m00 + m11 + m22

	var q mgl64.Quat
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1.0)
		q = mgl64.Quat{
			W: 0.25 / s,
			V: mgl64.Vec3{(m21 - m12) * s, (m02 - m20) * s, (m10 - m01) * s},
		}
	case m00 > m11 && m00 > m22:
		s := 2.0 * math.Sqrt(1.0+m00-m11-m22)
		q = mgl64.Quat{
			W: (m21 - m12) / s,
			V: mgl64.Vec3{0.25 * s, (m01 + m10) / s, (m02 + m20) / s},
		}
	case m11 > m22:
		s := 2.0 * math.Sqrt(1.0+m11-m00-m22)
		q = mgl64.Quat{
			W: (m02 - m20) / s,
			V: mgl64.Vec3{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s},
		}
	default:
		s := 2.0 * math.Sqrt(1.0+m22-m00-m11)
		q = mgl64.Quat{
			W: (m10 - m01) / s,
			V: mgl64.Vec3{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s},
		}
	}

	q = q.Normalize()
	if q.W < 0 {
		q = mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	}
	return q
}

// IntegrateQuat advances orientation q by angular velocity omega over dt
// using the standard quaternion derivative q' = q + 0.5*(0,omega)*q*dt,
// renormalized.
func IntegrateQuat(q mgl64.Quat, omega mgl64.Vec3, dt float64) mgl64.Quat {
	omegaQuat := mgl64.Quat{W: 0, V: omega}
	qDot := omegaQuat.Mul(q).Scale(0.5)
	return q.Add(qDot.Scale(dt)).Normalize()
}
