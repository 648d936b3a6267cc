package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// LinearDampingFactor scales the force-based velocity increment applied
// each integration step (spec.md §6). It is not a general velocity decay;
// only the increment coming from accumulated force is damped.
const LinearDampingFactor = 0.97

// RigidBody is a single body in the simulation. It references its
// collision object only by id (CollisionObjectID); SimulationWorld and
// collision.World separately own the body and its shape, avoiding a
// reference cycle (spec.md §9).
type RigidBody struct {
	ID int

	Mass         float64
	InvMass      float64
	InertiaLocal mgl64.Mat3
	// InvInertiaLocal is the inverse of InertiaLocal; zero for static bodies.
	InvInertiaLocal mgl64.Mat3
	// InvInertiaWorld is recomputed after every Integrate: R*I^-1*R^T.
	InvInertiaWorld mgl64.Mat3

	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3

	accumulatedForce  mgl64.Vec3
	accumulatedTorque mgl64.Vec3

	// Transform is the collision-facing pose (Mat3 rotation + translation),
	// kept in sync with Orientation on every Integrate.
	Transform Transform
	// Orientation is the quaternion source of truth for angular integration;
	// Transform.Rotation is derived from it each step (spec.md §4.1).
	Orientation mgl64.Quat

	CenterOfMassLocal mgl64.Vec3
	CenterOfMassWorld mgl64.Vec3

	// Restitution in [0,1]: 0 = fully inelastic, 1 = fully elastic.
	Restitution float64

	IsStatic bool
	// TranslationAxisMask/RotationAxisMask are 0/1 per-axis multipliers
	// applied to the respective velocity update; zero for static bodies.
	TranslationAxisMask mgl64.Vec3
	RotationAxisMask    mgl64.Vec3

	CollisionObjectID int
}

// NewDynamicRigidBody builds a dynamic body with the given mass, local
// inertia tensor, initial transform, and restitution. Axis masks default to
// (1,1,1) (unconstrained); callers may narrow them after construction.
func NewDynamicRigidBody(transform Transform, mass float64, localInertia mgl64.Mat3, comLocal mgl64.Vec3, restitution float64) *RigidBody {
	rb := &RigidBody{
		Mass:                mass,
		InvMass:             1.0 / mass,
		InertiaLocal:        localInertia,
		InvInertiaLocal:     localInertia.Inv(),
		Transform:           transform,
		Orientation:         Mat3ToQuat(transform.Rotation),
		CenterOfMassLocal:   comLocal,
		Restitution:         clamp(restitution, 0, 1),
		IsStatic:            false,
		TranslationAxisMask: mgl64.Vec3{1, 1, 1},
		RotationAxisMask:    mgl64.Vec3{1, 1, 1},
	}
	rb.CenterOfMassWorld = rb.Transform.TransformPoint(comLocal)
	rb.InvInertiaWorld = worldInverseInertia(rb.Transform.Rotation, rb.InvInertiaLocal)
	return rb
}

// NewStaticRigidBody builds a static body at the given transform: zero
// inverse mass, zero axis masks, zero mass (spec.md §3).
func NewStaticRigidBody(transform Transform) *RigidBody {
	return &RigidBody{
		Mass:                0,
		InvMass:             0,
		Transform:           transform,
		Orientation:         Mat3ToQuat(transform.Rotation),
		CenterOfMassWorld:   transform.Translation,
		IsStatic:            true,
		TranslationAxisMask: mgl64.Vec3{0, 0, 0},
		RotationAxisMask:    mgl64.Vec3{0, 0, 0},
	}
}

func worldInverseInertia(rotation, invInertiaLocal mgl64.Mat3) mgl64.Mat3 {
	return rotation.Mul3(invInertiaLocal).Mul3(rotation.Transpose())
}

// ApplyCentralForce accumulates a force applied through the center of mass
// (no torque). No-op on static bodies.
func (rb *RigidBody) ApplyCentralForce(force mgl64.Vec3) {
	if rb.IsStatic {
		return
	}
	rb.accumulatedForce = rb.accumulatedForce.Add(force)
}

// ApplyTorque accumulates a pure torque. No-op on static bodies.
func (rb *RigidBody) ApplyTorque(torque mgl64.Vec3) {
	if rb.IsStatic {
		return
	}
	rb.accumulatedTorque = rb.accumulatedTorque.Add(torque)
}

// ApplyForce applies force at world point p: the central component plus the
// torque it induces about the center of mass, (p-COM) x F.
func (rb *RigidBody) ApplyForce(force mgl64.Vec3, p mgl64.Vec3) {
	rb.ApplyCentralForce(force)
	rb.ApplyTorque(p.Sub(rb.CenterOfMassWorld).Cross(force))
}

// AccumulatedForce and AccumulatedTorque expose the current accumulators
// (read-only; spec.md §8 requires both be zero after every discrete step).
func (rb *RigidBody) AccumulatedForce() mgl64.Vec3  { return rb.accumulatedForce }
func (rb *RigidBody) AccumulatedTorque() mgl64.Vec3 { return rb.accumulatedTorque }

// Integrate advances the body's state by dt using semi-implicit Euler
// (spec.md §4.7). A no-op for static bodies.
func (rb *RigidBody) Integrate(dt float64) {
	if rb.IsStatic {
		return
	}

	// 1. v <- v + (F/m)*dt, damped and axis-masked.
	linearIncrement := rb.accumulatedForce.Mul(rb.InvMass * dt * LinearDampingFactor)
	linearIncrement = maskVec(linearIncrement, rb.TranslationAxisMask)
	rb.LinearVelocity = rb.LinearVelocity.Add(linearIncrement)

	// 2. w <- w + I^-1 * tau * dt, axis-masked.
	angularIncrement := rb.InvInertiaWorld.Mul3x1(rb.accumulatedTorque).Mul(dt)
	angularIncrement = maskVec(angularIncrement, rb.RotationAxisMask)
	rb.AngularVelocity = rb.AngularVelocity.Add(angularIncrement)

	// 3. t <- t + v*dt.
	rb.Transform.Translation = rb.Transform.Translation.Add(rb.LinearVelocity.Mul(dt))

	// 4. q <- normalize(q + 0.5*(0,w)*q*dt); rotation matrix rebuilt from q.
	rb.Orientation = IntegrateQuat(rb.Orientation, rb.AngularVelocity, dt)
	rb.Transform.Rotation = QuatToMat3(rb.Orientation)

	// 5. World-frame inverse inertia tensor.
	rb.InvInertiaWorld = worldInverseInertia(rb.Transform.Rotation, rb.InvInertiaLocal)

	// 6. World-frame center of mass.
	rb.CenterOfMassWorld = rb.Transform.TransformPoint(rb.CenterOfMassLocal)

	// 7. Accumulators reset.
	rb.accumulatedForce = mgl64.Vec3{}
	rb.accumulatedTorque = mgl64.Vec3{}
}

func maskVec(v, mask mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X() * mask.X(), v.Y() * mask.Y(), v.Z() * mask.Z()}
}

// MakeStatic transitions the body to the static state machine branch,
// zeroing velocities, mass, and axis masks (spec.md §4.8).
func (rb *RigidBody) MakeStatic() {
	rb.IsStatic = true
	rb.Mass = 0
	rb.InvMass = 0
	rb.LinearVelocity = mgl64.Vec3{}
	rb.AngularVelocity = mgl64.Vec3{}
	rb.TranslationAxisMask = mgl64.Vec3{}
	rb.RotationAxisMask = mgl64.Vec3{}
	rb.InvInertiaLocal = mgl64.Mat3{}
	rb.InvInertiaWorld = mgl64.Mat3{}
}

// MakeDynamic transitions a static body back to dynamic with the given
// mass and local inertia tensor, restoring unconstrained axis masks.
func (rb *RigidBody) MakeDynamic(mass float64, localInertia mgl64.Mat3) {
	rb.IsStatic = false
	rb.Mass = mass
	rb.InvMass = 1.0 / mass
	rb.InertiaLocal = localInertia
	rb.InvInertiaLocal = localInertia.Inv()
	rb.TranslationAxisMask = mgl64.Vec3{1, 1, 1}
	rb.RotationAxisMask = mgl64.Vec3{1, 1, 1}
	rb.InvInertiaWorld = worldInverseInertia(rb.Transform.Rotation, rb.InvInertiaLocal)
}

// VelocityAtPoint returns the body's velocity at a world point offset
// relativeToCOM from its center of mass: v + omega x r.
func (rb *RigidBody) VelocityAtPoint(relativeToCOM mgl64.Vec3) mgl64.Vec3 {
	return rb.LinearVelocity.Add(rb.AngularVelocity.Cross(relativeToCOM))
}

// ApplyLinearImpulse adds impulse*invMass to the body's linear velocity,
// axis-masked. Used by the contact resolver (constraint package); a no-op
// on static bodies since their InvMass and axis mask are zero.
func (rb *RigidBody) ApplyLinearImpulse(impulse mgl64.Vec3) {
	rb.LinearVelocity = rb.LinearVelocity.Add(maskVec(impulse.Mul(rb.InvMass), rb.TranslationAxisMask))
}

// ApplyAngularImpulse adds InvInertiaWorld*impulse to the body's angular
// velocity, axis-masked.
func (rb *RigidBody) ApplyAngularImpulse(impulse mgl64.Vec3) {
	rb.AngularVelocity = rb.AngularVelocity.Add(maskVec(rb.InvInertiaWorld.Mul3x1(impulse), rb.RotationAxisMask))
}

// ApplyDisplacement moves the body's translation directly (penetration
// resolution, not integration).
func (rb *RigidBody) ApplyDisplacement(translation mgl64.Vec3) {
	rb.Transform.Translation = rb.Transform.Translation.Add(translation)
}

// ApplyRotationVector rotates the body by the small-angle rotation vector
// (penetration resolution's angular half): treated as an angular velocity
// applied for one unit of time through the same quaternion-derivative used
// by Integrate.
func (rb *RigidBody) ApplyRotationVector(v mgl64.Vec3) {
	rb.Orientation = IntegrateQuat(rb.Orientation, v, 1)
	rb.Transform.Rotation = QuatToMat3(rb.Orientation)
}
