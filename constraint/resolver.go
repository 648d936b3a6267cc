// Package constraint resolves contact manifolds between rigid bodies:
// impulse-based velocity resolution and a Baumgarte-style positional split
// for remaining penetration (spec.md §4.8). Both operate on an arbitrary
// pair of bodies; a static body's zero inverse mass and inverse inertia
// tensor naturally drop it out of the formulas, so the same two functions
// serve the two-dynamic and one-dynamic-one-static cases alike, and the
// caller only needs to skip a pair where both bodies are static.
package constraint

import (
	"math"

	"github.com/akmonengine/rigid3d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// AngularImpulseDamping scales the torque derived from a velocity-resolution
// impulse before it changes angular velocity (spec.md §6). Ad hoc, no
// physical basis; preserved verbatim for parity (spec.md §9 open question).
const AngularImpulseDamping = 0.9

// PenetrationAngularLimitFactor bounds how much of a penetration
// resolution's angular component may displace a body, relative to the
// contact arm length (spec.md §6).
const PenetrationAngularLimitFactor = 0.2

// rotationPerUnitImpulse returns the torque a unit impulse along normal
// would produce at r, the resulting angular-velocity change per unit
// impulse (I^-1 * torque), and that change's linear effect at r
// (angularVelocityPerUnitImpulse x r).
func rotationPerUnitImpulse(rb *actor.RigidBody, r, normal mgl64.Vec3) (torque, angularVelocityPerUnitImpulse, velocityPerUnitImpulse mgl64.Vec3) {
	torque = r.Cross(normal)
	angularVelocityPerUnitImpulse = rb.InvInertiaWorld.Mul3x1(torque)
	velocityPerUnitImpulse = angularVelocityPerUnitImpulse.Cross(r)
	return
}

// ResolveVelocity applies impulse-based velocity resolution at one contact
// point with normal pointing from a to b (spec.md §4.8). Skips the pair if
// they are separating along the normal, or if both are static.
func ResolveVelocity(a, b *actor.RigidBody, point, normal mgl64.Vec3) {
	if a.IsStatic && b.IsStatic {
		return
	}

	rA := point.Sub(a.CenterOfMassWorld)
	rB := point.Sub(b.CenterOfMassWorld)

	vRel := b.VelocityAtPoint(rB).Sub(a.VelocityAtPoint(rA))
	vRelN := vRel.Dot(normal)
	if vRelN >= 0 {
		return
	}

	_, _, velPerImpulseA := rotationPerUnitImpulse(a, rA, normal)
	_, _, velPerImpulseB := rotationPerUnitImpulse(b, rB, normal)

	k := (a.InvMass + b.InvMass) + velPerImpulseA.Add(velPerImpulseB).Dot(normal)
	if k <= 1e-12 {
		// Both bodies are immovable along normal at this point; the caller's
		// separate ResolvePenetration pass handles any remaining overlap.
		return
	}

	j := vRelN / k

	impulseA := normal.Mul((1 + a.Restitution) * j)
	impulseB := normal.Mul(-(1 + b.Restitution) * j)

	a.ApplyLinearImpulse(impulseA)
	a.ApplyAngularImpulse(rA.Cross(impulseA.Mul(AngularImpulseDamping)))

	b.ApplyLinearImpulse(impulseB)
	b.ApplyAngularImpulse(rB.Cross(impulseB.Mul(AngularImpulseDamping)))
}

// limitAngularDisplacement bounds angularMove to
// ±PenetrationAngularLimitFactor*|relativeContact|, rolling any excess back
// into linearMove.
func limitAngularDisplacement(linearMove, angularMove float64, relativeContact mgl64.Vec3) (float64, float64) {
	limit := PenetrationAngularLimitFactor * relativeContact.Len()
	if math.Abs(angularMove) <= limit {
		return linearMove, angularMove
	}

	total := linearMove + angularMove
	if angularMove >= 0 {
		angularMove = limit
	} else {
		angularMove = -limit
	}
	linearMove = total - angularMove
	return linearMove, angularMove
}

// ResolvePenetration applies the Baumgarte-style positional split for
// remaining penetration at one contact point (spec.md §4.8).
func ResolvePenetration(a, b *actor.RigidBody, point, normal mgl64.Vec3, penetration float64) {
	if a.IsStatic && b.IsStatic {
		return
	}
	resolvePenetrationOnly(a, b, point, normal, penetration)
}

func resolvePenetrationOnly(a, b *actor.RigidBody, point, normal mgl64.Vec3, penetration float64) {
	rA := point.Sub(a.CenterOfMassWorld)
	rB := point.Sub(b.CenterOfMassWorld)

	_, rotationDirA, angularVelocityPerUnitImpulseA := rotationPerUnitImpulse(a, rA, normal)
	_, rotationDirB, angularVelocityPerUnitImpulseB := rotationPerUnitImpulse(b, rB, normal)

	angularInertiaA := angularVelocityPerUnitImpulseA.Dot(normal)
	angularInertiaB := angularVelocityPerUnitImpulseB.Dot(normal)
	linearInertiaA := a.InvMass
	linearInertiaB := b.InvMass

	s := angularInertiaA + linearInertiaA + angularInertiaB + linearInertiaB
	if s <= 1e-12 {
		return
	}
	invTotal := 1 / s

	linearMoveA := -penetration * linearInertiaA * invTotal
	linearMoveB := penetration * linearInertiaB * invTotal
	angularMoveA := -penetration * angularInertiaA * invTotal
	angularMoveB := penetration * angularInertiaB * invTotal

	linearMoveA, angularMoveA = limitAngularDisplacement(linearMoveA, angularMoveA, rA)
	linearMoveB, angularMoveB = limitAngularDisplacement(linearMoveB, angularMoveB, rB)

	a.ApplyDisplacement(normal.Mul(linearMoveA))
	b.ApplyDisplacement(normal.Mul(linearMoveB))

	if math.Abs(angularInertiaA) > 1e-12 {
		a.ApplyRotationVector(rotationDirA.Mul(angularMoveA / angularInertiaA))
	}
	if math.Abs(angularInertiaB) > 1e-12 {
		b.ApplyRotationVector(rotationDirB.Mul(angularMoveB / angularInertiaB))
	}
}
