// Package collision implements the narrow-phase of the engine: overlap
// tests and contact-manifold generation for every {sphere, OBB, plane}
// pair, a fixed dispatch table routing each pair to its routine with the
// correct normal orientation, and World, the per-step owner of
// CollisionObjects and the manifolds they produce.
package collision

import (
	"github.com/akmonengine/rigid3d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactInformation describes the overlap found between two shapes: the
// contact point(s), the normal pointing from the first shape toward the
// second, and the (non-negative) penetration depth.
type ContactInformation struct {
	Points              []mgl64.Vec3
	NormalAToB          mgl64.Vec3
	PenetrationDistance float64
}

// CollisionObject pairs a shape with the bookkeeping World needs:
// a stable id, whether it currently participates in collision tests, and
// the id of the rigid body it mirrors.
type CollisionObject struct {
	ID          int
	Shape       actor.Shape
	Enabled     bool
	IsStatic    bool
	RigidBodyID int
}

// ContactManifold is one detected collision for a single step: the two
// object ids (A, B; A != B) and the contact information between them, with
// the normal pointing from A toward B.
type ContactManifold struct {
	ObjectA int
	ObjectB int
	Contact ContactInformation
}
