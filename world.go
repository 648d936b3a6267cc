// Package rigid3d is the root package: SimulationWorld owns a set of rigid
// bodies and a collision world, and advances both through one atomic
// discrete step per call (spec.md §4.8, §5).
package rigid3d

import (
	"github.com/akmonengine/rigid3d/actor"
	"github.com/akmonengine/rigid3d/collision"
	"github.com/akmonengine/rigid3d/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTimeStep is used when SimulationWorld is constructed with no
// explicit time step (spec.md §6).
const DefaultTimeStep = 1.0 / 60.0

// Gravity is the fixed gravitational acceleration applied to every dynamic
// body every step (spec.md §6).
var Gravity = mgl64.Vec3{0, -9.81, 0}

// ResolutionIterations is the number of velocity/position resolution
// passes run per discrete step. The source leaves this an open tunable
// (spec.md §4.8); a small fixed count beats a single pass at converging
// resting contacts without introducing per-step configuration surface.
const ResolutionIterations = 4

// SimulationWorld owns all rigid bodies and the collision world exclusively;
// no aliasing between bodies is permitted during a step (spec.md §5).
type SimulationWorld struct {
	TimeStep float64

	Bodies     map[int]*actor.RigidBody
	nextBodyID int

	Collision *collision.World
}

// NewSimulationWorld builds an empty world. timeStep defaults to
// DefaultTimeStep if omitted; only the first value passed is used.
func NewSimulationWorld(timeStep ...float64) *SimulationWorld {
	dt := DefaultTimeStep
	if len(timeStep) > 0 {
		dt = timeStep[0]
	}
	return &SimulationWorld{
		TimeStep:  dt,
		Bodies:    make(map[int]*actor.RigidBody),
		Collision: collision.NewWorld(),
	}
}

// AddRigidBody registers body and shape as one linked pair: the body's
// CollisionObjectID is set to the new collision object's id, and the
// collision object's RigidBodyID mirrors the body's own id. Returns the
// body id (spec.md §4.6, §6).
func (w *SimulationWorld) AddRigidBody(body *actor.RigidBody, shape actor.Shape) int {
	bodyID := w.nextBodyID
	w.nextBodyID++

	body.ID = bodyID
	shape.SetTransform(body.Transform)
	collisionID := w.Collision.Add(shape, body.IsStatic, bodyID)
	body.CollisionObjectID = collisionID

	w.Bodies[bodyID] = body
	return bodyID
}

// RigidBodyRef returns the body registered under id, for read-only use.
func (w *SimulationWorld) RigidBodyRef(id int) (*actor.RigidBody, bool) {
	b, ok := w.Bodies[id]
	return b, ok
}

// RigidBodyMut returns the same body as RigidBodyRef; Go pointers make the
// read/write distinction a naming convention rather than a different
// value, kept for parity with the source's reference/mutable accessor pair
// (spec.md §6).
func (w *SimulationWorld) RigidBodyMut(id int) (*actor.RigidBody, bool) {
	return w.RigidBodyRef(id)
}

// DiscreteStep advances the simulation by one TimeStep (spec.md §4.8):
// detect collisions, resolve manifolds over ResolutionIterations passes,
// apply gravity and integrate every dynamic body, mirror the new
// transforms into the collision world, then clear the manifolds.
func (w *SimulationWorld) DiscreteStep() {
	w.Collision.Step()

	for iter := 0; iter < ResolutionIterations; iter++ {
		for _, manifold := range w.Collision.Manifolds() {
			w.resolveManifold(manifold)
		}
	}

	for _, body := range w.Bodies {
		if body.IsStatic {
			continue
		}
		body.ApplyCentralForce(Gravity.Mul(body.Mass))
		body.Integrate(w.TimeStep)
	}

	for _, body := range w.Bodies {
		w.Collision.UpdateTransform(body.CollisionObjectID, body.Transform)
	}

	w.Collision.ClearManifold()
}

func (w *SimulationWorld) resolveManifold(manifold collision.ContactManifold) {
	objA, okA := w.Collision.Object(manifold.ObjectA)
	objB, okB := w.Collision.Object(manifold.ObjectB)
	if !okA || !okB {
		return
	}
	bodyA, okA := w.Bodies[objA.RigidBodyID]
	bodyB, okB := w.Bodies[objB.RigidBodyID]
	if !okA || !okB {
		return
	}
	if bodyA.IsStatic && bodyB.IsStatic {
		return
	}

	normal := manifold.Contact.NormalAToB
	penetration := manifold.Contact.PenetrationDistance
	for _, point := range manifold.Contact.Points {
		constraint.ResolveVelocity(bodyA, bodyB, point, normal)
		constraint.ResolvePenetration(bodyA, bodyB, point, normal, penetration)
	}
}
