// Command dropbox drops a box onto a ground plane and prints the box's
// state before the first step and after every tenth step, the way the source engine's own
// example printed a rotating cube's state across a fixed number of steps.
// There is no renderer here: the simulation is console-only (spec.md §5
// non-goals exclude a rendering/windowing surface).
package main

import (
	"fmt"

	"github.com/akmonengine/rigid3d"
	"github.com/akmonengine/rigid3d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const steps = 120

func main() {
	world := rigid3d.NewSimulationWorld()

	groundTransform := actor.Transform{Rotation: mgl64.Ident3(), Translation: mgl64.Vec3{0, 0, 0}}
	ground := actor.NewStaticRigidBody(groundTransform)
	world.AddRigidBody(ground, actor.NewPlane(mgl64.Vec3{0, 1, 0}, groundTransform))

	boxTransform := actor.Transform{
		Rotation:    actor.Composed(0.3, 0.15, 0),
		Translation: mgl64.Vec3{0, 5, 0},
	}
	halfExtents := mgl64.Vec3{0.5, 0.5, 0.5}
	box := &actor.OBB{HalfExtents: halfExtents, Transform: boxTransform}
	boxBody := actor.NewDynamicRigidBody(boxTransform, 1.0, box.Inertia(1.0), mgl64.Vec3{}, 0.3)
	boxID := world.AddRigidBody(boxBody, box)

	fmt.Printf("dropbox: %d steps, dt=%.5f\n", steps, world.TimeStep)
	printState(0, boxBody)

	for i := 1; i <= steps; i++ {
		world.DiscreteStep()

		body, ok := world.RigidBodyRef(boxID)
		if !ok {
			fmt.Println("dropbox: box body missing from world")
			return
		}
		if i%10 == 0 || i == steps {
			printState(i, body)
		}
	}
}

func printState(step int, body *actor.RigidBody) {
	t := body.Transform.Translation
	v := body.LinearVelocity
	w := body.AngularVelocity
	fmt.Printf("step %3d: pos=(%.4f, %.4f, %.4f) vel=(%.4f, %.4f, %.4f) angvel=(%.4f, %.4f, %.4f)\n",
		step, t.X(), t.Y(), t.Z(), v.X(), v.Y(), v.Z(), w.X(), w.Y(), w.Z())
}
