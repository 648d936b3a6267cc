package collision

import (
	"sort"

	"github.com/akmonengine/rigid3d/actor"
)

// World owns every CollisionObject for one simulation and the manifolds
// produced by the last Step (spec.md §4.6).
type World struct {
	objects   map[int]*CollisionObject
	nextID    int
	manifolds []ContactManifold
}

// NewWorld returns an empty collision world.
func NewWorld() *World {
	return &World{objects: make(map[int]*CollisionObject)}
}

// Add assigns a monotonically increasing id to shape and stores it.
func (w *World) Add(shape actor.Shape, isStatic bool, rigidBodyID int) int {
	id := w.nextID
	w.nextID++
	w.objects[id] = &CollisionObject{
		ID:          id,
		Shape:       shape,
		Enabled:     true,
		IsStatic:    isStatic,
		RigidBodyID: rigidBodyID,
	}
	return id
}

// UpdateTransform writes T into the shape registered under id.
func (w *World) UpdateTransform(id int, t actor.Transform) {
	obj, ok := w.objects[id]
	if !ok {
		return
	}
	obj.Shape.SetTransform(t)
}

// Manifolds returns the manifolds produced by the last Step.
func (w *World) Manifolds() []ContactManifold {
	return w.manifolds
}

// ClearManifold drops all manifolds.
func (w *World) ClearManifold() {
	w.manifolds = nil
}

// Step tests every unordered pair (i,j), i<j, of enabled objects where at
// least one is non-static, dispatches collision detection, and appends any
// produced manifold, in order of increasing (i,j) for determinism
// (spec.md §4.6, §9 design note).
func (w *World) Step() {
	ids := w.sortedIDs()
	for ai := 0; ai < len(ids); ai++ {
		for bi := ai + 1; bi < len(ids); bi++ {
			idA, idB := ids[ai], ids[bi]
			objA, objB := w.objects[idA], w.objects[idB]
			if !objA.Enabled || !objB.Enabled {
				continue
			}
			if objA.IsStatic && objB.IsStatic {
				continue
			}
			contact, ok := Dispatch(objA.Shape, objB.Shape)
			if !ok {
				continue
			}
			w.manifolds = append(w.manifolds, ContactManifold{
				ObjectA: idA,
				ObjectB: idB,
				Contact: contact,
			})
		}
	}
}

// AreColliding is a one-shot query for the current overlap state of idA
// and idB (does not require a prior Step, and does not record a
// manifold).
func (w *World) AreColliding(idA, idB int) (ContactManifold, bool) {
	objA, okA := w.objects[idA]
	objB, okB := w.objects[idB]
	if !okA || !okB {
		return ContactManifold{}, false
	}
	contact, ok := Dispatch(objA.Shape, objB.Shape)
	if !ok {
		return ContactManifold{}, false
	}
	return ContactManifold{ObjectA: idA, ObjectB: idB, Contact: contact}, true
}

// Object returns the collision object registered under id.
func (w *World) Object(id int) (*CollisionObject, bool) {
	obj, ok := w.objects[id]
	return obj, ok
}

func (w *World) sortedIDs() []int {
	ids := make([]int, 0, len(w.objects))
	for id := range w.objects {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
