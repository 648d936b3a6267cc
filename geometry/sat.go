package geometry

import (
	"math"

	"github.com/akmonengine/rigid3d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SATAxisKind tags which family of separating axis produced the least
// overlap in an OBB/OBB test.
type SATAxisKind int

const (
	SATAxisFaceA SATAxisKind = iota
	SATAxisFaceB
	SATAxisEdge
)

// SATResult is the outcome of testing two OBBs over all fifteen candidate
// axes (3 face normals of A, 3 of B, 9 edge-edge crosses). When Separated
// is false, Normal/Overlap describe the axis of minimum overlap and Kind
// says which family it came from; for SATAxisEdge, WorldEdgeA/WorldEdgeB
// hold the two world-space edges whose cross product produced the axis.
type SATResult struct {
	Separated bool

	Kind      SATAxisKind
	FaceIndex int // valid for SATAxisFaceA / SATAxisFaceB
	Overlap   float64
	// Normal always points from A toward B.
	Normal mgl64.Vec3

	WorldEdgeA [2]mgl64.Vec3 // valid for SATAxisEdge
	WorldEdgeB [2]mgl64.Vec3
}

// SATOBBOBB runs the Separating Axis Theorem over a and b, returning the
// axis of least overlap if they intersect (spec.md §4.3).
func SATOBBOBB(a, b *actor.OBB) SATResult {
	verticesA := worldVertices(a)
	verticesB := worldVertices(b)
	centerA := a.Transform.Translation
	centerB := b.Transform.Translation

	best := SATResult{Separated: false, Overlap: math.MaxFloat64}
	found := false

	// Face axes of A.
	for _, faceIdx := range a.SeparatingAxisIndices() {
		axis := a.FaceNormalWorld(faceIdx)
		overlap, ok := axisOverlap(axis, verticesA, verticesB)
		if !ok {
			return SATResult{Separated: true}
		}
		if overlap < best.Overlap {
			found = true
			best = SATResult{Kind: SATAxisFaceA, FaceIndex: faceIdx, Overlap: overlap, Normal: canonicalize(axis, centerA, centerB)}
		}
	}

	// Face axes of B.
	for _, faceIdx := range b.SeparatingAxisIndices() {
		axis := b.FaceNormalWorld(faceIdx)
		overlap, ok := axisOverlap(axis, verticesA, verticesB)
		if !ok {
			return SATResult{Separated: true}
		}
		if overlap < best.Overlap {
			found = true
			best = SATResult{Kind: SATAxisFaceB, FaceIndex: faceIdx, Overlap: overlap, Normal: canonicalize(axis, centerA, centerB)}
		}
	}

	// Edge-edge cross axes: each OBB only has 3 unique edge directions
	// (its own local axes), so 3x3=9 combinations suffice.
	axesA := uniqueAxes(a)
	axesB := uniqueAxes(b)
	for i, dirA := range axesA {
		for j, dirB := range axesB {
			axis := dirA.Cross(dirB)
			if axis.Len() < 1e-9 {
				continue // parallel edges, zero-length cross: skip (spec.md §7)
			}
			axis = axis.Normalize()
			overlap, ok := axisOverlap(axis, verticesA, verticesB)
			if !ok {
				return SATResult{Separated: true}
			}
			if overlap < best.Overlap {
				found = true
				edgeA := edgeParallelTo(a, i, centerB.Sub(centerA))
				edgeB := edgeParallelTo(b, j, centerA.Sub(centerB))
				best = SATResult{
					Kind:       SATAxisEdge,
					Overlap:    overlap,
					Normal:     canonicalize(axis, centerA, centerB),
					WorldEdgeA: edgeA,
					WorldEdgeB: edgeB,
				}
			}
		}
	}

	if !found {
		return SATResult{Separated: true}
	}
	return best
}

func worldVertices(b *actor.OBB) [8]mgl64.Vec3 {
	var vs [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		vs[i] = b.WorldVertex(i)
	}
	return vs
}

// uniqueAxes returns the box's three local-axis directions in world space.
func uniqueAxes(b *actor.OBB) [3]mgl64.Vec3 {
	return [3]mgl64.Vec3{
		b.FaceNormalWorld(0),
		b.FaceNormalWorld(2),
		b.FaceNormalWorld(4),
	}
}

// axisOverlap projects both vertex sets onto axis and returns the overlap
// amount (>=0 means touching/overlapping) and whether they overlap at all.
func axisOverlap(axis mgl64.Vec3, verticesA, verticesB [8]mgl64.Vec3) (float64, bool) {
	minA, maxA := projectExtent(axis, verticesA)
	minB, maxB := projectExtent(axis, verticesB)

	overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
	if overlap < 0 {
		return 0, false
	}
	return overlap, true
}

func projectExtent(axis mgl64.Vec3, vertices [8]mgl64.Vec3) (float64, float64) {
	min := axis.Dot(vertices[0])
	max := min
	for i := 1; i < 8; i++ {
		d := axis.Dot(vertices[i])
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// canonicalize flips axis so it points from centerA toward centerB.
func canonicalize(axis, centerA, centerB mgl64.Vec3) mgl64.Vec3 {
	if axis.Dot(centerB.Sub(centerA)) < 0 {
		return axis.Mul(-1)
	}
	return axis
}

// edgeParallelTo picks, among the 4 edges of b parallel to its axisIdx-th
// local axis, the one closest to the opposite body along the other two
// local axes (the sign of towardOther's local components decides which of
// the 4 parallel edges is "facing" the other box).
func edgeParallelTo(b *actor.OBB, axisIdx int, towardOther mgl64.Vec3) [2]mgl64.Vec3 {
	localDir := b.Transform.InverseTransformVec(towardOther)
	he := b.HalfExtents

	other := [2]int{(axisIdx + 1) % 3, (axisIdx + 2) % 3}
	local := [3]float64{0, 0, 0}
	for _, ax := range other {
		sign := 1.0
		if localDir[ax] < 0 {
			sign = -1.0
		}
		local[ax] = sign * he[ax]
	}

	p0 := local
	p1 := local
	p0[axisIdx] = -he[axisIdx]
	p1[axisIdx] = he[axisIdx]

	return [2]mgl64.Vec3{
		b.Transform.TransformPoint(mgl64.Vec3{p0[0], p0[1], p0[2]}),
		b.Transform.TransformPoint(mgl64.Vec3{p1[0], p1[1], p1[2]}),
	}
}
