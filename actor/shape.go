package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind tags the concrete type behind a Shape so the collision package's
// dispatch table can key off it without runtime type assertions on every
// pair test.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeOBB
	ShapePlane
)

// Shape is implemented by every collision primitive. It only carries what
// every shape needs regardless of kind: its own transform and a tag.
type Shape interface {
	Kind() ShapeKind
	GetTransform() Transform
	SetTransform(Transform)
}

// Polyhedron is implemented by shapes with an explicit vertex/edge/face
// topology. Only OBB implements it today; sphere and plane are described
// analytically instead.
type Polyhedron interface {
	Shape
	VertexCount() int
	WorldVertex(i int) mgl64.Vec3
	EdgeCount() int
	WorldEdge(i int) (mgl64.Vec3, mgl64.Vec3)
	FaceCount() int
	FaceNormalWorld(i int) mgl64.Vec3
	FaceVerticesWorld(i int) [4]mgl64.Vec3
	SeparatingAxisIndices() [3]int
}

// ---------------------------------------------------------------------
// Sphere
// ---------------------------------------------------------------------

// Sphere is a sphere of the given radius, centered at its transform's
// translation. Rotation is irrelevant to a sphere's geometry but it still
// owns a transform so CollisionObject can mirror a body's full pose onto it
// uniformly with the other shapes.
type Sphere struct {
	Radius    float64
	Transform Transform
}

func (s *Sphere) Kind() ShapeKind          { return ShapeSphere }
func (s *Sphere) GetTransform() Transform  { return s.Transform }
func (s *Sphere) SetTransform(t Transform) { s.Transform = t }

// Position is shorthand for the sphere's center.
func (s *Sphere) Position() mgl64.Vec3 { return s.Transform.Translation }

// ClosestPoint returns the point on the sphere's surface closest to p:
// position + radius*normalize(p - position). Undefined if p == position;
// callers are not expected to query the sphere's own center.
func (s *Sphere) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	center := s.Position()
	return center.Add(p.Sub(center).Normalize().Mul(s.Radius))
}

// Inertia returns the sphere's local inertia tensor for the given mass:
// diagonal (2/5)*m*r^2.
func (s *Sphere) Inertia(mass float64) mgl64.Mat3 {
	i := 0.4 * mass * s.Radius * s.Radius
	return mgl64.Mat3{
		i, 0, 0,
		0, i, 0,
		0, 0, i,
	}
}

// ---------------------------------------------------------------------
// Plane
// ---------------------------------------------------------------------

// Plane is an infinite plane. Normal is auto-normalized at construction;
// Distance caches the norm of the construction-time position, per
// spec.md §4.2.
type Plane struct {
	Normal    mgl64.Vec3
	Distance  float64
	Transform Transform
}

// NewPlane builds a plane through transform.Translation with the given
// normal, normalizing the normal if it isn't already unit length.
func NewPlane(normal mgl64.Vec3, transform Transform) *Plane {
	return &Plane{
		Normal:    normal.Normalize(),
		Distance:  transform.Translation.Len(),
		Transform: transform,
	}
}

func (p *Plane) Kind() ShapeKind { return ShapePlane }
func (p *Plane) GetTransform() Transform {
	return p.Transform
}
func (p *Plane) SetTransform(t Transform) { p.Transform = t }

// SignedDistance returns normal . (point - planePosition); positive on the
// side the normal points to.
func (p *Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point.Sub(p.Transform.Translation))
}

// RejectPointOntoPlane drops point along the normal onto the plane.
func (p *Plane) RejectPointOntoPlane(point mgl64.Vec3) mgl64.Vec3 {
	d := p.SignedDistance(point)
	return point.Sub(p.Normal.Mul(d))
}

// Inertia is undefined for a plane: a plane is never a rigid body's own
// inertial shape (spec.md §7, "inertia undefined"). Calling this is a
// programmer error and is fatal by design.
func (p *Plane) Inertia(float64) mgl64.Mat3 {
	panic("actor: a plane has no inertia; it cannot be used as a dynamic rigid body's shape")
}

// ---------------------------------------------------------------------
// OBB
// ---------------------------------------------------------------------

// OBB is an oriented box described by three positive half-extents. Its
// local vertex/edge/face topology is fixed: 8 vertices, 12 edges, 6 faces
// in the order +X,-X,+Y,-Y,+Z,-Z, trigonometric (CCW from outside) winding.
type OBB struct {
	HalfExtents mgl64.Vec3
	Transform   Transform
}

func (b *OBB) Kind() ShapeKind          { return ShapeOBB }
func (b *OBB) GetTransform() Transform  { return b.Transform }
func (b *OBB) SetTransform(t Transform) { b.Transform = t }

// obbFaces lists, per face (in +X,-X,+Y,-Y,+Z,-Z order), the four local
// vertex indices that bound it, in trigonometric winding. Vertex index i
// encodes sign(x)=bit0, sign(y)=bit1, sign(z)=bit2 (1=+, 0=-).
var obbFaces = [6][4]int{
	{1, 3, 7, 5}, // +X
	{4, 6, 2, 0}, // -X
	{2, 6, 7, 3}, // +Y
	{4, 0, 1, 5}, // -Y
	{4, 5, 7, 6}, // +Z
	{1, 0, 2, 3}, // -Z
}

// obbEdges lists the 12 edges as pairs of local vertex indices.
var obbEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // edges along local X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // edges along local Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // edges along local Z
}

// LocalVertex returns the i-th corner (0..7) in the box's local frame.
func (b *OBB) LocalVertex(i int) mgl64.Vec3 {
	he := b.HalfExtents
	x, y, z := he.X(), he.Y(), he.Z()
	if i&1 == 0 {
		x = -x
	}
	if (i>>1)&1 == 0 {
		y = -y
	}
	if (i>>2)&1 == 0 {
		z = -z
	}
	return mgl64.Vec3{x, y, z}
}

func (b *OBB) VertexCount() int { return 8 }

// WorldVertex returns the i-th corner in world space.
func (b *OBB) WorldVertex(i int) mgl64.Vec3 {
	return b.Transform.TransformPoint(b.LocalVertex(i))
}

func (b *OBB) EdgeCount() int { return 12 }

// WorldEdge returns the two world-space endpoints of edge i.
func (b *OBB) WorldEdge(i int) (mgl64.Vec3, mgl64.Vec3) {
	e := obbEdges[i]
	return b.WorldVertex(e[0]), b.WorldVertex(e[1])
}

func (b *OBB) FaceCount() int { return 6 }

// FaceNormalLocal returns the i-th face's outward normal in local space:
// plus or minus the (i/2)-th basis axis, positive on even i.
func (b *OBB) FaceNormalLocal(i int) mgl64.Vec3 {
	axis := mgl64.Vec3{}
	axis[i/2] = 1
	if i%2 == 1 {
		axis = axis.Mul(-1)
	}
	return axis
}

// FaceNormalWorld returns the i-th face's outward normal in world space.
func (b *OBB) FaceNormalWorld(i int) mgl64.Vec3 {
	return b.Transform.TransformVec(b.FaceNormalLocal(i)).Normalize()
}

// FaceVerticesWorld returns the four world-space corners bounding face i,
// in trigonometric winding.
func (b *OBB) FaceVerticesWorld(i int) [4]mgl64.Vec3 {
	idx := obbFaces[i]
	return [4]mgl64.Vec3{
		b.WorldVertex(idx[0]), b.WorldVertex(idx[1]),
		b.WorldVertex(idx[2]), b.WorldVertex(idx[3]),
	}
}

// SeparatingAxisIndices returns the three face indices representing the
// box's three unique face-normal axes (+X,+Y,+Z faces: 0,2,4).
func (b *OBB) SeparatingAxisIndices() [3]int {
	return [3]int{0, 2, 4}
}

// IsInside reports whether a world point lies within (or on) the box.
func (b *OBB) IsInside(worldPoint mgl64.Vec3) bool {
	lp := b.Transform.InverseTransformPoint(worldPoint)
	he := b.HalfExtents
	return math.Abs(lp.X()) <= he.X() && math.Abs(lp.Y()) <= he.Y() && math.Abs(lp.Z()) <= he.Z()
}

// ProjectOntoContourOrInside clamps a world point into the box, returning
// it unchanged if it was already inside.
func (b *OBB) ProjectOntoContourOrInside(worldPoint mgl64.Vec3) mgl64.Vec3 {
	lp := b.Transform.InverseTransformPoint(worldPoint)
	he := b.HalfExtents
	clamped := mgl64.Vec3{
		clamp(lp.X(), -he.X(), he.X()),
		clamp(lp.Y(), -he.Y(), he.Y()),
		clamp(lp.Z(), -he.Z(), he.Z()),
	}
	return b.Transform.TransformPoint(clamped)
}

// ProjectOntoContour returns the box's support point along a world-space
// direction: the extremal vertex in that direction. Ties (a direction
// component of exactly zero) resolve to the positive side, so directions
// aligned with a face/edge/corner reproducibly yield the same feature.
func (b *OBB) ProjectOntoContour(worldDirection mgl64.Vec3) mgl64.Vec3 {
	localDir := b.Transform.InverseTransformVec(worldDirection)
	he := b.HalfExtents
	local := mgl64.Vec3{
		supportSign(localDir.X()) * he.X(),
		supportSign(localDir.Y()) * he.Y(),
		supportSign(localDir.Z()) * he.Z(),
	}
	return b.Transform.TransformPoint(local)
}

func supportSign(c float64) float64 {
	if c < 0 {
		return -1
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Inertia returns the box's local inertia tensor for the given mass:
// diagonal (m/12)*(y^2+z^2, x^2+z^2, x^2+y^2) with x,y,z the full side
// lengths.
func (b *OBB) Inertia(mass float64) mgl64.Mat3 {
	x, y, z := 2*b.HalfExtents.X(), 2*b.HalfExtents.Y(), 2*b.HalfExtents.Z()
	factor := mass / 12.0
	return mgl64.Mat3{
		factor * (y*y + z*z), 0, 0,
		0, factor * (x*x + z*z), 0,
		0, 0, factor * (x*x + y*y),
	}
}
