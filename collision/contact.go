package collision

import (
	"math"

	"github.com/akmonengine/rigid3d/actor"
	"github.com/akmonengine/rigid3d/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactSphereSphere builds the contact between two overlapping spheres
// (spec.md §4.4): a single point, normal a->b, and a non-negative
// penetration depth split evenly between the two radii.
func ContactSphereSphere(a, b *actor.Sphere) ContactInformation {
	a2b := b.Position().Sub(a.Position())
	l := a2b.Len()
	penetration := math.Abs(l-a.Radius-b.Radius) / 2
	n := a2b.Mul(1 / l)
	p := n.Mul(a.Radius - penetration).Add(a.Position())

	return ContactInformation{
		Points:              []mgl64.Vec3{p},
		NormalAToB:          n,
		PenetrationDistance: penetration,
	}
}

// ContactPlaneSphere builds the contact between a plane and a sphere
// (spec.md §4.4), normal_a_to_b = plane.normal (plane->sphere); the
// dispatcher flips it for a Sphere/Plane call.
func ContactPlaneSphere(p *actor.Plane, s *actor.Sphere) ContactInformation {
	spherePos := s.Position()
	d := p.SignedDistance(spherePos)
	return ContactInformation{
		Points:              []mgl64.Vec3{spherePos.Sub(p.Normal.Mul(d))},
		NormalAToB:          p.Normal,
		PenetrationDistance: d,
	}
}

// ContactOBBSphere builds the contact between a box and a sphere via the
// box's closest-point routine (spec.md §4.4: "derived analogously" to
// OBB/Plane and Sphere/Sphere).
func ContactOBBSphere(b *actor.OBB, s *actor.Sphere) ContactInformation {
	closest := b.ProjectOntoContourOrInside(s.Position())
	d := s.Position().Sub(closest)
	l := d.Len()
	if l < 1e-12 {
		return ContactInformation{
			Points:              []mgl64.Vec3{closest},
			NormalAToB:          mgl64.Vec3{0, 1, 0},
			PenetrationDistance: s.Radius,
		}
	}
	n := d.Mul(1 / l)
	return ContactInformation{
		Points:              []mgl64.Vec3{closest},
		NormalAToB:          n,
		PenetrationDistance: s.Radius - l,
	}
}

// ContactOBBPlane collects every OBB vertex below the plane and lifts each
// halfway to the plane (spec.md §4.4).
func ContactOBBPlane(b *actor.OBB, p *actor.Plane) ContactInformation {
	var distance float64
	var points []mgl64.Vec3

	for i := 0; i < b.VertexCount(); i++ {
		v := b.WorldVertex(i)
		d := p.SignedDistance(v)
		if d < 0 {
			points = append(points, v.Sub(p.Normal.Mul(d*0.5)))
			if d < distance {
				distance = d
			}
		}
	}

	return ContactInformation{
		Points:              points,
		NormalAToB:          p.Normal.Mul(-1),
		PenetrationDistance: math.Abs(distance),
	}
}

// ContactOBBOBB builds the contact manifold between two overlapping boxes
// via face or edge contact, whichever the SAT result picks (spec.md §4.4).
// sat must already report Separated == false.
func ContactOBBOBB(a, b *actor.OBB, sat geometry.SATResult) ContactInformation {
	switch sat.Kind {
	case geometry.SATAxisFaceA:
		return faceContact(a, b, sat.FaceIndex, sat.Normal, sat.Overlap)
	case geometry.SATAxisFaceB:
		return faceContact(b, a, sat.FaceIndex, sat.Normal.Mul(-1), sat.Overlap).flipNormal()
	default:
		return edgeContact(sat)
	}
}

func (c ContactInformation) flipNormal() ContactInformation {
	c.NormalAToB = c.NormalAToB.Mul(-1)
	return c
}

// faceContact clips incident's nearest face against reference's reference
// face, producing the manifold points with reference acting as body A.
func faceContact(reference, incident *actor.OBB, referenceFaceIndex int, referenceNormal mgl64.Vec3, penetration float64) ContactInformation {
	incidentFaceIndex := 0
	best := referenceNormal.Dot(incident.FaceNormalWorld(0))
	for i := 1; i < incident.FaceCount(); i++ {
		dot := referenceNormal.Dot(incident.FaceNormalWorld(i))
		if dot < best {
			best = dot
			incidentFaceIndex = i
		}
	}

	points := incident.FaceVerticesWorld(incidentFaceIndex)
	refVertices := reference.FaceVerticesWorld(referenceFaceIndex)
	n := len(refVertices)

	for i := 0; i < n; i++ {
		v1 := refVertices[i]
		v2 := refVertices[(i+1)%n]

		sideNormal := referenceNormal.Cross(v1.Sub(v2))
		if sideNormal.Len() < 1e-12 {
			continue
		}
		sideNormal = sideNormal.Normalize()
		if sideNormal.Dot(v1) < 0 {
			sideNormal = sideNormal.Mul(-1)
		}

		points = geometry.ClipPolygonAgainstPlane(points, sideNormal, v1)
	}

	points = geometry.ClipPolygonAgainstPlane(points, referenceNormal.Mul(-1), refVertices[0])

	return ContactInformation{
		Points:              points,
		NormalAToB:          referenceNormal,
		PenetrationDistance: penetration,
	}
}

// edgeContact reduces the two SAT-identified world edges to the closest
// pair of points between them, collapsing to a single point when they
// coincide (spec.md §4.4).
func edgeContact(sat geometry.SATResult) ContactInformation {
	p1, p2 := geometry.ClosestPointsSegmentSegment(
		sat.WorldEdgeA[0], sat.WorldEdgeA[1],
		sat.WorldEdgeB[0], sat.WorldEdgeB[1],
	)

	var points []mgl64.Vec3
	if samePoint(p1, p2) {
		points = []mgl64.Vec3{p1}
	} else {
		points = []mgl64.Vec3{p1.Add(p2).Mul(0.5)}
	}

	return ContactInformation{
		Points:              points,
		NormalAToB:          sat.Normal,
		PenetrationDistance: sat.Overlap,
	}
}

func samePoint(a, b mgl64.Vec3) bool {
	const tolerance = 1e-6
	return a.Sub(b).Len() < tolerance
}
