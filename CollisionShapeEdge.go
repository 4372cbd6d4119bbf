package plane2d

/// A line segment (edge) shape with a vertex radius skin. These can be
/// connected in chains or loops to other edge shapes. The optional
/// adjacent vertices are used by contact generation for smooth collision;
/// containment and ray casting ignore them.
type EdgeShape struct {
	Shape

	/// These are the edge vertices
	M_vertex1, M_vertex2 Vec2

	/// Optional adjacent vertices. These are used for smooth collision.
	M_vertex0, M_vertex3       Vec2
	M_hasVertex0, M_hasVertex3 bool
}

func MakeEdgeShape() EdgeShape {
	return EdgeShape{
		Shape: Shape{
			M_type:         Shape_Type.E_edge,
			M_vertexRadius: PolygonRadius,
		},
		M_vertex0:    MakeVec2(0, 0),
		M_vertex3:    MakeVec2(0, 0),
		M_hasVertex0: false,
		M_hasVertex3: false,
	}
}

func NewEdgeShape() *EdgeShape {
	res := MakeEdgeShape()
	return &res
}

///////////////////////////////////////////////////////////////////////////////

/// Set this as an isolated edge.
func (edge *EdgeShape) Set(v1 Vec2, v2 Vec2) {
	edge.M_vertex1 = v1
	edge.M_vertex2 = v2
	edge.M_hasVertex0 = false
	edge.M_hasVertex3 = false
}

func (edge *EdgeShape) Destroy() {}

func (edge EdgeShape) Clone() ShapeInterface {
	clone := NewEdgeShape()
	clone.Shape = edge.Shape
	clone.M_refCount = 0
	clone.M_vertex0 = edge.M_vertex0
	clone.M_vertex1 = edge.M_vertex1
	clone.M_vertex2 = edge.M_vertex2
	clone.M_vertex3 = edge.M_vertex3
	clone.M_hasVertex0 = edge.M_hasVertex0
	clone.M_hasVertex3 = edge.M_hasVertex3

	return clone
}

func (edge EdgeShape) GetChildCount() int {
	return 1
}

func (edge EdgeShape) GetChild(childIndex int) DistanceProxy {
	Assert(childIndex == 0)
	return DistanceProxy{
		M_vertices: []Vec2{edge.M_vertex1, edge.M_vertex2},
		M_count:    2,
		M_radius:   edge.M_vertexRadius,
	}
}

// A point is inside the rounded edge when its distance to the segment is
// within the vertex radius.
func (edge EdgeShape) TestChildPoint(childIndex int, xf Transform, p Vec2) bool {
	Assert(childIndex == 0)

	pLocal := RotVec2MulT(xf.Q, Vec2Sub(p, xf.P))
	closest := SegmentClosestPoint(edge.M_vertex1, edge.M_vertex2, pLocal)
	return Vec2DistanceSquared(pLocal, closest) <= edge.M_vertexRadius*edge.M_vertexRadius
}

// p = p1 + t * d
// v = v1 + s * e
// p1 + t * d = v1 + s * e
// s * e - t * d = p1 - v1
func (edge EdgeShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool {
	Assert(childIndex == 0)

	// Put the ray into the edge's frame of reference.
	p1 := RotVec2MulT(xf.Q, Vec2Sub(input.P1, xf.P))
	p2 := RotVec2MulT(xf.Q, Vec2Sub(input.P2, xf.P))
	d := Vec2Sub(p2, p1)

	v1 := edge.M_vertex1
	v2 := edge.M_vertex2
	e := Vec2Sub(v2, v1)
	normal, magnitude := MakeUnitVec(e.Y, -e.X, UnitVecUp)
	if magnitude == 0.0 {
		// Degenerate edge.
		return false
	}

	// q = p1 + t * d
	// dot(normal, q - v1) = 0
	// dot(normal, p1 - v1) + t * dot(normal, d) = 0
	numerator := Vec2Dot(normal.GetVec2(), Vec2Sub(v1, p1))
	denominator := Vec2Dot(normal.GetVec2(), d)

	if denominator == 0.0 {
		return false
	}

	t := numerator / denominator
	if t < 0.0 || input.MaxFraction < t {
		return false
	}

	q := Vec2Add(p1, Vec2MulScalar(t, d))

	// q = v1 + s * r
	// s = dot(q - v1, r) / dot(r, r)
	r := Vec2Sub(v2, v1)
	rr := Vec2Dot(r, r)
	if rr == 0.0 {
		return false
	}

	s := Vec2Dot(Vec2Sub(q, v1), r) / rr
	if s < 0.0 || 1.0 < s {
		return false
	}

	output.Fraction = t
	if numerator > 0.0 {
		output.Normal = RotUnitVecMul(xf.Q, normal).OperatorNegate()
	} else {
		output.Normal = RotUnitVecMul(xf.Q, normal)
	}

	return true
}

func (edge EdgeShape) ComputeAABB(aabb *AABB, xf Transform, childIndex int) {
	Assert(childIndex == 0)

	v1 := TransformVec2Mul(xf, edge.M_vertex1)
	v2 := TransformVec2Mul(xf, edge.M_vertex2)

	lower := Vec2Min(v1, v2)
	upper := Vec2Max(v1, v2)

	r := MakeVec2(edge.M_vertexRadius, edge.M_vertexRadius)
	aabb.LowerBound = Vec2Sub(lower, r)
	aabb.UpperBound = Vec2Add(upper, r)
}

func (edge EdgeShape) ComputeMass(massData *MassData) {
	massData.Mass = 0.0
	massData.Center = Vec2MulScalar(0.5, Vec2Add(edge.M_vertex1, edge.M_vertex2))
	massData.I = 0.0
}

/// Get the point on segment [a, b] closest to p.
func SegmentClosestPoint(a, b, p Vec2) Vec2 {
	e := Vec2Sub(b, a)
	ee := Vec2Dot(e, e)
	if ee == 0.0 {
		// Zero-length segment.
		return a
	}

	t := Vec2Dot(Vec2Sub(p, a), e) / ee
	if t < 0.0 {
		t = 0.0
	} else if t > 1.0 {
		t = 1.0
	}

	return Vec2Add(a, Vec2MulScalar(t, e))
}
