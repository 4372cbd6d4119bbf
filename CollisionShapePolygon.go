package plane2d

// A solid convex polygon. It is assumed that the interior of the polygon is
// to the left of each edge.
// Polygons have a maximum number of vertices equal to MaxPolygonVertices.
// In most cases you should not need many vertices for a convex polygon.

type PolygonShape struct {
	Shape

	M_centroid Vec2
	M_vertices [MaxPolygonVertices]Vec2
	M_normals  [MaxPolygonVertices]UnitVec
	M_count    int
}

func MakePolygonShape() PolygonShape {
	return PolygonShape{
		Shape: Shape{
			M_type:         Shape_Type.E_polygon,
			M_vertexRadius: PolygonRadius,
		},
		M_count:    0,
		M_centroid: MakeVec2(0, 0),
	}
}

func NewPolygonShape() *PolygonShape {
	res := MakePolygonShape()
	return &res
}

func (poly *PolygonShape) GetVertex(index int) *Vec2 {
	Assert(0 <= index && index < poly.M_count)
	return &poly.M_vertices[index]
}

func (poly *PolygonShape) GetNormal(index int) UnitVec {
	Assert(0 <= index && index < poly.M_count)
	return poly.M_normals[index]
}

func (poly PolygonShape) GetVertexCount() int {
	return poly.M_count
}

///////////////////////////////////////////////////////////////////////////////

func (poly PolygonShape) Clone() ShapeInterface {
	clone := NewPolygonShape()
	clone.Shape = poly.Shape
	clone.M_refCount = 0
	clone.M_centroid = poly.M_centroid
	clone.M_count = poly.M_count

	for i := range poly.M_vertices {
		clone.M_vertices[i] = poly.M_vertices[i]
	}

	for i := range poly.M_normals {
		clone.M_normals[i] = poly.M_normals[i]
	}

	return clone
}

func (poly *PolygonShape) Destroy() {}

/// Build vertices to represent an axis-aligned box centered on the local
/// origin.
func (poly *PolygonShape) SetAsBox(hx float64, hy float64) {
	poly.M_count = 4
	poly.M_vertices[0].Set(-hx, -hy)
	poly.M_vertices[1].Set(hx, -hy)
	poly.M_vertices[2].Set(hx, hy)
	poly.M_vertices[3].Set(-hx, hy)
	poly.M_normals[0] = UnitVecDown
	poly.M_normals[1] = UnitVecRight
	poly.M_normals[2] = UnitVecUp
	poly.M_normals[3] = UnitVecLeft
	poly.M_centroid.SetZero()
}

/// Build vertices to represent an oriented box.
func (poly *PolygonShape) SetAsBoxFromCenterAndAngle(hx float64, hy float64, center Vec2, angle float64) {
	poly.SetAsBox(hx, hy)
	poly.M_centroid = center

	xf := MakeTransform()
	xf.P = center
	xf.Q.Set(angle)

	// Transform vertices and normals.
	for i := 0; i < poly.M_count; i++ {
		poly.M_vertices[i] = TransformVec2Mul(xf, poly.M_vertices[i])
		poly.M_normals[i] = RotUnitVecMul(xf.Q, poly.M_normals[i])
	}
}

func (poly PolygonShape) GetChildCount() int {
	return 1
}

func (poly PolygonShape) GetChild(childIndex int) DistanceProxy {
	Assert(childIndex == 0)
	return DistanceProxy{
		M_vertices: poly.M_vertices[:poly.M_count],
		M_count:    poly.M_count,
		M_radius:   poly.M_vertexRadius,
	}
}

func ComputeCentroid(vs []Vec2, count int) Vec2 {
	Assert(count >= 3)

	c := MakeVec2(0, 0)
	area := 0.0

	// Get a reference point for forming triangles.
	// Use the first vertex to reduce round-off errors.
	s := vs[0]

	inv3 := 1.0 / 3.0

	for i := 0; i < count; i++ {
		// Triangle vertices.
		p1 := Vec2Sub(vs[0], s)
		p2 := Vec2Sub(vs[i], s)
		p3 := MakeVec2(0, 0)
		if i+1 < count {
			p3 = Vec2Sub(vs[i+1], s)
		} else {
			p3 = Vec2Sub(vs[0], s)
		}

		e1 := Vec2Sub(p2, p1)
		e2 := Vec2Sub(p3, p1)

		D := Vec2Cross(e1, e2)

		triangleArea := 0.5 * D
		area += triangleArea

		// Area weighted centroid
		c.OperatorPlusInplace(Vec2MulScalar(triangleArea*inv3, Vec2Add(Vec2Add(p1, p2), p3)))
	}

	// Centroid
	Assert(area > Epsilon)
	c = Vec2Add(Vec2MulScalar(1.0/area, c), s)
	return c
}

// Create a convex hull from the given array of local points.
// The count must be in the range [3, MaxPolygonVertices].
// @warning the points may be re-ordered, even if they form a convex polygon
// @warning collinear points are handled but not removed. Collinear points
// may lead to poor stacking behavior.
func (poly *PolygonShape) Set(vertices []Vec2, count int) {
	Assert(3 <= count && count <= MaxPolygonVertices)
	if count < 3 {
		poly.SetAsBox(1.0, 1.0)
		return
	}

	n := MinInt(count, MaxPolygonVertices)

	// Perform welding and copy vertices into local buffer.
	ps := make([]Vec2, MaxPolygonVertices)
	tempCount := 0

	for i := 0; i < n; i++ {
		v := vertices[i]

		unique := true
		for j := 0; j < tempCount; j++ {
			if Vec2DistanceSquared(v, ps[j]) < ((0.5 * LinearSlop) * (0.5 * LinearSlop)) {
				unique = false
				break
			}
		}

		if unique {
			ps[tempCount] = v
			tempCount++
		}
	}

	n = tempCount
	if n < 3 {
		// Polygon is degenerate.
		Assert(false)
		poly.SetAsBox(1.0, 1.0)
		return
	}

	// Create the convex hull using the Gift wrapping algorithm
	// http://en.wikipedia.org/wiki/Gift_wrapping_algorithm

	// Find the right most point on the hull
	i0 := 0
	x0 := ps[0].X
	for i := 1; i < n; i++ {
		x := ps[i].X
		if x > x0 || (x == x0 && ps[i].Y < ps[i0].Y) {
			i0 = i
			x0 = x
		}
	}

	hull := make([]int, MaxPolygonVertices)
	m := 0
	ih := i0

	for {
		Assert(m < MaxPolygonVertices)
		hull[m] = ih

		ie := 0
		for j := 1; j < n; j++ {
			if ie == ih {
				ie = j
				continue
			}

			r := Vec2Sub(ps[ie], ps[hull[m]])
			v := Vec2Sub(ps[j], ps[hull[m]])
			c := Vec2Cross(r, v)
			if c < 0.0 {
				ie = j
			}

			// Collinearity check
			if c == 0.0 && v.LengthSquared() > r.LengthSquared() {
				ie = j
			}
		}

		m++
		ih = ie

		if ie == i0 {
			break
		}
	}

	if m < 3 {
		// Polygon is degenerate.
		Assert(false)
		poly.SetAsBox(1.0, 1.0)
		return
	}

	poly.M_count = m

	// Copy vertices.
	for i := 0; i < m; i++ {
		poly.M_vertices[i] = ps[hull[i]]
	}

	// Compute normals. Ensure the edges have non-zero length.
	for i := 0; i < m; i++ {
		i1 := i
		i2 := 0
		if i+1 < m {
			i2 = i + 1
		}

		edge := Vec2Sub(poly.M_vertices[i2], poly.M_vertices[i1])
		Assert(edge.LengthSquared() > Epsilon*Epsilon)

		normal, magnitude := MakeUnitVec(edge.Y, -edge.X, UnitVecRight)
		Assert(magnitude > 0.0)
		poly.M_normals[i] = normal
	}

	// Compute the polygon centroid.
	poly.M_centroid = ComputeCentroid(poly.M_vertices[:], m)
}

func (poly PolygonShape) TestChildPoint(childIndex int, xf Transform, p Vec2) bool {
	Assert(childIndex == 0)

	pLocal := RotVec2MulT(xf.Q, Vec2Sub(p, xf.P))

	for i := 0; i < poly.M_count; i++ {
		dot := Vec2Dot(poly.M_normals[i].GetVec2(), Vec2Sub(pLocal, poly.M_vertices[i]))
		if dot > 0.0 {
			return false
		}
	}

	return true
}

// @note because the polygon is solid, rays that start inside do not hit
// because the normal is not defined.
func (poly PolygonShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool {
	Assert(childIndex == 0)

	// Put the ray into the polygon's frame of reference.
	p1 := RotVec2MulT(xf.Q, Vec2Sub(input.P1, xf.P))
	p2 := RotVec2MulT(xf.Q, Vec2Sub(input.P2, xf.P))
	d := Vec2Sub(p2, p1)

	lower := 0.0
	upper := input.MaxFraction

	index := -1

	for i := 0; i < poly.M_count; i++ {
		// p = p1 + a * d
		// dot(normal, p - v) = 0
		// dot(normal, p1 - v) + a * dot(normal, d) = 0
		numerator := Vec2Dot(poly.M_normals[i].GetVec2(), Vec2Sub(poly.M_vertices[i], p1))
		denominator := Vec2Dot(poly.M_normals[i].GetVec2(), d)

		if denominator == 0.0 {
			if numerator < 0.0 {
				return false
			}
		} else {
			// Note: we want this predicate without division:
			// lower < numerator / denominator, where denominator < 0
			// Since denominator < 0, we have to flip the inequality:
			// lower < numerator / denominator <==> denominator * lower > numerator.
			if denominator < 0.0 && numerator < lower*denominator {
				// Increase lower.
				// The segment enters this half-space.
				lower = numerator / denominator
				index = i
			} else if denominator > 0.0 && numerator < upper*denominator {
				// Decrease upper.
				// The segment exits this half-space.
				upper = numerator / denominator
			}
		}

		if upper < lower {
			return false
		}
	}

	Assert(0.0 <= lower && lower <= input.MaxFraction)

	if index >= 0 {
		output.Fraction = lower
		output.Normal = RotUnitVecMul(xf.Q, poly.M_normals[index])
		return true
	}

	return false
}

func (poly PolygonShape) ComputeAABB(aabb *AABB, xf Transform, childIndex int) {
	Assert(childIndex == 0)

	lower := TransformVec2Mul(xf, poly.M_vertices[0])
	upper := lower

	for i := 1; i < poly.M_count; i++ {
		v := TransformVec2Mul(xf, poly.M_vertices[i])
		lower = Vec2Min(lower, v)
		upper = Vec2Max(upper, v)
	}

	r := MakeVec2(poly.M_vertexRadius, poly.M_vertexRadius)
	aabb.LowerBound = Vec2Sub(lower, r)
	aabb.UpperBound = Vec2Add(upper, r)
}

func (poly PolygonShape) ComputeMass(massData *MassData) {
	// Polygon mass, centroid, and inertia.
	// Let rho be the polygon density in mass per unit area.
	// Then:
	// mass = rho * int(dA)
	// centroid.x = (1/mass) * rho * int(x * dA)
	// centroid.y = (1/mass) * rho * int(y * dA)
	// I = rho * int((x*x + y*y) * dA)
	//
	// We can compute these integrals by summing all the integrals
	// for each triangle of the polygon. To evaluate the integral
	// for a single triangle, we make a change of variables to
	// the (u,v) coordinates of the triangle:
	// x = x0 + e1x * u + e2x * v
	// y = y0 + e1y * u + e2y * v
	// where 0 <= u && 0 <= v && u + v <= 1.
	//
	// We integrate u from [0,1-v] and then v from [0,1].
	// We also need to use the Jacobian of the transformation:
	// D = cross(e1, e2)
	//
	// Simplification: triangle centroid = (1/3) * (p1 + p2 + p3)

	Assert(poly.M_count >= 3)

	center := MakeVec2(0, 0)

	area := 0.0
	I := 0.0

	// Get a reference point for forming triangles.
	// Use the first vertex to reduce round-off errors.
	s := poly.M_vertices[0]

	k_inv3 := 1.0 / 3.0

	for i := 0; i < poly.M_count; i++ {
		// Triangle vertices.
		e1 := Vec2Sub(poly.M_vertices[i], s)
		e2 := MakeVec2(0, 0)

		if i+1 < poly.M_count {
			e2 = Vec2Sub(poly.M_vertices[i+1], s)
		} else {
			e2 = Vec2Sub(poly.M_vertices[0], s)
		}

		D := Vec2Cross(e1, e2)

		triangleArea := 0.5 * D
		area += triangleArea

		// Area weighted centroid
		center.OperatorPlusInplace(Vec2MulScalar(triangleArea*k_inv3, Vec2Add(e1, e2)))

		ex1 := e1.X
		ey1 := e1.Y
		ex2 := e2.X
		ey2 := e2.Y

		intx2 := ex1*ex1 + ex2*ex1 + ex2*ex2
		inty2 := ey1*ey1 + ey2*ey1 + ey2*ey2

		I += (0.25 * k_inv3 * D) * (intx2 + inty2)
	}

	// Total mass
	massData.Mass = poly.M_density * area

	// Center of mass
	Assert(area > Epsilon)
	center.OperatorScalarMulInplace(1.0 / area)
	massData.Center = Vec2Add(center, s)

	// Inertia tensor relative to the local origin (point s).
	massData.I = poly.M_density * I

	// Shift to center of mass then to original body origin.
	massData.I += massData.Mass * (Vec2Dot(massData.Center, massData.Center) - Vec2Dot(center, center))
}

/// Validate convexity. This is a very time consuming operation.
/// @returns true if valid
func (poly PolygonShape) Validate() bool {
	if poly.M_count < 3 || MaxPolygonVertices < poly.M_count {
		return false
	}

	for i := 0; i < poly.M_count; i++ {
		i1 := i
		i2 := 0
		if i < poly.M_count-1 {
			i2 = i1 + 1
		}

		p := poly.M_vertices[i1]
		e := Vec2Sub(poly.M_vertices[i2], p)

		for j := 0; j < poly.M_count; j++ {
			if j == i1 || j == i2 {
				continue
			}

			v := Vec2Sub(poly.M_vertices[j], p)
			c := Vec2Cross(e, v)
			if c < 0.0 {
				return false
			}
		}
	}

	return true
}
