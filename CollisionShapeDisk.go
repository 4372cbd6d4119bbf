package plane2d

import (
	"math"
)

/// A disk shape: a point with a vertex radius around it. The radius of the
/// disk is the vertex radius itself, so a disk is "all skin".
type DiskShape struct {
	Shape

	/// Position of the center relative to the shape origin.
	M_p Vec2
}

func MakeDiskShape(radius float64) DiskShape {
	Assert(radius >= 0.0)
	return DiskShape{
		Shape: Shape{
			M_type:         Shape_Type.E_disk,
			M_vertexRadius: radius,
		},
		M_p: MakeVec2(0, 0),
	}
}

func NewDiskShape(radius float64) *DiskShape {
	res := MakeDiskShape(radius)
	return &res
}

///////////////////////////////////////////////////////////////////////////////

func (shape *DiskShape) Destroy() {}

func (shape DiskShape) Clone() ShapeInterface {
	clone := NewDiskShape(shape.M_vertexRadius)
	clone.Shape = shape.Shape
	clone.M_refCount = 0
	clone.M_p = shape.M_p
	return clone
}

func (shape DiskShape) GetChildCount() int {
	return 1
}

func (shape DiskShape) GetChild(childIndex int) DistanceProxy {
	Assert(childIndex == 0)
	return DistanceProxy{
		M_vertices: []Vec2{shape.M_p},
		M_count:    1,
		M_radius:   shape.M_vertexRadius,
	}
}

func (shape DiskShape) TestChildPoint(childIndex int, xf Transform, p Vec2) bool {
	Assert(childIndex == 0)

	center := Vec2Add(xf.P, RotVec2Mul(xf.Q, shape.M_p))
	d := Vec2Sub(p, center)
	return Vec2Dot(d, d) <= shape.M_vertexRadius*shape.M_vertexRadius
}

// Collision Detection in Interactive 3D Environments by Gino van den Bergen
// From Section 3.1.2
// x = s + a * r
// norm(x) = radius
func (shape DiskShape) RayCast(output *RayCastOutput, input RayCastInput, transform Transform, childIndex int) bool {
	Assert(childIndex == 0)

	position := Vec2Add(transform.P, RotVec2Mul(transform.Q, shape.M_p))
	s := Vec2Sub(input.P1, position)
	b := Vec2Dot(s, s) - shape.M_vertexRadius*shape.M_vertexRadius

	// Solve quadratic equation.
	r := Vec2Sub(input.P2, input.P1)
	c := Vec2Dot(s, r)
	rr := Vec2Dot(r, r)
	sigma := c*c - rr*b

	// Check for negative discriminant and short segment.
	if sigma < 0.0 || rr < Epsilon {
		return false
	}

	// Find the point of intersection of the line with the circle.
	a := -(c + math.Sqrt(sigma))

	// Is the intersection point on the segment?
	if 0.0 <= a && a <= input.MaxFraction*rr {
		a /= rr
		output.Fraction = a
		hit := Vec2Add(s, Vec2MulScalar(a, r))
		output.Normal, _ = MakeUnitVec(hit.X, hit.Y, UnitVecRight)
		return true
	}

	return false
}

func (shape DiskShape) ComputeAABB(aabb *AABB, transform Transform, childIndex int) {
	Assert(childIndex == 0)

	p := Vec2Add(transform.P, RotVec2Mul(transform.Q, shape.M_p))
	aabb.LowerBound.Set(p.X-shape.M_vertexRadius, p.Y-shape.M_vertexRadius)
	aabb.UpperBound.Set(p.X+shape.M_vertexRadius, p.Y+shape.M_vertexRadius)
}

func (shape DiskShape) ComputeMass(massData *MassData) {
	r := shape.M_vertexRadius
	massData.Mass = shape.M_density * Pi * r * r
	massData.Center = shape.M_p

	// inertia about the local origin
	massData.I = massData.Mass * (0.5*r*r + Vec2Dot(shape.M_p, shape.M_p))
}
