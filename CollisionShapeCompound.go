package plane2d

/// A compound shape: several convex polygons treated as one collidable
/// body fragment. Each part is one child. Useful for concave outlines that
/// have been decomposed into convex pieces.
type CompoundShape struct {
	Shape

	M_parts []*PolygonShape
}

func MakeCompoundShape() CompoundShape {
	return CompoundShape{
		Shape: Shape{
			M_type:         Shape_Type.E_compound,
			M_vertexRadius: PolygonRadius,
		},
		M_parts: nil,
	}
}

func NewCompoundShape() *CompoundShape {
	res := MakeCompoundShape()
	return &res
}

///////////////////////////////////////////////////////////////////////////////

func (compound *CompoundShape) Destroy() {
	compound.M_parts = nil
}

/// Add one convex part. The polygon is cloned; later mutation of the
/// argument does not affect this shape.
func (compound *CompoundShape) AddPart(part *PolygonShape) {
	Assert(part.M_count >= 3)
	clone := part.Clone().(*PolygonShape)
	compound.M_parts = append(compound.M_parts, clone)
}

func (compound CompoundShape) Clone() ShapeInterface {
	clone := NewCompoundShape()
	clone.Shape = compound.Shape
	clone.M_refCount = 0
	for _, part := range compound.M_parts {
		clone.AddPart(part)
	}
	return clone
}

func (compound CompoundShape) GetChildCount() int {
	return len(compound.M_parts)
}

func (compound CompoundShape) GetChild(childIndex int) DistanceProxy {
	Assert(0 <= childIndex && childIndex < len(compound.M_parts))
	return compound.M_parts[childIndex].GetChild(0)
}

func (compound CompoundShape) TestChildPoint(childIndex int, xf Transform, p Vec2) bool {
	Assert(0 <= childIndex && childIndex < len(compound.M_parts))
	return compound.M_parts[childIndex].TestChildPoint(0, xf, p)
}

func (compound CompoundShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool {
	Assert(0 <= childIndex && childIndex < len(compound.M_parts))
	return compound.M_parts[childIndex].RayCast(output, input, xf, 0)
}

func (compound CompoundShape) ComputeAABB(aabb *AABB, xf Transform, childIndex int) {
	Assert(0 <= childIndex && childIndex < len(compound.M_parts))
	compound.M_parts[childIndex].ComputeAABB(aabb, xf, 0)
}

/// The compound's mass is the sum of its parts' masses, all evaluated at
/// the compound's own density.
func (compound CompoundShape) ComputeMass(massData *MassData) {
	massData.Mass = 0.0
	massData.Center.SetZero()
	massData.I = 0.0

	for _, part := range compound.M_parts {
		partMass := MakeMassData()
		part.M_density = compound.M_density
		part.ComputeMass(&partMass)

		massData.Center.OperatorPlusInplace(Vec2MulScalar(partMass.Mass, partMass.Center))
		massData.Mass += partMass.Mass
		massData.I += partMass.I
	}

	if massData.Mass > 0.0 {
		massData.Center.OperatorScalarMulInplace(1.0 / massData.Mass)
	}
}
