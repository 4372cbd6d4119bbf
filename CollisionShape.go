package plane2d

/// This holds the mass data computed for a shape.
type MassData struct {
	/// The mass of the shape, usually in kilograms.
	Mass float64

	/// The position of the shape's centroid relative to the shape's origin.
	Center Vec2

	/// The rotational inertia of the shape about the local origin.
	I float64
}

func MakeMassData() MassData {
	return MassData{
		Mass:   0.0,
		Center: MakeVec2(0, 0),
		I:      0.0,
	}
}

/// Ray-cast input data. The ray extends from p1 to p1 + maxFraction * (p2 - p1).
type RayCastInput struct {
	P1, P2      Vec2
	MaxFraction float64
}

/// Ray-cast output data. The ray hits at p1 + fraction * (p2 - p1), where
/// p1 and p2 come from RayCastInput.
type RayCastOutput struct {
	Normal   UnitVec
	Fraction float64
}

/// A shape is used for collision detection. Shapes may encapsulate one or
/// more convex children. A shape may be attached to several fixtures at
/// once; it is reference counted and destroyed when its last owner
/// releases it.

var Shape_Type = struct {
	E_disk      uint8
	E_edge      uint8
	E_polygon   uint8
	E_chain     uint8
	E_compound  uint8
	E_typeCount uint8
}{
	E_disk:      0,
	E_edge:      1,
	E_polygon:   2,
	E_chain:     3,
	E_compound:  4,
	E_typeCount: 5,
}

type ShapeInterface interface {
	Destroy()

	/// Clone the concrete shape. The clone starts with a zero reference
	/// count and does not share property updates with the source.
	Clone() ShapeInterface

	/// Get the type of this shape. You can use this to down cast to the
	/// concrete shape.
	GetType() uint8

	GetVertexRadius() float64
	SetVertexRadius(r float64)
	GetDensity() float64
	SetDensity(density float64)
	GetFriction() float64
	SetFriction(friction float64)
	GetRestitution() float64
	SetRestitution(restitution float64)

	IncRef()
	DecRef() int32

	/// Get the number of convex child primitives. Always >= 1.
	GetChildCount() int

	/// Get the distance proxy for a child. Asserts that childIndex is in
	/// [0, GetChildCount()).
	GetChild(childIndex int) DistanceProxy

	/// Test a point for containment in one child. This only works for
	/// convex children.
	/// @param childIndex the child primitive index.
	/// @param xf the shape world transform.
	/// @param p a point in world coordinates.
	TestChildPoint(childIndex int, xf Transform, p Vec2) bool

	/// Cast a ray against a child shape.
	/// @param output the ray-cast results.
	/// @param input the ray-cast input parameters.
	/// @param transform the transform to be applied to the shape.
	/// @param childIndex the child shape index
	RayCast(output *RayCastOutput, input RayCastInput, transform Transform, childIndex int) bool

	/// Given a transform, compute the associated axis aligned bounding box
	/// for a child shape.
	ComputeAABB(aabb *AABB, xf Transform, childIndex int)

	/// Compute the mass properties of this shape using its dimensions and
	/// density. The inertia tensor is computed about the local origin.
	ComputeMass(massData *MassData)
}

/// Physical state shared by every shape kind. Vertex radius is the
/// rounding distance added around the core geometry (a Minkowski sum with
/// a disk); it enables rounded-corner collision and is never negative.
type Shape struct {
	M_type uint8

	M_vertexRadius float64
	M_density      float64
	M_friction     float64
	M_restitution  float64

	M_refCount int32
}

func (shape Shape) GetType() uint8 {
	return shape.M_type
}

func (shape Shape) GetVertexRadius() float64 {
	return shape.M_vertexRadius
}

func (shape *Shape) SetVertexRadius(r float64) {
	Assert(r >= 0.0)
	shape.M_vertexRadius = r
}

func (shape Shape) GetDensity() float64 {
	return shape.M_density
}

func (shape *Shape) SetDensity(density float64) {
	Assert(density >= 0.0)
	shape.M_density = density
}

func (shape Shape) GetFriction() float64 {
	return shape.M_friction
}

func (shape *Shape) SetFriction(friction float64) {
	Assert(friction >= 0.0)
	shape.M_friction = friction
}

func (shape Shape) GetRestitution() float64 {
	return shape.M_restitution
}

/// Restitution is usually in [0,1] but that is not enforced. The update is
/// an in-place write, immediately visible to every fixture sharing this
/// shape; readers get no snapshot guarantee.
func (shape *Shape) SetRestitution(restitution float64) {
	shape.M_restitution = restitution
}

func (shape *Shape) IncRef() {
	shape.M_refCount++
}

func (shape *Shape) DecRef() int32 {
	Assert(shape.M_refCount > 0)
	shape.M_refCount--
	return shape.M_refCount
}

/// Release one owner's reference and destroy the shape when the last
/// owner is gone.
func ReleaseShape(shape ShapeInterface) {
	if shape.DecRef() == 0 {
		shape.Destroy()
	}
}

/// Test a point for containment in any child of a shape. This is the one
/// generic containment algorithm: children are visited in index order and
/// the first containing child decides. Shape kinds only implement the
/// per-child test; none override this composition.
func TestPoint(shape ShapeInterface, xf Transform, p Vec2) bool {
	childCount := shape.GetChildCount()
	for childIndex := 0; childIndex < childCount; childIndex++ {
		if shape.TestChildPoint(childIndex, xf, p) {
			return true
		}
	}

	return false
}

///////////////////////////////////////////////////////////////////////////////

/// A distance proxy encapsulates one convex child of any shape for
/// distance-based queries.
type DistanceProxy struct {
	M_vertices []Vec2
	M_count    int
	M_radius   float64
}

func MakeDistanceProxy() DistanceProxy {
	return DistanceProxy{
		M_vertices: nil,
		M_count:    0,
		M_radius:   0.0,
	}
}

/// Get the vertex count.
func (p DistanceProxy) GetVertexCount() int {
	return p.M_count
}

/// Get a vertex by index. Used by distance queries.
func (p DistanceProxy) GetVertex(index int) Vec2 {
	Assert(0 <= index && index < p.M_count)
	return p.M_vertices[index]
}

/// Get the supporting vertex index in the given direction.
func (p DistanceProxy) GetSupport(d Vec2) int {
	bestIndex := 0
	bestValue := Vec2Dot(p.M_vertices[0], d)
	for i := 1; i < p.M_count; i++ {
		value := Vec2Dot(p.M_vertices[i], d)
		if value > bestValue {
			bestIndex = i
			bestValue = value
		}
	}

	return bestIndex
}

/// Get the supporting vertex in the given direction.
func (p DistanceProxy) GetSupportVertex(d Vec2) Vec2 {
	return p.M_vertices[p.GetSupport(d)]
}
