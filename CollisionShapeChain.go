package plane2d

/// A chain shape is a free form sequence of line segments, each of which is
/// one convex child. The chain has one-sided collision response, with the
/// surface normal pointing to the right of the edge. This provides a
/// counter-clockwise winding like the polygon shape.
/// Connectivity information is used to create smooth collisions.
/// @warning the chain will not collide properly if there are self-intersections.
type ChainShape struct {
	Shape

	/// The vertices. Owned by this class.
	M_vertices []Vec2

	/// The vertex count.
	M_count int

	M_prevVertex Vec2
	M_nextVertex Vec2
}

func MakeChainShape() ChainShape {
	return ChainShape{
		Shape: Shape{
			M_type:         Shape_Type.E_chain,
			M_vertexRadius: PolygonRadius,
		},
		M_vertices: nil,
		M_count:    0,
	}
}

func NewChainShape() *ChainShape {
	res := MakeChainShape()
	return &res
}

///////////////////////////////////////////////////////////////////////////////

func (chain *ChainShape) Destroy() {
	chain.Clear()
}

func (chain *ChainShape) Clear() {
	chain.M_vertices = nil
	chain.M_count = 0
}

/// Create a loop. This automatically adjusts connectivity.
/// @param vertices an array of vertices, these are copied
/// @param count the vertex count
func (chain *ChainShape) CreateLoop(vertices []Vec2, count int) {
	Assert(chain.M_vertices == nil && chain.M_count == 0)
	Assert(count >= 3)
	if count < 3 {
		return
	}

	for i := 1; i < count; i++ {
		v1 := vertices[i-1]
		v2 := vertices[i]
		// If the code crashes here, it means your vertices are too close together.
		Assert(Vec2DistanceSquared(v1, v2) > LinearSlop*LinearSlop)
	}

	chain.M_count = count + 1
	chain.M_vertices = make([]Vec2, chain.M_count)
	copy(chain.M_vertices, vertices)

	chain.M_vertices[count] = chain.M_vertices[0]
	chain.M_prevVertex = chain.M_vertices[chain.M_count-2]
	chain.M_nextVertex = chain.M_vertices[1]
}

/// Create a chain with ghost vertices to connect multiple chains together.
/// @param vertices an array of vertices, these are copied
/// @param count the vertex count
/// @param prevVertex previous vertex from chain that connects to the start
/// @param nextVertex next vertex from chain that connects to the end
func (chain *ChainShape) CreateChain(vertices []Vec2, count int, prevVertex Vec2, nextVertex Vec2) {
	Assert(chain.M_vertices == nil && chain.M_count == 0)
	Assert(count >= 2)
	for i := 1; i < count; i++ {
		// If the code crashes here, it means your vertices are too close together.
		Assert(Vec2DistanceSquared(vertices[i-1], vertices[i]) > LinearSlop*LinearSlop)
	}

	chain.M_count = count
	chain.M_vertices = make([]Vec2, count)
	copy(chain.M_vertices, vertices)

	chain.M_prevVertex = prevVertex
	chain.M_nextVertex = nextVertex
}

func (chain ChainShape) Clone() ShapeInterface {
	clone := NewChainShape()
	clone.Shape = chain.Shape
	clone.M_refCount = 0
	clone.CreateChain(chain.M_vertices, chain.M_count, chain.M_prevVertex, chain.M_nextVertex)
	return clone
}

func (chain ChainShape) GetChildCount() int {
	// edge count = vertex count - 1
	return chain.M_count - 1
}

/// Get a child edge, including its connectivity ghost vertices.
func (chain ChainShape) GetChildEdge(edge *EdgeShape, childIndex int) {
	Assert(0 <= childIndex && childIndex < chain.M_count-1)

	edge.M_type = Shape_Type.E_edge
	edge.M_vertexRadius = chain.M_vertexRadius

	edge.M_vertex1 = chain.M_vertices[childIndex+0]
	edge.M_vertex2 = chain.M_vertices[childIndex+1]

	if childIndex > 0 {
		edge.M_vertex0 = chain.M_vertices[childIndex-1]
		edge.M_hasVertex0 = true
	} else {
		edge.M_vertex0 = chain.M_prevVertex
		edge.M_hasVertex0 = false
	}

	if childIndex < chain.M_count-2 {
		edge.M_vertex3 = chain.M_vertices[childIndex+2]
		edge.M_hasVertex3 = true
	} else {
		edge.M_vertex3 = chain.M_nextVertex
		edge.M_hasVertex3 = false
	}
}

func (chain ChainShape) GetChild(childIndex int) DistanceProxy {
	Assert(0 <= childIndex && childIndex < chain.M_count-1)
	return DistanceProxy{
		M_vertices: chain.M_vertices[childIndex : childIndex+2],
		M_count:    2,
		M_radius:   chain.M_vertexRadius,
	}
}

// Each child is a rounded segment; the point is inside when it lies within
// the vertex radius of that segment.
func (chain ChainShape) TestChildPoint(childIndex int, xf Transform, p Vec2) bool {
	Assert(0 <= childIndex && childIndex < chain.M_count-1)

	pLocal := RotVec2MulT(xf.Q, Vec2Sub(p, xf.P))
	closest := SegmentClosestPoint(chain.M_vertices[childIndex], chain.M_vertices[childIndex+1], pLocal)
	return Vec2DistanceSquared(pLocal, closest) <= chain.M_vertexRadius*chain.M_vertexRadius
}

func (chain ChainShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool {
	Assert(0 <= childIndex && childIndex < chain.M_count-1)

	edgeShape := MakeEdgeShape()
	edgeShape.M_vertex1 = chain.M_vertices[childIndex]
	edgeShape.M_vertex2 = chain.M_vertices[childIndex+1]

	return edgeShape.RayCast(output, input, xf, 0)
}

func (chain ChainShape) ComputeAABB(aabb *AABB, xf Transform, childIndex int) {
	Assert(0 <= childIndex && childIndex < chain.M_count-1)

	v1 := TransformVec2Mul(xf, chain.M_vertices[childIndex])
	v2 := TransformVec2Mul(xf, chain.M_vertices[childIndex+1])

	lower := Vec2Min(v1, v2)
	upper := Vec2Max(v1, v2)

	r := MakeVec2(chain.M_vertexRadius, chain.M_vertexRadius)
	aabb.LowerBound = Vec2Sub(lower, r)
	aabb.UpperBound = Vec2Add(upper, r)
}

/// Chains have zero mass.
func (chain ChainShape) ComputeMass(massData *MassData) {
	massData.Mass = 0.0
	massData.Center.SetZero()
	massData.I = 0.0
}
