package plane2d

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

/// A point as it appears in shape descriptors.
type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (s Vec2Spec) Vec2() Vec2 {
	return MakeVec2(s.X, s.Y)
}

/// A shape descriptor as loaded from configuration. One descriptor builds
/// one shape; several fixtures may then share the built shape.
type ShapeConf struct {
	/// One of "disk", "edge", "polygon", "chain", "loop", "compound".
	Kind string `yaml:"kind"`

	/// Physical properties common to all kinds. A zero or omitted vertex
	/// radius falls back to the kind's default.
	VertexRadius float64 `yaml:"vertexRadius"`
	Density      float64 `yaml:"density"`
	Friction     float64 `yaml:"friction"`
	Restitution  float64 `yaml:"restitution"`

	/// Disk geometry.
	Radius float64  `yaml:"radius"`
	Center Vec2Spec `yaml:"center"`

	/// Edge, polygon and chain geometry.
	Vertices []Vec2Spec `yaml:"vertices"`

	/// Compound geometry: one vertex list per convex part.
	Parts [][]Vec2Spec `yaml:"parts"`
}

/// A fixture descriptor as loaded from configuration.
type FixtureConf struct {
	Shape ShapeConf `yaml:"shape"`

	Position Vec2Spec `yaml:"position"`
	Angle    float64  `yaml:"angle"`

	IsSensor bool   `yaml:"isSensor"`
	Filter   Filter `yaml:"filter"`
}

func specsToVec2s(specs []Vec2Spec) []Vec2 {
	vertices := make([]Vec2, len(specs))
	for i, s := range specs {
		vertices[i] = s.Vec2()
	}
	return vertices
}

/// Build the shape a descriptor specifies. Malformed descriptors are a
/// data problem, not a programming one, so they surface as errors rather
/// than asserts.
func (conf ShapeConf) Build() (ShapeInterface, error) {
	if conf.VertexRadius < 0.0 {
		return nil, fmt.Errorf("shape conf: negative vertex radius %v", conf.VertexRadius)
	}
	if conf.Density < 0.0 {
		return nil, fmt.Errorf("shape conf: negative density %v", conf.Density)
	}
	if conf.Friction < 0.0 {
		return nil, fmt.Errorf("shape conf: negative friction %v", conf.Friction)
	}

	var shape ShapeInterface

	switch conf.Kind {
	case "disk":
		radius := conf.Radius
		if conf.VertexRadius > 0.0 {
			radius = conf.VertexRadius
		}
		if radius <= 0.0 {
			return nil, fmt.Errorf("shape conf: disk needs a positive radius")
		}
		disk := NewDiskShape(radius)
		disk.M_p = conf.Center.Vec2()
		shape = disk

	case "edge":
		if len(conf.Vertices) != 2 {
			return nil, fmt.Errorf("shape conf: edge needs exactly 2 vertices, got %d", len(conf.Vertices))
		}
		edge := NewEdgeShape()
		edge.Set(conf.Vertices[0].Vec2(), conf.Vertices[1].Vec2())
		if conf.VertexRadius > 0.0 {
			edge.SetVertexRadius(conf.VertexRadius)
		}
		shape = edge

	case "polygon":
		if len(conf.Vertices) < 3 || len(conf.Vertices) > MaxPolygonVertices {
			return nil, fmt.Errorf("shape conf: polygon needs 3..%d vertices, got %d", MaxPolygonVertices, len(conf.Vertices))
		}
		poly := NewPolygonShape()
		poly.Set(specsToVec2s(conf.Vertices), len(conf.Vertices))
		if conf.VertexRadius > 0.0 {
			poly.SetVertexRadius(conf.VertexRadius)
		}
		shape = poly

	case "chain":
		if len(conf.Vertices) < 2 {
			return nil, fmt.Errorf("shape conf: chain needs at least 2 vertices, got %d", len(conf.Vertices))
		}
		chain := NewChainShape()
		vertices := specsToVec2s(conf.Vertices)
		chain.CreateChain(vertices, len(vertices), vertices[0], vertices[len(vertices)-1])
		if conf.VertexRadius > 0.0 {
			chain.SetVertexRadius(conf.VertexRadius)
		}
		shape = chain

	case "loop":
		if len(conf.Vertices) < 3 {
			return nil, fmt.Errorf("shape conf: loop needs at least 3 vertices, got %d", len(conf.Vertices))
		}
		chain := NewChainShape()
		vertices := specsToVec2s(conf.Vertices)
		chain.CreateLoop(vertices, len(vertices))
		if conf.VertexRadius > 0.0 {
			chain.SetVertexRadius(conf.VertexRadius)
		}
		shape = chain

	case "compound":
		if len(conf.Parts) == 0 {
			return nil, fmt.Errorf("shape conf: compound needs at least one part")
		}
		compound := NewCompoundShape()
		for i, part := range conf.Parts {
			if len(part) < 3 || len(part) > MaxPolygonVertices {
				return nil, fmt.Errorf("shape conf: compound part %d needs 3..%d vertices, got %d", i, MaxPolygonVertices, len(part))
			}
			poly := NewPolygonShape()
			poly.Set(specsToVec2s(part), len(part))
			compound.AddPart(poly)
		}
		if conf.VertexRadius > 0.0 {
			compound.SetVertexRadius(conf.VertexRadius)
		}
		shape = compound

	default:
		return nil, fmt.Errorf("shape conf: unknown kind %q", conf.Kind)
	}

	applyPhysicalProps(shape, conf)

	return shape, nil
}

func applyPhysicalProps(shape ShapeInterface, conf ShapeConf) {
	shape.SetDensity(conf.Density)
	shape.SetFriction(conf.Friction)
	shape.SetRestitution(conf.Restitution)
}

/// Build a fixture definition from a descriptor. The built shape starts
/// unshared; pass the same FixtureDef to several CreateFixture calls to
/// share it.
func (conf FixtureConf) Build() (FixtureDef, error) {
	shape, err := conf.Shape.Build()
	if err != nil {
		return FixtureDef{}, fmt.Errorf("fixture conf: %w", err)
	}

	def := MakeFixtureDef()
	def.Shape = shape
	def.Transform.Set(conf.Position.Vec2(), conf.Angle)
	def.IsSensor = conf.IsSensor

	def.Filter = conf.Filter
	if conf.Filter.CategoryBits == 0 && conf.Filter.MaskBits == 0 && conf.Filter.GroupIndex == 0 {
		// Omitted filter block; use the defaults.
		def.Filter = MakeFilter()
	}

	return def, nil
}

/// Parse a list of fixture descriptors from YAML.
func LoadFixtureConfs(data []byte) ([]FixtureConf, error) {
	var confs []FixtureConf
	if err := yaml.Unmarshal(data, &confs); err != nil {
		return nil, fmt.Errorf("fixture confs: unmarshal: %w", err)
	}
	return confs, nil
}

/// Parse a list of shape descriptors from YAML.
func LoadShapeConfs(data []byte) ([]ShapeConf, error) {
	var confs []ShapeConf
	if err := yaml.Unmarshal(data, &confs); err != nil {
		return nil, fmt.Errorf("shape confs: unmarshal: %w", err)
	}
	return confs, nil
}
