package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AttributePosition is the name of the vertex position attribute.
const AttributePosition = "POSITION"

// VertexAttributeValues is the storage for one named vertex attribute.
// It is a closed set: each variant corresponds to one binary layout of
// the per-vertex data.
type VertexAttributeValues interface {
	// Len returns the number of vertex entries in the buffer.
	Len() int

	isVertexAttributeValues()
}

// Float32x2 stores two 32-bit float components per vertex.
type Float32x2 []mgl32.Vec2

// Float32x3 stores three 32-bit float components per vertex. This is the
// layout used for positions.
type Float32x3 []mgl32.Vec3

// Float32x4 stores four 32-bit float components per vertex.
type Float32x4 []mgl32.Vec4

func (v Float32x2) Len() int { return len(v) }
func (v Float32x3) Len() int { return len(v) }
func (v Float32x4) Len() int { return len(v) }

func (Float32x2) isVertexAttributeValues() {}
func (Float32x3) isVertexAttributeValues() {}
func (Float32x4) isVertexAttributeValues() {}

// Indices is the storage for the index buffer. Like
// VertexAttributeValues, it is a closed set over the index widths.
type Indices interface {
	// Len returns the number of indices in the buffer.
	Len() int

	isIndices()
}

// IndicesU16 stores indices as 16-bit unsigned integers.
type IndicesU16 []uint16

// IndicesU32 stores indices as 32-bit unsigned integers.
type IndicesU32 []uint32

func (ix IndicesU16) Len() int { return len(ix) }
func (ix IndicesU32) Len() int { return len(ix) }

func (IndicesU16) isIndices() {}
func (IndicesU32) isIndices() {}

// Mesh is a container for renderable geometry: a set of named vertex
// attribute buffers and an optional index buffer.
type Mesh struct {
	// Name of the mesh, typically the asset it was loaded from.
	Name string
	// Generation is incremented every time the geometry changes.
	Generation uint32

	attributes map[string]VertexAttributeValues
	indices    Indices
}

// New creates an empty mesh with the given name.
func New(name string) *Mesh {
	return &Mesh{
		Name:       name,
		attributes: make(map[string]VertexAttributeValues),
	}
}

// SetAttribute stores the values under the given attribute name,
// replacing any previous buffer for that name.
func (m *Mesh) SetAttribute(name string, values VertexAttributeValues) {
	if m.attributes == nil {
		m.attributes = make(map[string]VertexAttributeValues)
	}
	m.attributes[name] = values
	m.Generation++
}

// Attribute returns the buffer stored under the given attribute name.
func (m *Mesh) Attribute(name string) (VertexAttributeValues, bool) {
	values, ok := m.attributes[name]
	return values, ok
}

// SetIndices stores the index buffer, replacing any previous one.
func (m *Mesh) SetIndices(indices Indices) {
	m.indices = indices
	m.Generation++
}

// Indices returns the index buffer, if the mesh has one.
func (m *Mesh) Indices() (Indices, bool) {
	return m.indices, m.indices != nil
}
