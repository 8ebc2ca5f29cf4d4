package trimesh

import (
	"github.com/MOZGIII/go-trimesh/mesh"
)

// ExtractGeometry looks up the position attribute and the index buffer
// of the given mesh. It is a pure lookup: the buffers are returned as
// stored, with no copying or validation of their layout.
func ExtractGeometry(m *mesh.Mesh) (mesh.VertexAttributeValues, mesh.Indices, error) {
	vertices, ok := m.Attribute(mesh.AttributePosition)
	if !ok {
		return nil, nil, ErrNoVertexPositionData
	}
	indices, ok := m.Indices()
	if !ok {
		return nil, nil, ErrNoVertexIndices
	}
	return vertices, indices, nil
}
