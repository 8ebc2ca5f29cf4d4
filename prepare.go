package trimesh

import (
	"iter"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/MOZGIII/go-trimesh/mesh"
	"github.com/MOZGIII/go-trimesh/shape"
)

// PrepareTriMeshFromMesh extracts and converts the geometry of a mesh
// into the two sequences the TriMesh constructor ingests. The sequences
// are lazy, which leaves room for a layer of transformations over the
// output data before collecting it into owned buffers.
//
// It stops at the first failing stage: extraction is checked before
// either buffer is converted.
func PrepareTriMeshFromMesh(m *mesh.Mesh) (iter.Seq[mgl32.Vec3], iter.Seq[[3]uint32], error) {
	rawVertices, rawIndices, err := ExtractGeometry(m)
	if err != nil {
		return nil, nil, &BuildError{Stage: StageExtraction, Err: err}
	}
	vertices, err := ConvertVertices(rawVertices)
	if err != nil {
		return nil, nil, &BuildError{Stage: StageVertexFormat, Err: err}
	}
	indices, err := ConvertIndices(rawIndices)
	if err != nil {
		return nil, nil, &BuildError{Stage: StageIndexFormat, Err: err}
	}
	return vertices, indices, nil
}

// TriMeshFromMesh builds a TriMesh directly from the mesh geometry.
//
// Call sites that construct many colliders from the same mesh should
// use CachedTriMeshBuilder instead, so the extraction cost is paid
// once.
func TriMeshFromMesh(m *mesh.Mesh) (*shape.TriMesh, error) {
	vertices, indices, err := PrepareTriMeshFromMesh(m)
	if err != nil {
		return nil, err
	}
	return shape.NewTriMesh(slices.Collect(vertices), slices.Collect(indices)), nil
}
