package trimesh

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/MOZGIII/go-trimesh/mesh"
	"github.com/MOZGIII/go-trimesh/shape"
)

// CachedTriMeshBuilder holds geometry extracted once from a mesh, ready
// to construct any number of TriMesh instances without touching the
// source mesh again.
//
// The cached buffers are never mutated after construction, so Build and
// BuildWithVertexTransform are safe to call from multiple goroutines.
type CachedTriMeshBuilder struct {
	// Vertices is the precomputed vertex buffer.
	Vertices []mgl32.Vec3
	// Indices is the precomputed triangle index buffer.
	Indices [][3]uint32
}

// NewCachedTriMeshBuilder extracts the geometry from the mesh and
// materializes it into the builder's buffers. This is the one point
// where the extraction and conversion cost is paid.
func NewCachedTriMeshBuilder(m *mesh.Mesh) (*CachedTriMeshBuilder, error) {
	vertices, indices, err := PrepareTriMeshFromMesh(m)
	if err != nil {
		return nil, err
	}
	return &CachedTriMeshBuilder{
		Vertices: slices.Collect(vertices),
		Indices:  slices.Collect(indices),
	}, nil
}

// Build constructs a new TriMesh from the precomputed geometry. Every
// call copies the cached buffers, so each returned mesh is independent
// of the cache and of every other returned mesh.
func (b *CachedTriMeshBuilder) Build() *shape.TriMesh {
	return shape.NewTriMesh(slices.Clone(b.Vertices), slices.Clone(b.Indices))
}

// BuildWithVertexTransform constructs a new TriMesh from the
// precomputed geometry, applying transform to every vertex. The index
// buffer is copied verbatim. The transform is called once per vertex
// per build, in vertex order.
func (b *CachedTriMeshBuilder) BuildWithVertexTransform(transform func(mgl32.Vec3) mgl32.Vec3) *shape.TriMesh {
	vertices := make([]mgl32.Vec3, len(b.Vertices))
	for i, v := range b.Vertices {
		vertices[i] = transform(v)
	}
	return shape.NewTriMesh(vertices, slices.Clone(b.Indices))
}
