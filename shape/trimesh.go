package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TriMesh is triangle-mesh collision geometry: a vertex buffer and a
// buffer of index triples, one per triangle.
type TriMesh struct {
	// Vertices holds the vertex positions.
	Vertices []mgl32.Vec3
	// Indices holds one triple of vertex indices per triangle.
	Indices [][3]uint32
}

// NewTriMesh creates a triangle mesh taking ownership of the given
// buffers. Callers must not mutate the slices afterwards.
func NewTriMesh(vertices []mgl32.Vec3, indices [][3]uint32) *TriMesh {
	return &TriMesh{
		Vertices: vertices,
		Indices:  indices,
	}
}

// NumTriangles returns the number of triangles in the mesh.
func (t *TriMesh) NumTriangles() int {
	return len(t.Indices)
}

// Triangle returns the three corner positions of triangle i.
func (t *TriMesh) Triangle(i int) [3]mgl32.Vec3 {
	triple := t.Indices[i]
	return [3]mgl32.Vec3{
		t.Vertices[triple[0]],
		t.Vertices[triple[1]],
		t.Vertices[triple[2]],
	}
}

// AABB returns the axis-aligned bounding box of all vertices. For an
// empty mesh both extents are the zero vector.
func (t *TriMesh) AABB() (mgl32.Vec3, mgl32.Vec3) {
	if len(t.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	min := mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, v := range t.Vertices {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < min[axis] {
				min[axis] = v[axis]
			}
			if v[axis] > max[axis] {
				max[axis] = v[axis]
			}
		}
	}
	return min, max
}
