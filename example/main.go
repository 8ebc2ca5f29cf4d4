// Spawns several colliders from one cached mesh, each at its own
// world position.
package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	trimesh "github.com/MOZGIII/go-trimesh"
	"github.com/MOZGIII/go-trimesh/mesh"
)

func main() {
	m := mesh.New("quad")
	m.SetAttribute(mesh.AttributePosition, mesh.Float32x3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	})
	m.SetIndices(mesh.IndicesU32{0, 1, 2, 0, 2, 3})

	builder, err := trimesh.NewCachedTriMeshBuilder(m)
	if err != nil {
		panic(err)
	}

	offsets := []mgl32.Vec3{
		{0, 0, 0},
		{2, 0, 0},
		{4, 0, 0},
	}
	for _, offset := range offsets {
		collider := builder.BuildWithVertexTransform(func(v mgl32.Vec3) mgl32.Vec3 {
			return v.Add(offset)
		})
		min, max := collider.AABB()
		fmt.Printf("collider at %v: %d triangles, aabb %v..%v\n",
			offset, collider.NumTriangles(), min, max)
	}
}
