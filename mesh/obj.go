package mesh

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/MOZGIII/go-trimesh/core"
)

// LoadOBJ reads a Wavefront OBJ file and builds a mesh with a position
// attribute and a 32-bit index buffer. Faces with more than three
// vertices are fan-triangulated.
func LoadOBJ(path string) (*Mesh, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return nil, fmt.Errorf("decode obj %q: %w", path, err)
	}
	for _, w := range dec.Warnings {
		core.LogWarn("obj %s: %s", path, w)
	}

	positions := make(Float32x3, 0, len(dec.Vertices)/3)
	for i := 0; i+2 < len(dec.Vertices); i += 3 {
		positions = append(positions, mgl32.Vec3{
			dec.Vertices[i],
			dec.Vertices[i+1],
			dec.Vertices[i+2],
		})
	}

	var indices IndicesU32
	for _, object := range dec.Objects {
		for _, face := range object.Faces {
			for k := 2; k < len(face.Vertices); k++ {
				indices = append(indices,
					uint32(face.Vertices[0]),
					uint32(face.Vertices[k-1]),
					uint32(face.Vertices[k]),
				)
			}
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m := New(name)
	m.SetAttribute(AttributePosition, positions)
	m.SetIndices(indices)
	return m, nil
}
