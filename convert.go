package trimesh

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"

	"github.com/MOZGIII/go-trimesh/mesh"
)

// ConvertVertices turns a vertex attribute buffer into a sequence of
// points. Only the three-float layout is supported. The sequence is
// lazy and reads from the underlying buffer, so the buffer must not be
// mutated while the sequence is in use.
func ConvertVertices(values mesh.VertexAttributeValues) (iter.Seq[mgl32.Vec3], error) {
	positions, ok := values.(mesh.Float32x3)
	if !ok {
		return nil, &UnsupportedFormatError{Format: "only [f32; 3] is supported"}
	}
	return func(yield func(mgl32.Vec3) bool) {
		for _, position := range positions {
			if !yield(position) {
				return
			}
		}
	}, nil
}

// ConvertIndices turns an index buffer into a sequence of triangle
// index triples. Only the 32-bit layout is supported. The sequence is
// lazy and reads from the underlying buffer; a trailing group of fewer
// than three indices is dropped.
func ConvertIndices(indices mesh.Indices) (iter.Seq[[3]uint32], error) {
	flat, ok := indices.(mesh.IndicesU32)
	if !ok {
		return nil, &UnsupportedFormatError{Format: "only u32 is supported"}
	}
	return triples([]uint32(flat)), nil
}

// triples yields consecutive non-overlapping groups of three, dropping
// a trailing partial group.
func triples[T constraints.Unsigned](s []T) iter.Seq[[3]T] {
	return func(yield func([3]T) bool) {
		for i := 0; i+2 < len(s); i += 3 {
			if !yield([3]T{s[i], s[i+1], s[i+2]}) {
				return
			}
		}
	}
}
