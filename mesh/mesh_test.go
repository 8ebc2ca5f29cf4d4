package mesh_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/MOZGIII/go-trimesh/mesh"
)

func TestAttributeLookup(t *testing.T) {
	m := mesh.New("test")

	if _, ok := m.Attribute(mesh.AttributePosition); ok {
		t.Fatal("empty mesh reported a position attribute")
	}

	positions := mesh.Float32x3{{1, 2, 3}}
	m.SetAttribute(mesh.AttributePosition, positions)

	values, ok := m.Attribute(mesh.AttributePosition)
	if !ok {
		t.Fatal("position attribute not found after SetAttribute")
	}
	got, ok := values.(mesh.Float32x3)
	if !ok {
		t.Fatalf("attribute came back as %T", values)
	}
	if !slices.Equal(got, positions) {
		t.Fatalf("got %v, want %v", got, positions)
	}
}

func TestIndicesLookup(t *testing.T) {
	m := mesh.New("test")

	if _, ok := m.Indices(); ok {
		t.Fatal("empty mesh reported an index buffer")
	}

	m.SetIndices(mesh.IndicesU32{0, 1, 2})
	indices, ok := m.Indices()
	if !ok {
		t.Fatal("index buffer not found after SetIndices")
	}
	if indices.Len() != 3 {
		t.Fatalf("got %d indices, want 3", indices.Len())
	}
}

func TestGenerationBumpsOnMutation(t *testing.T) {
	m := mesh.New("test")
	if m.Generation != 0 {
		t.Fatalf("fresh mesh has generation %d", m.Generation)
	}
	m.SetAttribute(mesh.AttributePosition, mesh.Float32x3{})
	m.SetIndices(mesh.IndicesU32{})
	if m.Generation != 2 {
		t.Fatalf("got generation %d, want 2", m.Generation)
	}
}

func TestLoadOBJ(t *testing.T) {
	m, err := mesh.LoadOBJ(filepath.Join("testdata", "quad.obj"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "quad" {
		t.Fatalf("got name %q, want %q", m.Name, "quad")
	}

	values, ok := m.Attribute(mesh.AttributePosition)
	if !ok {
		t.Fatal("loaded mesh has no position attribute")
	}
	positions, ok := values.(mesh.Float32x3)
	if !ok {
		t.Fatalf("positions came back as %T", values)
	}
	wantPositions := mesh.Float32x3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	if !slices.Equal([]mgl32.Vec3(positions), []mgl32.Vec3(wantPositions)) {
		t.Fatalf("got positions %v, want %v", positions, wantPositions)
	}

	indices, ok := m.Indices()
	if !ok {
		t.Fatal("loaded mesh has no index buffer")
	}
	flat, ok := indices.(mesh.IndicesU32)
	if !ok {
		t.Fatalf("indices came back as %T", indices)
	}
	// The quad face fan-triangulates into two triangles.
	wantIndices := mesh.IndicesU32{0, 1, 2, 0, 2, 3}
	if !slices.Equal([]uint32(flat), []uint32(wantIndices)) {
		t.Fatalf("got indices %v, want %v", flat, wantIndices)
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := mesh.LoadOBJ(filepath.Join("testdata", "nope.obj")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
