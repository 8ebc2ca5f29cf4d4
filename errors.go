package trimesh

import (
	"errors"
	"fmt"
)

// Geometry extraction errors.
var (
	// ErrNoVertexPositionData is returned when the mesh has no
	// position attribute.
	ErrNoVertexPositionData = errors.New("no vertex position data found in the specified mesh")
	// ErrNoVertexIndices is returned when the mesh has no index buffer.
	ErrNoVertexIndices = errors.New("no vertex indices found in the specified mesh")
)

// UnsupportedFormatError indicates a vertex or index buffer is present
// but in a layout this package does not handle.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// BuildStage identifies which stage of trimesh construction failed.
type BuildStage string

const (
	// StageExtraction is the geometry extraction stage.
	StageExtraction BuildStage = "extraction"
	// StageVertexFormat is the vertex buffer conversion stage.
	StageVertexFormat BuildStage = "vertices"
	// StageIndexFormat is the index buffer conversion stage.
	StageIndexFormat BuildStage = "indices"
)

// BuildError is returned when building a TriMesh from a mesh fails. It
// wraps the underlying error and records the stage that produced it.
type BuildError struct {
	Stage BuildStage
	Err   error
}

func (e *BuildError) Error() string {
	if e.Stage == StageExtraction {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
