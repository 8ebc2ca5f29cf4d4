// Package trimesh converts engine mesh geometry into triangle-mesh
// collision geometry.
//
// The conversion pipeline extracts the position attribute and the index
// buffer from a mesh, validates their layouts, and produces the vertex
// and triangle-index buffers a TriMesh is built from. For meshes used
// to spawn many colliders, CachedTriMeshBuilder keeps the extracted
// buffers around so repeated construction skips the extraction.
package trimesh
