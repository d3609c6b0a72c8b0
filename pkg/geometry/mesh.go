package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/court-model/pkg/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

var (
	// ErrDegenerateSegment is returned for a segment whose endpoints coincide
	ErrDegenerateSegment = errors.New("degenerate segment: endpoints coincide")
	// ErrVerticalSegment is returned for a segment parallel to the up axis,
	// where the width direction is undefined
	ErrVerticalSegment = errors.New("segment is parallel to the up axis")
	// ErrInvalidDimension is returned for a non-positive or non-finite size
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidFace is returned when a face references a missing vertex
	ErrInvalidFace = errors.New("invalid face")
)

// Mesh is a triangle mesh: a vertex list and faces indexing into it.
// A mesh returned by this package is never modified in place.
type Mesh struct {
	Vertices []core.Vec3
	Faces    [][3]int
}

// NewMesh validates vertices and faces and returns a mesh owning copies of both
func NewMesh(vertices []core.Vec3, faces [][3]int) (*Mesh, error) {
	for i, v := range vertices {
		if !v.IsFinite() {
			return nil, fmt.Errorf("%w: vertex %d is %v", ErrInvalidDimension, i, v)
		}
	}
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidFace, i, idx, len(vertices))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return nil, fmt.Errorf("%w: face %d repeats a vertex %v", ErrInvalidFace, i, f)
		}
	}

	m := &Mesh{
		Vertices: make([]core.Vec3, len(vertices)),
		Faces:    make([][3]int, len(faces)),
	}
	copy(m.Vertices, vertices)
	copy(m.Faces, faces)
	return m, nil
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangular faces
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Translate returns a copy of the mesh moved by offset
func (m *Mesh) Translate(offset core.Vec3) *Mesh {
	moved := &Mesh{
		Vertices: make([]core.Vec3, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
	}
	for i, v := range m.Vertices {
		moved.Vertices[i] = v.Add(offset)
	}
	copy(moved.Faces, m.Faces)
	return moved
}

// BoundingBox returns the axis-aligned bounding box of all vertices
func (m *Mesh) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(m.Vertices...)
}

// Volume returns the signed volume enclosed by the mesh, computed as a sum
// of tetrahedra against the origin. It is positive for a closed mesh whose
// faces wind counter-clockwise seen from outside.
func (m *Mesh) Volume() float64 {
	var volume float64
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		volume += a.Dot(b.Cross(c))
	}
	return volume / 6
}

// IsClosed reports whether the mesh is a closed, consistently oriented
// surface: every directed edge occurs exactly once and its reverse occurs
// exactly once.
func (m *Mesh) IsClosed() bool {
	if len(m.Faces) == 0 {
		return false
	}
	type edge struct{ from, to int }
	edges := make(map[edge]int, len(m.Faces)*3)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			edges[edge{f[i], f[(i+1)%3]}]++
		}
	}
	for e, n := range edges {
		if n != 1 || edges[edge{e.to, e.from}] != 1 {
			return false
		}
	}
	return true
}
