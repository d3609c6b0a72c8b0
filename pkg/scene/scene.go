package scene

import (
	"errors"
	"fmt"

	"github.com/df07/court-model/pkg/core"
	"github.com/df07/court-model/pkg/geometry"
)

// Node is one named solid in the scene
type Node struct {
	Name string
	Mesh *geometry.Mesh
}

// Scene is an append-only collection of solids bundled for export.
// Node order is insertion order and is preserved by exporters.
type Scene struct {
	Nodes []Node
}

// New returns an empty scene
func New() *Scene {
	return &Scene{Nodes: make([]Node, 0)}
}

// Add appends a named mesh to the scene
func (s *Scene) Add(name string, mesh *geometry.Mesh) error {
	if mesh == nil {
		return errors.New("scene: nil mesh")
	}
	if name == "" {
		return fmt.Errorf("scene: node %d has no name", len(s.Nodes))
	}
	s.Nodes = append(s.Nodes, Node{Name: name, Mesh: mesh})
	return nil
}

// Len returns the number of nodes
func (s *Scene) Len() int {
	return len(s.Nodes)
}

// GetTriangleCount returns the total number of triangles in the scene
func (s *Scene) GetTriangleCount() int {
	count := 0
	for _, node := range s.Nodes {
		count += node.Mesh.TriangleCount()
	}
	return count
}

// GetVertexCount returns the total number of vertices in the scene
func (s *Scene) GetVertexCount() int {
	count := 0
	for _, node := range s.Nodes {
		count += node.Mesh.VertexCount()
	}
	return count
}

// BoundingBox returns the bounds of every node together.
// An empty scene has a zero box.
func (s *Scene) BoundingBox() core.AABB {
	if len(s.Nodes) == 0 {
		return core.AABB{}
	}
	bbox := s.Nodes[0].Mesh.BoundingBox()
	for _, node := range s.Nodes[1:] {
		bbox = bbox.Union(node.Mesh.BoundingBox())
	}
	return bbox
}

// Find returns the first node with the given name
func (s *Scene) Find(name string) (Node, bool) {
	for _, node := range s.Nodes {
		if node.Name == name {
			return node, true
		}
	}
	return Node{}, false
}
