// Package export writes scenes as binary glTF (.glb) files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/court-model/pkg/scene"
	"github.com/npillmayer/schuko/tracing"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// tracer writes to trace with key 'export'
func tracer() tracing.Trace {
	return tracing.Select("export")
}

// ErrEmptyScene is returned when there is nothing to export
var ErrEmptyScene = errors.New("export: scene has no nodes")

// Document converts a scene into a glTF document. Every scene node becomes
// one mesh and one root node of the default scene, in scene order.
func Document(s *scene.Scene) (*gltf.Document, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptyScene
	}

	doc := gltf.NewDocument()
	for _, node := range s.Nodes {
		positions := make([][3]float32, len(node.Mesh.Vertices))
		for i, v := range node.Mesh.Vertices {
			positions[i] = v.Float32()
		}
		indices := make([]uint32, 0, 3*len(node.Mesh.Faces))
		for _, f := range node.Mesh.Faces {
			indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
		}

		positionAccessor := modeler.WritePosition(doc, positions)
		indicesAccessor := modeler.WriteIndices(doc, indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: node.Name,
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(indicesAccessor),
				Attributes: gltf.Attribute{gltf.POSITION: positionAccessor},
				Mode:       gltf.PrimitiveTriangles,
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: node.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc, nil
}

// Encode writes s to w as a binary glTF file. Identical scenes encode to
// identical bytes.
func Encode(w io.Writer, s *scene.Scene) error {
	doc, err := Document(s)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode glb: %w", err)
	}
	return nil
}

// WriteFile encodes s into the file at path. The file is always closed,
// and removed again when writing fails, so a failed export leaves nothing
// behind.
func WriteFile(path string, s *scene.Scene) (err error) {
	if s == nil || s.Len() == 0 {
		return ErrEmptyScene
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := Encode(file, s); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tracer().Infof("wrote %d nodes to %s", s.Len(), path)
	return nil
}
