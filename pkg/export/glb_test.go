package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/court-model/pkg/core"
	"github.com/df07/court-model/pkg/court"
	"github.com/df07/court-model/pkg/geometry"
	"github.com/df07/court-model/pkg/scene"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCourt(t *testing.T) *scene.Scene {
	t.Helper()
	s, err := court.Build(court.DefaultDimensions())
	require.NoError(t, err)
	return s
}

func decode(t *testing.T, data []byte) *gltf.Document {
	t.Helper()
	var doc gltf.Document
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(data)).Decode(&doc))
	return &doc
}

func TestEncode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s := buildCourt(t)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))
	require.Greater(t, buf.Len(), 12)
	assert.Equal(t, []byte("glTF"), buf.Bytes()[:4], "binary glTF magic")

	doc := decode(t, buf.Bytes())
	require.Len(t, doc.Nodes, 26)
	require.Len(t, doc.Meshes, 26)
	require.Len(t, doc.Scenes, 1)
	assert.Len(t, doc.Scenes[0].Nodes, 26)

	for i, node := range s.Nodes {
		assert.Equal(t, node.Name, doc.Nodes[i].Name)
		assert.Equal(t, node.Name, doc.Meshes[i].Name)
		require.Len(t, doc.Meshes[i].Primitives, 1)

		prim := doc.Meshes[i].Primitives[0]
		require.NotNil(t, prim.Indices)
		assert.Equal(t, 3*node.Mesh.TriangleCount(), int(doc.Accessors[*prim.Indices].Count), node.Name)
		pos, ok := prim.Attributes[gltf.POSITION]
		require.True(t, ok, node.Name)
		assert.Equal(t, node.Mesh.VertexCount(), int(doc.Accessors[pos].Count), node.Name)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Encode(&first, buildCourt(t)))
	require.NoError(t, Encode(&second, buildCourt(t)))
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()), "repeated builds must encode identically")
}

func TestEncode_EmptyScene(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, scene.New()), ErrEmptyScene)
	assert.ErrorIs(t, Encode(&buf, nil), ErrEmptyScene)
	assert.Equal(t, 0, buf.Len())
}

func TestDocument_Positions(t *testing.T) {
	mesh, err := geometry.NewLineSegment(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0.5)
	require.NoError(t, err)
	s := scene.New()
	require.NoError(t, s.Add("strip", mesh))

	doc, err := Document(s)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)

	pos := doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]
	accessor := doc.Accessors[pos]
	assert.Equal(t, 8, int(accessor.Count))
	require.Len(t, accessor.Min, 3)
	require.Len(t, accessor.Max, 3)
	assert.InDelta(t, 0.0, accessor.Min[0], 1e-6)
	assert.InDelta(t, 2.0, accessor.Max[0], 1e-6)
	assert.InDelta(t, 0.5, accessor.Max[1], 1e-6)
	assert.InDelta(t, -0.25, accessor.Min[2], 1e-6)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "court.glb")
	s := buildCourt(t)
	require.NoError(t, WriteFile(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := decode(t, data)
	assert.Len(t, doc.Nodes, 26)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))
	assert.Equal(t, buf.Bytes(), data, "file matches the in-memory encoding")
}

func TestWriteFile_Errors(t *testing.T) {
	dir := t.TempDir()

	missingDir := filepath.Join(dir, "no", "such", "dir", "court.glb")
	err := WriteFile(missingDir, buildCourt(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	empty := filepath.Join(dir, "empty.glb")
	assert.ErrorIs(t, WriteFile(empty, scene.New()), ErrEmptyScene)
	_, statErr := os.Stat(empty)
	assert.True(t, os.IsNotExist(statErr), "no file for an empty scene")
}

func TestDocument_NodeIndices(t *testing.T) {
	s := buildCourt(t)
	doc, err := Document(s)
	require.NoError(t, err)

	require.Len(t, doc.Scenes[0].Nodes, s.Len())
	for i, nodeIndex := range doc.Scenes[0].Nodes {
		assert.Equal(t, i, int(nodeIndex), "root nodes keep scene order")
		node := doc.Nodes[nodeIndex]
		require.NotNil(t, node.Mesh)
		assert.Equal(t, i, int(*node.Mesh))
		assert.Equal(t, s.Nodes[i].Name, doc.Meshes[*node.Mesh].Name)
	}
}
