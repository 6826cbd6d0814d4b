package formats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-strip/pkg/tstrip"
)

const quadYAML = `
vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [0, 1, 0]
  - [1, 1, 0]
faces:
  - [0, 1, 2]
  - [1, 3, 2]
`

func TestParseMeshDoc(t *testing.T) {
	doc, err := ParseMeshDoc([]byte(quadYAML))
	require.NoError(t, err)
	assert.Len(t, doc.Vertices, 4)
	assert.Equal(t, [][3]int{{0, 1, 2}, {1, 3, 2}}, doc.Faces)
	assert.Empty(t, doc.Strips)

	m := doc.ToMesh()
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, m.Vertices[3])
	assert.Equal(t, []tstrip.Face{{0, 1, 2}, {1, 3, 2}}, m.Faces)
}

func TestParseMeshDoc_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad syntax", "faces: [[0, 1, 2]\n  oops"},
		{"short face", "faces:\n  - [0, 1]\n"},
		{"vertex out of range", "vertices:\n  - [0, 0, 0]\nfaces:\n  - [0, 1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMeshDoc([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestMeshDoc_SaveLoadWithStrips(t *testing.T) {
	doc, err := ParseMeshDoc([]byte(quadYAML))
	require.NoError(t, err)

	m := doc.ToMesh()
	require.NoError(t, m.NeedTstrips(tstrip.Term))

	path := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, MeshDocFrom(m).Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "strips:")

	loaded, err := LoadMeshDoc(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Faces, loaded.Faces)
	assert.Equal(t, []int{3, 2, 1, 0, -1}, loaded.Strips)

	// Strips alone are enough to regenerate the faces.
	back := (&MeshDoc{Strips: loaded.Strips}).ToMesh()
	require.NoError(t, back.UnpackTstrips())
	assert.Equal(t, []tstrip.Face{{3, 2, 1}, {1, 2, 0}}, back.Faces)
}
