package formats

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-strip/pkg/mesh"
	"github.com/Faultbox/midgard-strip/pkg/tstrip"
)

// MeshDoc is a small YAML mesh description used for fixtures and the CLI.
type MeshDoc struct {
	Vertices [][3]float32 `yaml:"vertices,flow"`
	Faces    [][3]int     `yaml:"faces,flow"`
	Strips   []int        `yaml:"strips,flow,omitempty"`
}

// LoadMeshDoc reads a MeshDoc from a YAML file.
func LoadMeshDoc(path string) (*MeshDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading mesh document")
	}
	return ParseMeshDoc(data)
}

// ParseMeshDoc parses YAML mesh data and checks face indices against the
// vertex list when vertices are present.
func ParseMeshDoc(data []byte) (*MeshDoc, error) {
	doc := &MeshDoc{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "parsing mesh document")
	}
	if len(doc.Vertices) > 0 {
		for i, f := range doc.Faces {
			for _, v := range f {
				if v < 0 || v >= len(doc.Vertices) {
					return nil, errors.Errorf("face %d references vertex %d of %d", i, v, len(doc.Vertices))
				}
			}
		}
	}
	return doc, nil
}

// Save writes the document as YAML.
func (d *MeshDoc) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToMesh builds a TriMesh from the document.
func (d *MeshDoc) ToMesh(opts ...mesh.Option) *mesh.TriMesh {
	m := mesh.New(opts...)
	m.Vertices = make([]mgl32.Vec3, len(d.Vertices))
	for i, v := range d.Vertices {
		m.Vertices[i] = mgl32.Vec3(v)
	}
	if len(d.Faces) > 0 {
		m.Faces = make([]tstrip.Face, len(d.Faces))
		for i, f := range d.Faces {
			m.Faces[i] = tstrip.Face(f)
		}
	}
	m.Tstrips = append([]int(nil), d.Strips...)
	return m
}

// MeshDocFrom captures a TriMesh as a document.
func MeshDocFrom(m *mesh.TriMesh) *MeshDoc {
	d := &MeshDoc{
		Vertices: make([][3]float32, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
		Strips:   append([]int(nil), m.Tstrips...),
	}
	for i, v := range m.Vertices {
		d.Vertices[i] = [3]float32(v)
	}
	for i, f := range m.Faces {
		d.Faces[i] = [3]int(f)
	}
	return d
}
