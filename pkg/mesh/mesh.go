// Package mesh holds an indexed triangle mesh together with the data derived
// from it: face adjacency and triangle strips.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-strip/pkg/tstrip"
)

// TriMesh is an indexed triangle mesh.
type TriMesh struct {
	Vertices []mgl32.Vec3
	Faces    []tstrip.Face

	// AcrossEdge is built on demand by NeedAcrossEdge.
	AcrossEdge tstrip.Adjacency

	// Tstrips is built on demand by NeedTstrips, in either encoding.
	Tstrips []int

	log *zap.Logger
}

// Option configures a TriMesh.
type Option func(*TriMesh)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(m *TriMesh) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns an empty mesh.
func New(opts ...Option) *TriMesh {
	m := &TriMesh{log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *TriMesh) logger() *zap.Logger {
	if m.log == nil {
		return zap.NewNop()
	}
	return m.log
}

// NeedTstrips makes sure Tstrips is populated and encoded as rep. Strips are
// built from Faces, computing adjacency first if needed. A mesh without faces
// is left alone.
func (m *TriMesh) NeedTstrips(rep tstrip.Rep) error {
	if len(m.Tstrips) > 0 {
		return m.ConvertStrips(rep)
	}
	if len(m.Faces) == 0 {
		return nil
	}

	m.NeedAcrossEdge()

	m.logger().Debug("building triangle strips", zap.Int("faces", len(m.Faces)))
	strips, stats, err := tstrip.Build(m.Faces, m.AcrossEdge)
	if err != nil {
		return errors.Wrap(err, "building strips")
	}
	m.Tstrips = strips

	if err := m.ConvertStrips(rep); err != nil {
		return err
	}

	m.logger().Debug("built triangle strips",
		zap.Int("strips", stats.Strips),
		zap.Float64("avg_length", stats.AvgLength()),
		zap.Stringer("rep", rep))
	return nil
}

// UnpackTstrips regenerates Faces from Tstrips. It does nothing when there
// are no strips or when Faces is already populated. Tstrips is left in
// Length encoding.
func (m *TriMesh) UnpackTstrips() error {
	if len(m.Tstrips) == 0 || len(m.Faces) > 0 {
		return nil
	}

	m.logger().Debug("unpacking triangle strips", zap.Int("elements", len(m.Tstrips)))
	faces, err := tstrip.Unpack(m.Tstrips)
	if err != nil {
		return errors.Wrap(err, "unpacking strips")
	}
	m.Faces = faces
	m.logger().Debug("unpacked triangle strips", zap.Int("faces", len(faces)))
	return nil
}

// ConvertStrips re-encodes Tstrips in place.
func (m *TriMesh) ConvertStrips(rep tstrip.Rep) error {
	if err := tstrip.Convert(m.Tstrips, rep); err != nil {
		return errors.Wrapf(err, "converting strips to %s", rep)
	}
	return nil
}

// ClearTstrips drops the strip representation.
func (m *TriMesh) ClearTstrips() {
	m.Tstrips = nil
}

// ClearAcrossEdge drops the adjacency table.
func (m *TriMesh) ClearAcrossEdge() {
	m.AcrossEdge = nil
}

// SoupFaces treats Vertices as an unindexed triangle soup, every three
// consecutive vertices forming one face, and rebuilds Faces to match.
// Derived adjacency and strips are dropped.
func (m *TriMesh) SoupFaces() {
	n := len(m.Vertices) / 3
	m.Faces = make([]tstrip.Face, n)
	for i := range m.Faces {
		m.Faces[i] = tstrip.Face{3 * i, 3*i + 1, 3*i + 2}
	}
	m.ClearAcrossEdge()
	m.ClearTstrips()
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *TriMesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}
