package mesh

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-strip/pkg/tstrip"
)

// directedEdge runs from a to b in a face's winding order.
type directedEdge struct {
	a, b int
}

// NeedAcrossEdge computes AcrossEdge unless it is already built for the
// current faces.
//
// Edge j of a face runs from vertex next(j) to vertex prev(j). Two faces are
// linked across an edge only when the other face walks it the opposite way,
// so badly oriented neighbors count as boundaries. A directed edge belongs to
// the first face that walks it; later faces walking the same edge get no
// neighbor across it. Links are therefore always mutual.
func (m *TriMesh) NeedAcrossEdge() {
	if len(m.AcrossEdge) == len(m.Faces) && len(m.Faces) > 0 {
		return
	}

	nf := len(m.Faces)
	owner := make(map[directedEdge]int, nf*3)
	for f, v := range m.Faces {
		for j := 0; j < 3; j++ {
			e := directedEdge{v[(j+1)%3], v[(j+2)%3]}
			if _, dup := owner[e]; !dup {
				owner[e] = f
			}
		}
	}

	adj := make(tstrip.Adjacency, nf)
	boundary := 0
	for f, v := range m.Faces {
		for j := 0; j < 3; j++ {
			adj[f][j] = tstrip.NoFace
			if owner[directedEdge{v[(j+1)%3], v[(j+2)%3]}] != f {
				boundary++
				continue
			}
			other, ok := owner[directedEdge{v[(j+2)%3], v[(j+1)%3]}]
			if ok && other != f {
				adj[f][j] = other
			} else {
				boundary++
			}
		}
	}

	m.AcrossEdge = adj
	m.logger().Debug("computed face adjacency",
		zap.Int("faces", nf),
		zap.Int("boundary_edges", boundary))
}
