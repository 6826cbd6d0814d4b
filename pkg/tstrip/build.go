package tstrip

import "github.com/pkg/errors"

// Build greedily covers faces with triangle strips and returns them in Term
// encoding. adj must hold one entry per face.
//
// Faces with a single free neighbor are used as strip starts first, so later
// strips are not cut short by dead ends. Every face appears in exactly one
// strip, and each strip's winding matches what Unpack reconstructs.
func Build(faces []Face, adj Adjacency) ([]int, Stats, error) {
	if err := checkAdjacency(faces, adj); err != nil {
		return nil, Stats{}, err
	}

	nf := len(faces)
	avail, todo := newAvailability(adj)
	strips := make([]int, 0, nf*2)
	stats := Stats{Faces: nf}

	for i := 0; i < nf; {
		var f int
		if next, ok := todo.pop(); ok {
			f = next
		} else {
			f = i
			i++
		}
		if avail[f] == consumed {
			continue
		}
		strips = buildStrip(strips, faces, adj, f, avail, &todo)
		stats.Strips++
	}

	return strips, stats, nil
}

// buildStrip grows one strip starting at face f and appends it, followed by
// a Terminator, to strips.
func buildStrip(strips []int, faces []Face, adj Adjacency, f int, avail availability, todo *workQueue) []int {
	v := faces[f]
	if avail[f] == 0 {
		avail[f] = consumed
		return append(strips, v[0], v[1], v[2], Terminator)
	}

	best := bestEdge(faces, adj, f, avail)

	vlast2 := v[best]
	vlast1 := v[next3(best)]
	vnext := v[prev3(best)]
	dir := 1
	strips = append(strips, vlast2, vlast1)

	for {
		strips = append(strips, vnext)
		avail.consume(f, adj, todo)

		// Leave across the edge opposite vlast2, i.e. (vlast1, vnext).
		edge := faces[f].IndexOf(vlast2)
		if edge < 0 {
			break
		}
		f = adj[f][edge]
		if !avail.free(f) {
			break
		}

		vlast2, vlast1 = vlast1, vnext
		idx := faces[f].IndexOf(vlast2)
		if idx < 0 {
			break
		}
		vnext = faces[f][(idx+3+dir)%3]
		dir = -dir
	}

	return append(strips, Terminator)
}

// bestEdge scores each edge of f by how far a strip leaving through it could
// continue and returns the highest scoring one. Ties go to the lower index.
func bestEdge(faces []Face, adj Adjacency, f int, avail availability) int {
	v := faces[f]
	best, bestScore := 0, -1
	for i := 0; i < 3; i++ {
		score := 0
		ae := adj[f][i]
		if avail.free(ae) {
			score++
			// The strip would next leave ae across the edge opposite v[next(i)].
			if e := faces[ae].IndexOf(v[next3(i)]); e >= 0 && avail.free(adj[ae][e]) {
				score++
				if avail[ae] == 2 {
					score++
				}
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func checkAdjacency(faces []Face, adj Adjacency) error {
	if len(adj) != len(faces) {
		return errors.Wrapf(ErrAdjacencyMismatch, "%d faces, %d adjacency entries", len(faces), len(adj))
	}
	for f, edges := range adj {
		for i, ae := range edges {
			if ae < NoFace || ae >= len(faces) {
				return errors.Wrapf(ErrBadNeighbor, "face %d edge %d -> %d", f, i, ae)
			}
		}
	}
	return nil
}
