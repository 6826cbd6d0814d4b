package tstrip

// consumed marks a face that has already been emitted into a strip.
const consumed int8 = -1

// availability holds, per face, the number of neighbors not yet consumed,
// or consumed once the face itself has been emitted.
type availability []int8

// free reports whether face f exists and has not been consumed.
func (a availability) free(f int) bool {
	return f != NoFace && a[f] != consumed
}

// workQueue is a LIFO of faces that had exactly one free neighbor when they
// were pushed. Entries may be stale or repeated; callers check at pop time.
type workQueue []int

func (q *workQueue) push(f int) {
	*q = append(*q, f)
}

func (q *workQueue) pop() (int, bool) {
	n := len(*q)
	if n == 0 {
		return 0, false
	}
	f := (*q)[n-1]
	*q = (*q)[:n-1]
	return f, true
}

// newAvailability counts each face's neighbors and queues the dead ends.
func newAvailability(adj Adjacency) (availability, workQueue) {
	avail := make(availability, len(adj))
	var todo workQueue
	for f, edges := range adj {
		var n int8
		for _, ae := range edges {
			if ae != NoFace {
				n++
			}
		}
		avail[f] = n
		if n == 1 {
			todo.push(f)
		}
	}
	return avail, todo
}

// consume marks f emitted and releases it from each live neighbor. A
// neighbor left with one free neighbor becomes a strip-start candidate.
func (a availability) consume(f int, adj Adjacency, todo *workQueue) {
	a[f] = consumed
	for _, ae := range adj[f] {
		if ae == NoFace || a[ae] == consumed {
			continue
		}
		if a[ae] > 0 {
			a[ae]--
			if a[ae] == 1 {
				todo.push(ae)
			}
		}
	}
}
