package mesh

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest vertex range handed to one worker.
const minChunk = 4096

// Transform applies the affine transform xf to every vertex.
func (m *TriMesh) Transform(xf mgl32.Mat4) {
	transformRange(m.Vertices, xf)
}

// TransformParallel applies xf like Transform, splitting the vertices across
// at most workers goroutines. Vertices are independent so order does not
// matter. workers <= 0 runs sequentially.
func (m *TriMesh) TransformParallel(ctx context.Context, xf mgl32.Mat4, workers int) error {
	n := len(m.Vertices)
	if workers <= 1 || n <= minChunk {
		m.Transform(xf)
		return nil
	}

	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		part := m.Vertices[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			transformRange(part, xf)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "transforming vertices")
	}
	return nil
}

// Rotate rotates every vertex by q around the origin.
func (m *TriMesh) Rotate(q mgl32.Quat) {
	q = q.Normalize()
	for i, v := range m.Vertices {
		m.Vertices[i] = q.Rotate(v)
	}
}

func transformRange(vs []mgl32.Vec3, xf mgl32.Mat4) {
	for i, v := range vs {
		vs[i] = mgl32.TransformCoordinate(v, xf)
	}
}
