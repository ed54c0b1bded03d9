package feature

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ayusman/mudra/internal/detector"
)

// ExtractBatch extracts features from every pose using up to workers
// goroutines. Results preserve the input order. The first shape
// violation or context cancellation stops the remaining work and is
// returned with the failing pose's position.
func (e *Extractor) ExtractBatch(ctx context.Context, poses [][]detector.Point3D, workers int) ([][]float64, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([][]float64, len(poses))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, pose := range poses {
		i, pose := i, pose
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			features, err := e.Extract(pose)
			if err != nil {
				return fmt.Errorf("pose %d: %w", i, err)
			}

			results[i] = features
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
