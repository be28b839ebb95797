package str

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type findAllOptions struct {
	parallelism int
}

// FindAllOption is a configuration option for FindAll.
type FindAllOption func(*findAllOptions)

// WithParallelism caps the number of patterns searched concurrently.
// Values below one fall back to GOMAXPROCS.
func WithParallelism(n int) FindAllOption {
	return func(o *findAllOptions) {
		o.parallelism = n
	}
}

// FindAll searches every pattern over a single immutable snapshot of
// the string, running the per-pattern KMP scans concurrently. The
// receiver itself is read once up front, so it may be mutated again
// as soon as FindAll returns.
//
// The result maps each pattern to its Find offsets. Duplicate
// patterns collapse to one entry.
func (s *String) FindAll(ctx context.Context, patterns []string, opts ...FindAllOption) (map[string][]int, error) {
	o := findAllOptions{
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}

	snapshot := s.Clone()
	results := make([][]int, len(patterns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for i, pattern := range patterns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = snapshot.Find(pattern)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]int, len(patterns))
	for i, pattern := range patterns {
		out[pattern] = results[i]
	}

	return out, nil
}
