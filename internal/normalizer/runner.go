// internal/normalizer/runner.go
package normalizer

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc/pool"
)

// Run normalizes paths on a bounded worker pool.
// Results come back in input order. Files not yet started when ctx is
// cancelled carry the context error.
func (n *Normalizer) Run(ctx context.Context, paths []string) []Result {
	results := make([]Result, len(paths))

	p := pool.New().WithMaxGoroutines(n.cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		p.Go(func() {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Path: path, Err: err}
				return
			}
			results[i] = n.ProcessOnce(path)
			logResult(results[i])
		})
	}
	p.Wait()

	return results
}

func logResult(res Result) {
	switch {
	case res.Err != nil:
		slog.Error("file failed", "path", res.Path, "error", res.Err)
	case res.Changed:
		slog.Info("file normalized", "path", res.Path, "passes", res.Passes)
	default:
		slog.Debug("file unchanged", "path", res.Path)
	}
}
