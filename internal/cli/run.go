// internal/cli/run.go
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tamzrod/cppnorm/internal/logging"
	"github.com/tamzrod/cppnorm/internal/normalizer"
	"github.com/tamzrod/cppnorm/internal/source"
	"github.com/tamzrod/cppnorm/internal/status"
	"github.com/tamzrod/cppnorm/internal/writer"
)

func requirePaths(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return FlagErrorf("at least one file or directory is required")
	}
	return nil
}

// run normalizes every file named by args and records the exit code.
func (a *app) run(cmd *cobra.Command, args []string, only []string) error {
	c, err := a.opts.resolve(cmd, only)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logging.Setup(a.stderr, level)

	paths := source.Discover(args)
	slog.Debug("files discovered", "count", len(paths), "passes", c.Passes)

	n, err := normalizer.Build(*c)
	if err != nil {
		return err
	}

	results := n.Run(cmd.Context(), paths)

	w, sw := writer.Build(*c, a.stdout)
	snap := status.Snapshot{Check: c.Check}
	for _, res := range results {
		snap.Observe(res.Changed, res.Err != nil)
		if err := w.Write(res); err != nil {
			return err
		}
	}

	if snap.Changed > 0 || snap.Failed > 0 || a.opts.verbose {
		if err := sw.WriteStatus(snap); err != nil {
			return err
		}
	}

	a.exit = status.Encode(snap)
	return nil
}
