// internal/config/normalize.go
package config

import (
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/tamzrod/cppnorm/internal/passes"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Passes always run in canonical order, each at most once.
	slices.SortFunc(cfg.Passes, func(a, b string) int {
		return passes.Rank(a) - passes.Rank(b)
	})
	cfg.Passes = slices.Compact(cfg.Passes)

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	cfg.Src = filepath.Clean(cfg.Src)

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
