// internal/passes/registry.go
package passes

import (
	"errors"
	"fmt"
	"slices"
)

// Options carries everything a pass may need from configuration.
type Options struct {
	TabWidth int

	// Src is the include root: absolute for include rewriting,
	// and stripped from paths when deriving header guard names.
	Src string

	HeaderExtensions []string
	OpenCLExtensions []string

	Legal LegalOptions
}

type factory func(Options) (Pass, error)

var registry = map[string]factory{
	NameEncoding: func(Options) (Pass, error) {
		return Encoding{}, nil
	},
	NameLegal: func(o Options) (Pass, error) {
		return NewLegal(o.Legal)
	},
	NameWhitespace: func(o Options) (Pass, error) {
		return NewWhitespace(o.TabWidth)
	},
	NameIncludePaths: func(o Options) (Pass, error) {
		return NewIncludePaths(o.Src)
	},
	NameHeaderGuard: func(o Options) (Pass, error) {
		return NewHeaderGuard(o.Src, o.HeaderExtensions), nil
	},
	NameOpenCL: func(o Options) (Pass, error) {
		return NewOpenCL(o.OpenCLExtensions), nil
	},
	NameIndent: func(o Options) (Pass, error) {
		return NewIndent(o.TabWidth)
	},
}

// Build instantiates the named passes in canonical order.
// Duplicates collapse to one pass; unknown names are an error.
func Build(names []string, opts Options) ([]Pass, error) {
	if len(names) == 0 {
		return nil, errors.New("passes: at least one pass required")
	}

	ordered := slices.Clone(names)
	for _, n := range ordered {
		if !Known(n) {
			return nil, fmt.Errorf("passes: unknown pass %q", n)
		}
	}
	slices.SortFunc(ordered, func(a, b string) int {
		return Rank(a) - Rank(b)
	})
	ordered = slices.Compact(ordered)

	out := make([]Pass, 0, len(ordered))
	for _, n := range ordered {
		p, err := registry[n](opts)
		if err != nil {
			return nil, fmt.Errorf("passes: %s: %w", n, err)
		}
		out = append(out, p)
	}

	return out, nil
}
