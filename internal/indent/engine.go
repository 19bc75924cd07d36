// internal/indent/engine.go
package indent

import (
	"errors"
	"strings"
)

// ErrTabWidth is returned for a non-positive tab width.
var ErrTabWidth = errors.New("indent: tab width must be > 0")

// Engine re-indents whole files.
// It holds configuration only; every Format call starts from a zero State.
type Engine struct {
	tabWidth int
}

// New creates an engine that indents by tabWidth spaces per level.
func New(tabWidth int) (*Engine, error) {
	if tabWidth <= 0 {
		return nil, ErrTabWidth
	}
	return &Engine{tabWidth: tabWidth}, nil
}

// TabWidth is the number of spaces per indent level.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// Format re-indents src as a single left-to-right fold over its lines.
// The result is newline-terminated (unless src is empty) and Format is
// idempotent: Format(Format(x)) == Format(x).
func (e *Engine) Format(src string) string {
	var (
		out   strings.Builder
		st    State
		level int
	)
	out.Grow(len(src) + len(src)/4)

	for _, line := range SplitLines(src) {
		var tr Trace
		st, tr = Scan(line, st)

		if tr.Class == InsideBlockComment {
			out.WriteString(Rewrite(line, tr.Class, level, e.tabWidth))
			if !tr.EndsInComment {
				level = tr.End
			}
			continue
		}

		var applied int
		applied, level = Level(tr, level)
		out.WriteString(Rewrite(line, tr.Class, applied, e.tabWidth))
	}

	return out.String()
}

// SplitLines splits src on "\n". A final terminator does not produce an
// extra empty line. Carriage returns stay part of their line.
func SplitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
