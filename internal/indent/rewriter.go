// internal/indent/rewriter.go
package indent

import "strings"

// Rewrite renders one output line, terminator included.
//
// Block-comment continuation lines come back untouched. Blank lines come
// back as a bare "\n". Everything else is trimmed and re-indented with
// level*tabWidth spaces; negative levels print at column zero.
func Rewrite(line string, class Class, level, tabWidth int) string {
	if class == InsideBlockComment {
		return line + "\n"
	}

	body := strings.TrimSpace(line)
	if body == "" {
		return "\n"
	}

	if level < 0 {
		level = 0
	}

	return strings.Repeat(" ", level*tabWidth) + body + "\n"
}
