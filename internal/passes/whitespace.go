// internal/passes/whitespace.go
package passes

import (
	"errors"
	"strings"
	"unicode"
)

// Whitespace normalizes line endings, leading and trailing whitespace,
// and blank lines at both ends of the file.
type Whitespace struct {
	tabWidth int
}

func NewWhitespace(tabWidth int) (Whitespace, error) {
	if tabWidth <= 0 {
		return Whitespace{}, errors.New("tab width must be > 0")
	}
	return Whitespace{tabWidth: tabWidth}, nil
}

func (Whitespace) Name() string { return NameWhitespace }

func (w Whitespace) Apply(f File) (string, error) {
	if f.Content == "" {
		return "", nil
	}

	lines := strings.Split(f.Content, "\n")
	for i, l := range lines {
		l = strings.TrimRightFunc(l, unicode.IsSpace)
		lines[i] = w.expandHead(l)
	}

	first := 0
	for first < len(lines) && lines[first] == "" {
		first++
	}
	last := len(lines)
	for last > first && lines[last-1] == "" {
		last--
	}
	lines = lines[first:last]

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// expandHead rewrites the leading run of whitespace: a tab becomes
// tabWidth spaces, any other whitespace rune a single space.
func (w Whitespace) expandHead(l string) string {
	body := strings.TrimLeftFunc(l, unicode.IsSpace)
	head := l[:len(l)-len(body)]
	if strings.Trim(head, " ") == "" {
		return l
	}

	var b strings.Builder
	for _, r := range head {
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", w.tabWidth))
			continue
		}
		b.WriteByte(' ')
	}
	b.WriteString(body)
	return b.String()
}
