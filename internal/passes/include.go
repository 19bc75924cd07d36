// internal/passes/include.go
package passes

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var reQuotedInclude = regexp.MustCompile(`^\s*#\s*include\s+"([^"]+)"\s*$`)

// IncludePaths turns `#include "x.h"` into `#include <dir/x.h>` whenever
// the quoted file resolves to a file under the include root.
type IncludePaths struct {
	root   string
	exists func(path string) bool
}

func NewIncludePaths(src string) (IncludePaths, error) {
	if src == "" {
		return IncludePaths{}, errors.New("include root required")
	}
	root, err := filepath.Abs(src)
	if err != nil {
		return IncludePaths{}, err
	}
	return IncludePaths{root: root, exists: isRegularFile}, nil
}

func (IncludePaths) Name() string { return NameIncludePaths }

func (p IncludePaths) Apply(f File) (string, error) {
	dir, err := filepath.Abs(filepath.Dir(f.Path))
	if err != nil {
		return "", err
	}

	lines := strings.Split(f.Content, "\n")
	for i, l := range lines {
		m := reQuotedInclude.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		if rel, ok := p.resolve(dir, m[1]); ok {
			lines[i] = "#include <" + rel + ">"
		}
	}
	return strings.Join(lines, "\n"), nil
}

// resolve finds target relative to dir and returns its slash path below the
// include root. A lowercase spelling is accepted when only that one exists.
func (p IncludePaths) resolve(dir, target string) (string, bool) {
	rel, err := filepath.Rel(p.root, filepath.Join(dir, target))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	if p.exists(filepath.Join(p.root, rel)) {
		return filepath.ToSlash(rel), true
	}
	lower := strings.ToLower(rel)
	if lower != rel && p.exists(filepath.Join(p.root, lower)) {
		return filepath.ToSlash(lower), true
	}
	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
