// internal/source/discover.go
package source

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	enry "github.com/go-enry/go-enry/v2"
)

// Languages are the linguist names whose files a directory walk keeps.
var Languages = []string{
	"C",
	"C++",
	"Cuda",
	"Objective-C",
	"Objective-C++",
	"OpenCL",
}

// Discover expands command line arguments into a sorted, de-duplicated
// list of files. Files are taken as given; directories are walked for
// C-family sources, skipping dot-files and vendored trees.
// Arguments that cannot be stat'ed are kept so the failure is reported
// per file.
func Discover(args []string) []string {
	seen := make(map[string]struct{})
	add := func(p string) {
		seen[filepath.Clean(p)] = struct{}{}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			add(arg)
			continue
		}
		walk(arg, add)
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

func walk(root string, add func(string)) {
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() && p != root {
				return fs.SkipDir
			}
			return nil
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if enry.IsDotFile(rel) || enry.IsVendor(rel+"/") {
				return fs.SkipDir
			}
			return nil
		}

		if enry.IsDotFile(rel) || enry.IsVendor(rel) {
			return nil
		}
		if d.Type().IsRegular() && IsCFamily(p) {
			add(p)
		}
		return nil
	})
}

// IsCFamily reports whether the extension of path belongs to one of Languages.
func IsCFamily(path string) bool {
	for _, lang := range enry.GetLanguagesByExtension(path, nil, nil) {
		if slices.Contains(Languages, lang) {
			return true
		}
	}
	return false
}
