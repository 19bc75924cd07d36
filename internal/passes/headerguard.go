// internal/passes/headerguard.go
package passes

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

var (
	reGuard    = regexp.MustCompile(`#ifndef\s+([A-Za-z_][A-Za-z0-9_]*)\s*\n\s*#define\s+([A-Za-z_][A-Za-z0-9_]*)\s*\n`)
	reNonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// HeaderGuard makes every header carry an #ifndef/#define guard named
// after its path. Existing guards with a stale name are renamed in place.
type HeaderGuard struct {
	prefix     string
	extensions []string
}

func NewHeaderGuard(src string, extensions []string) HeaderGuard {
	prefix := ""
	if src != "" {
		prefix = filepath.ToSlash(filepath.Clean(src)) + "/"
	}
	return HeaderGuard{prefix: prefix, extensions: extensions}
}

func (HeaderGuard) Name() string { return NameHeaderGuard }

func (g HeaderGuard) Apply(f File) (string, error) {
	// config.h.in is generated into config.h and guarded as such
	ext := filepath.Ext(strings.TrimSuffix(f.Path, ".in"))
	if !slices.Contains(g.extensions, ext) {
		return f.Content, nil
	}

	name := g.GuardName(f.Path)

	if m := reGuard.FindStringSubmatchIndex(f.Content); m != nil {
		ifndef, define := f.Content[m[2]:m[3]], f.Content[m[4]:m[5]]
		if ifndef != define || ifndef == name {
			return f.Content, nil
		}
		c := f.Content
		return c[:m[2]] + name + c[m[3]:m[4]] + name + c[m[5]:], nil
	}

	trailer := "\n#endif // vim:filetype=" + fileType(ext) + "\n"
	return "#ifndef " + name + "\n#define " + name + "\n\n" + f.Content + trailer, nil
}

// GuardName derives the guard macro from a header path:
// "src/util/str.h" becomes "UTIL_STR_H".
func (g HeaderGuard) GuardName(path string) string {
	name := filepath.ToSlash(filepath.Clean(path))
	if g.prefix != "" {
		name = strings.TrimPrefix(name, g.prefix)
	}
	name = strings.TrimPrefix(name, "../")
	name = strings.TrimPrefix(name, "./")
	name = strings.TrimSuffix(name, ".in")

	name = strings.ToUpper(reNonIdent.ReplaceAllString(name, "_"))
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "_" + name
	}
	return name
}

func fileType(ext string) string {
	if ext == ".h" {
		return "c"
	}
	return "cpp"
}
