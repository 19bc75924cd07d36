// internal/passes/pass.go
package passes

// File is the unit every pass works on: the path it was read from and
// the complete, newline-delimited buffer produced by the previous pass.
type File struct {
	Path    string
	Content string
}

// Pass is one text-in, text-out normalization step.
// Apply must be idempotent: applying it to its own output changes nothing.
// Passes share no state with each other or across files.
type Pass interface {
	Name() string
	Apply(f File) (string, error)
}

// ---- PASS NAMES (canonical order) ----

const (
	NameEncoding     = "encoding"
	NameLegal        = "legal"
	NameWhitespace   = "whitespace"
	NameIncludePaths = "include-paths"
	NameHeaderGuard  = "header-guard"
	NameOpenCL       = "opencl"
	NameIndent       = "indent"
)

// Order is the sequence passes always run in, whatever order they are configured in.
// Byte-level repair comes first, indentation last. The notice is placed
// before whitespace so its output is already clean on the next run.
var Order = []string{
	NameEncoding,
	NameLegal,
	NameWhitespace,
	NameIncludePaths,
	NameHeaderGuard,
	NameOpenCL,
	NameIndent,
}

// Defaults are the passes run when none are configured.
// The license notice rewrites file heads and has to be asked for.
var Defaults = []string{
	NameEncoding,
	NameWhitespace,
	NameIncludePaths,
	NameHeaderGuard,
	NameOpenCL,
	NameIndent,
}

// Rank is the position of name in Order, or -1 for an unknown pass.
func Rank(name string) int {
	for i, n := range Order {
		if n == name {
			return i
		}
	}
	return -1
}

// Known reports whether name is a registered pass.
func Known(name string) bool {
	return Rank(name) >= 0
}
