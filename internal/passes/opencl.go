// internal/passes/opencl.go
package passes

import (
	"path/filepath"
	"regexp"
	"slices"
)

var reOpenCLQualifier = regexp.MustCompile(`\b__(global|local|constant|private|generic|kernel|read_only|write_only|read_write)\b`)

// OpenCL drops the reserved double-underscore spelling of address space
// and access qualifiers in kernel sources.
type OpenCL struct {
	extensions []string
}

func NewOpenCL(extensions []string) OpenCL {
	return OpenCL{extensions: extensions}
}

func (OpenCL) Name() string { return NameOpenCL }

func (o OpenCL) Apply(f File) (string, error) {
	if !slices.Contains(o.extensions, filepath.Ext(f.Path)) {
		return f.Content, nil
	}
	return reOpenCLQualifier.ReplaceAllString(f.Content, "$1"), nil
}
