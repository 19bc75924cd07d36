// internal/writer/types.go
package writer

import (
	"github.com/tamzrod/cppnorm/internal/normalizer"
	"github.com/tamzrod/cppnorm/internal/status"
)

// Writer reports the outcome of one file.
type Writer interface {
	Write(res normalizer.Result) error
}

// StatusWriter reports the run summary.
// It receives a snapshot and prints it verbatim.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}
