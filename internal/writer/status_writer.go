// internal/writer/status_writer.go
package writer

import (
	"fmt"
	"io"

	"github.com/tamzrod/cppnorm/internal/status"
)

type summaryWriter struct {
	out io.Writer
}

// NewStatusWriter returns a StatusWriter printing a one-line summary.
func NewStatusWriter(out io.Writer) StatusWriter {
	return &summaryWriter{out: out}
}

func (sw *summaryWriter) WriteStatus(s status.Snapshot) error {
	verb := "fixed"
	if s.Check {
		verb = "would be fixed"
	}

	changed := fmt.Sprintf("%d %s", s.Changed, verb)
	if s.Changed > 0 {
		changed = yellow(changed)
	}
	failed := fmt.Sprintf("%d failed", s.Failed)
	if s.Failed > 0 {
		failed = red(failed)
	}

	_, err := fmt.Fprintf(sw.out, "%s checked, %s, %s\n", plural(s.Total, "file"), changed, failed)
	return err
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
