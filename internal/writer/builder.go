// internal/writer/builder.go
package writer

import (
	"io"

	cfg "github.com/tamzrod/cppnorm/internal/config"
)

// Build wires both report writers onto out.
func Build(c cfg.Config, out io.Writer) (Writer, StatusWriter) {
	return New(out, c.Check), NewStatusWriter(out)
}
