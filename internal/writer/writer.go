// internal/writer/writer.go
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tamzrod/cppnorm/internal/normalizer"
)

type reportWriter struct {
	out   io.Writer
	check bool
}

// New returns a Writer printing one line per changed or failed file.
// Unchanged files print nothing.
func New(out io.Writer, check bool) Writer {
	return &reportWriter{out: out, check: check}
}

func (w *reportWriter) Write(res normalizer.Result) error {
	var line string

	switch {
	case res.Err != nil:
		line = fmt.Sprintf("%s %s: %v", red("error"), res.Path, res.Err)
	case !res.Changed:
		return nil
	case w.check:
		line = fmt.Sprintf("%s %s%s", yellow("would fix"), res.Path, passList(res.Passes))
	default:
		line = fmt.Sprintf("%s %s%s", green("fixed"), res.Path, passList(res.Passes))
	}

	_, err := fmt.Fprintln(w.out, line)
	return err
}

func passList(ps []string) string {
	if len(ps) == 0 {
		return ""
	}
	return " " + grey("("+strings.Join(ps, ", ")+")")
}
