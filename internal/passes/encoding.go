// internal/passes/encoding.go
package passes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const utf8BOM = "\xef\xbb\xbf"

// Encoding strips a UTF-8 byte order mark and re-decodes content that is
// not valid UTF-8 as Windows-1252, the usual culprit in old C sources.
type Encoding struct{}

func (Encoding) Name() string { return NameEncoding }

func (Encoding) Apply(f File) (string, error) {
	s := strings.TrimPrefix(f.Content, utf8BOM)
	if utf8.ValidString(s) {
		return s, nil
	}

	out, err := charmap.Windows1252.NewDecoder().String(s)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return out, nil
}
