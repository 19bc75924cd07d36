// internal/passes/indent.go
package passes

import (
	"github.com/tamzrod/cppnorm/internal/indent"
)

// Indent re-indents every line by its structural depth.
type Indent struct {
	engine *indent.Engine
}

func NewIndent(tabWidth int) (Indent, error) {
	e, err := indent.New(tabWidth)
	if err != nil {
		return Indent{}, err
	}
	return Indent{engine: e}, nil
}

func (Indent) Name() string { return NameIndent }

func (p Indent) Apply(f File) (string, error) {
	return p.engine.Format(f.Content), nil
}
