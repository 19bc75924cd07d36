// internal/normalizer/normalizer.go
package normalizer

import (
	"errors"

	"github.com/tamzrod/cppnorm/internal/passes"
)

// FileStore abstracts the file operations the normalizer needs.
type FileStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// Config is the minimal runtime config the normalizer needs.
type Config struct {
	Passes  []passes.Pass
	Check   bool
	Workers int
}

// Normalizer runs the pass pipeline over files.
type Normalizer struct {
	cfg   Config
	store FileStore
}

// New creates a normalizer with immutable config.
func New(cfg Config, store FileStore) (*Normalizer, error) {
	if len(cfg.Passes) == 0 {
		return nil, errors.New("normalizer: at least one pass required")
	}
	if store == nil {
		return nil, errors.New("normalizer: file store required")
	}
	if cfg.Workers <= 0 {
		return nil, errors.New("normalizer: workers must be > 0")
	}
	return &Normalizer{cfg: cfg, store: store}, nil
}

// ProcessOnce normalizes exactly one file.
// All-or-nothing: any failure aborts before the file is written.
func (n *Normalizer) ProcessOnce(path string) Result {
	res := Result{Path: path}

	raw, err := n.store.ReadFile(path)
	if err != nil {
		res.Err = &FileReadError{Path: path, Err: err}
		return res
	}

	original := string(raw)
	content := original

	for _, p := range n.cfg.Passes {
		out, err := p.Apply(passes.File{Path: path, Content: content})
		if err != nil {
			res.Err = &PassError{Path: path, Pass: p.Name(), Err: err}
			res.Passes = nil
			return res
		}
		if out != content {
			res.Passes = append(res.Passes, p.Name())
			content = out
		}
	}

	if content == original {
		res.Passes = nil
		return res
	}
	res.Changed = true

	if n.cfg.Check {
		return res
	}

	// Commit only if every pass succeeded
	if err := n.store.WriteFile(path, []byte(content)); err != nil {
		res.Err = &FileWriteError{Path: path, Err: err}
	}
	return res
}
