// internal/normalizer/types.go
package normalizer

import "fmt"

// Result is the outcome of normalizing one file.
type Result struct {
	Path string

	// Changed means the normalized content differs from what is on disk.
	// In check mode nothing was written.
	Changed bool

	// Passes lists the passes that modified the content, in run order.
	Passes []string

	Err error // non-nil means the file was left untouched
}

// ---- ERRORS ----

// FileReadError reports a file that could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// FileWriteError reports a normalized file that could not be written back.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// PassError reports a pass that refused a file.
type PassError struct {
	Path string
	Pass string
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("%s: pass %s: %v", e.Path, e.Pass, e.Err)
}

func (e *PassError) Unwrap() error { return e.Err }
