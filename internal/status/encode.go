// internal/status/encode.go
package status

// Encode converts a Snapshot into the process exit code.
// Failures outrank changes.
// No IO. No side effects.
func Encode(s Snapshot) int {
	switch {
	case s.Failed > 0:
		return ExitFailed
	case s.Changed > 0:
		return ExitChanged
	default:
		return ExitClean
	}
}
