// internal/logging/substitute_log.go
package logging

import (
	"log/slog"
	"strings"
)

type slogWriter struct{}

func (w *slogWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimRight(string(p), "\n")

	switch {
	case strings.HasPrefix(msg, "ERROR "):
		slog.Error(msg[6:])
	case strings.HasPrefix(msg, "WARN "):
		slog.Warn(msg[5:])
	case strings.HasPrefix(msg, "INFO "):
		slog.Info(msg[5:])
	default:
		slog.Debug(msg)
	}
	return len(p), nil
}
