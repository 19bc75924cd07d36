// cmd/cppnorm/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/tamzrod/cppnorm/internal/cli"
	"github.com/tamzrod/cppnorm/internal/logging"
)

func main() {
	logging.Setup(os.Stderr, slog.LevelInfo)
	cli.Start()
}
