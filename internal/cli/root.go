// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	gkcolor "github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/tamzrod/cppnorm/internal/config"
	"github.com/tamzrod/cppnorm/internal/passes"
	"github.com/tamzrod/cppnorm/internal/status"
)

const tool = "cppnorm"

type app struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
	exit   int
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   tool + " <path>...",
		Short: "Normalize C and C++ sources in place",
		Long: tool + ": " + gkcolor.FgGreen.Sprint("normalize C and C++ sources in place") + "\n\n" +
			"Runs every configured pass over the given files, and over the C-family\n" +
			"sources found in the given directories. Exit status is 0 when nothing\n" +
			"changed, 1 when files were (or would be) rewritten, 2 when a file failed\n" +
			"and 3 on usage or configuration errors.",
		Args:          requirePaths,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, nil)
		},
	}

	a.opts.bindPersistent(root.PersistentFlags())
	a.opts.bindPasses(root.Flags())

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &FlagError{Err: err}
	})
	root.CompletionOptions.DisableDefaultCmd = true

	for _, name := range passes.Order {
		root.AddCommand(a.passCmd(name))
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	return root
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := a.rootCmd()
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return a.exit
	}

	fmt.Fprintln(stderr, gkcolor.FgRed.Sprint("Error: "+err.Error()))

	var fe *FlagError
	if errors.As(err, &fe) {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprintln(stderr, cmd.UsageString())
		return status.ExitUsage
	}

	var ce *config.ConfigurationError
	if errors.As(err, &ce) {
		return status.ExitUsage
	}

	return status.ExitFailed
}

// Start is the process entry point.
func Start() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
