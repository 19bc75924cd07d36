// internal/cli/commands.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tamzrod/cppnorm/internal/passes"
)

var passShort = map[string]string{
	passes.NameEncoding:     "Strip byte order marks and convert legacy encodings to UTF-8",
	passes.NameLegal:        "Add or update the copyright and license notice",
	passes.NameWhitespace:   "Normalize line endings, tabs, trailing and surrounding blank lines",
	passes.NameIncludePaths: "Rewrite quoted includes to paths below the include root",
	passes.NameHeaderGuard:  "Add or rename header guards after the header path",
	passes.NameOpenCL:       "Drop the __ prefix from OpenCL qualifiers",
	passes.NameIndent:       "Re-indent by brace, bracket, macro and continuation depth",
}

// passCmd runs a single pass; useful as its own pre-commit hook.
func (a *app) passCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:           name + " <path>...",
		Short:         passShort[name],
		Args:          requirePaths,
		SilenceErrors: true,
		SilenceUsage:  true,
		Annotations: map[string]string{
			"type": "Pass",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, []string{name})
		},
	}
}
