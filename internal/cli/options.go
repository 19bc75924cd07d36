// internal/cli/options.go
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tamzrod/cppnorm/internal/config"
)

type options struct {
	configPath string
	tabWidth   int
	src        string
	workers    int
	check      bool
	verbose    bool
	passes     []string
}

func (o *options) bindPersistent(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "Path to the config file (default: ./"+config.DefaultFile+" if present)")
	fs.IntVar(&o.tabWidth, "tab-width", config.DefaultTabWidth, "Spaces per indent level")
	fs.StringVar(&o.src, "src", config.DefaultSrc, "Include root for include paths and header guard names")
	fs.IntVar(&o.workers, "workers", 0, "Files processed in parallel (0 = one per CPU)")
	fs.BoolVar(&o.check, "check", false, "Report files that would change without writing them")
	fs.BoolVarP(&o.verbose, "verbose", "V", false, "Log every file, including unchanged ones")
}

func (o *options) bindPasses(fs *pflag.FlagSet) {
	fs.StringSliceVar(&o.passes, "passes", nil, "Comma-separated passes to run (default: all but legal)")
}

// resolve loads the config file and overlays every flag the user set.
// only, when non-nil, replaces the pass list.
func (o *options) resolve(cmd *cobra.Command, only []string) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	c, err := config.Load(config.Discover(o.configPath, wd))
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("tab-width") {
		c.TabWidth = o.tabWidth
	}
	if f.Changed("src") {
		c.Src = o.src
	}
	if f.Changed("workers") {
		c.Workers = o.workers
	}
	if f.Changed("check") {
		c.Check = o.check
	}
	if o.verbose {
		c.LogLevel = "debug"
	}

	switch {
	case only != nil:
		c.Passes = only
	case f.Changed("passes"):
		c.Passes = o.passes
	}

	if err := config.Validate(c); err != nil {
		return nil, err
	}
	config.Normalize(c)

	return c, nil
}
