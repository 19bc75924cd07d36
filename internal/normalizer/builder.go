// internal/normalizer/builder.go
package normalizer

import (
	cfg "github.com/tamzrod/cppnorm/internal/config"
	"github.com/tamzrod/cppnorm/internal/normalizer/osfs"
	"github.com/tamzrod/cppnorm/internal/passes"
)

// Build constructs a Normalizer from validated, normalized configuration
// and wires it to the local filesystem.
func Build(c cfg.Config) (*Normalizer, error) {
	ps, err := passes.Build(c.Passes, passes.Options{
		TabWidth:         c.TabWidth,
		Src:              c.Src,
		HeaderExtensions: c.HeaderExtensions,
		OpenCLExtensions: c.OpenCLExtensions,
		Legal: passes.LegalOptions{
			CopyrightString: c.CopyrightString,
			ProgrammeName:   c.ProgrammeName,
			LicenseNotice:   c.LicenseNotice,
			Preamble:        c.Preamble,
			Postamble:       c.Postamble,
			Aliases:         c.Aliases,
		},
	})
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			Passes:  ps,
			Check:   c.Check,
			Workers: c.Workers,
		},
		osfs.New(),
	)
}
