// internal/config/config.go
package config

import (
	"slices"

	"github.com/tamzrod/cppnorm/internal/passes"
)

type Config struct {
	TabWidth int    `yaml:"tab_width"`
	Src      string `yaml:"src"`
	Workers  int    `yaml:"workers"` // 0 => one per CPU
	Check    bool   `yaml:"check"`
	LogLevel string `yaml:"log_level"`

	Passes []string `yaml:"passes"`

	// ---- FILE CLASSES ----

	// header_extensions decide which files get a header guard;
	// "" stands for extensionless headers such as <vector>.
	HeaderExtensions []string `yaml:"header_extensions"`
	OpenCLExtensions []string `yaml:"opencl_extensions"`

	// ---- LICENSE NOTICE ----

	CopyrightString string `yaml:"copyright_string"`
	ProgrammeName   string `yaml:"programme_name"`
	LicenseNotice   string `yaml:"license_notice"` // gpl3+, unlicense or literal text
	Preamble        string `yaml:"preamble"`
	Postamble       string `yaml:"postamble"`

	// aliases map a commit author to the name printed in the notice
	Aliases map[string]string `yaml:"aliases"`
}

// ---- DEFAULTS ----

const (
	DefaultTabWidth = 4
	DefaultSrc      = "src"
	DefaultLogLevel = "info"

	DefaultCopyrightString = "Copyright ©"
	DefaultProgrammeName   = "Foobar"
	DefaultLicenseNotice   = passes.LicenseGPL3

	// DefaultFile is picked up from the working directory when no
	// config path is given.
	DefaultFile = ".cppnorm.yaml"
)

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		TabWidth: DefaultTabWidth,
		Src:      DefaultSrc,
		LogLevel: DefaultLogLevel,
		Passes:   slices.Clone(passes.Defaults),
		HeaderExtensions: []string{
			".h", ".hh", ".H", ".hp", ".hxx", ".hpp", ".HPP", ".h++", ".tcc", "",
		},
		OpenCLExtensions: []string{".cl"},

		CopyrightString: DefaultCopyrightString,
		ProgrammeName:   DefaultProgrammeName,
		LicenseNotice:   DefaultLicenseNotice,
	}
}
