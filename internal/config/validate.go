// internal/config/validate.go
package config

import (
	"strings"

	"github.com/tamzrod/cppnorm/internal/passes"
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return invalid("config", "missing")
	}

	// ------------------------------------------------------------
	// ENGINE
	// ------------------------------------------------------------

	if cfg.TabWidth <= 0 {
		return invalid("tab_width", "must be > 0, got %d", cfg.TabWidth)
	}

	if cfg.Workers < 0 {
		return invalid("workers", "must be >= 0, got %d", cfg.Workers)
	}

	if strings.TrimSpace(cfg.Src) == "" {
		return invalid("src", "must not be empty")
	}

	if cfg.LogLevel != "" && !logLevels[strings.ToLower(cfg.LogLevel)] {
		return invalid("log_level", "unknown level %q", cfg.LogLevel)
	}

	// ------------------------------------------------------------
	// PASSES
	// ------------------------------------------------------------

	if len(cfg.Passes) == 0 {
		return invalid("passes", "at least one pass required")
	}

	for _, p := range cfg.Passes {
		if !passes.Known(p) {
			return invalid("passes", "unknown pass %q (known: %s)", p, strings.Join(passes.Order, ", "))
		}
	}

	// ------------------------------------------------------------
	// FILE CLASSES
	// ------------------------------------------------------------

	for _, ext := range cfg.HeaderExtensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			return invalid("header_extensions", "%q must start with a dot", ext)
		}
	}

	for _, ext := range cfg.OpenCLExtensions {
		if !strings.HasPrefix(ext, ".") {
			return invalid("opencl_extensions", "%q must start with a dot", ext)
		}
	}

	// ------------------------------------------------------------
	// LICENSE NOTICE
	// ------------------------------------------------------------

	if strings.TrimSpace(cfg.CopyrightString) == "" {
		return invalid("copyright_string", "must not be empty")
	}

	if strings.TrimSpace(cfg.LicenseNotice) == "" {
		return invalid("license_notice", "must be %s, %s or the notice text",
			passes.LicenseGPL3, passes.LicenseUnlicense)
	}

	notice := []struct{ field, text string }{
		{"copyright_string", cfg.CopyrightString},
		{"license_notice", cfg.LicenseNotice},
		{"preamble", cfg.Preamble},
		{"postamble", cfg.Postamble},
	}
	for _, n := range notice {
		if strings.Contains(n.text, "*/") {
			return invalid(n.field, "must not contain */")
		}
		// the whitespace pass would rewrite these inside the notice
		if hasUncleanLine(n.text) {
			return invalid(n.field, "no tabs, control spaces or trailing blanks allowed")
		}
	}

	for author, name := range cfg.Aliases {
		if strings.TrimSpace(author) == "" || strings.TrimSpace(name) == "" {
			return invalid("aliases", "empty alias %q: %q", author, name)
		}
	}

	return nil
}

func hasUncleanLine(text string) bool {
	if strings.ContainsAny(text, "\t\r\v\f") {
		return true
	}
	for _, l := range strings.Split(text, "\n") {
		if strings.HasSuffix(l, " ") {
			return true
		}
	}
	return false
}
