// Package config defines the configuration types and defaults for hbslint.
package config

import (
	"maps"
	"slices"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/itsatony/go-cuserr"
)

// Rule severities accepted in lint.rules.
const (
	SeverityError = "error"
	SeverityWarn  = "warn"
	SeverityOff   = "off"
)

// Config is the top-level configuration.
type Config struct {
	Lint   LintConfig   `yaml:"lint"`
	Render RenderConfig `yaml:"render"`
}

// LintConfig holds file selection and rule settings.
type LintConfig struct {
	Rules      map[string]string `yaml:"rules"`      // Rule name -> error, warn or off.
	Exclude    []string          `yaml:"exclude"`    // doublestar globs, slash separated.
	Extensions []string          `yaml:"extensions"` // Walked directories only yield these.
	Jobs       int               `yaml:"jobs"`       // 0 means GOMAXPROCS.
}

// RenderConfig describes the render call the template rule looks for:
// this.<Method>(<Tag>`...`).
type RenderConfig struct {
	Method string `yaml:"method"`
	Tag    string `yaml:"tag"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Exclude:    []string{"**/node_modules/**"},
			Extensions: []string{".js", ".ts"},
		},
		Render: RenderConfig{
			Method: "render",
			Tag:    "hbs",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	for _, rule := range slices.Sorted(maps.Keys(c.Lint.Rules)) {
		switch sev := c.Lint.Rules[rule]; sev {
		case SeverityError, SeverityWarn, SeverityOff:
		default:
			return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidSeverity).
				WithMetadata(MetaKeyRule, rule).
				WithMetadata(MetaKeyValue, sev)
		}
	}

	for _, pattern := range c.Lint.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidExclude).
				WithMetadata(MetaKeyValue, pattern)
		}
	}

	if c.Lint.Jobs < 0 {
		return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidJobs).
			WithMetadata(MetaKeyValue, strconv.Itoa(c.Lint.Jobs))
	}

	if c.Render.Method == "" {
		return cuserr.NewValidationError(ErrCodeConfig, ErrMsgEmptyMethod)
	}
	if c.Render.Tag == "" {
		return cuserr.NewValidationError(ErrCodeConfig, ErrMsgEmptyTag)
	}

	return nil
}
