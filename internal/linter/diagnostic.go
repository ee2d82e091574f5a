// Package linter provides the lint engine, the rule interface and the
// diagnostic writers.
package linter

import (
	"github.com/donaldgifford/hbslint/internal/config"
)

// Severity indicates the severity level of a diagnostic.
type Severity string

// Severity levels.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single reported violation, attributed to the start of the
// call expression that produced it.
type Diagnostic struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// SeverityFor resolves the configured severity of a rule. Rules missing
// from the config default to error. enabled is false when the rule is off.
func SeverityFor(cfg *config.LintConfig, rule string) (sev Severity, enabled bool) {
	switch cfg.Rules[rule] {
	case config.SeverityOff:
		return "", false
	case config.SeverityWarn:
		return SeverityWarning, true
	default:
		return SeverityError, true
	}
}

// Count returns the number of error and warning diagnostics.
func Count(diags []Diagnostic) (errors, warnings int) {
	for _, d := range diags {
		if d.Severity == SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}
