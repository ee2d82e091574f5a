package linter

import (
	"github.com/donaldgifford/hbslint/internal/config"
	"github.com/donaldgifford/hbslint/internal/parser"
)

// ReportFunc records one violation against the call being checked.
type ReportFunc func(message string)

// Rule inspects call expressions. Rules are applied in registered order.
type Rule interface {
	// Name returns the config key for this rule (e.g., "template-render-format").
	Name() string

	// Description is a one-line summary of what the rule enforces.
	Description() string

	// Check receives one call expression and the render settings, and
	// reports each violation through report. Check must not retain call or
	// report after it returns.
	Check(call *parser.CallExpr, cfg *config.RenderConfig, report ReportFunc)
}
