package linter

import (
	"github.com/donaldgifford/hbslint/internal/config"
	"github.com/donaldgifford/hbslint/internal/parser"
)

// Run applies each enabled rule to every call, in source order, and returns
// the diagnostics in the order the rules reported them.
func Run(file string, calls []*parser.CallExpr, cfg *config.Config, rules []Rule) []Diagnostic {
	var diags []Diagnostic

	for _, call := range calls {
		for _, rule := range rules {
			sev, enabled := SeverityFor(&cfg.Lint, rule.Name())
			if !enabled {
				continue
			}

			name := rule.Name()
			start := call.Start
			rule.Check(call, &cfg.Render, func(message string) {
				diags = append(diags, Diagnostic{
					File:     file,
					Line:     start.Line,
					Column:   start.Column,
					Rule:     name,
					Severity: sev,
					Message:  message,
				})
			})
		}
	}

	return diags
}
