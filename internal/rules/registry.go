// Package rules manages registration of lint rules.
package rules

import (
	"github.com/donaldgifford/hbslint/internal/linter"
)

var lintRules []linter.Rule

// RegisterRule adds a lint rule to the registry.
// Rules are applied in the order they are registered.
func RegisterRule(r linter.Rule) {
	lintRules = append(lintRules, r)
}

// LintRules returns all registered lint rules in execution order.
func LintRules() []linter.Rule {
	return lintRules
}

// Lookup returns the registered rule with the given name.
func Lookup(name string) (linter.Rule, bool) {
	for _, r := range lintRules {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}
