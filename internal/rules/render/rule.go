// Package render implements the template-render-format rule, which checks
// the layout of Handlebars templates rendered in tests through
// this.render(hbs`...`).
package render

import (
	"github.com/donaldgifford/hbslint/internal/config"
	"github.com/donaldgifford/hbslint/internal/linter"
	"github.com/donaldgifford/hbslint/internal/parser"
)

// RuleName is the config key of TemplateRenderFormat.
const RuleName = "template-render-format"

// TemplateRenderFormat enforces a consistent layout for rendered templates:
// component indentation, one property per line, body tag wrappers and the
// placement of closing delimiters.
type TemplateRenderFormat struct{}

// Name implements linter.Rule.
func (r *TemplateRenderFormat) Name() string { return RuleName }

// Description implements linter.Rule.
func (r *TemplateRenderFormat) Description() string {
	return "Rendering Ember HBS templates should have consistent formatting"
}

// Check validates every template segment of a matching render call. All
// violations are reported against the call itself.
func (r *TemplateRenderFormat) Check(call *parser.CallExpr, cfg *config.RenderConfig, report linter.ReportFunc) {
	for _, seg := range Segments(call, cfg.Method, cfg.Tag) {
		Validate(seg, func(k MessageKind) {
			report(k.String())
		})
	}
}

// Segments returns the raw text of each literal segment passed to
// this.<method>(<tag>`...`), in source order. Each segment of a template
// with substitutions is returned separately. It returns nil for calls of
// any other shape.
func Segments(call *parser.CallExpr, method, tag string) []string {
	recv, name, ok := call.Method()
	if !ok || name != method {
		return nil
	}
	if _, isThis := recv.(*parser.ThisExpr); !isThis {
		return nil
	}

	var segs []string
	for _, arg := range call.Args {
		tagged, ok := arg.(*parser.TaggedTemplate)
		if !ok || tagged.Tag != tag {
			continue
		}
		for _, q := range tagged.Quasi.Quasis {
			segs = append(segs, q.Raw)
		}
	}
	return segs
}
