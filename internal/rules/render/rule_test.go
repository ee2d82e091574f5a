package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/hbslint/internal/config"
	"github.com/donaldgifford/hbslint/internal/parser"
)

func parseCall(t *testing.T, src string) *parser.CallExpr {
	t.Helper()

	calls, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	return calls[0]
}

func runRule(t *testing.T, src string, cfg *config.RenderConfig) []string {
	t.Helper()

	if cfg == nil {
		cfg = &config.DefaultConfig().Render
	}

	var got []string
	rule := &TemplateRenderFormat{}
	rule.Check(parseCall(t, src), cfg, func(message string) {
		got = append(got, message)
	})
	return got
}

func TestRuleMetadata(t *testing.T) {
	rule := &TemplateRenderFormat{}
	assert.Equal(t, "template-render-format", rule.Name())
	assert.Equal(t, "Rendering Ember HBS templates should have consistent formatting", rule.Description())
}

func TestRuleCheck(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "valid single line",
			src:  "this.render(hbs`{{component-name}}`);",
		},
		{
			name: "valid multi line",
			src:  "this.render(hbs`\n        {{component-name\n            prop1=prop1\n            prop2=prop2\n        }}\n    `);",
		},
		{
			name: "wrong body tags",
			src:  "this.render(hbs`</body>{{component-name prop1=prop1}}</body>`);",
			want: []string{
				InvalidOpenBodyTag.String(),
				MissingLeadingNewLineTab.String(),
				MissingLeadingNewLineTab.String(),
				MissingClosingBodyTag.String(),
				MissingClosingParenNewLine.String(),
			},
		},
		{
			name: "closing paren on brace line",
			src:  "this.render(hbs`\n        {{component-name\n            prop1=prop1\n            prop2=prop2\n        }}`);",
			want: []string{MissingClosingParenNewLine.String()},
		},
		{
			name: "other receiver ignored",
			src:  "view.render(hbs`{{component-name prop1=prop1 prop2=prop2}}`);",
		},
		{
			name: "chained receiver ignored",
			src:  "this.view.render(hbs`{{component-name prop1=prop1 prop2=prop2}}`);",
		},
		{
			name: "other method ignored",
			src:  "this.set(hbs`{{component-name prop1=prop1 prop2=prop2}}`);",
		},
		{
			name: "other tag ignored",
			src:  "this.render(html`{{component-name prop1=prop1 prop2=prop2}}`);",
		},
		{
			name: "untagged template ignored",
			src:  "this.render(`{{component-name prop1=prop1 prop2=prop2}}`);",
		},
		{
			name: "non template argument ignored",
			src:  "this.render(template);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runRule(t, tt.src, nil))
		})
	}
}

func TestRuleCheckEachSegment(t *testing.T) {
	// Each literal segment around a substitution is validated on its own.
	got := runRule(t, "this.render(hbs`{{a}}${x}{{b c=c d=d}}`);", nil)

	assert.Equal(t, []string{
		MultiPropsInvalidFormat.String(),
		MultiPropsInvalidFormat.String(),
		MissingClosingBraceNewLineTab.String(),
		MissingClosingParenNewLine.String(),
	}, got)
}

func TestRuleCheckConfiguredNames(t *testing.T) {
	cfg := &config.RenderConfig{Method: "draw", Tag: "htmlbars"}
	src := "this.draw(htmlbars`{{component-name prop1=prop1 prop2=prop2}}`);"

	assert.Len(t, runRule(t, src, cfg), 4)
	assert.Empty(t, runRule(t, "this.render(hbs`{{component-name prop1=prop1 prop2=prop2}}`);", cfg))
}

func TestSegments(t *testing.T) {
	call := parseCall(t, "this.render(hbs`a${b}c`, hbs`d`, other`e`);")
	assert.Equal(t, []string{"a", "c", "d"}, Segments(call, "render", "hbs"))
	assert.Nil(t, Segments(call, "draw", "hbs"))

	call = parseCall(t, "foo.render(hbs`a`);")
	assert.Nil(t, Segments(call, "render", "hbs"))
}
