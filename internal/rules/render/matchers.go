package render

import (
	"regexp"
	"strings"
)

const (
	openBodyTag  = "<body>"
	closeBodyTag = "</body>"
)

// Indentation is measured in whitespace characters after a newline. A
// component sits at 8, its properties and closing braces at 12, and
// everything inside a body wrapper one more level (4) in.
var (
	bodyTagRe       = regexp.MustCompile(`</?body>`)
	leadingIndentRe = regexp.MustCompile(`\n\s{8}`)
	propStartRe     = regexp.MustCompile(`\n\s{12}`)

	propLineRe        = regexp.MustCompile(`(?m)^\s{12}`)
	wrappedPropLineRe = regexp.MustCompile(`(?m)^\s{16}`)

	closingBraceRe        = regexp.MustCompile(`\n\s{8}\}\}`)
	wrappedClosingBraceRe = regexp.MustCompile(`\n\s{12}\}\}`)

	closingBlockRe        = regexp.MustCompile(`\n\s{8}\{\{/`)
	wrappedClosingBlockRe = regexp.MustCompile(`\n\s{12}\{\{/`)

	closingBodyTagRe = regexp.MustCompile(`\n\s{8}</body>`)
)

// bodyTagMarkers returns every <body> and </body> marker in text, in order
// of appearance.
func bodyTagMarkers(text string) []string {
	return bodyTagRe.FindAllString(text, -1)
}

// isWrapped reports whether text contains any body tag marker.
func isWrapped(text string) bool {
	return bodyTagRe.MatchString(text)
}

// propertyCount counts "=" characters as a stand-in for key=value
// properties. A value that itself contains "=" is counted more than once.
func propertyCount(text string) int {
	return strings.Count(text, "=")
}

// leadingIndentMarker returns the index of the first newline followed by
// eight whitespace characters.
func leadingIndentMarker(text string) (int, bool) {
	loc := leadingIndentRe.FindStringIndex(text)
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}

// startsOnNewLine reports whether the leading indent marker is at index 0.
func startsOnNewLine(text string) bool {
	idx, ok := leadingIndentMarker(text)
	return ok && idx == 0
}

// isTemplateBlock reports whether text opens a block ({{#...}}).
func isTemplateBlock(text string) bool {
	return strings.Contains(text, "{{#")
}

// innerMarkup returns the component definition: the text after the first
// "{{", up to the next "{{", cut at the first "}}". It returns "" when text
// has no "{{".
func innerMarkup(text string) string {
	_, after, found := strings.Cut(text, "{{")
	if !found {
		return ""
	}
	seg, _, _ := strings.Cut(after, "{{")
	def, _, _ := strings.Cut(seg, "}}")
	return def
}

// bodyContent returns the markup nested in a body wrapper: the text after
// the first <body>, up to the next <body>, cut at the first </body>. Without
// an opening tag the whole text (cut at </body>) is used.
func bodyContent(text string) string {
	parts := strings.Split(text, openBodyTag)
	inner := parts[0]
	if len(parts) > 1 {
		inner = parts[1]
	}
	inner, _, _ = strings.Cut(inner, closeBodyTag)
	return inner
}

// propertyStart returns the index of the first property line (a newline
// followed by twelve whitespace characters) in a component definition.
func propertyStart(def string) (int, bool) {
	loc := propStartRe.FindStringIndex(def)
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}

// indentedPropertyLines counts lines of props that start at property
// indentation.
func indentedPropertyLines(props string, wrapped bool) int {
	re := propLineRe
	if wrapped {
		re = wrappedPropLineRe
	}
	return len(re.FindAllStringIndex(props, -1))
}

// hasClosingBrace reports whether "}}" starts its own line at closing
// indentation.
func hasClosingBrace(text string, wrapped bool) bool {
	if wrapped {
		return wrappedClosingBraceRe.MatchString(text)
	}
	return closingBraceRe.MatchString(text)
}

// hasClosingTemplateBlock reports whether "{{/" starts its own line at
// component indentation.
func hasClosingTemplateBlock(text string, wrapped bool) bool {
	if wrapped {
		return wrappedClosingBlockRe.MatchString(text)
	}
	return closingBlockRe.MatchString(text)
}

// hasClosingBodyTag reports whether </body> starts its own line.
func hasClosingBodyTag(text string) bool {
	return closingBodyTagRe.MatchString(text)
}

// hasClosingParenLine reports whether the last element (</body> when
// wrapped, "}}" otherwise) is followed by a newline, leaving the closing
// parenthesis on a line of its own.
func hasClosingParenLine(text string, wrapped bool) bool {
	if wrapped {
		return strings.Contains(text, closeBodyTag+"\n")
	}
	return strings.Contains(text, "}}\n")
}
