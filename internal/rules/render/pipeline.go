package render

// check carries one template segment through the stages. Each segment gets
// its own check, so nothing is shared between concurrent validations.
type check struct {
	text    string
	wrapped bool
	report  func(MessageKind)
}

// stage inspects the segment and reports violations. It returns false to
// end validation of the segment early.
type stage func(c *check) bool

// stages run in this order; the order of reported kinds follows it.
var stages = []stage{
	checkBodyTags,
	checkLeadingIndent,
	checkPropertyLayout,
	checkClosingBrace,
	checkClosingTemplateBlock,
	checkClosingBodyTag,
	checkClosingParen,
}

// Validate runs every stage over the raw text of one template segment and
// calls report once per violation, in stage order. It never panics, whatever
// the input.
func Validate(text string, report func(MessageKind)) {
	c := &check{
		text:    text,
		wrapped: isWrapped(text),
		report:  report,
	}
	for _, s := range stages {
		if !s(c) {
			return
		}
	}
}

// Collect returns the violations Validate reports for text.
func Collect(text string) []MessageKind {
	var kinds []MessageKind
	Validate(text, func(k MessageKind) {
		kinds = append(kinds, k)
	})
	return kinds
}

// checkBodyTags requires a wrapper to be exactly one <body> followed by one
// </body>.
func checkBodyTags(c *check) bool {
	markers := bodyTagMarkers(c.text)
	switch len(markers) {
	case 0:
	case 2:
		if markers[0] != openBodyTag {
			c.report(InvalidOpenBodyTag)
		}
		if markers[1] != closeBodyTag {
			c.report(InvalidCloseBodyTag)
		}
	default:
		c.report(InvalidBodyTags)
	}
	return true
}

// checkLeadingIndent verifies where the markup starts. A wrapper and its
// content must both open on a fresh indented line; an unwrapped component
// starts on a new line only when it has more than one property or is a
// block.
func checkLeadingIndent(c *check) bool {
	if c.wrapped {
		if !startsOnNewLine(c.text) {
			c.report(MissingLeadingNewLineTab)
		}
		if !startsOnNewLine(bodyContent(c.text)) {
			c.report(MissingLeadingNewLineTab)
		}
		return true
	}

	props := propertyCount(c.text)
	idx, found := leadingIndentMarker(c.text)
	if !found {
		if props > 1 {
			c.report(MultiPropsInvalidFormat)
		}
		return true
	}

	if props == 1 && !isTemplateBlock(c.text) {
		c.report(SingleComponentNotSingleLined)
	}
	if idx != 0 {
		c.report(MissingLeadingNewLineTab)
	}
	return true
}

// checkPropertyLayout verifies that a multi-property component lists one
// property per line. An unwrapped single-line component with at most one
// property is complete and ends validation here.
func checkPropertyLayout(c *check) bool {
	def := innerMarkup(c.text)
	props := propertyCount(def)

	start, multiline := propertyStart(def)
	if !multiline {
		if props > 1 {
			c.report(MultiPropsInvalidFormat)
			return true
		}
		return c.wrapped
	}

	// Only a count mismatch is reported; a layout with no line at the
	// expected indent is left to the closing checks.
	lines := indentedPropertyLines(def[start:], c.wrapped)
	if lines > 0 && lines != props {
		c.report(MultiPropsInvalidFormat)
	}
	return true
}

func checkClosingBrace(c *check) bool {
	if propertyCount(c.text) > 1 && !hasClosingBrace(c.text, c.wrapped) {
		c.report(MissingClosingBraceNewLineTab)
	}
	return true
}

func checkClosingTemplateBlock(c *check) bool {
	if isTemplateBlock(c.text) && !hasClosingTemplateBlock(c.text, c.wrapped) {
		c.report(InvalidClosingTemplateBlock)
	}
	return true
}

func checkClosingBodyTag(c *check) bool {
	if c.wrapped && !hasClosingBodyTag(c.text) {
		c.report(MissingClosingBodyTag)
	}
	return true
}

// checkClosingParen requires a newline after the last element so the
// closing parenthesis of the call sits on its own line.
func checkClosingParen(c *check) bool {
	if !hasClosingParenLine(c.text, c.wrapped) {
		c.report(MissingClosingParenNewLine)
	}
	return false
}
