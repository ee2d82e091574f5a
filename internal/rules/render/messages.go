package render

import "fmt"

// MessageKind identifies one template layout violation. Messages are fixed
// strings; they never quote the offending text.
type MessageKind int

const (
	InvalidOpenBodyTag MessageKind = iota
	InvalidCloseBodyTag
	InvalidBodyTags
	MissingLeadingNewLineTab
	MultiPropsInvalidFormat
	SingleComponentNotSingleLined
	MissingClosingBraceNewLineTab
	InvalidClosingTemplateBlock
	MissingClosingBodyTag
	MissingClosingParenNewLine
)

var messages = [...]string{
	InvalidOpenBodyTag:            "Opening body tag is not in the correct format",
	InvalidCloseBodyTag:           "Closing body tag is not in the correct format",
	InvalidBodyTags:               "Wrapping component in body tags requires an opening and closing tag",
	MissingLeadingNewLineTab:      "Components with multiple properties and/or wrapped in body tag should start on a new line",
	MultiPropsInvalidFormat:       "Component with multiple properties should format component and properties on individual lines",
	SingleComponentNotSingleLined: "Rendering a component with a single property should be single-lined",
	MissingClosingBraceNewLineTab: "Components with multiple properties and/or body tags should have closing brace on new line",
	InvalidClosingTemplateBlock:   "Closing template block element is not in the correct format",
	MissingClosingBodyTag:         "Wrapping component in body tags requires them to be on their own lines",
	MissingClosingParenNewLine:    "Closing parentheses for render element should be on a new line",
}

// String returns the diagnostic message for k.
func (k MessageKind) String() string {
	if k < 0 || int(k) >= len(messages) {
		return fmt.Sprintf("MessageKind(%d)", int(k))
	}
	return messages[k]
}
