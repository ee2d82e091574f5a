package parser

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// ErrCodeParse categorizes scanner failures.
const ErrCodeParse = "HBSLINT_PARSE"

// Parse error messages.
const (
	ErrMsgUnterminatedString   = "unterminated string literal"
	ErrMsgUnterminatedTemplate = "unterminated template literal"
	ErrMsgUnterminatedComment  = "unterminated block comment"
)

// Metadata keys attached to parse errors.
const (
	MetaKeyLine   = "line"
	MetaKeyColumn = "column"
	MetaKeyOffset = "offset"
)

// newParseError returns a validation error carrying the position of the
// construct that could not be closed.
func newParseError(msg string, pos Pos) error {
	return cuserr.NewValidationError(ErrCodeParse, msg).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}
