package parser

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenKind classifies a lexical token.
type tokenKind int

const (
	tokIdent tokenKind = iota
	tokPunct
	tokNumber
	tokString
	tokTemplate
	tokRegex
)

// token is one lexical unit. Template tokens also carry their literal
// segments and the tokens of each ${} substitution.
type token struct {
	kind tokenKind
	text string // Identifier name or punctuation; empty for literals.
	pos  Pos
	end  int // Byte offset just past the token.
	tmpl *TemplateLiteral
	subs [][]token
}

// regexKeywords are identifiers after which a slash starts a regular
// expression literal rather than a division.
var regexKeywords = map[string]bool{
	"return":     true,
	"typeof":     true,
	"instanceof": true,
	"in":         true,
	"of":         true,
	"new":        true,
	"delete":     true,
	"void":       true,
	"throw":      true,
	"case":       true,
	"do":         true,
	"else":       true,
	"yield":      true,
	"await":      true,
}

// Parse scans JavaScript source and returns every member call expression
// (object.name(...)), including calls nested in template substitutions,
// ordered by source offset.
func Parse(src string) ([]*CallExpr, error) {
	s := &state{src: src, line: 1, col: 1}
	s.skipHashbang()

	toks, err := s.tokenize(nil)
	if err != nil {
		return nil, err
	}

	var calls []*CallExpr
	s.collectCalls(toks, &calls)
	slices.SortFunc(calls, func(a, b *CallExpr) int {
		return a.Start.Offset - b.Start.Offset
	})
	return calls, nil
}

// state tracks the scanner position.
type state struct {
	src  string
	off  int
	line int
	col  int
}

func (s *state) pos() Pos {
	return Pos{Offset: s.off, Line: s.line, Column: s.col}
}

func (s *state) eof() bool {
	return s.off >= len(s.src)
}

// peek returns the byte n positions ahead, or 0 past the end.
func (s *state) peek(n int) byte {
	if s.off+n >= len(s.src) {
		return 0
	}
	return s.src[s.off+n]
}

// advance moves n bytes forward, keeping line and column in step.
func (s *state) advance(n int) {
	for ; n > 0 && s.off < len(s.src); n-- {
		if s.src[s.off] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.off++
	}
}

func (s *state) skipHashbang() {
	if !strings.HasPrefix(s.src, "#!") {
		return
	}
	for !s.eof() && s.src[s.off] != '\n' {
		s.advance(1)
	}
}

// tokenize scans until end of input. When subst is non-nil the scan is
// inside a ${} substitution of the template starting at *subst, and it
// stops after the brace that closes the substitution.
func (s *state) tokenize(subst *Pos) ([]token, error) {
	var toks []token
	depth := 0

	for !s.eof() {
		c := s.src[s.off]
		start := s.pos()

		switch {
		case c == '/' && s.peek(1) == '/':
			for !s.eof() && s.src[s.off] != '\n' {
				s.advance(1)
			}

		case c == '/' && s.peek(1) == '*':
			if err := s.skipBlockComment(); err != nil {
				return nil, err
			}

		case c == '/' && regexAllowed(toks) && s.scanRegex():
			toks = append(toks, token{kind: tokRegex, pos: start, end: s.off})

		case c == '\'' || c == '"':
			if err := s.scanString(c); err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokString, pos: start, end: s.off})

		case c == '`':
			tok, err := s.scanTemplate()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)

		case c == '}' && subst != nil && depth == 0:
			s.advance(1)
			return toks, nil

		case c == '{' || c == '}':
			if c == '{' {
				depth++
			} else if depth > 0 {
				depth--
			}
			s.advance(1)
			toks = append(toks, token{kind: tokPunct, text: string(c), pos: start, end: s.off})

		case isDigit(c) || (c == '.' && isDigit(s.peek(1))):
			s.scanNumber()
			toks = append(toks, token{kind: tokNumber, pos: start, end: s.off})

		default:
			r, size := utf8.DecodeRuneInString(s.src[s.off:])
			switch {
			case unicode.IsSpace(r) || r == '\ufeff':
				s.advance(size)
			case isIdentStart(r):
				name := s.scanIdent()
				toks = append(toks, token{kind: tokIdent, text: name, pos: start, end: s.off})
			default:
				s.advance(size)
				toks = append(toks, token{kind: tokPunct, text: s.src[start.Offset:s.off], pos: start, end: s.off})
			}
		}
	}

	if subst != nil {
		return nil, newParseError(ErrMsgUnterminatedTemplate, *subst)
	}
	return toks, nil
}

func (s *state) skipBlockComment() error {
	start := s.pos()
	end := strings.Index(s.src[s.off+2:], "*/")
	if end < 0 {
		return newParseError(ErrMsgUnterminatedComment, start)
	}
	s.advance(end + 4)
	return nil
}

// scanRegex consumes a regular expression literal. If no closing slash is
// found on the same line the state is left untouched and false is
// returned, so the slash is treated as an operator instead.
func (s *state) scanRegex() bool {
	saved := *s
	s.advance(1)
	inClass := false

	for {
		if s.eof() || s.src[s.off] == '\n' {
			*s = saved
			return false
		}
		switch s.src[s.off] {
		case '\\':
			s.advance(2)
			continue
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				s.advance(1)
				for !s.eof() && isIdentPart(rune(s.src[s.off])) {
					s.advance(1)
				}
				return true
			}
		}
		s.advance(1)
	}
}

func (s *state) scanString(quote byte) error {
	start := s.pos()
	s.advance(1)

	for !s.eof() {
		switch s.src[s.off] {
		case '\\':
			if s.peek(1) == '\r' && s.peek(2) == '\n' {
				s.advance(3)
			} else {
				s.advance(2)
			}
			continue
		case '\n':
			return newParseError(ErrMsgUnterminatedString, start)
		case quote:
			s.advance(1)
			return nil
		}
		s.advance(1)
	}
	return newParseError(ErrMsgUnterminatedString, start)
}

// scanTemplate consumes a template literal, recording the raw text of each
// literal segment and tokenizing every substitution.
func (s *state) scanTemplate() (token, error) {
	start := s.pos()
	s.advance(1)

	tmpl := &TemplateLiteral{Start: start}
	tok := token{kind: tokTemplate, pos: start, tmpl: tmpl}

	var raw strings.Builder
	segStart := s.pos()

	for !s.eof() {
		c := s.src[s.off]
		switch {
		case c == '`':
			tmpl.Quasis = append(tmpl.Quasis, &Quasi{Start: segStart, Raw: raw.String()})
			s.advance(1)
			tok.end = s.off
			return tok, nil

		case c == '$' && s.peek(1) == '{':
			tmpl.Quasis = append(tmpl.Quasis, &Quasi{Start: segStart, Raw: raw.String()})
			s.advance(2)
			sub, err := s.tokenize(&start)
			if err != nil {
				return token{}, err
			}
			tok.subs = append(tok.subs, sub)
			raw.Reset()
			segStart = s.pos()

		case c == '\\':
			raw.WriteByte(c)
			s.advance(1)
			s.copyRawChar(&raw)

		default:
			s.copyRawChar(&raw)
		}
	}
	return token{}, newParseError(ErrMsgUnterminatedTemplate, start)
}

// copyRawChar copies one source byte into raw. CRLF and a lone CR are
// both written as LF.
func (s *state) copyRawChar(raw *strings.Builder) {
	if s.eof() {
		return
	}
	c := s.src[s.off]
	if c == '\r' {
		raw.WriteByte('\n')
		if s.peek(1) == '\n' {
			s.advance(2)
		} else {
			s.advance(1)
		}
		return
	}
	raw.WriteByte(c)
	s.advance(1)
}

func (s *state) scanNumber() {
	for !s.eof() {
		c := s.src[s.off]
		if c != '.' && !isIdentPart(rune(c)) {
			return
		}
		s.advance(1)
	}
}

func (s *state) scanIdent() string {
	start := s.off
	for !s.eof() {
		r, size := utf8.DecodeRuneInString(s.src[s.off:])
		if !isIdentPart(r) {
			break
		}
		s.advance(size)
	}
	return s.src[start:s.off]
}

// collectCalls appends every call found in toks, then in the substitutions
// of their template literals.
func (s *state) collectCalls(toks []token, calls *[]*CallExpr) {
	for i := range toks {
		for _, sub := range toks[i].subs {
			s.collectCalls(sub, calls)
		}
		if call := s.matchCall(toks, i); call != nil {
			*calls = append(*calls, call)
		}
	}
}

// matchCall recognizes `object . name (` starting at toks[i].
func (s *state) matchCall(toks []token, i int) *CallExpr {
	if i+3 >= len(toks) ||
		toks[i].kind != tokIdent ||
		!isPunct(toks[i+1], ".") ||
		toks[i+2].kind != tokIdent ||
		!isPunct(toks[i+3], "(") {
		return nil
	}

	callee := &MemberExpr{
		Start:    toks[i].pos,
		Object:   objectExpr(toks, i),
		Property: toks[i+2].text,
	}
	return &CallExpr{
		Start:  toks[i].pos,
		Callee: callee,
		Args:   s.splitArgs(toks[i+4:]),
	}
}

// objectExpr classifies the receiver of a member call. A receiver that is
// itself the tail of a longer member chain is opaque.
func objectExpr(toks []token, i int) Expr {
	t := toks[i]
	if i > 0 && isPunct(toks[i-1], ".") {
		return &OtherExpr{Start: t.pos, Text: t.text}
	}
	if t.text == "this" {
		return &ThisExpr{Start: t.pos}
	}
	return &Ident{Start: t.pos, Name: t.text}
}

// splitArgs splits the tokens following an opening parenthesis into
// top-level arguments, stopping at the matching closing parenthesis.
func (s *state) splitArgs(toks []token) []Expr {
	var args []Expr
	depth := 0
	segStart := 0

	for j, t := range toks {
		if t.kind != tokPunct {
			continue
		}
		switch t.text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			if depth == 0 {
				return appendArg(args, s.argExpr(toks[segStart:j]))
			}
			depth--
		case ",":
			if depth == 0 {
				args = appendArg(args, s.argExpr(toks[segStart:j]))
				segStart = j + 1
			}
		}
	}
	return appendArg(args, s.argExpr(toks[segStart:]))
}

func appendArg(args []Expr, e Expr) []Expr {
	if e == nil {
		return args
	}
	return append(args, e)
}

// argExpr classifies the tokens of a single argument.
func (s *state) argExpr(seg []token) Expr {
	switch {
	case len(seg) == 0:
		return nil
	case len(seg) == 1 && seg[0].kind == tokTemplate:
		return seg[0].tmpl
	case len(seg) == 2 && seg[0].kind == tokIdent && seg[1].kind == tokTemplate:
		return &TaggedTemplate{Start: seg[0].pos, Tag: seg[0].text, Quasi: seg[1].tmpl}
	case len(seg) == 1 && seg[0].kind == tokIdent:
		if seg[0].text == "this" {
			return &ThisExpr{Start: seg[0].pos}
		}
		return &Ident{Start: seg[0].pos, Name: seg[0].text}
	}

	last := seg[len(seg)-1]
	return &OtherExpr{Start: seg[0].pos, Text: s.src[seg[0].pos.Offset:last.end]}
}

// regexAllowed reports whether a slash following toks begins a regular
// expression literal.
func regexAllowed(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	prev := toks[len(toks)-1]
	switch prev.kind {
	case tokPunct:
		return prev.text != ")" && prev.text != "]" && prev.text != "}"
	case tokIdent:
		return regexKeywords[prev.text]
	default:
		return false
	}
}

func isPunct(t token, text string) bool {
	return t.kind == tokPunct && t.text == text
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\u200c' || r == '\u200d'
}
