// Package parser provides a lightweight JavaScript scanner that extracts
// member call expressions and the shape of their arguments.
//
// It is not a full ECMAScript parser. It tokenizes just enough of the
// language (comments, strings, template literals, regular expressions,
// punctuation) to find calls such as this.render(hbs`...`) reliably and to
// hand their template segments to lint rules verbatim.
package parser

import "fmt"

// Pos is a location in the source text.
type Pos struct {
	Offset int // 0-indexed byte offset.
	Line   int // 1-indexed line number.
	Column int // 1-indexed column, in bytes.
}

// String returns "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Expr is one of the expression shapes the scanner distinguishes:
// *ThisExpr, *Ident, *MemberExpr, *TemplateLiteral, *TaggedTemplate or
// *OtherExpr.
type Expr interface {
	Pos() Pos
	exprNode()
}

// ThisExpr is the implicit receiver `this`.
type ThisExpr struct {
	Start Pos
}

// Ident is a bare identifier.
type Ident struct {
	Start Pos
	Name  string
}

// MemberExpr is a non-computed property access: Object.Property.
type MemberExpr struct {
	Start    Pos
	Object   Expr
	Property string
}

// Quasi is one literal segment of a template literal.
type Quasi struct {
	Start Pos    // Position of the first character of the segment.
	Raw   string // Source text of the segment, escapes untouched, CRLF as LF.
}

// TemplateLiteral is a backtick string. Quasis holds the literal segments
// around each ${} substitution; there is always one more quasi than there
// are substitutions.
type TemplateLiteral struct {
	Start  Pos
	Quasis []*Quasi
}

// TaggedTemplate is a template literal prefixed with a tag identifier,
// e.g. hbs`...`.
type TaggedTemplate struct {
	Start Pos
	Tag   string
	Quasi *TemplateLiteral
}

// OtherExpr is any argument shape the scanner does not model.
type OtherExpr struct {
	Start Pos
	Text  string
}

func (e *ThisExpr) Pos() Pos        { return e.Start }
func (e *Ident) Pos() Pos           { return e.Start }
func (e *MemberExpr) Pos() Pos      { return e.Start }
func (e *TemplateLiteral) Pos() Pos { return e.Start }
func (e *TaggedTemplate) Pos() Pos  { return e.Start }
func (e *OtherExpr) Pos() Pos       { return e.Start }

func (*ThisExpr) exprNode()        {}
func (*Ident) exprNode()           {}
func (*MemberExpr) exprNode()      {}
func (*TemplateLiteral) exprNode() {}
func (*TaggedTemplate) exprNode()  {}
func (*OtherExpr) exprNode()       {}

// CallExpr is a member call expression Callee(Args...).
type CallExpr struct {
	Start  Pos
	Callee Expr
	Args   []Expr
}

// Method reports the callee's property name and receiver when the callee is
// a member expression. ok is false for any other callee shape.
func (c *CallExpr) Method() (receiver Expr, name string, ok bool) {
	m, isMember := c.Callee.(*MemberExpr)
	if !isMember {
		return nil, "", false
	}
	return m.Object, m.Property, true
}
