package ast

import (
	"bytes"

	"github.com/stoclang/stoc/pkg/token"
)

// Identifier is a name reference: a variable, constant, parameter or
// function use. The analyzer fills Info().Decl with the declaration it
// resolved to.
type Identifier struct {
	Token token.Token
	Name  string
	info  ExprInfo
}

func (e *Identifier) Pos() token.Position { return e.Token.Pos }
func (e *Identifier) expressionNode()     {}
func (e *Identifier) Info() *ExprInfo     { return &e.info }
func (e *Identifier) String() string      { return e.Name }

// IntLiteral is an integer literal. Value is parsed from the scanned
// digits; the scanner has already validated the digit run.
type IntLiteral struct {
	Token token.Token
	Value int64
	info  ExprInfo
}

func (e *IntLiteral) Pos() token.Position { return e.Token.Pos }
func (e *IntLiteral) expressionNode()     {}
func (e *IntLiteral) Info() *ExprInfo     { return &e.info }
func (e *IntLiteral) String() string      { return e.Token.Literal }

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
	info  ExprInfo
}

func (e *FloatLiteral) Pos() token.Position { return e.Token.Pos }
func (e *FloatLiteral) expressionNode()     {}
func (e *FloatLiteral) Info() *ExprInfo     { return &e.info }
func (e *FloatLiteral) String() string      { return e.Token.Literal }

// StringLiteral is a string literal. Value holds the text between the
// quotes exactly as scanned; escape sequences are not supported, so no
// decoding takes place.
type StringLiteral struct {
	Token token.Token
	Value string
	info  ExprInfo
}

func (e *StringLiteral) Pos() token.Position { return e.Token.Pos }
func (e *StringLiteral) expressionNode()     {}
func (e *StringLiteral) Info() *ExprInfo     { return &e.info }
func (e *StringLiteral) String() string      { return "\"" + e.Value + "\"" }

// BoolLiteral is the true/false literal.
type BoolLiteral struct {
	Token token.Token
	Value bool
	info  ExprInfo
}

func (e *BoolLiteral) Pos() token.Position { return e.Token.Pos }
func (e *BoolLiteral) expressionNode()     {}
func (e *BoolLiteral) Info() *ExprInfo     { return &e.info }
func (e *BoolLiteral) String() string      { return e.Token.Literal }

// NilLiteral is the reserved "nil" keyword. It parses as a literal but
// has no legal use: the analyzer rejects every occurrence with a
// dedicated diagnostic, since Stoc has no reference type for it to
// inhabit — kept reserved rather than removed, to leave room for a
// future reference type without a breaking keyword change.
type NilLiteral struct {
	Token token.Token
	info  ExprInfo
}

func (e *NilLiteral) Pos() token.Position { return e.Token.Pos }
func (e *NilLiteral) expressionNode()     {}
func (e *NilLiteral) Info() *ExprInfo     { return &e.info }
func (e *NilLiteral) String() string      { return "nil" }

// UnaryExpr is a prefix operator applied to an operand: +, -, or !.
type UnaryExpr struct {
	Token    token.Token // the operator token
	Operator string
	Operand  Expression
	info     ExprInfo
}

func (e *UnaryExpr) Pos() token.Position { return e.Token.Pos }
func (e *UnaryExpr) expressionNode()     {}
func (e *UnaryExpr) Info() *ExprInfo     { return &e.info }
func (e *UnaryExpr) String() string {
	return "(" + e.Operator + e.Operand.String() + ")"
}

// BinaryExpr is an infix operator applied to two operands: arithmetic,
// equality/ordering, or logical.
type BinaryExpr struct {
	Token    token.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
	info     ExprInfo
}

func (e *BinaryExpr) Pos() token.Position { return e.Token.Pos }
func (e *BinaryExpr) expressionNode()     {}
func (e *BinaryExpr) Info() *ExprInfo     { return &e.info }
func (e *BinaryExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(e.Left.String())
	out.WriteString(" " + e.Operator + " ")
	out.WriteString(e.Right.String())
	out.WriteString(")")
	return out.String()
}

// CallExpr invokes a function by name with a list of argument
// expressions. Callee is always an *Identifier: Stoc has no first-class
// function values or call-through-expression syntax.
type CallExpr struct {
	TokPos token.Position // the '(' position
	Callee *Identifier
	Args   []Expression
	info   ExprInfo
}

func (e *CallExpr) Pos() token.Position { return e.TokPos }
func (e *CallExpr) expressionNode()     {}
func (e *CallExpr) Info() *ExprInfo     { return &e.info }
func (e *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(e.Callee.String())
	out.WriteString("(")
	for i, a := range e.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}
