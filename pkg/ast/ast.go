// Package ast defines the decorated syntax tree for Stoc programs: three
// tagged node families (Declaration, Statement, Expression) plus the
// syntactic Type nodes.
//
// Nodes are plain structs implementing small marker interfaces (no class
// hierarchy, no visitor pattern): lowering and analysis phases dispatch on
// the concrete Go type with a type switch.
package ast

import (
	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/token"
)

// Node is implemented by every tree node.
type Node interface {
	Pos() token.Position
	String() string
}

// Declaration is implemented by Var, Const, Param and Func declarations.
type Declaration interface {
	Node
	declarationNode()
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression node. Every expression
// acquires a resolved type and value category during semantic analysis;
// ExprInfo carries that decoration.
type Expression interface {
	Node
	expressionNode()
	Info() *ExprInfo
}

// ValueCategory classifies whether (and how) an expression may appear on
// the left of an assignment.
type ValueCategory int

const (
	// RValue expressions are never assignable.
	RValue ValueCategory = iota
	// ModifiableLValue expressions may be assigned to.
	ModifiableLValue
	// NonModifiableLValue expressions name a constant: not assignable,
	// and assigning to one is a distinct diagnostic from assigning to an
	// RValue.
	NonModifiableLValue
)

func (c ValueCategory) String() string {
	switch c {
	case ModifiableLValue:
		return "modifiable lvalue"
	case NonModifiableLValue:
		return "non-modifiable lvalue"
	default:
		return "rvalue"
	}
}

// ExprInfo holds the fields the semantic analyzer adds to every
// expression node: its resolved type, its value category, and — for
// Identifier nodes — the declaration it was bound to.
type ExprInfo struct {
	Type     types.Type
	Category ValueCategory
	// Decl is the declaration this expression's identifier use was bound
	// to. Only set on *Identifier nodes (including a call's Callee, which
	// is bound to the selected overload); nil otherwise. It is
	// a non-owning back-reference: declarations own their subtrees,
	// identifier uses never own the declaration they point to.
	Decl Declaration
}

// Program is the root of the tree: the ordered list of top-level
// declarations parsed from a single source file.
type Program struct {
	Declarations []Declaration
}

func (p *Program) Pos() token.Position {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	out := ""
	for _, d := range p.Declarations {
		out += d.String() + "\n"
	}
	return out
}
