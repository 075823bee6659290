package ast

import (
	"bytes"

	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/token"
)

// TypeAnnotation is the surface-syntax spelling of a type: one of the
// bool/int/float/string keywords. The semantic analyzer resolves it to
// a types.Type and stashes the result in Resolved.
type TypeAnnotation struct {
	Token    token.Token // the BOOL_TYPE/INT_TYPE/FLOAT_TYPE/STRING_TYPE token
	Resolved types.Type  // filled in by the analyzer
}

func (t *TypeAnnotation) Pos() token.Position { return t.Token.Pos }
func (t *TypeAnnotation) String() string      { return t.Token.Literal }

// VarDecl declares a mutable variable, at top level or inside a block:
// `var` type identifier `=` expression `;`. Type and Value are both
// mandatory — Stoc has no type inference.
//
// TopLevel is set by the analyzer to record whether the declaration
// sits at file top level.
type VarDecl struct {
	TokPos      token.Position
	Type        *TypeAnnotation
	Name        *Identifier
	Value       Expression
	TopLevel    bool
	MangledName string // unmangled: variables are never mangled
}

func (d *VarDecl) Pos() token.Position { return d.TokPos }
func (d *VarDecl) declarationNode()    {}
func (d *VarDecl) String() string {
	var out bytes.Buffer
	out.WriteString("var ")
	out.WriteString(d.Type.String())
	out.WriteString(" ")
	out.WriteString(d.Name.String())
	out.WriteString(" = ")
	out.WriteString(d.Value.String())
	out.WriteString(";")
	return out.String()
}

// ConstDecl declares an immutable binding: `const` type identifier `=`
// expression `;`. Value is never nil: the grammar requires an
// initializer.
type ConstDecl struct {
	TokPos   token.Position
	Type     *TypeAnnotation
	Name     *Identifier
	Value    Expression
	TopLevel bool
}

func (d *ConstDecl) Pos() token.Position { return d.TokPos }
func (d *ConstDecl) declarationNode()    {}
func (d *ConstDecl) String() string {
	var out bytes.Buffer
	out.WriteString("const ")
	out.WriteString(d.Type.String())
	out.WriteString(" ")
	out.WriteString(d.Name.String())
	out.WriteString(" = ")
	out.WriteString(d.Value.String())
	out.WriteString(";")
	return out.String()
}

// Param is one parameter of a function signature: `var` type identifier
// — parameters are written with the same leading `var` keyword as a
// local variable declaration, just without an initializer.
type Param struct {
	TokPos token.Position
	Type   *TypeAnnotation
	Name   *Identifier
}

func (p *Param) Pos() token.Position { return p.TokPos }
func (p *Param) declarationNode()    {}
func (p *Param) String() string {
	return "var " + p.Type.String() + " " + p.Name.String()
}

// FuncDecl declares a top-level function. ReturnType is nil for a
// function with no declared result, in which case its resolved type is
// types.VOID.
type FuncDecl struct {
	TokPos     token.Position
	Name       *Identifier
	Params     []*Param
	ReturnType *TypeAnnotation // nil if the function returns nothing
	Body       *BlockStmt

	// Mangled is the link-time name computed by the analyzer:
	// name_Np_T1T2…TN_rR, except "main" which is never mangled.
	Mangled string
	// Sig is the function's resolved signature, filled in by the analyzer
	// before the body is checked so recursive calls can resolve.
	Sig *types.FunctionType
	// Builtin marks print/println overloads pre-seeded into the global
	// scope; Body is nil for these and codegen routes them to its
	// built-in lowering path instead of emitting a call, rather than
	// ever looking for a user body.
	Builtin bool
}

func (d *FuncDecl) Pos() token.Position { return d.TokPos }
func (d *FuncDecl) declarationNode()    {}
func (d *FuncDecl) String() string {
	var out bytes.Buffer
	out.WriteString("func ")
	out.WriteString(d.Name.String())
	out.WriteString("(")
	for i, p := range d.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(")")
	if d.ReturnType != nil {
		out.WriteString(" ")
		out.WriteString(d.ReturnType.String())
	}
	out.WriteString(" ")
	out.WriteString(d.Body.String())
	return out.String()
}
