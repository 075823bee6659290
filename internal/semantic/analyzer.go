package semantic

import (
	"github.com/stoclang/stoc/internal/diag"
	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
	"github.com/stoclang/stoc/pkg/token"
)

// Analyzer decorates one file's tree in place. Create one per file with
// New, then call Analyze once.
type Analyzer struct {
	diags  *diag.Bag
	global *scope
	funcs  *funcTable

	// currentFunc is the enclosing function while analyzing a body, nil
	// at global scope. It supplies the expected type for return
	// statements.
	currentFunc *ast.FuncDecl
}

// New creates an Analyzer for file, with the global scope pre-seeded
// with print/println overloads.
func New(file string) *Analyzer {
	a := &Analyzer{
		diags: diag.NewBag(file),
		funcs: newFuncTable(),
	}
	a.global = newScope(nil)
	seedBuiltins(a.funcs)
	return a
}

// Errors returns the accumulated semantic diagnostics.
func (a *Analyzer) Errors() *diag.Bag { return a.diags }

// Analyze decorates prog's declarations. Function signatures are
// resolved in a first pass over every declaration so that a function
// may call another declared later in the file, including itself (mutual
// recursion and self-recursion both resolve). The second pass analyzes
// global variable/constant initializers and function bodies in source
// order, then verifies a "main" binding exists.
func (a *Analyzer) Analyze(prog *ast.Program) {
	for _, d := range prog.Declarations {
		if fn, ok := d.(*ast.FuncDecl); ok {
			a.registerFuncSignature(fn)
		}
	}

	for _, d := range prog.Declarations {
		switch v := d.(type) {
		case *ast.VarDecl:
			a.analyzeGlobalVarDecl(v)
		case *ast.ConstDecl:
			a.analyzeGlobalConstDecl(v)
		case *ast.FuncDecl:
			a.analyzeFuncBody(v)
		}
	}

	a.finalize()
}

// resolveType resolves a surface TypeAnnotation to its BasicType,
// stashing the result on the node and reporting a diagnostic (INVALID)
// if the spelling is not one of the four basic type keywords — which in
// practice only fires if a hand-built tree bypasses the parser, since
// the parser itself rejects anything else.
func (a *Analyzer) resolveType(t *ast.TypeAnnotation) types.Type {
	if t == nil {
		return types.VOID
	}
	resolved, ok := types.FromName(t.Token.Literal)
	if !ok {
		a.diags.Report(diag.SemanticAnalysis, t.Pos(), "unknown type %q", t.Token.Literal)
		t.Resolved = types.INVALID
		return types.INVALID
	}
	t.Resolved = resolved
	return resolved
}

// registerFuncSignature resolves fn's parameter and result types and
// registers it in the global function table, reporting an overload
// clash if one exists.
func (a *Analyzer) registerFuncSignature(fn *ast.FuncDecl) {
	params := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = a.resolveType(p.Type)
		p.Name.Info().Type = params[i]
		p.Name.Info().Category = ast.ModifiableLValue
	}
	result := a.resolveType(fn.ReturnType)

	fn.Sig = types.NewFunctionType(params, result)
	fn.Mangled = mangle(fn.Name.Name, fn.Sig.Params, fn.Sig.Result)

	if !a.funcs.add(fn) {
		a.diags.Report(diag.SemanticAnalysis, fn.Pos(),
			"redefinition of function %q with the same parameter types", fn.Name.Name)
	}
}

// analyzeGlobalVarDecl analyzes and registers a top-level var
// declaration.
func (a *Analyzer) analyzeGlobalVarDecl(v *ast.VarDecl) {
	declType := a.resolveType(v.Type)
	valueType := a.analyzeExpr(v.Value, a.global)
	a.checkDeclInitializer(v.Pos(), declType, valueType)

	v.TopLevel = true
	v.MangledName = v.Name.Name

	v.Name.Info().Type = declType
	v.Name.Info().Category = ast.ModifiableLValue
	v.Name.Info().Decl = v

	if !a.global.define(&varSymbol{Name: v.Name.Name, Type: declType, Decl: v}) {
		a.diags.Report(diag.SemanticAnalysis, v.Pos(), "redefinition of %q", v.Name.Name)
	}
}

// analyzeGlobalConstDecl analyzes and registers a top-level const
// declaration.
func (a *Analyzer) analyzeGlobalConstDecl(c *ast.ConstDecl) {
	declType := a.resolveType(c.Type)
	valueType := a.analyzeExpr(c.Value, a.global)
	a.checkDeclInitializer(c.Pos(), declType, valueType)

	c.TopLevel = true

	c.Name.Info().Type = declType
	c.Name.Info().Category = ast.NonModifiableLValue
	c.Name.Info().Decl = c

	if !a.global.define(&varSymbol{Name: c.Name.Name, Type: declType, Const: true, Decl: c}) {
		a.diags.Report(diag.SemanticAnalysis, c.Pos(), "redefinition of %q", c.Name.Name)
	}
}

// checkDeclInitializer reports a declaration/initializer type mismatch,
// suppressed if either side is already invalid.
func (a *Analyzer) checkDeclInitializer(pos token.Position, declType, valueType types.Type) {
	if declType == types.INVALID || valueType == types.INVALID {
		return
	}
	if !declType.Equals(valueType) {
		a.diags.Report(diag.SemanticAnalysis, pos, "cannot initialize %s with %s", declType.Name(), valueType.Name())
	}
}

// analyzeFuncBody analyzes one function's parameters and body in a
// fresh scope rooted at the global scope. Builtins have no body and are
// skipped.
func (a *Analyzer) analyzeFuncBody(fn *ast.FuncDecl) {
	if fn.Builtin {
		return
	}

	bodyScope := newScope(a.global)
	for _, p := range fn.Params {
		sym := &varSymbol{Name: p.Name.Name, Type: p.Name.Info().Type, Decl: p}
		if !bodyScope.define(sym) {
			a.diags.Report(diag.SemanticAnalysis, p.Pos(), "redefinition of parameter %q", p.Name.Name)
		}
	}

	outer := a.currentFunc
	a.currentFunc = fn
	a.analyzeBlock(fn.Body, bodyScope)
	a.currentFunc = outer
}

// finalize verifies a "main" binding exists in the global scope.
func (a *Analyzer) finalize() {
	if len(a.funcs.lookup("main")) == 0 {
		a.diags.ReportGlobal(diag.SemanticAnalysis, "missing main function")
	}
}
