package semantic

import (
	"github.com/stoclang/stoc/internal/diag"
	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
)

// analyzeBlock checks every statement of b in order within sc, reporting
// any statement found after a return as unreachable. Block entry itself
// does not introduce a fresh scope here: callers that need
// one (function bodies, if/while bodies, for loops) pass a scope they
// already created for that purpose, since the block alone is not always
// the scope boundary (a for loop's own clauses share a scope with its
// body).
func (a *Analyzer) analyzeBlock(b *ast.BlockStmt, sc *scope) {
	seenReturn := false
	for _, stmt := range b.Statements {
		if seenReturn {
			a.diags.Report(diag.SemanticAnalysis, stmt.Pos(), "unreachable statement")
		}
		a.analyzeStatement(stmt, sc)
		if _, ok := stmt.(*ast.ReturnStmt); ok {
			seenReturn = true
		}
	}
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement, sc *scope) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		a.analyzeLocalDecl(s.Decl, sc)
	case *ast.ExprStmt:
		a.analyzeExpr(s.Expr, sc)
	case *ast.AssignStmt:
		a.analyzeAssign(s, sc)
	case *ast.IfStmt:
		a.analyzeIf(s, sc)
	case *ast.WhileStmt:
		a.analyzeWhile(s, sc)
	case *ast.ForStmt:
		a.analyzeFor(s, sc)
	case *ast.ReturnStmt:
		a.analyzeReturn(s, sc)
	case *ast.BlockStmt:
		a.analyzeBlock(s, newScope(sc))
	}
}

// analyzeLocalDecl handles a var/const declaration appearing inside a
// block. Local declarations are never mangled or marked top-level;
// those fields stay at their zero value.
func (a *Analyzer) analyzeLocalDecl(decl ast.Declaration, sc *scope) {
	switch d := decl.(type) {
	case *ast.VarDecl:
		declType := a.resolveType(d.Type)
		valueType := a.analyzeExpr(d.Value, sc)
		a.checkDeclInitializer(d.Pos(), declType, valueType)

		d.Name.Info().Type = declType
		d.Name.Info().Category = ast.ModifiableLValue
		d.Name.Info().Decl = d

		if !sc.define(&varSymbol{Name: d.Name.Name, Type: declType, Decl: d}) {
			a.diags.Report(diag.SemanticAnalysis, d.Pos(), "redefinition of %q", d.Name.Name)
		}
	case *ast.ConstDecl:
		declType := a.resolveType(d.Type)
		valueType := a.analyzeExpr(d.Value, sc)
		a.checkDeclInitializer(d.Pos(), declType, valueType)

		d.Name.Info().Type = declType
		d.Name.Info().Category = ast.NonModifiableLValue
		d.Name.Info().Decl = d

		if !sc.define(&varSymbol{Name: d.Name.Name, Type: declType, Const: true, Decl: d}) {
			a.diags.Report(diag.SemanticAnalysis, d.Pos(), "redefinition of %q", d.Name.Name)
		}
	}
}

// analyzeAssign checks that Target is a modifiable lvalue and that
// Value's type matches it.
func (a *Analyzer) analyzeAssign(s *ast.AssignStmt, sc *scope) {
	targetType := a.analyzeExpr(s.Target, sc)
	valueType := a.analyzeExpr(s.Value, sc)

	switch s.Target.Info().Category {
	case ast.ModifiableLValue:
		// assignable
	case ast.NonModifiableLValue:
		a.diags.Report(diag.SemanticAnalysis, s.Pos(), "cannot assign to constant %s", s.Target.String())
	default:
		if targetType != types.INVALID {
			a.diags.Report(diag.SemanticAnalysis, s.Pos(), "cannot assign to %s", s.Target.String())
		}
	}

	if targetType == types.INVALID || valueType == types.INVALID {
		return
	}
	if !targetType.Equals(valueType) {
		a.diags.Report(diag.SemanticAnalysis, s.Pos(), "cannot assign %s to %s", valueType.Name(), targetType.Name())
	}
}

// checkCondition reports a diagnostic unless t is bool, suppressed if t
// is already invalid. The condition of if/while/for must be boolean.
func (a *Analyzer) checkCondition(pos ast.Node, t types.Type) {
	if t == types.INVALID {
		return
	}
	if !t.Equals(types.BOOL) {
		a.diags.Report(diag.SemanticAnalysis, pos.Pos(), "condition must be bool, got %s", t.Name())
	}
}

func (a *Analyzer) analyzeIf(s *ast.IfStmt, sc *scope) {
	condType := a.analyzeExpr(s.Condition, sc)
	a.checkCondition(s.Condition, condType)
	a.analyzeBlock(s.Then, newScope(sc))
	if s.Else != nil {
		a.analyzeStatement(s.Else, sc)
	}
}

func (a *Analyzer) analyzeWhile(s *ast.WhileStmt, sc *scope) {
	condType := a.analyzeExpr(s.Condition, sc)
	a.checkCondition(s.Condition, condType)
	a.analyzeBlock(s.Body, newScope(sc))
}

// analyzeFor introduces one scope shared by the init clause and the loop
// variable it declares; the body gets its own nested scope.
func (a *Analyzer) analyzeFor(s *ast.ForStmt, sc *scope) {
	forScope := newScope(sc)
	if s.Init != nil {
		a.analyzeStatement(s.Init, forScope)
	}
	if s.Condition != nil {
		condType := a.analyzeExpr(s.Condition, forScope)
		a.checkCondition(s.Condition, condType)
	}
	if s.Post != nil {
		a.analyzeStatement(s.Post, forScope)
	}
	a.analyzeBlock(s.Body, newScope(forScope))
}

// analyzeReturn checks the returned value's type (or absence) against
// the enclosing function's declared result type.
func (a *Analyzer) analyzeReturn(s *ast.ReturnStmt, sc *scope) {
	if a.currentFunc == nil {
		a.diags.Report(diag.SemanticAnalysis, s.Pos(), "return outside function")
		return
	}

	result := a.currentFunc.Sig.Result
	if s.Value == nil {
		if !result.Equals(types.VOID) {
			a.diags.Report(diag.SemanticAnalysis, s.Pos(), "missing return value, function returns %s", result.Name())
		}
		return
	}

	valueType := a.analyzeExpr(s.Value, sc)
	if result.Equals(types.VOID) {
		a.diags.Report(diag.SemanticAnalysis, s.Pos(), "function has no return type, but a value was returned")
		return
	}
	if valueType == types.INVALID {
		return
	}
	if !result.Equals(valueType) {
		a.diags.Report(diag.SemanticAnalysis, s.Pos(), "cannot return %s from a function returning %s", valueType.Name(), result.Name())
	}
}
