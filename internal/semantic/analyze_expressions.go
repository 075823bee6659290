package semantic

import (
	"github.com/stoclang/stoc/internal/diag"
	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
)

// analyzeExpr decorates e's Info() in place and returns its resolved
// type. Every path sets Info().Type and Info().Category before
// returning, so a caller never has to special-case an expression kind
// it doesn't otherwise branch on.
func (a *Analyzer) analyzeExpr(e ast.Expression, sc *scope) types.Type {
	switch expr := e.(type) {
	case *ast.IntLiteral:
		expr.Info().Type = types.INT
		expr.Info().Category = ast.RValue
		return types.INT
	case *ast.FloatLiteral:
		expr.Info().Type = types.FLOAT
		expr.Info().Category = ast.RValue
		return types.FLOAT
	case *ast.StringLiteral:
		expr.Info().Type = types.STRING
		expr.Info().Category = ast.RValue
		return types.STRING
	case *ast.BoolLiteral:
		expr.Info().Type = types.BOOL
		expr.Info().Category = ast.RValue
		return types.BOOL
	case *ast.NilLiteral:
		a.diags.Report(diag.SemanticAnalysis, expr.Pos(), "nil has no type and cannot be used as a value")
		expr.Info().Type = types.INVALID
		expr.Info().Category = ast.RValue
		return types.INVALID
	case *ast.Identifier:
		return a.analyzeIdentifier(expr, sc)
	case *ast.UnaryExpr:
		return a.analyzeUnary(expr, sc)
	case *ast.BinaryExpr:
		return a.analyzeBinary(expr, sc)
	case *ast.CallExpr:
		return a.analyzeCall(expr, sc)
	}
	return types.INVALID
}

// analyzeIdentifier resolves a bare name reference to a variable,
// constant, or parameter binding. A name bound only as a function is an
// error here: a function identifier carries no type of its own outside
// of a call.
func (a *Analyzer) analyzeIdentifier(id *ast.Identifier, sc *scope) types.Type {
	if sym, ok := sc.resolve(id.Name); ok {
		id.Info().Type = sym.Type
		id.Info().Decl = sym.Decl
		if sym.Const {
			id.Info().Category = ast.NonModifiableLValue
		} else {
			id.Info().Category = ast.ModifiableLValue
		}
		return sym.Type
	}

	if len(a.funcs.lookup(id.Name)) > 0 {
		a.diags.Report(diag.SemanticAnalysis, id.Pos(), "undefined reference: %q names a function, not a value", id.Name)
	} else {
		a.diags.Report(diag.SemanticAnalysis, id.Pos(), "undefined reference: %q", id.Name)
	}
	id.Info().Type = types.INVALID
	id.Info().Category = ast.RValue
	return types.INVALID
}

// operator requirement tables.
var (
	arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true}
	equalityOps   = map[string]bool{"==": true, "!=": true}
	orderingOps   = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
	logicalOps    = map[string]bool{"&&": true, "||": true}
)

func (a *Analyzer) analyzeUnary(u *ast.UnaryExpr, sc *scope) types.Type {
	operandType := a.analyzeExpr(u.Operand, sc)
	u.Info().Category = ast.RValue

	if operandType == types.INVALID {
		u.Info().Type = types.INVALID
		return types.INVALID
	}

	basic, ok := operandType.(types.BasicType)
	var result types.Type
	switch u.Operator {
	case "+", "-":
		if ok && basic.IsNumeric() {
			result = operandType
		}
	case "!":
		if ok && basic.IsBoolean() {
			result = types.BOOL
		}
	}

	if result == nil {
		a.diags.Report(diag.SemanticAnalysis, u.Pos(), "operator %s not applicable to %s", u.Operator, operandType.Name())
		result = types.INVALID
	}
	u.Info().Type = result
	return result
}

func (a *Analyzer) analyzeBinary(b *ast.BinaryExpr, sc *scope) types.Type {
	leftType := a.analyzeExpr(b.Left, sc)
	rightType := a.analyzeExpr(b.Right, sc)
	b.Info().Category = ast.RValue

	if leftType == types.INVALID || rightType == types.INVALID {
		b.Info().Type = types.INVALID
		return types.INVALID
	}

	if !leftType.Equals(rightType) {
		a.diags.Report(diag.SemanticAnalysis, b.Pos(), "mismatched operand types: %s and %s", leftType.Name(), rightType.Name())
		b.Info().Type = types.INVALID
		return types.INVALID
	}

	basic, isBasic := leftType.(types.BasicType)
	var result types.Type
	switch {
	case arithmeticOps[b.Operator]:
		// Arithmetic is numeric-only: the original compiler's string
		// binary-expression lowering has no ADD case, so "+" on two
		// strings is rejected here rather than silently concatenating.
		if isBasic && basic.IsNumeric() {
			result = leftType
		}
	case equalityOps[b.Operator]:
		if isBasic && basic.IsComparable() {
			result = types.BOOL
		}
	case orderingOps[b.Operator]:
		if isBasic && basic.IsOrdered() {
			result = types.BOOL
		}
	case logicalOps[b.Operator]:
		if isBasic && basic.IsBoolean() {
			result = types.BOOL
		}
	}

	if result == nil {
		a.diags.Report(diag.SemanticAnalysis, b.Pos(), "operator %s not applicable to %s", b.Operator, leftType.Name())
		result = types.INVALID
	}
	b.Info().Type = result
	return result
}

// analyzeCall resolves the callee by exact parameter-type-list match.
// An argument that already failed to type-check suppresses overload
// resolution entirely, rather than reporting a second "undefined
// reference" caused only by the first error.
func (a *Analyzer) analyzeCall(call *ast.CallExpr, sc *scope) types.Type {
	argTypes := make([]types.Type, len(call.Args))
	anyInvalid := false
	for i, arg := range call.Args {
		argTypes[i] = a.analyzeExpr(arg, sc)
		if argTypes[i] == types.INVALID {
			anyInvalid = true
		}
	}

	call.Info().Category = ast.RValue
	call.Callee.Info().Category = ast.RValue

	if anyInvalid {
		call.Info().Type = types.INVALID
		call.Callee.Info().Type = types.INVALID
		return types.INVALID
	}

	if _, isValue := sc.resolve(call.Callee.Name); isValue {
		a.diags.Report(diag.SemanticAnalysis, call.Callee.Pos(), "%q is not a function", call.Callee.Name)
		call.Info().Type = types.INVALID
		call.Callee.Info().Type = types.INVALID
		return types.INVALID
	}

	match, ok := a.funcs.resolve(call.Callee.Name, argTypes)
	if !ok {
		a.diags.Report(diag.SemanticAnalysis, call.Callee.Pos(), "undefined reference: %s(%s)", call.Callee.Name, paramNames(argTypes))
		call.Info().Type = types.INVALID
		call.Callee.Info().Type = types.INVALID
		return types.INVALID
	}

	call.Callee.Info().Type = match.Sig
	call.Callee.Info().Decl = match
	call.Info().Type = match.Sig.Result
	return match.Sig.Result
}

func paramNames(ts []types.Type) string {
	out := ""
	for i, t := range ts {
		if i > 0 {
			out += ", "
		}
		out += t.Name()
	}
	return out
}
