package llvmgen

import (
	"tinygo.org/x/go-llvm"

	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
)

// emitExpr lowers e and returns its IR value.
func (e *Emitter) emitExpr(expr ast.Expression) llvm.Value {
	switch ex := expr.(type) {
	case *ast.IntLiteral:
		return llvm.ConstInt(e.ctx.Int64Type(), uint64(ex.Value), true)
	case *ast.FloatLiteral:
		return llvm.ConstFloat(e.ctx.DoubleType(), ex.Value)
	case *ast.BoolLiteral:
		if ex.Value {
			return llvm.ConstInt(e.ctx.Int1Type(), 1, false)
		}
		return llvm.ConstInt(e.ctx.Int1Type(), 0, false)
	case *ast.StringLiteral:
		return e.builder.CreateGlobalStringPtr(ex.Value, "str")
	case *ast.Identifier:
		return e.builder.CreateLoad(e.lookupSlot(ex.Name), ex.Name)
	case *ast.UnaryExpr:
		return e.emitUnary(ex)
	case *ast.BinaryExpr:
		return e.emitBinary(ex)
	case *ast.CallExpr:
		return e.emitCall(ex)
	default:
		panic(errIRBug)
	}
}

func (e *Emitter) emitUnary(u *ast.UnaryExpr) llvm.Value {
	v := e.emitExpr(u.Operand)
	basic, ok := u.Operand.Info().Type.(types.BasicType)
	if !ok {
		panic(errIRBug)
	}
	switch u.Operator {
	case "+":
		return v
	case "-":
		if basic.Kind == types.Float {
			return e.builder.CreateFNeg(v, "")
		}
		return e.builder.CreateNeg(v, "")
	case "!":
		return e.builder.CreateNot(v, "")
	default:
		panic(errIRBug)
	}
}

func (e *Emitter) emitBinary(b *ast.BinaryExpr) llvm.Value {
	left := e.emitExpr(b.Left)
	right := e.emitExpr(b.Right)

	operand, ok := b.Left.Info().Type.(types.BasicType)
	if !ok {
		panic(errIRBug)
	}

	if operand.Kind == types.String {
		return e.emitStringComparison(b.Operator, left, right)
	}

	isFloat := operand.Kind == types.Float
	switch b.Operator {
	case "+":
		if isFloat {
			return e.builder.CreateFAdd(left, right, "")
		}
		return e.builder.CreateAdd(left, right, "")
	case "-":
		if isFloat {
			return e.builder.CreateFSub(left, right, "")
		}
		return e.builder.CreateSub(left, right, "")
	case "*":
		if isFloat {
			return e.builder.CreateFMul(left, right, "")
		}
		return e.builder.CreateMul(left, right, "")
	case "/":
		if isFloat {
			return e.builder.CreateFDiv(left, right, "")
		}
		return e.builder.CreateSDiv(left, right, "")
	case "==":
		if isFloat {
			return e.builder.CreateFCmp(llvm.FloatOEQ, left, right, "")
		}
		return e.builder.CreateICmp(llvm.IntEQ, left, right, "")
	case "!=":
		if isFloat {
			return e.builder.CreateFCmp(llvm.FloatONE, left, right, "")
		}
		return e.builder.CreateICmp(llvm.IntNE, left, right, "")
	case "<":
		if isFloat {
			return e.builder.CreateFCmp(llvm.FloatOLT, left, right, "")
		}
		return e.builder.CreateICmp(llvm.IntSLT, left, right, "")
	case ">":
		if isFloat {
			return e.builder.CreateFCmp(llvm.FloatOGT, left, right, "")
		}
		return e.builder.CreateICmp(llvm.IntSGT, left, right, "")
	case "<=":
		if isFloat {
			return e.builder.CreateFCmp(llvm.FloatOLE, left, right, "")
		}
		return e.builder.CreateICmp(llvm.IntSLE, left, right, "")
	case ">=":
		if isFloat {
			return e.builder.CreateFCmp(llvm.FloatOGE, left, right, "")
		}
		return e.builder.CreateICmp(llvm.IntSGE, left, right, "")
	case "&&":
		return e.builder.CreateAnd(left, right, "")
	case "||":
		return e.builder.CreateOr(left, right, "")
	default:
		panic(errIRBug)
	}
}

// emitStringComparison lowers == and != on strings to a strcmp call
// compared against zero. No other string operator is supported.
func (e *Emitter) emitStringComparison(operator string, left, right llvm.Value) llvm.Value {
	cmp := e.builder.CreateCall(e.strcmpFn, []llvm.Value{left, right}, "")
	zero := llvm.ConstInt(e.ctx.Int64Type(), 0, false)
	switch operator {
	case "==":
		return e.builder.CreateICmp(llvm.IntEQ, cmp, zero, "")
	case "!=":
		return e.builder.CreateICmp(llvm.IntNE, cmp, zero, "")
	default:
		panic(errIRBug)
	}
}

// emitCall dispatches a built-in call to its dedicated lowering path, or
// emits an ordinary call to the resolved overload's mangled name.
func (e *Emitter) emitCall(call *ast.CallExpr) llvm.Value {
	matched, ok := call.Callee.Info().Decl.(*ast.FuncDecl)
	if !ok {
		panic(errIRBug)
	}
	if matched.Builtin {
		return e.emitBuiltinCall(matched.Name.Name, call.Args[0])
	}

	ir, ok := e.funcs[matched.Mangled]
	if !ok {
		panic(errIRBug)
	}
	args := make([]llvm.Value, len(call.Args))
	for i, arg := range call.Args {
		args[i] = e.emitExpr(arg)
	}
	return e.builder.CreateCall(ir, args, "")
}
