package llvmgen

import (
	"tinygo.org/x/go-llvm"

	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
)

// emitBuiltinCall lowers a call to print or println: one argument,
// formatted by its decorated type, through a single printf call.
func (e *Emitter) emitBuiltinCall(name string, arg ast.Expression) llvm.Value {
	basic, ok := arg.Info().Type.(types.BasicType)
	if !ok {
		panic(errIRBug)
	}
	v := e.emitExpr(arg)

	var format string
	switch basic.Kind {
	case types.Bool:
		format = "%s"
		v = e.boolToString(v)
	case types.Int:
		format = "%d"
	case types.Float:
		format = "%f"
	case types.String:
		format = "%s"
	default:
		panic(errIRBug)
	}
	if name == "println" {
		format += "\n"
	}

	fmtPtr := e.builder.CreateGlobalStringPtr(format, "fmt")
	return e.builder.CreateCall(e.printfFn, []llvm.Value{fmtPtr, v}, "")
}

// boolToString selects between the "true"/"false" string constants by
// comparing v against zero.
func (e *Emitter) boolToString(v llvm.Value) llvm.Value {
	trueStr := e.builder.CreateGlobalStringPtr("true", "bool.true")
	falseStr := e.builder.CreateGlobalStringPtr("false", "bool.false")
	cond := e.builder.CreateICmp(llvm.IntNE, v, llvm.ConstInt(e.ctx.Int1Type(), 0, false), "")
	return e.builder.CreateSelect(cond, trueStr, falseStr, "")
}
