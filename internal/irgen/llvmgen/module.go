// Package llvmgen lowers a decorated Stoc tree into an LLVM IR module,
// built on tinygo.org/x/go-llvm.
package llvmgen

import (
	"errors"

	"tinygo.org/x/go-llvm"

	"github.com/stoclang/stoc/internal/diag"
	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
	"github.com/stoclang/stoc/pkg/token"
)

// errIRBug is the sentinel panicked with to unwind out of deeply nested
// lowering code on an internal inconsistency (an exhaustive switch
// hitting an impossible case, a name that semantic analysis should have
// already rejected). It is caught at the per-declaration boundary in
// emitTopLevel so one broken declaration doesn't abort the whole module.
var errIRBug = errors.New("internal code generation error")

// ctorFunc is one entry queued for the module's global-constructor list.
type ctorFunc struct {
	fn       llvm.Value
	priority int
}

// Emitter lowers one *ast.Program into an LLVM module. Create with New,
// call Emit once, then use Verify and String, or pass Module() to
// Compile from link.go.
type Emitter struct {
	diags *diag.Bag

	ctx     llvm.Context
	mod     llvm.Module
	builder llvm.Builder

	printfFn llvm.Value
	strcmpFn llvm.Value

	// globals maps an unmangled global var/const name to its IR global.
	globals map[string]llvm.Value
	// funcs maps a mangled function name to its IR function.
	funcs map[string]llvm.Value
	// locals maps an unmangled local name to its stack allocation, reset
	// for every function body.
	locals map[string]llvm.Value

	ctors []ctorFunc

	// current function context, valid only while lowering a body.
	curFunc   llvm.Value
	curResult types.Type  // VOID if the function declares no return type
	exitBlock llvm.BasicBlock
	retSlot   llvm.Value // valid only if curResult != VOID
}

// New creates an Emitter for a module named after sourceName (typically
// the input file's base name).
func New(sourceName string, diags *diag.Bag) *Emitter {
	ctx := llvm.NewContext()
	e := &Emitter{
		diags:   diags,
		ctx:     ctx,
		mod:     ctx.NewModule(sourceName),
		builder: ctx.NewBuilder(),
		globals: make(map[string]llvm.Value),
		funcs:   make(map[string]llvm.Value),
		locals:  make(map[string]llvm.Value),
	}
	e.mod.SetTarget(llvm.DefaultTargetTriple())
	e.declareExterns()
	return e
}

// Dispose releases the underlying LLVM context and builder.
func (e *Emitter) Dispose() {
	e.builder.Dispose()
	e.mod.Dispose()
	e.ctx.Dispose()
}

// Module exposes the underlying llvm.Module, e.g. for Compile when
// producing an executable.
func (e *Emitter) Module() llvm.Module { return e.mod }

// declareExterns declares the two C-compatible symbols the emitted
// module ever calls directly: printf and strcmp.
func (e *Emitter) declareExterns() {
	i8ptr := llvm.PointerType(e.ctx.Int8Type(), 0)

	printfType := llvm.FunctionType(e.ctx.Int32Type(), []llvm.Type{i8ptr}, true)
	e.printfFn = llvm.AddFunction(e.mod, "printf", printfType)

	strcmpType := llvm.FunctionType(e.ctx.Int64Type(), []llvm.Type{i8ptr, i8ptr}, false)
	e.strcmpFn = llvm.AddFunction(e.mod, "strcmp", strcmpType)
}

// llvmType maps a Stoc basic type to its IR type.
func (e *Emitter) llvmType(t types.Type) llvm.Type {
	basic, ok := t.(types.BasicType)
	if !ok {
		panic(errIRBug)
	}
	switch basic.Kind {
	case types.Bool:
		return e.ctx.Int1Type()
	case types.Int:
		return e.ctx.Int64Type()
	case types.Float:
		return e.ctx.DoubleType()
	case types.String:
		return llvm.PointerType(e.ctx.Int8Type(), 0)
	case types.Void:
		return e.ctx.VoidType()
	default:
		panic(errIRBug)
	}
}

// zeroValue returns the default zero value of t.
func (e *Emitter) zeroValue(t types.Type) llvm.Value {
	basic, ok := t.(types.BasicType)
	if !ok {
		panic(errIRBug)
	}
	switch basic.Kind {
	case types.Bool:
		return llvm.ConstInt(e.ctx.Int1Type(), 0, false)
	case types.Int:
		return llvm.ConstInt(e.ctx.Int64Type(), 0, false)
	case types.Float:
		return llvm.ConstFloat(e.ctx.DoubleType(), 0)
	case types.String:
		return llvm.ConstPointerNull(llvm.PointerType(e.ctx.Int8Type(), 0))
	default:
		panic(errIRBug)
	}
}

// Emit lowers every top-level declaration of prog, in two passes so that
// mutual recursion between functions resolves regardless of source
// order: function headers and global declarations are created first,
// then global initializers and function bodies are lowered — globals
// are registered before any call to them is lowered.
func (e *Emitter) Emit(prog *ast.Program) {
	for _, d := range prog.Declarations {
		if fn, ok := d.(*ast.FuncDecl); ok && !fn.Builtin {
			e.emitTopLevel(fn.Pos(), func() { e.declareFunctionHeader(fn) })
		}
	}
	for _, d := range prog.Declarations {
		switch v := d.(type) {
		case *ast.VarDecl:
			e.emitTopLevel(v.Pos(), func() { e.declareGlobal(v.Name.Name, v.Name.Info().Type, false) })
		case *ast.ConstDecl:
			e.emitTopLevel(v.Pos(), func() { e.declareGlobal(v.Name.Name, v.Name.Info().Type, true) })
		}
	}
	for _, d := range prog.Declarations {
		switch v := d.(type) {
		case *ast.VarDecl:
			e.emitTopLevel(v.Pos(), func() { e.emitGlobalInitializer(v.Name.Name, v.Value, false) })
		case *ast.ConstDecl:
			e.emitTopLevel(v.Pos(), func() { e.emitGlobalInitializer(v.Name.Name, v.Value, true) })
		}
	}
	for _, d := range prog.Declarations {
		if fn, ok := d.(*ast.FuncDecl); ok && !fn.Builtin {
			e.emitTopLevel(fn.Pos(), func() { e.emitFunctionBody(fn) })
		}
	}

	e.buildGlobalCtors()
}

// emitTopLevel runs f, recovering errIRBug so one declaration's internal
// failure doesn't abort lowering the rest of the module.
func (e *Emitter) emitTopLevel(pos token.Position, f func()) {
	defer func() {
		if r := recover(); r != nil {
			if r == errIRBug {
				e.diags.Report(diag.CodeGeneration, pos, "internal error lowering this declaration")
				return
			}
			panic(r)
		}
	}()
	f()
}

// buildGlobalCtors assembles the llvm.global_ctors array from every
// queued constructor function. go-llvm has no appendToGlobalCtors
// helper, so the array is built by hand: an array of
// { i32 priority, void()* ctor, i8* data } structs, one per global
// initializer, all sharing priority 0.
func (e *Emitter) buildGlobalCtors() {
	if len(e.ctors) == 0 {
		return
	}

	ctorFnType := llvm.PointerType(llvm.FunctionType(e.ctx.VoidType(), nil, false), 0)
	i8ptr := llvm.PointerType(e.ctx.Int8Type(), 0)
	elemType := e.ctx.StructType([]llvm.Type{e.ctx.Int32Type(), ctorFnType, i8ptr}, false)

	elems := make([]llvm.Value, len(e.ctors))
	for i, c := range e.ctors {
		elems[i] = llvm.ConstStruct([]llvm.Value{
			llvm.ConstInt(e.ctx.Int32Type(), uint64(c.priority), false),
			llvm.ConstBitCast(c.fn, ctorFnType),
			llvm.ConstPointerNull(i8ptr),
		}, false)
	}

	arr := llvm.ConstArray(elemType, elems)
	global := llvm.AddGlobal(e.mod, arr.Type(), "llvm.global_ctors")
	global.SetInitializer(arr)
	global.SetLinkage(llvm.AppendingLinkage)
}

// Verify runs the module's structural verifier, reporting a
// code-generation diagnostic and returning false if it fails.
func (e *Emitter) Verify() bool {
	if err := llvm.VerifyModule(e.mod, llvm.ReturnStatusAction); err != "" {
		e.diags.ReportGlobal(diag.CodeGeneration, "module verification failed: %s", err)
		return false
	}
	return true
}

// String renders the module's textual IR, for --emit-llvm.
func (e *Emitter) String() string {
	return e.mod.String()
}
