package llvmgen

import (
	"tinygo.org/x/go-llvm"

	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
)

// declareGlobal creates the IR global for a top-level var/const with its
// type's zero value, private linkage. The actual initializer runs
// later, via the global's constructor function.
func (e *Emitter) declareGlobal(name string, typ types.Type, isConst bool) {
	g := llvm.AddGlobal(e.mod, e.llvmType(typ), name)
	g.SetLinkage(llvm.PrivateLinkage)
	g.SetInitializer(e.zeroValue(typ))
	if isConst {
		g.SetGlobalConstant(true)
	}
	e.globals[name] = g
}

// emitGlobalInitializer builds "_global_var_init_<name>", a hidden
// function that stores the lowered initializer expression into the
// global, and queues it on the module's constructor list at priority 0.
// var initializers get internal linkage, const initializers get
// private linkage.
func (e *Emitter) emitGlobalInitializer(name string, value ast.Expression, isConst bool) {
	fnType := llvm.FunctionType(e.ctx.VoidType(), nil, false)
	fn := llvm.AddFunction(e.mod, "_global_var_init_"+name, fnType)
	if isConst {
		fn.SetLinkage(llvm.PrivateLinkage)
	} else {
		fn.SetLinkage(llvm.InternalLinkage)
	}

	entry := e.ctx.AddBasicBlock(fn, "entry")
	e.builder.SetInsertPointAtEnd(entry)

	e.locals = make(map[string]llvm.Value)
	v := e.emitExpr(value)
	e.builder.CreateStore(v, e.globals[name])
	e.builder.CreateRetVoid()

	e.ctors = append(e.ctors, ctorFunc{fn: fn, priority: 0})
}

// declareFunctionHeader creates the IR function for fn with its mangled
// name, without lowering a body yet.
func (e *Emitter) declareFunctionHeader(fn *ast.FuncDecl) {
	paramTypes := make([]llvm.Type, len(fn.Params))
	for i, p := range fn.Params {
		paramTypes[i] = e.llvmType(p.Name.Info().Type)
	}
	resultType := e.llvmType(fn.Sig.Result)

	ftyp := llvm.FunctionType(resultType, paramTypes, false)
	ir := llvm.AddFunction(e.mod, fn.Mangled, ftyp)
	ir.SetLinkage(llvm.ExternalLinkage)
	for i, p := range fn.Params {
		ir.Param(i).SetName(p.Name.Name)
	}
	e.funcs[fn.Mangled] = ir
}

// emitFunctionBody lowers fn's body into the previously declared IR
// function.
func (e *Emitter) emitFunctionBody(fn *ast.FuncDecl) {
	ir := e.funcs[fn.Mangled]

	entry := e.ctx.AddBasicBlock(ir, "entry")
	e.builder.SetInsertPointAtEnd(entry)

	e.locals = make(map[string]llvm.Value)
	for i, p := range fn.Params {
		alloc := e.builder.CreateAlloca(e.llvmType(p.Name.Info().Type), p.Name.Name)
		e.builder.CreateStore(ir.Param(i), alloc)
		e.locals[p.Name.Name] = alloc
	}

	outerFunc, outerResult, outerExit, outerRetSlot := e.curFunc, e.curResult, e.exitBlock, e.retSlot
	e.curFunc = ir
	e.curResult = fn.Sig.Result

	hasResult := !fn.Sig.Result.Equals(types.VOID)
	if hasResult {
		e.retSlot = e.builder.CreateAlloca(e.llvmType(fn.Sig.Result), "return")
	} else {
		e.retSlot = llvm.Value{}
	}
	e.exitBlock = e.ctx.AddBasicBlock(ir, "exit")

	e.emitBlock(fn.Body)

	if !e.blockTerminated() {
		e.builder.CreateBr(e.exitBlock)
	}

	e.exitBlock.MoveAfter(ir.LastBasicBlock())
	e.builder.SetInsertPointAtEnd(e.exitBlock)
	if hasResult {
		e.builder.CreateRet(e.builder.CreateLoad(e.retSlot, ""))
	} else {
		e.builder.CreateRetVoid()
	}

	e.curFunc, e.curResult, e.exitBlock, e.retSlot = outerFunc, outerResult, outerExit, outerRetSlot
}

// blockTerminated reports whether the builder's current insertion block
// already ends with a terminator instruction.
func (e *Emitter) blockTerminated() bool {
	blk := e.builder.GetInsertBlock()
	return !blk.LastInstruction().IsNil() && !blk.LastInstruction().IsATerminatorInst().IsNil()
}
