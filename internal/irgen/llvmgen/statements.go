package llvmgen

import (
	"tinygo.org/x/go-llvm"

	"github.com/stoclang/stoc/pkg/ast"
)

// emitBlock lowers every statement of b in order at the current
// insertion point.
func (e *Emitter) emitBlock(b *ast.BlockStmt) {
	for _, stmt := range b.Statements {
		e.emitStatement(stmt)
	}
}

func (e *Emitter) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		e.emitLocalDecl(s.Decl)
	case *ast.ExprStmt:
		e.emitExpr(s.Expr)
	case *ast.AssignStmt:
		e.emitAssign(s)
	case *ast.IfStmt:
		e.emitIf(s)
	case *ast.WhileStmt:
		e.emitWhile(s)
	case *ast.ForStmt:
		e.emitFor(s)
	case *ast.ReturnStmt:
		e.emitReturn(s)
	case *ast.BlockStmt:
		e.emitBlock(s)
	default:
		panic(errIRBug)
	}
}

// emitLocalDecl lowers a local var/const declaration: allocate, lower the
// initializer, store, bind.
func (e *Emitter) emitLocalDecl(decl ast.Declaration) {
	var name string
	var value ast.Expression
	switch d := decl.(type) {
	case *ast.VarDecl:
		name, value = d.Name.Name, d.Value
	case *ast.ConstDecl:
		name, value = d.Name.Name, d.Value
	default:
		panic(errIRBug)
	}

	v := e.emitExpr(value)
	alloc := e.builder.CreateAlloca(v.Type(), name)
	e.builder.CreateStore(v, alloc)
	e.locals[name] = alloc
}

// lookupSlot resolves name to a storable IR location: the innermost
// local shadows a global of the same name.
func (e *Emitter) lookupSlot(name string) llvm.Value {
	if slot, ok := e.locals[name]; ok {
		return slot
	}
	if slot, ok := e.globals[name]; ok {
		return slot
	}
	panic(errIRBug)
}

func (e *Emitter) emitAssign(s *ast.AssignStmt) {
	ident, ok := s.Target.(*ast.Identifier)
	if !ok {
		panic(errIRBug)
	}
	v := e.emitExpr(s.Value)
	e.builder.CreateStore(v, e.lookupSlot(ident.Name))
}

// emitIf lowers a conditional: compute the condition, create
// then/else/continuation blocks, branch, lower each arm, and branch any
// unterminated arm into the continuation.
func (e *Emitter) emitIf(s *ast.IfStmt) {
	cond := e.emitExpr(s.Condition)

	thenBlk := e.ctx.AddBasicBlock(e.curFunc, "if.then")
	var elseBlk llvm.BasicBlock
	if s.Else != nil {
		elseBlk = e.ctx.AddBasicBlock(e.curFunc, "if.else")
	}
	contBlk := e.ctx.AddBasicBlock(e.curFunc, "if.cont")

	if s.Else != nil {
		e.builder.CreateCondBr(cond, thenBlk, elseBlk)
	} else {
		e.builder.CreateCondBr(cond, thenBlk, contBlk)
	}

	e.builder.SetInsertPointAtEnd(thenBlk)
	e.emitBlock(s.Then)
	if !e.blockTerminated() {
		e.builder.CreateBr(contBlk)
	}

	if s.Else != nil {
		e.builder.SetInsertPointAtEnd(elseBlk)
		e.emitStatement(s.Else)
		if !e.blockTerminated() {
			e.builder.CreateBr(contBlk)
		}
	}

	e.builder.SetInsertPointAtEnd(contBlk)
}

// emitWhile lowers a pre-test loop.
func (e *Emitter) emitWhile(s *ast.WhileStmt) {
	condBlk := e.ctx.AddBasicBlock(e.curFunc, "while.cond")
	bodyBlk := e.ctx.AddBasicBlock(e.curFunc, "while.body")
	contBlk := e.ctx.AddBasicBlock(e.curFunc, "while.cont")

	e.builder.CreateBr(condBlk)

	e.builder.SetInsertPointAtEnd(condBlk)
	cond := e.emitExpr(s.Condition)
	e.builder.CreateCondBr(cond, bodyBlk, contBlk)

	e.builder.SetInsertPointAtEnd(bodyBlk)
	e.emitBlock(s.Body)
	if !e.blockTerminated() {
		e.builder.CreateBr(condBlk)
	}

	e.builder.SetInsertPointAtEnd(contBlk)
}

// emitFor lowers a three-clause loop. Init is lowered in the enclosing
// scope (no new basic block of its own); condition, body
// and post each get their own block, mirroring while's shape but with an
// extra post-increment block threaded back into the condition.
func (e *Emitter) emitFor(s *ast.ForStmt) {
	if s.Init != nil {
		e.emitStatement(s.Init)
	}

	condBlk := e.ctx.AddBasicBlock(e.curFunc, "for.cond")
	bodyBlk := e.ctx.AddBasicBlock(e.curFunc, "for.body")
	postBlk := e.ctx.AddBasicBlock(e.curFunc, "for.post")
	contBlk := e.ctx.AddBasicBlock(e.curFunc, "for.cont")

	e.builder.CreateBr(condBlk)

	e.builder.SetInsertPointAtEnd(condBlk)
	if s.Condition != nil {
		cond := e.emitExpr(s.Condition)
		e.builder.CreateCondBr(cond, bodyBlk, contBlk)
	} else {
		e.builder.CreateBr(bodyBlk)
	}

	e.builder.SetInsertPointAtEnd(bodyBlk)
	e.emitBlock(s.Body)
	if !e.blockTerminated() {
		e.builder.CreateBr(postBlk)
	}

	e.builder.SetInsertPointAtEnd(postBlk)
	if s.Post != nil {
		e.emitStatement(s.Post)
	}
	e.builder.CreateBr(condBlk)

	e.builder.SetInsertPointAtEnd(contBlk)
}

// emitReturn stores the returned value (if any) into the function's
// return slot and branches to the exit block.
func (e *Emitter) emitReturn(s *ast.ReturnStmt) {
	if s.Value != nil {
		v := e.emitExpr(s.Value)
		e.builder.CreateStore(v, e.retSlot)
	}
	e.builder.CreateBr(e.exitBlock)
}
