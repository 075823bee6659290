package parser

import (
	"testing"

	"github.com/stoclang/stoc/internal/lexer"
	"github.com/stoclang/stoc/pkg/ast"
)

func parseProgram(t *testing.T, input string) (*ast.Program, *Parser) {
	t.Helper()
	p := New("test.stoc", lexer.New(input))
	prog := p.ParseProgram()
	return prog, p
}

func TestParseVarDecl(t *testing.T) {
	prog, p := parseProgram(t, `var int x = 5;`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	if len(prog.Declarations) != 1 {
		t.Fatalf("got %d declarations, want 1", len(prog.Declarations))
	}
	decl, ok := prog.Declarations[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.VarDecl", prog.Declarations[0])
	}
	if decl.Name.Name != "x" || decl.Type.Token.Literal != "int" {
		t.Fatalf("got name=%q type=%q", decl.Name.Name, decl.Type.Token.Literal)
	}
}

func TestParseConstDecl(t *testing.T) {
	prog, p := parseProgram(t, `const float pi = 3.14;`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	decl, ok := prog.Declarations[0].(*ast.ConstDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.ConstDecl", prog.Declarations[0])
	}
	if decl.Name.Name != "pi" {
		t.Fatalf("got name=%q", decl.Name.Name)
	}
}

func TestParseFuncDecl(t *testing.T) {
	prog, p := parseProgram(t, `
func add(var int a, var int b) int {
	return a + b;
}`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn, ok := prog.Declarations[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.FuncDecl", prog.Declarations[0])
	}
	if fn.Name.Name != "add" || len(fn.Params) != 2 || fn.ReturnType == nil {
		t.Fatalf("got name=%q params=%d returnType=%v", fn.Name.Name, len(fn.Params), fn.ReturnType)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body.Statements))
	}
}

func TestParseFuncDeclNoReturnType(t *testing.T) {
	prog, p := parseProgram(t, `func f() { }`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	if fn.ReturnType != nil {
		t.Fatalf("expected no return type, got %v", fn.ReturnType)
	}
}

func TestBinaryPrecedenceAndAssociativity(t *testing.T) {
	prog, p := parseProgram(t, `func f() { var int x = 1 + 2 * 3; }`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	decl := fn.Body.Statements[0].(*ast.DeclStmt).Decl.(*ast.VarDecl)
	bin, ok := decl.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryExpr", decl.Value)
	}
	if bin.Operator != "+" {
		t.Fatalf("got top operator %q, want +", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected * to bind tighter and nest under +, got %#v", bin.Right)
	}
}

func TestLeftAssociativity(t *testing.T) {
	prog, p := parseProgram(t, `func f() { var int x = 1 - 2 - 3; }`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	decl := fn.Body.Statements[0].(*ast.DeclStmt).Decl.(*ast.VarDecl)
	top, ok := decl.Value.(*ast.BinaryExpr)
	if !ok || top.Operator != "-" {
		t.Fatalf("got %#v", decl.Value)
	}
	left, ok := top.Left.(*ast.BinaryExpr)
	if !ok || left.Operator != "-" {
		t.Fatalf("expected left-associative nesting under Left, got %#v", top.Left)
	}
}

func TestUnaryPrefixOps(t *testing.T) {
	prog, p := parseProgram(t, `func f() { var bool b = !true; }`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	decl := fn.Body.Statements[0].(*ast.DeclStmt).Decl.(*ast.VarDecl)
	u, ok := decl.Value.(*ast.UnaryExpr)
	if !ok || u.Operator != "!" {
		t.Fatalf("got %#v", decl.Value)
	}
}

func TestCallExprWithArgs(t *testing.T) {
	prog, p := parseProgram(t, `func f() { print(1, 2 + 3); }`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	exprStmt := fn.Body.Statements[0].(*ast.ExprStmt)
	call, ok := exprStmt.Expr.(*ast.CallExpr)
	if !ok || call.Callee.Name != "print" || len(call.Args) != 2 {
		t.Fatalf("got %#v", exprStmt.Expr)
	}
}

func TestIfElseIf(t *testing.T) {
	prog, p := parseProgram(t, `
func f() {
	if true { } else if false { } else { }
}`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	ifStmt := fn.Body.Statements[0].(*ast.IfStmt)
	elseIf, ok := ifStmt.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected else-if to parse as nested IfStmt, got %#v", ifStmt.Else)
	}
	if _, ok := elseIf.Else.(*ast.BlockStmt); !ok {
		t.Fatalf("expected trailing else block, got %#v", elseIf.Else)
	}
}

func TestForLoopAllClauses(t *testing.T) {
	prog, p := parseProgram(t, `
func f() {
	for var int i = 0; i < 10; i = i + 1 {
	}
}`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	forStmt := fn.Body.Statements[0].(*ast.ForStmt)
	if forStmt.Init == nil || forStmt.Condition == nil || forStmt.Post == nil {
		t.Fatalf("expected all three for-clauses present, got %#v", forStmt)
	}
}

func TestForLoopAllClausesOmitted(t *testing.T) {
	prog, p := parseProgram(t, `
func f() {
	for ; ; {
	}
}`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	forStmt := fn.Body.Statements[0].(*ast.ForStmt)
	if forStmt.Init != nil || forStmt.Condition != nil || forStmt.Post != nil {
		t.Fatalf("expected all three for-clauses omitted, got %#v", forStmt)
	}
}

func TestWhileLoop(t *testing.T) {
	prog, p := parseProgram(t, `func f() { while true { } }`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	if _, ok := fn.Body.Statements[0].(*ast.WhileStmt); !ok {
		t.Fatalf("got %T, want *ast.WhileStmt", fn.Body.Statements[0])
	}
}

func TestReturnBareAndWithValue(t *testing.T) {
	prog, p := parseProgram(t, `
func f() {
	return;
}
func g() int {
	return 1;
}`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	f := prog.Declarations[0].(*ast.FuncDecl)
	ret := f.Body.Statements[0].(*ast.ReturnStmt)
	if ret.Value != nil {
		t.Fatalf("expected bare return, got value %#v", ret.Value)
	}
	g := prog.Declarations[1].(*ast.FuncDecl)
	ret2 := g.Body.Statements[0].(*ast.ReturnStmt)
	if ret2.Value == nil {
		t.Fatalf("expected return value")
	}
}

func TestAssignment(t *testing.T) {
	prog, p := parseProgram(t, `func f() { var int x = 1; x = 2; }`)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	fn := prog.Declarations[0].(*ast.FuncDecl)
	assign, ok := fn.Body.Statements[1].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.AssignStmt", fn.Body.Statements[1])
	}
	if assign.Target.(*ast.Identifier).Name != "x" {
		t.Fatalf("got target %#v", assign.Target)
	}
}

func TestErrorRecoverySynchronizesAndContinues(t *testing.T) {
	prog, p := parseProgram(t, `
var int ;
var int y = 1;`)
	if !p.Errors().HasErrors() {
		t.Fatalf("expected a diagnostic for the malformed first declaration")
	}
	// The second, well-formed declaration should still be recovered.
	found := false
	for _, d := range prog.Declarations {
		if v, ok := d.(*ast.VarDecl); ok && v.Name.Name == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parser to recover and parse the second declaration, got %#v", prog.Declarations)
	}
}

func TestEmptyProgramParsesToZeroDeclarations(t *testing.T) {
	prog, p := parseProgram(t, ``)
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors().All())
	}
	if len(prog.Declarations) != 0 {
		t.Fatalf("got %d declarations, want 0", len(prog.Declarations))
	}
}
