// Package driver wires the compiler phases into a single pipeline
// invocation: read file, lex, parse, analyze, emit, optionally link,
// stopping between phases on that phase's error flag.
package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/stoclang/stoc/internal/diag"
	"github.com/stoclang/stoc/internal/irgen/llvmgen"
	"github.com/stoclang/stoc/internal/lexer"
	"github.com/stoclang/stoc/internal/parser"
	"github.com/stoclang/stoc/internal/printer"
	"github.com/stoclang/stoc/internal/semantic"
	"github.com/stoclang/stoc/internal/source"
	"github.com/stoclang/stoc/pkg/ast"
	"github.com/stoclang/stoc/pkg/token"
)

// Options controls which dump mode (if any) the pipeline stops at, and
// where a produced executable is written.
type Options struct {
	TokensDump bool
	ASTDump    bool
	EmitLLVM   bool
	Output     string
}

// Run executes the full pipeline for the file at path, writing dump/IR
// output to out and diagnostics to errOut, and returns the process exit
// code: 0 on success, 1 on any phase error.
func Run(path string, out, errOut io.Writer, opts Options) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	file := source.New(path, data)

	tokens, scanDiags := runLexer(file)
	file.Tokens = tokens
	file.HasScanError = scanDiags.HasErrors()
	printDiags(errOut, scanDiags)

	if opts.TokensDump {
		fmt.Fprint(out, printer.DumpTokens(tokens))
		return exitCode(file.HasScanError)
	}
	if file.HasScanError {
		return 1
	}

	prog, parseDiags := runParser(file)
	file.Program = prog
	file.HasParseError = parseDiags.HasErrors()
	printDiags(errOut, parseDiags)

	if opts.ASTDump {
		fmt.Fprint(out, ast.Print(prog))
		return exitCode(file.HasParseError)
	}
	if file.HasParseError {
		return 1
	}

	semDiags := runSemantic(prog, file)
	file.HasSemanticError = semDiags.HasErrors()
	printDiags(errOut, semDiags)
	if file.HasSemanticError {
		return 1
	}

	emitter, genDiags := runCodegen(file, prog)
	defer emitter.Dispose()
	printDiags(errOut, genDiags)

	if opts.EmitLLVM {
		fmt.Fprint(out, emitter.String())
		return exitCode(file.HasCodegenError)
	}
	if file.HasCodegenError {
		return 1
	}

	output := opts.Output
	if output == "" {
		output = "a.out"
	}
	if err := llvmgen.Compile(emitter.Module(), output); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func exitCode(failed bool) int {
	if failed {
		return 1
	}
	return 0
}

// runLexer fully tokenizes the file's source, independent of and ahead
// of the parser's own lexer instance — needed to support --tokens-dump
// without also driving a parse, and to let scanning errors surface even
// when a dump flag short-circuits later phases.
func runLexer(file *source.File) ([]token.Token, *diag.Bag) {
	lx := lexer.New(file.Text())
	var tokens []token.Token
	for {
		tok := lx.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	bag := diag.NewBag(file.Name)
	for _, e := range lx.Errors() {
		bag.Report(diag.Scanning, e.Pos, "%s", e.Message)
	}
	return tokens, bag
}

// runParser parses the file with its own fresh lexer, since a lexer is a
// single forward pass and the token-dump pass above already consumed its
// own.
func runParser(file *source.File) (*ast.Program, *diag.Bag) {
	p := parser.New(file.Name, lexer.New(file.Text()))
	prog := p.ParseProgram()
	return prog, p.Errors()
}

func runSemantic(prog *ast.Program, file *source.File) *diag.Bag {
	a := semantic.New(file.Name)
	a.Analyze(prog)
	return a.Errors()
}

func runCodegen(file *source.File, prog *ast.Program) (*llvmgen.Emitter, *diag.Bag) {
	genDiags := diag.NewBag(file.Name)
	moduleName := strings.TrimSuffix(file.Name, filepath.Ext(file.Name))
	emitter := llvmgen.New(moduleName, genDiags)
	emitter.Emit(prog)
	verified := emitter.Verify()
	file.HasCodegenError = genDiags.HasErrors() || !verified
	return emitter, genDiags
}

func printDiags(w io.Writer, bag *diag.Bag) {
	for _, d := range bag.All() {
		fmt.Fprintln(w, d.Format())
	}
}
