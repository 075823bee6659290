// Package parser builds the Stoc declaration tree from a token stream by
// recursive descent, with a Pratt-style precedence climb for
// expressions.
package parser

import (
	"github.com/stoclang/stoc/internal/diag"
	"github.com/stoclang/stoc/internal/lexer"
	"github.com/stoclang/stoc/pkg/ast"
	"github.com/stoclang/stoc/pkg/token"
)

// Parser consumes tokens from a single lexer and produces a Program. It
// is single-use: construct one per file with New.
type Parser struct {
	l     *lexer.Lexer
	diags *diag.Bag

	curTok  token.Token
	peekTok token.Token
}

// New creates a Parser reading from l and reporting diagnostics against
// file.
func New(file string, l *lexer.Lexer) *Parser {
	p := &Parser{l: l, diags: diag.NewBag(file)}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the accumulated parse diagnostics.
func (p *Parser) Errors() *diag.Bag { return p.diags }

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.curTok.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peekTok.Type == t }

// expect advances past the current token if it has type t, else reports
// an "unexpected token" diagnostic and leaves the cursor unmoved so the
// caller's own recovery can take over.
func (p *Parser) expect(t token.Type) (token.Token, bool) {
	if p.curIs(t) {
		tok := p.curTok
		p.nextToken()
		return tok, true
	}
	p.errorf("expected %s, got %s (%q)", t, p.curTok.Type, p.curTok.Literal)
	return token.Token{}, false
}

func (p *Parser) errorf(format string, args ...any) {
	p.diags.Report(diag.Parsing, p.curTok.Pos, format, args...)
}

// synchronizeTokens are the fixed set of resumption points: the start of
// any declaration or statement, a block delimiter, or a statement
// terminator.
var synchronizeTokens = map[token.Type]bool{
	token.VAR: true, token.CONST: true, token.FUNC: true,
	token.IF: true, token.FOR: true, token.WHILE: true, token.RETURN: true,
	token.LBRACE: true, token.SEMICOLON: true,
}

// synchronize advances past tokens until one of synchronizeTokens (or
// EOF) is current, consuming a trailing SEMICOLON if that is what it
// stopped on. The token current on entry is always consumed (unless it
// is EOF), even when it is itself a resumption point, so every call
// makes progress and recovery always terminates.
func (p *Parser) synchronize() {
	if !p.curIs(token.EOF) && !p.curIs(token.SEMICOLON) {
		p.nextToken()
	}
	for !p.curIs(token.EOF) && !synchronizeTokens[p.curTok.Type] {
		p.nextToken()
	}
	if p.curIs(token.SEMICOLON) {
		p.nextToken()
	}
}

// ParseProgram parses a whole file: a sequence of declarations. It never
// stops early — every declaration that fails to parse synchronizes and
// is omitted from the result, and parsing continues with whatever
// follows.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		decl := p.parseDeclaration(true)
		if decl != nil {
			prog.Declarations = append(prog.Declarations, decl)
		}
	}
	return prog
}

// parseDeclaration parses one var/const/func declaration. topLevel
// records whether the declaration sits at file scope; it is threaded
// down rather than computed later since the parser is the only phase
// that knows syntactic nesting.
func (p *Parser) parseDeclaration(topLevel bool) ast.Declaration {
	switch p.curTok.Type {
	case token.VAR:
		return p.parseVarDecl(topLevel, true)
	case token.CONST:
		return p.parseConstDecl(topLevel, true)
	case token.FUNC:
		return p.parseFuncDecl()
	default:
		p.errorf("expected a declaration, got %s (%q)", p.curTok.Type, p.curTok.Literal)
		p.synchronize()
		return nil
	}
}
