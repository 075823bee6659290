package parser

import (
	"github.com/stoclang/stoc/pkg/ast"
	"github.com/stoclang/stoc/pkg/token"
)

// parseBlock parses `{` statement* `}`. The opening brace must be
// current.
func (p *Parser) parseBlock() *ast.BlockStmt {
	block := &ast.BlockStmt{LBrace: p.curTok.Pos}
	p.nextToken() // consume '{'

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		start := p.curTok.Pos.Offset
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else if p.curTok.Pos.Offset == start {
			p.synchronize()
		}
	}
	if _, ok := p.expect(token.RBRACE); !ok {
		p.synchronize()
	}
	return block
}

// parseStatement dispatches on the current token to the matching
// statement form.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseSimpleStmt(true)
	}
}

// parseSimpleStmt parses a declaration, an assignment, or an expression
// statement. requireSemicolon is false only for a `for` loop's post
// clause, which runs directly into the body block with no separator.
func (p *Parser) parseSimpleStmt(requireSemicolon bool) ast.Statement {
	switch p.curTok.Type {
	case token.VAR:
		decl := p.parseVarDecl(false, requireSemicolon)
		if decl == nil {
			return nil
		}
		return &ast.DeclStmt{Decl: decl}
	case token.CONST:
		decl := p.parseConstDecl(false, requireSemicolon)
		if decl == nil {
			return nil
		}
		return &ast.DeclStmt{Decl: decl}
	default:
		pos := p.curTok.Pos
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		if p.curIs(token.ASSIGN) {
			p.nextToken() // consume '='
			value := p.parseExpr()
			if value == nil {
				return nil
			}
			if requireSemicolon {
				if _, ok := p.expect(token.SEMICOLON); !ok {
					return nil
				}
			}
			return &ast.AssignStmt{TokPos: pos, Target: expr, Value: value}
		}
		if requireSemicolon {
			if _, ok := p.expect(token.SEMICOLON); !ok {
				return nil
			}
		}
		return &ast.ExprStmt{TokPos: pos, Expr: expr}
	}
}

// parseIfStmt parses `if` expression block [ `else` ( if | block ) ].
func (p *Parser) parseIfStmt() ast.Statement {
	pos := p.curTok.Pos
	p.nextToken() // consume 'if'

	cond := p.parseExpr()
	if cond == nil {
		p.synchronize()
		return nil
	}
	if !p.curIs(token.LBRACE) {
		p.errorf("expected '{', got %s (%q)", p.curTok.Type, p.curTok.Literal)
		p.synchronize()
		return nil
	}
	then := p.parseBlock()

	var elseBranch ast.Statement
	if p.curIs(token.ELSE) {
		p.nextToken() // consume 'else'
		switch p.curTok.Type {
		case token.IF:
			elseBranch = p.parseIfStmt()
		case token.LBRACE:
			elseBranch = p.parseBlock()
		default:
			p.errorf("expected 'if' or '{' after 'else', got %s (%q)", p.curTok.Type, p.curTok.Literal)
			p.synchronize()
			return nil
		}
	}
	return &ast.IfStmt{TokPos: pos, Condition: cond, Then: then, Else: elseBranch}
}

// parseWhileStmt parses `while` expression block.
func (p *Parser) parseWhileStmt() ast.Statement {
	pos := p.curTok.Pos
	p.nextToken() // consume 'while'

	cond := p.parseExpr()
	if cond == nil {
		p.synchronize()
		return nil
	}
	if !p.curIs(token.LBRACE) {
		p.errorf("expected '{', got %s (%q)", p.curTok.Type, p.curTok.Literal)
		p.synchronize()
		return nil
	}
	body := p.parseBlock()
	return &ast.WhileStmt{TokPos: pos, Condition: cond, Body: body}
}

// parseForStmt parses `for` [simple-stmt] `;` [expression] `;`
// [simple-stmt-no-semicolon] block. Each of the three clauses is
// independently optional.
func (p *Parser) parseForStmt() ast.Statement {
	pos := p.curTok.Pos
	p.nextToken() // consume 'for'

	var init ast.Statement
	if p.curIs(token.SEMICOLON) {
		p.nextToken() // consume the bare separator: no init clause
	} else {
		init = p.parseSimpleStmt(true) // consumes its own trailing ';'
		if init == nil {
			p.synchronize()
			return nil
		}
	}

	var cond ast.Expression
	if !p.curIs(token.SEMICOLON) {
		cond = p.parseExpr()
		if cond == nil {
			p.synchronize()
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON); !ok {
		p.synchronize()
		return nil
	}

	var post ast.Statement
	if !p.curIs(token.LBRACE) {
		post = p.parseSimpleStmt(false)
		if post == nil {
			p.synchronize()
			return nil
		}
	}
	if !p.curIs(token.LBRACE) {
		p.errorf("expected '{', got %s (%q)", p.curTok.Type, p.curTok.Literal)
		p.synchronize()
		return nil
	}
	body := p.parseBlock()
	return &ast.ForStmt{TokPos: pos, Init: init, Condition: cond, Post: post, Body: body}
}

// parseReturnStmt parses `return` [expression] `;`.
func (p *Parser) parseReturnStmt() ast.Statement {
	pos := p.curTok.Pos
	p.nextToken() // consume 'return'

	var value ast.Expression
	if !p.curIs(token.SEMICOLON) {
		value = p.parseExpr()
		if value == nil {
			p.synchronize()
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON); !ok {
		p.synchronize()
		return nil
	}
	return &ast.ReturnStmt{TokPos: pos, Value: value}
}
