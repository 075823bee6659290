package parser

import (
	"github.com/stoclang/stoc/pkg/ast"
	"github.com/stoclang/stoc/pkg/token"
)

// parseTypeAnnotation consumes one of the four type keywords.
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	switch p.curTok.Type {
	case token.BOOL_TYPE, token.INT_TYPE, token.FLOAT_TYPE, token.STRING_TYPE:
		tok := p.curTok
		p.nextToken()
		return &ast.TypeAnnotation{Token: tok}
	default:
		p.errorf("expected a type, got %s (%q)", p.curTok.Type, p.curTok.Literal)
		return nil
	}
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	if !p.curIs(token.IDENT) {
		p.errorf("expected an identifier, got %s (%q)", p.curTok.Type, p.curTok.Literal)
		return nil
	}
	id := &ast.Identifier{Token: p.curTok, Name: p.curTok.Literal}
	p.nextToken()
	return id
}

// parseVarDecl parses `var` type identifier `=` expression, with the
// trailing `;` consumed only when requireSemicolon is set — a `for`
// loop's init clause still ends with a semicolon (it is what separates
// init from the condition), but the name stays accurate to the general
// simple-statement parameterization that a `for` post clause uses. On
// failure it synchronizes and returns nil; the caller never sees a
// partially built node.
func (p *Parser) parseVarDecl(topLevel, requireSemicolon bool) ast.Declaration {
	pos := p.curTok.Pos
	p.nextToken() // consume 'var'

	typ := p.parseTypeAnnotation()
	name := p.parseIdentifier()
	if typ == nil || name == nil {
		p.synchronize()
		return nil
	}
	if _, ok := p.expect(token.ASSIGN); !ok {
		p.synchronize()
		return nil
	}
	value := p.parseExpr()
	if value == nil {
		p.synchronize()
		return nil
	}
	if requireSemicolon {
		if _, ok := p.expect(token.SEMICOLON); !ok {
			p.synchronize()
			return nil
		}
	}
	return &ast.VarDecl{TokPos: pos, Type: typ, Name: name, Value: value, TopLevel: topLevel}
}

// parseConstDecl parses `const` type identifier `=` expression `;`.
func (p *Parser) parseConstDecl(topLevel, requireSemicolon bool) ast.Declaration {
	pos := p.curTok.Pos
	p.nextToken() // consume 'const'

	typ := p.parseTypeAnnotation()
	name := p.parseIdentifier()
	if typ == nil || name == nil {
		p.synchronize()
		return nil
	}
	if _, ok := p.expect(token.ASSIGN); !ok {
		p.synchronize()
		return nil
	}
	value := p.parseExpr()
	if value == nil {
		p.synchronize()
		return nil
	}
	if !requireSemicolon {
		return &ast.ConstDecl{TokPos: pos, Type: typ, Name: name, Value: value, TopLevel: topLevel}
	}
	if _, ok := p.expect(token.SEMICOLON); !ok {
		p.synchronize()
		return nil
	}
	return &ast.ConstDecl{TokPos: pos, Type: typ, Name: name, Value: value, TopLevel: topLevel}
}

// parseParamList parses a comma-separated list of `var` type identifier
// parameters between already-consumed parentheses.
func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	if p.curIs(token.RPAREN) {
		return params
	}
	for {
		param := p.parseParam()
		if param == nil {
			p.synchronize()
			return params
		}
		params = append(params, param)
		if !p.curIs(token.COMMA) {
			break
		}
		p.nextToken() // consume ','
	}
	return params
}

func (p *Parser) parseParam() *ast.Param {
	if !p.curIs(token.VAR) {
		p.errorf("expected 'var', got %s (%q)", p.curTok.Type, p.curTok.Literal)
		return nil
	}
	pos := p.curTok.Pos
	p.nextToken() // consume 'var'

	typ := p.parseTypeAnnotation()
	name := p.parseIdentifier()
	if typ == nil || name == nil {
		return nil
	}
	return &ast.Param{TokPos: pos, Type: typ, Name: name}
}

// parseFuncDecl parses `func` identifier `(` param-list `)` [ type ]
// block.
func (p *Parser) parseFuncDecl() ast.Declaration {
	pos := p.curTok.Pos
	p.nextToken() // consume 'func'

	name := p.parseIdentifier()
	if name == nil {
		p.synchronize()
		return nil
	}
	if _, ok := p.expect(token.LPAREN); !ok {
		p.synchronize()
		return nil
	}
	params := p.parseParamList()
	if _, ok := p.expect(token.RPAREN); !ok {
		p.synchronize()
		return nil
	}

	var returnType *ast.TypeAnnotation
	switch p.curTok.Type {
	case token.BOOL_TYPE, token.INT_TYPE, token.FLOAT_TYPE, token.STRING_TYPE:
		returnType = p.parseTypeAnnotation()
	}

	if !p.curIs(token.LBRACE) {
		p.errorf("expected '{', got %s (%q)", p.curTok.Type, p.curTok.Literal)
		p.synchronize()
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.FuncDecl{TokPos: pos, Name: name, Params: params, ReturnType: returnType, Body: body}
}
