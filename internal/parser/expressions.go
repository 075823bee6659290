package parser

import (
	"strconv"

	"github.com/stoclang/stoc/pkg/ast"
	"github.com/stoclang/stoc/pkg/token"
)

// Precedence levels, lowest to highest. Unary binds tighter than every
// binary operator and is handled directly by parseUnary rather than
// through this table. All six comparisons share one equality level, so
// a mix of them (e.g. `a < b == c < d`) parses left-associatively rather
// than grouping `<` tighter than `==`; parentheses are required to
// disambiguate.
const (
	lowest = iota
	orPrec
	andPrec
	equality
	term
	factor
)

var precedences = map[token.Type]int{
	token.OR:         orPrec,
	token.AND:        andPrec,
	token.EQ:         equality,
	token.NOT_EQ:     equality,
	token.LESS:       equality,
	token.GREATER:    equality,
	token.LESS_EQ:    equality,
	token.GREATER_EQ: equality,
	token.PLUS:       term,
	token.MINUS:      term,
	token.STAR:       factor,
	token.SLASH:      factor,
}

func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return lowest
}

// parseExpr is the expression entry point: parseBinary(lowest+1).
func (p *Parser) parseExpr() ast.Expression {
	return p.parseBinary(lowest + 1)
}

// parseBinary parses a unary expression, then repeatedly consumes any
// operator whose precedence is at least minPrec, recursing with
// opPrec+1 so each operator's right operand excludes operators of its
// own precedence — producing a left-associative tree.
func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for precedenceOf(p.curTok.Type) >= minPrec {
		opTok := p.curTok
		opPrec := precedenceOf(opTok.Type)
		p.nextToken()

		right := p.parseBinary(opPrec + 1)
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{Token: opTok, Operator: opTok.Literal, Left: left, Right: right}
	}
	return left
}

// parseUnary parses `+`, `-`, or `!` followed by a unary expression, or
// falls through to a primary. Unary `+` is accepted and is semantically
// the identity.
func (p *Parser) parseUnary() ast.Expression {
	switch p.curTok.Type {
	case token.PLUS, token.MINUS, token.NOT:
		opTok := p.curTok
		p.nextToken()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{Token: opTok, Operator: opTok.Literal, Operand: operand}
	default:
		return p.parsePrimary()
	}
}

// parsePrimary parses a literal, a parenthesized expression, or an
// identifier optionally followed by a call's argument list.
func (p *Parser) parsePrimary() ast.Expression {
	switch p.curTok.Type {
	case token.INT:
		return p.parseIntLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	case token.STRING:
		tok := p.curTok
		p.nextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.TRUE, token.FALSE:
		tok := p.curTok
		p.nextToken()
		return &ast.BoolLiteral{Token: tok, Value: tok.Type == token.TRUE}
	case token.NIL:
		tok := p.curTok
		p.nextToken()
		return &ast.NilLiteral{Token: tok}
	case token.LPAREN:
		p.nextToken() // consume '('
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		if _, ok := p.expect(token.RPAREN); !ok {
			return nil
		}
		return expr
	case token.IDENT:
		return p.parseIdentifierOrCall()
	default:
		p.errorf("expected an expression, got %s (%q)", p.curTok.Type, p.curTok.Literal)
		return nil
	}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.curTok
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q", tok.Literal)
		p.nextToken()
		return nil
	}
	p.nextToken()
	return &ast.IntLiteral{Token: tok, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curTok
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf("invalid float literal %q", tok.Literal)
		p.nextToken()
		return nil
	}
	p.nextToken()
	return &ast.FloatLiteral{Token: tok, Value: value}
}

// parseIdentifierOrCall parses a bare identifier, or an identifier
// followed by `(` args `)` to form a call. Arguments are comma
// separated; a trailing comma is neither required nor forbidden.
func (p *Parser) parseIdentifierOrCall() ast.Expression {
	id := p.parseIdentifier()
	if id == nil {
		return nil
	}
	if !p.curIs(token.LPAREN) {
		return id
	}

	callPos := p.curTok.Pos
	p.nextToken() // consume '('

	var args []ast.Expression
	for !p.curIs(token.RPAREN) {
		arg := p.parseExpr()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.curIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil
	}
	return &ast.CallExpr{TokPos: callPos, Callee: id, Args: args}
}
