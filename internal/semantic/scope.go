// Package semantic decorates the parsed tree with resolved types, value
// categories and declaration bindings, resolves function overloads, and
// mangles function names.
package semantic

import (
	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
)

// varSymbol is a variable, constant, or parameter binding in scope.
type varSymbol struct {
	Name     string
	Type     types.Type
	Const    bool
	Decl     ast.Declaration
}

// scope is one level of the stack-of-scopes model. A new scope is
// entered for a function body, a block, and a for loop
// (whose init clause lives in the for's own scope, not a nested block
// scope).
type scope struct {
	vars   map[string]*varSymbol
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]*varSymbol), parent: parent}
}

// define binds name in this scope, returning false if name is already
// bound here (a same-scope redefinition) — shadowing an outer scope's
// binding is allowed and is not a redefinition.
func (s *scope) define(sym *varSymbol) bool {
	if _, exists := s.vars[sym.Name]; exists {
		return false
	}
	s.vars[sym.Name] = sym
	return true
}

// resolve looks up name in this scope and every enclosing scope.
func (s *scope) resolve(name string) (*varSymbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if sym, ok := cur.vars[name]; ok {
			return sym, true
		}
	}
	return nil, false
}
