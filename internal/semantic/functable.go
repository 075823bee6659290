package semantic

import (
	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
)

// funcTable holds every function declared at global scope, grouped by
// name into overload sets. Functions are the only Stoc declaration that
// may be overloaded.
type funcTable struct {
	byName map[string][]*ast.FuncDecl
}

func newFuncTable() *funcTable {
	return &funcTable{byName: make(map[string][]*ast.FuncDecl)}
}

// add registers decl, reporting false if its parameter-type list
// collides with an existing overload of the same name: overloads bound
// to the same name must have pairwise distinct parameter-type lists.
func (t *funcTable) add(decl *ast.FuncDecl) bool {
	for _, existing := range t.byName[decl.Name.Name] {
		if types.ParamsEqual(existing.Sig.Params, decl.Sig.Params) {
			return false
		}
	}
	t.byName[decl.Name.Name] = append(t.byName[decl.Name.Name], decl)
	return true
}

// lookup returns every overload registered under name.
func (t *funcTable) lookup(name string) []*ast.FuncDecl {
	return t.byName[name]
}

// resolve selects the unique overload whose parameter-type list equals
// argTypes pairwise, including arity. ok is false if zero or more than
// one candidate matches — both cases are "undefined reference" to the
// caller, since Stoc allows no implicit conversions that could make an
// ambiguous match meaningful.
func (t *funcTable) resolve(name string, argTypes []types.Type) (*ast.FuncDecl, bool) {
	var match *ast.FuncDecl
	for _, candidate := range t.byName[name] {
		if types.ParamsEqual(candidate.Sig.Params, argTypes) {
			if match != nil {
				return nil, false
			}
			match = candidate
		}
	}
	if match == nil {
		return nil, false
	}
	return match, true
}
