package semantic

import (
	"github.com/stoclang/stoc/internal/types"
	"github.com/stoclang/stoc/pkg/ast"
)

// builtinNames is the pre-registered set of names codegen routes to its
// own lowering path rather than an emitted call.
var builtinNames = map[string]bool{"print": true, "println": true}

// IsBuiltin reports whether name is a pre-seeded built-in function.
func IsBuiltin(name string) bool { return builtinNames[name] }

// seedBuiltins pre-registers one print/println overload per basic type
// in the global scope, mirroring how a user-written overload set would
// be registered: each overload accepts exactly one argument, result
// type void.
func seedBuiltins(funcs *funcTable) {
	for name := range builtinNames {
		for _, t := range []types.Type{types.BOOL, types.INT, types.FLOAT, types.STRING} {
			sig := types.NewFunctionType([]types.Type{t}, types.VOID)
			decl := &ast.FuncDecl{
				Name:    &ast.Identifier{Name: name},
				Sig:     sig,
				Mangled: mangle(name, sig.Params, sig.Result),
				Builtin: true,
			}
			funcs.add(decl)
		}
	}
}
