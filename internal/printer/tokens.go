// Package printer renders the --tokens-dump and --ast-dump output
// formats. The tree-dump renderer itself lives in pkg/ast, since it
// needs access to the tree's unexported node fields; this package only
// adds the token-dump format, which needs nothing but the public
// token.Token type.
package printer

import (
	"fmt"
	"strings"

	"github.com/stoclang/stoc/pkg/token"
)

// DumpTokens renders one line per token: line, column, lexeme, kind name.
func DumpTokens(tokens []token.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		fmt.Fprintf(&sb, "%d\t%d\t%s\t%s\n", t.Pos.Line, t.Pos.Column, t.Literal, t.Type)
	}
	return sb.String()
}
