package printer

import (
	"strings"
	"testing"

	"github.com/stoclang/stoc/pkg/token"
)

func TestDumpTokensOneLinePerToken(t *testing.T) {
	tokens := []token.Token{
		token.New(token.VAR, "var", token.Position{Line: 1, Column: 1}),
		token.New(token.IDENT, "x", token.Position{Line: 1, Column: 5}),
		token.New(token.EOF, "", token.Position{Line: 1, Column: 6}),
	}

	out := DumpTokens(tokens)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "var") || !strings.Contains(lines[0], "VAR") {
		t.Errorf("line 0 = %q, want lexeme and kind name", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1\t5\t") {
		t.Errorf("line 1 = %q, want to start with line and column", lines[1])
	}
}

func TestDumpTokensEmptyInputStillHasEOF(t *testing.T) {
	tokens := []token.Token{token.New(token.EOF, "", token.Position{Line: 1, Column: 1})}
	out := DumpTokens(tokens)
	if !strings.Contains(out, "EOF") {
		t.Errorf("DumpTokens(EOF only) = %q, want it to mention EOF", out)
	}
}
