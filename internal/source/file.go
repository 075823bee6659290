// Package source holds the immutable source-buffer aggregate that every
// compiler phase reads positions out of and writes its own results into.
package source

import (
	"path/filepath"

	"github.com/stoclang/stoc/pkg/ast"
	"github.com/stoclang/stoc/pkg/token"
)

// File is populated phase by phase: New() fills path/bytes, the lexer
// fills Tokens, the parser fills Program, the analyzer decorates
// Program in place and flips HasSemanticError.
type File struct {
	Path     string
	Dir      string
	Name     string
	Bytes    []byte
	Tokens   []token.Token
	Program  *ast.Program

	HasScanError    bool
	HasParseError   bool
	HasSemanticError bool
	HasCodegenError bool
}

// New builds a File aggregate for path from contents the caller has
// already read, with phase output left empty.
func New(path string, contents []byte) *File {
	return &File{
		Path:  path,
		Dir:   filepath.Dir(path),
		Name:  filepath.Base(path),
		Bytes: contents,
	}
}

// Len returns the length of the source buffer in bytes.
func (f *File) Len() int { return len(f.Bytes) }

// Text returns the source buffer as a string. Phases borrow positions
// into this string; it is never mutated after New.
func (f *File) Text() string { return string(f.Bytes) }

// Failed reports whether any phase has recorded an error.
func (f *File) Failed() bool {
	return f.HasScanError || f.HasParseError || f.HasSemanticError || f.HasCodegenError
}
