// Package types implements the Stoc type system: basic types and
// function signatures.
package types

import "strings"

// Kind enumerates the basic type kinds. Void and Invalid are internal
// only: no surface syntax names them.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	String
	// Void is the implicit result type of a function with no declared
	// return type.
	Void
	// Invalid is an internal poison value used to suppress cascaded
	// diagnostics once one error has already been reported for an
	// expression.
	Invalid
)

var kindNames = [...]string{
	Bool:    "bool",
	Int:     "int",
	Float:   "float",
	String:  "string",
	Void:    "void",
	Invalid: "invalid",
}

func (k Kind) String() string { return kindNames[k] }

// Type is implemented by BasicType and *FunctionType.
type Type interface {
	// Name is the canonical type name, used for mangling and
	// diagnostics.
	Name() string
	// Equals reports structural equality. Invalid is never equal to
	// anything, including itself.
	Equals(other Type) bool
	String() string
}

// BasicType is one of the primitive kinds.
type BasicType struct {
	Kind Kind
}

var (
	BOOL    = BasicType{Kind: Bool}
	INT     = BasicType{Kind: Int}
	FLOAT   = BasicType{Kind: Float}
	STRING  = BasicType{Kind: String}
	VOID    = BasicType{Kind: Void}
	INVALID = BasicType{Kind: Invalid}
)

func (b BasicType) Name() string   { return b.Kind.String() }
func (b BasicType) String() string { return b.Kind.String() }

// Equals implements Type.
func (b BasicType) Equals(other Type) bool {
	if b.Kind == Invalid {
		return false
	}
	o, ok := other.(BasicType)
	if !ok {
		return false
	}
	if o.Kind == Invalid {
		return false
	}
	return b.Kind == o.Kind
}

// IsNumeric reports whether b is int or float.
func (b BasicType) IsNumeric() bool { return b.Kind == Int || b.Kind == Float }

// IsString reports whether b is string.
func (b BasicType) IsString() bool { return b.Kind == String }

// IsBoolean reports whether b is bool.
func (b BasicType) IsBoolean() bool { return b.Kind == Bool }

// IsComparable reports whether == and != are defined for b (numeric,
// string or boolean).
func (b BasicType) IsComparable() bool { return b.IsNumeric() || b.IsString() || b.IsBoolean() }

// IsOrdered reports whether <, >, <=, >= are defined for b. Strings are
// deliberately excluded: only equality is defined on them.
func (b BasicType) IsOrdered() bool { return b.IsNumeric() }

// FunctionType is the signature type: an ordered parameter-type list and
// a result type (void if the function declares none).
type FunctionType struct {
	Params []Type
	Result Type
}

func NewFunctionType(params []Type, result Type) *FunctionType {
	return &FunctionType{Params: params, Result: result}
}

func (f *FunctionType) Name() string {
	var sb strings.Builder
	sb.WriteString("func(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name())
	}
	sb.WriteString(") ")
	sb.WriteString(f.Result.Name())
	return sb.String()
}

func (f *FunctionType) String() string { return f.Name() }

// Equals implements Type: same arity, pairwise-equal parameter types,
// equal result type.
func (f *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || o == nil {
		return false
	}
	if len(f.Params) != len(o.Params) {
		return false
	}
	for i, p := range f.Params {
		if !p.Equals(o.Params[i]) {
			return false
		}
	}
	return f.Result.Equals(o.Result)
}

// ParamsEqual reports whether two parameter-type lists are pairwise
// equal (ignoring result type) — the criterion overload resolution and
// overload-set insertion both use.
func ParamsEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// FromName maps the surface-syntax type keyword to its BasicType.
func FromName(name string) (BasicType, bool) {
	switch name {
	case "bool":
		return BOOL, true
	case "int":
		return INT, true
	case "float":
		return FLOAT, true
	case "string":
		return STRING, true
	default:
		return INVALID, false
	}
}
