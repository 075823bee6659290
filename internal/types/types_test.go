package types

import "testing"

func TestBasicTypeEquals(t *testing.T) {
	tests := []struct {
		a, b     Type
		expected bool
		name     string
	}{
		{INT, INT, true, "int equals int"},
		{INT, FLOAT, false, "int not equals float"},
		{INVALID, INVALID, false, "invalid never equals invalid"},
		{INVALID, INT, false, "invalid never equals anything"},
		{STRING, STRING, true, "string equals string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.expected {
				t.Errorf("Equals() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	if !INT.IsNumeric() || !FLOAT.IsNumeric() {
		t.Error("int and float should be numeric")
	}
	if STRING.IsNumeric() || BOOL.IsNumeric() {
		t.Error("string and bool should not be numeric")
	}
	if !INT.IsComparable() || !STRING.IsComparable() || !BOOL.IsComparable() {
		t.Error("int, string, bool should all be comparable")
	}
	if !INT.IsOrdered() || STRING.IsOrdered() || BOOL.IsOrdered() {
		t.Error("only numeric types should be ordered")
	}
}

func TestFunctionTypeEquals(t *testing.T) {
	a := NewFunctionType([]Type{INT, INT}, INT)
	b := NewFunctionType([]Type{INT, INT}, INT)
	c := NewFunctionType([]Type{FLOAT, FLOAT}, FLOAT)
	d := NewFunctionType([]Type{INT, INT}, FLOAT)

	if !a.Equals(b) {
		t.Error("identical signatures should be equal")
	}
	if a.Equals(c) {
		t.Error("different parameter types should not be equal")
	}
	if a.Equals(d) {
		t.Error("different result types should not be equal (but see ParamsEqual)")
	}
	if !ParamsEqual(a.Params, d.Params) {
		t.Error("ParamsEqual should ignore result type")
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected BasicType
		ok       bool
	}{
		{"bool", BOOL, true},
		{"int", INT, true},
		{"float", FLOAT, true},
		{"string", STRING, true},
		{"nope", INVALID, false},
	}
	for _, tt := range tests {
		got, ok := FromName(tt.name)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("FromName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestFunctionTypeName(t *testing.T) {
	f := NewFunctionType([]Type{INT, FLOAT}, BOOL)
	want := "func(int, float) bool"
	if got := f.Name(); got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}
