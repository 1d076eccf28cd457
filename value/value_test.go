package value

import (
	"errors"
	"math"
	"testing"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Boolean{}, "boolean"},
		{Int{}, "int"},
		{Float{}, "float"},
		{Void{}, "void"},
	}

	seen := make(map[string]Kind)
	for _, tt := range tests {
		if got := tt.kind.Keyword(); got != tt.want {
			t.Errorf("%s.Keyword() = %q, want %q", tt.kind, got, tt.want)
		}

		if other, ok := seen[tt.kind.Keyword()]; ok {
			t.Errorf("keyword %q shared by %s and %s", tt.kind.Keyword(), other, tt.kind)
		}
		seen[tt.kind.Keyword()] = tt.kind
	}

	if len(Kinds()) != len(tests) {
		t.Errorf("Kinds() returned %d kinds, want %d", len(Kinds()), len(tests))
	}
}

func TestResolve(t *testing.T) {
	for _, k := range Kinds() {
		byKeyword, err := Resolve(k.Keyword())
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", k.Keyword(), err)
		}
		if !Same(byKeyword, k) {
			t.Errorf("Resolve(%q) = %s, want %s", k.Keyword(), byKeyword, k)
		}

		byName, err := Resolve(k.String())
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", k.String(), err)
		}
		if !Same(byName, k) {
			t.Errorf("Resolve(%q) = %s, want %s", k.String(), byName, k)
		}
	}

	_, err := Resolve("string")
	if !errors.Is(err, ErrUnrecognizedType) {
		t.Errorf("Resolve(\"string\") error = %v, want ErrUnrecognizedType", err)
	}
}

func TestSame(t *testing.T) {
	if !Same(Int{}, Int{}) {
		t.Error("Int should be the same as Int")
	}
	if Same(Int{}, Float{}) {
		t.Error("Int should not be the same as Float")
	}
	if Same(nil, Int{}) {
		t.Error("nil kind should never match")
	}
	if !IsVoid(Void{}) || IsVoid(Boolean{}) {
		t.Error("IsVoid misreports")
	}
}

func TestLiteralStrings(t *testing.T) {
	tests := []struct {
		lit  Literal
		kind Kind
		want string
	}{
		{True, Boolean{}, "true"},
		{False, Boolean{}, "false"},
		{IntLit(47), Int{}, "47"},
		{IntLit(-4711), Int{}, "-4711"},
		{FloatLit(1.5), Float{}, "1.5"},
		{FloatLit(2), Float{}, "2.0"},
		{FloatLit(0.1), Float{}, "0.1"},
		{FloatLit(-3.25), Float{}, "-3.25"},
	}

	for _, tt := range tests {
		if got := tt.lit.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if !Same(tt.lit.Kind(), tt.kind) {
			t.Errorf("%q has kind %s, want %s", tt.want, tt.lit.Kind(), tt.kind)
		}
	}
}

func TestCheckLiteral(t *testing.T) {
	if err := CheckLiteral(FloatLit(1.25)); err != nil {
		t.Errorf("finite float rejected: %v", err)
	}
	if err := CheckLiteral(FloatLit(math.Inf(1))); !errors.Is(err, ErrNonFinite) {
		t.Errorf("infinite float accepted: %v", err)
	}
	if err := CheckLiteral(FloatLit(math.NaN())); !errors.Is(err, ErrNonFinite) {
		t.Errorf("NaN accepted: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		kind    Kind
		text    string
		want    Literal
		wantErr bool
	}{
		{Boolean{}, "true", True, false},
		{Boolean{}, "false", False, false},
		{Boolean{}, "1", nil, true},
		{Int{}, "12", IntLit(12), false},
		{Int{}, "1.5", nil, true},
		{Float{}, "1.5", FloatLit(1.5), false},
		{Float{}, "3", FloatLit(3), false},
		{Float{}, "inf", nil, true},
		{Void{}, "", nil, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.kind, tt.text)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%s, %q) succeeded, want error", tt.kind, tt.text)
			}
			continue
		}

		if err != nil {
			t.Errorf("Parse(%s, %q) failed: %v", tt.kind, tt.text, err)
		} else if got != tt.want {
			t.Errorf("Parse(%s, %q) = %v, want %v", tt.kind, tt.text, got, tt.want)
		}
	}
}
