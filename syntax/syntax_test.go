package syntax

import (
	"errors"
	"strings"
	"testing"

	"just/value"
)

func TestLexerPositions(t *testing.T) {
	l := NewLexer(strings.NewReader("a <= 1.5 // c\n/* x */ ||"))

	want := []Token{
		{Kind: IDENTIFIER, Value: "a", Line: 1, Col: 1},
		{Kind: LTEQ, Value: "<=", Line: 1, Col: 3},
		{Kind: FLOATLIT, Value: "1.5", Line: 1, Col: 6},
		{Kind: OR, Value: "||", Line: 2, Col: 9},
		{Kind: EOF, Value: "", Line: 2, Col: 10},
	}

	for i, w := range want {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %s", i, err)
		}

		if *tok != w {
			t.Errorf("token %d = %+v, want %+v", i, *tok, w)
		}
	}
}

func TestLexerTabsCountAsOneColumn(t *testing.T) {
	l := NewLexer(strings.NewReader("\t\tvoid"))

	tok, err := l.NextToken()
	if err != nil {
		t.Fatal(err)
	}

	if tok.Kind != VOID || tok.Line != 1 || tok.Col != 3 {
		t.Errorf("got %+v", *tok)
	}
}

func TestLexicalError(t *testing.T) {
	err := Validate("program P {\n\tint a = 1 # 2;\n}")

	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("expected a lexical error, got %v", err)
	}

	if le.Line != 2 || le.Col != 12 || le.Char != '#' {
		t.Errorf("got %+v", *le)
	}

	want := `Lexical error at line 2, column 12.  Encountered: "#" (35), after : ""`
	if le.Error() != want {
		t.Errorf("got %q, want %q", le.Error(), want)
	}
}

func TestUnterminatedComment(t *testing.T) {
	var le *LexError
	if err := Validate("program P { /* never closed"); !errors.As(err, &le) {
		t.Fatalf("expected a lexical error, got %v", err)
	}

	if le.Char != -1 {
		t.Errorf("expected the error to be at the end of input, got %+v", *le)
	}
}

func TestEmptyInput(t *testing.T) {
	err := Validate("")

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a parse error, got %v", err)
	}

	want := `Encountered "<EOF>" at line 0, column 0.`
	if pe.Headline() != want {
		t.Errorf("got %q, want %q", pe.Headline(), want)
	}

	if !strings.HasPrefix(err.Error(), want) {
		t.Errorf("error message %q does not begin with %q", err.Error(), want)
	}
}

func TestFunctionInsideFunction(t *testing.T) {
	src := "program unnamedProgram {\n" +
		"\tvoid unnamedFunction() {\n" +
		"\t\tvoid insideFuncFunc() {\n" +
		"\t\t}\n" +
		"\t}\n" +
		"}"

	err := Validate(src)
	if err == nil {
		t.Fatal("expected an error")
	}

	want := `Encountered " "void" "void "" at line 3, column 3.`
	if !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got %q, want prefix %q", err.Error(), want)
	}
}

func TestSingleExpectedToken(t *testing.T) {
	err := Validate("x")
	if err == nil {
		t.Fatal("expected an error")
	}

	want := "Encountered \" <IDENTIFIER> \"x \"\" at line 1, column 1.\nWas expecting:\n    \"program\" ..."
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestMultipleExpectedTokens(t *testing.T) {
	err := Validate("program P { int a }")

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a parse error, got %v", err)
	}

	if len(pe.Expected) != 3 {
		t.Fatalf("expected 3 alternatives, got %v", pe.Expected)
	}

	if !strings.Contains(err.Error(), "Was expecting one of:\n    \"(\" ...") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestInvalidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"missing initializer",
			"program P {\n\tint a = ;\n}",
			`Encountered " ";" "; "" at line 2, column 10.`,
		},
		{
			"missing semicolon",
			"program P { int a }",
			`Encountered " "}" "} "" at line 1, column 19.`,
		},
		{
			"trailing content",
			"program P {}\nint",
			`Encountered " "int" "int "" at line 2, column 1.`,
		},
		{
			"unclosed program",
			"program P {",
			`Encountered "<EOF>" at line 1, column 11.`,
		},
		{
			"bad program name",
			"program 12 {}",
			`Encountered " <INTEGER_LITERAL> "12 "" at line 1, column 9.`,
		},
		{
			"void variable",
			"program P { void a; }",
			`Encountered " ";" "; "" at line 1, column 19.`,
		},
		{
			"void parameter",
			"program P { int f(void a) {} }",
			`Encountered " "void" "void "" at line 1, column 19.`,
		},
		{
			"trailing comma",
			"program P { int f(int a,) {} }",
			`Encountered " ")" ") "" at line 1, column 25.`,
		},
		{
			"top level if",
			"program P { if (true) {} }",
			`Encountered " "if" "if "" at line 1, column 13.`,
		},
		{
			"missing condition",
			"program P { void f() { while () {} } }",
			`Encountered " ")" ") "" at line 1, column 31.`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Validate(test.src)

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected a parse error, got %v", err)
			}

			if pe.Headline() != test.want {
				t.Errorf("got %q, want %q", pe.Headline(), test.want)
			}
		})
	}
}

const fullProgram = `program Full {
	int a = 1;
	float ratio;
	a = a + 2 * (3 - 1);

	// a comment
	float f(int x, boolean y) {
		if (y && x > 0) {
			return 1.0;
		} else {
			return -2.5e3;
		}
	}

	/* a block
	   comment */
	void main() {
		boolean done = false;
		while (!done) {
			a = a % 7;
			done = f(a, true) >= .5 || a != 3;
		}
		return;
	}
}
`

func TestParseFile(t *testing.T) {
	f, err := Parse("full.just", fullProgram)
	if err != nil {
		t.Fatal(err)
	}

	if f.Name != "Full" || f.Path != "full.just" {
		t.Errorf("unexpected header: %q %q", f.Name, f.Path)
	}

	if len(f.Decls) != 5 {
		t.Fatalf("expected 5 declarations, got %d", len(f.Decls))
	}

	fn, ok := f.Decls[3].(*FuncDecl)
	if !ok {
		t.Fatalf("expected a function, got %T", f.Decls[3])
	}

	if fn.Name != "f" || !value.Same(fn.Returns, value.Float{}) || len(fn.Params) != 2 {
		t.Errorf("unexpected function: %+v", fn)
	}

	if fn.Params[1].Name != "y" || !value.Same(fn.Params[1].Kind, value.Boolean{}) {
		t.Errorf("unexpected parameter: %+v", fn.Params[1])
	}

	ifStmt, ok := fn.Body.Stmts[0].(*If)
	if !ok || ifStmt.Else == nil {
		t.Fatalf("expected an if/else, got %T", fn.Body.Stmts[0])
	}

	if pos := fn.Position(); pos.StartLn != 7 || pos.EndLn != 13 {
		t.Errorf("unexpected function span: %+v", *pos)
	}

	main := f.Decls[4].(*FuncDecl)
	if !value.Same(main.Returns, value.Void{}) || len(main.Body.Stmts) != 3 {
		t.Errorf("unexpected main: %+v", main)
	}

	if ret := main.Body.Stmts[2].(*Return); ret.Value != nil {
		t.Errorf("expected a bare return")
	}
}

func TestParseExprPrecedence(t *testing.T) {
	e, err := ParseExpr("true || false && true")
	if err != nil {
		t.Fatal(err)
	}

	or, ok := e.(*Binary)
	if !ok || or.Op != OR {
		t.Fatalf("expected || at the root, got %#v", e)
	}

	and, ok := or.Right.(*Binary)
	if !ok || and.Op != AND {
		t.Fatalf("expected && on the right, got %#v", or.Right)
	}

	e, err = ParseExpr("1 - 2 - 3 * -x")
	if err != nil {
		t.Fatal(err)
	}

	sub := e.(*Binary)
	if sub.Op != MINUS {
		t.Fatalf("expected - at the root")
	}

	if left, ok := sub.Left.(*Binary); !ok || left.Op != MINUS {
		t.Errorf("subtraction should be left associative")
	}

	mul, ok := sub.Right.(*Binary)
	if !ok || mul.Op != STAR {
		t.Fatalf("expected * on the right")
	}

	if neg, ok := mul.Right.(*Unary); !ok || neg.Op != MINUS {
		t.Errorf("expected unary minus")
	}
}

func TestParseExprErrors(t *testing.T) {
	for _, src := range []string{"", "1 +", "(a", "f(a,", "a b", "a = 1"} {
		if _, err := ParseExpr(src); err == nil {
			t.Errorf("ParseExpr(%q) should fail", src)
		}
	}
}

func TestLitValue(t *testing.T) {
	e, err := ParseExpr("2.5")
	if err != nil {
		t.Fatal(err)
	}

	lit, err := e.(*Lit).Value()
	if err != nil {
		t.Fatal(err)
	}

	if lit != value.FloatLit(2.5) {
		t.Errorf("got %v", lit)
	}

	e, _ = ParseExpr("99999999999999999999")
	if _, err := e.(*Lit).Value(); err == nil {
		t.Error("expected an out of range error")
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"program", "boolean", "int", "float", "void", "if", "else", "while", "return", "true", "false"} {
		if !IsKeyword(kw) {
			t.Errorf("%q should be a keyword", kw)
		}
	}

	if IsKeyword("main") {
		t.Error("main is not a keyword")
	}
}

func TestDump(t *testing.T) {
	f, err := Parse("", fullProgram)
	if err != nil {
		t.Fatal(err)
	}

	out := Dump(f)
	for _, want := range []string{"program Full", "func float f", "int x", "var boolean done", "while", "call f", "||"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}
