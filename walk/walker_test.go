package walk

import (
	"bytes"
	"strings"
	"testing"

	"just/logging"
	"just/sem"
	"just/syntax"
	"just/value"
)

// check parses and walks src, failing the test if it does not parse.
func check(t *testing.T, src string) []*Diagnostic {
	t.Helper()

	f, err := syntax.Parse("test.just", src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	return Check(f, src, nil)
}

func TestCleanProgram(t *testing.T) {
	src := `program Clean {
	int counter = 0;
	boolean enabled;
	counter = counter + 1;

	int twice(int n) {
		int result = n * 2;
		return result;
	}

	void main() {
		int a = twice(counter);
		float f = 1.5;
		while (a > 0 && enabled) {
			int a = 3;
			a = a - 1;
		}
		if (later(a)) {
			a = 0;
		} else {
			boolean enabled = false;
		}
		return;
	}

	boolean later(int x) {
		return x == 1;
	}
}`

	if diags := check(t, src); len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
		line    int
	}{
		{"global redeclared", "int a;\nint a;", "`a` is already declared in this scope (at line 2)", 3},
		{"function redeclared", "void f() {}\nint f;", "`f` is already declared", 3},
		{"local redeclares parameter", "void f(int a) {\nint a;\n}", "`a` is already declared", 3},
		{"duplicate parameter", "void f(int a, float a) {}", "`a` is already declared", 2},
		{"undeclared assignment", "void f() {\nx = 1;\n}", "undeclared name: `x`", 3},
		{"undeclared in expression", "int a = b + 1;", "undeclared name: `b`", 2},
		{"undeclared function", "int a = g();", "undeclared name: `g`", 2},
		{"own initializer", "void f() {\nint a = a;\n}", "undeclared name: `a`", 3},
		{"out of scope", "void f() {\nif (true) { int a = 1; }\na = 2;\n}", "undeclared name: `a`", 4},
		{"call a variable", "int a;\nvoid f() {\nint b = a();\n}", "`a` is not a function", 4},
		{"function as value", "int g() { return 1; }\nint x = g;", "function `g` cannot be used as a value", 3},
		{"assign to function", "void g() {}\ng = 1;", "cannot assign to function `g`", 3},
		{"wrong arity", "int g(int a) { return a; }\nint x = g(1, 2);", "function `g` expects 1 argument(s) but got 2", 3},
		{"value from void function", "void f() {\nreturn 1;\n}", "void function `f` cannot return a value", 3},
		{"no value from int function", "int f() {\nreturn;\n}", "function `f` must return a value of kind int", 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			diags := check(t, "program P {\n"+test.body+"\n}")
			if len(diags) != 1 {
				t.Fatalf("expected exactly one diagnostic, got %v", diags)
			}

			d := diags[0]
			if !d.IsError {
				t.Errorf("expected an error, got a warning: %s", d.Message)
			}

			if !strings.HasPrefix(d.Message, test.message) {
				t.Errorf("got %q, want prefix %q", d.Message, test.message)
			}

			if d.Position.StartLn != test.line {
				t.Errorf("reported at line %d, want %d", d.Position.StartLn, test.line)
			}
		})
	}
}

func TestUseBeforeAssignmentIsWarning(t *testing.T) {
	diags := check(t, "program P {\nvoid f() {\nint a;\nint b = a;\na = b;\nint c = a;\n}\n}")

	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", diags)
	}

	if diags[0].IsError || HasErrors(diags) {
		t.Error("use before assignment should only be a warning")
	}

	if diags[0].Position.StartLn != 4 {
		t.Errorf("reported at line %d, want 4", diags[0].Position.StartLn)
	}
}

func TestDiagnosticsAreLogged(t *testing.T) {
	src := "program P {\nvoid f() {\nx = y;\n}\n}"
	f, err := syntax.Parse("test.just", src)
	if err != nil {
		t.Fatal(err)
	}

	buff := &bytes.Buffer{}
	logger := logging.NewLogger(buff, logging.LogLevelError)
	diags := Check(f, src, logger)

	if len(diags) != 2 || logger.ErrorCount() != 2 {
		t.Fatalf("expected 2 errors, got %d diagnostics and %d logged", len(diags), logger.ErrorCount())
	}

	out := buff.String()
	if !strings.Contains(out, "undeclared name: `y`") || !strings.Contains(out, "test.just") {
		t.Errorf("unexpected log output:\n%s", out)
	}

	if diags[0].Error() != "3:5: undeclared name: `y`" {
		t.Errorf("got %q", diags[0].Error())
	}
}

func TestSymbolSlots(t *testing.T) {
	src := "program P {\nint g = 4;\nvoid f(int a) {\nint b = 2;\n}\n}"
	f, err := syntax.Parse("", src)
	if err != nil {
		t.Fatal(err)
	}

	w := NewWalker(f, src, nil)
	if diags := w.Walk(); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if w.table.Depth() != 0 {
		t.Errorf("walk left %d scopes on the table", w.table.Depth())
	}
}

func TestUnbalancedScopesAreFatal(t *testing.T) {
	src := "program P {\n}"
	f, err := syntax.Parse("unbalanced.just", src)
	if err != nil {
		t.Fatal(err)
	}

	buff := &bytes.Buffer{}
	logger := logging.NewLogger(buff, logging.LogLevelError)
	w := NewWalker(f, src, logger)
	if diags := w.Walk(); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	// the program scope is gone once the walk is over
	w.popScope()
	w.define(sem.NewVariable("z", value.Int{}, nil))

	if len(w.diagnostics) != 2 || !HasErrors(w.diagnostics) {
		t.Fatalf("expected 2 errors, got %v", w.diagnostics)
	}

	if logger.ErrorCount() != 2 {
		t.Errorf("expected 2 logged errors, got %d", logger.ErrorCount())
	}

	if msg := w.diagnostics[0].Error(); !strings.Contains(msg, sem.ErrNoScope.Error()) || !strings.Contains(msg, "unbalanced.just") {
		t.Errorf("unexpected message %q", msg)
	}
}
