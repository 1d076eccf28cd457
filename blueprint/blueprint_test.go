package blueprint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"just/dsl"
	"just/syntax"
	"just/value"
)

const demo = `
name = "Demo"

[[globals]]
name = "counter"
kind = "int"
value = "0"

[[assigns]]
name = "counter"
value = "5"

[[functions]]
name = "step"
returns = "int"
params = [{ name = "n", kind = "int" }]

  [[functions.body]]
  op = "declare"
  name = "done"
  kind = "boolean"
  value = "false"

  [[functions.body]]
  op = "if"
  cond = "done"

    [[functions.body.then]]
    op = "assign"
    name = "n"
    value = "1"

    [[functions.body.else]]
    op = "assign"
    name = "done"
    value = "true"

  [[functions.body]]
  op = "while"
  cond = "!done"

    [[functions.body.body]]
    op = "declare"
    name = "ratio"
    kind = "float"
    value = "0.5"

  [[functions.body]]
  op = "return"
  var = "n"
`

func TestRenderBlueprint(t *testing.T) {
	bp, err := Decode([]byte(demo))
	if err != nil {
		t.Fatal(err)
	}

	src, err := bp.Render(dsl.NewSession())
	if err != nil {
		t.Fatal(err)
	}

	want := "program Demo {\n" +
		"\tint counter = 0;\n" +
		"\tcounter = 5;\n" +
		"\tint step(int n) {\n" +
		"\t\tboolean done = false;\n" +
		"\t\tif (done) {\n" +
		"\t\t\tn = 1;\n" +
		"\t\t} else {\n" +
		"\t\t\tdone = true;\n" +
		"\t\t}\n" +
		"\t\twhile (!done) {\n" +
		"\t\t\tfloat ratio = 0.5;\n" +
		"\t\t}\n" +
		"\t\treturn n;\n" +
		"\t}\n" +
		"}"

	if src != want {
		t.Errorf("got:\n%s\nwant:\n%s", src, want)
	}

	if err := syntax.Validate(src); err != nil {
		t.Errorf("rendered blueprint is invalid: %s", err)
	}
}

func TestLoadBlueprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte(demo), 0644); err != nil {
		t.Fatal(err)
	}

	bp, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if bp.Name != "Demo" || len(bp.Functions) != 1 || len(bp.Functions[0].Body) != 4 {
		t.Errorf("unexpected blueprint: %+v", bp)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error loading a missing file")
	}
}

func TestBlueprintErrors(t *testing.T) {
	tests := []struct {
		Name   string
		Src    string
		At     string
		Target error
	}{
		{
			Name:   "unknown-kind",
			Src:    "[[globals]]\nname = \"x\"\nkind = \"string\"\n",
			At:     "globals[0]",
			Target: value.ErrUnrecognizedType,
		},
		{
			Name:   "unknown-variable",
			Src:    "[[assigns]]\nname = \"x\"\nvalue = \"1\"\n",
			At:     "assigns[0]",
			Target: ErrUnknownVariable,
		},
		{
			Name:   "invalid-value",
			Src:    "[[globals]]\nname = \"x\"\nkind = \"int\"\nvalue = \"one\"\n",
			At:     "globals[0]",
			Target: ErrInvalidValue,
		},
		{
			Name:   "unknown-op",
			Src:    "[[functions]]\nname = \"f\"\n[[functions.body]]\nop = \"goto\"\n",
			At:     "functions[0].body[0]",
			Target: ErrUnknownOp,
		},
		{
			Name:   "out-of-scope",
			Src:    "[[functions]]\nname = \"f\"\n[[functions.body]]\nop = \"while\"\ncond = \"true\"\n[[functions.body.body]]\nop = \"declare\"\nname = \"x\"\nkind = \"int\"\n[[functions.body]]\nop = \"assign\"\nname = \"x\"\nvalue = \"1\"\n",
			At:     "functions[0].body[1]",
			Target: ErrUnknownVariable,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			bp, err := Decode([]byte(test.Src))
			if err != nil {
				t.Fatal(err)
			}

			_, err = bp.Build(dsl.NewSession())

			var be *Error
			if !errors.As(err, &be) {
				t.Fatalf("expected a blueprint error, got %v", err)
			}

			if be.At != test.At {
				t.Errorf("expected the error at %q, got %q", test.At, be.At)
			}

			if !errors.Is(err, test.Target) {
				t.Errorf("expected %v to wrap %v", err, test.Target)
			}
		})
	}
}

func TestBlueprintBuildError(t *testing.T) {
	src := "[[functions]]\nname = \"f\"\nreturns = \"void\"\n[[functions.body]]\nop = \"return\"\nvalue = \"1\"\n"

	bp, err := Decode([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	// void has no literals so the value is rejected before the builder
	_, err = bp.Build(dsl.NewSession())
	if err == nil {
		t.Fatal("expected an error")
	}

	src = "[[functions]]\nname = \"f\"\nreturns = \"int\"\n[[functions.body]]\nop = \"return\"\n"
	if bp, err = Decode([]byte(src)); err != nil {
		t.Fatal(err)
	}

	_, err = bp.Build(dsl.NewSession())
	if !errors.Is(err, dsl.ErrMissingValue) {
		t.Errorf("expected a missing value error, got %v", err)
	}
}

func TestRawFragments(t *testing.T) {
	bp := &Blueprint{
		Name: "Raw",
		Raw:  []string{"int extra;"},
	}

	src, err := bp.Render(dsl.NewSession())
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(src, "int extra;") {
		t.Errorf("expected the raw fragment in:\n%s", src)
	}

	if err := syntax.Validate(src); err != nil {
		t.Error(err)
	}
}

func TestInvalidTOML(t *testing.T) {
	if _, err := Decode([]byte("name = ")); err == nil {
		t.Error("expected a decoding error")
	}
}
