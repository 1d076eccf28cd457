package dsl_test

import (
	"strings"
	"testing"

	"just/ast"
	"just/dsl"
	"just/syntax"
	"just/value"
)

// mustValidate renders the program described by body and checks that the
// grammar accepts it.
func mustValidate(t *testing.T, name string, body func(p *dsl.ProgramBuilder)) string {
	t.Helper()

	src, err := dsl.Program(name, body)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if err := syntax.Validate(src); err != nil {
		t.Fatalf("rendered program rejected: %v\n%s", err, src)
	}

	return src
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		body func(p *dsl.ProgramBuilder)
	}{
		{"empty program", nil},
		{"functions of every kind", func(p *dsl.ProgramBuilder) {
			p.Function(value.Void{}, "main", nil)
			p.Function(value.Boolean{}, "funBool", nil)
			p.Function(value.Int{}, "funInt", nil)
			p.Function(value.Float{}, "funFloat", func(f *dsl.FunctionBuilder) {
				f.Return(value.FloatLit(0.5))
			})
		}},
		{"declaration", func(p *dsl.ProgramBuilder) {
			p.Declare(value.Int{}, "a", nil)
		}},
		{"declaration with assignment", func(p *dsl.ProgramBuilder) {
			p.Declare(value.Boolean{}, "a", value.True)
		}},
		{"split declaration and assignment", func(p *dsl.ProgramBuilder) {
			v := p.Declare(value.Int{}, "a", nil)
			p.Assign(v, value.IntLit(12))
		}},
		{"code in functions", func(p *dsl.ProgramBuilder) {
			p.Function(value.Void{}, "", func(f *dsl.FunctionBuilder) {
				v := f.Declare(value.Int{}, "v1", value.IntLit(47))
				f.Assign(v, value.IntLit(4711))
			})
		}},
		{"negative and fractional literals", func(p *dsl.ProgramBuilder) {
			p.Declare(value.Int{}, "i", value.IntLit(-3))
			p.Declare(value.Float{}, "f", value.FloatLit(-2.25))
			p.Declare(value.Float{}, "g", value.FloatLit(1e21))
		}},
		{"function with params", func(p *dsl.ProgramBuilder) {
			p.Function(value.Int{}, "add", func(f *dsl.FunctionBuilder) {
				a := f.Param(value.Int{}, "a")
				f.Param(value.Int{}, "b")
				f.Param(value.Boolean{}, "c")
				f.ReturnVar(a)
			})
		}},
		{"while loops", func(p *dsl.ProgramBuilder) {
			p.Function(value.Void{}, "", func(f *dsl.FunctionBuilder) {
				cond := f.Declare(value.Boolean{}, "isEnabled", value.False)
				f.While(cond.Name(), func(b *dsl.BlockBuilder) {
					b.Declare(value.Boolean{}, "", nil)
				})
				f.While("true", func(b *dsl.BlockBuilder) {
					b.Declare(value.Int{}, "", nil)
				})
				f.While("true || false && true", func(b *dsl.BlockBuilder) {
					b.Declare(value.Int{}, "", nil)
				})
				f.While(cond.Name()+" && "+cond.Name()+" || false", nil)
			})
		}},
		{"if blocks", func(p *dsl.ProgramBuilder) {
			p.Function(value.Int{}, "sign", func(f *dsl.FunctionBuilder) {
				n := f.Param(value.Int{}, "n")
				f.If("n < 0", func(b *dsl.BlockBuilder) {
					b.Return(value.IntLit(-1))
				}).Else(func(b *dsl.BlockBuilder) {
					b.If("n == 0", func(b *dsl.BlockBuilder) {
						b.Return(value.IntLit(0))
					})
				})
				f.If("!(n > 10)", nil)
				f.ReturnVar(n)
			})
		}},
		{"nested blocks", func(p *dsl.ProgramBuilder) {
			p.Function(value.Void{}, "deep", func(f *dsl.FunctionBuilder) {
				f.While("true", func(b *dsl.BlockBuilder) {
					b.If("false", func(b *dsl.BlockBuilder) {
						b.While("1 + 2 * 3 >= 4 % 5", func(b *dsl.BlockBuilder) {
							b.Return(nil)
						})
					}).Else(nil)
				})
			})
		}},
		{"raw fragments", func(p *dsl.ProgramBuilder) {
			p.Raw("int fromRaw = 3;")
			p.Function(value.Void{}, "f", func(f *dsl.FunctionBuilder) {
				f.Raw("fromRaw = fromRaw - 1; // comment")
			})
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mustValidate(t, "ATest", test.body)
		})
	}
}

func TestWhileConditionIsVerbatim(t *testing.T) {
	src := mustValidate(t, "ATest", func(p *dsl.ProgramBuilder) {
		p.Function(value.Void{}, "", func(f *dsl.FunctionBuilder) {
			cond := f.Declare(value.Boolean{}, "isEnabled", value.False)
			f.While(cond.Name()+" && "+cond.Name()+" || false", nil)
		})
	})

	if !strings.Contains(src, "while (isEnabled && isEnabled || false) {") {
		t.Errorf("condition was not emitted verbatim:\n%s", src)
	}
}

func TestFunctionInsideFunctionIsRejected(t *testing.T) {
	src, err := dsl.Program("", func(p *dsl.ProgramBuilder) {
		p.Function(value.Void{}, "", func(f *dsl.FunctionBuilder) {
			f.Raw(ast.NewFunction("insideFuncFunc", value.Void{}).Render(1))
		})
	})

	if err != nil {
		t.Fatal(err)
	}

	err = syntax.Validate(src)
	if err == nil {
		t.Fatalf("expected the grammar to reject:\n%s", src)
	}

	want := `Encountered " "void" "void "" at line 3, column 3.`
	if !strings.HasPrefix(err.Error(), want) {
		t.Errorf("got %q, want prefix %q", err.Error(), want)
	}
}

func TestEmptyTextIsRejected(t *testing.T) {
	err := syntax.Validate("")
	if err == nil || !strings.HasPrefix(err.Error(), `Encountered "<EOF>" at line 0, column 0.`) {
		t.Errorf("unexpected result %v", err)
	}
}
