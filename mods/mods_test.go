package mods

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"just/common"
	"just/logging"
)

func writeModFile(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestInitAndLoadModule(t *testing.T) {
	dir := t.TempDir()
	if err := InitModule("demo", dir); err != nil {
		t.Fatal(err)
	}

	logger := logging.Silent()
	mod, prof, err := LoadModule(dir, "", logger)
	if err != nil {
		t.Fatal(err)
	}

	if mod.Name != "demo" || mod.Indent != "\t" || mod.Version != common.JustVersion {
		t.Errorf("unexpected module: %+v", mod)
	}

	if len(mod.SourceDirs) != 1 || mod.SourceDirs[0] != dir {
		t.Errorf("expected the module root as the only source directory, got %v", mod.SourceDirs)
	}

	if prof.Name != "debug" || prof.OutputFormat != FormatJust {
		t.Errorf("expected the debug profile, got %+v", prof)
	}

	if prof.OutputPath != filepath.Join(dir, "out", "demo.just") {
		t.Errorf("unexpected output path: %s", prof.OutputPath)
	}

	if logger.WarningCount() != 0 {
		t.Errorf("expected no warnings, got %d", logger.WarningCount())
	}

	_, prof, err = LoadModule(dir, "release", nil)
	if err != nil {
		t.Fatal(err)
	}

	if prof.Name != "release" || FormatName(prof.OutputFormat) != "llvm" {
		t.Errorf("expected the release profile, got %+v", prof)
	}

	if _, _, err := LoadModule(dir, "nightly", nil); err == nil {
		t.Error("expected an error selecting a missing profile")
	}
}

func TestInitModuleErrors(t *testing.T) {
	dir := t.TempDir()
	if err := InitModule("1demo", dir); err == nil {
		t.Error("expected an invalid name error")
	}

	if err := InitModule("demo", dir); err != nil {
		t.Fatal(err)
	}

	if err := InitModule("demo", dir); err == nil {
		t.Error("expected an error initializing a module twice")
	}
}

func TestLoadModuleConfig(t *testing.T) {
	tests := []struct {
		Name    string
		Content string
		Err     string
		Indent  string
		Output  string
	}{
		{
			Name:    "spaces",
			Content: "[module]\nname = \"m\"\njust-version = \"" + common.JustVersion + "\"\nindent = \"4\"\n\n[[module.profiles]]\nname = \"p\"\noutput = \"m.ll\"\nformat = \"llvm\"\ndefault = true\n",
			Indent:  "    ",
			Output:  "m.ll",
		},
		{
			Name:    "primary",
			Content: "[module]\nname = \"m\"\njust-version = \"" + common.JustVersion + "\"\n\n[[module.profiles]]\nname = \"a\"\noutput = \"a.just\"\nformat = \"just\"\ndefault = true\n\n[[module.profiles]]\nname = \"b\"\noutput = \"b.just\"\nformat = \"just\"\ndefault = true\nprimary = true\n",
			Indent:  "\t",
			Output:  "b.just",
		},
		{
			Name:    "bad-indent",
			Content: "[module]\nname = \"m\"\nindent = \"wide\"\n",
			Err:     "invalid indentation",
		},
		{
			Name:    "no-name",
			Content: "[module]\njust-version = \"0.1.0\"\n",
			Err:     "missing module name",
		},
		{
			Name:    "no-module",
			Content: "name = \"m\"\n",
			Err:     "missing module table",
		},
		{
			Name:    "no-profiles",
			Content: "[module]\nname = \"m\"\n",
			Err:     "at least one build profile",
		},
		{
			Name:    "no-default",
			Content: "[module]\nname = \"m\"\n\n[[module.profiles]]\nname = \"p\"\noutput = \"m.ll\"\nformat = \"llvm\"\n",
			Err:     "does not specify a default profile",
		},
		{
			Name:    "bad-format",
			Content: "[module]\nname = \"m\"\n\n[[module.profiles]]\nname = \"p\"\noutput = \"m.exe\"\nformat = \"bin\"\ndefault = true\n",
			Err:     "not a valid output format",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			dir := t.TempDir()
			writeModFile(t, dir, test.Content)

			mod, prof, err := LoadModule(dir, "", nil)
			if test.Err != "" {
				if err == nil || !strings.Contains(err.Error(), test.Err) {
					t.Fatalf("expected an error containing %q, got %v", test.Err, err)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if mod.Indent != test.Indent {
				t.Errorf("expected indent %q, got %q", test.Indent, mod.Indent)
			}

			if prof.OutputPath != filepath.Join(dir, test.Output) {
				t.Errorf("expected output %s, got %s", test.Output, prof.OutputPath)
			}
		})
	}
}

func TestVersionMismatchWarning(t *testing.T) {
	dir := t.TempDir()
	writeModFile(t, dir, "[module]\nname = \"m\"\njust-version = \"0.0.1\"\n\n[[module.profiles]]\nname = \"p\"\noutput = \"m.ll\"\nformat = \"llvm\"\ndefault = true\n")

	logger := logging.Silent()
	if _, _, err := LoadModule(dir, "", logger); err != nil {
		t.Fatal(err)
	}

	if logger.WarningCount() != 1 {
		t.Errorf("expected a version warning, got %d warnings", logger.WarningCount())
	}
}

func TestFindModule(t *testing.T) {
	root := t.TempDir()
	if err := InitModule("demo", root); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, ok := FindModule(nested)
	if !ok {
		t.Fatal("expected to find the module")
	}

	// TempDir may sit behind a symlink so only the module itself is compared
	if filepath.Base(found) != filepath.Base(root) {
		t.Errorf("expected %s, got %s", root, found)
	}

	if _, ok := FindModule(t.TempDir()); ok {
		t.Error("expected no module outside of a module directory")
	}
}

func TestSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeModFile(t, root, "[module]\nname = \"m\"\nsource-dirs = [\"src\"]\n\n[[module.profiles]]\nname = \"p\"\noutput = \"m.ll\"\nformat = \"llvm\"\ndefault = true\n")

	src := filepath.Join(root, "src", "nested")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"src/b.just", "src/nested/a.just", "src/notes.txt", "outside.just"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("program P {\n}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	mod, _, err := LoadModule(root, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	files, err := mod.SourceFiles()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{filepath.Join(root, "src", "b.just"), filepath.Join(root, "src", "nested", "a.just")}
	if len(files) != len(want) || files[0] != want[0] || files[1] != want[1] {
		t.Errorf("expected %v, got %v", want, files)
	}
}
