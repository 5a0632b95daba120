package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slrc/pkg/compiler"
	"slrc/pkg/cpu"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// hasLine reports whether some line of out has exactly the given fields.
func hasLine(out string, fields ...string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.Join(strings.Fields(line), " ") == strings.Join(fields, " ") {
			return true
		}
	}
	return false
}

func TestBuildFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.slr", "int x; x = 10;")
	b := writeSource(t, dir, "b.slr", "char c; c = 65;")
	out := filepath.Join(dir, "out")

	var report bytes.Buffer
	if err := buildFiles(&report, []string{a, b}, buildConfig{outDir: out, jobs: 2, symbols: true}); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(out, "a.asm"))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := compiler.Compile("int x; x = 10;")
	if string(got) != want {
		t.Errorf("a.asm:\n%s\nwant:\n%s", got, want)
	}
	if _, err := os.Stat(filepath.Join(out, "b.asm")); err != nil {
		t.Errorf("b.asm: %v", err)
	}

	text := report.String()
	if strings.Index(text, "a.slr") > strings.Index(text, "b.slr") {
		t.Errorf("report not in argument order:\n%s", text)
	}
	if !strings.Contains(text, "Label: var_c (Type: CHAR, Size: 1)") {
		t.Errorf("symbol table missing from report:\n%s", text)
	}
}

func TestBuildBesideSource(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "prog.slr", "int x;")
	if err := buildFiles(&bytes.Buffer{}, []string{src}, buildConfig{}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "prog.asm")); err != nil {
		t.Errorf("prog.asm: %v", err)
	}
}

func TestBuildReportsFailingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.slr", "int x;")
	bad := writeSource(t, dir, "bad.slr", "int x; int x;")

	err := buildFiles(&bytes.Buffer{}, []string{good, bad}, buildConfig{jobs: 1})
	if !errors.Is(err, compiler.ErrRedeclared) {
		t.Fatalf("expected redeclaration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad.slr") {
		t.Errorf("error should name the file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.asm")); !os.IsNotExist(err) {
		t.Errorf("bad.asm should not exist: %v", err)
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "run.slr", `
int x;
int y;
char c;
x = 6 * 7;
if (x > 40) { y = x - 2; }
c = 0 - 3;
`)
	var out bytes.Buffer
	if err := runFile(&out, src, 1000); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	for _, want := range [][]string{
		{"x", "INT", "=", "42"},
		{"y", "INT", "=", "40"},
		{"c", "CHAR", "=", "-3"},
	} {
		if !hasLine(text, want...) {
			t.Errorf("missing %v in:\n%s", want, text)
		}
	}
}

func TestRunStepLimit(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "long.slr", "int x; x = 1; x = 2; x = 3;")
	err := runFile(&bytes.Buffer{}, src, 3)
	if !errors.Is(err, cpu.ErrStepLimit) {
		t.Fatalf("expected step limit, got %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	if err := runFile(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.slr"), 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestPrintTokens(t *testing.T) {
	var out bytes.Buffer
	if err := printTokens(&out, "int x;\nelse"); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	if !hasLine(text, "1:5", "IDENTIFIER", `"x"`, "id") {
		t.Errorf("identifier row missing:\n%s", text)
	}
	if !hasLine(text, "2:1", "ELSE", `"else"`, "-") {
		t.Errorf("unmapped row missing:\n%s", text)
	}
}

func TestTablesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"tables"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Productions:\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSetupTracingRejectsUnknownLevel(t *testing.T) {
	if err := setupTracing(""); err != nil {
		t.Errorf("empty level: %v", err)
	}
	if err := setupTracing("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
