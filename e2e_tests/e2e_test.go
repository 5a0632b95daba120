package main

import (
	"fmt"
	"strings"
	"testing"

	"slrc/pkg/asm"
	"slrc/pkg/compiler"
	"slrc/pkg/cpu"
)

// machine is a finished run of one compiled program.
type machine struct {
	vm   *cpu.CPU
	prog *asm.Program
	res  compiler.Result
}

func compileAndRun(t *testing.T, source string, opts compiler.Options) *machine {
	t.Helper()

	// 1. Compile
	res, err := compiler.New(opts).Compile(source)
	if err != nil {
		t.Fatalf("Compilation failed: %v", err)
	}

	// 2. Assemble
	prog, err := asm.Assemble(res.Assembly)
	if err != nil {
		t.Fatalf("Assembly failed: %v\nAssembly:\n%s", err, res.Assembly)
	}

	// 3. Run
	vm := cpu.NewCPU()
	var output strings.Builder
	vm.Output = &output
	vm.LoadImage(prog.Text, prog.Data, prog.Entry)
	if err := vm.Run(100_000); err != nil {
		t.Fatalf("Run failed: %v\nAssembly:\n%s", err, res.Assembly)
	}
	if output.Len() != 0 {
		t.Errorf("unexpected program output %q", output.String())
	}
	return &machine{vm: vm, prog: prog, res: res}
}

// value reads a variable's cell the way the generated code loads it.
func (m *machine) value(t *testing.T, name string) int32 {
	t.Helper()
	for _, e := range m.res.Symbols {
		if e.Name != name {
			continue
		}
		addr, ok := m.prog.Labels[e.Label]
		if !ok {
			t.Fatalf("no label %s for %s", e.Label, name)
		}
		if e.Type.Size() == 1 {
			b, err := m.vm.Mem.Read8(addr)
			if err != nil {
				t.Fatal(err)
			}
			return int32(int8(b))
		}
		w, err := m.vm.Mem.Read32(addr)
		if err != nil {
			t.Fatal(err)
		}
		return int32(w)
	}
	t.Fatalf("variable %s not declared", name)
	return 0
}

func (m *machine) expect(t *testing.T, want map[string]int32) {
	t.Helper()
	for name, v := range want {
		if got := m.value(t, name); got != v {
			t.Errorf("%s = %d, want %d\nAssembly:\n%s", name, got, v, m.res.Assembly)
		}
	}
}

// literal spells v in the source language, which has no unary minus.
func literal(v int32) string {
	if v < 0 {
		return fmt.Sprintf("0 - %d", -v)
	}
	return fmt.Sprint(v)
}

func TestRelationalOperators(t *testing.T) {
	ops := map[string]func(a, b int32) bool{
		">":  func(a, b int32) bool { return a > b },
		"<":  func(a, b int32) bool { return a < b },
		">=": func(a, b int32) bool { return a >= b },
		"<=": func(a, b int32) bool { return a <= b },
		"==": func(a, b int32) bool { return a == b },
		"!=": func(a, b int32) bool { return a != b },
	}
	pairs := [][2]int32{{3, 5}, {5, 5}, {7, 5}, {-4, 2}, {70000, -70000}}

	for op, eval := range ops {
		for _, p := range pairs {
			t.Run(fmt.Sprintf("%d%s%d", p[0], op, p[1]), func(t *testing.T) {
				src := fmt.Sprintf(`
int a;
int b;
int hit;
a = %s;
b = %s;
if (a %s b) { hit = 1; }
`, literal(p[0]), literal(p[1]), op)
				want := int32(0)
				if eval(p[0], p[1]) {
					want = 1
				}
				compileAndRun(t, src, compiler.Options{}).expect(t, map[string]int32{
					"a": p[0], "b": p[1], "hit": want,
				})
			})
		}
	}
}

func TestArithmetic(t *testing.T) {
	m := compileAndRun(t, `
int r;
int q;
int w;
int big;
r = (12 + 70000) * 3 - 70000 / (12 - 2);
q = 0 - 7 / 2;
w = 2147483647 + 1;
big = 0 - 70000;
`, compiler.Options{})
	m.expect(t, map[string]int32{
		"r":   203036,
		"q":   -3,
		"w":   -2147483648,
		"big": -70000,
	})
}

func TestDivisionTruncatesTowardZero(t *testing.T) {
	m := compileAndRun(t, "int a; int b; a = 0 - 7; b = a / 2; a = a * a;", compiler.Options{})
	m.expect(t, map[string]int32{"a": 49, "b": -3})
}

func TestCharCells(t *testing.T) {
	m := compileAndRun(t, `
char c;
char d;
int x;
c = 300;
d = 200;
x = c + d;
`, compiler.Options{})
	m.expect(t, map[string]int32{"c": 44, "d": -56, "x": -12})
}

func TestNestedConditionals(t *testing.T) {
	m := compileAndRun(t, `
int x;
int y;
int z;
x = 5;
if (x > 1) {
	y = x * 2;
	if (y == 10) { z = 1; }
	if (y != 10) { z = 2; }
}
if (x < 1) { y = 99; }
`, compiler.Options{})
	m.expect(t, map[string]int32{"x": 5, "y": 10, "z": 1})
}

func TestUnassignedVariablesAreZero(t *testing.T) {
	m := compileAndRun(t, "int u; bool b; char c;", compiler.Options{})
	m.expect(t, map[string]int32{"u": 0, "b": 0, "c": 0})
	if m.vm.Steps != 2 {
		t.Errorf("declaration-only program ran %d instructions", m.vm.Steps)
	}
}

func TestDeepestExpression(t *testing.T) {
	// Eight additions use all ten temporaries.
	expr := "1"
	for i := 0; i < 8; i++ {
		expr = "1+(" + expr + ")"
	}
	m := compileAndRun(t, "int s; s = "+expr+";", compiler.Options{})
	m.expect(t, map[string]int32{"s": 9})
}

func TestUnicodeIdentifier(t *testing.T) {
	m := compileAndRun(t, "int café; int cafe; café = 7; cafe = café + 1;", compiler.Options{})
	m.expect(t, map[string]int32{"café": 7, "cafe": 8})
}

func TestEscapedLabelsDoNotCollide(t *testing.T) {
	m := compileAndRun(t, "int a_u00e9; int aé; int a_b; a_u00e9 = 1; aé = 2; a_b = aé * 10 + a_u00e9;", compiler.Options{})
	m.expect(t, map[string]int32{"a_u00e9": 1, "aé": 2, "a_b": 21})
}

func TestDropUnmappedTokens(t *testing.T) {
	m := compileAndRun(t, "int x; x = 1; else x = 2;", compiler.Options{DropUnmapped: true})
	m.expect(t, map[string]int32{"x": 2})
}
