package compiler

import (
	"fmt"
	"strconv"
)

// exprValue is a computed operand awaiting consumption.
type exprValue struct {
	reg string
	typ VarType
}

// CodeGen turns reductions into MIPS assembly text. It owns the register pool,
// the expression and control stacks, the label counter and the two output
// buffers; the symbol table is shared with the semantic dispatcher.
type CodeGen struct {
	syms      *SymbolTable
	regs      *RegPool
	data      []string
	text      []string
	exprs     []exprValue
	ctrl      []string // end labels of open conditionals
	nextLabel int
	started   bool
}

func newCodeGen(syms *SymbolTable) *CodeGen {
	cg := &CodeGen{syms: syms, regs: NewRegPool()}
	return cg
}

// Reset discards all generated text and returns every resource.
func (cg *CodeGen) Reset() {
	cg.regs.Reset()
	cg.data = cg.data[:0]
	cg.text = cg.text[:0]
	cg.exprs = cg.exprs[:0]
	cg.ctrl = cg.ctrl[:0]
	cg.nextLabel = 0
	cg.started = false
}

func (cg *CodeGen) newLabel(prefix string) string {
	cg.nextLabel++
	l := fmt.Sprintf("%s_%d", prefix, cg.nextLabel)
	tracer().Debugf("new label %s", l)
	return l
}

// line appends one unindented line (directive or label) to the text section.
func (cg *CodeGen) line(format string, args ...any) {
	cg.beginProgram()
	cg.text = append(cg.text, fmt.Sprintf(format, args...))
}

// ins appends one instruction to the text section.
func (cg *CodeGen) ins(format string, args ...any) {
	cg.line("    "+format, args...)
}

func (cg *CodeGen) label(name string) {
	cg.line("%s:", name)
}

// beginProgram emits the text-section header once, before the first
// instruction.
func (cg *CodeGen) beginProgram() {
	if cg.started {
		return
	}
	cg.started = true
	cg.text = append(cg.text, ".text", ".globl main", "main:")
}

// endProgram closes any conditional still open and appends the exit sequence.
func (cg *CodeGen) endProgram() {
	cg.beginProgram()
	for len(cg.ctrl) > 0 {
		end := cg.ctrl[len(cg.ctrl)-1]
		cg.ctrl = cg.ctrl[:len(cg.ctrl)-1]
		tracer().Infof("closing conditional %s at end of program", end)
		cg.label(end)
	}
	cg.loadImmediate("$v0", 10)
	cg.ins("syscall")
}

// declare emits the zero-initialised storage cell for e.
func (cg *CodeGen) declare(e Entry) {
	directive := ".word"
	if e.Type == TypeChar {
		directive = ".byte"
	}
	cg.data = append(cg.data, fmt.Sprintf("%s: %s 0", e.Label, directive))
}

func (cg *CodeGen) lookup(name string) (Entry, error) {
	e, ok := cg.syms.Lookup(name)
	if !ok {
		// The semantic pass runs first, so this is a driver bug.
		return Entry{}, resourceErr("code generation", fmt.Errorf("%w: %q", ErrUndeclared, name))
	}
	return e, nil
}

// loadImmediate materialises v in r, using a single addiu when it fits the
// signed 16-bit immediate field.
func (cg *CodeGen) loadImmediate(r string, v int64) {
	if v >= -32768 && v <= 32767 {
		cg.ins("addiu %s, $zero, %d", r, v)
		return
	}
	hi := (v >> 16) & 0xFFFF
	lo := v & 0xFFFF
	cg.ins("lui %s, %d", r, hi)
	cg.ins("ori %s, %s, %d", r, r, lo)
}

// loadAddress materialises the address of a data label in r.
func (cg *CodeGen) loadAddress(r, label string) {
	cg.ins("lui %s, %%hi(%s)", r, label)
	cg.ins("ori %s, %s, %%lo(%s)", r, r, label)
}

func (cg *CodeGen) push(reg string, t VarType) {
	cg.exprs = append(cg.exprs, exprValue{reg: reg, typ: t})
}

func (cg *CodeGen) pop(op string) (exprValue, error) {
	if len(cg.exprs) == 0 {
		return exprValue{}, resourceErr(op, ErrExprStackUnderflow)
	}
	v := cg.exprs[len(cg.exprs)-1]
	cg.exprs = cg.exprs[:len(cg.exprs)-1]
	return v, nil
}

// pop2 returns the two topmost operands in source order.
func (cg *CodeGen) pop2(op string) (lhs, rhs exprValue, err error) {
	if len(cg.exprs) < 2 {
		return lhs, rhs, resourceErr(op, ErrExprStackUnderflow)
	}
	rhs, _ = cg.pop(op)
	lhs, _ = cg.pop(op)
	return lhs, rhs, nil
}

func (cg *CodeGen) pushConst(lexeme string) error {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return resourceErr("constant", err)
	}
	r, err := cg.regs.Allocate()
	if err != nil {
		return err
	}
	cg.loadImmediate(r, v)
	cg.push(r, TypeInt)
	return nil
}

func (cg *CodeGen) pushVar(name string) error {
	e, err := cg.lookup(name)
	if err != nil {
		return err
	}
	rVal, err := cg.regs.Allocate()
	if err != nil {
		return err
	}
	rAddr, err := cg.regs.Allocate()
	if err != nil {
		return err
	}
	cg.loadAddress(rAddr, e.Label)
	if e.Type == TypeChar {
		cg.ins("lb %s, 0(%s)", rVal, rAddr)
	} else {
		cg.ins("lw %s, 0(%s)", rVal, rAddr)
	}
	cg.regs.Release(rAddr)
	cg.push(rVal, TypeInt)
	return nil
}

// binary emits one arithmetic operator over the two topmost operands.
func (cg *CodeGen) binary(op string) error {
	lhs, rhs, err := cg.pop2(op)
	if err != nil {
		return err
	}
	rd, err := cg.regs.Allocate()
	if err != nil {
		return err
	}
	switch op {
	case "addu", "subu":
		cg.ins("%s %s, %s, %s", op, rd, lhs.reg, rhs.reg)
	case "mult", "div":
		cg.ins("%s %s, %s", op, lhs.reg, rhs.reg)
		cg.ins("mflo %s", rd)
	default:
		return resourceErr("code generation", fmt.Errorf("unknown operator %q", op))
	}
	cg.regs.Release(lhs.reg)
	cg.regs.Release(rhs.reg)
	cg.push(rd, TypeInt)
	return nil
}

func (cg *CodeGen) assign(name string) error {
	v, err := cg.pop("assignment")
	if err != nil {
		return err
	}
	e, err := cg.lookup(name)
	if err != nil {
		return err
	}
	rAddr, err := cg.regs.Allocate()
	if err != nil {
		return err
	}
	cg.loadAddress(rAddr, e.Label)
	if e.Type == TypeChar {
		cg.ins("sb %s, 0(%s)", v.reg, rAddr)
	} else {
		cg.ins("sw %s, 0(%s)", v.reg, rAddr)
	}
	cg.regs.Release(rAddr)
	cg.regs.Release(v.reg)
	return nil
}

// beginIf compares the two topmost operands and branches to a fresh end label
// when the condition is false.
func (cg *CodeGen) beginIf(p ProductionID) error {
	lhs, rhs, err := cg.pop2("conditional")
	if err != nil {
		return err
	}
	end := cg.newLabel("L_if_end")
	t, err := cg.regs.Allocate()
	if err != nil {
		return err
	}
	switch p {
	case ProdCondGreater:
		cg.ins("slt %s, %s, %s", t, rhs.reg, lhs.reg)
		cg.ins("beq %s, $zero, %s", t, end)
	case ProdCondLess:
		cg.ins("slt %s, %s, %s", t, lhs.reg, rhs.reg)
		cg.ins("beq %s, $zero, %s", t, end)
	case ProdCondGreaterEq:
		cg.ins("slt %s, %s, %s", t, lhs.reg, rhs.reg)
		cg.ins("bne %s, $zero, %s", t, end)
	case ProdCondLessEq:
		cg.ins("slt %s, %s, %s", t, rhs.reg, lhs.reg)
		cg.ins("bne %s, $zero, %s", t, end)
	case ProdCondEqual:
		cg.ins("bne %s, %s, %s", lhs.reg, rhs.reg, end)
	case ProdCondNotEqual:
		cg.ins("beq %s, %s, %s", lhs.reg, rhs.reg, end)
	default:
		cg.regs.Release(t)
		return resourceErr("conditional", fmt.Errorf("production %s is not a comparison", p))
	}
	cg.ins("nop")
	cg.regs.Release(t)
	cg.regs.Release(lhs.reg)
	cg.regs.Release(rhs.reg)
	cg.ctrl = append(cg.ctrl, end)
	return nil
}

func (cg *CodeGen) endIf() error {
	if len(cg.ctrl) == 0 {
		return resourceErr("conditional", ErrNoOpenConditional)
	}
	end := cg.ctrl[len(cg.ctrl)-1]
	cg.ctrl = cg.ctrl[:len(cg.ctrl)-1]
	cg.label(end)
	return nil
}

// Reduce emits the code for production p. attrs holds the attribute of each
// right-hand-side symbol, left to right.
func (cg *CodeGen) Reduce(p ProductionID, attrs []*Token) error {
	switch p {
	case ProdDecl:
		e, err := cg.lookup(attrs[1].Lexeme)
		if err != nil {
			return err
		}
		cg.declare(e)
	case ProdAssign:
		return cg.assign(attrs[0].Lexeme)
	case ProdIf:
		return cg.endIf()
	case ProdCondGreater, ProdCondLess, ProdCondGreaterEq,
		ProdCondLessEq, ProdCondEqual, ProdCondNotEqual:
		return cg.beginIf(p)
	case ProdExprAdd:
		return cg.binary("addu")
	case ProdExprSub:
		return cg.binary("subu")
	case ProdTermMul:
		return cg.binary("mult")
	case ProdTermDiv:
		return cg.binary("div")
	case ProdFactorIdent:
		return cg.pushVar(attrs[0].Lexeme)
	case ProdFactorConst:
		return cg.pushConst(attrs[0].Lexeme)
	}
	return nil
}

// Depth reports the number of operands on the expression stack.
func (cg *CodeGen) Depth() int {
	return len(cg.exprs)
}

// OpenConditionals reports how many conditionals await their end label.
func (cg *CodeGen) OpenConditionals() int {
	return len(cg.ctrl)
}

// Build serialises the data and text buffers.
func (cg *CodeGen) Build() string {
	return buildProgram(cg.data, cg.text)
}
