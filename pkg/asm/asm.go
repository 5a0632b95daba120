package asm

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"slrc/pkg/cpu"
)

// threeRegisterOps take "rd, rs, rt".
var threeRegisterOps = map[string]uint32{
	"addu": cpu.FnADDU,
	"subu": cpu.FnSUBU,
	"slt":  cpu.FnSLT,
}

// hiLoOps take "rs, rt" and write HI/LO.
var hiLoOps = map[string]uint32{
	"mult": cpu.FnMULT,
	"div":  cpu.FnDIV,
}

var moveFromOps = map[string]uint32{
	"mflo": cpu.FnMFLO,
}

var zeroOperandOps = map[string]uint32{
	"nop":     0,
	"syscall": cpu.EncodeR(0, 0, 0, 0, cpu.FnSYSCALL),
}

var branchOps = map[string]uint32{
	"beq": cpu.OpBEQ,
	"bne": cpu.OpBNE,
}

// memoryOps take "rt, offset(base)".
var memoryOps = map[string]uint32{
	"lw": cpu.OpLW,
	"lb": cpu.OpLB,
	"sw": cpu.OpSW,
	"sb": cpu.OpSB,
}

var registerNames = map[string]uint32{
	"zero": 0, "at": 1, "v0": 2, "v1": 3,
	"a0": 4, "a1": 5, "a2": 6, "a3": 7,
	"t0": 8, "t1": 9, "t2": 10, "t3": 11, "t4": 12, "t5": 13, "t6": 14, "t7": 15,
	"s0": 16, "s1": 17, "s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23,
	"t8": 24, "t9": 25, "k0": 26, "k1": 27,
	"gp": 28, "sp": 29, "fp": 30, "s8": 30, "ra": 31,
}

type segment int

const (
	segText segment = iota
	segData
)

// Program is an assembled image ready for cpu.CPU.LoadImage.
type Program struct {
	Text  []uint32
	Data  []byte
	Entry uint32

	// Labels maps every label to its absolute address.
	Labels map[string]uint32
	// SourceMap maps text addresses to 1-based source lines.
	SourceMap map[uint32]int
}

type Assembler struct {
	labels map[string]uint32
}

type parsedLine struct {
	lineNo   int
	labels   []string
	mnemonic string
	operands []string
}

func NewAssembler() *Assembler {
	return &Assembler{
		labels: make(map[string]uint32),
	}
}

func Assemble(code string) (*Program, error) {
	return NewAssembler().Assemble(code)
}

func (a *Assembler) Assemble(code string) (*Program, error) {
	raw := strings.Split(code, "\n")
	lines := make([]parsedLine, 0, len(raw))
	for i, r := range raw {
		p, err := parseLine(r, i+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, p)
	}

	if err := a.pass1(lines); err != nil {
		return nil, err
	}

	prog, err := a.pass2(lines)
	if err != nil {
		return nil, err
	}

	prog.Entry = cpu.TextBase
	if main, ok := a.labels["main"]; ok {
		prog.Entry = main
	}
	prog.Labels = make(map[string]uint32, len(a.labels))
	for k, v := range a.labels {
		prog.Labels[k] = v
	}
	return prog, nil
}

func alignWord(n uint32) uint32 {
	return (n + 3) &^ 3
}

// pass1 assigns an address to every label.
func (a *Assembler) pass1(lines []parsedLine) error {
	seg := segText
	var textSize, dataSize uint32

	for _, p := range lines {
		switch p.mnemonic {
		case ".text":
			seg = segText
		case ".data":
			seg = segData
		case ".word":
			if seg != segData {
				return fmt.Errorf(".word outside .data on line %d", p.lineNo)
			}
			dataSize = alignWord(dataSize)
		}

		for _, lbl := range p.labels {
			if _, exists := a.labels[lbl]; exists {
				return fmt.Errorf("duplicate label '%s' on line %d", lbl, p.lineNo)
			}
			if seg == segText {
				a.labels[lbl] = cpu.TextBase + textSize
			} else {
				a.labels[lbl] = cpu.DataBase + dataSize
			}
		}

		switch p.mnemonic {
		case "", ".text", ".data", ".globl":
		case ".word":
			if len(p.operands) == 0 {
				return fmt.Errorf(".word expects at least one operand on line %d", p.lineNo)
			}
			dataSize += 4 * uint32(len(p.operands))
		case ".byte":
			if seg != segData {
				return fmt.Errorf(".byte outside .data on line %d", p.lineNo)
			}
			if len(p.operands) == 0 {
				return fmt.Errorf(".byte expects at least one operand on line %d", p.lineNo)
			}
			dataSize += uint32(len(p.operands))
		default:
			if !isInstruction(p.mnemonic) {
				return fmt.Errorf("unknown instruction on line %d: %s", p.lineNo, p.mnemonic)
			}
			if seg != segText {
				return fmt.Errorf("instruction outside .text on line %d: %s", p.lineNo, p.mnemonic)
			}
			textSize += 4
		}
	}

	if dataSize > cpu.DataSize {
		return fmt.Errorf("data segment too large: %d bytes", dataSize)
	}
	return nil
}

func (a *Assembler) pass2(lines []parsedLine) (*Program, error) {
	prog := &Program{SourceMap: make(map[uint32]int)}

	for _, p := range lines {
		switch p.mnemonic {
		case "", ".text", ".data":
			continue
		case ".globl":
			for _, name := range p.operands {
				if _, ok := a.labels[name]; !ok {
					return nil, fmt.Errorf("undefined global '%s' on line %d", name, p.lineNo)
				}
			}
			continue
		case ".word":
			for len(prog.Data)%4 != 0 {
				prog.Data = append(prog.Data, 0)
			}
			for _, op := range p.operands {
				v, err := a.parseValue(op, p.lineNo)
				if err != nil {
					return nil, err
				}
				if v < -1<<31 || v > 1<<32-1 {
					return nil, fmt.Errorf("word out of range on line %d: %s", p.lineNo, op)
				}
				prog.Data = binary.LittleEndian.AppendUint32(prog.Data, uint32(v))
			}
			continue
		case ".byte":
			for _, op := range p.operands {
				v, err := a.parseValue(op, p.lineNo)
				if err != nil {
					return nil, err
				}
				if v < -128 || v > 255 {
					return nil, fmt.Errorf("byte out of range on line %d: %s", p.lineNo, op)
				}
				prog.Data = append(prog.Data, byte(v))
			}
			continue
		}

		pc := cpu.TextBase + 4*uint32(len(prog.Text))
		word, err := a.encode(p, pc)
		if err != nil {
			return nil, err
		}
		prog.SourceMap[pc] = p.lineNo
		prog.Text = append(prog.Text, word)
	}

	return prog, nil
}

func expectOperands(p parsedLine, n int) error {
	if len(p.operands) != n {
		return fmt.Errorf("%s expects %d operands on line %d", p.mnemonic, n, p.lineNo)
	}
	return nil
}

// encode assembles one instruction located at pc.
func (a *Assembler) encode(p parsedLine, pc uint32) (uint32, error) {
	m := p.mnemonic

	if word, ok := zeroOperandOps[m]; ok {
		if err := expectOperands(p, 0); err != nil {
			return 0, err
		}
		return word, nil
	}

	if funct, ok := threeRegisterOps[m]; ok {
		if err := expectOperands(p, 3); err != nil {
			return 0, err
		}
		regs, err := parseRegisters(p.operands, p.lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeR(regs[1], regs[2], regs[0], 0, funct), nil
	}

	if funct, ok := hiLoOps[m]; ok {
		if err := expectOperands(p, 2); err != nil {
			return 0, err
		}
		regs, err := parseRegisters(p.operands, p.lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeR(regs[0], regs[1], 0, 0, funct), nil
	}

	if funct, ok := moveFromOps[m]; ok {
		if err := expectOperands(p, 1); err != nil {
			return 0, err
		}
		rd, err := parseRegister(p.operands[0], p.lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeR(0, 0, rd, 0, funct), nil
	}

	if op, ok := branchOps[m]; ok {
		if err := expectOperands(p, 3); err != nil {
			return 0, err
		}
		regs, err := parseRegisters(p.operands[:2], p.lineNo)
		if err != nil {
			return 0, err
		}
		target, ok := a.labels[p.operands[2]]
		if !ok {
			return 0, fmt.Errorf("undefined label '%s' on line %d", p.operands[2], p.lineNo)
		}
		offset := (int64(target) - int64(pc+4)) / 4
		if offset < -1<<15 || offset >= 1<<15 {
			return 0, fmt.Errorf("branch target out of range on line %d: %s", p.lineNo, p.operands[2])
		}
		return cpu.EncodeI(op, regs[0], regs[1], uint16(int16(offset))), nil
	}

	if op, ok := memoryOps[m]; ok {
		if err := expectOperands(p, 2); err != nil {
			return 0, err
		}
		rt, err := parseRegister(p.operands[0], p.lineNo)
		if err != nil {
			return 0, err
		}
		offset, base, err := a.parseMemOperand(p.operands[1], p.lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeI(op, base, rt, offset), nil
	}

	switch m {
	case "addiu":
		if err := expectOperands(p, 3); err != nil {
			return 0, err
		}
		regs, err := parseRegisters(p.operands[:2], p.lineNo)
		if err != nil {
			return 0, err
		}
		imm, err := a.parseSigned16(p.operands[2], p.lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeI(cpu.OpADDIU, regs[1], regs[0], imm), nil

	case "ori":
		if err := expectOperands(p, 3); err != nil {
			return 0, err
		}
		regs, err := parseRegisters(p.operands[:2], p.lineNo)
		if err != nil {
			return 0, err
		}
		imm, err := a.parseUnsigned16(p.operands[2], p.lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeI(cpu.OpORI, regs[1], regs[0], imm), nil

	case "lui":
		if err := expectOperands(p, 2); err != nil {
			return 0, err
		}
		rt, err := parseRegister(p.operands[0], p.lineNo)
		if err != nil {
			return 0, err
		}
		imm, err := a.parseUnsigned16(p.operands[1], p.lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeI(cpu.OpLUI, 0, rt, imm), nil
	}

	return 0, fmt.Errorf("unknown instruction on line %d: %s", p.lineNo, m)
}

func parseLine(raw string, lineNo int) (parsedLine, error) {
	p := parsedLine{lineNo: lineNo}

	line := strings.TrimSpace(stripComments(raw))
	if line == "" {
		return p, nil
	}

	for {
		colon := strings.IndexByte(line, ':')
		if colon <= 0 {
			break
		}

		beforeColon := strings.TrimSpace(line[:colon])
		if strings.ContainsAny(beforeColon, " \t") {
			break
		}

		if !isIdentifier(beforeColon) {
			return p, fmt.Errorf("invalid label '%s' on line %d", beforeColon, lineNo)
		}

		p.labels = append(p.labels, beforeColon)
		line = strings.TrimSpace(line[colon+1:])
		if line == "" {
			return p, nil
		}
	}

	fields := strings.Fields(normalizeInstructionText(line))
	if len(fields) == 0 {
		return p, nil
	}

	p.mnemonic = strings.ToLower(fields[0])
	if len(fields) > 1 {
		p.operands = fields[1:]
	}

	switch p.mnemonic {
	case ".text", ".data":
		if len(p.operands) != 0 {
			return p, fmt.Errorf("%s takes no operands on line %d", p.mnemonic, lineNo)
		}
	}

	return p, nil
}

func stripComments(line string) string {
	if cut := strings.IndexByte(line, '#'); cut >= 0 {
		return line[:cut]
	}
	return line
}

func normalizeInstructionText(line string) string {
	return strings.ReplaceAll(line, ",", " ")
}

func parseRegister(token string, lineNo int) (uint32, error) {
	name, ok := strings.CutPrefix(token, "$")
	if ok {
		if r, known := registerNames[name]; known {
			return r, nil
		}
		if n, err := strconv.ParseUint(name, 10, 8); err == nil && n < 32 {
			return uint32(n), nil
		}
	}
	return 0, fmt.Errorf("invalid register '%s' on line %d", token, lineNo)
}

func parseRegisters(tokens []string, lineNo int) ([]uint32, error) {
	regs := make([]uint32, len(tokens))
	for i, tok := range tokens {
		r, err := parseRegister(tok, lineNo)
		if err != nil {
			return nil, err
		}
		regs[i] = r
	}
	return regs, nil
}

// parseValue resolves a number, a label, or a %hi/%lo of a label.
func (a *Assembler) parseValue(token string, lineNo int) (int64, error) {
	if value, err := strconv.ParseInt(token, 0, 64); err == nil {
		return value, nil
	}

	for _, rel := range []struct {
		prefix string
		part   func(uint32) uint32
	}{
		{"%hi(", func(addr uint32) uint32 { return addr >> 16 }},
		{"%lo(", func(addr uint32) uint32 { return addr & 0xFFFF }},
	} {
		if inner, ok := strings.CutPrefix(token, rel.prefix); ok {
			label, closed := strings.CutSuffix(inner, ")")
			if !closed {
				return 0, fmt.Errorf("invalid immediate '%s' on line %d", token, lineNo)
			}
			addr, ok := a.labels[label]
			if !ok {
				return 0, fmt.Errorf("undefined label '%s' on line %d", label, lineNo)
			}
			return int64(rel.part(addr)), nil
		}
	}

	if addr, ok := a.labels[token]; ok {
		return int64(addr), nil
	}

	if isIdentifier(token) {
		return 0, fmt.Errorf("undefined label '%s' on line %d", token, lineNo)
	}

	return 0, fmt.Errorf("invalid immediate '%s' on line %d", token, lineNo)
}

func (a *Assembler) parseSigned16(token string, lineNo int) (uint16, error) {
	v, err := a.parseValue(token, lineNo)
	if err != nil {
		return 0, err
	}
	if v < -1<<15 || v >= 1<<15 {
		return 0, fmt.Errorf("immediate out of range on line %d: %s", lineNo, token)
	}
	return uint16(int16(v)), nil
}

func (a *Assembler) parseUnsigned16(token string, lineNo int) (uint16, error) {
	v, err := a.parseValue(token, lineNo)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 0xFFFF {
		return 0, fmt.Errorf("immediate out of range on line %d: %s", lineNo, token)
	}
	return uint16(v), nil
}

// parseMemOperand splits "offset(base)". The offset may be omitted.
func (a *Assembler) parseMemOperand(token string, lineNo int) (uint16, uint32, error) {
	open := strings.LastIndexByte(token, '(')
	if open < 0 || !strings.HasSuffix(token, ")") {
		return 0, 0, fmt.Errorf("invalid memory operand '%s' on line %d", token, lineNo)
	}
	base, err := parseRegister(token[open+1:len(token)-1], lineNo)
	if err != nil {
		return 0, 0, err
	}
	if open == 0 {
		return 0, base, nil
	}
	offset, err := a.parseSigned16(token[:open], lineNo)
	if err != nil {
		return 0, 0, err
	}
	return offset, base, nil
}

func isInstruction(mnemonic string) bool {
	for _, table := range []map[string]uint32{
		zeroOperandOps, threeRegisterOps, hiLoOps, moveFromOps, branchOps, memoryOps,
	} {
		if _, ok := table[mnemonic]; ok {
			return true
		}
	}
	switch mnemonic {
	case "addiu", "ori", "lui":
		return true
	}
	return false
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}
