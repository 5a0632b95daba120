package cpu

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Primary opcodes (bits 31..26).
const (
	OpSpecial uint32 = 0x00
	OpBEQ     uint32 = 0x04
	OpBNE     uint32 = 0x05
	OpADDIU   uint32 = 0x09
	OpORI     uint32 = 0x0D
	OpLUI     uint32 = 0x0F
	OpLB      uint32 = 0x20
	OpLW      uint32 = 0x23
	OpSB      uint32 = 0x28
	OpSW      uint32 = 0x2B
)

// Function codes for OpSpecial (bits 5..0).
const (
	FnSLL     uint32 = 0x00
	FnSYSCALL uint32 = 0x0C
	FnMFLO    uint32 = 0x12
	FnMULT    uint32 = 0x18
	FnDIV     uint32 = 0x1A
	FnADDU    uint32 = 0x21
	FnSUBU    uint32 = 0x23
	FnSLT     uint32 = 0x2A
)

// Register numbers used by the syscall convention.
const (
	RegZero = 0
	RegV0   = 2
	RegA0   = 4
)

// Syscall service numbers understood by the simulator.
const (
	SysPrintInt  = 1
	SysExit      = 10
	SysPrintChar = 11
	SysExit2     = 17
)

var (
	ErrStepLimit       = errors.New("step limit reached")
	ErrUnknownOpcode   = errors.New("unknown instruction")
	ErrUnknownSyscall  = errors.New("unknown syscall")
	ErrMisaligned      = errors.New("misaligned memory access")
	ErrAddressNotFound = errors.New("address outside any segment")
)

// CPU is a MIPS32 interpreter for the subset emitted by the compiler. It
// models the branch delay slot: a taken branch changes nPC, so the
// instruction after the branch still executes.
type CPU struct {
	Regs [32]uint32
	PC   uint32
	nPC  uint32
	cur  uint32 // address of the executing instruction
	HI   uint32
	LO   uint32

	Mem *Memory

	Halted   bool
	ExitCode int
	Fault    error
	Steps    int

	// Output receives print syscalls. If nil, os.Stdout is used.
	Output io.Writer
}

// NewCPU creates a CPU with an empty memory map.
func NewCPU() *CPU {
	return &CPU{Mem: NewMemory()}
}

// LoadImage places text at TextBase and data at DataBase and starts
// execution at entry.
func (c *CPU) LoadImage(text []uint32, data []byte, entry uint32) {
	c.Mem.LoadText(text)
	c.Mem.LoadData(data)
	c.Regs = [32]uint32{}
	c.HI, c.LO = 0, 0
	c.PC, c.nPC = entry, entry+4
	c.Halted, c.Fault, c.ExitCode, c.Steps = false, nil, 0, 0
}

func (c *CPU) outputSink() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *CPU) fault(err error) {
	c.Fault = fmt.Errorf("pc 0x%08x: %w", c.cur, err)
	c.Halted = true
}

func signExt16(v uint32) uint32 {
	return uint32(int32(int16(v & 0xFFFF)))
}

// Step executes one instruction.
func (c *CPU) Step() {
	if c.Halted {
		return
	}

	pc := c.PC
	c.cur = pc
	instr, err := c.Mem.Read32(pc)
	if err != nil {
		c.fault(err)
		return
	}
	c.PC = c.nPC
	c.nPC += 4
	c.Steps++

	op := instr >> 26
	rs := (instr >> 21) & 0x1F
	rt := (instr >> 16) & 0x1F
	rd := (instr >> 11) & 0x1F
	imm := instr & 0xFFFF

	switch op {
	case OpSpecial:
		switch instr & 0x3F {
		case FnSLL:
			c.Regs[rd] = c.Regs[rt] << ((instr >> 6) & 0x1F)
		case FnADDU:
			c.Regs[rd] = c.Regs[rs] + c.Regs[rt]
		case FnSUBU:
			c.Regs[rd] = c.Regs[rs] - c.Regs[rt]
		case FnSLT:
			if int32(c.Regs[rs]) < int32(c.Regs[rt]) {
				c.Regs[rd] = 1
			} else {
				c.Regs[rd] = 0
			}
		case FnMULT:
			p := int64(int32(c.Regs[rs])) * int64(int32(c.Regs[rt]))
			c.HI, c.LO = uint32(uint64(p)>>32), uint32(p)
		case FnDIV:
			// Division by zero leaves HI and LO unchanged.
			if d := int32(c.Regs[rt]); d != 0 {
				n := int32(c.Regs[rs])
				c.LO, c.HI = uint32(n/d), uint32(n%d)
			}
		case FnMFLO:
			c.Regs[rd] = c.LO
		case FnSYSCALL:
			c.syscall()
		default:
			c.fault(fmt.Errorf("%w 0x%08x", ErrUnknownOpcode, instr))
		}

	case OpBEQ:
		if c.Regs[rs] == c.Regs[rt] {
			c.nPC = pc + 4 + signExt16(imm)<<2
		}
	case OpBNE:
		if c.Regs[rs] != c.Regs[rt] {
			c.nPC = pc + 4 + signExt16(imm)<<2
		}

	case OpADDIU:
		c.Regs[rt] = c.Regs[rs] + signExt16(imm)
	case OpORI:
		c.Regs[rt] = c.Regs[rs] | imm
	case OpLUI:
		c.Regs[rt] = imm << 16

	case OpLW:
		v, err := c.Mem.Read32(c.Regs[rs] + signExt16(imm))
		if err != nil {
			c.fault(err)
			return
		}
		c.Regs[rt] = v
	case OpLB:
		b, err := c.Mem.Read8(c.Regs[rs] + signExt16(imm))
		if err != nil {
			c.fault(err)
			return
		}
		c.Regs[rt] = uint32(int32(int8(b)))
	case OpSW:
		if err := c.Mem.Write32(c.Regs[rs]+signExt16(imm), c.Regs[rt]); err != nil {
			c.fault(err)
			return
		}
	case OpSB:
		if err := c.Mem.Write8(c.Regs[rs]+signExt16(imm), byte(c.Regs[rt])); err != nil {
			c.fault(err)
			return
		}

	default:
		c.fault(fmt.Errorf("%w 0x%08x", ErrUnknownOpcode, instr))
	}

	c.Regs[RegZero] = 0
}

func (c *CPU) syscall() {
	switch c.Regs[RegV0] {
	case SysExit:
		c.Halted = true
	case SysExit2:
		c.ExitCode = int(int32(c.Regs[RegA0]))
		c.Halted = true
	case SysPrintInt:
		fmt.Fprint(c.outputSink(), int32(c.Regs[RegA0]))
	case SysPrintChar:
		fmt.Fprintf(c.outputSink(), "%c", rune(byte(c.Regs[RegA0])))
	default:
		c.fault(fmt.Errorf("%w %d", ErrUnknownSyscall, c.Regs[RegV0]))
	}
}

// Run executes until the program exits, faults or maxSteps instructions have
// run. maxSteps <= 0 means no limit.
func (c *CPU) Run(maxSteps int) error {
	for !c.Halted {
		if maxSteps > 0 && c.Steps >= maxSteps {
			return fmt.Errorf("%w after %d instructions (pc 0x%08x)", ErrStepLimit, c.Steps, c.PC)
		}
		c.Step()
	}
	return c.Fault
}

// EncodeR builds an R-type instruction word.
func EncodeR(rs, rt, rd, shamt, funct uint32) uint32 {
	return OpSpecial<<26 | (rs&0x1F)<<21 | (rt&0x1F)<<16 | (rd&0x1F)<<11 | (shamt&0x1F)<<6 | funct&0x3F
}

// EncodeI builds an I-type instruction word.
func EncodeI(op, rs, rt uint32, imm uint16) uint32 {
	return (op&0x3F)<<26 | (rs&0x1F)<<21 | (rt&0x1F)<<16 | uint32(imm)
}
