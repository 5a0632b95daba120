package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const (
	regT0 = 8
	regT1 = 9
	regT2 = 10
	regT3 = 11
	regT4 = 12
)

func addiu(rt, rs uint32, imm int16) uint32 { return EncodeI(OpADDIU, rs, rt, uint16(imm)) }

func syscall(service int16) []uint32 {
	return []uint32{addiu(RegV0, RegZero, service), EncodeR(0, 0, 0, 0, FnSYSCALL)}
}

// runProgram executes words placed at TextBase with the given data segment.
func runProgram(t *testing.T, data []byte, words ...uint32) (*CPU, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := NewCPU()
	c.Output = &out
	c.LoadImage(words, data, TextBase)
	if err := c.Run(1000); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return c, &out
}

func prog(parts ...any) []uint32 {
	var words []uint32
	for _, p := range parts {
		switch v := p.(type) {
		case uint32:
			words = append(words, v)
		case []uint32:
			words = append(words, v...)
		}
	}
	return words
}

func TestInstructionEncoding(t *testing.T) {
	if got := EncodeR(regT0, regT1, regT2, 0, FnADDU); got != 0x01095021 {
		t.Errorf("EncodeR addu: got 0x%08X", got)
	}
	if got := EncodeI(OpADDIU, RegZero, regT0, 10); got != 0x2408000A {
		t.Errorf("EncodeI addiu: got 0x%08X", got)
	}
	if got := EncodeI(OpLB, 29, regT0, 0xFFFC); got != 0x83A8FFFC {
		t.Errorf("EncodeI lb: got 0x%08X", got)
	}
}

func TestALU(t *testing.T) {
	c, _ := runProgram(t, nil, prog(
		addiu(regT0, RegZero, -5),
		addiu(regT1, RegZero, 3),
		EncodeR(regT0, regT1, regT2, 0, FnADDU),
		EncodeR(regT0, regT1, regT3, 0, FnSUBU),
		EncodeR(regT0, regT1, regT4, 0, FnSLT),
		syscall(SysExit),
	)...)

	if int32(c.Regs[regT2]) != -2 {
		t.Errorf("addu: got %d", int32(c.Regs[regT2]))
	}
	if int32(c.Regs[regT3]) != -8 {
		t.Errorf("subu: got %d", int32(c.Regs[regT3]))
	}
	if c.Regs[regT4] != 1 {
		t.Errorf("slt must compare signed: got %d", c.Regs[regT4])
	}
}

func TestMultDiv(t *testing.T) {
	c, _ := runProgram(t, nil, prog(
		addiu(regT0, RegZero, -7),
		addiu(regT1, RegZero, 2),
		EncodeR(regT0, regT1, 0, 0, FnMULT),
		EncodeR(0, 0, regT2, 0, FnMFLO),
		EncodeR(regT0, regT1, 0, 0, FnDIV),
		EncodeR(0, 0, regT3, 0, FnMFLO),
		syscall(SysExit),
	)...)

	if int32(c.Regs[regT2]) != -14 {
		t.Errorf("mult: got %d", int32(c.Regs[regT2]))
	}
	if int32(c.Regs[regT3]) != -3 || int32(c.HI) != -1 {
		t.Errorf("div truncates toward zero: lo %d hi %d", int32(c.Regs[regT3]), int32(c.HI))
	}
}

func TestDivideByZeroKeepsLO(t *testing.T) {
	c, _ := runProgram(t, nil, prog(
		addiu(regT0, RegZero, 7),
		EncodeR(regT0, regT0, 0, 0, FnMULT),
		EncodeR(regT0, RegZero, 0, 0, FnDIV),
		EncodeR(0, 0, regT2, 0, FnMFLO),
		syscall(SysExit),
	)...)
	if c.Regs[regT2] != 49 {
		t.Errorf("LO after div by zero: got %d", c.Regs[regT2])
	}
}

func TestLuiOri(t *testing.T) {
	c, _ := runProgram(t, nil, prog(
		EncodeI(OpLUI, 0, regT0, 0xFFFE),
		EncodeI(OpORI, regT0, regT0, 0xEE90),
		syscall(SysExit),
	)...)
	if int32(c.Regs[regT0]) != -70000 {
		t.Errorf("lui/ori: got %d", int32(c.Regs[regT0]))
	}
}

func TestBranchDelaySlot(t *testing.T) {
	c, _ := runProgram(t, nil, prog(
		EncodeI(OpBEQ, RegZero, RegZero, 2), // to the exit sequence
		addiu(regT0, regT0, 1),              // delay slot, still executes
		addiu(regT1, regT1, 1),              // skipped
		syscall(SysExit),
	)...)
	if c.Regs[regT0] != 1 || c.Regs[regT1] != 0 {
		t.Errorf("t0=%d t1=%d; want 1 and 0", c.Regs[regT0], c.Regs[regT1])
	}

	c, _ = runProgram(t, nil, prog(
		EncodeI(OpBNE, RegZero, RegZero, 2), // not taken
		addiu(regT0, regT0, 1),
		addiu(regT1, regT1, 1),
		syscall(SysExit),
	)...)
	if c.Regs[regT0] != 1 || c.Regs[regT1] != 1 {
		t.Errorf("t0=%d t1=%d; want 1 and 1", c.Regs[regT0], c.Regs[regT1])
	}
}

func TestLoadStore(t *testing.T) {
	c, _ := runProgram(t, []byte{0xFF, 0, 0, 0, 0x78, 0x56, 0x34, 0x12}, prog(
		EncodeI(OpLUI, 0, regT1, uint16(DataBase>>16)),
		EncodeI(OpLB, regT1, regT0, 0),
		EncodeI(OpLW, regT1, regT2, 4),
		addiu(regT3, RegZero, 0x41),
		EncodeI(OpSB, regT1, regT3, 1),
		EncodeI(OpSW, regT1, regT2, 8),
		syscall(SysExit),
	)...)

	if c.Regs[regT0] != 0xFFFFFFFF {
		t.Errorf("lb must sign-extend: got 0x%08X", c.Regs[regT0])
	}
	if c.Regs[regT2] != 0x12345678 {
		t.Errorf("lw little-endian: got 0x%08X", c.Regs[regT2])
	}
	if b, _ := c.Mem.Read8(DataBase + 1); b != 0x41 {
		t.Errorf("sb: got 0x%02X", b)
	}
	if w, _ := c.Mem.Read32(DataBase + 8); w != 0x12345678 {
		t.Errorf("sw: got 0x%08X", w)
	}
}

func TestZeroRegisterIsHardwired(t *testing.T) {
	c, _ := runProgram(t, nil, prog(addiu(RegZero, RegZero, 5), syscall(SysExit))...)
	if c.Regs[RegZero] != 0 {
		t.Errorf("$zero = %d", c.Regs[RegZero])
	}
}

func TestSyscalls(t *testing.T) {
	c, out := runProgram(t, nil, prog(
		addiu(RegA0, RegZero, -7),
		syscall(SysPrintInt),
		addiu(RegA0, RegZero, 'A'),
		syscall(SysPrintChar),
		addiu(RegA0, RegZero, 3),
		syscall(SysExit2),
	)...)
	if out.String() != "-7A" {
		t.Errorf("output: %q", out.String())
	}
	if !c.Halted || c.ExitCode != 3 {
		t.Errorf("halted %v exit %d", c.Halted, c.ExitCode)
	}
	if c.Steps != 9 {
		t.Errorf("steps: %d", c.Steps)
	}
}

func TestFaults(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  error
	}{
		{"UnknownOpcode", []uint32{0xFC000000}, ErrUnknownOpcode},
		{"UnknownFunct", []uint32{EncodeR(0, 0, 0, 0, 0x3F)}, ErrUnknownOpcode},
		{"UnknownSyscall", syscall(99), ErrUnknownSyscall},
		{"Misaligned", prog(
			EncodeI(OpLUI, 0, regT1, uint16(DataBase>>16)),
			EncodeI(OpLW, regT1, regT0, 2),
		), ErrMisaligned},
		{"Unmapped", prog(EncodeI(OpSW, RegZero, regT0, 0x100)), ErrAddressNotFound},
		{"FallOffText", []uint32{0}, ErrAddressNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCPU()
			c.LoadImage(tt.words, nil, TextBase)
			err := c.Run(100)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !c.Halted || !strings.HasPrefix(err.Error(), "pc 0x004000") {
				t.Errorf("fault should halt and name the pc: %v", err)
			}
		})
	}
}

func TestStepLimit(t *testing.T) {
	c := NewCPU()
	c.LoadImage([]uint32{EncodeI(OpBEQ, RegZero, RegZero, 0xFFFF), 0}, nil, TextBase)
	err := c.Run(50)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("expected step limit, got %v", err)
	}
	if c.Steps != 50 || c.Halted {
		t.Errorf("steps %d halted %v", c.Steps, c.Halted)
	}
}

func TestLoadImageResetsState(t *testing.T) {
	c, _ := runProgram(t, nil, prog(addiu(regT0, RegZero, 9), syscall(SysExit))...)
	c.LoadImage(syscall(SysExit), nil, TextBase)
	if c.Regs[regT0] != 0 || c.Halted || c.Steps != 0 || c.PC != TextBase {
		t.Errorf("state survived LoadImage: %+v", c)
	}
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory()
	if err := m.Write32(DataBase+DataSize-4, 1); err != nil {
		t.Errorf("last word: %v", err)
	}
	if err := m.Write32(DataBase+DataSize, 1); !errors.Is(err, ErrAddressNotFound) {
		t.Errorf("past the end: %v", err)
	}
	if _, err := m.Read8(TextBase); !errors.Is(err, ErrAddressNotFound) {
		t.Errorf("empty text segment: %v", err)
	}

	big := make([]byte, DataSize+8)
	big[DataSize+4] = 7
	m.LoadData(big)
	if w, err := m.Read32(DataBase + DataSize + 4); err != nil || w != 7 {
		t.Errorf("grown data segment: %d, %v", w, err)
	}
}
