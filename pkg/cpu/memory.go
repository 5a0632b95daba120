package cpu

import (
	"encoding/binary"
	"fmt"
)

// Segment base addresses, matching the MARS default memory layout.
const (
	TextBase uint32 = 0x00400000
	DataBase uint32 = 0x10010000
)

// DataSize is the size of the data segment. Loaded data beyond it grows the
// segment.
const DataSize = 64 * 1024

// Memory is a little-endian address space made of a text and a data segment.
// Accesses outside both segments fault.
type Memory struct {
	text []byte
	data []byte
}

func NewMemory() *Memory {
	return &Memory{data: make([]byte, DataSize)}
}

// LoadText replaces the text segment with the given instruction words.
func (m *Memory) LoadText(words []uint32) {
	m.text = make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(m.text[4*i:], w)
	}
}

// LoadData replaces the data segment contents; the remainder is zeroed.
func (m *Memory) LoadData(b []byte) {
	size := DataSize
	if len(b) > size {
		size = len(b)
	}
	m.data = make([]byte, size)
	copy(m.data, b)
}

// slice returns the n bytes at addr, or an error if they do not lie within
// one segment.
func (m *Memory) slice(addr uint32, n uint32) ([]byte, error) {
	for _, seg := range []struct {
		base uint32
		mem  []byte
	}{{TextBase, m.text}, {DataBase, m.data}} {
		if addr >= seg.base && uint64(addr-seg.base)+uint64(n) <= uint64(len(seg.mem)) {
			off := addr - seg.base
			return seg.mem[off : off+n], nil
		}
	}
	return nil, fmt.Errorf("%w: 0x%08x", ErrAddressNotFound, addr)
}

func (m *Memory) Read32(addr uint32) (uint32, error) {
	if addr%4 != 0 {
		return 0, fmt.Errorf("%w: word at 0x%08x", ErrMisaligned, addr)
	}
	b, err := m.slice(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (m *Memory) Write32(addr uint32, v uint32) error {
	if addr%4 != 0 {
		return fmt.Errorf("%w: word at 0x%08x", ErrMisaligned, addr)
	}
	b, err := m.slice(addr, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

func (m *Memory) Read8(addr uint32) (byte, error) {
	b, err := m.slice(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (m *Memory) Write8(addr uint32, v byte) error {
	b, err := m.slice(addr, 1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}
