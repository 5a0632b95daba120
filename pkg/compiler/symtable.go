package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// VarType is the declared type of a variable.
type VarType int

const (
	TypeInt VarType = iota
	TypeChar
	TypeBool
)

func (t VarType) String() string {
	switch t {
	case TypeChar:
		return "CHAR"
	case TypeBool:
		return "BOOL"
	}
	return "INT"
}

// Size is the storage cell width in bytes.
func (t VarType) Size() int {
	if t == TypeChar {
		return 1
	}
	return 4
}

// typeOfKeyword maps a type keyword token to its VarType.
func typeOfKeyword(tt TokenType) (VarType, bool) {
	switch tt {
	case INT:
		return TypeInt, true
	case CHAR:
		return TypeChar, true
	case BOOL:
		return TypeBool, true
	}
	return 0, false
}

// Entry is one declared variable.
type Entry struct {
	Name  string
	Type  VarType
	Label string // data-section label holding the value
	Line  int    // declaration line
}

// SymbolTable maps variable names to their declarations. The language has a
// single global scope.
type SymbolTable struct {
	globals map[string]Entry
	order   []string // declaration order
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{globals: make(map[string]Entry)}
}

// Declare installs name with type t. It returns false without modifying the
// table if name is already declared.
func (s *SymbolTable) Declare(name string, t VarType, line int) (Entry, bool) {
	if e, ok := s.globals[name]; ok {
		return e, false
	}
	e := Entry{Name: name, Type: t, Label: dataLabel(name), Line: line}
	s.globals[name] = e
	s.order = append(s.order, name)
	return e, true
}

// Lookup returns the entry and whether it was found.
func (s *SymbolTable) Lookup(name string) (Entry, bool) {
	e, ok := s.globals[name]
	return e, ok
}

// Len returns the number of declared variables.
func (s *SymbolTable) Len() int {
	return len(s.globals)
}

// Entries returns the declarations in source order.
func (s *SymbolTable) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.globals[name])
	}
	return out
}

// Reset empties the table.
func (s *SymbolTable) Reset() {
	clear(s.globals)
	s.order = s.order[:0]
}

// dataLabel derives the storage label for a variable. ASCII letters and
// digits pass through, '_' doubles to "__", and any other rune becomes _uXXXX
// (or _UXXXXXXXX beyond the BMP). Every '_' in the output starts exactly one
// escape, so distinct names never share a label.
func dataLabel(name string) string {
	var sb strings.Builder
	sb.WriteString("var_")
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
		case r == '_':
			sb.WriteString("__")
		case r <= 0xFFFF:
			fmt.Fprintf(&sb, "_u%04x", r)
		default:
			fmt.Fprintf(&sb, "_U%08x", r)
		}
	}
	return sb.String()
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	if len(s.globals) == 0 {
		sb.WriteString("Globals: (empty)\n")
		return sb.String()
	}
	sb.WriteString("Globals:\n")
	names := make([]string, 0, len(s.globals))
	for name := range s.globals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e := s.globals[name]
		fmt.Fprintf(&sb, "  %-20s  Label: %s (Type: %s, Size: %d)\n", name, e.Label, e.Type, e.Type.Size())
	}
	return sb.String()
}
