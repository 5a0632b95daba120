package compiler

import (
	"fmt"
	"strconv"
)

// Semantics validates declarations and uses against the symbol table. It runs
// on every reduction before any code is generated for it, and touches nothing
// but the symbol table.
type Semantics struct {
	syms *SymbolTable
}

func newSemantics(syms *SymbolTable) *Semantics {
	return &Semantics{syms: syms}
}

// Reduce checks production p. attrs holds the attribute of each right-hand-side
// symbol, left to right. A nil return means code may be generated.
func (s *Semantics) Reduce(p ProductionID, attrs []*Token) error {
	switch p {
	case ProdDecl:
		typeTok, id := attrs[0], attrs[1]
		if typeTok == nil {
			return resourceErr("declaration", fmt.Errorf("no type attribute for %q", id.Lexeme))
		}
		t, ok := typeOfKeyword(typeTok.Type)
		if !ok {
			return resourceErr("declaration", fmt.Errorf("token %s is not a type", typeTok.Type))
		}
		if prev, ok := s.syms.Declare(id.Lexeme, t, id.Line); !ok {
			se := semanticErr(id, ErrRedeclared)
			se.FirstLine = prev.Line
			return se
		}
		tracer().Debugf("declared %s %s", t, id.Lexeme)

	case ProdAssign:
		return s.use(attrs[0])

	case ProdFactorIdent:
		return s.use(attrs[0])

	case ProdFactorConst:
		if _, err := strconv.ParseInt(attrs[0].Lexeme, 10, 32); err != nil {
			return semanticErr(attrs[0], ErrConstantRange)
		}
	}
	return nil
}

func (s *Semantics) use(id *Token) error {
	if _, ok := s.syms.Lookup(id.Lexeme); !ok {
		return semanticErr(id, ErrUndeclared)
	}
	return nil
}
