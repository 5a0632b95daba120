package compiler

import (
	"fmt"
	"strings"
)

// Symbol is a grammar symbol. Terminals come first, then non-terminals; a
// Symbol is only ever used as a table key.
type Symbol int

const (
	// Terminals
	SymIdent Symbol = iota
	SymSemicolon
	SymInt
	SymChar
	SymBool
	SymAssign
	SymIf
	SymLParen
	SymRParen
	SymLBrace
	SymRBrace
	SymGreater
	SymLess
	SymGreaterEq
	SymLessEq
	SymEqual
	SymNotEqual
	SymPlus
	SymMinus
	SymStar
	SymSlash
	SymConst
	SymEOF

	// Non-terminals
	SymStart
	SymProgram
	SymDecls
	SymDecl
	SymType
	SymCmds
	SymCmd
	SymAssignStmt
	SymIfStmt
	SymCond
	SymExpr
	SymTerm
	SymFactor

	numSymbols
)

var symbolNames = [numSymbols]string{
	SymIdent:      "id",
	SymSemicolon:  ";",
	SymInt:        "int",
	SymChar:       "char",
	SymBool:       "bool",
	SymAssign:     "=",
	SymIf:         "if",
	SymLParen:     "(",
	SymRParen:     ")",
	SymLBrace:     "{",
	SymRBrace:     "}",
	SymGreater:    ">",
	SymLess:       "<",
	SymGreaterEq:  ">=",
	SymLessEq:     "<=",
	SymEqual:      "==",
	SymNotEqual:   "!=",
	SymPlus:       "+",
	SymMinus:      "-",
	SymStar:       "*",
	SymSlash:      "/",
	SymConst:      "const",
	SymEOF:        "$",
	SymStart:      "Start",
	SymProgram:    "Program",
	SymDecls:      "Decls",
	SymDecl:       "Decl",
	SymType:       "Type",
	SymCmds:       "Cmds",
	SymCmd:        "Cmd",
	SymAssignStmt: "Assign",
	SymIfStmt:     "If",
	SymCond:       "Cond",
	SymExpr:       "Expr",
	SymTerm:       "Term",
	SymFactor:     "Factor",
}

func (s Symbol) String() string {
	if s >= 0 && s < numSymbols {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// IsTerminal reports whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s >= 0 && s < SymStart
}

// symUnmapped marks token kinds that are lexed but have no grammar terminal.
const symUnmapped Symbol = -1

// terminalOf maps every token kind the scanner can produce to its grammar
// terminal.
var terminalOf = [numTokenTypes]Symbol{
	EOF:        SymEOF,
	IDENTIFIER: SymIdent,
	INTEGER:    SymConst,
	INT:        SymInt,
	CHAR:       SymChar,
	BOOL:       SymBool,
	IF:         SymIf,
	ELSE:       symUnmapped,
	WHILE:      symUnmapped,
	LBRACE:     SymLBrace,
	RBRACE:     SymRBrace,
	LPAREN:     SymLParen,
	RPAREN:     SymRParen,
	SEMICOLON:  SymSemicolon,
	PLUS:       SymPlus,
	MINUS:      SymMinus,
	STAR:       SymStar,
	SLASH:      SymSlash,
	ASSIGN:     SymAssign,
	EQUALS:     SymEqual,
	NOT_EQ:     SymNotEqual,
	LESS:       SymLess,
	GREATER:    SymGreater,
	LESS_EQ:    SymLessEq,
	GREATER_EQ: SymGreaterEq,
}

// TerminalFor returns the grammar terminal for a token kind. ok is false when
// the kind is outside the grammar.
func TerminalFor(tt TokenType) (sym Symbol, ok bool) {
	if tt < 0 || tt >= numTokenTypes {
		return symUnmapped, false
	}
	sym = terminalOf[tt]
	return sym, sym != symUnmapped
}

// ProductionID numbers the grammar rules. The numbering is shared by the parse
// table, the semantic dispatcher and the code generator.
type ProductionID int

const (
	ProdStart ProductionID = iota
	ProdProgram
	ProdDeclsMore
	ProdDeclsEmpty
	ProdDecl
	ProdTypeInt
	ProdTypeChar
	ProdTypeBool
	ProdCmdsMore
	ProdCmdsEmpty
	ProdCmdAssign
	ProdCmdIf
	ProdAssign
	ProdIf
	ProdCondGreater
	ProdCondLess
	ProdCondGreaterEq
	ProdCondLessEq
	ProdCondEqual
	ProdCondNotEqual
	ProdExprAdd
	ProdExprSub
	ProdExprTerm
	ProdTermMul
	ProdTermDiv
	ProdTermFactor
	ProdFactorIdent
	ProdFactorConst
	ProdFactorParen

	numProductions
)

// Production is a single grammar rule LHS -> RHS.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

func (p Production) String() string {
	if len(p.RHS) == 0 {
		return p.LHS.String() + " -> ε"
	}
	parts := make([]string, len(p.RHS))
	for i, s := range p.RHS {
		parts[i] = s.String()
	}
	return p.LHS.String() + " -> " + strings.Join(parts, " ")
}

func rule(lhs Symbol, rhs ...Symbol) Production {
	return Production{LHS: lhs, RHS: rhs}
}

var productions = [numProductions]Production{
	ProdStart:         rule(SymStart, SymProgram),
	ProdProgram:       rule(SymProgram, SymDecls, SymCmds),
	ProdDeclsMore:     rule(SymDecls, SymDecls, SymDecl),
	ProdDeclsEmpty:    rule(SymDecls),
	ProdDecl:          rule(SymDecl, SymType, SymIdent, SymSemicolon),
	ProdTypeInt:       rule(SymType, SymInt),
	ProdTypeChar:      rule(SymType, SymChar),
	ProdTypeBool:      rule(SymType, SymBool),
	ProdCmdsMore:      rule(SymCmds, SymCmds, SymCmd),
	ProdCmdsEmpty:     rule(SymCmds),
	ProdCmdAssign:     rule(SymCmd, SymAssignStmt),
	ProdCmdIf:         rule(SymCmd, SymIfStmt),
	ProdAssign:        rule(SymAssignStmt, SymIdent, SymAssign, SymExpr, SymSemicolon),
	ProdIf:            rule(SymIfStmt, SymIf, SymLParen, SymCond, SymRParen, SymLBrace, SymCmds, SymRBrace),
	ProdCondGreater:   rule(SymCond, SymExpr, SymGreater, SymExpr),
	ProdCondLess:      rule(SymCond, SymExpr, SymLess, SymExpr),
	ProdCondGreaterEq: rule(SymCond, SymExpr, SymGreaterEq, SymExpr),
	ProdCondLessEq:    rule(SymCond, SymExpr, SymLessEq, SymExpr),
	ProdCondEqual:     rule(SymCond, SymExpr, SymEqual, SymExpr),
	ProdCondNotEqual:  rule(SymCond, SymExpr, SymNotEqual, SymExpr),
	ProdExprAdd:       rule(SymExpr, SymExpr, SymPlus, SymTerm),
	ProdExprSub:       rule(SymExpr, SymExpr, SymMinus, SymTerm),
	ProdExprTerm:      rule(SymExpr, SymTerm),
	ProdTermMul:       rule(SymTerm, SymTerm, SymStar, SymFactor),
	ProdTermDiv:       rule(SymTerm, SymTerm, SymSlash, SymFactor),
	ProdTermFactor:    rule(SymTerm, SymFactor),
	ProdFactorIdent:   rule(SymFactor, SymIdent),
	ProdFactorConst:   rule(SymFactor, SymConst),
	ProdFactorParen:   rule(SymFactor, SymLParen, SymExpr, SymRParen),
}

// Rule returns the production for id.
func Rule(id ProductionID) Production {
	return productions[id]
}

func (id ProductionID) String() string {
	if id >= 0 && id < numProductions {
		return fmt.Sprintf("%d (%s)", int(id), productions[id])
	}
	return fmt.Sprintf("ProductionID(%d)", int(id))
}

// ParsingTable is the SLR(1) Action-Goto table, one row per state.
type ParsingTable []PTableRow

// PTableRow is a particular row in the parsing table. Any terminal for which
// there is no key in Actions is unexpected in that state; any non-terminal with
// no key in Gotos means the table and grammar disagree.
type PTableRow struct {
	Actions map[Symbol]Action
	Gotos   map[Symbol]int
}

// ActionKind tags an Action.
type ActionKind int

// Three different kinds of valid actions (that can be explicitly included)
const (
	AKShift ActionKind = iota + 1
	AKReduce
	AKAccept
)

// Action contains a kind and an operand: the state to shift to for shift
// actions, the production to reduce by for reduce actions, nothing for accept.
type Action struct {
	Kind    ActionKind
	Operand int
}

func shift(state int) Action { return Action{Kind: AKShift, Operand: state} }

func reduce(p ProductionID) Action { return Action{Kind: AKReduce, Operand: int(p)} }

func accept() Action { return Action{Kind: AKAccept} }

func (a Action) production() ProductionID { return ProductionID(a.Operand) }

func (a Action) String() string {
	switch a.Kind {
	case AKShift:
		return fmt.Sprintf("shift %d", a.Operand)
	case AKReduce:
		return fmt.Sprintf("reduce %s", a.production())
	case AKAccept:
		return "accept"
	}
	return "error"
}

// short is the compact "s5" / "r12" / "acc" form used in table dumps.
func (a Action) short() string {
	switch a.Kind {
	case AKShift:
		return fmt.Sprintf("s%d", a.Operand)
	case AKReduce:
		return fmt.Sprintf("r%d", a.Operand)
	case AKAccept:
		return "acc"
	}
	return "-"
}
