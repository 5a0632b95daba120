package compiler

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrc.parser'.
func tracer() tracing.Trace {
	return tracing.Select("slrc.parser")
}

// symBottom marks the stack record holding the initial state.
const symBottom Symbol = -2

// stackItem is one parse-stack record. attr is the shifted token for
// terminals and the synthesised token for Type; nil otherwise.
type stackItem struct {
	sym   Symbol
	state int
	attr  *Token
}

// ReduceHandler is called with the production and the attributes of its
// right-hand side, left to right, before the parse stack is popped.
type ReduceHandler interface {
	Reduce(p ProductionID, attrs []*Token) error
}

// Parser is a table-driven SLR(1) shift/reduce engine. On every reduction it
// runs Semantic, then Gen; a failure in either aborts the parse before the
// stack changes.
type Parser struct {
	table        ParsingTable
	Semantic     ReduceHandler
	Gen          ReduceHandler
	OnAccept     func()
	DropUnmapped bool

	tokens []Token
	cursor int
	stack  []stackItem
	trace  []string
}

// NewParser returns a parser over the built-in table with no handlers.
func NewParser() *Parser {
	return &Parser{table: parseTable}
}

// Trace returns the actions taken by the last Parse, one entry per action.
func (p *Parser) Trace() []string {
	return p.trace
}

func (p *Parser) top() stackItem {
	return p.stack[len(p.stack)-1]
}

// lookahead returns the current input symbol and its token. Past the end of
// the token slice it yields an end-of-input marker positioned after the last
// token.
func (p *Parser) lookahead() (Symbol, *Token, error) {
	for p.cursor < len(p.tokens) {
		tok := &p.tokens[p.cursor]
		sym, ok := TerminalFor(tok.Type)
		if ok {
			return sym, tok, nil
		}
		if !p.DropUnmapped {
			return symUnmapped, tok, p.syntaxErr(tok.Type.String(), tok)
		}
		tracer().Debugf("dropping unmapped token %s %q at %s", tok.Type, tok.Lexeme, tok.Pos())
		p.cursor++
	}
	eof := Token{Type: EOF}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		eof.Line, eof.Col = last.Line, last.Col+len([]rune(last.Lexeme))
	}
	p.tokens = append(p.tokens, eof)
	return SymEOF, &p.tokens[p.cursor], nil
}

func (p *Parser) syntaxErr(symbol string, tok *Token) *SyntaxError {
	e := &SyntaxError{
		Symbol: symbol,
		State:  p.top().state,
		Trace:  append([]string(nil), p.trace...),
	}
	if tok != nil {
		e.Lexeme, e.Line, e.Col = tok.Lexeme, tok.Line, tok.Col
	}
	return e
}

func (p *Parser) record(state int, sym Symbol, act Action) {
	entry := fmt.Sprintf("state %d, symbol '%s': %s", state, sym, act)
	p.trace = append(p.trace, entry)
	tracer().Debugf("%s", entry)
}

// Parse runs the automaton over tokens until accept or the first error.
// tokens need not end in EOF.
func (p *Parser) Parse(tokens []Token) error {
	p.tokens = append(p.tokens[:0], tokens...)
	p.cursor = 0
	p.stack = append(p.stack[:0], stackItem{sym: symBottom, state: 0})
	p.trace = nil

	for {
		state := p.top().state
		sym, tok, err := p.lookahead()
		if err != nil {
			tracer().Errorf("%v", err)
			return err
		}
		act, ok := p.table[state].Actions[sym]
		if !ok {
			err := p.syntaxErr(sym.String(), tok)
			tracer().Errorf("%v", err)
			return err
		}
		p.record(state, sym, act)

		switch act.Kind {
		case AKShift:
			p.stack = append(p.stack, stackItem{sym: sym, state: act.Operand, attr: tok})
			p.cursor++

		case AKReduce:
			if err := p.reduce(act.production()); err != nil {
				tracer().Errorf("%v", err)
				return err
			}

		case AKAccept:
			tracer().Infof("accepted %d tokens in %d actions", p.cursor, len(p.trace))
			if p.OnAccept != nil {
				p.OnAccept()
			}
			return nil

		default:
			return resourceErr("parse", fmt.Errorf("invalid action kind %d in state %d", act.Kind, state))
		}
	}
}

func (p *Parser) reduce(id ProductionID) error {
	prod := productions[id]
	n := len(prod.RHS)
	if n >= len(p.stack) {
		return resourceErr("reduce", fmt.Errorf("stack too shallow for %s", id))
	}
	base := len(p.stack) - n
	attrs := make([]*Token, n)
	for i := range attrs {
		attrs[i] = p.stack[base+i].attr
	}

	if p.Semantic != nil {
		if err := p.Semantic.Reduce(id, attrs); err != nil {
			return err
		}
	}
	if p.Gen != nil {
		if err := p.Gen.Reduce(id, attrs); err != nil {
			return err
		}
	}

	p.stack = p.stack[:base]
	from := p.top().state
	next, ok := p.table[from].Gotos[prod.LHS]
	if !ok {
		return resourceErr("goto", fmt.Errorf("%w: state %d, %s", ErrMissingGoto, from, prod.LHS))
	}
	var attr *Token
	if prod.LHS == SymType {
		attr = attrs[0]
	}
	p.stack = append(p.stack, stackItem{sym: prod.LHS, state: next, attr: attr})
	return nil
}
