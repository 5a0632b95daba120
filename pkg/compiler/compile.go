package compiler

import "fmt"

// Options configures a Compiler.
type Options struct {
	// DropUnmapped skips tokens that have no grammar terminal (else, while)
	// instead of reporting them as syntax errors. The zero value is the strict
	// mode and rejects them; set it to get the lenient behaviour of translators
	// that silently ignore keywords outside the grammar.
	DropUnmapped bool
}

// Result is the outcome of a successful compilation.
type Result struct {
	Assembly string
	Trace    []string // parser actions, one per step
	Symbols  []Entry  // declarations in source order
}

// Compiler is one generation session: the parser, the semantic dispatcher and
// the code generator sharing a symbol table. A Compiler is not safe for
// concurrent use; Compile resets it before every run.
type Compiler struct {
	opts   Options
	syms   *SymbolTable
	sem    *Semantics
	gen    *CodeGen
	parser *Parser
}

func New(opts Options) *Compiler {
	syms := NewSymbolTable()
	c := &Compiler{
		opts:   opts,
		syms:   syms,
		sem:    newSemantics(syms),
		gen:    newCodeGen(syms),
		parser: NewParser(),
	}
	c.parser.Semantic = c.sem
	c.parser.Gen = c.gen
	c.parser.OnAccept = c.gen.endProgram
	c.parser.DropUnmapped = opts.DropUnmapped
	return c
}

// Reset clears every piece of session state: symbol table, buffers, stacks,
// registers and the label counter.
func (c *Compiler) Reset() {
	c.syms.Reset()
	c.gen.Reset()
}

// Symbols returns the session's symbol table.
func (c *Compiler) Symbols() *SymbolTable {
	return c.syms
}

// Compile scans and compiles src.
func (c *Compiler) Compile(src string) (Result, error) {
	tokens, err := Lex(src)
	if err != nil {
		return Result{}, fmt.Errorf("lex: %w", err)
	}
	return c.CompileTokens(tokens)
}

// CompileTokens compiles an already scanned token sequence. On error the
// returned Result is empty.
func (c *Compiler) CompileTokens(tokens []Token) (Result, error) {
	c.Reset()
	if err := c.parser.Parse(tokens); err != nil {
		c.Reset()
		return Result{}, err
	}
	if n := c.gen.Depth(); n != 0 {
		c.Reset()
		return Result{}, resourceErr("compile", fmt.Errorf("%d operands left on the expression stack", n))
	}
	res := Result{
		Assembly: c.gen.Build(),
		Trace:    c.parser.Trace(),
		Symbols:  c.syms.Entries(),
	}
	tracer().Infof("compiled %d declarations, %d bytes of assembly", len(res.Symbols), len(res.Assembly))
	return res, nil
}

// Compile compiles src with default options.
func Compile(src string) (string, error) {
	res, err := New(Options{}).Compile(src)
	return res.Assembly, err
}
