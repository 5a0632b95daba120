package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels wrapped by SemanticError.
var (
	ErrRedeclared    = errors.New("variable already declared")
	ErrUndeclared    = errors.New("variable not declared")
	ErrConstantRange = errors.New("constant out of 32-bit range")
)

// Sentinels wrapped by ResourceError.
var (
	ErrRegistersExhausted = errors.New("no free temporary register")
	ErrNoOpenConditional  = errors.New("no open conditional to close")
	ErrExprStackUnderflow = errors.New("expression stack underflow")
	ErrMissingGoto        = errors.New("missing goto entry")
)

// SyntaxError reports an input symbol for which the current automaton state
// has no action. Trace holds the actions taken before the failure.
type SyntaxError struct {
	Symbol string // grammar terminal, or the token kind if it has none
	Lexeme string
	State  int
	Line   int
	Col    int
	Trace  []string
}

func (e *SyntaxError) Error() string {
	if e.Lexeme != "" && e.Lexeme != e.Symbol {
		return fmt.Sprintf("syntax error at %d:%d: unexpected %s %q in state %d", e.Line, e.Col, e.Symbol, e.Lexeme, e.State)
	}
	return fmt.Sprintf("syntax error at %d:%d: unexpected %s in state %d", e.Line, e.Col, e.Symbol, e.State)
}

// TraceString joins the recorded actions one per line.
func (e *SyntaxError) TraceString() string {
	return strings.Join(e.Trace, "\n")
}

// SemanticError reports a declaration or use that the symbol table rejects.
type SemanticError struct {
	Name string
	Line int
	Col  int
	Err  error

	// FirstLine is the line of the earlier declaration for ErrRedeclared.
	FirstLine int
}

func (e *SemanticError) Error() string {
	msg := fmt.Sprintf("semantic error at %d:%d: %q: %v", e.Line, e.Col, e.Name, e.Err)
	if e.FirstLine > 0 {
		msg += fmt.Sprintf(" (first declared on line %d)", e.FirstLine)
	}
	return msg
}

func (e *SemanticError) Unwrap() error { return e.Err }

func semanticErr(tok *Token, err error) *SemanticError {
	se := &SemanticError{Err: err}
	if tok != nil {
		se.Name, se.Line, se.Col = tok.Lexeme, tok.Line, tok.Col
	}
	return se
}

// ResourceError reports a broken internal invariant: allocator capacity,
// control-flow bookkeeping or table consistency. It never describes a fault in
// the user's program text.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("internal error in %s: %v", e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

func resourceErr(op string, err error) *ResourceError {
	return &ResourceError{Op: op, Err: err}
}

// IsUserError reports whether err is a syntax or semantic error in the source.
func IsUserError(err error) bool {
	var se *SyntaxError
	var me *SemanticError
	return errors.As(err, &se) || errors.As(err, &me)
}

// IsInternalError reports whether err is a resource or structural error.
func IsInternalError(err error) bool {
	var re *ResourceError
	return errors.As(err, &re)
}
