package compiler

import (
	"fmt"
	"unicode"
)

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"int":   INT,
	"char":  CHAR,
	"bool":  BOOL,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src       []rune
	pos       int // index of the next rune to consume
	line      int // current 1-based source line
	lineStart int // index of the first rune of the current line
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.lineStart = l.pos
	}
	return r
}

// col is the 1-based column of the next rune.
func (l *Lexer) col() int {
	return l.pos - l.lineStart + 1
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// skipLineComment discards everything from the current position to end-of-line.
// The opening "//" must already have been consumed.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
}

// skipBlockComment discards everything up to and including the closing "*/".
// The opening "/*" must already have been consumed.
func (l *Lexer) skipBlockComment() error {
	startLine := l.line
	for l.pos < len(l.src) {
		if l.peek() == '*' && l.peek2() == '/' {
			l.advance() // *
			l.advance() // /
			return nil
		}
		l.advance()
	}
	return fmt.Errorf("unterminated block comment (opened on line %d)", startLine)
}

// scanIdent collects a full identifier or keyword token.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line, col := l.line, l.col()
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col}
}

// isDecimalDigit accepts only '0'..'9'. Other Unicode digits are not constants.
func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanInt collects a decimal integer constant. The first digit must still be
// at l.peek(). A constant running straight into a letter ("12ab") is rejected.
func (l *Lexer) scanInt() (Token, error) {
	line, col := l.line, l.col()
	start := l.pos
	for l.pos < len(l.src) && isDecimalDigit(l.peek()) {
		l.advance()
	}
	if r := l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return Token{}, fmt.Errorf("malformed constant %q at line %d col %d", string(l.src[start:l.pos+1]), line, col)
	}
	return Token{Type: INTEGER, Lexeme: string(l.src[start:l.pos]), Line: line, Col: col}, nil
}

// nextToken skips whitespace/comments and returns the next Token.
func (l *Lexer) nextToken() (Token, error) {
	// Skip whitespace and both comment styles in a loop so that
	// a comment followed immediately by more whitespace is handled.
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return Token{Type: EOF, Lexeme: "", Line: l.line, Col: l.col()}, nil
		}
		if l.peek() == '/' && l.peek2() == '/' {
			l.advance()
			l.advance()
			l.skipLineComment()
			continue
		}
		if l.peek() == '/' && l.peek2() == '*' {
			l.advance()
			l.advance()
			if err := l.skipBlockComment(); err != nil {
				return Token{}, err
			}
			continue
		}
		break
	}

	ch := l.peek()
	line, col := l.line, l.col()

	if unicode.IsLetter(ch) || ch == '_' {
		return l.scanIdent(), nil
	}
	if isDecimalDigit(ch) {
		return l.scanInt()
	}

	tok := func(tt TokenType, lexeme string) (Token, error) {
		return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col}, nil
	}

	l.advance() // consume the character before the switch
	switch ch {
	case '{':
		return tok(LBRACE, "{")
	case '}':
		return tok(RBRACE, "}")
	case '(':
		return tok(LPAREN, "(")
	case ')':
		return tok(RPAREN, ")")
	case ';':
		return tok(SEMICOLON, ";")
	case '+':
		return tok(PLUS, "+")
	case '-':
		return tok(MINUS, "-")
	case '*':
		return tok(STAR, "*")
	case '/':
		return tok(SLASH, "/")
	case '!':
		if l.peek() == '=' {
			l.advance()
			return tok(NOT_EQ, "!=")
		}
	case '<':
		if l.peek() == '=' {
			l.advance()
			return tok(LESS_EQ, "<=")
		}
		return tok(LESS, "<")
	case '>':
		if l.peek() == '=' {
			l.advance()
			return tok(GREATER_EQ, ">=")
		}
		return tok(GREATER, ">")
	case '=':
		if l.peek() == '=' { // lookahead: distinguish = vs ==
			l.advance()
			return tok(EQUALS, "==")
		}
		return tok(ASSIGN, "=")
	}
	return Token{}, fmt.Errorf("unexpected character %q at line %d col %d", ch, line, col)
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns a non-nil error on the first illegal character or unterminated comment.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
