package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable name
	INTEGER    // decimal integer constant

	// Keywords
	INT   // "int"
	CHAR  // "char"
	BOOL  // "bool"
	IF    // "if"
	ELSE  // "else"  (lexed, no grammar terminal)
	WHILE // "while" (lexed, no grammar terminal)

	// Paired delimiters
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )

	// Punctuation
	SEMICOLON // ;

	// Arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /

	// Assignment / comparison  (order matters: ASSIGN before EQUALS)
	ASSIGN // =

	EQUALS     // ==
	NOT_EQ     // !=
	LESS       // <
	GREATER    // >
	LESS_EQ    // <=
	GREATER_EQ // >=

	numTokenTypes
)

// tokenNames is indexed by TokenType; the compiler enforces the length via the
// array size.
var tokenNames = [numTokenTypes]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	INT:        "INT",
	CHAR:       "CHAR",
	BOOL:       "BOOL",
	IF:         "IF",
	ELSE:       "ELSE",
	WHILE:      "WHILE",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	SEMICOLON:  "SEMICOLON",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	ASSIGN:     "ASSIGN",
	EQUALS:     "EQUALS",
	NOT_EQ:     "NOT_EQ",
	LESS:       "LESS",
	GREATER:    "GREATER",
	LESS_EQ:    "LESS_EQ",
	GREATER_EQ: "GREATER_EQ",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer. Tokens are values and
// are never modified after scanning.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
	Col    int    // 1-based column of the first character
}

// Pos formats the token's source position as "line:col".
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Col)
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d col %d", t.Type, t.Lexeme, t.Line, t.Col)
}
