// Package compiler provides a scanner, a table-driven SLR(1) parser and a
// reduce-driven code generator for a small typed language, targeting MIPS32
// assembly text.
//
// Pipeline: source → Lex → Parser (Semantics, CodeGen on every reduction) → assembly text
package compiler
