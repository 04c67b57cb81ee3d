// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package lexer implements a single-pass, no-backtracking lexer for the
// robot assembly language (spec.md §4.3), grounded on the structure of
// probe-lang/lang/lexer but narrowed to this grammar's much smaller
// character set and its three line-trailing comment markers.
package lexer

import (
	"github.com/probechain/botarena/vm/asm/token"
)

// Lexer holds the state for a single-pass tokenization run.
type Lexer struct {
	input []byte

	pos  int
	line int
	col  int

	ch byte
}

// New creates a Lexer over the given source text.
func New(input string) *Lexer {
	l := &Lexer{input: []byte(input), line: 1, col: 0}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	if l.pos >= len(l.input) {
		// Step pos one past the end so that l.pos-1 stays the index just
		// after the last consumed byte, as it is mid-input.
		l.ch = 0
		l.pos = len(l.input) + 1
		return
	}
	l.ch = l.input[l.pos]
	l.pos++
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func makeToken(typ token.Type, lit string, line, col int) token.Token {
	return token.Token{Type: typ, Literal: lit, Line: line, Col: col}
}

// skipLineComment consumes from the current position through end of line,
// not including the newline itself. The caller has already recognized one
// of the three comment markers (';', '#', "//").
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.advance()
	}
}

// NextToken scans and returns the next token. After EOF, subsequent calls
// keep returning EOF.
func (l *Lexer) NextToken() token.Token {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.advance()
	}

	line, col := l.line, l.col
	ch := l.ch

	if ch == 0 {
		return makeToken(token.EOF, "", line, col)
	}

	switch {
	case ch == '\n':
		l.advance()
		return makeToken(token.NEWLINE, "\n", line, col)

	case ch == ';' || ch == '#':
		l.skipLineComment()
		return l.NextToken()

	case ch == '/' && l.peek() == '/':
		l.advance()
		l.advance()
		l.skipLineComment()
		return l.NextToken()

	case isIdentStart(ch):
		lit := l.readIdent()
		return makeToken(token.IDENT, lit, line, col)

	case isDigit(ch):
		lit := l.readNumber()
		return makeToken(token.NUMBER, lit, line, col)

	case ch == '@':
		l.advance()
		return makeToken(token.AT, "@", line, col)
	case ch == ':':
		l.advance()
		return makeToken(token.COLON, ":", line, col)
	case ch == ',':
		l.advance()
		return makeToken(token.COMMA, ",", line, col)
	case ch == '.':
		l.advance()
		return makeToken(token.DOT, ".", line, col)
	case ch == '+':
		l.advance()
		return makeToken(token.PLUS, "+", line, col)
	case ch == '-':
		l.advance()
		return makeToken(token.MINUS, "-", line, col)
	case ch == '*':
		l.advance()
		return makeToken(token.STAR, "*", line, col)
	case ch == '/':
		l.advance()
		return makeToken(token.SLASH, "/", line, col)
	case ch == '%':
		l.advance()
		return makeToken(token.PERCENT, "%", line, col)
	case ch == '(':
		l.advance()
		return makeToken(token.LPAREN, "(", line, col)
	case ch == ')':
		l.advance()
		return makeToken(token.RPAREN, ")", line, col)
	}

	l.advance()
	return makeToken(token.ILLEGAL, string([]byte{ch}), line, col)
}

// Tokenize returns every token (including the trailing EOF) in the input.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) readIdent() string {
	start := l.pos - 1
	for isIdentContinue(l.ch) {
		l.advance()
	}
	return string(l.input[start : l.pos-1])
}

// readNumber reads a decimal real literal: digits, optional '.' + digits,
// optional exponent. The grammar has no hex or integer-only literals —
// every numeric operand is a float64 (spec.md §4.3).
func (l *Lexer) readNumber() string {
	start := l.pos - 1
	for isDigit(l.ch) {
		l.advance()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		save := l.pos
		saveCh := l.ch
		saveCol := l.col
		l.advance()
		if l.ch == '+' || l.ch == '-' {
			l.advance()
		}
		if isDigit(l.ch) {
			for isDigit(l.ch) {
				l.advance()
			}
		} else {
			// Not actually an exponent; rewind.
			l.pos, l.ch, l.col = save, saveCh, saveCol
		}
	}
	return string(l.input[start : l.pos-1])
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
