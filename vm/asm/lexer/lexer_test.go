// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package lexer_test

import (
	"testing"

	"github.com/probechain/botarena/vm/asm/lexer"
	"github.com/probechain/botarena/vm/asm/token"
)

type tokenCase struct {
	typ     token.Type
	literal string
}

func runTokenize(t *testing.T, name, input string, want []tokenCase) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Helper()
		toks := lexer.New(input).Tokenize()
		if len(toks) == 0 {
			t.Fatal("Tokenize returned empty slice")
		}
		last := toks[len(toks)-1]
		if last.Type != token.EOF {
			t.Errorf("last token is %s, want EOF", last.Type)
		}
		body := toks[:len(toks)-1]
		if len(body) != len(want) {
			t.Errorf("got %d tokens (excl. EOF), want %d", len(body), len(want))
			for i, tok := range body {
				t.Logf("  [%d] %s %q", i, tok.Type, tok.Literal)
			}
			return
		}
		for i, w := range want {
			got := body[i]
			if got.Type != w.typ {
				t.Errorf("token[%d]: type = %s, want %s (literal %q)", i, got.Type, w.typ, got.Literal)
			}
			if got.Literal != w.literal {
				t.Errorf("token[%d]: literal = %q, want %q", i, got.Literal, w.literal)
			}
		}
	})
}

func TestSingleCharTokens(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantTyp token.Type
		wantLit string
	}{
		{"at", "@", token.AT, "@"},
		{"colon", ":", token.COLON, ":"},
		{"comma", ",", token.COMMA, ","},
		{"dot", ".", token.DOT, "."},
		{"plus", "+", token.PLUS, "+"},
		{"minus", "-", token.MINUS, "-"},
		{"star", "*", token.STAR, "*"},
		{"slash", "/", token.SLASH, "/"},
		{"percent", "%", token.PERCENT, "%"},
		{"lparen", "(", token.LPAREN, "("},
		{"rparen", ")", token.RPAREN, ")"},
	}
	for _, c := range cases {
		runTokenize(t, c.name, c.input, []tokenCase{{c.wantTyp, c.wantLit}})
	}
}

func TestIdentAndNumber(t *testing.T) {
	runTokenize(t, "mnemonic", "push", []tokenCase{{token.IDENT, "push"}})
	runTokenize(t, "register", "@D0", []tokenCase{{token.AT, "@"}, {token.IDENT, "D0"}})
	runTokenize(t, "integer", "42", []tokenCase{{token.NUMBER, "42"}})
	runTokenize(t, "decimal", "3.14", []tokenCase{{token.NUMBER, "3.14"}})
	runTokenize(t, "exponent", "1e3", []tokenCase{{token.NUMBER, "1e3"}})
	runTokenize(t, "signed-exponent", "1.5e-2", []tokenCase{{token.NUMBER, "1.5e-2"}})
	runTokenize(t, "trailing-e-not-exponent", "1e", []tokenCase{{token.NUMBER, "1"}, {token.IDENT, "e"}})
	runTokenize(t, "underscore-ident", "_label1", []tokenCase{{token.IDENT, "_label1"}})
}

func TestComments(t *testing.T) {
	runTokenize(t, "semicolon", "push 1 ; fire next", []tokenCase{
		{token.IDENT, "push"}, {token.NUMBER, "1"},
	})
	runTokenize(t, "hash", "push 1 # fire next", []tokenCase{
		{token.IDENT, "push"}, {token.NUMBER, "1"},
	})
	runTokenize(t, "slashslash", "push 1 // fire next", []tokenCase{
		{token.IDENT, "push"}, {token.NUMBER, "1"},
	})
}

func TestNewlinesAreSignificant(t *testing.T) {
	runTokenize(t, "two-lines", "nop\nnop", []tokenCase{
		{token.IDENT, "nop"}, {token.NEWLINE, "\n"}, {token.IDENT, "nop"},
	})
}

func TestFullInstructionLine(t *testing.T) {
	runTokenize(t, "mov", "mov @D0, @D1", []tokenCase{
		{token.IDENT, "mov"}, {token.AT, "@"}, {token.IDENT, "D0"},
		{token.COMMA, ","}, {token.AT, "@"}, {token.IDENT, "D1"},
	})
}

func TestIllegalCharacter(t *testing.T) {
	runTokenize(t, "dollar", "$", []tokenCase{{token.ILLEGAL, "$"}})
}
