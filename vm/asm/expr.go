// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package asm

import (
	"math"
	"strconv"

	"github.com/probechain/botarena/vm/asm/token"
)

// exprParser is a small recursive-descent evaluator over the five
// arithmetic operators (+ - * / %) used by `.const` expressions (spec.md §4.3),
// grounded on the teacher parser's precedence-table structure
// (probe-lang/lang/parser) but collapsed to the handful of levels this
// grammar needs: additive, multiplicative, unary minus, parentheses.
type exprParser struct {
	toks []token.Token
	pos  int
	line int

	consts map[string]float64
}

func newExprParser(toks []token.Token, line int, consts map[string]float64) *exprParser {
	return &exprParser{toks: toks, line: line, consts: consts}
}

func (p *exprParser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Type: token.EOF, Line: p.line}
	}
	return p.toks[p.pos]
}

func (p *exprParser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// evalExpr parses and evaluates the full token slice as one expression,
// failing if tokens remain afterward (unbalanced parentheses or trailing
// garbage).
func evalExpr(toks []token.Token, line int, consts map[string]float64) (float64, error) {
	p := newExprParser(toks, line, consts)
	v, err := p.parseAdditive()
	if err != nil {
		return 0, err
	}
	if p.cur().Type == token.RPAREN {
		return 0, newError(p.line, UnbalancedParentheses, "unmatched )")
	}
	if p.cur().Type != token.EOF {
		return 0, newError(p.line, UnknownToken, "unexpected token %q", p.cur().Literal)
	}
	return v, nil
}

func (p *exprParser) parseAdditive() (float64, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return 0, err
	}
	for {
		switch p.cur().Type {
		case token.PLUS:
			p.advance()
			right, err := p.parseMultiplicative()
			if err != nil {
				return 0, err
			}
			left += right
		case token.MINUS:
			p.advance()
			right, err := p.parseMultiplicative()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseMultiplicative() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.cur().Type {
		case token.STAR:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case token.SLASH:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, newError(p.line, DivisionByZero, "division by zero in constant expression")
			}
			left /= right
		case token.PERCENT:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, newError(p.line, ModuloByZero, "modulo by zero in constant expression")
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	if p.cur().Type == token.MINUS {
		p.advance()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (float64, error) {
	t := p.advance()
	switch t.Type {
	case token.NUMBER:
		v, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return 0, newError(p.line, InvalidExpression, "malformed number %q", t.Literal)
		}
		return v, nil
	case token.IDENT:
		v, ok := p.consts[t.Literal]
		if !ok {
			return 0, newError(p.line, InvalidExpression, "unknown identifier %q in expression", t.Literal)
		}
		return v, nil
	case token.LPAREN:
		v, err := p.parseAdditive()
		if err != nil {
			return 0, err
		}
		if p.cur().Type != token.RPAREN {
			return 0, newError(p.line, UnbalancedParentheses, "expected )")
		}
		p.advance()
		return v, nil
	case token.EOF:
		return 0, newError(p.line, InvalidExpression, "unexpected end of expression")
	default:
		return 0, newError(p.line, UnknownToken, "unexpected token %q", t.Literal)
	}
}
