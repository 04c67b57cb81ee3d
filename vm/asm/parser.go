// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package asm implements the two-pass assembler for the robot instruction
// set (spec.md §4.3): a lexer → token stream → instruction-list parser,
// grounded on the structure of probe-lang/lang/parser but narrowed from a
// full expression/statement grammar to this ISA's flat line-oriented one.
package asm

import (
	"strconv"
	"strings"

	"github.com/probechain/botarena/vm"
	"github.com/probechain/botarena/vm/asm/lexer"
	"github.com/probechain/botarena/vm/asm/token"
)

// Result is the output of a successful parse (spec.md §4.3): the resolved
// instruction sequence and the label-to-index mapping.
type Result struct {
	Program []vm.Instruction
	Labels  map[string]int
}

// pendingInstr is an instruction line recorded during pass one, queued for
// full operand resolution in pass two.
type pendingInstr struct {
	index int
	line  int
	toks  []token.Token // mnemonic followed by raw operand tokens
}

// Parse assembles source into a Result. predefined seeds the constants map
// before any `.const` directive is processed (spec.md §4.8: the Game loop
// supplies ARENA_WIDTH/ARENA_HEIGHT here).
func Parse(source string, predefined map[string]float64) (*Result, error) {
	lines := splitLines(lexer.New(source).Tokenize())

	consts := make(map[string]float64, len(predefined))
	builtin := make(map[string]bool, len(predefined))
	for k, v := range predefined {
		consts[k] = v
		builtin[k] = true
	}

	labels := make(map[string]int)
	var pendingLabels []string
	var pending []pendingInstr

	// Pass one: strip comments (already done by the lexer), resolve
	// `.const`, bind labels to the next instruction index, count
	// instructions.
	for _, ln := range lines {
		toks := ln.toks
		for len(toks) >= 2 && toks[0].Type == token.IDENT && toks[1].Type == token.COLON {
			name := toks[0].Literal
			if _, exists := labels[name]; exists {
				return nil, newError(ln.line, DuplicateLabel, "label %q already defined", name)
			}
			for _, p := range pendingLabels {
				if p == name {
					return nil, newError(ln.line, DuplicateLabel, "label %q already defined", name)
				}
			}
			pendingLabels = append(pendingLabels, name)
			toks = toks[2:]
		}
		if len(toks) > 0 && toks[0].Type == token.COLON {
			return nil, newError(ln.line, EmptyLabel, "label has no name")
		}
		if len(toks) == 0 {
			continue
		}
		if toks[0].Type == token.DOT {
			if err := handleDirective(toks, ln.line, consts, builtin); err != nil {
				return nil, err
			}
			continue
		}
		if toks[0].Type != token.IDENT {
			return nil, newError(ln.line, UnknownInstruction, "expected instruction, got %q", toks[0].Literal)
		}
		idx := len(pending)
		for _, name := range pendingLabels {
			labels[name] = idx
		}
		pendingLabels = nil
		pending = append(pending, pendingInstr{index: idx, line: ln.line, toks: toks})
	}
	for _, name := range pendingLabels {
		labels[name] = len(pending)
	}

	// Pass two: resolve mnemonics, operands, and label references.
	program := make([]vm.Instruction, len(pending))
	for _, pi := range pending {
		in, err := parseInstruction(pi, labels, consts)
		if err != nil {
			return nil, err
		}
		program[pi.index] = in
	}

	return &Result{Program: program, Labels: labels}, nil
}

type sourceLine struct {
	toks []token.Token
	line int
}

// splitLines groups a flat token stream into one slice per physical source
// line, dropping NEWLINE/EOF markers.
func splitLines(toks []token.Token) []sourceLine {
	var lines []sourceLine
	var cur []token.Token
	curLine := 1
	for _, t := range toks {
		switch t.Type {
		case token.NEWLINE:
			lines = append(lines, sourceLine{toks: cur, line: curLine})
			cur = nil
			curLine = t.Line + 1
		case token.EOF:
			if len(cur) > 0 {
				lines = append(lines, sourceLine{toks: cur, line: curLine})
			}
		default:
			if len(cur) == 0 {
				curLine = t.Line
			}
			cur = append(cur, t)
		}
	}
	return lines
}

// handleDirective processes `.const NAME EXPR`.
func handleDirective(toks []token.Token, line int, consts map[string]float64, builtin map[string]bool) error {
	if len(toks) < 2 || toks[1].Type != token.IDENT || toks[1].Literal != "const" {
		return newError(line, UnknownInstruction, "unknown directive")
	}
	if len(toks) < 3 || toks[2].Type != token.IDENT {
		return newError(line, MissingOperand, ".const requires a name")
	}
	name := toks[2].Literal
	if len(toks) < 4 {
		return newError(line, MissingOperand, ".const %s requires an expression", name)
	}
	if builtin[name] {
		return newError(line, RedefinedBuiltin, "cannot redefine builtin constant %q", name)
	}
	if _, exists := consts[name]; exists {
		return newError(line, DuplicateConstant, "constant %q already defined", name)
	}
	v, err := evalExpr(toks[3:], line, consts)
	if err != nil {
		return err
	}
	consts[name] = v
	return nil
}

// jumpAliases maps the je/jne synonyms (spec.md §4.5) to their canonical
// mnemonics before opcode lookup.
var jumpAliases = map[string]string{"je": "jz", "jne": "jnz"}

func parseInstruction(pi pendingInstr, labels map[string]int, consts map[string]float64) (vm.Instruction, error) {
	mnemTok := pi.toks[0]
	name := strings.ToLower(mnemTok.Literal)
	if alias, ok := jumpAliases[name]; ok {
		name = alias
	}
	op, ok := vm.LookupOpcode(name)
	if !ok {
		return vm.Instruction{}, newError(pi.line, UnknownInstruction, "unknown instruction %q", mnemTok.Literal)
	}
	groups := splitOperands(pi.toks[1:])
	in := vm.Instruction{Op: op, Line: pi.line}

	switch op {
	case vm.OpPush:
		if len(groups) != 1 {
			return vm.Instruction{}, newError(pi.line, MissingOperand, "push requires one operand")
		}
		operand, err := parseOperand(groups[0], pi.line, consts)
		if err != nil {
			return vm.Instruction{}, err
		}
		in.Ops = []vm.Operand{operand}

	case vm.OpPop:
		reg, err := requireRegisterGroup(groups, pi.line, "pop")
		if err != nil {
			return vm.Instruction{}, err
		}
		in.Dst, in.HasDst = reg, true

	case vm.OpPopDiscard, vm.OpDup, vm.OpSwap, vm.OpDeselect, vm.OpRet, vm.OpNop, vm.OpScan:
		if len(groups) != 0 {
			return vm.Instruction{}, newError(pi.line, InvalidOperand, "%s takes no operands", name)
		}

	case vm.OpMov:
		if len(groups) != 2 {
			return vm.Instruction{}, newError(pi.line, MissingOperand, "mov requires a destination register and a source operand")
		}
		reg, err := requireRegisterGroup(groups[:1], pi.line, "mov")
		if err != nil {
			return vm.Instruction{}, err
		}
		src, err := parseOperand(groups[1], pi.line, consts)
		if err != nil {
			return vm.Instruction{}, err
		}
		in.Dst, in.HasDst = reg, true
		in.Ops = []vm.Operand{src}

	case vm.OpCmp:
		if len(groups) != 2 {
			return vm.Instruction{}, newError(pi.line, MissingOperand, "cmp requires two operands")
		}
		a, err := parseOperand(groups[0], pi.line, consts)
		if err != nil {
			return vm.Instruction{}, err
		}
		b, err := parseOperand(groups[1], pi.line, consts)
		if err != nil {
			return vm.Instruction{}, err
		}
		in.Ops = []vm.Operand{a, b}

	case vm.OpLod:
		reg, err := requireRegisterGroup(groups, pi.line, "lod")
		if err != nil {
			return vm.Instruction{}, err
		}
		in.Dst, in.HasDst = reg, true

	case vm.OpSto, vm.OpSelect, vm.OpRotate, vm.OpDrive, vm.OpFire, vm.OpSleep:
		if len(groups) != 1 {
			return vm.Instruction{}, newError(pi.line, MissingOperand, "%s requires one operand", name)
		}
		operand, err := parseOperand(groups[0], pi.line, consts)
		if err != nil {
			return vm.Instruction{}, err
		}
		in.Ops = []vm.Operand{operand}

	case vm.OpDbg:
		if len(groups) > 1 {
			return vm.Instruction{}, newError(pi.line, InvalidOperand, "dbg takes at most one operand")
		}
		if len(groups) == 1 {
			operand, err := parseOperand(groups[0], pi.line, consts)
			if err != nil {
				return vm.Instruction{}, err
			}
			in.Ops = []vm.Operand{operand}
		}

	case vm.OpJmp, vm.OpJz, vm.OpJnz, vm.OpJl, vm.OpJle, vm.OpJg, vm.OpJge, vm.OpCall, vm.OpLoop:
		if len(groups) != 1 || len(groups[0]) != 1 || groups[0][0].Type != token.IDENT {
			return vm.Instruction{}, newError(pi.line, MissingOperand, "%s requires a label operand", name)
		}
		target, ok := labels[groups[0][0].Literal]
		if !ok {
			return vm.Instruction{}, newError(pi.line, UnknownLabel, "unknown label %q", groups[0][0].Literal)
		}
		in.Target = target

	default:
		if !op.IsFormFamily() {
			return vm.Instruction{}, newError(pi.line, UnknownInstruction, "instruction %q is not supported by this assembler", name)
		}
		arity := op.Arity()
		switch len(groups) {
		case 0:
			in.Form = vm.FormStack
		case arity:
			in.Form = vm.FormOperand
			ops := make([]vm.Operand, 0, arity)
			for _, g := range groups {
				operand, err := parseOperand(g, pi.line, consts)
				if err != nil {
					return vm.Instruction{}, err
				}
				ops = append(ops, operand)
			}
			in.Ops = ops
		default:
			return vm.Instruction{}, newError(pi.line, InvalidOperand, "%s requires 0 or %d operands, got %d", name, arity, len(groups))
		}
	}

	return in, nil
}

// requireRegisterGroup asserts that groups has exactly one operand group
// naming a register, returning it.
func requireRegisterGroup(groups [][]token.Token, line int, mnemonic string) (vm.Register, error) {
	if len(groups) != 1 {
		return 0, newError(line, MissingOperand, "%s requires a register operand", mnemonic)
	}
	g := groups[0]
	if len(g) != 2 || g[0].Type != token.AT || g[1].Type != token.IDENT {
		return 0, newError(line, InvalidOperand, "%s requires a register operand", mnemonic)
	}
	reg, ok := vm.LookupRegister(g[1].Literal)
	if !ok {
		return 0, newError(line, InvalidOperand, "unknown register %q", g[1].Literal)
	}
	return reg, nil
}

// splitOperands splits a token slice on commas into operand groups.
func splitOperands(toks []token.Token) [][]token.Token {
	if len(toks) == 0 {
		return nil
	}
	var groups [][]token.Token
	start := 0
	for i, t := range toks {
		if t.Type == token.COMMA {
			groups = append(groups, toks[start:i])
			start = i + 1
		}
	}
	groups = append(groups, toks[start:])
	return groups
}

// parseOperand resolves one operand group to a vm.Operand: a register
// reference, an immediate literal, or a bare identifier resolved against
// the constants map (spec.md §4.3 pass two).
func parseOperand(g []token.Token, line int, consts map[string]float64) (vm.Operand, error) {
	switch {
	case len(g) == 2 && g[0].Type == token.AT && g[1].Type == token.IDENT:
		reg, ok := vm.LookupRegister(g[1].Literal)
		if !ok {
			return vm.Operand{}, newError(line, InvalidOperand, "unknown register %q", g[1].Literal)
		}
		return vm.RegisterOperand(reg), nil
	case len(g) == 1 && g[0].Type == token.NUMBER:
		v, err := strconv.ParseFloat(g[0].Literal, 64)
		if err != nil {
			return vm.Operand{}, newError(line, InvalidOperand, "malformed number %q", g[0].Literal)
		}
		return vm.ValueOperand(v), nil
	case len(g) == 2 && g[0].Type == token.MINUS && g[1].Type == token.NUMBER:
		v, err := strconv.ParseFloat(g[1].Literal, 64)
		if err != nil {
			return vm.Operand{}, newError(line, InvalidOperand, "malformed number %q", g[1].Literal)
		}
		return vm.ValueOperand(-v), nil
	case len(g) == 1 && g[0].Type == token.IDENT:
		v, ok := consts[g[0].Literal]
		if !ok {
			return vm.Operand{}, newError(line, InvalidOperand, "unknown identifier %q", g[0].Literal)
		}
		return vm.ValueOperand(v), nil
	default:
		return vm.Operand{}, newError(line, InvalidOperand, "malformed operand")
	}
}
