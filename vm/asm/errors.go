// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package asm

import "fmt"

// ErrorKind classifies a parse error (spec.md §7). Parser errors are fatal
// to game start, unlike vm.Fault which is latched on a single robot.
type ErrorKind int

const (
	UnknownInstruction ErrorKind = iota
	MissingOperand
	InvalidOperand
	UnknownLabel
	DuplicateLabel
	EmptyLabel
	DuplicateConstant
	RedefinedBuiltin
	InvalidExpression

	// Sub-kinds of InvalidExpression.
	DivisionByZero
	ModuloByZero
	UnbalancedParentheses
	UnknownToken
)

var kindNames = [...]string{
	UnknownInstruction:    "unknown instruction",
	MissingOperand:        "missing operand",
	InvalidOperand:        "invalid operand",
	UnknownLabel:          "unknown label",
	DuplicateLabel:        "duplicate label",
	EmptyLabel:            "empty label",
	DuplicateConstant:     "duplicate constant",
	RedefinedBuiltin:      "redefined builtin constant",
	InvalidExpression:     "invalid expression",
	DivisionByZero:        "division by zero",
	ModuloByZero:          "modulo by zero",
	UnbalancedParentheses: "unbalanced parentheses",
	UnknownToken:          "unknown token",
}

func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("errorkind(%d)", int(k))
}

// ParseError is a line-tagged assembly error (spec.md §4.3, §7).
type ParseError struct {
	Line    int
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
}

func newError(line int, kind ErrorKind, format string, args ...any) error {
	return &ParseError{Line: line, Kind: kind, Message: fmt.Sprintf(format, args...)}
}
