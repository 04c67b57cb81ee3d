// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"fmt"
	"math"
)

// Opcode is the tag of a closed sum of instruction variants (spec.md §4.4).
// As with the teacher's Opcode, the mnemonic table below is the single
// source of truth for the name and operand shape of every variant.
type Opcode int

const (
	// Stack
	OpPush Opcode = iota
	OpPop
	OpPopDiscard
	OpDup
	OpSwap

	// Register
	OpMov
	OpCmp
	OpLod
	OpSto

	// Arithmetic (stack form and operand form, selected by Instruction.Form)
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpDivmod
	OpPow
	OpSqrt
	OpLog

	// Trigonometry (stack form and operand form)
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpAtan2
	OpAbs

	// Bitwise (stack form and operand form)
	OpAnd
	OpOr
	OpXor
	OpNot
	OpShl
	OpShr

	// Control flow
	OpJmp
	OpJz
	OpJnz
	OpJl
	OpJle
	OpJg
	OpJge
	OpCall
	OpRet
	OpLoop

	// Component
	OpSelect
	OpDeselect
	OpRotate
	OpDrive

	// Combat
	OpFire
	OpScan

	// Misc
	OpNop
	OpDbg
	OpSleep

	opcodeCount
)

// Form distinguishes the stack-operand and explicit-operand renderings of
// the arithmetic/trig/bitwise families (spec.md §4.5). Families without the
// distinction (stack ops, control flow, component, combat, misc) always use
// FormNone.
type Form int

const (
	FormNone Form = iota
	FormStack
	FormOperand
)

// arity reports how many values a stack-form or operand-form instruction in
// this family consumes (1 for unary ops like Sqrt/Abs/Not, 2 for the rest).
func (op Opcode) arity() int {
	switch op {
	case OpSqrt, OpLog, OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan, OpAbs, OpNot:
		return 1
	default:
		return 2
	}
}

// Arity exports arity for the assembler, which needs it to decide whether a
// parsed arithmetic/trig/bitwise line is the stack form (zero operands) or
// the operand form (exactly Arity() operands).
func (op Opcode) Arity() int { return op.arity() }

// IsFormFamily reports whether op belongs to the arithmetic, trigonometry,
// or bitwise families, the only ones with a stack/operand form distinction.
func (op Opcode) IsFormFamily() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpDivmod, OpPow, OpSqrt, OpLog,
		OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan, OpAtan2, OpAbs,
		OpAnd, OpOr, OpXor, OpNot, OpShl, OpShr:
		return true
	}
	return false
}

var mnemonics = [opcodeCount]string{
	OpPush: "push", OpPop: "pop", OpPopDiscard: "popd", OpDup: "dup", OpSwap: "swap",
	OpMov: "mov", OpCmp: "cmp", OpLod: "lod", OpSto: "sto",
	OpAdd: "add", OpSub: "sub", OpMul: "mul", OpDiv: "div", OpMod: "mod",
	OpDivmod: "divmod", OpPow: "pow", OpSqrt: "sqrt", OpLog: "log",
	OpSin: "sin", OpCos: "cos", OpTan: "tan", OpAsin: "asin", OpAcos: "acos",
	OpAtan: "atan", OpAtan2: "atan2", OpAbs: "abs",
	OpAnd: "and", OpOr: "or", OpXor: "xor", OpNot: "not", OpShl: "shl", OpShr: "shr",
	OpJmp: "jmp", OpJz: "jz", OpJnz: "jnz", OpJl: "jl", OpJle: "jle", OpJg: "jg", OpJge: "jge",
	OpCall: "call", OpRet: "ret", OpLoop: "loop",
	OpSelect: "select", OpDeselect: "deselect", OpRotate: "rotate", OpDrive: "drive",
	OpFire: "fire", OpScan: "scan",
	OpNop: "nop", OpDbg: "dbg", OpSleep: "sleep",
}

// String returns the opcode's canonical mnemonic.
func (op Opcode) String() string {
	if int(op) < 0 || int(op) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[op]
}

var opcodeByName = func() map[string]Opcode {
	m := make(map[string]Opcode, len(mnemonics))
	for i, name := range mnemonics {
		m[name] = Opcode(i)
	}
	return m
}()

// LookupOpcode resolves a mnemonic (lowercase, canonical form only — the
// assembler handles the je/jne synonyms itself) to its Opcode.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeByName[name]
	return op, ok
}

// Operand is either an immediate value or a register reference, resolved at
// parse time (spec.md §4.3: "an immediate real literal or a register name
// prefixed with @").
type Operand struct {
	IsRegister bool
	Reg        Register
	Value      float64
}

// ValueOperand constructs an immediate operand.
func ValueOperand(v float64) Operand { return Operand{Value: v} }

// RegisterOperand constructs a register-reference operand.
func RegisterOperand(r Register) Operand { return Operand{IsRegister: true, Reg: r} }

// Eval resolves the operand against the given register file.
func (o Operand) Eval(rf *RegisterFile) float64 {
	if o.IsRegister {
		return rf.Get(o.Reg)
	}
	return o.Value
}

func (o Operand) String() string {
	if o.IsRegister {
		return "@" + o.Reg.String()
	}
	return fmt.Sprintf("%g", o.Value)
}

// Instruction is a single parsed/resolved program step. Fields are
// interpreted according to Op (and Form, for the arithmetic/trig/bitwise
// families) — an idiomatic-Go rendering of the teacher's fixed a/b/c/imm16
// instruction word, generalized from fixed register slots to a small
// variable-length operand list since this ISA's operands are a mix of
// immediates and named registers rather than raw register indices.
type Instruction struct {
	Op     Opcode
	Form   Form
	Dst    Register // destination register, when Op writes one directly (Pop, Dup-into-reg is N/A, Mov, Lod)
	HasDst bool
	Ops    []Operand // generic operands; meaning depends on Op (see processors)
	Target int       // resolved instruction index for control-flow opcodes
	Line   int       // 1-based source line (debug/fault messages)
}

// String renders the instruction in assembly-like form, used by Dbg output
// and the external snapshot-read "current instruction" field (spec.md §6).
func (in Instruction) String() string {
	parts := make([]string, 0, len(in.Ops)+1)
	for _, o := range in.Ops {
		parts = append(parts, o.String())
	}
	switch in.Op {
	case OpJmp, OpJz, OpJnz, OpJl, OpJle, OpJg, OpJge, OpCall, OpLoop:
		return fmt.Sprintf("%s %d", in.Op, in.Target)
	}
	if in.HasDst {
		parts = append([]string{"@" + in.Dst.String()}, parts...)
	}
	if len(parts) == 0 {
		return in.Op.String()
	}
	out := in.Op.String()
	for i, p := range parts {
		if i == 0 {
			out += " " + p
		} else {
			out += ", " + p
		}
	}
	return out
}

// CycleCost reports how many VM cycles this instruction owes before it
// retires (spec.md §4.4). Rotate scales with the magnitude of its operand,
// evaluated at dispatch time against the current register file — per
// spec.md §9's Open Question resolution, a register operand that changes
// mid-cycle does not retroactively change an already-dispatched cost.
func (in Instruction) CycleCost(rf *RegisterFile) int {
	switch in.Op {
	case OpPow, OpSqrt, OpLog,
		OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan, OpAtan2:
		return 2
	case OpCall, OpRet:
		return 2
	case OpFire:
		return 3
	case OpRotate:
		angle := in.Ops[0].Eval(rf)
		return 1 + int(math.Ceil(math.Abs(angle)/45.0))
	case OpSleep:
		n := in.Ops[0].Eval(rf)
		cycles := int(math.Floor(n))
		if cycles < 1 {
			cycles = 1
		}
		return cycles
	default:
		return 1
	}
}
