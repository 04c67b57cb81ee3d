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

import "math"

// arithmeticProcessor implements add/sub/mul/div/mod/divmod/pow/sqrt/log in
// both the stack form (operands popped, result(s) pushed) and the operand
// form (operands named explicitly, result written to Result) (spec.md
// §4.5). Divmod's operand form writes only the quotient to Result — the
// form exists to read one scalar result per cycle, and the remainder
// remains available through the stack form when both are needed.
type arithmeticProcessor struct{}

func (arithmeticProcessor) handles(op Opcode) bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpDivmod, OpPow, OpSqrt, OpLog:
		return true
	}
	return false
}

func binaryArith(op Opcode, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case OpMod:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return math.Mod(a, b), nil
	case OpPow:
		return math.Pow(a, b), nil
	}
	return 0, ErrInvalidInstruction
}

func unaryArith(op Opcode, a float64) float64 {
	switch op {
	case OpSqrt:
		return math.Sqrt(a)
	case OpLog:
		return math.Log(a)
	}
	return 0
}

// divmod computes the floored quotient and matching remainder such that
// a == q*b + r (spec.md §8 testable property; the source language's "%"
// truncates the quotient toward negative infinity via floor, not toward
// zero).
func divmod(a, b float64) (q, r float64, err error) {
	if b == 0 {
		return 0, 0, ErrDivisionByZero
	}
	q = math.Floor(a / b)
	r = a - q*b
	return q, r, nil
}

func (arithmeticProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	switch in.Form {
	case FormStack:
		if in.Op == OpSqrt || in.Op == OpLog {
			a, err := s.Operands.Pop()
			if err != nil {
				return err
			}
			if err := s.Operands.Push(unaryArith(in.Op, a)); err != nil {
				return err
			}
			break
		}
		if in.Op == OpDivmod {
			b, err := s.Operands.Pop()
			if err != nil {
				return err
			}
			a, err := s.Operands.Pop()
			if err != nil {
				return err
			}
			q, r, err := divmod(a, b)
			if err != nil {
				return err
			}
			// Pushes remainder then quotient, so quotient sits on top and
			// is popped first (spec.md §4.5, §8 scenario 5).
			if err := s.Operands.Push(r); err != nil {
				return err
			}
			if err := s.Operands.Push(q); err != nil {
				return err
			}
			break
		}
		b, err := s.Operands.Pop()
		if err != nil {
			return err
		}
		a, err := s.Operands.Pop()
		if err != nil {
			return err
		}
		result, err := binaryArith(in.Op, a, b)
		if err != nil {
			return err
		}
		if err := s.Operands.Push(result); err != nil {
			return err
		}
	case FormOperand:
		if in.Op == OpSqrt || in.Op == OpLog {
			a := in.Ops[0].Eval(&s.Registers)
			s.Registers.SetInternal(Result, unaryArith(in.Op, a))
			break
		}
		a := in.Ops[0].Eval(&s.Registers)
		b := in.Ops[1].Eval(&s.Registers)
		if in.Op == OpDivmod {
			q, _, err := divmod(a, b)
			if err != nil {
				return err
			}
			s.Registers.SetInternal(Result, q)
			break
		}
		result, err := binaryArith(in.Op, a, b)
		if err != nil {
			return err
		}
		s.Registers.SetInternal(Result, result)
	}
	s.advance()
	return nil
}
