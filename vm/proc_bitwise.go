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

// bitwiseProcessor implements and/or/xor/not/shl/shr in both forms
// (spec.md §4.5). Every register and stack slot is a float64, so bitwise
// operands truncate to int64 for the operation and convert back. A shift
// count is clamped to [0, 31]; a negative count has no sensible clamp and
// is treated as a division-by-zero-class fault rather than silently
// clamping to zero.
type bitwiseProcessor struct{}

func (bitwiseProcessor) handles(op Opcode) bool {
	switch op {
	case OpAnd, OpOr, OpXor, OpNot, OpShl, OpShr:
		return true
	}
	return false
}

func shiftCount(n float64) (int, error) {
	i := int(n)
	if i < 0 {
		return 0, ErrDivisionByZero
	}
	if i > 31 {
		i = 31
	}
	return i, nil
}

func binaryBitwise(op Opcode, a, b float64) (float64, error) {
	ia := int64(a)
	switch op {
	case OpAnd:
		return float64(ia & int64(b)), nil
	case OpOr:
		return float64(ia | int64(b)), nil
	case OpXor:
		return float64(ia ^ int64(b)), nil
	case OpShl:
		n, err := shiftCount(b)
		if err != nil {
			return 0, err
		}
		return float64(ia << uint(n)), nil
	case OpShr:
		n, err := shiftCount(b)
		if err != nil {
			return 0, err
		}
		return float64(ia >> uint(n)), nil
	}
	return 0, ErrInvalidInstruction
}

func (bitwiseProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	switch in.Form {
	case FormStack:
		if in.Op == OpNot {
			a, err := s.Operands.Pop()
			if err != nil {
				return err
			}
			if err := s.Operands.Push(float64(^int64(a))); err != nil {
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
		result, err := binaryBitwise(in.Op, a, b)
		if err != nil {
			return err
		}
		if err := s.Operands.Push(result); err != nil {
			return err
		}
	case FormOperand:
		if in.Op == OpNot {
			a := in.Ops[0].Eval(&s.Registers)
			s.Registers.SetInternal(Result, float64(^int64(a)))
			break
		}
		a := in.Ops[0].Eval(&s.Registers)
		b := in.Ops[1].Eval(&s.Registers)
		result, err := binaryBitwise(in.Op, a, b)
		if err != nil {
			return err
		}
		s.Registers.SetInternal(Result, result)
	}
	s.advance()
	return nil
}
