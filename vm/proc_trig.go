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

// trigProcessor implements sin/cos/tan/asin/acos/atan/atan2/abs in both
// forms (spec.md §4.5). Every angle in this ISA, in registers and on the
// stack alike, is degrees — matching TurretDirection, DriveDirection, and
// Rotate's operand — so trig functions convert to radians internally and
// convert inverse results back to degrees.
type trigProcessor struct{}

func (trigProcessor) handles(op Opcode) bool {
	switch op {
	case OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan, OpAtan2, OpAbs:
		return true
	}
	return false
}

func unaryTrig(op Opcode, a float64) float64 {
	switch op {
	case OpSin:
		return math.Sin(a * math.Pi / 180)
	case OpCos:
		return math.Cos(a * math.Pi / 180)
	case OpTan:
		return math.Tan(a * math.Pi / 180)
	case OpAsin:
		return math.Asin(a) * 180 / math.Pi
	case OpAcos:
		return math.Acos(a) * 180 / math.Pi
	case OpAtan:
		return math.Atan(a) * 180 / math.Pi
	case OpAbs:
		return math.Abs(a)
	}
	return 0
}

func (trigProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	switch in.Form {
	case FormStack:
		if in.Op == OpAtan2 {
			b, err := s.Operands.Pop()
			if err != nil {
				return err
			}
			a, err := s.Operands.Pop()
			if err != nil {
				return err
			}
			if err := s.Operands.Push(math.Atan2(a, b) * 180 / math.Pi); err != nil {
				return err
			}
			break
		}
		a, err := s.Operands.Pop()
		if err != nil {
			return err
		}
		if err := s.Operands.Push(unaryTrig(in.Op, a)); err != nil {
			return err
		}
	case FormOperand:
		if in.Op == OpAtan2 {
			a := in.Ops[0].Eval(&s.Registers)
			b := in.Ops[1].Eval(&s.Registers)
			s.Registers.SetInternal(Result, math.Atan2(a, b)*180/math.Pi)
			break
		}
		a := in.Ops[0].Eval(&s.Registers)
		s.Registers.SetInternal(Result, unaryTrig(in.Op, a))
	}
	s.advance()
	return nil
}
