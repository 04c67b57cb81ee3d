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

// stackProcessor implements push/pop/popd/dup/swap (spec.md §4.5).
type stackProcessor struct{}

func (stackProcessor) handles(op Opcode) bool {
	switch op {
	case OpPush, OpPop, OpPopDiscard, OpDup, OpSwap:
		return true
	}
	return false
}

func (stackProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	switch in.Op {
	case OpPush:
		if err := s.Operands.Push(in.Ops[0].Eval(&s.Registers)); err != nil {
			return err
		}
	case OpPop:
		v, err := s.Operands.Pop()
		if err != nil {
			return err
		}
		if err := s.Registers.Set(in.Dst, v); err != nil {
			return err
		}
	case OpPopDiscard:
		if _, err := s.Operands.Pop(); err != nil {
			return err
		}
	case OpDup:
		if err := s.Operands.Dup(); err != nil {
			return err
		}
	case OpSwap:
		if err := s.Operands.Swap(); err != nil {
			return err
		}
	}
	s.advance()
	return nil
}
