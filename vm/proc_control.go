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

// resultEpsilon is the tolerance Cmp's conditional jumps use against the
// Result register, so that float rounding in an upstream arithmetic
// instruction cannot flip a jump that was meant to be taken (spec.md §4.5).
const resultEpsilon = 1e-9

// controlProcessor implements jmp/jz/jnz/jl/jle/jg/jge/call/ret/loop
// (spec.md §4.5). Jump targets are pre-resolved instruction indices
// (Instruction.Target), not byte offsets.
type controlProcessor struct{}

func (controlProcessor) handles(op Opcode) bool {
	switch op {
	case OpJmp, OpJz, OpJnz, OpJl, OpJle, OpJg, OpJge, OpCall, OpRet, OpLoop:
		return true
	}
	return false
}

func (controlProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	switch in.Op {
	case OpJmp:
		s.jump(in.Target)
		return nil
	case OpJz, OpJnz, OpJl, OpJle, OpJg, OpJge:
		result := s.Registers.Get(Result)
		take := false
		switch in.Op {
		case OpJz:
			take = math.Abs(result) <= resultEpsilon
		case OpJnz:
			take = math.Abs(result) > resultEpsilon
		case OpJl:
			take = result < -resultEpsilon
		case OpJle:
			take = result <= resultEpsilon
		case OpJg:
			take = result > resultEpsilon
		case OpJge:
			take = result >= -resultEpsilon
		}
		if take {
			s.jump(in.Target)
		} else {
			s.advance()
		}
		return nil
	case OpCall:
		ret := s.ip + 1
		if err := s.Calls.Push(ret); err != nil {
			// ip still advances on call-stack overflow, per spec.md
			// §4.5's exception to the fault-does-not-advance-ip rule.
			s.ip = ret
			return err
		}
		s.jump(in.Target)
		return nil
	case OpRet:
		addr, err := s.Calls.Pop()
		if err != nil {
			return err
		}
		s.jump(addr)
		return nil
	case OpLoop:
		c := s.Registers.Get(C) - 1
		s.Registers.SetInternal(C, c)
		if math.Abs(c) > resultEpsilon {
			s.jump(in.Target)
		} else {
			s.advance()
		}
		return nil
	}
	return ErrInvalidInstruction
}
