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

// registerProcessor implements mov/cmp/lod/sto (spec.md §4.5). Lod and Sto
// address Memory through the Index register, which they post-increment —
// the ISA's only addressing mode, chosen so program text never encodes a
// raw literal address.
type registerProcessor struct{}

func (registerProcessor) handles(op Opcode) bool {
	switch op {
	case OpMov, OpCmp, OpLod, OpSto:
		return true
	}
	return false
}

func (registerProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	switch in.Op {
	case OpMov:
		if err := s.Registers.Set(in.Dst, in.Ops[0].Eval(&s.Registers)); err != nil {
			return err
		}
	case OpCmp:
		a := in.Ops[0].Eval(&s.Registers)
		b := in.Ops[1].Eval(&s.Registers)
		s.Registers.SetInternal(Result, a-b)
	case OpLod:
		addr := int(s.Registers.Get(Index))
		v, err := s.Memory.Read(addr)
		if err != nil {
			return err
		}
		if err := s.Registers.Set(in.Dst, v); err != nil {
			return err
		}
		s.Registers.SetInternal(Index, float64(addr+1))
	case OpSto:
		addr := int(s.Registers.Get(Index))
		if err := s.Memory.Write(addr, in.Ops[0].Eval(&s.Registers)); err != nil {
			return err
		}
		s.Registers.SetInternal(Index, float64(addr+1))
	}
	s.advance()
	return nil
}
