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

// miscProcessor implements nop/dbg/sleep (spec.md §4.5). Sleep's entire
// effect is its elevated CycleCost; the dispatch itself is a no-op once the
// budget has been computed.
type miscProcessor struct{}

func (miscProcessor) handles(op Opcode) bool {
	switch op {
	case OpNop, OpDbg, OpSleep:
		return true
	}
	return false
}

func (miscProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	if in.Op == OpDbg && len(in.Ops) > 0 {
		s.LastDebug = in.Ops[0].Eval(&s.Registers)
	}
	s.advance()
	return nil
}
