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

// processor handles one family of opcodes. Dispatch walks the fixed list
// below in order and hands the instruction to the first processor that
// claims it; an instruction no processor claims is an invalid instruction,
// which should be unreachable once the parser has resolved it, but is
// treated as a fault rather than a panic to keep the VM total.
//
// A processor is responsible for advancing the instruction pointer on
// success (normal flow: s.advance(); control flow: s.jump(target)). On
// error it must leave ip untouched, with the sole exception of Call, which
// advances ip even when it faults on call-stack overflow (spec.md §4.5).
type processor interface {
	handles(op Opcode) bool
	exec(s *State, in Instruction, ctx CycleContext) error
}

var processors = [...]processor{
	stackProcessor{},
	registerProcessor{},
	arithmeticProcessor{},
	trigProcessor{},
	bitwiseProcessor{},
	controlProcessor{},
	componentProcessor{},
	combatProcessor{},
	miscProcessor{},
}

// dispatch routes one instruction to its family processor.
func dispatch(s *State, in Instruction, ctx CycleContext) error {
	for _, p := range processors {
		if p.handles(in.Op) {
			return p.exec(s, in, ctx)
		}
	}
	return ErrInvalidInstruction
}
