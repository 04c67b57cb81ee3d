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

// MemorySize is the number of zero-initialized doubles in a VM's linear
// memory (spec.md §3). Unlike the teacher's Memory type, this model has no
// alloc/free lifecycle: the full range is addressable from VM start.
const MemorySize = 1024

// Memory is the VM's flat, fixed-size linear memory.
type Memory struct {
	words [MemorySize]float64
}

// Read returns memory[addr]. Out-of-range addresses fault as
// FaultInvalidRegister per spec.md §4.5 — the spec preserves this fault
// code for program-visible compatibility even though the underlying
// condition is an address fault, not a register fault (spec.md §9).
func (m *Memory) Read(addr int) (float64, error) {
	if addr < 0 || addr >= MemorySize {
		return 0, ErrInvalidRegister
	}
	return m.words[addr], nil
}

// Write stores v at memory[addr]. Out-of-range addresses fault the same
// way as Read.
func (m *Memory) Write(addr int, v float64) error {
	if addr < 0 || addr >= MemorySize {
		return ErrInvalidRegister
	}
	m.words[addr] = v
	return nil
}
