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

import "testing"

func TestOperandStackOverflowAtCapacity(t *testing.T) {
	var s OperandStack
	for i := 0; i < OperandStackCapacity; i++ {
		if err := s.Push(float64(i)); err != nil {
			t.Fatalf("Push %d: %v", i, err)
		}
	}
	if err := s.Push(1); err != ErrStackOverflow {
		t.Fatalf("Push beyond capacity = %v, want ErrStackOverflow", err)
	}
	if s.Depth() != OperandStackCapacity {
		t.Fatalf("Depth = %d, want %d", s.Depth(), OperandStackCapacity)
	}
}

func TestOperandStackUnderflow(t *testing.T) {
	var s OperandStack
	if _, err := s.Pop(); err != ErrStackUnderflow {
		t.Fatalf("Pop empty = %v, want ErrStackUnderflow", err)
	}
	if err := s.Swap(); err != ErrStackUnderflow {
		t.Fatalf("Swap empty = %v, want ErrStackUnderflow", err)
	}
	if err := s.Dup(); err != ErrStackUnderflow {
		t.Fatalf("Dup empty = %v, want ErrStackUnderflow", err)
	}
}

func TestOperandStackPushPopRoundTrips(t *testing.T) {
	var s OperandStack
	if err := s.Push(3.5); err != nil {
		t.Fatal(err)
	}
	v, err := s.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if v != 3.5 {
		t.Errorf("Pop() = %v, want 3.5", v)
	}
	if s.Depth() != 0 {
		t.Errorf("Depth after pop = %d, want 0", s.Depth())
	}
}

func TestOperandStackSwapIsItsOwnInverse(t *testing.T) {
	var s OperandStack
	s.Push(1)
	s.Push(2)
	if err := s.Swap(); err != nil {
		t.Fatal(err)
	}
	if err := s.Swap(); err != nil {
		t.Fatal(err)
	}
	top, _ := s.Pop()
	bottom, _ := s.Pop()
	if top != 2 || bottom != 1 {
		t.Errorf("after swap/swap = (%v, %v), want (2, 1)", bottom, top)
	}
}

func TestOperandStackDupDuplicatesTop(t *testing.T) {
	var s OperandStack
	s.Push(7)
	if err := s.Dup(); err != nil {
		t.Fatal(err)
	}
	if s.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", s.Depth())
	}
	a, _ := s.Pop()
	b, _ := s.Pop()
	if a != 7 || b != 7 {
		t.Errorf("Dup produced (%v, %v), want (7, 7)", b, a)
	}
}

func TestCallStackOverflowAtCapacity(t *testing.T) {
	var c CallStack
	for i := 0; i < CallStackCapacity; i++ {
		if err := c.Push(i); err != nil {
			t.Fatalf("Push %d: %v", i, err)
		}
	}
	if err := c.Push(99); err != ErrCallStackOverflow {
		t.Fatalf("Push beyond capacity = %v, want ErrCallStackOverflow", err)
	}
}

func TestCallStackUnderflow(t *testing.T) {
	var c CallStack
	if _, err := c.Pop(); err != ErrCallStackUnderflow {
		t.Fatalf("Pop empty = %v, want ErrCallStackUnderflow", err)
	}
}

func TestCallStackPushPopIsLIFO(t *testing.T) {
	var c CallStack
	c.Push(10)
	c.Push(20)
	top, err := c.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if top != 20 {
		t.Errorf("Pop() = %d, want 20 (LIFO)", top)
	}
}
