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

func TestJmpSetsIPToTarget(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpJmp, Target: 5}})
	if err := dispatch(s, s.Program[0], defaultCtx()); err != nil {
		t.Fatal(err)
	}
	if s.IP() != 5 {
		t.Errorf("IP after jmp = %d, want 5", s.IP())
	}
}

func TestJzTakenOnlyWhenResultIsZero(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpJz, Target: 9}})
	s.Registers.SetInternal(Result, 0)
	dispatch(s, s.Program[0], defaultCtx())
	if s.IP() != 9 {
		t.Errorf("jz with Result=0: IP = %d, want 9 (taken)", s.IP())
	}

	s2 := newTestState([]Instruction{{Op: OpJz, Target: 9}})
	s2.Registers.SetInternal(Result, 1)
	dispatch(s2, s2.Program[0], defaultCtx())
	if s2.IP() != 1 {
		t.Errorf("jz with Result=1: IP = %d, want 1 (fallthrough)", s2.IP())
	}
}

func TestCallPushesReturnAddressAndJumps(t *testing.T) {
	prog := make([]Instruction, 10)
	prog[3] = Instruction{Op: OpCall, Target: 7}
	s := newTestState(prog)
	s.jump(3)
	if err := dispatch(s, s.Program[3], defaultCtx()); err != nil {
		t.Fatal(err)
	}
	if s.IP() != 7 {
		t.Errorf("IP after call = %d, want 7", s.IP())
	}
	if s.Calls.Depth() != 1 {
		t.Fatalf("Calls.Depth() = %d, want 1", s.Calls.Depth())
	}
}

func TestRetPopsReturnAddressRoundTrip(t *testing.T) {
	prog := make([]Instruction, 10)
	prog[3] = Instruction{Op: OpCall, Target: 7}
	prog[7] = Instruction{Op: OpRet}
	s := newTestState(prog)
	s.jump(3)
	dispatch(s, s.Program[3], defaultCtx())
	dispatch(s, s.Program[7], defaultCtx())
	if s.IP() != 4 {
		t.Errorf("IP after call then ret = %d, want 4 (call site + 1)", s.IP())
	}
	if s.Calls.Depth() != 0 {
		t.Errorf("Calls.Depth() after ret = %d, want 0", s.Calls.Depth())
	}
}

func TestCallStackOverflowStillAdvancesIP(t *testing.T) {
	prog := make([]Instruction, 5)
	prog[0] = Instruction{Op: OpCall, Target: 4}
	s := newTestState(prog)
	for i := 0; i < CallStackCapacity; i++ {
		s.Calls.Push(i)
	}
	err := dispatch(s, s.Program[0], defaultCtx())
	if AsFault(err) != FaultCallStackOverflow {
		t.Fatalf("call at full call-stack = %v, want FaultCallStackOverflow", err)
	}
	if s.IP() != 1 {
		t.Errorf("IP after overflowed call = %d, want 1 (advances despite fault)", s.IP())
	}
}

func TestRetOnEmptyCallStackFaultsWithoutAdvancing(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpRet}})
	err := dispatch(s, s.Program[0], defaultCtx())
	if AsFault(err) != FaultCallStackUnderflow {
		t.Fatalf("ret with empty call stack = %v, want FaultCallStackUnderflow", err)
	}
	if s.IP() != 0 {
		t.Error("ret fault must not advance IP")
	}
}

func TestLoopDecrementsCAndJumpsUntilZero(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpLoop, Target: 0}})
	s.Registers.SetInternal(C, 2)

	dispatch(s, s.Program[0], defaultCtx())
	if s.Registers.Get(C) != 1 || s.IP() != 0 {
		t.Fatalf("after first loop: C=%v IP=%d, want C=1 IP=0", s.Registers.Get(C), s.IP())
	}
	dispatch(s, s.Program[0], defaultCtx())
	if s.Registers.Get(C) != 0 || s.IP() != 1 {
		t.Fatalf("after second loop: C=%v IP=%d, want C=0 IP=1 (falls through)", s.Registers.Get(C), s.IP())
	}
}
