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

// fakeActuator is a RotatableComponent/DriveActuator test double recording
// the values the component processor hands it.
type fakeActuator struct {
	pendingRotation float64
	velocity        float64
}

func (a *fakeActuator) AddPendingRotation(deltaDeg float64) { a.pendingRotation += deltaDeg }
func (a *fakeActuator) SetVelocity(unitsPerCycle float64)   { a.velocity = unitsPerCycle }

func newTestState(program []Instruction) *State {
	s := NewState(program)
	s.Actuators = Actuators{Drive: &fakeActuator{}, Turret: &fakeActuator{}}
	return s
}

func defaultCtx() CycleContext {
	return CycleContext{
		SelfID:               "self",
		CyclesPerTurn:        100,
		MaxDriveUnitsPerTurn: 5.0,
		UnitSize:             0.05,
	}
}

func TestStateIdleUntilFirstRetirement(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpNop}})
	if !s.Idle() {
		t.Fatal("fresh state should be Idle")
	}
	s.StepCycle(defaultCtx())
	if s.Idle() {
		t.Error("state should not be Idle after retiring an instruction")
	}
}

func TestStateRetiresOneInstructionAtBaseCost(t *testing.T) {
	prog := []Instruction{{Op: OpNop}, {Op: OpNop}}
	s := newTestState(prog)
	s.StepCycle(defaultCtx())
	if s.IP() != 1 {
		t.Fatalf("IP after one cycle = %d, want 1", s.IP())
	}
}

func TestStateMultiCycleInstructionBlocksNextRetirement(t *testing.T) {
	// Fire costs 3 cycles: it executes on its first cycle, and the following
	// nop cannot retire until the two remaining cycles have been spent.
	prog := []Instruction{
		{Op: OpFire, Ops: []Operand{ValueOperand(0)}},
		{Op: OpNop},
	}
	s := newTestState(prog)
	ctx := defaultCtx()
	s.StepCycle(ctx)
	if s.IP() != 1 || s.InstructionCyclesRemaining() != 2 {
		t.Fatalf("after cycle 1 of a 3-cycle instruction: IP = %d, remaining = %d, want IP 1, remaining 2", s.IP(), s.InstructionCyclesRemaining())
	}
	s.StepCycle(ctx)
	if s.IP() != 1 {
		t.Fatalf("IP after cycle 2 of a 3-cycle instruction = %d, want 1 (nop blocked)", s.IP())
	}
	s.StepCycle(ctx)
	if s.IP() != 1 {
		t.Fatalf("IP after cycle 3 of a 3-cycle instruction = %d, want 1 (nop blocked)", s.IP())
	}
	s.StepCycle(ctx)
	if s.IP() != 2 {
		t.Fatalf("IP after cycle 4 = %d, want 2 (nop retired)", s.IP())
	}
}

func TestStateFaultLatchesFaultRegisterAndHalts(t *testing.T) {
	prog := []Instruction{{Op: OpPop, Dst: D0}}
	s := newTestState(prog)
	s.StepCycle(defaultCtx())
	if got := FaultCode(s.Registers.Get(Fault)); got != FaultStackUnderflow {
		t.Fatalf("Fault register = %v, want FaultStackUnderflow", got)
	}
	if s.IP() != 0 {
		t.Error("a faulted instruction must not advance IP")
	}
	ip := s.IP()
	s.StepCycle(defaultCtx())
	if s.IP() != ip {
		t.Error("a faulted robot should not retire further instructions for a long time")
	}
}

func TestStateFallingOffProgramEndIsNotAFault(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpNop}})
	s.StepCycle(defaultCtx())
	if got := FaultCode(s.Registers.Get(Fault)); got != FaultNone {
		t.Fatalf("Fault after program end = %v, want FaultNone", got)
	}
	s.StepCycle(defaultCtx()) // ip == len(program) now; must be a silent no-op
	if s.IP() != 1 {
		t.Errorf("IP past program end = %d, want to stay at 1", s.IP())
	}
}

func TestRotateCycleCostScalesWithMagnitude(t *testing.T) {
	var rf RegisterFile
	cases := []struct {
		angle float64
		want  int
	}{
		{0, 1},
		{45, 2},
		{46, 3},
		{180, 5},
	}
	for _, c := range cases {
		in := Instruction{Op: OpRotate, Ops: []Operand{ValueOperand(c.angle)}}
		if got := in.CycleCost(&rf); got != c.want {
			t.Errorf("CycleCost(rotate %v) = %d, want %d", c.angle, got, c.want)
		}
	}
}
