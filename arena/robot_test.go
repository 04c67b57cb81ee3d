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

package arena

import (
	"testing"

	"github.com/probechain/botarena/vm"
)

func testArena() *Arena {
	a := NewArena(1, 1, 20, 20, 1)
	a.MaxRotationPerCycleDeg = 1.8
	a.MaxDriveUnitsPerTurn = 5.0
	a.PowerRegenPerCycle = 0.01
	a.CyclesPerTurn = 100
	a.ScanDistance = 1.0
	return a
}

func TestNewRobotFacesArenaCenter(t *testing.T) {
	r := NewRobot("r", Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, nil, Scanner{}, RangedWeapon{}, 1, 0)
	if r.Drive.DirectionDeg != 0 || r.Turret.DirectionDeg != 0 {
		t.Errorf("facing = (%v, %v), want (0, 0) toward +x center", r.Drive.DirectionDeg, r.Turret.DirectionDeg)
	}
}

func TestUpdatePrevStateSnapshotsPositionAndHeadings(t *testing.T) {
	r := NewRobot("r", Point{X: 0.1, Y: 0.1}, Point{X: 0.5, Y: 0.5}, nil, Scanner{}, RangedWeapon{}, 1, 0)
	r.Position = Point{X: 0.3, Y: 0.4}
	r.Turret.DirectionDeg = 90
	r.Drive.DirectionDeg = 45

	r.UpdatePrevState()

	if r.Render.Position != r.Position {
		t.Errorf("Render.Position = %v, want %v", r.Render.Position, r.Position)
	}
	if r.Render.TurretDirectionDeg != 90 || r.Render.DriveDirectionDeg != 45 {
		t.Errorf("Render headings = (%v, %v), want (90, 45)", r.Render.TurretDirectionDeg, r.Render.DriveDirectionDeg)
	}
}

func TestProcessCycleUpdatesRegenPowerClampedToOne(t *testing.T) {
	a := testArena()
	r := NewRobot("r", Point{X: 0.5, Y: 0.5}, Point{X: 0, Y: 0}, nil, Scanner{}, RangedWeapon{}, 1, 0)
	r.Power = 0.995

	r.ProcessCycleUpdates(a)
	if r.Power != 1.0 {
		t.Errorf("Power after regen past the ceiling = %v, want 1.0", r.Power)
	}
}

func TestProcessCycleUpdatesConsumesRotationUpToMaxPerCycle(t *testing.T) {
	a := testArena()
	r := NewRobot("r", Point{X: 0.5, Y: 0.5}, Point{X: 0, Y: 0}, nil, Scanner{}, RangedWeapon{}, 1, 0)
	r.Drive.PendingRotation = 100

	r.ProcessCycleUpdates(a)
	if r.Drive.PendingRotation != 100-a.MaxRotationPerCycleDeg {
		t.Errorf("PendingRotation after one cycle = %v, want %v remaining", r.Drive.PendingRotation, 100-a.MaxRotationPerCycleDeg)
	}
}

func TestProcessCycleUpdatesStopsAtWallRatherThanPassingThrough(t *testing.T) {
	a := testArena()
	r := NewRobot("r", Point{X: 0.9, Y: 0.5}, Point{X: 0, Y: 0}, nil, Scanner{}, RangedWeapon{}, 1, 0)
	r.Drive.DirectionDeg = 0 // facing +x, toward the wall
	r.Drive.Velocity = 10.0  // absurdly large request

	r.ProcessCycleUpdates(a)
	if r.Position.X > a.Width-a.RobotRadius() {
		t.Errorf("Position.X = %v, must not pass beyond the wall-minus-radius boundary %v", r.Position.X, a.Width-a.RobotRadius())
	}
}

func TestUpdateVMStateRegistersReflectsHostState(t *testing.T) {
	a := testArena()
	r := NewRobot("r", Point{X: 0.5, Y: 0.5}, Point{X: 0, Y: 0}, nil, Scanner{}, RangedWeapon{}, 1, 0)
	r.Health = 42
	r.Power = 0.7

	r.UpdateVMStateRegisters(a, 3, 17)

	rf := &r.VM.Registers
	if rf.Get(vm.Turn) != 3 {
		t.Errorf("Turn register = %v, want 3", rf.Get(vm.Turn))
	}
	if rf.Get(vm.Cycle) != 17 {
		t.Errorf("Cycle register = %v, want 17", rf.Get(vm.Cycle))
	}
	if rf.Get(vm.Health) != 42 {
		t.Errorf("Health register = %v, want 42", rf.Get(vm.Health))
	}
	if rf.Get(vm.Power) != 0.7 {
		t.Errorf("Power register = %v, want 0.7", rf.Get(vm.Power))
	}
}

func TestExecuteVMCycleTransitionsIdleToActive(t *testing.T) {
	a := testArena()
	program := []vm.Instruction{{Op: vm.OpNop}}
	r := NewRobot("r", Point{X: 0.5, Y: 0.5}, Point{X: 0, Y: 0}, program, Scanner{}, RangedWeapon{}, 1, 0)
	if r.Status != StatusIdle {
		t.Fatal("a freshly constructed robot should be Idle")
	}

	lookup := func(id string) (vm.RobotSnapshot, bool) { return vm.RobotSnapshot{}, false }
	r.ExecuteVMCycle(a, lookup, nil)

	if r.Status != StatusActive {
		t.Errorf("Status after ExecuteVMCycle = %v, want Active", r.Status)
	}
}

func TestCurrentInstructionRendersTheNextInstruction(t *testing.T) {
	program := []vm.Instruction{{Op: vm.OpNop}, {Op: vm.OpPush, Ops: []vm.Operand{vm.ValueOperand(1)}}}
	r := NewRobot("r", Point{X: 0.5, Y: 0.5}, Point{X: 0, Y: 0}, program, Scanner{}, RangedWeapon{}, 1, 0)
	if got := r.CurrentInstruction(); got != "nop" {
		t.Errorf("CurrentInstruction() = %q, want %q", got, "nop")
	}
}

func TestCurrentInstructionEmptyPastProgramEnd(t *testing.T) {
	program := []vm.Instruction{{Op: vm.OpNop}}
	r := NewRobot("r", Point{X: 0.5, Y: 0.5}, Point{X: 0, Y: 0}, program, Scanner{}, RangedWeapon{}, 1, 0)
	a := testArena()
	lookup := func(id string) (vm.RobotSnapshot, bool) { return vm.RobotSnapshot{}, false }
	r.ExecuteVMCycle(a, lookup, nil)
	if got := r.CurrentInstruction(); got != "" {
		t.Errorf("CurrentInstruction() past program end = %q, want empty", got)
	}
}
