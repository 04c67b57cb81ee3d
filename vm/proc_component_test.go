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

func TestRotateWithNoComponentSelectedFaults(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpRotate, Ops: []Operand{ValueOperand(10)}}})
	err := dispatch(s, s.Program[0], defaultCtx())
	if AsFault(err) != FaultNoComponentSelected {
		t.Fatalf("rotate with nothing selected = %v, want FaultNoComponentSelected", err)
	}
}

func TestSelectThenRotateAppliesToSelectedComponentOnly(t *testing.T) {
	s := newTestState([]Instruction{
		{Op: OpSelect, Ops: []Operand{ValueOperand(float64(ComponentTurretSel))}},
	})
	dispatch(s, s.Program[0], defaultCtx())
	if s.Selected != ComponentTurretSel {
		t.Fatalf("Selected = %v, want ComponentTurretSel", s.Selected)
	}

	rotate := Instruction{Op: OpRotate, Ops: []Operand{ValueOperand(30)}}
	if err := dispatch(s, rotate, defaultCtx()); err != nil {
		t.Fatal(err)
	}
	turret := s.Actuators.Turret.(*fakeActuator)
	drive := s.Actuators.Drive.(*fakeActuator)
	if turret.pendingRotation != 30 {
		t.Errorf("turret pendingRotation = %v, want 30", turret.pendingRotation)
	}
	if drive.pendingRotation != 0 {
		t.Errorf("drive pendingRotation = %v, want 0 (not selected)", drive.pendingRotation)
	}
}

func TestDeselectClearsSelection(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpDeselect}})
	s.Selected = ComponentDriveSel
	dispatch(s, s.Program[0], defaultCtx())
	if s.Selected != ComponentNoneSel {
		t.Errorf("Selected after deselect = %v, want ComponentNoneSel", s.Selected)
	}
}

func TestDriveRequiresDriveSelected(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpDrive, Ops: []Operand{ValueOperand(1)}}})
	s.Selected = ComponentTurretSel
	err := dispatch(s, s.Program[0], defaultCtx())
	if AsFault(err) != FaultInvalidComponentForOp {
		t.Fatalf("drive with turret selected = %v, want FaultInvalidComponentForOp", err)
	}
}

func TestDriveClampsToMaxUnitsPerTurn(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpDrive, Ops: []Operand{ValueOperand(1000)}}})
	s.Selected = ComponentDriveSel
	ctx := defaultCtx()
	dispatch(s, s.Program[0], ctx)

	drive := s.Actuators.Drive.(*fakeActuator)
	limit := ctx.MaxDriveUnitsPerTurn * ctx.UnitSize / float64(ctx.CyclesPerTurn)
	if drive.velocity != limit {
		t.Errorf("velocity for drive(1000) = %v, want clamped to %v", drive.velocity, limit)
	}
}

func TestDriveClampsNegativeRequestSymmetrically(t *testing.T) {
	s := newTestState([]Instruction{{Op: OpDrive, Ops: []Operand{ValueOperand(-1000)}}})
	s.Selected = ComponentDriveSel
	ctx := defaultCtx()
	dispatch(s, s.Program[0], ctx)

	drive := s.Actuators.Drive.(*fakeActuator)
	limit := ctx.MaxDriveUnitsPerTurn * ctx.UnitSize / float64(ctx.CyclesPerTurn)
	if drive.velocity != -limit {
		t.Errorf("velocity for drive(-1000) = %v, want -%v", drive.velocity, limit)
	}
}
