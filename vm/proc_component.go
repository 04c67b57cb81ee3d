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

// componentProcessor implements select/deselect/rotate/drive (spec.md
// §4.5). Select/Deselect only change which actuator subsequent Rotate/Drive
// instructions target; the actual rotation and velocity state lives on the
// arena-owned drive and turret components, reached through State.Actuators.
type componentProcessor struct{}

func (componentProcessor) handles(op Opcode) bool {
	switch op {
	case OpSelect, OpDeselect, OpRotate, OpDrive:
		return true
	}
	return false
}

func (componentProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	switch in.Op {
	case OpSelect:
		switch int(in.Ops[0].Eval(&s.Registers)) {
		case int(ComponentNoneSel):
			s.Selected = ComponentNoneSel
		case int(ComponentDriveSel):
			s.Selected = ComponentDriveSel
		case int(ComponentTurretSel):
			s.Selected = ComponentTurretSel
		default:
			return ErrInvalidComponentForOp
		}
		s.Registers.SetInternal(Component, float64(s.Selected))
	case OpDeselect:
		s.Selected = ComponentNoneSel
		s.Registers.SetInternal(Component, 0)
	case OpRotate:
		if s.Selected == ComponentNoneSel {
			return ErrNoComponentSelected
		}
		delta := in.Ops[0].Eval(&s.Registers)
		switch s.Selected {
		case ComponentDriveSel:
			s.Actuators.Drive.AddPendingRotation(delta)
		case ComponentTurretSel:
			s.Actuators.Turret.AddPendingRotation(delta)
		}
	case OpDrive:
		if s.Selected == ComponentNoneSel {
			return ErrNoComponentSelected
		}
		if s.Selected != ComponentDriveSel {
			return ErrInvalidComponentForOp
		}
		cyclesPerTurn := float64(ctx.CyclesPerTurn)
		if cyclesPerTurn <= 0 {
			cyclesPerTurn = 1
		}
		// Grid-units-per-turn to coordinate-units-per-cycle (spec.md §4.5
		// Drive), clamped after conversion.
		limit := ctx.MaxDriveUnitsPerTurn * ctx.UnitSize / cyclesPerTurn
		perCycle := in.Ops[0].Eval(&s.Registers) * ctx.UnitSize / cyclesPerTurn
		if perCycle > limit {
			perCycle = limit
		}
		if perCycle < -limit {
			perCycle = -limit
		}
		s.Actuators.Drive.SetVelocity(perCycle)
	}
	s.advance()
	return nil
}
