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

import "math"

// haltCycles is the saturating cycle budget latched on a fault, per
// spec.md §4.5: large enough that a faulted robot will not retire another
// instruction for the remainder of any realistic game.
const haltCycles = math.MaxInt32

// ComponentKind selects which actuator Rotate/Drive apply to (spec.md §4.5
// Select/Deselect).
type ComponentKind int

const (
	ComponentNoneSel   ComponentKind = 0
	ComponentDriveSel  ComponentKind = 1
	ComponentTurretSel ComponentKind = 2
)

// RotatableComponent is satisfied by a component that accumulates pending
// rotation (arena.DriveComponent and arena.TurretComponent both implement
// it). Kept as a narrow interface here so the vm package never imports the
// arena package — the host wires concrete components in at robot
// construction time (spec.md §9 ownership: ids, not owning handles, cross
// packages).
type RotatableComponent interface {
	AddPendingRotation(deltaDeg float64)
}

// DriveActuator additionally accepts a velocity command (spec.md §4.5 Drive).
type DriveActuator interface {
	RotatableComponent
	SetVelocity(unitsPerCycle float64)
}

// Actuators wires the VM's Select/Rotate/Drive instructions to the owning
// robot's actual drive and turret components.
type Actuators struct {
	Drive  DriveActuator
	Turret RotatableComponent
}

// State is one robot's complete VM state: registers, stacks, memory,
// program, instruction pointer, fault, and cycle accounting (spec.md §3).
type State struct {
	Registers RegisterFile
	Operands  OperandStack
	Calls     CallStack
	Memory    Memory

	Program []Instruction
	ip      int

	instructionCyclesRemaining int

	Selected  ComponentKind
	Actuators Actuators

	// LastDebug holds the operand most recently passed to Dbg, for the host
	// to surface through logging; it is not part of the VM's program-visible
	// state and programs cannot read it back.
	LastDebug float64

	// Commands accumulates the write-only side effects (spawn projectile,
	// spawn muzzle flash) issued this cycle; the Game loop drains it after
	// every robot's VM step (spec.md §9 "Command queue").
	Commands []Command

	// sleepCycles additionally reported through the Sleep instruction is
	// folded into instructionCyclesRemaining; no separate field needed.
}

// emit appends a command to this cycle's queue.
func (s *State) emit(cmd Command) { s.Commands = append(s.Commands, cmd) }

// DrainCommands returns and clears the accumulated command queue. Called by
// the host once per robot per cycle, after StepCycle.
func (s *State) DrainCommands() []Command {
	cmds := s.Commands
	s.Commands = nil
	return cmds
}

// NewState creates a VM ready to execute program starting at instruction 0.
func NewState(program []Instruction) *State {
	return &State{Program: program}
}

// IP returns the current instruction pointer.
func (s *State) IP() int { return s.ip }

// Idle reports whether the VM has not yet retired its first instruction
// (spec.md §4.6: "An Idle robot becomes Active before its first
// retirement").
func (s *State) Idle() bool {
	return s.ip == 0 && s.instructionCyclesRemaining == 0 && s.Registers.Get(Fault) == 0
}

// advance moves ip to the next instruction in sequence.
func (s *State) advance() { s.ip++ }

// jump sets ip directly (labels/targets are pre-resolved instruction
// indices, not byte offsets).
func (s *State) jump(target int) { s.ip = target }

// InstructionCyclesRemaining reports how many cycles remain before the next
// instruction may retire.
func (s *State) InstructionCyclesRemaining() int { return s.instructionCyclesRemaining }

// StepCycle spends exactly one simulated VM cycle (spec.md §4.6 step (d)).
// If an instruction is already in flight, one cycle is deducted from its
// remaining budget. Otherwise the next instruction is fetched and
// dispatched to the executor; the instruction's cost (minus the cycle this
// dispatch itself consumes) becomes the new remaining budget.
func (s *State) StepCycle(ctx CycleContext) {
	if s.instructionCyclesRemaining > 0 {
		s.instructionCyclesRemaining--
		return
	}
	if s.ip < 0 || s.ip >= len(s.Program) {
		// Falling off the end of the program is not a fault (spec.md is
		// silent on this case); the robot simply idles in place, matching
		// an implicit trailing run of no-ops.
		return
	}
	instr := s.Program[s.ip]
	cost := instr.CycleCost(&s.Registers)
	if err := dispatch(s, instr, ctx); err != nil {
		s.Registers.SetInternal(Fault, float64(AsFault(err)))
		s.instructionCyclesRemaining = haltCycles
		return
	}
	s.Registers.SetInternal(Fault, float64(FaultNone))
	if cost > 1 {
		s.instructionCyclesRemaining = cost - 1
	}
}
