// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package arena

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/probechain/botarena/vm"
)

// Status is a robot's lifecycle state (spec.md §3).
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusStunned
	StatusDestroyed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusStunned:
		return "stunned"
	case StatusDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// RenderState is the previous-cycle snapshot of position and direction used
// only to satisfy the external interpolation reader (spec.md §6 Snapshot-read
// interface; SPEC_FULL.md §5). Simulation logic never reads it.
type RenderState struct {
	Position          Point
	TurretDirectionDeg float64
	DriveDirectionDeg  float64
}

// Robot is one autonomous agent (spec.md §3).
type Robot struct {
	ID          uuid.UUID
	DisplayName string

	Position     Point
	PrevPosition Point
	Render       RenderState

	Health float64
	Power  float64
	Status Status

	StunnedCyclesRemaining int

	Drive  DriveComponent
	Turret TurretComponent

	VM      *vm.State
	Program []vm.Instruction

	RNG *rand.Rand

	// AOI is the set of other non-destroyed robot ids within scan distance
	// as of the most recent UpdateAllRobotsAOI call (spec.md §3, §GLOSSARY).
	AOI []uuid.UUID
}

// NewRobot constructs a robot at spawn position facing arenaCenter, with its
// VM state wired to its own drive/turret actuators (spec.md §3: "Initial
// turret and drive direction point from spawn position toward arena
// center"). scanner and weapon are the turret's fixed loadout
// (original_source/src/config.rs DEFAULT_SCANNER_*/DEFAULT_*; spec.md does
// not name concrete values).
func NewRobot(displayName string, spawn, arenaCenter Point, program []vm.Instruction, scanner Scanner, weapon RangedWeapon, seed uint64, index int) *Robot {
	r := &Robot{
		ID:           uuid.New(),
		DisplayName:  displayName,
		Position:     spawn,
		PrevPosition: spawn,
		Health:       100,
		Power:        1,
		Status:       StatusIdle,
		Program:      program,
		// Per-robot RNG stream seeded from the game's master seed plus the
		// robot's index (SPEC_FULL.md §11, original_source/src/game.rs).
		RNG: rand.New(rand.NewPCG(seed, uint64(index))),
	}
	r.Turret.Scanner = scanner
	r.Turret.Weapon = weapon
	facing := bearingDeg(spawn, arenaCenter)
	r.Drive.DirectionDeg = facing
	r.Turret.DirectionDeg = facing
	r.Render = RenderState{Position: spawn, TurretDirectionDeg: facing, DriveDirectionDeg: facing}

	r.VM = vm.NewState(program)
	r.VM.Actuators = vm.Actuators{Drive: &r.Drive, Turret: &r.Turret}
	return r
}

// bearingDeg returns the absolute bearing in degrees from p to q (0 = +x,
// CCW positive), normalized to [0, 360).
func bearingDeg(p, q Point) float64 {
	return normalizeAngle(math.Atan2(q.Y-p.Y, q.X-p.X) * 180 / math.Pi)
}

// UpdatePrevState copies position/drive-direction/turret-direction into
// Render for external interpolation (spec.md §4.6 step a).
func (r *Robot) UpdatePrevState() {
	r.PrevPosition = r.Position
	r.Render = RenderState{
		Position:           r.Position,
		TurretDirectionDeg: r.Turret.DirectionDeg,
		DriveDirectionDeg:  r.Drive.DirectionDeg,
	}
}

// ProcessCycleUpdates applies power regeneration, drains pending rotation,
// and advances the drive body under collision constraints (spec.md §4.6
// step b). Destroyed robots are skipped by the caller.
func (r *Robot) ProcessCycleUpdates(a *Arena) {
	r.Power += a.PowerRegenPerCycle
	if r.Power > 1 {
		r.Power = 1
	}

	r.Drive.consumeRotation(a.MaxRotationPerCycleDeg)
	r.Turret.consumeRotation(a.MaxRotationPerCycleDeg)

	if r.Drive.Velocity == 0 {
		return
	}
	radius := a.RobotRadius()
	const epsilon = 1e-6
	edgeDist := a.DistanceToCollision(r.Position, r.Drive.DirectionDeg, radius)
	dist := r.Drive.Velocity
	if dist < 0 {
		// Reverse motion: the ray caster measures forward distance only,
		// so moving backward is bounded by the opposite bearing.
		edgeDist = a.DistanceToCollision(r.Position, r.Drive.DirectionDeg+180, radius)
		if -dist > edgeDist-epsilon {
			if edgeDist <= epsilon {
				r.Drive.Velocity = 0
				return
			}
			dist = -(edgeDist - epsilon)
		}
	} else if dist > edgeDist-epsilon {
		if edgeDist <= epsilon {
			r.Drive.Velocity = 0
			return
		}
		dist = edgeDist - epsilon
	}
	r.Position = pointOnRay(r.Position, r.Drive.DirectionDeg, dist)
}

// UpdateVMStateRegisters refreshes every read-only register from current
// host state (spec.md §4.6 step c).
func (r *Robot) UpdateVMStateRegisters(a *Arena, turn, cycle int) {
	rf := &r.VM.Registers
	rf.SetInternal(vm.Turn, float64(turn))
	rf.SetInternal(vm.Cycle, float64(cycle))
	rf.SetInternal(vm.Rand, r.RNG.Float64())
	rf.SetInternal(vm.Health, r.Health)
	rf.SetInternal(vm.Power, r.Power)
	rf.SetInternal(vm.Component, float64(r.VM.Selected))
	rf.SetInternal(vm.TurretDirection, r.Turret.DirectionDeg)
	rf.SetInternal(vm.DriveDirection, r.Drive.DirectionDeg)
	rf.SetInternal(vm.DriveVelocity, r.Drive.Velocity)
	rf.SetInternal(vm.PosX, r.Position.X)
	rf.SetInternal(vm.PosY, r.Position.Y)
	radius := a.RobotRadius()
	rf.SetInternal(vm.ForwardDistance, a.DistanceToCollision(r.Position, r.Drive.DirectionDeg, radius))
	rf.SetInternal(vm.BackwardDistance, a.DistanceToCollision(r.Position, r.Drive.DirectionDeg+180, radius))
	// WeaponPower mirrors the ship's available firing power; WeaponCooldown
	// stays 0 since Fire has no cooldown gating in this instruction set
	// (spec.md §4.5 literal Fire algorithm never reads it).
	rf.SetInternal(vm.WeaponPower, r.Power)
	rf.SetInternal(vm.WeaponCooldown, 0)
}

// ExecuteVMCycle spends this cycle's instruction budget (spec.md §4.6 step
// d, §4.5). lookup and otherIDs give Scan its read-only view of the other
// robots sharing the arena this cycle (spec.md §9 "Cross-robot references
// during Scan").
func (r *Robot) ExecuteVMCycle(a *Arena, lookup vm.SnapshotLookup, otherIDs []string) {
	if r.Status == StatusIdle {
		r.Status = StatusActive
	}
	ctx := vm.CycleContext{
		SelfID:                r.ID.String(),
		OtherIDs:               otherIDs,
		Lookup:                 lookup,
		Ray:                    func(angleDeg float64) float64 { return a.DistanceToCollision(r.Position, angleDeg, a.RobotRadius()) },
		ScannerFOVDeg:          r.Turret.Scanner.FOVDeg,
		ScannerRangeUnits:      r.Turret.Scanner.RangeUnits,
		TurretDirectionDeg:     r.Turret.DirectionDeg,
		UnitSize:               a.UnitSize,
		WeaponProjectileSpeed:  r.Turret.Weapon.ProjectileSpeed,
		WeaponBaseDamage:       r.Turret.Weapon.BaseDamage,
		CyclesPerTurn:          a.CyclesPerTurn,
		MaxDriveUnitsPerTurn:   a.MaxDriveUnitsPerTurn,
		PosX:                   r.Position.X,
		PosY:                   r.Position.Y,
	}
	r.VM.StepCycle(ctx)
}

// CurrentInstruction renders the instruction the VM is about to retire, for
// the external snapshot-read interface (spec.md §6; SPEC_FULL.md §11).
func (r *Robot) CurrentInstruction() string {
	ip := r.VM.IP()
	if ip < 0 || ip >= len(r.Program) {
		return ""
	}
	return r.Program[ip].String()
}
