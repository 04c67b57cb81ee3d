// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package effects

// RobotSnapshot is the read-only view of one robot available to the
// rendering collaborator (spec.md §6 Snapshot-read interface). Position and
// direction fields are given both at the previous and current cycle so a
// renderer can interpolate by alpha.
type RobotSnapshot struct {
	ID          string
	DisplayName string

	PrevX, PrevY float64
	X, Y         float64

	PrevTurretDirectionDeg float64
	TurretDirectionDeg     float64

	PrevDriveDirectionDeg float64
	DriveDirectionDeg     float64

	Health float64
	Power  float64
	Status string

	// CurrentInstruction renders the instruction the VM is about to retire
	// or is mid-execution on (vm.Instruction.String()).
	CurrentInstruction string
}

// ProjectileSnapshot is the read-only view of one in-flight projectile.
type ProjectileSnapshot struct {
	PrevX, PrevY float64
	X, Y         float64
	DirectionDeg float64
}

// ArenaSnapshot is the full read-only view handed to the rendering
// collaborator once per frame (spec.md §6): "given the arena, robots, and
// interpolation alpha ∈ [0,1], read prev_position, position, direction
// fields, health, power, status, current instruction string, projectile
// list."
type ArenaSnapshot struct {
	Alpha       float64
	Width       float64
	Height      float64
	Robots      []RobotSnapshot
	Projectiles []ProjectileSnapshot
}
