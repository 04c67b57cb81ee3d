// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package arena

import "github.com/google/uuid"

// Projectile is a single in-flight shot (spec.md §3). PrevPosition exists
// only for external interpolation; collision queries always use Position.
type Projectile struct {
	ID uuid.UUID

	Position     Point
	PrevPosition Point

	DirectionDeg float64
	Speed        float64 // grid-units-per-cycle
	Power        float64 // in [0,1]
	BaseDamage   float64

	SourceRobotID uuid.UUID
}

// NewProjectile constructs a projectile at its spawn point with both
// position fields equal (no interpolation history yet).
func NewProjectile(pos Point, directionDeg, speed, power, baseDamage float64, source uuid.UUID) *Projectile {
	return &Projectile{
		ID:            uuid.New(),
		Position:      pos,
		PrevPosition:  pos,
		DirectionDeg:  directionDeg,
		Speed:         speed,
		Power:         power,
		BaseDamage:    baseDamage,
		SourceRobotID: source,
	}
}
