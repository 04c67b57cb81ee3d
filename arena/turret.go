// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package arena

import "github.com/probechain/botarena/vm"

// Scanner is the turret's passive sensor (spec.md §3): a field of view and
// maximum range used by the Scan instruction.
type Scanner struct {
	FOVDeg     float64
	RangeUnits float64
}

// RangedWeapon is the turret's weapon configuration (spec.md §3), supplied
// to the VM each cycle via vm.CycleContext since neither value has a
// register of its own.
type RangedWeapon struct {
	ProjectileSpeed float64
	BaseDamage      float64
}

// TurretComponent is the robot's weapon mount (spec.md §3).
type TurretComponent struct {
	DirectionDeg    float64
	PendingRotation float64

	Scanner Scanner
	Weapon  RangedWeapon
}

var _ vm.RotatableComponent = (*TurretComponent)(nil)

// AddPendingRotation implements vm.RotatableComponent.
func (t *TurretComponent) AddPendingRotation(deltaDeg float64) {
	t.PendingRotation += deltaDeg
}

// consumeRotation applies up to maxPerCycle degrees of PendingRotation to
// DirectionDeg, normalizing the result (spec.md §4.6).
func (t *TurretComponent) consumeRotation(maxPerCycle float64) {
	t.DirectionDeg = normalizeAngle(t.DirectionDeg + consumePending(&t.PendingRotation, maxPerCycle))
}
