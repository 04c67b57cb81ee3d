// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package arena

import "github.com/probechain/botarena/vm"

// DriveComponent is the robot's locomotion body (spec.md §3). Velocity and
// PendingRotation are written by the VM (via vm.DriveActuator, through
// State.Actuators) and consumed each physics cycle by Robot.ProcessCycleUpdates.
type DriveComponent struct {
	DirectionDeg    float64
	Velocity        float64 // coordinate-units-per-cycle
	PendingRotation float64 // degrees, accumulator
}

var _ vm.DriveActuator = (*DriveComponent)(nil)

// AddPendingRotation implements vm.RotatableComponent.
func (d *DriveComponent) AddPendingRotation(deltaDeg float64) {
	d.PendingRotation += deltaDeg
}

// SetVelocity implements vm.DriveActuator.
func (d *DriveComponent) SetVelocity(unitsPerCycle float64) {
	d.Velocity = unitsPerCycle
}

// consumeRotation applies up to maxPerCycle degrees of PendingRotation to
// DirectionDeg, normalizing the result (spec.md §4.6).
func (d *DriveComponent) consumeRotation(maxPerCycle float64) {
	d.DirectionDeg = normalizeAngle(d.DirectionDeg + consumePending(&d.PendingRotation, maxPerCycle))
}

// consumePending drains up to maxPerCycle degrees (by magnitude) from
// *pending, returning the signed amount actually applied.
func consumePending(pending *float64, maxPerCycle float64) float64 {
	remaining := *pending
	var step float64
	switch {
	case remaining > maxPerCycle:
		step = maxPerCycle
	case remaining < -maxPerCycle:
		step = -maxPerCycle
	default:
		step = remaining
	}
	*pending -= step
	return step
}
