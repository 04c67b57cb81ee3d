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

// RobotSnapshot is the read-only view of one other robot available to Scan
// (spec.md §4.5, §9 "Cross-robot references during Scan"). It is built once
// per cycle by the host before the VM phase begins, so the executing
// robot's mutation never races a concurrently-scanned robot's state.
type RobotSnapshot struct {
	X, Y      float64
	Destroyed bool
}

// SnapshotLookup resolves a robot id to its cycle-start snapshot. The host
// supplies one implementation per cycle (spec.md §9: "build a
// map[id](Point, Status) once per cycle before the VM phase").
type SnapshotLookup func(id string) (RobotSnapshot, bool)

// RayCaster answers the arena's line-of-sight/collision-distance query
// along a ray from the VM's own robot: the distance at which the robot's
// own body, shot from (x, y) at angleDeg, would first touch a wall or
// obstacle (spec.md §4.7 distance_to_collision).
type RayCaster func(angleDeg float64) float64

// CycleContext carries everything the executor needs from the host for one
// VM cycle's worth of execution, beyond the VM's own register file and
// stacks: the robot's own id (for Scan's self-exclusion), the ids of other
// robots sharing the arena this cycle, a snapshot lookup, and a ray caster
// for line-of-sight checks.
type CycleContext struct {
	SelfID   string
	OtherIDs []string
	Lookup   SnapshotLookup
	Ray      RayCaster

	// ScannerFOVDeg and ScannerRangeUnits describe the executing robot's
	// turret scanner (spec.md §3 TurretComponent.Scanner), supplied fresh
	// each cycle since they do not change turn to turn but are owned by
	// the robot, not the VM.
	ScannerFOVDeg    float64
	ScannerRangeUnits float64

	// TurretDirectionDeg is the executing robot's current turret heading,
	// used as the bearing reference for Scan and Fire.
	TurretDirectionDeg float64

	// UnitSize is the arena's grid unit size, needed to place a fired
	// projectile 80% of a unit ahead of the turret (spec.md §4.5 Fire).
	UnitSize float64

	// WeaponProjectileSpeed and WeaponBaseDamage are the executing robot's
	// turret RangedWeapon configuration (spec.md §3 TurretComponent),
	// supplied fresh each cycle since the VM has no register exposing them
	// directly.
	WeaponProjectileSpeed float64
	WeaponBaseDamage      float64

	// CyclesPerTurn and MaxDriveUnitsPerTurn support Drive's unit
	// conversion (spec.md §4.5 Drive).
	CyclesPerTurn        int
	MaxDriveUnitsPerTurn float64

	// PosX, PosY are the executing robot's current position, needed by
	// Fire to compute the projectile spawn point and by Scan as the ray
	// origin.
	PosX, PosY float64
}
