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

// Command is the single write channel from a VM's execution back to the
// arena (spec.md §9 "Command queue"). The VM never mutates arena state
// directly; it only appends commands here, and the Game loop drains them
// after every robot's VM step.
type Command interface {
	isCommand()
}

// SpawnProjectileCommand requests that the arena create a new projectile.
type SpawnProjectileCommand struct {
	SourceRobotID string
	X, Y          float64
	DirectionDeg  float64
	Speed         float64
	Power         float64
	BaseDamage    float64
}

func (SpawnProjectileCommand) isCommand() {}

// SpawnMuzzleFlashCommand requests that the effect sink render a muzzle
// flash; it carries no simulation consequence.
type SpawnMuzzleFlashCommand struct {
	X, Y         float64
	DirectionDeg float64
}

func (SpawnMuzzleFlashCommand) isCommand() {}
