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

// fireSpawnOffset is the fraction of one grid unit ahead of the turret at
// which a fired projectile is spawned (spec.md §4.5 Fire).
const fireSpawnOffset = 0.8

// combatProcessor implements fire and scan (spec.md §4.5).
type combatProcessor struct{}

func (combatProcessor) handles(op Opcode) bool {
	switch op {
	case OpFire, OpScan:
		return true
	}
	return false
}

func (combatProcessor) exec(s *State, in Instruction, ctx CycleContext) error {
	switch in.Op {
	case OpFire:
		// Clamp requested power to [0,1], then to what the ship actually
		// has on hand; firing at zero resulting power is silently a no-op
		// (spec.md §4.5 Fire — no fault, no command).
		power := in.Ops[0].Eval(&s.Registers)
		if power < 0 {
			power = 0
		}
		if power > 1 {
			power = 1
		}
		avail := s.Registers.Get(Power)
		if power > avail {
			power = avail
		}
		if power > 0 {
			s.Registers.SetInternal(Power, avail-power)
			rad := ctx.TurretDirectionDeg * math.Pi / 180
			offset := fireSpawnOffset * ctx.UnitSize
			x := ctx.PosX + math.Cos(rad)*offset
			y := ctx.PosY + math.Sin(rad)*offset
			s.emit(SpawnProjectileCommand{
				SourceRobotID: ctx.SelfID,
				X:             x,
				Y:             y,
				DirectionDeg:  ctx.TurretDirectionDeg,
				Speed:         ctx.WeaponProjectileSpeed,
				Power:         power,
				BaseDamage:    ctx.WeaponBaseDamage,
			})
			s.emit(SpawnMuzzleFlashCommand{X: x, Y: y, DirectionDeg: ctx.TurretDirectionDeg})
		}
	case OpScan:
		found, dist, bearing := scanForTarget(s, ctx)
		if found {
			s.Registers.SetInternal(TargetDistance, dist)
			s.Registers.SetInternal(TargetDirection, bearing)
		} else {
			s.Registers.SetInternal(TargetDistance, 0)
			s.Registers.SetInternal(TargetDirection, 0)
		}
	}
	s.advance()
	return nil
}

// scanForTarget implements the turret scanner's line-of-sight search
// (spec.md §4.5 Scan, §4.7): among robots within the scanner's field of
// view and range, the nearest one not blocked by an obstacle or wall
// closer than it along the same bearing.
func scanForTarget(s *State, ctx CycleContext) (found bool, distance, bearing float64) {
	bestDist := math.Inf(1)
	var bestBearing float64
	for _, id := range ctx.OtherIDs {
		if id == ctx.SelfID {
			continue
		}
		snap, ok := ctx.Lookup(id)
		if !ok || snap.Destroyed {
			continue
		}
		dx := snap.X - ctx.PosX
		dy := snap.Y - ctx.PosY
		dist := math.Hypot(dx, dy)
		if dist > ctx.ScannerRangeUnits {
			continue
		}
		absoluteBearing := math.Atan2(dy, dx) * 180 / math.Pi
		rel := normalizeAngle(absoluteBearing - ctx.TurretDirectionDeg)
		if math.Abs(rel) > ctx.ScannerFOVDeg/2 {
			continue
		}
		if ctx.Ray != nil {
			// Visible only if strictly closer than the nearest
			// obstacle/wall along this bearing (spec.md §4.7, §8).
			if losDist := ctx.Ray(absoluteBearing); !(dist < losDist) {
				continue
			}
		}
		if dist < bestDist {
			bestDist = dist
			// TargetDirection is the absolute bearing in [0, 360), not the
			// turret-relative angle used for the FOV check (spec.md §4.5
			// Scan: "its absolute bearing (0..360)").
			bestBearing = normalizeAngle360(absoluteBearing)
			found = true
		}
	}
	if !found {
		return false, 0, 0
	}
	return true, bestDist, bestBearing
}

// normalizeAngle reduces deg to (-180, 180].
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// normalizeAngle360 reduces deg to [0, 360) (spec.md §3 "all angles are
// normalized to [0, 360) when stored").
func normalizeAngle360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
