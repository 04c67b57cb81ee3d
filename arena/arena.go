// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package arena

import (
	"math"
	"math/rand/v2"

	"github.com/probechain/botarena/effects"
)

// Arena is the 2D playfield (spec.md §3): a grid of obstacles and the
// currently in-flight projectiles. unit_size = width / grid_width.
type Arena struct {
	Width, Height         float64
	GridWidth, GridHeight int
	UnitSize              float64

	Obstacles   []Obstacle
	Projectiles []*Projectile

	// SubSteps is PROJECTILE_SUB_STEPS (spec.md §9): the shipped
	// configuration uses 1, making the sub-step loop degenerate, but the
	// parameter is preserved for future tuning.
	SubSteps int

	// Simulation tunables shared by every robot's physics-cycle update
	// (spec.md §4.6) and VM cycle context (spec.md §4.5 Drive), attached
	// here since Arena is the one object every per-cycle robot update
	// already receives.
	CyclesPerTurn          int
	MaxRotationPerCycleDeg float64
	MaxDriveUnitsPerTurn   float64
	PowerRegenPerCycle     float64
	ScanDistance           float64
}

// NewArena constructs an arena with the given footprint and grid
// resolution. subSteps must be >= 1 (spec.md §9); callers passing <= 0 get 1.
func NewArena(width, height float64, gridWidth, gridHeight, subSteps int) *Arena {
	if subSteps < 1 {
		subSteps = 1
	}
	return &Arena{
		Width:      width,
		Height:     height,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		UnitSize:   width / float64(gridWidth),
		SubSteps:   subSteps,
	}
}

// RobotRadius is the collision radius shared by every robot (spec.md §4.7):
// a disc of radius unit_size/2.
func (a *Arena) RobotRadius() float64 { return a.UnitSize / 2 }

// PlaceObstacles samples floor(density * grid_width * grid_height) distinct
// grid cells by rejection sampling (spec.md §4.7): deterministic for a
// given rng seed, non-deterministic across seeds.
func (a *Arena) PlaceObstacles(density float64, rng *rand.Rand) {
	total := a.GridWidth * a.GridHeight
	count := int(math.Floor(density * float64(total)))
	if count > total {
		count = total
	}
	occupied := make(map[[2]int]bool, count)
	for len(a.Obstacles) < count {
		cx := rng.IntN(a.GridWidth)
		cy := rng.IntN(a.GridHeight)
		key := [2]int{cx, cy}
		if occupied[key] {
			continue
		}
		occupied[key] = true
		center := Point{(float64(cx) + 0.5) * a.UnitSize, (float64(cy) + 0.5) * a.UnitSize}
		a.Obstacles = append(a.Obstacles, Obstacle{Center: center})
	}
}

// CheckCollision reports whether p lies within the closed AABB of any
// obstacle (spec.md §4.7).
func (a *Arena) CheckCollision(p Point) bool {
	half := a.UnitSize / 2
	for _, o := range a.Obstacles {
		minX, minY, maxX, maxY := o.aabb(half, 0)
		if p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY {
			return true
		}
	}
	return false
}

// DistanceToCollision returns the distance along the ray from start in
// direction angleDeg at which a disc of radius robotRadius first touches
// either an arena wall or an obstacle (spec.md §4.7). Never negative.
func (a *Arena) DistanceToCollision(start Point, angleDeg, robotRadius float64) float64 {
	rad := angleDeg * math.Pi / 180
	cosA, sinA := math.Cos(rad), math.Sin(rad)

	best := rayWallDistance(start, cosA, sinA, a.Width, a.Height, robotRadius)
	half := a.UnitSize / 2
	for _, o := range a.Obstacles {
		minX, minY, maxX, maxY := o.aabb(half, robotRadius)
		if d, hit := rayAABBDistance(start, cosA, sinA, minX, minY, maxX, maxY); hit && d < best {
			best = d
		}
	}
	if best < 0 {
		best = 0
	}
	return best
}

// rayWallDistance computes the center-to-wall distance, minus robotRadius,
// for whichever of the four walls lie ahead along the ray; clamped to >= 0.
func rayWallDistance(start Point, cosA, sinA, width, height, robotRadius float64) float64 {
	const epsilon = 1e-12
	dx := math.MaxFloat64
	switch {
	case cosA > epsilon:
		dx = (width - robotRadius - start.X) / cosA
	case cosA < -epsilon:
		dx = (robotRadius - start.X) / cosA
	}
	dy := math.MaxFloat64
	switch {
	case sinA > epsilon:
		dy = (height - robotRadius - start.Y) / sinA
	case sinA < -epsilon:
		dy = (robotRadius - start.Y) / sinA
	}
	d := math.Min(dx, dy)
	if d < 0 {
		d = 0
	}
	return d
}

// rayAABBDistance is the slab-method ray-AABB intersection test. Reports 0,
// true if start already lies inside the box.
func rayAABBDistance(start Point, cosA, sinA, minX, minY, maxX, maxY float64) (float64, bool) {
	if start.X >= minX && start.X <= maxX && start.Y >= minY && start.Y <= maxY {
		return 0, true
	}
	tmin, tmax := 0.0, math.MaxFloat64
	if cosA != 0 {
		tx1, tx2 := (minX-start.X)/cosA, (maxX-start.X)/cosA
		if tx1 > tx2 {
			tx1, tx2 = tx2, tx1
		}
		tmin = math.Max(tmin, tx1)
		tmax = math.Min(tmax, tx2)
	} else if start.X < minX || start.X > maxX {
		return 0, false
	}
	if sinA != 0 {
		ty1, ty2 := (minY-start.Y)/sinA, (maxY-start.Y)/sinA
		if ty1 > ty2 {
			ty1, ty2 = ty2, ty1
		}
		tmin = math.Max(tmin, ty1)
		tmax = math.Min(tmax, ty2)
	} else if start.Y < minY || start.Y > maxY {
		return 0, false
	}
	if tmin > tmax || tmax < 0 {
		return 0, false
	}
	return tmin, true
}

// UpdateAllRobotsAOI refreshes every non-destroyed robot's AOI list with the
// ids of other non-destroyed robots within scanDistance, inclusive
// (spec.md §4.7).
func (a *Arena) UpdateAllRobotsAOI(robots []*Robot, scanDistance float64) {
	for _, r := range robots {
		if r.Status == StatusDestroyed {
			continue
		}
		aoi := r.AOI[:0]
		for _, other := range robots {
			if other.ID == r.ID || other.Status == StatusDestroyed {
				continue
			}
			if r.Position.Dist(other.Position) <= scanDistance {
				aoi = append(aoi, other.ID)
			}
		}
		r.AOI = aoi
	}
}

// UpdateProjectiles advances every live projectile by SubSteps sub-steps of
// speed*unit_size/SubSteps, checking bounds, obstacle, and robot collisions
// after each sub-step (spec.md §4.7).
func (a *Arena) UpdateProjectiles(robots []*Robot, sink effects.Sink) {
	subSteps := a.SubSteps
	if subSteps < 1 {
		subSteps = 1
	}
	radius := a.UnitSize / 2

	alive := a.Projectiles[:0]
	for _, p := range a.Projectiles {
		p.PrevPosition = p.Position
		stepDist := p.Speed * a.UnitSize / float64(subSteps)
		removed := false
		for s := 0; s < subSteps && !removed; s++ {
			p.Position = pointOnRay(p.Position, p.DirectionDeg, stepDist)
			switch {
			case p.Position.X < 0 || p.Position.X > a.Width || p.Position.Y < 0 || p.Position.Y > a.Height:
				sink.SpawnExplosion(effects.ExplosionWall, p.Position.X, p.Position.Y, p.Power)
				sink.PlaySound(effects.SoundWallHit)
				removed = true
			case a.CheckCollision(p.Position):
				sink.SpawnExplosion(effects.ExplosionObstacle, p.Position.X, p.Position.Y, p.Power)
				sink.PlaySound(effects.SoundWallHit)
				removed = true
			default:
				for _, r := range robots {
					if r.ID == p.SourceRobotID || r.Status == StatusDestroyed {
						continue
					}
					if r.Position.Dist(p.Position) < radius {
						sink.SpawnExplosion(effects.ExplosionRobot, p.Position.X, p.Position.Y, p.Power)
						sink.PlaySound(effects.SoundBotHit)
						r.Health -= p.BaseDamage * p.Power
						if r.Health < 0 {
							r.Health = 0
						}
						if r.Health == 0 && r.Status != StatusDestroyed {
							r.Status = StatusDestroyed
							sink.PlaySound(effects.SoundDeath)
						}
						removed = true
						break
					}
				}
			}
		}
		if !removed {
			alive = append(alive, p)
		}
	}
	a.Projectiles = alive
}

// AddWreckObstacle converts a destroyed robot's last position into an
// obstacle, snapping to the nearest grid-cell center rather than the exact
// position (spec.md §4.8 step 7; original_source/src/arena.rs supplements
// the exact cell choice, which spec.md leaves unspecified).
func (a *Arena) AddWreckObstacle(pos Point) {
	cx := math.Floor(pos.X / a.UnitSize)
	cy := math.Floor(pos.Y / a.UnitSize)
	a.Obstacles = append(a.Obstacles, Obstacle{Center: Point{
		X: (cx + 0.5) * a.UnitSize,
		Y: (cy + 0.5) * a.UnitSize,
	}})
}
