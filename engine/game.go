// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package engine owns the fixed-timestep game loop (spec.md §4.8): it
// constructs the arena and robots, drains VM commands into arena state each
// cycle, and resolves win/draw conditions.
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/probechain/botarena/arena"
	"github.com/probechain/botarena/effects"
	"github.com/probechain/botarena/internal/config"
	"github.com/probechain/botarena/internal/xlog"
	"github.com/probechain/botarena/vm"
	"github.com/probechain/botarena/vm/asm"
)

// spawnInsetUnits is how far, in grid units, each corner spawn point sits
// from its corner (spec.md §4.8: "four corner-offset spawn positions (2
// grid units inset)").
const spawnInsetUnits = 2.0

// Game is one running match: the arena, the active robot list, and turn
// bookkeeping (spec.md §3 Ownership: "the Game owns the Arena and all
// Robots").
type Game struct {
	Arena *arena.Arena
	Robots []*arena.Robot

	Turn, Cycle int
	MaxTurns    int
	CyclesPerTurn int

	GameOver bool
	Winner   *arena.Robot // nil on a draw

	Sink effects.Sink
	log  xlog.Logger

	cycleDuration time.Duration
	accumulator   time.Duration
}

// NewGame parses every robot program (seeding ARENA_WIDTH/ARENA_HEIGHT as
// predefined constants first, spec.md §4.8), places obstacles unless
// disabled, and spawns up to four robots at corner-offset positions.
func NewGame(cfg *config.Config, sink effects.Sink) (*Game, error) {
	if len(cfg.RobotPrograms) < 1 || len(cfg.RobotPrograms) > 4 {
		return nil, fmt.Errorf("engine: need 1-4 robot programs, got %d", len(cfg.RobotPrograms))
	}

	a := arena.NewArena(cfg.ArenaWidth, cfg.ArenaHeight, cfg.GridWidth, cfg.GridHeight, cfg.ProjectileSubSteps)
	a.CyclesPerTurn = cfg.CyclesPerTurn
	a.MaxRotationPerCycleDeg = cfg.MaxRotationPerCycleDeg
	a.MaxDriveUnitsPerTurn = cfg.MaxDriveUnitsPerTurn
	a.PowerRegenPerCycle = cfg.PowerRegenPerCycle
	a.ScanDistance = cfg.ScanDistance

	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	if !cfg.NoObstacles {
		a.PlaceObstacles(cfg.ObstacleDensity, rng)
	}

	predefined := asm.BuiltinConstants(float64(cfg.GridWidth), float64(cfg.GridHeight))
	center := arena.Point{X: a.Width / 2, Y: a.Height / 2}
	scanner := arena.Scanner{FOVDeg: cfg.ScannerFOVDeg, RangeUnits: cfg.ScannerRangeUnits}
	weapon := arena.RangedWeapon{ProjectileSpeed: cfg.WeaponProjectileSpeed, BaseDamage: cfg.WeaponBaseDamage}

	robots := make([]*arena.Robot, 0, len(cfg.RobotPrograms))
	for i, path := range cfg.RobotPrograms {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("engine: reading %s: %w", path, err)
		}
		result, err := asm.Parse(string(source), predefined)
		if err != nil {
			return nil, fmt.Errorf("engine: parsing %s: %w", path, err)
		}
		spawn := cornerSpawn(i, a, spawnInsetUnits)
		r := arena.NewRobot(fmt.Sprintf("robot-%d", i), spawn, center, result.Program, scanner, weapon, cfg.Seed, i)
		robots = append(robots, r)
	}

	g := &Game{
		Arena:         a,
		Robots:        robots,
		MaxTurns:      cfg.MaxTurns,
		CyclesPerTurn: cfg.CyclesPerTurn,
		Sink:          sink,
		log:           xlog.New("component", "engine"),
		cycleDuration: time.Second / time.Duration(cfg.CyclesPerTurn),
	}
	return g, nil
}

// cornerSpawn returns one of the four corners of the arena, inset by
// insetUnits grid units (spec.md §4.8).
func cornerSpawn(index int, a *arena.Arena, insetUnits float64) arena.Point {
	inset := insetUnits * a.UnitSize
	corners := [4]arena.Point{
		{X: inset, Y: inset},
		{X: a.Width - inset, Y: inset},
		{X: a.Width - inset, Y: a.Height - inset},
		{X: inset, Y: a.Height - inset},
	}
	return corners[index%len(corners)]
}

// Run drives the fixed-timestep accumulator loop (spec.md §4.8 Main loop;
// grounded on miner/worker.go's select{ case <-ticker.C: ...; case
// <-exitCh: return } shape). It returns when ctx is cancelled or the game
// reaches a terminal state.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.cycleDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.log.Info("game loop stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			g.accumulator += g.cycleDuration
			for g.accumulator >= g.cycleDuration {
				g.accumulator -= g.cycleDuration
				g.updateSimulation()
				if g.GameOver || g.Turn > g.MaxTurns {
					if !g.GameOver {
						g.log.Info("max turns reached", "turn", g.Turn)
					}
					return nil
				}
			}
		}
	}
}

// updateSimulation advances exactly one cycle (spec.md §4.8's nine ordered
// steps).
func (g *Game) updateSimulation() {
	// 1. Snapshot previous states.
	for _, r := range g.Robots {
		r.UpdatePrevState()
	}

	// 2. Physics-cycle update (rotation, movement, power regen).
	for _, r := range g.Robots {
		if r.Status == arena.StatusDestroyed {
			continue
		}
		r.ProcessCycleUpdates(g.Arena)
	}

	// 3. Update AOIs.
	g.Arena.UpdateAllRobotsAOI(g.Robots, g.Arena.ScanDistance)

	// 4. Register refresh + one VM-cycle execution per robot, against a
	// cycle-start snapshot of every robot's position/status (spec.md §5,
	// §9 "Cross-robot references during Scan").
	snapshot := make(map[string]vm.RobotSnapshot, len(g.Robots))
	otherIDs := make([]string, 0, len(g.Robots))
	for _, r := range g.Robots {
		snapshot[r.ID.String()] = vm.RobotSnapshot{X: r.Position.X, Y: r.Position.Y, Destroyed: r.Status == arena.StatusDestroyed}
		otherIDs = append(otherIDs, r.ID.String())
	}

	for _, r := range g.Robots {
		if r.Status == arena.StatusDestroyed {
			continue
		}
		r.UpdateVMStateRegisters(g.Arena, g.Turn, g.Cycle)

		selfID := r.ID.String()
		lookup := func(id string) (vm.RobotSnapshot, bool) {
			if id == selfID {
				return vm.RobotSnapshot{X: r.Position.X, Y: r.Position.Y, Destroyed: r.Status == arena.StatusDestroyed}, true
			}
			snap, ok := snapshot[id]
			return snap, ok
		}
		r.ExecuteVMCycle(g.Arena, lookup, otherIDs)

		// 5. Drain the command queue.
		for _, cmd := range r.VM.DrainCommands() {
			g.applyCommand(r, cmd)
		}
	}

	// 6. Projectile motion and damage.
	g.Arena.UpdateProjectiles(g.Robots, g.Sink)

	// 7. Destroyed robots become wreck obstacles and leave the active list.
	alive := g.Robots[:0]
	for _, r := range g.Robots {
		if r.Status == arena.StatusDestroyed {
			g.Arena.AddWreckObstacle(r.Position)
			g.log.Debug("robot destroyed", "robot", r.DisplayName)
			continue
		}
		alive = append(alive, r)
	}
	g.Robots = alive

	// 8. Win/draw.
	if len(g.Robots) <= 1 {
		g.GameOver = true
		if len(g.Robots) == 1 {
			g.Winner = g.Robots[0]
			g.log.Info("game over", "winner", g.Winner.DisplayName)
		} else {
			g.log.Info("game over", "result", "draw")
		}
	}

	// 9. Cycle/turn increment, written back to every surviving robot.
	g.Cycle++
	if g.Cycle >= g.CyclesPerTurn {
		g.Cycle = 0
		g.Turn++
	}
	for _, r := range g.Robots {
		r.VM.Registers.SetInternal(vm.Turn, float64(g.Turn))
		r.VM.Registers.SetInternal(vm.Cycle, float64(g.Cycle))
	}
}

// applyCommand routes one VM-emitted command to the arena or the effect
// sink (spec.md §4.8 step 5).
func (g *Game) applyCommand(source *arena.Robot, cmd vm.Command) {
	switch c := cmd.(type) {
	case vm.SpawnProjectileCommand:
		g.Arena.Projectiles = append(g.Arena.Projectiles, arena.NewProjectile(
			arena.Point{X: c.X, Y: c.Y}, c.DirectionDeg, c.Speed, c.Power, c.BaseDamage, source.ID,
		))
		g.Sink.PlaySound(effects.SoundFire)
	case vm.SpawnMuzzleFlashCommand:
		g.Sink.SpawnMuzzleFlash(c.X, c.Y, c.DirectionDeg)
	}
}
