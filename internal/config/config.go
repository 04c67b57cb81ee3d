// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package config defines botarena's effective configuration: the values
// every other package reads to build an arena, a set of robots, and a
// logging chain. It mirrors cmd/gprobe/config.go's loadConfig/dumpConfig
// split: defaults, then an optional TOML file, then CLI flag overrides.
package config

// Config is the full set of values a game needs to start (spec.md §4.8,
// §6 Command-line surface).
type Config struct {
	// RobotPrograms is 1..4 paths to assembly source files (spec.md §6).
	RobotPrograms []string

	MaxTurns      int     `toml:",omitempty"`
	CyclesPerTurn int     `toml:",omitempty"`
	ArenaWidth    float64 `toml:",omitempty"`
	ArenaHeight   float64 `toml:",omitempty"`
	GridWidth     int     `toml:",omitempty"`
	GridHeight    int     `toml:",omitempty"`

	ObstacleDensity float64 `toml:",omitempty"`
	NoObstacles     bool    `toml:",omitempty"`

	MaxRotationPerCycleDeg float64 `toml:",omitempty"`
	MaxDriveUnitsPerTurn   float64 `toml:",omitempty"`
	PowerRegenPerCycle     float64 `toml:",omitempty"`
	ScanDistance           float64 `toml:",omitempty"`
	ProjectileSubSteps     int     `toml:",omitempty"`

	// Every robot's turret ships with the same scanner/weapon loadout;
	// spec.md leaves the exact values unspecified (original_source/src/config.rs
	// DEFAULT_SCANNER_FOV/DEFAULT_SCANNER_RANGE/DEFAULT_RANGED_DAMAGE/
	// DEFAULT_PROJECTILE_SPEED).
	ScannerFOVDeg         float64 `toml:",omitempty"`
	ScannerRangeUnits     float64 `toml:",omitempty"`
	WeaponProjectileSpeed float64 `toml:",omitempty"`
	WeaponBaseDamage      float64 `toml:",omitempty"`

	LogLevel    string `toml:",omitempty"`
	DebugFilter string `toml:",omitempty"`

	// Seed is the master RNG seed; each robot's own stream is derived from
	// Seed plus its spawn index (SPEC_FULL.md §11, original_source/src/game.rs).
	Seed uint64 `toml:",omitempty"`
}

// Defaults mirrors the shipped configuration constants in
// original_source/src/config.rs, which spec.md refers to without
// reproducing (spec.md §6 --max-turns default; §9 PROJECTILE_SUB_STEPS).
var Defaults = Config{
	MaxTurns:      1000,
	CyclesPerTurn: 100,
	ArenaWidth:    1.0,
	ArenaHeight:   1.0,
	GridWidth:     20,
	GridHeight:    20,

	ObstacleDensity: 0.01,

	MaxRotationPerCycleDeg: 180.0 / 100,
	MaxDriveUnitsPerTurn:   5.0,
	PowerRegenPerCycle:     0.01,
	ScanDistance:           1.0,
	ProjectileSubSteps:     1,

	ScannerFOVDeg:         45.0,
	ScannerRangeUnits:     1.414,
	WeaponProjectileSpeed: 0.2,
	WeaponBaseDamage:      10.0,

	LogLevel: "info",
	Seed:     1,
}
