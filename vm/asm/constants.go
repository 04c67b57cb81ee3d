// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package asm

// BuiltinConstants returns the predefined parser constants the Game loop
// seeds before parsing each program (spec.md §4.8, §6): the arena's
// grid-unit dimensions.
func BuiltinConstants(arenaWidth, arenaHeight float64) map[string]float64 {
	return map[string]float64{
		"ARENA_WIDTH":  arenaWidth,
		"ARENA_HEIGHT": arenaHeight,
	}
}
