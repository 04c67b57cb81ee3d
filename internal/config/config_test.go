// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpThenLoadRoundTrips(t *testing.T) {
	cfg := Defaults
	cfg.RobotPrograms = []string{"a.asm", "b.asm"}
	cfg.Seed = 42

	out, err := Dump(&cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "botarena.toml")
	require.NoError(t, os.WriteFile(path, out, 0644))

	var loaded Config
	require.NoError(t, Load(path, &loaded))

	assert.Equal(t, uint64(42), loaded.Seed)
	assert.Equal(t, Defaults.MaxTurns, loaded.MaxTurns)
	assert.Equal(t, []string{"a.asm", "b.asm"}, loaded.RobotPrograms)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	var cfg Config
	err := Load(filepath.Join(t.TempDir(), "missing.toml"), &cfg)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("NotARealField = 1\n"), 0644))

	cfg := Defaults
	err := Load(path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NotARealField")
}

func TestDefaultsMatchSpecDefaults(t *testing.T) {
	assert.Equal(t, 1000, Defaults.MaxTurns, "spec.md §6")
	assert.Equal(t, 1, Defaults.ProjectileSubSteps, "spec.md §9 PROJECTILE_SUB_STEPS")
}
