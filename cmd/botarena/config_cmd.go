// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/botarena/internal/config"
)

var dumpConfigCommand = cli.Command{
	Action:      dumpConfig,
	Name:        "dumpconfig",
	Usage:       "Show configuration values",
	ArgsUsage:   "<robot.asm> [robot.asm...]",
	Flags:       gameFlags,
	Description: `The dumpconfig command shows the effective configuration as TOML.`,
}

// buildConfig loads Defaults, merges an optional TOML file, then applies
// any CLI flags the user set explicitly, mirroring cmd/gprobe/config.go's
// makeConfigNode split.
func buildConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Defaults
	cfg.RobotPrograms = ctx.Args()

	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := config.Load(file, &cfg); err != nil {
			return nil, err
		}
	}

	if ctx.GlobalIsSet(maxTurnsFlag.Name) {
		cfg.MaxTurns = ctx.GlobalInt(maxTurnsFlag.Name)
	}
	if ctx.GlobalIsSet(logLevelFlag.Name) {
		cfg.LogLevel = ctx.GlobalString(logLevelFlag.Name)
	}
	if ctx.GlobalIsSet(debugFilterFlag.Name) {
		cfg.DebugFilter = ctx.GlobalString(debugFilterFlag.Name)
	}
	if ctx.GlobalIsSet(noObstaclesFlag.Name) {
		cfg.NoObstacles = ctx.GlobalBool(noObstaclesFlag.Name)
	}
	if ctx.GlobalIsSet(seedFlag.Name) {
		cfg.Seed = ctx.GlobalUint64(seedFlag.Name)
	}
	return &cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := buildConfig(ctx)
	if err != nil {
		return err
	}
	out, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(out))
	return err
}
