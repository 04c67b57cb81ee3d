// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import "gopkg.in/urfave/cli.v1"

// Flags mirror the command-line surface (spec.md §6): positional robot
// program paths plus the listed overrides.
var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	maxTurnsFlag = cli.IntFlag{
		Name:  "max-turns",
		Usage: "Maximum turns before a draw is declared",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "off, crit, error, warn, info, debug, or trace",
	}
	debugFilterFlag = cli.StringFlag{
		Name:  "debug-filter",
		Usage: "Comma-separated robot names to restrict debug/trace logging to",
	}
	noObstaclesFlag = cli.BoolFlag{
		Name:  "no-obstacles",
		Usage: "Disable obstacle placement",
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "Master RNG seed",
	}
)

var gameFlags = []cli.Flag{
	configFileFlag,
	maxTurnsFlag,
	logLevelFlag,
	debugFilterFlag,
	noObstaclesFlag,
	seedFlag,
}
