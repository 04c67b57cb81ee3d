// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package xlog is a small structured, leveled, colorized logger in the
// style of go-ethereum's log package (referenced by the teacher's
// miner/worker.go call sites but not part of the retrieved source),
// rebuilt here from its backing dependencies: go-stack/stack for call
// sites, mattn/go-colorable and mattn/go-isatty for terminal detection, and
// fatih/color for ANSI coloring.
package xlog

import (
	"fmt"
	"strings"
)

// Lvl is a logging severity level, most severe first. A handler configured
// with a maximum Lvl passes a record through when record.Lvl <= max.
type Lvl int

const (
	// LvlOff is a filter threshold only, never an emitted level: more
	// severe than Crit, so "allow if Lvl <= max" admits nothing at max=Off.
	LvlOff Lvl = iota - 1
	LvlCrit
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "crit"
	case LvlError:
		return "error"
	case LvlWarn:
		return "warn"
	case LvlInfo:
		return "info"
	case LvlDebug:
		return "debug"
	case LvlTrace:
		return "trace"
	case LvlOff:
		return "off"
	default:
		return fmt.Sprintf("lvl(%d)", int(l))
	}
}

// ParseLevel parses the --log-level flag's value (spec.md §6).
func ParseLevel(s string) (Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LvlOff, nil
	case "crit", "critical":
		return LvlCrit, nil
	case "error":
		return LvlError, nil
	case "warn", "warning":
		return LvlWarn, nil
	case "info":
		return LvlInfo, nil
	case "debug":
		return LvlDebug, nil
	case "trace":
		return LvlTrace, nil
	default:
		return LvlOff, fmt.Errorf("xlog: unknown log level %q", s)
	}
}
