// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Command botarena runs a headless botarena match: it parses 1-4 robot
// assembly programs, simulates the fixed-timestep arena to completion, and
// reports the winner (spec.md §4.8, §6).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/botarena/effects"
	"github.com/probechain/botarena/engine"
	"github.com/probechain/botarena/internal/xlog"
)

func main() {
	app := cli.NewApp()
	app.Name = "botarena"
	app.Usage = "deterministic robot combat arena simulator"
	app.ArgsUsage = "<robot.asm> [robot.asm...]"
	app.Flags = gameFlags
	app.Commands = []cli.Command{dumpConfigCommand}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run is the default action: build the configuration, start the game loop,
// and block until it reaches a terminal state or is interrupted.
func run(ctx *cli.Context) error {
	cfg, err := buildConfig(ctx)
	if err != nil {
		return err
	}

	lvl, err := xlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	handler := xlog.NewRobotFilterHandler(cfg.DebugFilter, xlog.NewStreamHandler(xlog.StderrWriter(), xlog.StderrIsTerminal()))
	xlog.SetHandler(xlog.NewLvlFilterHandler(lvl, handler))

	g, err := engine.NewGame(cfg, effects.NoopSink{})
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The watchdog never touches simulation state: it only closes runCtx,
	// which the game loop polls once per cycle (SPEC_FULL.md §7).
	group, groupCtx := errgroup.WithContext(runCtx)
	group.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-groupCtx.Done():
		}
		return nil
	})
	group.Go(func() error {
		defer cancel()
		return g.Run(groupCtx)
	})

	if err := group.Wait(); err != nil && err != context.Canceled {
		return err
	}

	if g.Winner != nil {
		fmt.Printf("winner: %s (turn %d)\n", g.Winner.DisplayName, g.Turn)
	} else {
		fmt.Printf("draw (turn %d)\n", g.Turn)
	}
	return nil
}
