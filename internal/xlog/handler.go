// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package xlog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Handler renders or forwards a record. Composable: LvlFilterHandler and
// RobotFilterHandler both wrap an inner Handler.
type Handler interface {
	Log(r *record) error
}

// handlerState lets SetHandler swap the active handler chain without a
// race against concurrent log calls.
type handlerState struct {
	mu sync.RWMutex
	h  Handler
}

func (s *handlerState) get() Handler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.h
}

func (s *handlerState) set(h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h = h
}

// defaultHandlerState builds the out-of-the-box handler: level Info,
// colorized if stderr is a terminal, no robot filter.
func defaultHandlerState() *handlerState {
	return &handlerState{h: NewLvlFilterHandler(LvlInfo, NewStreamHandler(StderrWriter(), StderrIsTerminal()))}
}

// StderrWriter wraps os.Stderr through mattn/go-colorable so ANSI escapes
// render correctly on every platform the teacher's CLI targets.
func StderrWriter() io.Writer { return colorable.NewColorableStderr() }

// StderrIsTerminal reports whether stderr is attached to a terminal
// (mattn/go-isatty), the gate for whether StreamHandler colorizes output.
func StderrIsTerminal() bool { return isatty.IsTerminal(os.Stderr.Fd()) }

var levelColor = map[Lvl]*color.Color{
	LvlCrit:  color.New(color.FgMagenta, color.Bold),
	LvlError: color.New(color.FgRed),
	LvlWarn:  color.New(color.FgYellow),
	LvlInfo:  color.New(color.FgGreen),
	LvlDebug: color.New(color.FgCyan),
	LvlTrace: color.New(color.FgWhite),
}

// StreamHandler renders key=value pairs to w, one record per line.
type StreamHandler struct {
	mu      sync.Mutex
	w       io.Writer
	useColor bool
}

// NewStreamHandler constructs a StreamHandler. useColor should come from
// StderrIsTerminal() (or equivalent) for the destination writer.
func NewStreamHandler(w io.Writer, useColor bool) *StreamHandler {
	return &StreamHandler{w: w, useColor: useColor}
}

func (h *StreamHandler) Log(r *record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	lvlStr := strings.ToUpper(r.Lvl.String())
	if h.useColor {
		if c, ok := levelColor[r.Lvl]; ok {
			lvlStr = c.Sprint(lvlStr)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%-5s] %s", r.Time.Format("15:04:05.000"), lvlStr, r.Msg)
	for i := 0; i+1 < len(r.Ctx); i += 2 {
		fmt.Fprintf(&b, " %v=%v", r.Ctx[i], r.Ctx[i+1])
	}
	if r.Lvl >= LvlDebug {
		fmt.Fprintf(&b, " (%s)", r.Call)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}

// LvlFilterHandler drops any record more verbose than max before forwarding
// to next.
type LvlFilterHandler struct {
	max  Lvl
	next Handler
}

func NewLvlFilterHandler(max Lvl, next Handler) *LvlFilterHandler {
	return &LvlFilterHandler{max: max, next: next}
}

func (h *LvlFilterHandler) Log(r *record) error {
	if r.Lvl > h.max {
		return nil
	}
	return h.next.Log(r)
}

// RobotFilterHandler restricts Debug/Trace records to robots named in
// targets (the --debug-filter flag, spec.md §6); records without a "robot"
// context key, and records at Info or coarser, always pass through. An
// empty targets set disables filtering.
type RobotFilterHandler struct {
	targets map[string]bool
	next    Handler
}

// NewRobotFilterHandler splits a comma-separated target list.
func NewRobotFilterHandler(commaSeparated string, next Handler) *RobotFilterHandler {
	targets := make(map[string]bool)
	for _, name := range strings.Split(commaSeparated, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			targets[name] = true
		}
	}
	return &RobotFilterHandler{targets: targets, next: next}
}

func (h *RobotFilterHandler) Log(r *record) error {
	if len(h.targets) > 0 && r.Lvl >= LvlDebug {
		if robot, ok := ctxValue(r.Ctx, "robot"); ok && !h.targets[fmt.Sprint(robot)] {
			return nil
		}
	}
	return h.next.Log(r)
}

func ctxValue(ctx []interface{}, key string) (interface{}, bool) {
	for i := 0; i+1 < len(ctx); i += 2 {
		if k, ok := ctx[i].(string); ok && k == key {
			return ctx[i+1], true
		}
	}
	return nil, false
}

// sortedTargets is used only by tests to get a deterministic listing of a
// RobotFilterHandler's configured targets.
func (h *RobotFilterHandler) sortedTargets() []string {
	names := make([]string, 0, len(h.targets))
	for name := range h.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
