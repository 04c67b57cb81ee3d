// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package xlog

import (
	"time"

	"github.com/go-stack/stack"
)

// record is one log event, built by Logger and consumed by Handler.
type record struct {
	Time time.Time
	Lvl  Lvl
	Msg  string
	Ctx  []interface{}
	Call stack.Call // zero value if not captured (only Debug/Trace capture it)
}

// Logger is the call surface used throughout the engine and arena packages,
// mirroring the teacher's call convention: a message followed by
// alternating key/value pairs (miner/worker.go: log.Info("msg", "k1", v1)).
type Logger interface {
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})

	// New returns a child logger with ctx permanently appended to every
	// record it emits (used to bind "robot", <name> once per robot logger).
	New(ctx ...interface{}) Logger
}

type logger struct {
	ctx []interface{}
	h   *handlerState
}

// root is the default logger, writing to stderr through the handler chain
// installed by SetHandler (called from cmd/botarena at startup).
var root = &logger{h: defaultHandlerState()}

// Root returns the root logger.
func Root() Logger { return root }

// New returns a new logger rooted at the package root, with ctx bound.
func New(ctx ...interface{}) Logger { return root.New(ctx...) }

// SetHandler replaces the root logger's handler chain.
func SetHandler(h Handler) { root.h.set(h) }

func (l *logger) New(ctx ...interface{}) Logger {
	merged := make([]interface{}, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	merged = append(merged, ctx...)
	return &logger{ctx: merged, h: l.h}
}

func (l *logger) write(lvl Lvl, msg string, ctx []interface{}) {
	h := l.h.get()
	if h == nil {
		return
	}
	r := &record{Time: time.Now(), Lvl: lvl, Msg: msg}
	if len(l.ctx) > 0 || len(ctx) > 0 {
		r.Ctx = make([]interface{}, 0, len(l.ctx)+len(ctx))
		r.Ctx = append(r.Ctx, l.ctx...)
		r.Ctx = append(r.Ctx, ctx...)
	}
	if lvl >= LvlDebug {
		// skip write, Trace/Debug/.../Crit, caller
		r.Call = stack.Caller(2)
	}
	_ = h.Log(r)
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(LvlTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{})  { l.write(LvlCrit, msg, ctx) }
