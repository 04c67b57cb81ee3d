// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package xlog

import (
	"strings"
	"testing"
	"time"
)

func TestStreamHandlerFormatsKeyValuePairs(t *testing.T) {
	var b strings.Builder
	h := NewStreamHandler(&b, false)
	r := &record{Time: time.Now(), Lvl: LvlInfo, Msg: "turn complete", Ctx: []interface{}{"turn", 3, "robot", "alpha"}}
	if err := h.Log(r); err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "turn complete") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "turn=3") || !strings.Contains(out, "robot=alpha") {
		t.Errorf("output missing context pairs: %q", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("output missing level: %q", out)
	}
}

func TestStreamHandlerOmitsCallSiteBelowDebug(t *testing.T) {
	var b strings.Builder
	h := NewStreamHandler(&b, false)
	r := &record{Time: time.Now(), Lvl: LvlInfo, Msg: "hello"}
	h.Log(r)
	if strings.Contains(b.String(), "(") {
		t.Errorf("Info record should not render a call site: %q", b.String())
	}
}

type recordingHandler struct {
	records []*record
}

func (h *recordingHandler) Log(r *record) error {
	h.records = append(h.records, r)
	return nil
}

func TestLvlFilterHandlerDropsVerbose(t *testing.T) {
	rec := &recordingHandler{}
	h := NewLvlFilterHandler(LvlWarn, rec)

	h.Log(&record{Lvl: LvlError, Msg: "a"})
	h.Log(&record{Lvl: LvlDebug, Msg: "b"})
	h.Log(&record{Lvl: LvlWarn, Msg: "c"})

	if len(rec.records) != 2 {
		t.Fatalf("got %d records, want 2 (error and warn pass, debug dropped)", len(rec.records))
	}
}

func TestRobotFilterHandlerRestrictsDebugToTargets(t *testing.T) {
	rec := &recordingHandler{}
	h := NewRobotFilterHandler("alpha, bravo", rec)

	h.Log(&record{Lvl: LvlDebug, Msg: "a", Ctx: []interface{}{"robot", "alpha"}})
	h.Log(&record{Lvl: LvlDebug, Msg: "b", Ctx: []interface{}{"robot", "charlie"}})
	h.Log(&record{Lvl: LvlInfo, Msg: "c", Ctx: []interface{}{"robot", "charlie"}})

	if len(rec.records) != 2 {
		t.Fatalf("got %d records, want 2 (alpha debug + charlie info, charlie debug dropped)", len(rec.records))
	}
	if rec.records[0].Msg != "a" || rec.records[1].Msg != "c" {
		t.Errorf("unexpected records passed through: %+v", rec.records)
	}
}

func TestRobotFilterHandlerEmptyAllowsAll(t *testing.T) {
	rec := &recordingHandler{}
	h := NewRobotFilterHandler("", rec)
	h.Log(&record{Lvl: LvlDebug, Msg: "a", Ctx: []interface{}{"robot", "anyone"}})
	if len(rec.records) != 1 {
		t.Fatalf("empty filter should allow all records, got %d", len(rec.records))
	}
}

func TestRobotFilterHandlerSortedTargets(t *testing.T) {
	h := NewRobotFilterHandler("bravo,alpha", &recordingHandler{})
	got := h.sortedTargets()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "bravo" {
		t.Errorf("sortedTargets() = %v, want [alpha bravo]", got)
	}
}
