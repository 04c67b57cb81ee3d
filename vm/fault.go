// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

package vm

import "fmt"

// FaultCode is the numeric code latched into the Fault register on a VM
// fault (spec.md §7). The values must be preserved exactly: programs read
// them back through the Fault register.
type FaultCode int

const (
	FaultNone                   FaultCode = 0
	FaultInvalidInstruction     FaultCode = 1
	FaultInvalidRegister        FaultCode = 2
	FaultPermissionError        FaultCode = 3
	FaultStackOverflow          FaultCode = 4
	FaultStackUnderflow         FaultCode = 5
	FaultDivisionByZero         FaultCode = 6
	FaultNoComponentSelected    FaultCode = 7
	FaultInvalidComponentForOp  FaultCode = 8
	FaultInsufficientPower      FaultCode = 9
	FaultWeaponOverheated       FaultCode = 10
	FaultInvalidWeaponPower     FaultCode = 11
	FaultInvalidScanResult      FaultCode = 12
	FaultProjectileError        FaultCode = 13
	FaultCallStackOverflow      FaultCode = 14
	FaultCallStackUnderflow     FaultCode = 15
	FaultNotImplemented         FaultCode = 99
)

var faultNames = map[FaultCode]string{
	FaultNone:                  "none",
	FaultInvalidInstruction:    "invalid instruction",
	FaultInvalidRegister:       "invalid register or address",
	FaultPermissionError:       "permission error",
	FaultStackOverflow:         "operand stack overflow",
	FaultStackUnderflow:        "operand stack underflow",
	FaultDivisionByZero:        "division by zero",
	FaultNoComponentSelected:   "no component selected",
	FaultInvalidComponentForOp: "invalid component for operation",
	FaultInsufficientPower:     "insufficient power",
	FaultWeaponOverheated:      "weapon overheated",
	FaultInvalidWeaponPower:    "invalid weapon power",
	FaultInvalidScanResult:     "invalid scan result",
	FaultProjectileError:       "projectile error",
	FaultCallStackOverflow:     "call stack overflow",
	FaultCallStackUnderflow:    "call stack underflow",
	FaultNotImplemented:        "not implemented",
}

// String renders the fault for debug logging.
func (f FaultCode) String() string {
	if s, ok := faultNames[f]; ok {
		return s
	}
	return fmt.Sprintf("fault(%d)", int(f))
}

// FaultError wraps a FaultCode as an error, letting processors return it through
// normal Go error-handling while the executor extracts the numeric code to
// latch into the Fault register.
type FaultError struct {
	Code FaultCode
}

func (f *FaultError) Error() string {
	return fmt.Sprintf("vm fault %d: %s", int(f.Code), f.Code)
}

// NewFault constructs an error carrying the given fault code.
func NewFault(code FaultCode) error {
	return &FaultError{Code: code}
}

// AsFault extracts the FaultCode from an error produced by a processor, or
// FaultNotImplemented if err is a non-fault error (a defensive fallback; in
// practice every processor returns a *FaultError).
func AsFault(err error) FaultCode {
	if f, ok := err.(*FaultError); ok {
		return f.Code
	}
	return FaultNotImplemented
}

// Sentinel faults for convenient reuse at call sites.
var (
	ErrInvalidInstruction    = NewFault(FaultInvalidInstruction)
	ErrPermission            = NewFault(FaultPermissionError)
	ErrStackOverflow         = NewFault(FaultStackOverflow)
	ErrStackUnderflow        = NewFault(FaultStackUnderflow)
	ErrDivisionByZero        = NewFault(FaultDivisionByZero)
	ErrNoComponentSelected   = NewFault(FaultNoComponentSelected)
	ErrInvalidComponentForOp = NewFault(FaultInvalidComponentForOp)
	ErrInvalidRegister       = NewFault(FaultInvalidRegister)
	ErrCallStackOverflow     = NewFault(FaultCallStackOverflow)
	ErrCallStackUnderflow    = NewFault(FaultCallStackUnderflow)
)
