// Package hwio provides small building blocks for decoding a host-facing
// register surface: a byte-wide register with optional read/write
// callbacks, modeled on the bus register type used throughout the teacher
// codebase this package was adapted from, but addressed by a single port
// index rather than a memory-mapped offset.
package hwio

import (
	"fmt"

	"opx271/internal/log"
)

type RWFlags uint8

const (
	readOnlyBit  = 1
	writeOnlyBit = 2
)

const (
	ReadWriteFlag RWFlags = 0
	ReadOnlyFlag  RWFlags = 1 << readOnlyBit
	WriteOnlyFlag RWFlags = 1 << writeOnlyBit
)

// Reg8 is a single byte-wide register, optionally backed by read/write
// callbacks so that a write can drive further decode logic (e.g. latching
// a sub-address, or dispatching to a slot/group field) instead of just
// storing a value.
type Reg8 struct {
	Name   string
	Value  uint8
	RoMask uint8

	Flags   RWFlags
	ReadCb  func(val uint8) uint8
	WriteCb func(old, val uint8)
}

func (reg Reg8) String() string {
	s := fmt.Sprintf("%s{%02x", reg.Name, reg.Value)
	if reg.ReadCb != nil {
		s += ",r!"
	}
	if reg.WriteCb != nil {
		s += ",w!"
	}
	return s + "}"
}

func (reg *Reg8) write(val uint8) {
	old := reg.Value

	preserved := old
	ClearBits8(&preserved, ^reg.RoMask)
	incoming := val
	ClearBits8(&incoming, reg.RoMask)
	reg.Value = preserved | incoming

	if reg.WriteCb != nil {
		reg.WriteCb(old, reg.Value)
	}
}

// Write8 writes val to the register, invoking WriteCb if set. port
// identifies the register for diagnostics only.
func (reg *Reg8) Write8(port uint8, val uint8) {
	if GetBit8(uint8(reg.Flags), readOnlyBit) {
		log.ModReg.ErrorZ("invalid write to readonly register").
			String("name", reg.Name).
			Hex8("port", port).
			End()
		return
	}
	reg.write(val)
}

func (reg *Reg8) Read8(port uint8) uint8 {
	if GetBit8(uint8(reg.Flags), writeOnlyBit) {
		log.ModReg.ErrorZ("invalid read from writeonly register").
			String("name", reg.Name).
			Hex8("port", port).
			End()
		return 0
	}
	if reg.ReadCb != nil {
		return reg.ReadCb(reg.Value)
	}
	return reg.Value
}
