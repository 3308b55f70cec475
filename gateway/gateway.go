// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package gateway implements mediated bit-band writes.
//
// When isolation is inactive a bit-band alias write is performed directly,
// when active the write is handed over, through a synchronous supervisor
// call, to the security monitor which performs it on the caller behalf only
// if legitimate.
//
// Mediated writes are fire-and-forget: a request rejected by the monitor is
// indistinguishable, from the caller, from one which had no effect. Callers
// requiring confirmation must read back the register.
//
// Whole register writes and reads, of bits or registers, follow the same
// dispatch.
package gateway

import (
	"sync/atomic"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

// Writer represents a capability to store a value at a bit-band alias, or
// 32-bit peripheral register, address. It is implemented both by direct
// memory access and by security monitor calls.
type Writer interface {
	Write(addr uint32, val uint32)
}

// WriterFunc adapts an ordinary function to the Writer interface.
type WriterFunc func(addr uint32, val uint32)

// Write calls f(addr, val).
func (f WriterFunc) Write(addr uint32, val uint32) {
	f(addr, val)
}

// Reader represents a capability to load a w-wide value at addr, alias
// addresses load the value of the represented bit.
type Reader interface {
	Read(addr uint32, w bitband.Width) uint32
}

// ReadWriter groups Reader and Writer.
type ReadWriter interface {
	Reader
	Writer
}

// Mode represents the isolation mode accessor.
type Mode interface {
	// Active reports whether writes must be mediated by the security
	// monitor.
	Active() bool
}

// Flag is a Mode safe for concurrent updates, each gateway write observes a
// single value.
type Flag struct {
	active uint32
}

// Set sets the isolation mode.
func (f *Flag) Set(active bool) {
	var v uint32

	if active {
		v = 1
	}

	atomic.StoreUint32(&f.active, v)
}

// Active implements Mode.
func (f *Flag) Active() bool {
	return atomic.LoadUint32(&f.active) == 1
}

// Static is a constant Mode.
type Static bool

// Active implements Mode.
func (s Static) Active() bool {
	return bool(s)
}

// Gateway dispatches bit-band writes either directly or through the security
// monitor according to the isolation mode.
type Gateway struct {
	// Mode is the isolation mode, a nil Mode is never active
	Mode Mode
	// Direct performs stores when isolation is inactive
	Direct Writer
	// Monitor performs security monitor calls when isolation is active
	Monitor Writer
}

func (g *Gateway) target() Writer {
	if g.Mode != nil && g.Mode.Active() {
		return g.Monitor
	}

	return g.Direct
}

// New returns a gateway for the given isolation mode, direct store and
// security monitor call.
func New(mode Mode, direct Writer, monitor Writer) *Gateway {
	return &Gateway{
		Mode:    mode,
		Direct:  direct,
		Monitor: monitor,
	}
}

// Write stores the least significant bit of val at the register bit
// represented by alias address addr.
//
// The isolation mode is read exactly once per call, if active the write is
// requested to the security monitor and Write blocks until it returns.
//
// Word aligned peripheral register addresses are accepted as well, in which
// case val is stored as a whole.
func (g *Gateway) Write(addr uint32, val uint32) {
	g.target().Write(addr, val)
}

// WriteBit translates a register and bit position to its alias address, for
// the given access width, and writes it.
func (g *Gateway) WriteBit(reg uint32, bit int, w bitband.Width, val uint32) {
	g.Write(bitband.Translate(reg, bit, w), val)
}

// WriteRegister writes val to the whole register at reg.
//
// 32-bit registers are written with a single store (or request), narrower
// registers are written one bit at a time through their alias addresses so
// that adjacent registers sharing the same word are never affected.
func (g *Gateway) WriteRegister(reg uint32, w bitband.Width, val uint32) {
	t := g.target()

	if w == bitband.Width32 {
		t.Write(reg, val)
		return
	}

	for bit := 0; bit < int(w); bit++ {
		t.Write(bitband.Translate(reg, bit, w), val>>bit)
	}
}

// Read loads a w-wide value at addr, with the same dispatch as Write. Targets
// which do not implement Reader read as zero.
func (g *Gateway) Read(addr uint32, w bitband.Width) uint32 {
	if r, ok := g.target().(Reader); ok {
		return r.Read(addr, w)
	}

	return 0
}

// ReadBit reads a register bit through its alias address.
func (g *Gateway) ReadBit(reg uint32, bit int, w bitband.Width) uint32 {
	return g.Read(bitband.Translate(reg, bit, w), bitband.Width32) & 1
}

// ReadRegister reads the whole register at reg.
func (g *Gateway) ReadRegister(reg uint32, w bitband.Width) uint32 {
	return g.Read(reg, w) & w.Mask()
}
