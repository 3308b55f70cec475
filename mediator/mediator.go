// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mediator implements the security monitor side of mediated
// bit-band writes.
//
// Requests issued by lower privilege contexts are decoded, checked against
// an isolation policy and, only if legitimate, performed on the caller
// behalf. Rejections are never reported back to the caller.
//
// Requests target either a bit, through its alias address, or a whole
// 32-bit register, through its peripheral address. A whole register write is
// legitimate only if each bit it changes could be written on its own.
package mediator

import (
	"errors"
	"log"
	"sync"

	"github.com/usbarmory/GoTEE-bitband/bitband"
	"github.com/usbarmory/GoTEE-bitband/gateway"
)

var (
	// ErrAddress is returned for requests outside the alias and
	// peripheral regions.
	ErrAddress = errors.New("invalid bit-band address")
	// ErrPolicy is returned for requests rejected by the isolation policy.
	ErrPolicy = errors.New("bit-band write rejected by policy")
)

// Mediator performs bit-band writes requested to the security monitor.
type Mediator struct {
	sync.Mutex

	// Policy decides legitimacy of each request, a nil Policy rejects
	// all requests
	Policy Policy
	// Target performs legitimate writes and all reads
	Target gateway.ReadWriter
	// Mode is the isolation mode advertised to lower privilege contexts
	Mode gateway.Mode
	// Debug enables logging of each request
	Debug bool
}

// Handle services a mediated write request, the returned error is for the
// security monitor only.
func (m *Mediator) Handle(addr uint32, val uint32) (err error) {
	if bitband.Peripheral(addr) {
		return m.handleRegister(addr, val)
	}

	reg, bit, ok := bitband.Decode(addr)

	if !ok {
		return ErrAddress
	}

	m.Lock()
	defer m.Unlock()

	if m.Policy == nil || !m.Policy.Allow(reg, bit, val) {
		return ErrPolicy
	}

	if m.Debug {
		log.Printf("SM bitband write reg:%#.8x bit:%d val:%d", reg, bit, val&1)
	}

	m.Target.Write(addr, val)

	return
}

func (m *Mediator) handleRegister(reg uint32, val uint32) (err error) {
	if reg%4 != 0 {
		return ErrAddress
	}

	m.Lock()
	defer m.Unlock()

	if m.Policy == nil {
		return ErrPolicy
	}

	changed := m.Target.Read(reg, bitband.Width32) ^ val

	for bit := 0; bit < 32; bit++ {
		if changed>>bit&1 == 0 {
			continue
		}

		if !m.Policy.Allow(reg, bit, val>>bit) {
			return ErrPolicy
		}
	}

	if m.Debug {
		log.Printf("SM register write reg:%#.8x val:%#.8x changed:%#.8x", reg, val, changed)
	}

	m.Target.Write(reg, val)

	return
}

// Write implements gateway.Writer, rejected requests are logged and
// otherwise ignored.
func (m *Mediator) Write(addr uint32, val uint32) {
	if err := m.Handle(addr, val); err != nil {
		log.Printf("SM bitband write addr:%#.8x val:%#x failed, %v", addr, val, err)
	}
}

// Read implements gateway.Reader, loading a bit through its alias address or
// a w-wide register within the peripheral region. Reads are not subject to
// the isolation policy, invalid addresses read as zero.
func (m *Mediator) Read(addr uint32, w bitband.Width) uint32 {
	switch {
	case bitband.Peripheral(addr):
		if !bitband.Valid(addr, 0, w) {
			return 0
		}
	case bitband.Contains(addr):
		if _, _, ok := bitband.Decode(addr); !ok {
			return 0
		}

		w = bitband.Width32
	default:
		return 0
	}

	m.Lock()
	defer m.Unlock()

	return m.Target.Read(addr, w)
}

// Active reports the isolation mode advertised to lower privilege contexts.
func (m *Mediator) Active() bool {
	return m.Mode != nil && m.Mode.Active()
}
