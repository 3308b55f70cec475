// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mediator

import (
	"sync"
	"unsafe"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

// Emulator performs bit-band accesses, on cores lacking a hardware alias
// region, as read-modify-write of the physical register.
//
// Unlike hardware bit-band stores the update is not atomic with respect to
// other bus masters, Emulator only serializes its own accesses.
type Emulator struct {
	sync.Mutex

	// Register maps a physical register address to its storage, nil
	// maps addresses identically
	Register func(reg uint32) *uint32
}

func (e *Emulator) word(reg uint32) *uint32 {
	if e.Register != nil {
		return e.Register(reg)
	}

	return (*uint32)(unsafe.Pointer(uintptr(reg)))
}

// Write implements gateway.Writer, word aligned peripheral register
// addresses are stored as a whole, any other store outside the alias region
// is ignored.
func (e *Emulator) Write(addr uint32, val uint32) {
	e.Lock()
	defer e.Unlock()

	if bitband.Peripheral(addr) {
		if ptr := e.word(addr); addr%4 == 0 && ptr != nil {
			*ptr = val
		}

		return
	}

	reg, bit, ok := bitband.Decode(addr)

	if !ok {
		return
	}

	if ptr := e.word(reg); ptr != nil {
		bitband.Apply(ptr, bit, val)
	}
}

// Read implements gateway.Reader, any load outside the alias and peripheral
// regions reads as zero.
func (e *Emulator) Read(addr uint32, w bitband.Width) uint32 {
	e.Lock()
	defer e.Unlock()

	if bitband.Peripheral(addr) {
		if ptr := e.word(addr &^ 3); ptr != nil {
			return *ptr >> (8 * (addr & 3)) & w.Mask()
		}

		return 0
	}

	if reg, bit, ok := bitband.Decode(addr); ok {
		if ptr := e.word(reg); ptr != nil {
			return *ptr >> bit & 1
		}
	}

	return 0
}
