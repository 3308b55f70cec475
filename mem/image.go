// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"sort"
	"sync"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

// Image represents a simulated register image of the bit-band peripheral
// region, registers which were never written read as zero.
//
// Accesses to the image go through the bit-band alias region or the
// peripheral region, as hardware would, so that it can serve as target of
// direct and mediated gateway accesses.
type Image struct {
	sync.Mutex
	words map[uint32]uint32
}

// NewImage returns an empty register image.
func NewImage() *Image {
	return &Image{
		words: make(map[uint32]uint32),
	}
}

// Write stores the least significant bit of val to the register bit
// represented by alias address addr, or val as a whole to the word aligned
// peripheral register at addr. Any other store is ignored.
func (m *Image) Write(addr uint32, val uint32) {
	m.Lock()
	defer m.Unlock()

	if bitband.Peripheral(addr) {
		if addr%4 == 0 {
			m.words[addr] = val
		}

		return
	}

	reg, bit, ok := bitband.Decode(addr)

	if !ok {
		return
	}

	w := m.words[reg]
	bitband.Apply(&w, bit, val)
	m.words[reg] = w
}

// Read loads the bit represented by alias address addr, or the w-wide
// peripheral register at addr. Any other load reads as zero.
func (m *Image) Read(addr uint32, w bitband.Width) uint32 {
	if bitband.Peripheral(addr) {
		return m.Word(addr) >> (8 * (addr & 3)) & w.Mask()
	}

	if reg, bit, ok := bitband.Decode(addr); ok {
		return m.Word(reg) >> bit & 1
	}

	return 0
}

// Word returns the 32-bit register containing reg.
func (m *Image) Word(reg uint32) uint32 {
	m.Lock()
	defer m.Unlock()

	return m.words[reg&^3]
}

// Reset sets the whole 32-bit register at reg to val, it models hardware
// reset values and bypasses the alias region.
func (m *Image) Reset(reg uint32, val uint32) {
	m.Lock()
	defer m.Unlock()

	m.words[reg&^3] = val
}

// Registers returns the addresses of all registers holding a value, in
// ascending order.
func (m *Image) Registers() (regs []uint32) {
	m.Lock()
	defer m.Unlock()

	for reg := range m.words {
		regs = append(regs, reg)
	}

	sort.Slice(regs, func(i, j int) bool { return regs[i] < regs[j] })

	return
}
