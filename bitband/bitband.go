// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package bitband implements address translation for the Cortex-M bit-band
// alias region, where each 32-bit word maps one-to-one to a single bit of the
// peripheral region.
//
// A plain store to the alias word of bit B of register R sets or clears bit B
// of R (according to the least significant bit of the stored value) without
// affecting any other bit of R.
package bitband

import (
	"github.com/usbarmory/tamago/bits"
)

// Kinetis K64F (MK64F12) peripheral bit-band regions, these cover AIPS0,
// AIPS1 and GPIO.
const (
	PeripheralBase = 0x40000000
	PeripheralSize = 0x00100000 // 1MB

	AliasBase = 0x42000000
	AliasSize = PeripheralSize * 32 // 32MB
)

const (
	// alias words per peripheral byte
	registerStride = 32
	// alias word size
	bitStride = 4
)

// Width represents a register access width in bits.
type Width int

// Supported register access widths.
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// Bytes returns the register size in bytes.
func (w Width) Bytes() uint32 {
	return uint32(w) / 8
}

// Mask returns the register value mask.
func (w Width) Mask() uint32 {
	return 0xffffffff >> (32 - uint32(w))
}

// Bit represents a single controllable register bit.
type Bit struct {
	// Peripheral is the peripheral name (e.g. SIM)
	Peripheral string
	// Register is the register name (e.g. SCGC5)
	Register string
	// Offset is the register offset from the peripheral instance base
	Offset uint32
	// Field is the bit field name (e.g. PORTA)
	Field string
	// Pos is the bit position within the register
	Pos int
	// Width is the register access width
	Width Width
}

// Name returns the binding name, REGISTER_FIELD.
func (b Bit) Name() string {
	return b.Register + "_" + b.Field
}

// Address returns the alias address of the bit for a peripheral instance
// located at base.
func (b Bit) Address(base uint32) uint32 {
	return Translate(base+b.Offset, b.Pos, b.Width)
}

func alias(reg uint32, bit int) uint32 {
	return AliasBase + registerStride*(reg-PeripheralBase) + bitStride*uint32(bit)
}

// Address32 returns the alias address of bit `bit` of the 32-bit register
// at `reg`.
//
// The register must be word aligned within the peripheral region and bit
// must be lower than 32, no check is performed.
func Address32(reg uint32, bit int) uint32 {
	return alias(reg, bit)
}

// Address16 returns the alias address of bit `bit` of the 16-bit register
// at `reg`.
//
// The register must be half-word aligned within the peripheral region and bit
// must be lower than 16, no check is performed.
func Address16(reg uint32, bit int) uint32 {
	return alias(reg, bit)
}

// Address8 returns the alias address of bit `bit` of the 8-bit register at
// `reg`.
//
// The register must lie within the peripheral region and bit must be lower
// than 8, no check is performed.
func Address8(reg uint32, bit int) uint32 {
	return alias(reg, bit)
}

// Translate returns the alias address of bit `bit` of the register at `reg`
// using the translator for access width w, unknown widths are translated as
// 32-bit registers.
func Translate(reg uint32, bit int, w Width) uint32 {
	switch w {
	case Width8:
		return Address8(reg, bit)
	case Width16:
		return Address16(reg, bit)
	default:
		return Address32(reg, bit)
	}
}

// Valid reports whether the register and bit pair can be translated for the
// given access width.
func Valid(reg uint32, bit int, w Width) bool {
	switch w {
	case Width8, Width16, Width32:
	default:
		return false
	}

	if reg < PeripheralBase || reg > PeripheralBase+PeripheralSize-w.Bytes() {
		return false
	}

	if reg%w.Bytes() != 0 {
		return false
	}

	return bit >= 0 && bit < int(w)
}

// Peripheral reports whether addr lies within the peripheral region.
func Peripheral(addr uint32) bool {
	return addr >= PeripheralBase && addr-PeripheralBase < PeripheralSize
}

// Contains reports whether addr lies within the alias region.
func Contains(addr uint32) bool {
	return addr >= AliasBase && addr-AliasBase < AliasSize
}

// Decode returns the 32-bit register and bit position represented by an
// alias address, ok is false if addr is not a word aligned address within
// the alias region.
func Decode(addr uint32) (reg uint32, bit int, ok bool) {
	if !Contains(addr) || addr%bitStride != 0 {
		return
	}

	n := (addr - AliasBase) / bitStride

	reg = PeripheralBase + (n/32)*4
	bit = int(n % 32)

	return reg, bit, true
}

// Apply stores the least significant bit of val at position bit of the
// pointed word, leaving all other bits untouched.
func Apply(word *uint32, bit int, val uint32) {
	if val&1 == 1 {
		bits.Set(word, bit)
	} else {
		bits.Clear(word, bit)
	}
}
