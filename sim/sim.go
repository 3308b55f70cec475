// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package sim implements mediated clock gating control for the NXP Kinetis
// K64F (MK64F12) System Integration Module (SIM).
//
// Every controllable bit is exposed as a named operation, generated from
// sim.toml, which translates the register bit to its bit-band alias and
// writes it through a gateway. Writes are fire-and-forget: when isolation is
// active the security monitor may silently reject them.
//
// Generated read accessors and whole register accessors go through the same
// gateway.
package sim

//go:generate go run ../cmd/bitbandgen generate -table sim.toml -out bitband.go

import (
	"fmt"

	"github.com/usbarmory/GoTEE-bitband/bitband"
	"github.com/usbarmory/GoTEE-bitband/gateway"
)

// SIM registers
const (
	SIM_BASE = 0x40047000

	SIM_SCGC1 = 0x1028
	SIM_SCGC4 = 0x1034
	SIM_SCGC5 = 0x1038
)

// SIM represents a System Integration Module instance.
type SIM struct {
	// Base register
	Base uint32
	// Gateway for bit-band writes
	Gateway *gateway.Gateway
}

func lookup(name string) (b bitband.Bit, register bool, err error) {
	for _, b = range Bits {
		switch name {
		case b.Name():
			return
		case b.Register:
			return b, true, nil
		}
	}

	return b, false, fmt.Errorf("invalid bit or register %s", name)
}

// Write writes the least significant bit of v to the named bit
// (REGISTER_FIELD, e.g. SCGC5_PORTA), or v to the whole named register
// (e.g. SCGC5).
func (hw *SIM) Write(name string, v uint32) (err error) {
	b, register, err := lookup(name)

	if err != nil {
		return
	}

	if register {
		hw.Gateway.WriteRegister(hw.Base+b.Offset, b.Width, v)
	} else {
		hw.Gateway.WriteBit(hw.Base+b.Offset, b.Pos, b.Width, v)
	}

	return
}

// Read reads the named bit or register.
func (hw *SIM) Read(name string) (v uint32, err error) {
	b, register, err := lookup(name)

	if err != nil {
		return
	}

	if register {
		return hw.Gateway.ReadRegister(hw.Base+b.Offset, b.Width), nil
	}

	return hw.Gateway.ReadBit(hw.Base+b.Offset, b.Pos, b.Width), nil
}
