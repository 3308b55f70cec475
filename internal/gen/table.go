// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package gen implements generation of bit-band binding tables from register
// descriptions.
package gen

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

var identifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Table represents the register description of a peripheral class.
type Table struct {
	// Package is the Go package name of the generated bindings
	Package string `toml:"package"`
	// Type is the Go type name of the peripheral instance
	Type string `toml:"type"`
	// Peripheral is the peripheral name
	Peripheral string `toml:"peripheral"`
	// Base is the base address of the first peripheral instance, used to
	// validate register offsets
	Base uint32 `toml:"base"`
	// Registers are the peripheral registers with controllable bits
	Registers []Register `toml:"register"`
}

// Register represents a peripheral register.
type Register struct {
	Name   string  `toml:"name"`
	Offset uint32  `toml:"offset"`
	Width  int     `toml:"width"`
	Bits   []Field `toml:"bit"`
}

func (r Register) width() bitband.Width {
	if r.Width == 0 {
		return bitband.Width32
	}

	return bitband.Width(r.Width)
}

// Field represents a single register bit.
type Field struct {
	Name string `toml:"name"`
	Pos  int    `toml:"pos"`
}

// Parse parses a TOML register description.
func Parse(data []byte) (t *Table, err error) {
	t = &Table{}

	md, err := toml.Decode(string(data), t)

	if err != nil {
		return nil, fmt.Errorf("invalid table, %v", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("invalid table, unknown key %s", undecoded[0])
	}

	if err = t.Validate(); err != nil {
		return nil, err
	}

	return
}

// Load reads and parses a TOML register description file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Validate checks that every table register and bit is a valid bit-band
// translation input and that all binding names are unique Go identifiers.
func (t *Table) Validate() error {
	if !identifier.MatchString(t.Package) || !identifier.MatchString(t.Type) {
		return errors.New("invalid package or type name")
	}

	if len(t.Registers) == 0 {
		return errors.New("no registers")
	}

	names := make(map[string]bool)

	for _, r := range t.Registers {
		w := r.width()

		if !identifier.MatchString(r.Name) {
			return fmt.Errorf("invalid register name %q", r.Name)
		}

		if names[r.Name] {
			return fmt.Errorf("duplicate register %s", r.Name)
		}

		names[r.Name] = true

		if !bitband.Valid(t.Base+r.Offset, 0, w) {
			return fmt.Errorf("register %s (offset:%#x width:%d) outside bit-band region", r.Name, r.Offset, w)
		}

		for _, f := range r.Bits {
			name := r.Name + "_" + f.Name

			if !identifier.MatchString(f.Name) {
				return fmt.Errorf("invalid bit name %q", name)
			}

			if names[name] {
				return fmt.Errorf("duplicate bit %s", name)
			}

			names[name] = true

			if !bitband.Valid(t.Base+r.Offset, f.Pos, w) {
				return fmt.Errorf("bit %s (offset:%#x pos:%d width:%d) outside bit-band region", name, r.Offset, f.Pos, w)
			}
		}
	}

	return nil
}

// Bits returns the binding table rows, in declaration order.
func (t *Table) Bits() (bits []bitband.Bit) {
	for _, r := range t.Registers {
		w := r.width()

		for _, f := range r.Bits {
			bits = append(bits, bitband.Bit{
				Peripheral: t.Peripheral,
				Register:   r.Name,
				Offset:     r.Offset,
				Field:      f.Name,
				Pos:        f.Pos,
				Width:      w,
			})
		}
	}

	return
}

// Reg represents a whole register binding.
type Reg struct {
	Name   string
	Offset uint32
	Width  bitband.Width
}

// Regs returns the whole register binding rows, in declaration order.
func (t *Table) Regs() (regs []Reg) {
	for _, r := range t.Registers {
		regs = append(regs, Reg{
			Name:   r.Name,
			Offset: r.Offset,
			Width:  r.width(),
		})
	}

	return
}
