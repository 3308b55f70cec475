// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-bitband/bitband"
	"github.com/usbarmory/GoTEE-bitband/gateway"
	"github.com/usbarmory/GoTEE-bitband/mediator"
	"github.com/usbarmory/GoTEE-bitband/mem"
	"github.com/usbarmory/GoTEE-bitband/sim"
)

// Security monitor state exposed to console commands.
var (
	// Image is the simulated SIM register image
	Image *mem.Image
	// Mode is the isolation mode advertised to the applet
	Mode *gateway.Flag
	// Policy is the mediated write allow list
	Policy *mediator.AllowList
)

func init() {
	Add(Cmd{
		Name:    "alias",
		Args:    2,
		Pattern: regexp.MustCompile(`^alias ([[:xdigit:]]+) (\d+)$`),
		Syntax:  "<hex reg> <bit>",
		Help:    "bit-band alias address of a 32-bit register bit",
		Fn:      aliasCmd,
	})

	Add(Cmd{
		Name:    "decode",
		Args:    1,
		Pattern: regexp.MustCompile(`^decode ([[:xdigit:]]+)$`),
		Syntax:  "<hex alias>",
		Help:    "register bit of a bit-band alias address",
		Fn:      decodeCmd,
	})

	Add(Cmd{
		Name:    "mode",
		Args:    1,
		Pattern: regexp.MustCompile(`^mode(?: (on|off))?$`),
		Syntax:  "(on|off)?",
		Help:    "show/change bit-band mediation for the next applet run",
		Fn:      modeCmd,
	})

	Add(Cmd{
		Name:    "sim",
		Args:    2,
		Pattern: regexp.MustCompile(`^sim (\w+)(?: (0x[[:xdigit:]]+|\d+))?$`),
		Syntax:  "<REGISTER(_FIELD)> (value)?",
		Help:    "read/write SIM bit or register (privileged)",
		Fn:      simCmd,
	})

	Add(Cmd{
		Name:    "deny",
		Args:    1,
		Pattern: regexp.MustCompile(`^deny (\w+)$`),
		Syntax:  "<REGISTER_FIELD>",
		Help:    "revoke applet access to SIM bit",
		Fn:      denyCmd,
	})

	Add(Cmd{
		Name: "regs",
		Help: "show SIM register image",
		Fn:   regsCmd,
	})
}

func parseHex(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	return uint32(v), err
}

func aliasCmd(_ *term.Terminal, arg []string) (res string, err error) {
	reg, err := parseHex(arg[0])

	if err != nil {
		return "", fmt.Errorf("invalid register, %v", err)
	}

	bit, err := strconv.Atoi(arg[1])

	if err != nil {
		return "", fmt.Errorf("invalid bit, %v", err)
	}

	if !bitband.Valid(reg, bit, bitband.Width32) {
		return "", errors.New("register bit outside bit-band region")
	}

	return fmt.Sprintf("%#.8x", bitband.Address32(reg, bit)), nil
}

func decodeCmd(_ *term.Terminal, arg []string) (res string, err error) {
	addr, err := parseHex(arg[0])

	if err != nil {
		return "", fmt.Errorf("invalid address, %v", err)
	}

	reg, bit, ok := bitband.Decode(addr)

	if !ok {
		return "", errors.New("address outside bit-band alias region")
	}

	return fmt.Sprintf("reg:%#.8x bit:%d", reg, bit), nil
}

func modeCmd(_ *term.Terminal, arg []string) (res string, err error) {
	if Mode == nil {
		return "", errors.New("mediation unavailable")
	}

	switch arg[0] {
	case "on":
		Mode.Set(true)
	case "off":
		Mode.Set(false)
	}

	return fmt.Sprintf("mediation:%v", Mode.Active()), nil
}

func lookup(name string) (b bitband.Bit, err error) {
	for _, b = range sim.Bits {
		if b.Name() == name {
			return
		}
	}

	return b, fmt.Errorf("invalid SIM bit %s", name)
}

func simCmd(_ *term.Terminal, arg []string) (res string, err error) {
	if Image == nil {
		return "", errors.New("SIM image unavailable")
	}

	// the monitor is privileged and accesses the image directly
	hw := &sim.SIM{
		Base:    sim.SIM_BASE,
		Gateway: gateway.New(nil, Image, nil),
	}

	if len(arg[1]) == 0 {
		val, err := hw.Read(arg[0])

		if err != nil {
			return "", err
		}

		return fmt.Sprintf("SIM_%s %#x", arg[0], val), nil
	}

	val, err := strconv.ParseUint(arg[1], 0, 32)

	if err != nil {
		return "", fmt.Errorf("invalid value, %v", err)
	}

	if err = hw.Write(arg[0], uint32(val)); err != nil {
		return
	}

	for _, b := range sim.Bits {
		if b.Name() == arg[0] || b.Register == arg[0] {
			return fmt.Sprintf("SIM_%s %#.8x", b.Register, Image.Word(sim.SIM_BASE+b.Offset)), nil
		}
	}

	return
}

func denyCmd(_ *term.Terminal, arg []string) (res string, err error) {
	if Policy == nil {
		return "", errors.New("policy unavailable")
	}

	b, err := lookup(arg[0])

	if err != nil {
		return
	}

	reg, bit, _ := bitband.Decode(b.Address(sim.SIM_BASE))
	Policy.Remove(reg, bit)

	return
}

func regsCmd(_ *term.Terminal, _ []string) (string, error) {
	var buf bytes.Buffer

	if Image == nil {
		return "", errors.New("SIM image unavailable")
	}

	for _, reg := range Image.Registers() {
		fmt.Fprintf(&buf, "%#.8x: %#.8x\n", reg, Image.Word(reg))
	}

	return buf.String(), nil
}
