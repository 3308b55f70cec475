// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

type aliasCmd struct {
	width int
}

func (*aliasCmd) Name() string     { return "alias" }
func (*aliasCmd) Synopsis() string { return "translate a register bit to its bit-band alias address" }
func (*aliasCmd) Usage() string {
	return "alias [-width 8|16|32] <hex register> <bit>\n"
}

func (c *aliasCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "width", 32, "register access width")
}

// alias validates and translates a register bit, unlike the bit-band
// translators which trust their inputs.
func alias(reg string, bit string, w bitband.Width) (addr uint32, err error) {
	r, err := strconv.ParseUint(strings.TrimPrefix(reg, "0x"), 16, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid register, %v", err)
	}

	b, err := strconv.ParseUint(bit, 10, 8)

	if err != nil {
		return 0, fmt.Errorf("invalid bit, %v", err)
	}

	if !bitband.Valid(uint32(r), int(b), w) {
		return 0, errors.New("register bit outside bit-band region")
	}

	return bitband.Bit{Pos: int(b), Width: w}.Address(uint32(r)), nil
}

func (c *aliasCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	addr, err := alias(f.Arg(0), f.Arg(1), bitband.Width(c.width))

	if err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%#.8x\n", addr)

	return subcommands.ExitSuccess
}

type decodeCmd struct{}

func (*decodeCmd) Name() string             { return "decode" }
func (*decodeCmd) Synopsis() string         { return "translate a bit-band alias address to its register bit" }
func (*decodeCmd) Usage() string            { return "decode <hex alias address>\n" }
func (*decodeCmd) SetFlags(_ *flag.FlagSet) {}

func decode(addr string) (reg uint32, bit int, err error) {
	a, err := strconv.ParseUint(strings.TrimPrefix(addr, "0x"), 16, 32)

	if err != nil {
		return 0, 0, fmt.Errorf("invalid address, %v", err)
	}

	reg, bit, ok := bitband.Decode(uint32(a))

	if !ok {
		return 0, 0, errors.New("address outside bit-band alias region")
	}

	return
}

func (c *decodeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	reg, bit, err := decode(f.Arg(0))

	if err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("reg:%#.8x bit:%d\n", reg, bit)

	return subcommands.ExitSuccess
}
