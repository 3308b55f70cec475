// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/usbarmory/GoTEE-bitband/internal/gen"
)

type generateCmd struct {
	table string
	out   string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate bit-band bindings from a register table" }
func (*generateCmd) Usage() string {
	return "generate -table <file.toml> [-out <file.go>]\n"
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.table, "table", "", "register table (TOML)")
	f.StringVar(&c.out, "out", "", "output file (default stdout)")
}

func (c *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.table == "" || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	table, err := gen.Load(c.table)

	if err != nil {
		log.Printf("could not load %s, %v", c.table, err)
		return subcommands.ExitFailure
	}

	src, err := gen.Render(table, filepath.Base(c.table))

	if err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}

	if c.out == "" {
		_, err = os.Stdout.Write(src)
	} else {
		err = os.WriteFile(c.out, src, 0644)
	}

	if err != nil {
		log.Print(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
