// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Command bitbandgen generates bit-band bindings from register descriptions
// and translates addresses to and from the bit-band alias region.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("bitbandgen: ")
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&generateCmd{}, "")
	subcommands.Register(&aliasCmd{}, "")
	subcommands.Register(&decodeCmd{}, "")

	flag.Parse()

	os.Exit(int(subcommands.Execute(context.Background())))
}
