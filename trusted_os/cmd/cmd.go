// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cmd implements the security monitor console commands.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
)

// Cmd represents a console command.
type Cmd struct {
	// Name is the command name, matched exactly when Pattern is nil
	Name string
	// Args is the number of arguments captured by Pattern
	Args int
	// Pattern matches the command line and captures its arguments
	Pattern *regexp.Regexp
	// Syntax is the arguments help
	Syntax string
	// Help is the command description
	Help string
	// Fn is the command function
	Fn func(term *term.Terminal, arg []string) (res string, err error)
}

var cmds = make(map[string]*Cmd)

func init() {
	Add(Cmd{
		Name: "help",
		Help: "this help",
		Fn:   helpCmd,
	})

	Add(Cmd{
		Name:    "exit, quit",
		Args:    1,
		Pattern: regexp.MustCompile(`^(exit|quit)$`),
		Help:    "close session",
		Fn:      exitCmd,
	})
}

// Add registers a console command.
func Add(cmd Cmd) {
	cmds[cmd.Name] = &cmd
}

// Help returns the console help.
func Help(term *term.Terminal) string {
	var help bytes.Buffer
	var names []string

	t := tabwriter.NewWriter(&help, 16, 8, 0, '\t', tabwriter.TabIndent)

	for name := range cmds {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		_, _ = fmt.Fprintf(t, "%s\t%s\t # %s\n", cmds[name].Name, cmds[name].Syntax, cmds[name].Help)
	}

	_ = t.Flush()

	if term != nil {
		return string(term.Escape.Cyan) + help.String() + string(term.Escape.Reset)
	}

	return help.String()
}

// Exec looks up and runs the command matching a console line.
func Exec(term *term.Terminal, line string) (res string, err error) {
	line = strings.TrimSpace(line)

	if line == "" {
		return
	}

	var match *Cmd
	var arg []string

	for _, cmd := range cmds {
		if cmd.Pattern == nil {
			if line == strings.TrimSpace(cmd.Name) {
				match = cmd
				break
			}

			continue
		}

		if m := cmd.Pattern.FindStringSubmatch(line); len(m) > 0 && len(m)-1 == cmd.Args {
			match = cmd
			arg = m[1:]
			break
		}
	}

	if match == nil {
		return "", errors.New("unknown command, type `help`")
	}

	return match.Fn(term, arg)
}

// Handler is the console line handler.
func Handler(term *term.Terminal, line string) (err error) {
	res, err := Exec(term, line)

	if len(res) > 0 {
		fmt.Fprintln(term, res)
	}

	return
}

func helpCmd(term *term.Terminal, _ []string) (string, error) {
	return Help(term), nil
}

func exitCmd(_ *term.Terminal, _ []string) (string, error) {
	return "logout", io.EOF
}
