// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

import (
	"bytes"
	"debug/elf"
	"debug/gosym"
	"errors"
	"fmt"
	"sync"
)

var debugTarget struct {
	sync.Mutex

	exe    *elf.File
	symTab *gosym.Table
}

// SetDebugTarget sets the ELF image used to resolve applet program counters
// in stack traces.
func SetDebugTarget(buf []byte) (err error) {
	debugTarget.Lock()
	defer debugTarget.Unlock()

	debugTarget.exe = nil
	debugTarget.symTab = nil

	exe, err := elf.NewFile(bytes.NewReader(buf))

	if err != nil {
		return
	}

	debugTarget.exe = exe

	return
}

func goSymTable(exe *elf.File) (symTable *gosym.Table, err error) {
	text := exe.Section(".text")
	pclntab := exe.Section(".gopclntab")

	if text == nil || pclntab == nil {
		return nil, errors.New("missing Go symbol sections")
	}

	lineTableData, err := pclntab.Data()

	if err != nil {
		return
	}

	lineTable := gosym.NewLineTable(lineTableData, text.Addr)

	var symTableData []byte

	if s := exe.Section(".gosymtab"); s != nil {
		if symTableData, err = s.Data(); err != nil {
			return
		}
	}

	return gosym.NewTable(symTableData, lineTable)
}

// PCToLine resolves a program counter of the debug target to its source
// file and line.
func PCToLine(pc uint64) (s string, err error) {
	debugTarget.Lock()
	defer debugTarget.Unlock()

	if debugTarget.exe == nil {
		return "", errors.New("no debug target")
	}

	if debugTarget.symTab == nil {
		if debugTarget.symTab, err = goSymTable(debugTarget.exe); err != nil {
			return
		}
	}

	file, line, fn := debugTarget.symTab.PCToLine(pc)

	if fn == nil {
		return "", fmt.Errorf("unknown pc %#x", pc)
	}

	return fmt.Sprintf("%s:%d %s", file, line, fn.Name), nil
}
