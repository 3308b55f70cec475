// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm
// +build tamago,arm

package gateway

import (
	"github.com/usbarmory/GoTEE/syscall"

	"github.com/usbarmory/GoTEE-bitband/bitband"
	"github.com/usbarmory/GoTEE-bitband/util"
)

// RPC requests mediated writes and reads through the GoTEE RPC system call
// interface, for security monitors which reserve r0 for system call numbers.
type RPC struct{}

// Write implements Writer.
func (RPC) Write(addr uint32, val uint32) {
	req := util.BitbandRequest{
		Addr: addr,
		Val:  val,
	}

	// the outcome of a mediated write is never reported to the caller
	_ = syscall.Call("RPC.Bitband", req, nil)
}

// Read implements Reader, failed requests read as zero.
func (RPC) Read(addr uint32, w bitband.Width) (val uint32) {
	req := util.ReadRequest{
		Addr:  addr,
		Width: int(w),
	}

	if err := syscall.Call("RPC.Read", req, &val); err != nil {
		return 0
	}

	return
}

// QueryMode asks the security monitor whether bit-band writes are mediated.
func QueryMode() (active bool, err error) {
	err = syscall.Call("RPC.Mode", true, &active)
	return
}
