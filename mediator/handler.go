// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm
// +build tamago,arm

package mediator

import (
	"github.com/usbarmory/tamago/arm"

	"github.com/usbarmory/GoTEE/monitor"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

// Handler returns an execution context handler servicing mediated bit-band
// writes, issued as supervisor calls with the alias (or 32-bit register)
// address in r0 and the value in r1. All other exceptions are passed to next.
//
// GoTEE system call numbers never overlap the alias and peripheral regions,
// therefore both calling conventions coexist on the same supervisor call.
func (m *Mediator) Handler(next func(*monitor.ExecCtx) error) func(*monitor.ExecCtx) error {
	return func(ctx *monitor.ExecCtx) (err error) {
		if ctx.ExceptionVector != arm.SUPERVISOR {
			return next(ctx)
		}

		if addr := ctx.A0(); bitband.Contains(addr) || bitband.Peripheral(addr) {
			m.Write(addr, ctx.A1())
			return
		}

		return next(ctx)
	}
}
