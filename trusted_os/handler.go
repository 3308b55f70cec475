// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm
// +build tamago,arm

package main

import (
	"fmt"
	"log"

	"github.com/usbarmory/tamago/arm"

	"github.com/usbarmory/GoTEE/monitor"
	"github.com/usbarmory/GoTEE/syscall"
)

func goHandler(ctx *monitor.ExecCtx) (err error) {
	if ctx.ExceptionVector == arm.DATA_ABORT {
		// direct bit-band stores abort on cores without an alias
		// region
		log.Printf("SM trapped applet data abort pc:%#.8x", ctx.R15-8)

		log.Print(ctx)
		ctx.Stop()

		return
	}

	if ctx.ExceptionVector != arm.SUPERVISOR {
		return fmt.Errorf("exception %x", ctx.ExceptionVector)
	}

	switch ctx.A0() {
	case syscall.SYS_WRITE:
		// Override write syscall to avoid interleaved logs and to log
		// simultaneously to remote terminal and serial console.
		if console != nil {
			output.Term = console.Term
		}

		output.Put(byte(ctx.A1()), !ctx.NonSecure())
	case syscall.SYS_EXIT:
		ctx.Stop()
	default:
		return monitor.SecureHandler(ctx)
	}

	return
}
