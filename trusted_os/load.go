// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm
// +build tamago,arm

package main

import (
	_ "embed"
	"fmt"
	"log"

	"golang.org/x/term"

	"github.com/usbarmory/tamago/arm"
	"github.com/usbarmory/tamago/dma"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"

	"github.com/usbarmory/GoTEE/monitor"

	"github.com/usbarmory/armory-boot/exec"

	"github.com/usbarmory/GoTEE-bitband/mediator"
	"github.com/usbarmory/GoTEE-bitband/mem"
	"github.com/usbarmory/GoTEE-bitband/util"
)

// TA is the applet ELF binary, embedded within the monitor executable.
//
//go:embed assets/trusted_applet.elf
var TA []byte

func configureMMU(region *dma.Region) {
	start := uint32(region.Start())
	end := uint32(region.End())

	imx6ul.ARM.ConfigureMMU(start, end, 0, arm.MemoryRegion|arm.TTE_AP_011<<10)
}

// loadApplet loads a TamaGo unikernel as trusted applet.
func loadApplet() (ta *monitor.ExecCtx, err error) {
	image := &exec.ELFImage{
		Region: mem.AppletRegion,
		ELF:    TA,
	}

	configureMMU(image.Region)

	if err = image.Load(); err != nil {
		return
	}

	if ta, err = monitor.Load(image.Entry(), image.Region, true); err != nil {
		return nil, fmt.Errorf("SM could not load applet, %v", err)
	}

	log.Printf("SM loaded applet addr:%#x entry:%#x size:%d", ta.Memory.Start(), ta.R15, len(TA))

	// set applet as ELF debugging target
	if err = util.SetDebugTarget(TA); err != nil {
		log.Printf("SM applet debugging unavailable, %v", err)
	}

	// register bit-band RPC receiver
	if err = ta.Server.Register(&mediator.RPC{Mediator: mediated}); err != nil {
		return
	}

	// set stack pointer to the end of available memory
	ta.R13 = uint32(ta.Memory.End())

	// service mediated bit-band supervisor calls ahead of GoTEE ones
	ta.Handler = mediated.Handler(goHandler)

	return
}

func run(ctx *monitor.ExecCtx) {
	mode := arm.ModeName(int(ctx.SPSR) & 0x1f)

	log.Printf("SM starting mode:%s sp:%#.8x pc:%#.8x mediation:%v", mode, ctx.R13, ctx.R15, mediated.Active())

	err := ctx.Run()

	log.Printf("SM stopped mode:%s sp:%#.8x lr:%#.8x pc:%#.8x err:%v", mode, ctx.R13, ctx.R14, ctx.R15, err)

	if err != nil {
		pcLine, _ := util.PCToLine(uint64(ctx.R15))
		lrLine, _ := util.PCToLine(uint64(ctx.R14))

		if pcLine != "" || lrLine != "" {
			log.Printf("stack trace:\n  %s\n  %s", pcLine, lrLine)
		}
	}
}

func runApplet() (err error) {
	ta, err := loadApplet()

	if err != nil {
		return
	}

	run(ta)

	return
}

func runCmd(_ *term.Terminal, _ []string) (string, error) {
	return "", runApplet()
}
