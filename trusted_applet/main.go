// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm
// +build tamago,arm

package main

import (
	"log"
	"os"
	"runtime"
	"runtime/goos"

	"github.com/usbarmory/GoTEE/applet"

	"github.com/usbarmory/GoTEE-bitband/gateway"
	"github.com/usbarmory/GoTEE-bitband/sim"
)

var mode = &gateway.Flag{}

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	// yield to monitor (w/ err != nil) on runtime panic
	goos.Exit = applet.Crash
}

// enablePorts gates PORTA-PORTE clocks with the two register supervisor
// call convention.
func enablePorts() {
	hw := &sim.SIM{
		Base:    sim.SIM_BASE,
		Gateway: gateway.New(mode, gateway.Memory{}, gateway.SVC{}),
	}

	hw.SCGC5_PORTA(1)
	hw.SCGC5_PORTB(1)
	hw.SCGC5_PORTC(1)
	hw.SCGC5_PORTD(1)
	hw.SCGC5_PORTE(1)

	log.Printf("applet requested PORTA-PORTE clock gating")
}

// enableUARTs gates UART clocks through the RPC interface, resolving
// bindings by name, and reads back the outcome as mediated writes are never
// acknowledged.
func enableUARTs() {
	hw := &sim.SIM{
		Base:    sim.SIM_BASE,
		Gateway: gateway.New(mode, gateway.Memory{}, gateway.RPC{}),
	}

	for _, name := range []string{"SCGC4_UART0", "SCGC4_UART1", "SCGC1_UART4"} {
		if err := hw.Write(name, 1); err != nil {
			log.Printf("applet could not request %s, %v", name, err)
			continue
		}

		log.Printf("applet requested %s clock gating", name)
	}

	log.Printf("applet reads SCGC1:%#.8x SCGC4:%#.8x SCGC5:%#.8x", hw.ReadSCGC1(), hw.ReadSCGC4(), hw.ReadSCGC5())

	// access to UART0 might have been revoked from the console
	if hw.ReadSCGC4_UART0() == 0 {
		log.Printf("applet UART0 clock gating denied")
	}
}

func main() {
	log.Printf("%s/%s (%s) • TEE user applet (SIM configuration)", runtime.GOOS, runtime.GOARCH, runtime.Version())

	active, err := gateway.QueryMode()

	if err != nil {
		log.Printf("applet could not query mediation mode, %v", err)
	}

	mode.Set(active)
	log.Printf("applet mediation:%v", mode.Active())

	enablePorts()
	enableUARTs()

	// terminate applet
	applet.Exit()
}
