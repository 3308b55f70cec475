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
	"os"
	"runtime"
	"time"
	_ "unsafe"

	usbarmory "github.com/usbarmory/tamago/board/usbarmory/mk2"
	"github.com/usbarmory/tamago/dma"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"

	"github.com/usbarmory/imx-usbnet"

	"github.com/usbarmory/GoTEE-bitband/gateway"
	"github.com/usbarmory/GoTEE-bitband/mediator"
	"github.com/usbarmory/GoTEE-bitband/mem"
	"github.com/usbarmory/GoTEE-bitband/sim"
	"github.com/usbarmory/GoTEE-bitband/trusted_os/cmd"
	"github.com/usbarmory/GoTEE-bitband/util"
)

const (
	sshPort = 22
	IP      = "10.0.0.1"
	MAC     = "1a:55:89:a2:69:41"
	hostMAC = "1a:55:89:a2:69:42"
)

// SIM_SCGCx reset values (K64P144M120SF5RM, Rev. 2, 12.2)
const (
	scgc1Reset = 0x00000000
	scgc4Reset = 0xf0100030
	scgc5Reset = 0x00040182
)

//go:linkname ramStart runtime.ramStart
var ramStart uint32 = mem.SecureStart

//go:linkname ramSize runtime.ramSize
var ramSize uint32 = mem.SecureSize

var (
	console *util.Console
	output  = &util.ContextLog{}

	// Mediation state, the SIM is simulated as the i.MX6UL has no
	// bit-band peripheral region.
	image    = mem.NewImage()
	mode     = &gateway.Flag{}
	policy   = mediator.NewAllowList()
	mediated = &mediator.Mediator{
		Policy: policy,
		Target: image,
		Mode:   mode,
		Debug:  true,
	}
)

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	// Move DMA region to prevent applet access, alternatively
	// iRAM/OCRAM (default DMA region) can be locked down on its own (as it
	// is outside TZASC control).
	dma.Init(mem.SecureDMAStart, mem.SecureDMASize)

	if err := mem.Init(); err != nil {
		panic(fmt.Sprintf("could not reserve applet memory, %v", err))
	}

	if imx6ul.Native {
		imx6ul.SetARMFreq(900)

		debugConsole, _ := usbarmory.DetectDebugAccessory(250 * time.Millisecond)
		<-debugConsole
	}

	image.Reset(sim.SIM_BASE+sim.SIM_SCGC1, scgc1Reset)
	image.Reset(sim.SIM_BASE+sim.SIM_SCGC4, scgc4Reset)
	image.Reset(sim.SIM_BASE+sim.SIM_SCGC5, scgc5Reset)

	// the applet is granted clock gating of all SIM bindings, until
	// revoked through the console
	policy.Add(sim.SIM_BASE, sim.Bits)

	// isolation is engaged before any applet runs
	mode.Set(true)

	cmd.Image = image
	cmd.Mode = mode
	cmd.Policy = policy

	cmd.Add(cmd.Cmd{
		Name: "run",
		Help: "run SIM configuration applet",
		Fn:   runCmd,
	})

	log.Printf("SM %s/%s (%s) • TEE security monitor (bit-band mediation)", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func main() {
	defer log.Printf("SM says goodbye")

	if !imx6ul.Native {
		if err := runApplet(); err != nil {
			log.Fatal(err)
		}

		return
	}

	if err := configureTrustZone(); err != nil {
		log.Fatalf("SM could not configure TrustZone, %v", err)
	}

	iface, err := usbnet.Init(IP, MAC, hostMAC, 1)

	if err != nil {
		log.Fatalf("SM could not initialize USB networking, %v", err)
	}

	iface.EnableICMP()

	listener, err := iface.ListenerTCP4(sshPort)

	if err != nil {
		log.Fatalf("SM could not initialize SSH listener, %v", err)
	}

	console = &util.Console{
		Banner:   fmt.Sprintf("%s/%s (%s) • TEE security monitor (bit-band mediation)", runtime.GOOS, runtime.GOARCH, runtime.Version()),
		Help:     cmd.Help(nil),
		Handler:  cmd.Handler,
		Listener: listener,
	}

	if err = console.Start(); err != nil {
		log.Fatalf("SM could not initialize SSH server, %v", err)
	}

	usbarmory.USB1.Init()
	usbarmory.USB1.DeviceMode()
	usbarmory.USB1.Reset()

	// never returns
	usbarmory.USB1.Start(iface.NIC.Device)
}
