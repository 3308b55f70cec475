// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/usbarmory/GoTEE-bitband/bitband"
	"github.com/usbarmory/GoTEE-bitband/gateway"
	"github.com/usbarmory/GoTEE-bitband/internal/gen"
	"github.com/usbarmory/GoTEE-bitband/mediator"
	"github.com/usbarmory/GoTEE-bitband/mem"
)

func TestBitsMatchTable(t *testing.T) {
	table, err := gen.Load("sim.toml")

	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(table.Bits(), Bits); diff != "" {
		t.Errorf("generated bindings out of date (-table +generated):\n%s", diff)
	}
}

func TestBindings(t *testing.T) {
	for _, tc := range []struct {
		fn  func(*SIM, uint32)
		reg uint32
		bit int
	}{
		{(*SIM).SCGC1_UART4, SIM_SCGC1, 10},
		{(*SIM).SCGC1_UART5, SIM_SCGC1, 11},
		{(*SIM).SCGC4_UART0, SIM_SCGC4, 10},
		{(*SIM).SCGC4_UART1, SIM_SCGC4, 11},
		{(*SIM).SCGC4_UART2, SIM_SCGC4, 12},
		{(*SIM).SCGC4_UART3, SIM_SCGC4, 13},
		{(*SIM).SCGC5_PORTA, SIM_SCGC5, 9},
		{(*SIM).SCGC5_PORTB, SIM_SCGC5, 10},
		{(*SIM).SCGC5_PORTC, SIM_SCGC5, 11},
		{(*SIM).SCGC5_PORTD, SIM_SCGC5, 12},
		{(*SIM).SCGC5_PORTE, SIM_SCGC5, 13},
	} {
		image := mem.NewImage()
		image.Reset(SIM_BASE+tc.reg, 0x00040180)

		hw := &SIM{
			Base:    SIM_BASE,
			Gateway: gateway.New(gateway.Static(false), image, nil),
		}

		tc.fn(hw, 1)

		if got, want := image.Word(SIM_BASE+tc.reg), uint32(0x00040180|1<<tc.bit); got != want {
			t.Errorf("%#x bit %d: register = %#x, want %#x", tc.reg, tc.bit, got, want)
		}

		tc.fn(hw, 0)

		if got := image.Word(SIM_BASE + tc.reg); got != 0x00040180 {
			t.Errorf("%#x bit %d: register = %#x, want 0x00040180", tc.reg, tc.bit, got)
		}
	}
}

func TestWriteByName(t *testing.T) {
	image := mem.NewImage()

	hw := &SIM{
		Base:    SIM_BASE,
		Gateway: gateway.New(gateway.Static(false), image, nil),
	}

	if err := hw.Write("SCGC5_PORTC", 1); err != nil {
		t.Fatal(err)
	}

	if got := image.Word(SIM_BASE + SIM_SCGC5); got != 1<<11 {
		t.Errorf("SCGC5 = %#x, want %#x", got, 1<<11)
	}

	if err := hw.Write("SCGC5_PORTF", 1); err == nil {
		t.Error("Write() succeeded for an unknown bit")
	}
}

func TestMediatedBindings(t *testing.T) {
	image := mem.NewImage()

	// the monitor only grants PORTx clock gating
	allow := mediator.NewAllowList()

	for _, b := range Bits {
		if b.Register == "SCGC5" {
			allow.Add(SIM_BASE, []bitband.Bit{b})
		}
	}

	m := &mediator.Mediator{
		Policy: allow,
		Target: image,
	}

	direct := gateway.WriterFunc(func(uint32, uint32) {
		t.Fatal("unexpected direct store")
	})

	hw := &SIM{
		Base:    SIM_BASE,
		Gateway: gateway.New(gateway.Static(true), direct, m),
	}

	hw.SCGC5_PORTA(1)
	hw.SCGC5_PORTE(1)
	// rejected without caller visible error
	hw.SCGC4_UART0(1)

	if got, want := image.Word(SIM_BASE+SIM_SCGC5), uint32(1<<9|1<<13); got != want {
		t.Errorf("SCGC5 = %#x, want %#x", got, want)
	}

	if got := image.Word(SIM_BASE + SIM_SCGC4); got != 0 {
		t.Errorf("SCGC4 = %#x, want 0", got)
	}
}

func TestReadBindings(t *testing.T) {
	image := mem.NewImage()
	image.Reset(SIM_BASE+SIM_SCGC5, 0x00040182|1<<11)

	hw := &SIM{
		Base:    SIM_BASE,
		Gateway: gateway.New(gateway.Static(false), image, nil),
	}

	if got := hw.ReadSCGC5_PORTC(); got != 1 {
		t.Errorf("ReadSCGC5_PORTC() = %d, want 1", got)
	}

	if got := hw.ReadSCGC5_PORTA(); got != 0 {
		t.Errorf("ReadSCGC5_PORTA() = %d, want 0", got)
	}

	if got, want := hw.ReadSCGC5(), uint32(0x00040982); got != want {
		t.Errorf("ReadSCGC5() = %#x, want %#x", got, want)
	}

	hw.WriteSCGC4(0xf0100030)

	if got := image.Word(SIM_BASE + SIM_SCGC4); got != 0xf0100030 {
		t.Errorf("SCGC4 = %#x, want 0xf0100030", got)
	}
}

func TestRegisterByName(t *testing.T) {
	image := mem.NewImage()

	hw := &SIM{
		Base:    SIM_BASE,
		Gateway: gateway.New(gateway.Static(false), image, nil),
	}

	if err := hw.Write("SCGC1", 1<<10|1<<11); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		name string
		want uint32
	}{
		{"SCGC1", 1<<10 | 1<<11},
		{"SCGC1_UART5", 1},
		{"SCGC4_UART0", 0},
	} {
		got, err := hw.Read(tc.name)

		if err != nil || got != tc.want {
			t.Errorf("Read(%s) = %#x, %v, want %#x", tc.name, got, err, tc.want)
		}
	}

	if _, err := hw.Read("SCGC7"); err == nil {
		t.Error("Read() succeeded for an unknown register")
	}
}

func TestMediatedRegisterWrite(t *testing.T) {
	const reset = 0x00040182

	image := mem.NewImage()
	image.Reset(SIM_BASE+SIM_SCGC5, reset)

	allow := mediator.NewAllowList()
	allow.Add(SIM_BASE, Bits)

	m := &mediator.Mediator{
		Policy: allow,
		Target: image,
	}

	hw := &SIM{
		Base:    SIM_BASE,
		Gateway: gateway.New(gateway.Static(true), nil, m),
	}

	// only PORTA and PORTB change
	hw.WriteSCGC5(reset | 1<<9 | 1<<10)

	if got, want := hw.ReadSCGC5(), uint32(reset|1<<9|1<<10); got != want {
		t.Errorf("SCGC5 = %#x, want %#x", got, want)
	}

	// unbound bits change, the whole write is rejected
	hw.WriteSCGC5(1<<11)

	if got, want := image.Word(SIM_BASE+SIM_SCGC5), uint32(reset|1<<9|1<<10); got != want {
		t.Errorf("SCGC5 = %#x, want unchanged %#x", got, want)
	}

	if got := hw.ReadSCGC5_PORTB(); got != 1 {
		t.Errorf("ReadSCGC5_PORTB() = %d, want 1", got)
	}
}
