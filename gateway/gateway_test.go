// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package gateway

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

type store struct {
	Addr uint32
	Val  uint32
}

type recorder struct {
	stores []store
}

func (r *recorder) Write(addr uint32, val uint32) {
	r.stores = append(r.stores, store{addr, val})
}

// countingMode counts isolation mode reads.
type countingMode struct {
	active bool
	reads  int
}

func (m *countingMode) Active() bool {
	m.reads++
	return m.active
}

func TestDispatch(t *testing.T) {
	addr := bitband.Address32(0x40048000, 5)

	for _, tc := range []struct {
		name        string
		active      bool
		wantDirect  []store
		wantMonitor []store
	}{
		{
			name:       "inactive",
			active:     false,
			wantDirect: []store{{addr, 1}},
		},
		{
			name:        "active",
			active:      true,
			wantMonitor: []store{{addr, 1}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			direct := &recorder{}
			monitor := &recorder{}
			mode := &countingMode{active: tc.active}

			g := New(mode, direct, monitor)
			g.Write(addr, 1)

			if diff := cmp.Diff(tc.wantDirect, direct.stores); diff != "" {
				t.Errorf("direct stores mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.wantMonitor, monitor.stores); diff != "" {
				t.Errorf("monitor calls mismatch (-want +got):\n%s", diff)
			}

			if mode.reads != 1 {
				t.Errorf("mode read %d times, want 1", mode.reads)
			}
		})
	}
}

func TestModeChange(t *testing.T) {
	var flag Flag

	direct := &recorder{}
	monitor := &recorder{}

	g := New(&flag, direct, monitor)

	g.Write(bitband.AliasBase, 1)
	flag.Set(true)
	g.Write(bitband.AliasBase+4, 0)
	flag.Set(false)
	g.Write(bitband.AliasBase+8, 1)

	if diff := cmp.Diff([]store{{bitband.AliasBase, 1}, {bitband.AliasBase + 8, 1}}, direct.stores); diff != "" {
		t.Errorf("direct stores mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]store{{bitband.AliasBase + 4, 0}}, monitor.stores); diff != "" {
		t.Errorf("monitor calls mismatch (-want +got):\n%s", diff)
	}
}

func TestNilMode(t *testing.T) {
	direct := &recorder{}
	g := &Gateway{Direct: direct}

	g.Write(bitband.AliasBase, 1)

	if len(direct.stores) != 1 {
		t.Errorf("got %d direct stores, want 1", len(direct.stores))
	}
}

func TestValuePassthrough(t *testing.T) {
	// the full access width value is handed over unmodified
	monitor := &recorder{}
	g := New(Static(true), WriterFunc(func(uint32, uint32) {
		t.Fatal("unexpected direct store")
	}), monitor)

	g.Write(bitband.AliasBase, 0xfffffffe)

	if diff := cmp.Diff([]store{{bitband.AliasBase, 0xfffffffe}}, monitor.stores); diff != "" {
		t.Errorf("monitor calls mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteBit(t *testing.T) {
	for _, tc := range []struct {
		reg   uint32
		bit   int
		width bitband.Width
		want  uint32
	}{
		{0x40048000, 5, bitband.Width32, 0x42900014},
		{0x40048002, 3, bitband.Width16, bitband.Address32(0x40048000, 19)},
		{0x40048003, 7, bitband.Width8, bitband.Address32(0x40048000, 31)},
	} {
		direct := &recorder{}
		g := New(Static(false), direct, nil)

		g.WriteBit(tc.reg, tc.bit, tc.width, 1)

		if diff := cmp.Diff([]store{{tc.want, 1}}, direct.stores); diff != "" {
			t.Errorf("WriteBit(%#x, %d, %d) mismatch (-want +got):\n%s", tc.reg, tc.bit, tc.width, diff)
		}
	}
}

func TestWriteRegister(t *testing.T) {
	const reg = 0x40048038

	direct := &recorder{}
	mode := &countingMode{}
	g := New(mode, direct, nil)

	g.WriteRegister(reg, bitband.Width32, 0x00040182)

	if diff := cmp.Diff([]store{{reg, 0x00040182}}, direct.stores); diff != "" {
		t.Errorf("32-bit register stores mismatch (-want +got):\n%s", diff)
	}

	direct.stores = nil
	mode.reads = 0

	g.WriteRegister(reg+1, bitband.Width8, 0xa5)

	var want []store

	for bit := 0; bit < 8; bit++ {
		want = append(want, store{bitband.Address8(reg+1, bit), 0xa5 >> bit})
	}

	if diff := cmp.Diff(want, direct.stores); diff != "" {
		t.Errorf("8-bit register stores mismatch (-want +got):\n%s", diff)
	}

	if mode.reads != 1 {
		t.Errorf("mode read %d times, want 1", mode.reads)
	}
}

type constReader struct {
	recorder
	val   uint32
	loads []bitband.Width
}

func (r *constReader) Read(_ uint32, w bitband.Width) uint32 {
	r.loads = append(r.loads, w)
	return r.val
}

func TestRead(t *testing.T) {
	direct := &constReader{val: 0xa1b2c3d4}
	monitor := &constReader{val: 0x00000003}

	for _, tc := range []struct {
		active bool
		read   func(*Gateway) uint32
		want   uint32
	}{
		{false, func(g *Gateway) uint32 { return g.ReadRegister(0x40048038, bitband.Width32) }, 0xa1b2c3d4},
		{false, func(g *Gateway) uint32 { return g.ReadRegister(0x40048038, bitband.Width16) }, 0xc3d4},
		{false, func(g *Gateway) uint32 { return g.ReadBit(0x40048038, 2, bitband.Width32) }, 0},
		{true, func(g *Gateway) uint32 { return g.ReadRegister(0x40048039, bitband.Width8) }, 0x03},
		{true, func(g *Gateway) uint32 { return g.ReadBit(0x40048038, 2, bitband.Width32) }, 1},
	} {
		g := New(Static(tc.active), direct, monitor)

		if got := tc.read(g); got != tc.want {
			t.Errorf("active:%v read = %#x, want %#x", tc.active, got, tc.want)
		}
	}

	if diff := cmp.Diff([]bitband.Width{32, 16, 32}, direct.loads); diff != "" {
		t.Errorf("direct loads mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]bitband.Width{8, 32}, monitor.loads); diff != "" {
		t.Errorf("monitor loads mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWithoutReader(t *testing.T) {
	g := New(Static(true), nil, &recorder{})

	if got := g.ReadRegister(0x40048038, bitband.Width32); got != 0 {
		t.Errorf("ReadRegister() = %#x, want 0", got)
	}
}
