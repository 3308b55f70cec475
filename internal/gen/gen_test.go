// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

const portTable = `
package = "port"
type = "PORT"
peripheral = "PORTA"
base = 0x40049000

[[register]]
name = "PCR0"
offset = 0x0
width = 32

  [[register.bit]]
  name = "PE"
  pos = 1

  [[register.bit]]
  name = "PS"
  pos = 0

[[register]]
name = "C1"
offset = 0x5
width = 8

  [[register.bit]]
  name = "IREFS"
  pos = 2
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(portTable))

	if err != nil {
		t.Fatal(err)
	}

	want := []bitband.Bit{
		{Peripheral: "PORTA", Register: "PCR0", Offset: 0, Field: "PE", Pos: 1, Width: bitband.Width32},
		{Peripheral: "PORTA", Register: "PCR0", Offset: 0, Field: "PS", Pos: 0, Width: bitband.Width32},
		{Peripheral: "PORTA", Register: "C1", Offset: 5, Field: "IREFS", Pos: 2, Width: bitband.Width8},
	}

	if diff := cmp.Diff(want, table.Bits()); diff != "" {
		t.Errorf("Bits() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		table string
		err   string
	}{
		{
			name:  "syntax",
			table: `package = `,
			err:   "invalid table",
		},
		{
			name:  "unknown key",
			table: "package = \"p\"\ntype = \"T\"\nbogus = 1\n",
			err:   "unknown key bogus",
		},
		{
			name:  "no registers",
			table: "package = \"p\"\ntype = \"T\"\n",
			err:   "no registers",
		},
		{
			name:  "bad package",
			table: "package = \"1p\"\ntype = \"T\"\n",
			err:   "invalid package or type name",
		},
		{
			name: "duplicate",
			table: `package = "p"
type = "T"
base = 0x40047000
[[register]]
name = "R"
offset = 0
[[register.bit]]
name = "A"
pos = 0
[[register.bit]]
name = "A"
pos = 1
`,
			err: "duplicate bit R_A",
		},
		{
			name: "bit out of range",
			table: `package = "p"
type = "T"
base = 0x40047000
[[register]]
name = "R"
offset = 0
width = 16
[[register.bit]]
name = "A"
pos = 16
`,
			err: "outside bit-band region",
		},
		{
			name: "register and bit name clash",
			table: `package = "p"
type = "T"
base = 0x40047000
[[register]]
name = "R"
offset = 0
[[register.bit]]
name = "A"
pos = 0
[[register]]
name = "R_A"
offset = 4
`,
			err: "duplicate register R_A",
		},
		{
			name: "unaligned register",
			table: `package = "p"
type = "T"
base = 0x40047000
[[register]]
name = "R"
offset = 2
`,
			err: "register R (offset:0x2 width:32) outside bit-band region",
		},
		{
			name: "outside peripheral region",
			table: `package = "p"
type = "T"
base = 0x20000000
[[register]]
name = "R"
offset = 0
[[register.bit]]
name = "A"
pos = 0
`,
			err: "outside bit-band region",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.table))

			if err == nil || !strings.Contains(err.Error(), tc.err) {
				t.Errorf("Parse() = %v, want error containing %q", err, tc.err)
			}
		})
	}
}

func TestDefaultWidth(t *testing.T) {
	table, err := Parse([]byte(`package = "p"
type = "T"
base = 0x40047000
[[register]]
name = "R"
offset = 4
[[register.bit]]
name = "A"
pos = 31
`))

	if err != nil {
		t.Fatal(err)
	}

	if bits := table.Bits(); len(bits) != 1 || bits[0].Width != bitband.Width32 {
		t.Errorf("Bits() = %+v, want a single 32-bit row", bits)
	}

	if diff := cmp.Diff([]Reg{{Name: "R", Offset: 4, Width: bitband.Width32}}, table.Regs()); diff != "" {
		t.Errorf("Regs() mismatch (-want +got):\n%s", diff)
	}

	// the table is left as declared
	if table.Registers[0].Width != 0 {
		t.Errorf("register width normalized to %d", table.Registers[0].Width)
	}
}

func TestRender(t *testing.T) {
	table, err := Parse([]byte(portTable))

	if err != nil {
		t.Fatal(err)
	}

	src, err := Render(table, "port.toml")

	if err != nil {
		t.Fatal(err)
	}

	f, err := parser.ParseFile(token.NewFileSet(), "port.go", src, parser.ParseComments)

	if err != nil {
		t.Fatalf("generated source does not parse, %v\n%s", err, src)
	}

	if f.Name.Name != "port" {
		t.Errorf("package = %s, want port", f.Name.Name)
	}

	for _, s := range []string{
		"// Code generated by bitbandgen from port.toml; DO NOT EDIT.",
		"func (hw *PORT) PCR0_PE(v uint32) {",
		"hw.Gateway.WriteBit(hw.Base+0x0, 1, bitband.Width32, v)",
		"func (hw *PORT) C1_IREFS(v uint32) {",
		"hw.Gateway.WriteBit(hw.Base+0x5, 2, bitband.Width8, v)",
		"func (hw *PORT) ReadC1_IREFS() uint32 {",
		"return hw.Gateway.ReadBit(hw.Base+0x5, 2, bitband.Width8)",
		"func (hw *PORT) WriteC1(v uint32) {",
		"hw.Gateway.WriteRegister(hw.Base+0x5, bitband.Width8, v)",
		"func (hw *PORT) ReadPCR0() uint32 {",
		"return hw.Gateway.ReadRegister(hw.Base+0x0, bitband.Width32)",
		`{Peripheral: "PORTA", Register: "C1", Offset: 0x5, Field: "IREFS", Pos: 2, Width: bitband.Width8},`,
	} {
		if !strings.Contains(string(src), s) {
			t.Errorf("generated source lacks %q", s)
		}
	}

	var funcs int

	for _, decl := range f.Decls {
		if _, ok := decl.(*ast.FuncDecl); ok {
			funcs++
		}
	}

	// bit writes and reads, whole register writes and reads
	if funcs != 3*2+2*2 {
		t.Errorf("got %d bindings, want %d", funcs, 3*2+2*2)
	}
}
