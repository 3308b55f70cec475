// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

const header = `// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Code generated by bitbandgen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/usbarmory/GoTEE-bitband/bitband"
)

// Bits is the {{.Peripheral}} bit-band binding table.
var Bits = []bitband.Bit{
{{- range .Bits}}
	{Peripheral: "{{.Peripheral}}", Register: "{{.Register}}", Offset: {{printf "%#x" .Offset}}, Field: "{{.Field}}", Pos: {{.Pos}}, Width: {{width .Width}}},
{{- end}}
}
{{range .Bits}}
// {{.Name}} writes the least significant bit of v to {{$.Peripheral}}_{{.Register}} bit {{.Pos}} ({{.Field}}).
func (hw *{{$.Type}}) {{.Name}}(v uint32) {
	hw.Gateway.WriteBit(hw.Base+{{printf "%#x" .Offset}}, {{.Pos}}, {{width .Width}}, v)
}

// Read{{.Name}} reads {{$.Peripheral}}_{{.Register}} bit {{.Pos}} ({{.Field}}).
func (hw *{{$.Type}}) Read{{.Name}}() uint32 {
	return hw.Gateway.ReadBit(hw.Base+{{printf "%#x" .Offset}}, {{.Pos}}, {{width .Width}})
}
{{end}}
{{- range .Regs}}
// Write{{.Name}} writes v to the whole {{$.Peripheral}}_{{.Name}} register.
func (hw *{{$.Type}}) Write{{.Name}}(v uint32) {
	hw.Gateway.WriteRegister(hw.Base+{{printf "%#x" .Offset}}, {{width .Width}}, v)
}

// Read{{.Name}} reads the whole {{$.Peripheral}}_{{.Name}} register.
func (hw *{{$.Type}}) Read{{.Name}}() uint32 {
	return hw.Gateway.ReadRegister(hw.Base+{{printf "%#x" .Offset}}, {{width .Width}})
}
{{end}}`

var bindings = template.Must(template.New("bindings").Funcs(template.FuncMap{
	"width": func(w bitband.Width) string {
		return fmt.Sprintf("bitband.Width%d", w)
	},
}).Parse(header))

// Render returns the gofmt formatted Go source of the table bindings, source
// is the table file name recorded in the generated file header.
func Render(t *Table, source string) ([]byte, error) {
	var buf bytes.Buffer

	data := struct {
		*Table
		Source string
		Bits   []bitband.Bit
		Regs   []Reg
	}{
		Table:  t,
		Source: source,
		Bits:   t.Bits(),
		Regs:   t.Regs(),
	}

	if err := bindings.Execute(&buf, data); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())

	if err != nil {
		return nil, fmt.Errorf("could not format bindings, %v", err)
	}

	return src, nil
}
