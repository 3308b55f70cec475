// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package gateway

import (
	"sync/atomic"
	"unsafe"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

// Memory performs direct accesses to the physical alias and peripheral
// regions, it must only be used in execution contexts which are granted
// access to them.
type Memory struct{}

// Write implements Writer.
//
// Stores are always 32-bit wide, the alias region decodes only the least
// significant bit of each word regardless of the access size.
func (Memory) Write(addr uint32, val uint32) {
	ptr := (*uint32)(unsafe.Pointer(uintptr(addr)))
	atomic.StoreUint32(ptr, val)
}

// Read implements Reader, loads are w-wide as peripheral registers might
// have side effects on reads of adjacent registers.
func (Memory) Read(addr uint32, w bitband.Width) uint32 {
	switch w {
	case bitband.Width8:
		return uint32(*(*uint8)(unsafe.Pointer(uintptr(addr))))
	case bitband.Width16:
		return uint32(*(*uint16)(unsafe.Pointer(uintptr(addr))))
	default:
		return atomic.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr))))
	}
}
