// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mediator

import (
	"sync"

	"github.com/usbarmory/GoTEE-bitband/bitband"
)

// Policy represents a security monitor isolation policy over bit-band
// writes.
type Policy interface {
	// Allow reports whether the write of val to bit `bit` of the 32-bit
	// register at reg is legitimate.
	Allow(reg uint32, bit int, val uint32) bool
}

// PolicyFunc adapts an ordinary function to the Policy interface.
type PolicyFunc func(reg uint32, bit int, val uint32) bool

// Allow calls f(reg, bit, val).
func (f PolicyFunc) Allow(reg uint32, bit int, val uint32) bool {
	return f(reg, bit, val)
}

// DenyAll rejects every write.
var DenyAll = PolicyFunc(func(uint32, int, uint32) bool { return false })

type location struct {
	reg uint32
	bit int
}

// AllowList is a Policy granting writes only to an explicit set of register
// bits, safe for concurrent use.
type AllowList struct {
	sync.RWMutex

	bits map[location]bool
}

// NewAllowList returns an empty allow list.
func NewAllowList() *AllowList {
	return &AllowList{
		bits: make(map[location]bool),
	}
}

// Add grants writes to the binding table bits of the peripheral instance
// located at base.
func (a *AllowList) Add(base uint32, table []bitband.Bit) {
	a.Lock()
	defer a.Unlock()

	for _, b := range table {
		if reg, bit, ok := bitband.Decode(b.Address(base)); ok {
			a.bits[location{reg, bit}] = true
		}
	}
}

// Remove revokes writes to a single register bit, identified by its
// containing 32-bit register and bit position.
func (a *AllowList) Remove(reg uint32, bit int) {
	a.Lock()
	defer a.Unlock()

	delete(a.bits, location{reg, bit})
}

// Allow implements Policy.
func (a *AllowList) Allow(reg uint32, bit int, _ uint32) bool {
	a.RLock()
	defer a.RUnlock()

	return a.bits[location{reg, bit}]
}
