// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package gateway

// defined in svc_arm.s
func svc(addr uint32, val uint32)

// SVC requests mediated writes with a supervisor call (`svc #0`), passing the
// alias (or 32-bit register) address in r0 and the value in r1. SVC does not
// implement Reader, reads through a gateway using it yield zero.
//
// The supervisor call handler must be installed before any SVC write takes
// place.
type SVC struct{}

// Write implements Writer.
func (SVC) Write(addr uint32, val uint32) {
	svc(addr, val)
}
