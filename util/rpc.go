// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

// BitbandRequest represents an RPC mediated write request.
type BitbandRequest struct {
	// Addr is the bit-band alias address, or the 32-bit peripheral
	// register address for whole register writes
	Addr uint32
	// Val is the value to store, only its least significant bit is
	// meaningful for alias addresses
	Val uint32
}

// ReadRequest represents an RPC mediated read request.
type ReadRequest struct {
	// Addr is the bit-band alias or peripheral register address
	Addr uint32
	// Width is the register access width in bits
	Width int
}
