// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mediator

import (
	"github.com/usbarmory/GoTEE-bitband/bitband"
	"github.com/usbarmory/GoTEE-bitband/util"
)

// RPC represents the receiver for user mode <--> system RPC bit-band
// requests over system calls.
type RPC struct {
	Mediator *Mediator
}

// Bitband receives a mediated write request, rejections are not reported
// to the caller.
func (r *RPC) Bitband(req util.BitbandRequest, _ *bool) error {
	r.Mediator.Write(req.Addr, req.Val)
	return nil
}

// Read receives a mediated read request.
func (r *RPC) Read(req util.ReadRequest, val *uint32) error {
	*val = r.Mediator.Read(req.Addr, bitband.Width(req.Width))
	return nil
}

// Mode returns the isolation mode.
func (r *RPC) Mode(_ bool, active *bool) error {
	*active = r.Mediator.Active()
	return nil
}
