// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm
// +build tamago,arm

package mem

import (
	"github.com/usbarmory/tamago/dma"
)

const (
	// Secure Monitor
	SecureStart = 0x90000000
	SecureSize  = 0x05f00000 // 95MB

	// Secure Monitor DMA (relocated to avoid conflicts with Main OS)
	SecureDMAStart = 0x95f00000
	SecureDMASize  = 0x00100000 // 1MB

	// Secure Monitor Applet
	AppletStart = 0x96000000
	AppletSize  = 0x02000000 // 32MB
)

// AppletRegion is the memory region reserved to the trusted applet, which
// drives peripheral configuration through mediated bit-band writes.
var AppletRegion *dma.Region

// Init reserves the applet memory region.
func Init() (err error) {
	if AppletRegion, err = dma.NewRegion(AppletStart, AppletSize, false); err != nil {
		return
	}

	AppletRegion.Reserve(AppletSize, 0)

	return
}
