// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm
// +build tamago,arm

package main

import (
	"github.com/usbarmory/tamago/soc/nxp/csu"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
)

// configureTrustZone restricts pin multiplexing and GPIO control to the
// security monitor, leaving peripheral configuration requests to go through
// mediation.
func configureTrustZone() (err error) {
	// restrict access to IOMUXC (pin multiplexing)
	if err = imx6ul.CSU.SetSecurityLevel(6, 1, csu.SEC_LEVEL_4, false); err != nil {
		return
	}

	// restrict access to GPIO4
	if err = imx6ul.CSU.SetSecurityLevel(2, 1, csu.SEC_LEVEL_4, false); err != nil {
		return
	}

	// restrict access to TZASC
	return imx6ul.CSU.SetSecurityLevel(16, 1, csu.SEC_LEVEL_4, false)
}
