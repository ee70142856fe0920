// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import "fmt"

// DTheta compresses a signed theta difference into a 2- or 3-bit code.
//
// With 2 bits, the code is 2 for |dtheta|<=1, 1 for |dtheta|==2,
// 0 for dtheta<=-3 and 3 for dtheta>=+3.
// With 3 bits, the code goes from 0 (dtheta<=-4) to 7 (dtheta>=+3).
func DTheta(dtheta, bits int) int {
	switch bits {
	case 2:
		switch {
		case abs(dtheta) <= 1:
			return 2
		case abs(dtheta) <= 2:
			return 1
		case dtheta <= -3:
			return 0
		default:
			return 3
		}
	case 3:
		switch {
		case dtheta <= -4:
			return 0
		case dtheta >= +3:
			return 7
		default:
			return dtheta + 4
		}
	}
	panic(fmt.Errorf("lut: invalid dTheta bit-width %d", bits))
}
