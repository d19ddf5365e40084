// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pec

// Bitwise calculates the PEC of data one bit at a time. It is slower than
// Lookup and uses no table.
func Bitwise(data []byte) byte {
	return updateBitwise(0, data)
}

func updateBitwise(crc byte, data []byte) byte {
	for _, val := range data {
		crc ^= val
		for range 8 {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (crc << 1) ^ Poly
			}
		}
	}
	return crc
}
