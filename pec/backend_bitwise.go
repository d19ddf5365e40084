// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build pec_bitwise

package pec

// LookupTable is true when Checksum and Digest use the lookup table.
const LookupTable = false

func update(crc byte, data []byte) byte {
	return updateBitwise(crc, data)
}
