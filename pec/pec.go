// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pec

const (
	// Poly is the register form of x^8 + x^2 + x + 1. The x^8 term is
	// implied by the width of the register.
	Poly byte = 0x07
	// Size is the size of a PEC in bytes.
	Size = 1
	// BlockSize is the preferred block size of a Digest.
	BlockSize = 1
)

// Checksum returns the Packet Error Code of data, which must be the
// complete message as seen on the bus, address bytes included.
//
// An empty message returns 0.
func Checksum(data []byte) byte {
	return update(0, data)
}

// Update returns the result of adding the bytes in data to the PEC crc.
func Update(crc byte, data []byte) byte {
	return update(crc, data)
}

// Valid reports whether the last byte of msg is the PEC of the bytes
// before it.
//
// Running the CRC over a message followed by its own PEC always leaves the
// register at zero.
func Valid(msg []byte) bool {
	if len(msg) == 0 {
		return false
	}
	return update(0, msg) == 0
}
