// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pec calculates the System Management Bus (SMBus) Packet Error
// Code.
//
// SMBus 1.1 and later defines an optional Packet Error Checking mode. When
// it is enabled, every transmission carries one extra trailing byte, the
// PEC, calculated over the whole message including the address and
// read/write bit of each address byte on the wire.
//
// The PEC is a CRC-8 with the polynomial x^8 + x^2 + x + 1 (0x07),
// initialized to zero, which is the same function as CRC-8-ATM HEC.
//
// # Backends
//
// Two calculators produce identical results. Bitwise shifts one bit at a
// time and needs no memory. Lookup uses a 256 byte table generated by
// "go generate" from MakeTable. Checksum and Digest use the table unless
// the package is built with the pec_bitwise tag, which is useful where
// flash is tighter than cycles.
//
// # Writing a register
//
//	const addr = 0x5A
//	msg := []byte{addr << 1, 0x06, 0xAB}
//	err := dev.Tx([]byte{0x06, 0xAB, pec.Checksum(msg)}, nil)
//
// # Reading a register
//
// The PEC of a write-read covers both address bytes. The host appends the
// read address with the read bit set before the returned bytes.
//
//	r := make([]byte, 2)
//	err := dev.Tx([]byte{0x06}, r)
//	if !pec.Valid([]byte{addr << 1, 0x06, addr<<1 | 1, r[0], r[1]}) {
//		// PEC mismatch.
//	}
//
// # References
//
// https://en.wikipedia.org/wiki/System_Management_Bus#Packet_Error_Checking
//
// https://en.wikipedia.org/wiki/CRC-8
package pec
