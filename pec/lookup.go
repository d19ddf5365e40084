// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pec

//go:generate go run gen.go -o table.go

// Table holds the next register value for each possible value of the
// register XORed with the incoming byte.
type Table [256]byte

// MakeTable builds the lookup table from Poly. Entry i is the PEC of the
// single byte message {i}.
//
// The table used by Lookup is generated with this function at build time
// and lives in table.go.
func MakeTable() *Table {
	t := new(Table)
	for i := range t {
		t[i] = updateBitwise(0, []byte{byte(i)})
	}
	return t
}

// Lookup calculates the PEC of data with one table lookup per byte.
func Lookup(data []byte) byte {
	return updateLookup(0, data)
}

func updateLookup(crc byte, data []byte) byte {
	for _, val := range data {
		crc = crcTable[crc^val]
	}
	return crc
}
