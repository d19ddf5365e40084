// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pec

import (
	"hash"
	"io"
)

// Digest accumulates a PEC over a message that arrives in pieces, for
// example the write and read phases of a bus transaction.
//
// Feeding a message in any number of chunks gives the same PEC as Checksum
// on the whole message. Reading the PEC never resets the register, so a new
// message needs a new Digest (or an explicit Reset).
//
// A Digest must not be written from more than one goroutine at a time.
type Digest struct {
	crc byte
}

var (
	_ hash.Hash64   = (*Digest)(nil)
	_ io.ByteWriter = (*Digest)(nil)
)

// New returns a Digest with the register at zero.
func New() *Digest {
	return &Digest{}
}

// Write adds p to the running PEC. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.crc = update(d.crc, p)
	return len(p), nil
}

// WriteByte adds a single byte, typically an address byte, to the running
// PEC. It never fails.
func (d *Digest) WriteByte(c byte) error {
	d.crc = update(d.crc, []byte{c})
	return nil
}

// Sum8 returns the PEC of everything written so far.
func (d *Digest) Sum8() byte {
	return d.crc
}

// Sum64 returns Sum8 zero-extended to 64 bits. Implements hash.Hash64.
func (d *Digest) Sum64() uint64 {
	return uint64(d.crc)
}

// Sum appends the PEC to b. It does not change the state of d.
func (d *Digest) Sum(b []byte) []byte {
	return append(b, d.crc)
}

// Reset sets the register back to zero.
func (d *Digest) Reset() {
	d.crc = 0
}

// Size returns Size.
func (d *Digest) Size() int { return Size }

// BlockSize returns BlockSize.
func (d *Digest) BlockSize() int { return BlockSize }
