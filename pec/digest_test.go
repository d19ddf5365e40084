// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pec

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestDigestFresh(t *testing.T) {
	d := New()
	if d.Sum8() != 0 {
		t.Errorf("fresh digest returned 0x%02x", d.Sum8())
	}
	if d.Size() != 1 || d.BlockSize() != 1 {
		t.Errorf("Size()=%d BlockSize()=%d", d.Size(), d.BlockSize())
	}
	var zero Digest
	if zero.Sum8() != 0 {
		t.Errorf("zero value digest returned 0x%02x", zero.Sum8())
	}
}

func TestDigestSplitWrite(t *testing.T) {
	d := New()
	if n, err := d.Write([]byte{0xb4}); n != 1 || err != nil {
		t.Fatalf("Write returned %d, %v", n, err)
	}
	if n, err := d.Write([]byte{0x06, 0xab, 0xcd}); n != 3 || err != nil {
		t.Fatalf("Write returned %d, %v", n, err)
	}
	if res := d.Sum8(); res != 95 {
		t.Errorf("Sum8()=%d expected 95", res)
	}
}

func TestDigestVectors(t *testing.T) {
	for _, test := range vectors {
		d := New()
		_, _ = d.Write(test.bytes)
		if res := d.Sum8(); res != test.result {
			t.Errorf("Digest(%#v)!=%d received %d", test.bytes, test.result, res)
		}
	}
}

// Every way of cutting msg into consecutive chunks must give the same PEC.
func TestDigestAllPartitions(t *testing.T) {
	msg := []byte{0xb4, 0x06, 0xb5, 38, 58, 0x00, 0xff, 0x80}
	expected := Checksum(msg)
	// Bit i of cuts set means a chunk ends after msg[i].
	for cuts := range 1 << (len(msg) - 1) {
		d := New()
		start := 0
		for i := range msg {
			if i == len(msg)-1 || cuts&(1<<i) != 0 {
				_, _ = d.Write(msg[start : i+1])
				start = i + 1
			}
		}
		if res := d.Sum8(); res != expected {
			t.Fatalf("cuts=%08b: Sum8()=0x%02x expected 0x%02x", cuts, res, expected)
		}
	}
}

func TestDigestRandomChunks(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for range trials {
		buf := make([]byte, rng.Intn(256))
		rng.Read(buf)
		d := New()
		for rest := buf; ; {
			n := rng.Intn(len(rest) + 1)
			_, _ = d.Write(rest[:n])
			rest = rest[n:]
			if len(rest) == 0 {
				break
			}
		}
		if res, expected := d.Sum8(), Checksum(buf); res != expected {
			t.Fatalf("chunked %x: Sum8()=0x%02x expected 0x%02x", buf, res, expected)
		}
	}
}

func TestDigestWriteByte(t *testing.T) {
	d := New()
	for _, b := range []byte{0xb4, 0x06, 0xb5, 38, 58} {
		if err := d.WriteByte(b); err != nil {
			t.Fatal(err)
		}
	}
	if res := d.Sum8(); res != 102 {
		t.Errorf("Sum8()=%d expected 102", res)
	}
}

func TestDigestFinalizeIsRepeatable(t *testing.T) {
	d := New()
	_, _ = d.Write([]byte{0xb4, 0x06, 0xab, 0xcd})
	first := d.Sum8()
	if second := d.Sum8(); first != second {
		t.Errorf("Sum8 returned %d then %d", first, second)
	}
	if s := d.Sum64(); s != uint64(first) || s>>8 != 0 {
		t.Errorf("Sum64()=0x%x expected 0x%x", s, first)
	}
	prefix := []byte{0xde, 0xad}
	if s := d.Sum(prefix); !bytes.Equal(s, []byte{0xde, 0xad, first}) {
		t.Errorf("Sum()=%x", s)
	}
	if d.Sum8() != first {
		t.Errorf("Sum changed the register to 0x%02x", d.Sum8())
	}

	// Writing more continues the same message.
	_, _ = d.Write([]byte{first})
	if d.Sum8() != 0 {
		t.Errorf("message followed by its PEC left 0x%02x", d.Sum8())
	}
}

func TestDigestReset(t *testing.T) {
	d := New()
	_, _ = d.Write([]byte{0xb4, 0x06})
	d.Reset()
	_, _ = d.Write([]byte{0xb4, 0x06, 0xab, 0xcd})
	if res := d.Sum8(); res != 95 {
		t.Errorf("Sum8() after Reset=%d expected 95", res)
	}
}
