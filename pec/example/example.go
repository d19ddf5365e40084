// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// example prints the PEC of a register write and a register read. With
// -bus it reads a register from a live device and checks the PEC the
// device returns.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/smbus/pec"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

const (
	defaultAddress  = 0x5a
	defaultRegister = 0x06
)

// verdict formats the PEC check, in colour when stdout is a terminal.
type verdict struct {
	color bool
}

func (v verdict) format(ok bool) string {
	switch {
	case !v.color && ok:
		return "OK"
	case !v.color:
		return "MISMATCH"
	case ok:
		return "\x1b[32mOK\x1b[0m"
	default:
		return "\x1b[31mMISMATCH\x1b[0m"
	}
}

// readRegister reads n data bytes plus the PEC from reg. It returns the
// data, the received PEC and the expected PEC.
func readRegister(d *i2c.Dev, reg byte, n int) ([]byte, byte, byte, error) {
	r := make([]byte, n+1)
	if err := d.Tx([]byte{reg}, r); err != nil {
		return nil, 0, 0, fmt.Errorf("example: error reading register 0x%02x %w", reg, err)
	}
	addr := byte(d.Addr << 1)
	h := pec.New()
	_, _ = h.Write([]byte{addr, reg, addr | 1})
	_, _ = h.Write(r[:n])
	return r[:n], r[n], h.Sum8(), nil
}

func live(w io.Writer, v verdict, name string, addr uint, reg uint, size, count int) error {
	if _, err := host.Init(); err != nil {
		return err
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return err
	}
	defer bus.Close()

	d := &i2c.Dev{Bus: bus, Addr: uint16(addr)}
	for i := range count {
		if i > 0 {
			time.Sleep(time.Second)
		}
		data, got, want, err := readRegister(d, byte(reg), size)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s 0x%02x: % x pec=0x%02x expected=0x%02x %s\n", d, reg, data, got, want, v.format(got == want))
	}
	return nil
}

func main() {
	busName := flag.String("bus", "", "I²C bus to read from; when empty only the offline PECs are printed")
	addr := flag.Uint("addr", defaultAddress, "7 bit device address")
	reg := flag.Uint("reg", defaultRegister, "register to read")
	size := flag.Int("size", 2, "data bytes in the register")
	count := flag.Int("n", 1, "number of reads")
	flag.Parse()

	if *addr > 0x7f || *reg > 0xff || *size < 0 {
		log.Fatal("example: address, register or size out of range")
	}

	a := byte(defaultAddress << 1)
	fmt.Printf("PEC: %d\n", pec.Checksum([]byte{a, defaultRegister, 0xab, 0xcd}))
	fmt.Printf("PEC: %d\n", pec.Checksum([]byte{a, defaultRegister, a | 1, 38, 58}))

	if *busName == "" {
		return
	}
	v := verdict{color: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())}
	if err := live(colorable.NewColorableStdout(), v, *busName, *addr, *reg, *size, *count); err != nil {
		log.Fatal(err)
	}
}
