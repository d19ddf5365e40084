// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package smbus is a container for System Management Bus helpers.
//
// See package pec for the Packet Error Code used by SMBus 1.1 and later.
package smbus
