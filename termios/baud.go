//go:build linux || darwin

// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package termios

import (
	"errors"
	"fmt"
)

// BaudRate is one of the standard line speeds.  Members beyond B230400 are
// platform specific.
type BaudRate uint8

// Standard speeds
const (
	B0 BaudRate = iota // hang up
	B50
	B75
	B110
	B134
	B150
	B200
	B300
	B600
	B1200
	B1800
	B2400
	B4800
	B9600
	B19200
	B38400
	B57600
	B115200
	B230400
)

// ErrUnknownBaudRate is returned by ParseBaudRate for a rate with no
// standard speed.
var ErrUnknownBaudRate = errors.New("termios: unknown baud rate")

func (r BaudRate) String() string {
	if r >= numBaudRates {
		return fmt.Sprintf("BaudRate(%d)", uint8(r))
	}
	return fmt.Sprintf("B%d", baudBits[r])
}

// Bits returns the rate in bits per second.
func (r BaudRate) Bits() int {
	return baudBits[r.check()]
}

// ParseBaudRate returns the standard speed of bps bits per second.
func ParseBaudRate(bps int) (BaudRate, error) {
	for r, b := range baudBits {
		if b == bps {
			return BaudRate(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownBaudRate, bps)
}

func (r BaudRate) check() BaudRate {
	if r >= numBaudRates {
		// A BaudRate is only built from the constants above.
		panic(fmt.Sprintf("termios: invalid baud rate %d", uint8(r)))
	}
	return r
}

// raw returns the platform speed code of r.
func (r BaudRate) raw() speed {
	return baudCodes[r.check()]
}

// baudFromRaw returns the rate with the platform speed code code.  An
// unknown code means the kernel and this package disagree about the
// platform constants, which cannot be recovered from.
func baudFromRaw(code speed) BaudRate {
	for r, c := range baudCodes {
		if c == code {
			return BaudRate(r)
		}
	}
	panic(fmt.Sprintf("termios: unknown baud rate code %#x", code))
}
