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
	"fmt"
	"strings"
)

// ControlFlag names one bit of the control flag word.  The character size
// field is not a ControlFlag; see CharSize.
type ControlFlag uint8

// Control Flags
const (
	CLOCAL  ControlFlag = iota // ignore modem status lines
	CREAD                      // enable receiver
	CRTSCTS                    // RTS/CTS full-duplex flow control
	CSTOPB                     // send 2 stop bits
	HUPCL                      // hang up on last close
	PARENB                     // parity enable
	PARODD                     // odd parity, else even
)

func (f ControlFlag) mask() tcflag { return controlMasks[f] }

func (f ControlFlag) String() string { return enumName("ControlFlag", int(f), controlNames[:]) }

// CharSize is the number of data bits per character.  Exactly one size is
// selected in a control word at all times.
type CharSize uint8

const (
	CS5 CharSize = iota // 5 bits
	CS6                 // 6 bits
	CS7                 // 7 bits
	CS8                 // 8 bits
)

var charSizeNames = [...]string{CS5: "CS5", CS6: "CS6", CS7: "CS7", CS8: "CS8"}

func (s CharSize) String() string { return enumName("CharSize", int(s), charSizeNames[:]) }

// Bits returns the number of data bits, 5 through 8.
func (s CharSize) Bits() int { return 5 + int(s) }

func (s CharSize) mask() tcflag {
	if s > CS8 {
		panic(fmt.Sprintf("termios: invalid character size %d", uint8(s)))
	}
	return charSizeMasks[s]
}

// ControlFlags is the control flag word, which describes the hardware line:
// character size, parity, stop bits and modem control.
type ControlFlags tcflag

// Set turns on every flag in flags.
func (w *ControlFlags) Set(flags ...ControlFlag) {
	for _, f := range flags {
		*w |= ControlFlags(f.mask())
	}
}

// Clear turns off every flag in flags.
func (w *ControlFlags) Clear(flags ...ControlFlag) {
	for _, f := range flags {
		*w &^= ControlFlags(f.mask())
	}
}

// Contains reports whether f is set.
func (w ControlFlags) Contains(f ControlFlag) bool {
	m := ControlFlags(f.mask())
	return w&m == m
}

// SetCharSize selects the character size.  The whole size field is cleared
// first, so no bits of the previous size remain.
func (w *ControlFlags) SetCharSize(s CharSize) {
	m := s.mask()
	*w &^= ControlFlags(charSizeField)
	*w |= ControlFlags(m)
}

// CharSize returns the selected character size.
func (w ControlFlags) CharSize() CharSize {
	v := tcflag(w) & charSizeField
	for s, m := range charSizeMasks {
		if v == m {
			return CharSize(s)
		}
	}
	// The four sizes cover every value of the two-bit field.
	panic(fmt.Sprintf("termios: unknown character size field %#x", v))
}

func (w ControlFlags) String() string {
	names := []string{w.CharSize().String()}
	names = appendFlags(names, tcflag(w), controlMasks[:], controlNames[:])
	return strings.Join(names, flagSep)
}
