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

// InputFlag names one bit of the input flag word.  Members beyond PARMRK are
// platform specific.
type InputFlag uint8

// Input Flags
const (
	BRKINT  InputFlag = iota // map BREAK to SIGINTR
	ICRNL                    // map CR to NL (ala CRMOD)
	IGNBRK                   // ignore BREAK condition
	IGNCR                    // ignore CR
	IGNPAR                   // ignore (discard) parity errors
	IMAXBEL                  // ring bell on input queue full
	INLCR                    // map NL into CR
	INPCK                    // enable checking of parity errors
	ISTRIP                   // strip 8th bit off chars
	IXANY                    // any char will restart after stop
	IXOFF                    // enable input flow control
	IXON                     // enable output flow control
	PARMRK                   // mark parity and framing errors
)

func (f InputFlag) mask() tcflag { return inputMasks[f] }

func (f InputFlag) String() string { return enumName("InputFlag", int(f), inputNames[:]) }

// InputFlags is the input flag word, which controls how the terminal
// driver processes received bytes.
type InputFlags tcflag

// Set turns on every flag in flags.
func (w *InputFlags) Set(flags ...InputFlag) {
	for _, f := range flags {
		*w |= InputFlags(f.mask())
	}
}

// Clear turns off every flag in flags.
func (w *InputFlags) Clear(flags ...InputFlag) {
	for _, f := range flags {
		*w &^= InputFlags(f.mask())
	}
}

// Contains reports whether f is set.
func (w InputFlags) Contains(f InputFlag) bool {
	m := InputFlags(f.mask())
	return w&m == m
}

func (w InputFlags) String() string {
	return joinFlags(tcflag(w), inputMasks[:], inputNames[:])
}
