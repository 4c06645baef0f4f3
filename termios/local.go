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

// LocalFlag names one bit of the local flag word.
type LocalFlag uint8

// Local flags
const (
	ECHOCTL LocalFlag = iota // echo control chars as ^(Char)
	ECHOE                    // visually erase chars
	ECHOKE                   // visual erase for line kill
	ECHOK                    // echo NL after line kill
	ECHONL                   // echo NL even if ECHO is off
	ECHOPRT                  // visual erase mode for hardcopy
	ECHO                     // enable echoing
	EXTPROC                  // external processing
	FLUSHO                   // output being flushed (state)
	ICANON                   // canonicalize input lines
	IEXTEN                   // enable DISCARD and LNEXT
	ISIG                     // enable signals INTR, QUIT, [D]SUSP
	NOFLSH                   // don't flush after interrupt
	PENDIN                   // retype pending input (state)
	TOSTOP                   // stop background jobs from output
)

func (f LocalFlag) mask() tcflag { return localMasks[f] }

func (f LocalFlag) String() string { return enumName("LocalFlag", int(f), localNames[:]) }

// LocalFlags is the local flag word.  It holds the line discipline
// switches: canonical mode, echo and signal generation.
type LocalFlags tcflag

// Set turns on every flag in flags.
func (w *LocalFlags) Set(flags ...LocalFlag) {
	for _, f := range flags {
		*w |= LocalFlags(f.mask())
	}
}

// Clear turns off every flag in flags.
func (w *LocalFlags) Clear(flags ...LocalFlag) {
	for _, f := range flags {
		*w &^= LocalFlags(f.mask())
	}
}

// Contains reports whether f is set.
func (w LocalFlags) Contains(f LocalFlag) bool {
	m := LocalFlags(f.mask())
	return w&m == m
}

func (w LocalFlags) String() string {
	return joinFlags(tcflag(w), localMasks[:], localNames[:])
}
