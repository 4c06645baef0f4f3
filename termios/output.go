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

// OutputFlag names one bit of the output flag word.
type OutputFlag uint8

// Output Flags
const (
	OCRNL  OutputFlag = iota // map CR to NL on output
	ONLCR                    // map NL to CR-NL (ala CRMOD)
	ONLRET                   // NL performs CR function
	ONOCR                    // no CR output at column 0
	OPOST                    // enable following output processing
)

func (f OutputFlag) mask() tcflag { return outputMasks[f] }

func (f OutputFlag) String() string { return enumName("OutputFlag", int(f), outputNames[:]) }

// OutputFlags is the output flag word.
type OutputFlags tcflag

// Set turns on every flag in flags.
func (w *OutputFlags) Set(flags ...OutputFlag) {
	for _, f := range flags {
		*w |= OutputFlags(f.mask())
	}
}

// Clear turns off every flag in flags.
func (w *OutputFlags) Clear(flags ...OutputFlag) {
	for _, f := range flags {
		*w &^= OutputFlags(f.mask())
	}
}

// Contains reports whether f is set.
func (w OutputFlags) Contains(f OutputFlag) bool {
	m := OutputFlags(f.mask())
	return w&m == m
}

func (w OutputFlags) String() string {
	return joinFlags(tcflag(w), outputMasks[:], outputNames[:])
}
