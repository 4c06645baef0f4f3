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

	"golang.org/x/sys/unix"
)

// Char names a special control character role.  Members beyond VWERASE are
// platform specific.
type Char uint8

// Control Character Indices
const (
	VDISCARD Char = iota // IEXTEN
	VEOF                 // ICANON
	VEOL                 // ICANON
	VEOL2                // ICANON together with IEXTEN
	VERASE               // ICANON
	VINTR                // ISIG
	VKILL                // ICANON
	VLNEXT               // IEXTEN
	VMIN                 // !ICANON
	VQUIT                // ISIG
	VREPRINT             // ICANON together with IEXTEN
	VSTART               // IXON, IXOFF
	VSTOP                // IXON, IXOFF
	VSUSP                // ISIG
	VTIME                // !ICANON
	VWERASE              // ICANON together with IEXTEN
)

func (c Char) String() string { return enumName("Char", int(c), charNames[:]) }

// NCC is the length of the control character array.
const NCC = len(unix.Termios{}.Cc)

// Chars is the control character array.  Slots are addressed by role, not
// by position; positions differ between platforms.
type Chars [NCC]uint8

// Get returns the character assigned to c.
func (cc *Chars) Get(c Char) uint8 {
	return cc[charIndex[c]]
}

// Set assigns v to c.
func (cc *Chars) Set(c Char, v uint8) {
	cc[charIndex[c]] = v
}

// Disable turns off c by assigning it the platform's disabling value.
func (cc *Chars) Disable(c Char) {
	cc.Set(c, vDisable)
}

// Disabled reports whether c holds the disabling value.  VMIN and VTIME are
// counts, not characters, so for them the result has no meaning.
func (cc *Chars) Disabled(c Char) bool {
	return cc.Get(c) == vDisable
}

func (cc Chars) String() string {
	var parts []string
	for c := Char(0); c < numChars; c++ {
		parts = append(parts, fmt.Sprintf("%v: %d", c, cc.Get(c)))
	}
	return strings.Join(parts, ", ")
}
