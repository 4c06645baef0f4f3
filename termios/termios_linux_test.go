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
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func populatedRaw() unix.Termios {
	raw := unix.Termios{
		Iflag:  0x00002b02,
		Oflag:  0x00000005,
		Cflag:  0x800f04bf,
		Lflag:  0x00008a3b,
		Line:   0x5a,
		Ispeed: 0x0000100f,
		Ospeed: 0x0000000d,
	}
	for i := range raw.Cc {
		raw.Cc[i] = uint8(0x10 + i)
	}
	return raw
}

func TestLineDisciplinePreserved(t *testing.T) {
	raw := populatedRaw()
	tio := FromRaw(&raw)
	tio.MakeRaw()
	tio.SetSpeed(B9600)
	assert.Equal(t, raw.Line, tio.Raw().Line)
}

func TestSpeedEncoding(t *testing.T) {
	var tio Termios
	tio.SetOutputSpeed(B9600)
	raw := tio.Raw()
	assert.Equal(t, uint32(unix.B9600), raw.Cflag&unix.CBAUD)
	assert.Equal(t, uint32(unix.B9600), raw.Ospeed)

	// An input field of B0 follows the output speed.
	assert.Equal(t, B9600, tio.InputSpeed())

	tio.SetInputSpeed(B2400)
	raw = tio.Raw()
	assert.Equal(t, uint32(unix.B2400), raw.Cflag>>ibshift&unix.CBAUD)
	assert.Equal(t, uint32(unix.B9600), raw.Cflag&unix.CBAUD)
	assert.Equal(t, uint32(unix.B2400), raw.Ispeed)
	assert.Equal(t, B2400, tio.InputSpeed())

	tio.SetInputSpeed(B0)
	assert.Equal(t, B9600, tio.InputSpeed())
}

func TestSpeedLeavesFlags(t *testing.T) {
	var tio Termios
	tio.Cflag.Set(CLOCAL, CREAD, CRTSCTS, CMSPAR, HUPCL)
	tio.Cflag.SetCharSize(CS7)
	before := tio.Cflag.String()
	tio.SetSpeed(B4000000)
	tio.SetInputSpeed(B57600)
	assert.Equal(t, before, tio.Cflag.String())
	assert.Equal(t, CS7, tio.Cflag.CharSize())
}

func TestLineLayout(t *testing.T) {
	if !layoutMirrored() {
		t.Skipf("raw record field order differs on %s", runtime.GOARCH)
	}
	var (
		tio Termios
		raw unix.Termios
	)
	assert.Equal(t, unsafe.Offsetof(raw.Line), unsafe.Offsetof(tio.line))
}
