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
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

/*
Cooked:
Input   = 0x00002B02
Output  = 0x00000003
Control = 0x00004B00
Local   = 0x200005CB
*/
func populatedRaw() unix.Termios {
	raw := unix.Termios{
		Iflag:  0x00002b02,
		Oflag:  0x00000003,
		Cflag:  0x00004b00,
		Lflag:  0x200005cb,
		Ispeed: 38400,
		Ospeed: 9600,
	}
	for i := range raw.Cc {
		raw.Cc[i] = uint8(0x10 + i)
	}
	return raw
}

func TestCookedFlags(t *testing.T) {
	raw := populatedRaw()
	tio := FromRaw(&raw)
	assert.True(t, tio.Iflag.Contains(ICRNL))
	assert.True(t, tio.Iflag.Contains(IXON))
	assert.True(t, tio.Oflag.Contains(OPOST))
	assert.True(t, tio.Oflag.Contains(ONLCR))
	assert.Equal(t, CS8, tio.Cflag.CharSize())
	assert.True(t, tio.Lflag.Contains(ICANON))
	assert.True(t, tio.Lflag.Contains(ECHO))
	assert.Equal(t, B38400, tio.InputSpeed())
	assert.Equal(t, B9600, tio.OutputSpeed())
}

func TestSpeedFields(t *testing.T) {
	var tio Termios
	tio.SetInputSpeed(B14400)
	tio.SetOutputSpeed(B76800)
	raw := tio.Raw()
	assert.Equal(t, uint64(14400), raw.Ispeed)
	assert.Equal(t, uint64(76800), raw.Ospeed)
	assert.Zero(t, raw.Cflag)
}

func TestFlowControlFlags(t *testing.T) {
	var c ControlFlags
	c.Set(CCTS_OFLOW, CRTS_IFLOW)
	assert.Equal(t, tcflag(0x00030000), tcflag(c))
	assert.True(t, c.Contains(CRTSCTS))
	assert.Equal(t, "CS5 | CRTSCTS | CCTS_OFLOW | CRTS_IFLOW", c.String())

	c = 0
	c.Set(CDTR_IFLOW, CDSR_OFLOW, CCAR_OFLOW)
	assert.Equal(t, tcflag(0x001c0000), tcflag(c))
	assert.False(t, c.Contains(CRTSCTS))
}
