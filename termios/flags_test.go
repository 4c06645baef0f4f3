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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFlags(t *testing.T) {
	for f := InputFlag(0); f < numInputFlags; f++ {
		var w InputFlags
		w.Set(f)
		assert.True(t, w.Contains(f), "set %v", f)
		once := w
		w.Set(f)
		assert.Equal(t, once, w, "set twice %v", f)
		w.Clear(f)
		assert.False(t, w.Contains(f), "clear %v", f)
		w.Clear(f)
		assert.Zero(t, w, "clear twice %v", f)
	}
}

func TestOutputFlags(t *testing.T) {
	for f := OutputFlag(0); f < numOutputFlags; f++ {
		var w OutputFlags
		w.Set(f)
		assert.True(t, w.Contains(f), "set %v", f)
		once := w
		w.Set(f)
		assert.Equal(t, once, w, "set twice %v", f)
		w.Clear(f)
		assert.False(t, w.Contains(f), "clear %v", f)
		w.Clear(f)
		assert.Zero(t, w, "clear twice %v", f)
	}
}

func TestControlFlags(t *testing.T) {
	for f := ControlFlag(0); f < numControlFlags; f++ {
		var w ControlFlags
		w.Set(f)
		assert.True(t, w.Contains(f), "set %v", f)
		once := w
		w.Set(f)
		assert.Equal(t, once, w, "set twice %v", f)
		w.Clear(f)
		assert.False(t, w.Contains(f), "clear %v", f)
		w.Clear(f)
		assert.Zero(t, w, "clear twice %v", f)
	}
}

func TestLocalFlags(t *testing.T) {
	for f := LocalFlag(0); f < numLocalFlags; f++ {
		var w LocalFlags
		w.Set(f)
		assert.True(t, w.Contains(f), "set %v", f)
		once := w
		w.Set(f)
		assert.Equal(t, once, w, "set twice %v", f)
		w.Clear(f)
		assert.False(t, w.Contains(f), "clear %v", f)
		w.Clear(f)
		assert.Zero(t, w, "clear twice %v", f)
	}
}

func TestFlagTables(t *testing.T) {
	check := func(group string, masks []tcflag, names []string) {
		seen := map[string]bool{}
		for i, m := range masks {
			assert.NotZero(t, m, "%s mask %d", group, i)
			assert.NotEmpty(t, names[i], "%s name %d", group, i)
			assert.False(t, seen[names[i]], "%s duplicate name %q", group, names[i])
			seen[names[i]] = true
		}
	}
	check("input", inputMasks[:], inputNames[:])
	check("output", outputMasks[:], outputNames[:])
	check("control", controlMasks[:], controlNames[:])
	check("local", localMasks[:], localNames[:])

	// The character size field is only reachable through SetCharSize.
	for i, m := range controlMasks {
		assert.Zero(t, m&charSizeField, "%s overlaps CSIZE", controlNames[i])
	}
}

func TestBatchSetClear(t *testing.T) {
	var w LocalFlags
	w.Set(ECHO, ICANON, ISIG)
	for _, f := range []LocalFlag{ECHO, ICANON, ISIG} {
		assert.True(t, w.Contains(f), "%v", f)
	}
	w.Clear(ECHO, ICANON)
	assert.False(t, w.Contains(ECHO))
	assert.False(t, w.Contains(ICANON))
	assert.True(t, w.Contains(ISIG))

	w.Set()
	w.Clear()
	assert.True(t, w.Contains(ISIG))
}

func TestCharSize(t *testing.T) {
	sizes := []CharSize{CS5, CS6, CS7, CS8}
	starts := []ControlFlags{0, ^ControlFlags(0)}
	for _, start := range starts {
		for _, from := range sizes {
			for _, to := range sizes {
				w := start
				w.SetCharSize(from)
				w.SetCharSize(to)
				assert.Equal(t, to, w.CharSize(), "start %#x, %v -> %v", start, from, to)
				assert.Equal(t, tcflag(start)&^charSizeField, tcflag(w)&^charSizeField,
					"start %#x, %v -> %v: other bits changed", start, from, to)
			}
		}
	}
}

func TestCharSizeBits(t *testing.T) {
	assert.Equal(t, 5, CS5.Bits())
	assert.Equal(t, 8, CS8.Bits())
	assert.Equal(t, CS5, ControlFlags(0).CharSize())
	assert.Panics(t, func() {
		var w ControlFlags
		w.SetCharSize(CS8 + 1)
	})
}

func TestFlagStrings(t *testing.T) {
	var tio Termios
	tio.Iflag.Set(IXON, ICRNL)
	tio.Oflag.Set(OPOST, ONLCR)
	tio.Cflag.Set(CREAD)
	tio.Cflag.SetCharSize(CS8)
	tio.Lflag.Set(ISIG, ICANON, ECHO, ECHOE, ECHOK, ECHOCTL, ECHOKE, IEXTEN)

	tests := []struct {
		desc string
		got  string
		want string
	}{
		{"input", tio.Iflag.String(), "ICRNL | IXON"},
		{"output", tio.Oflag.String(), "ONLCR | OPOST"},
		{"control", tio.Cflag.String(), "CS8 | CREAD"},
		{"local", tio.Lflag.String(), "ECHOCTL | ECHOE | ECHOKE | ECHOK | ECHO | ICANON | IEXTEN | ISIG"},
		{"empty input", InputFlags(0).String(), ""},
		{"empty control", ControlFlags(0).String(), "CS5"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.got, test.desc)
	}
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "ICANON", ICANON.String())
	assert.Equal(t, "OPOST", OPOST.String())
	assert.Equal(t, "CRTSCTS", CRTSCTS.String())
	assert.Equal(t, "IXON", IXON.String())
	assert.Equal(t, "CS7", CS7.String())
	assert.Equal(t, "InputFlag(200)", InputFlag(200).String())
	assert.Equal(t, "CharSize(9)", CharSize(9).String())
}
