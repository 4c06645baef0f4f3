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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestTermSettings(t *testing.T) {
	fd := openTerminal(t)
	tio, err := NewTermSettings(fd)
	require.NoError(t, err, "NewTermSettings")
	assert.Equal(t, fd, tio.Fd())

	if err := tio.Apply(Now); err != nil {
		t.Errorf("Apply: %s", err)
	}
	if err := tio.Raw(); err != nil {
		t.Errorf("Raw: %s", err)
	}
	raw, err := Fetch(fd)
	require.NoError(t, err)
	assert.False(t, raw.Lflag.Contains(ICANON))
	assert.Equal(t, *tio.Current(), raw)

	if err := tio.Reset(); err != nil {
		t.Errorf("Reset: %s", err)
	}
	restored, err := Fetch(fd)
	require.NoError(t, err)
	assert.Equal(t, tio.Original(), restored)
	assert.Equal(t, tio.Original(), *tio.Current())
	t.Log(tio)
}

func TestTermSettingsCurrent(t *testing.T) {
	fd := openTerminal(t)
	tio, err := NewTermSettings(fd)
	require.NoError(t, err)

	tio.Current().Lflag.Clear(ECHO)
	assert.False(t, tio.Current().Lflag.Contains(ECHO))
	require.NoError(t, tio.Apply(AfterDrain))

	got, err := Fetch(fd)
	require.NoError(t, err)
	assert.False(t, got.Lflag.Contains(ECHO))
	require.NoError(t, tio.Reset())
}

func TestTermSettingsNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = NewTermSettings(int(r.Fd()))
	assert.ErrorIs(t, err, unix.ENOTTY)
}

func TestTermSize(t *testing.T) {
	fd := openTerminal(t)
	require.NoError(t, unix.IoctlSetWinsize(fd, unix.TIOCSWINSZ, &unix.Winsize{Col: 132, Row: 43}))

	tio, err := NewTermSettings(fd)
	require.NoError(t, err)
	w, h, err := tio.GetSize()
	require.NoError(t, err, "GetSize")
	assert.Equal(t, 132, w)
	assert.Equal(t, 43, h)
	t.Logf("Size: %d cols, %d rows", w, h)
}
