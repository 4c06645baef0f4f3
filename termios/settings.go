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

	"golang.org/x/sys/unix"
)

// TermSettings contain both the original settings from when it was created
// and the current settings being manipulated.  At any time, Reset will
// restore the terminal to its original state.
type TermSettings struct {
	fd       int
	original Termios
	current  Termios
}

// NewTermSettings examines the state of the terminal open on fd and
// stores it in a fresh TermSettings.
func NewTermSettings(fd int) (*TermSettings, error) {
	t, err := Fetch(fd)
	if err != nil {
		return nil, err
	}
	return &TermSettings{fd: fd, original: t, current: t}, nil
}

// Fd returns the file descriptor the settings were fetched from.
func (tio *TermSettings) Fd() int { return tio.fd }

// Current returns the settings being manipulated.  Changes made through
// the returned pointer take effect on the next Apply.
func (tio *TermSettings) Current() *Termios { return &tio.current }

// Original returns a copy of the settings in effect when tio was created.
func (tio *TermSettings) Original() Termios { return tio.original }

// Apply applies the settings currently stored in tio.  This is mostly useful
// for maintaining multiple TermSettings for different modes, and you can
// simply Apply whichever you need.
func (tio *TermSettings) Apply(when When) error {
	return tio.current.Update(tio.fd, when)
}

// Raw sets the terminal to raw mode, suitable for reading keys one at a
// time.
//
// The changes are applied immediately.
//
// I recommend this being done early on in main() and having a deferred call
// to tio.Reset so that the changes will be reverted when everything exits
// cleanly.
func (tio *TermSettings) Raw() error {
	tio.current.MakeRaw()
	return tio.Apply(Now)
}

// Reset sets the terminal settings to match those that were in effect when
// the call to NewTermSettings was made.
func (tio *TermSettings) Reset() error {
	tio.current = tio.original
	return tio.Apply(Now)
}

// GetSize returns the window size of the terminal in columns and rows.
func (tio *TermSettings) GetSize() (width, height int, err error) {
	return WindowSize(tio.fd)
}

// String returns a debugging string which contains low-level
// information about the terminal.
func (tio *TermSettings) String() string {
	return fmt.Sprintf("Terminal[%d]:\n%v\n", tio.fd, tio.current)
}

// WindowSize returns the window size of the terminal open on fd in columns
// and rows.
func WindowSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
