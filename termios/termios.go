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

// Package termios implements typed access to low-level terminal settings.
//
// A Termios value holds the four flag words (input, output, control and
// local), the control character table and the line speeds of a terminal.
// It is fetched from a file descriptor, changed through the typed
// accessors, and pushed back with Update:
//
//	t, err := termios.Fetch(0)
//	if err != nil {
//		log.Fatalf("fetch: %s", err)
//	}
//	saved := t
//	t.Lflag.Clear(termios.ICANON, termios.ECHO)
//	if err := t.Update(0, termios.Now); err != nil {
//		log.Fatalf("update: %s", err)
//	}
//	defer saved.Update(0, termios.Now)
//
// Termios is a plain value: assigning it copies every field, so the saved
// copy above is unaffected by later changes to t.
//
// Syscall failures are returned as the raw unix.Errno reported by the
// kernel, so callers can match them with errors.Is(err, unix.ENOTTY).
package termios

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// When selects when, relative to pending I/O, Update applies a change.
type When int

const (
	Now        When = iota // change immediately
	AfterDrain             // drain output, then change
	AfterFlush             // drain output, discard pending input, then change
)

func (w When) String() string {
	switch w {
	case Now:
		return "TCSANOW"
	case AfterDrain:
		return "TCSADRAIN"
	case AfterFlush:
		return "TCSAFLUSH"
	}
	return fmt.Sprintf("When(%d)", int(w))
}

func (w When) request() uint {
	switch w {
	case Now:
		return ioctlSetNow
	case AfterDrain:
		return ioctlSetDrain
	case AfterFlush:
		return ioctlSetFlush
	}
	panic(fmt.Sprintf("termios: unknown update timing %d", int(w)))
}

// Queue selects the terminal queues discarded by Flush.
type Queue int

const (
	InputQueue  Queue = iota // data received but not read
	OutputQueue              // data written but not transmitted
	BothQueues
)

func (q Queue) invalid() string {
	return fmt.Sprintf("termios: unknown queue selector %d", int(q))
}

// Fetch returns the settings of the terminal open on fd.
//
// If fd is not a terminal the error is unix.ENOTTY; if fd is not open it is
// unix.EBADF.
func Fetch(fd int) (Termios, error) {
	raw, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return Termios{}, err
	}
	return FromRaw(raw), nil
}

// Update pushes t to the terminal open on fd.  The kernel applies the change
// at the point selected by when.
func (t *Termios) Update(fd int, when When) error {
	return unix.IoctlSetTermios(fd, when.request(), t.Raw())
}

// MakeRaw puts t in raw mode: no line editing, no signal characters, no echo
// and no input or output translation.  Reads return as soon as one byte is
// available.  Only t is changed; call Update to apply it.
func (t *Termios) MakeRaw() {
	makeRaw(t)
}

// InputSpeed returns the input baud rate.
func (t *Termios) InputSpeed() BaudRate {
	return baudFromRaw(t.inputSpeed())
}

// OutputSpeed returns the output baud rate.
func (t *Termios) OutputSpeed() BaudRate {
	return baudFromRaw(t.outputSpeed())
}

// SetInputSpeed sets the input baud rate.  On Linux an input rate of B0
// means the input speed follows the output speed, so InputSpeed then
// reports the output rate rather than B0.
func (t *Termios) SetInputSpeed(rate BaudRate) {
	t.setInputSpeed(rate.raw())
}

// SetOutputSpeed sets the output baud rate.
func (t *Termios) SetOutputSpeed(rate BaudRate) {
	t.setOutputSpeed(rate.raw())
}

// SetSpeed sets both the input and the output baud rates.
func (t *Termios) SetSpeed(rate BaudRate) {
	code := rate.raw()
	t.setInputSpeed(code)
	t.setOutputSpeed(code)
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	return err == nil
}

// String returns a debugging string listing every set flag, the control
// characters and both speeds.  The format may change.
func (t Termios) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "iflag:\t%v\n", t.Iflag)
	fmt.Fprintf(&b, "oflag:\t%v\n", t.Oflag)
	fmt.Fprintf(&b, "cflag:\t%v\n", t.Cflag)
	fmt.Fprintf(&b, "lflag:\t%v\n", t.Lflag)
	fmt.Fprintf(&b, "cc:\t%v\n", t.Cc)
	fmt.Fprintf(&b, "ispeed:\t%v\n", t.InputSpeed())
	fmt.Fprintf(&b, "ospeed:\t%v", t.OutputSpeed())
	return b.String()
}
