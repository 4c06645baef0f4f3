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

import "golang.org/x/sys/unix"

// Termios holds the settings of one terminal.  The zero value has every
// flag clear, a zero control character table and speed B0.
type Termios struct {
	Iflag InputFlags   // input flags
	Oflag OutputFlags  // output flags
	Cflag ControlFlags // control flags
	Lflag LocalFlags   // local flags
	Cc    Chars        // control chars

	ispeed speed
	ospeed speed
}

// FromRaw copies every field of raw into a Termios.
func FromRaw(raw *unix.Termios) Termios {
	return Termios{
		Iflag:  InputFlags(raw.Iflag),
		Oflag:  OutputFlags(raw.Oflag),
		Cflag:  ControlFlags(raw.Cflag),
		Lflag:  LocalFlags(raw.Lflag),
		Cc:     Chars(raw.Cc),
		ispeed: raw.Ispeed,
		ospeed: raw.Ospeed,
	}
}

// Raw copies every field of t into the record the kernel reads.  FromRaw
// and Raw are inverses.
func (t Termios) Raw() *unix.Termios {
	return &unix.Termios{
		Iflag:  tcflag(t.Iflag),
		Oflag:  tcflag(t.Oflag),
		Cflag:  tcflag(t.Cflag),
		Lflag:  tcflag(t.Lflag),
		Cc:     t.Cc,
		Ispeed: t.ispeed,
		Ospeed: t.ospeed,
	}
}

// BSD speed codes are the rates themselves and live only in the speed
// fields.

func (t *Termios) inputSpeed() speed  { return t.ispeed }
func (t *Termios) outputSpeed() speed { return t.ospeed }

func (t *Termios) setInputSpeed(code speed)  { t.ispeed = code }
func (t *Termios) setOutputSpeed(code speed) { t.ospeed = code }

// makeRaw is the BSD libc cfmakeraw transform.
func makeRaw(t *Termios) {
	t.Iflag.Clear(IMAXBEL, IXOFF, INPCK, BRKINT, PARMRK, ISTRIP, INLCR, IGNCR, ICRNL, IXON, IGNPAR)
	t.Iflag.Set(IGNBRK)
	t.Oflag.Clear(OPOST)
	t.Lflag.Clear(ECHO, ECHOE, ECHOK, ECHONL, ICANON, ISIG, IEXTEN, NOFLSH, TOSTOP, PENDIN)
	t.Cflag.Clear(PARENB)
	t.Cflag.SetCharSize(CS8)
	t.Cflag.Set(CREAD)
	t.Cc.Set(VMIN, 1)
	t.Cc.Set(VTIME, 0)
}

// Drain blocks until all output written to fd has been transmitted.
func Drain(fd int) error {
	return unix.IoctlSetInt(fd, unix.TIOCDRAIN, 0)
}

// TIOCFLUSH selectors from <sys/fcntl.h>
const (
	fread  = 0x0001
	fwrite = 0x0002
)

func (q Queue) raw() int {
	switch q {
	case InputQueue:
		return fread
	case OutputQueue:
		return fwrite
	case BothQueues:
		return fread | fwrite
	}
	panic(q.invalid())
}

// Flush discards the data in the selected queues of fd.
func Flush(fd int, q Queue) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, q.raw())
}
