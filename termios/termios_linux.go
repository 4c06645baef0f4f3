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
	line  uint8        // line discipline
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
		line:   raw.Line,
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
		Line:   t.line,
		Cc:     t.Cc,
		Ispeed: t.ispeed,
		Ospeed: t.ospeed,
	}
}

// Linux keeps the output speed in the CBAUD bits of the control word and
// the input speed in the CIBAUD bits above them.  An input field of B0
// means the input speed follows the output speed.
const (
	ibshift = 16
	cbaud   = tcflag(unix.CBAUD)
	cibaud  = cbaud << ibshift
)

func (t *Termios) outputSpeed() speed {
	return speed(tcflag(t.Cflag) & cbaud)
}

func (t *Termios) inputSpeed() speed {
	if code := speed(tcflag(t.Cflag)&cibaud) >> ibshift; code != unix.B0 {
		return code
	}
	return t.outputSpeed()
}

func (t *Termios) setOutputSpeed(code speed) {
	if code&^cbaud != 0 {
		panic("termios: output speed code outside CBAUD")
	}
	t.Cflag = ControlFlags(tcflag(t.Cflag)&^cbaud | code)
	t.ospeed = code
}

func (t *Termios) setInputSpeed(code speed) {
	if code&^cbaud != 0 {
		panic("termios: input speed code outside CBAUD")
	}
	t.Cflag = ControlFlags(tcflag(t.Cflag)&^cibaud | code<<ibshift)
	t.ispeed = code
}

// makeRaw is the glibc cfmakeraw transform.
func makeRaw(t *Termios) {
	t.Iflag.Clear(IGNBRK, BRKINT, PARMRK, ISTRIP, INLCR, IGNCR, ICRNL, IXON)
	t.Oflag.Clear(OPOST)
	t.Lflag.Clear(ECHO, ECHONL, ICANON, ISIG, IEXTEN)
	t.Cflag.Clear(PARENB)
	t.Cflag.SetCharSize(CS8)
	t.Cc.Set(VMIN, 1)
	t.Cc.Set(VTIME, 0)
}

// Drain blocks until all output written to fd has been transmitted.
func Drain(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCSBRK, 1)
}

func (q Queue) raw() int {
	switch q {
	case InputQueue:
		return unix.TCIFLUSH
	case OutputQueue:
		return unix.TCOFLUSH
	case BothQueues:
		return unix.TCIOFLUSH
	}
	panic(q.invalid())
}

// Flush discards the data in the selected queues of fd.
func Flush(fd int, q Queue) error {
	return unix.IoctlSetInt(fd, unix.TCFLSH, q.raw())
}
