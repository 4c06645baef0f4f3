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

type (
	tcflag = uint32 // tcflag_t
	speed  = uint32 // speed_t
)

// Linux Input Flags
const (
	IUCLC InputFlag = PARMRK + 1 + iota // map upper case to lower case
	IUTF8                               // maintain state for UTF-8 VERASE

	numInputFlags
)

// Linux Output Flags
const (
	OFDEL OutputFlag = OPOST + 1 + iota // fill is DEL, else NUL
	OFILL                               // use fill characters for delay
	OLCUC                               // map lower case to upper case

	numOutputFlags
)

// Linux Control Flags
const (
	CMSPAR ControlFlag = PARODD + 1 + iota // mark or space (stick) parity

	numControlFlags
)

// Linux Local Flags
const (
	XCASE LocalFlag = TOSTOP + 1 + iota // canonical upper/lower presentation

	numLocalFlags
)

// Linux Control Character Indices
const (
	VSWTC Char = VWERASE + 1 + iota // switch character, unused by Linux

	numChars
)

// Linux speeds
const (
	B460800 BaudRate = B230400 + 1 + iota
	B500000
	B576000
	B921600
	B1000000
	B1152000
	B1500000
	B2000000
	B2500000
	B3000000
	B3500000
	B4000000

	numBaudRates
)

var inputMasks = [numInputFlags]tcflag{
	BRKINT:  unix.BRKINT,
	ICRNL:   unix.ICRNL,
	IGNBRK:  unix.IGNBRK,
	IGNCR:   unix.IGNCR,
	IGNPAR:  unix.IGNPAR,
	IMAXBEL: unix.IMAXBEL,
	INLCR:   unix.INLCR,
	INPCK:   unix.INPCK,
	ISTRIP:  unix.ISTRIP,
	IXANY:   unix.IXANY,
	IXOFF:   unix.IXOFF,
	IXON:    unix.IXON,
	PARMRK:  unix.PARMRK,
	IUCLC:   unix.IUCLC,
	IUTF8:   unix.IUTF8,
}

var inputNames = [numInputFlags]string{
	BRKINT:  "BRKINT",
	ICRNL:   "ICRNL",
	IGNBRK:  "IGNBRK",
	IGNCR:   "IGNCR",
	IGNPAR:  "IGNPAR",
	IMAXBEL: "IMAXBEL",
	INLCR:   "INLCR",
	INPCK:   "INPCK",
	ISTRIP:  "ISTRIP",
	IXANY:   "IXANY",
	IXOFF:   "IXOFF",
	IXON:    "IXON",
	PARMRK:  "PARMRK",
	IUCLC:   "IUCLC",
	IUTF8:   "IUTF8",
}

var outputMasks = [numOutputFlags]tcflag{
	OCRNL:  unix.OCRNL,
	ONLCR:  unix.ONLCR,
	ONLRET: unix.ONLRET,
	ONOCR:  unix.ONOCR,
	OPOST:  unix.OPOST,
	OFDEL:  unix.OFDEL,
	OFILL:  unix.OFILL,
	OLCUC:  unix.OLCUC,
}

var outputNames = [numOutputFlags]string{
	OCRNL:  "OCRNL",
	ONLCR:  "ONLCR",
	ONLRET: "ONLRET",
	ONOCR:  "ONOCR",
	OPOST:  "OPOST",
	OFDEL:  "OFDEL",
	OFILL:  "OFILL",
	OLCUC:  "OLCUC",
}

var controlMasks = [numControlFlags]tcflag{
	CLOCAL:  unix.CLOCAL,
	CREAD:   unix.CREAD,
	CRTSCTS: unix.CRTSCTS,
	CSTOPB:  unix.CSTOPB,
	HUPCL:   unix.HUPCL,
	PARENB:  unix.PARENB,
	PARODD:  unix.PARODD,
	CMSPAR:  unix.CMSPAR,
}

var controlNames = [numControlFlags]string{
	CLOCAL:  "CLOCAL",
	CREAD:   "CREAD",
	CRTSCTS: "CRTSCTS",
	CSTOPB:  "CSTOPB",
	HUPCL:   "HUPCL",
	PARENB:  "PARENB",
	PARODD:  "PARODD",
	CMSPAR:  "CMSPAR",
}

const charSizeField tcflag = unix.CSIZE

var charSizeMasks = [...]tcflag{
	CS5: unix.CS5,
	CS6: unix.CS6,
	CS7: unix.CS7,
	CS8: unix.CS8,
}

var localMasks = [numLocalFlags]tcflag{
	ECHOCTL: unix.ECHOCTL,
	ECHOE:   unix.ECHOE,
	ECHOKE:  unix.ECHOKE,
	ECHOK:   unix.ECHOK,
	ECHONL:  unix.ECHONL,
	ECHOPRT: unix.ECHOPRT,
	ECHO:    unix.ECHO,
	EXTPROC: unix.EXTPROC,
	FLUSHO:  unix.FLUSHO,
	ICANON:  unix.ICANON,
	IEXTEN:  unix.IEXTEN,
	ISIG:    unix.ISIG,
	NOFLSH:  unix.NOFLSH,
	PENDIN:  unix.PENDIN,
	TOSTOP:  unix.TOSTOP,
	XCASE:   unix.XCASE,
}

var localNames = [numLocalFlags]string{
	ECHOCTL: "ECHOCTL",
	ECHOE:   "ECHOE",
	ECHOKE:  "ECHOKE",
	ECHOK:   "ECHOK",
	ECHONL:  "ECHONL",
	ECHOPRT: "ECHOPRT",
	ECHO:    "ECHO",
	EXTPROC: "EXTPROC",
	FLUSHO:  "FLUSHO",
	ICANON:  "ICANON",
	IEXTEN:  "IEXTEN",
	ISIG:    "ISIG",
	NOFLSH:  "NOFLSH",
	PENDIN:  "PENDIN",
	TOSTOP:  "TOSTOP",
	XCASE:   "XCASE",
}

var charIndex = [numChars]uint8{
	VDISCARD: unix.VDISCARD,
	VEOF:     unix.VEOF,
	VEOL:     unix.VEOL,
	VEOL2:    unix.VEOL2,
	VERASE:   unix.VERASE,
	VINTR:    unix.VINTR,
	VKILL:    unix.VKILL,
	VLNEXT:   unix.VLNEXT,
	VMIN:     unix.VMIN,
	VQUIT:    unix.VQUIT,
	VREPRINT: unix.VREPRINT,
	VSTART:   unix.VSTART,
	VSTOP:    unix.VSTOP,
	VSUSP:    unix.VSUSP,
	VTIME:    unix.VTIME,
	VWERASE:  unix.VWERASE,
	VSWTC:    unix.VSWTC,
}

var charNames = [numChars]string{
	VDISCARD: "VDISCARD",
	VEOF:     "VEOF",
	VEOL:     "VEOL",
	VEOL2:    "VEOL2",
	VERASE:   "VERASE",
	VINTR:    "VINTR",
	VKILL:    "VKILL",
	VLNEXT:   "VLNEXT",
	VMIN:     "VMIN",
	VQUIT:    "VQUIT",
	VREPRINT: "VREPRINT",
	VSTART:   "VSTART",
	VSTOP:    "VSTOP",
	VSUSP:    "VSUSP",
	VTIME:    "VTIME",
	VWERASE:  "VWERASE",
	VSWTC:    "VSWTC",
}

// _POSIX_VDISABLE
const vDisable = 0

var baudCodes = [numBaudRates]speed{
	B0:       unix.B0,
	B50:      unix.B50,
	B75:      unix.B75,
	B110:     unix.B110,
	B134:     unix.B134,
	B150:     unix.B150,
	B200:     unix.B200,
	B300:     unix.B300,
	B600:     unix.B600,
	B1200:    unix.B1200,
	B1800:    unix.B1800,
	B2400:    unix.B2400,
	B4800:    unix.B4800,
	B9600:    unix.B9600,
	B19200:   unix.B19200,
	B38400:   unix.B38400,
	B57600:   unix.B57600,
	B115200:  unix.B115200,
	B230400:  unix.B230400,
	B460800:  unix.B460800,
	B500000:  unix.B500000,
	B576000:  unix.B576000,
	B921600:  unix.B921600,
	B1000000: unix.B1000000,
	B1152000: unix.B1152000,
	B1500000: unix.B1500000,
	B2000000: unix.B2000000,
	B2500000: unix.B2500000,
	B3000000: unix.B3000000,
	B3500000: unix.B3500000,
	B4000000: unix.B4000000,
}

var baudBits = [numBaudRates]int{
	B0:       0,
	B50:      50,
	B75:      75,
	B110:     110,
	B134:     134,
	B150:     150,
	B200:     200,
	B300:     300,
	B600:     600,
	B1200:    1200,
	B1800:    1800,
	B2400:    2400,
	B4800:    4800,
	B9600:    9600,
	B19200:   19200,
	B38400:   38400,
	B57600:   57600,
	B115200:  115200,
	B230400:  230400,
	B460800:  460800,
	B500000:  500000,
	B576000:  576000,
	B921600:  921600,
	B1000000: 1000000,
	B1152000: 1152000,
	B1500000: 1500000,
	B2000000: 2000000,
	B2500000: 2500000,
	B3000000: 3000000,
	B3500000: 3500000,
	B4000000: 4000000,
}

// ioctl requests
const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetNow     = unix.TCSETS
	ioctlSetDrain   = unix.TCSETSW
	ioctlSetFlush   = unix.TCSETSF
)
