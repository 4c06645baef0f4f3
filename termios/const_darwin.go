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
	tcflag = uint64 // tcflag_t is unsigned long
	speed  = uint64 // speed_t is unsigned long
)

// Darwin Input Flags
const (
	IUTF8 InputFlag = PARMRK + 1 + iota // maintain state for UTF-8 VERASE

	numInputFlags
)

// Darwin Output Flags
const (
	OFDEL  OutputFlag = OPOST + 1 + iota // fill is DEL, else NUL
	OFILL                                // use fill characters for delay
	ONOEOT                               // discard EOT's (^D) on output)
	OXTABS                               // expand tabs to spaces

	numOutputFlags
)

// Darwin Control Flags
const (
	CCTS_OFLOW ControlFlag = PARODD + 1 + iota // CTS flow control of output
	CRTS_IFLOW                                 // RTS flow control of input
	CDTR_IFLOW                                 // DTR flow control of input
	CDSR_OFLOW                                 // DSR flow control of output
	CCAR_OFLOW                                 // DCD flow control of output

	numControlFlags
)

// Darwin Local Flags
const (
	ALTWERASE  LocalFlag = TOSTOP + 1 + iota // use alternate WERASE algorithm
	NOKERNINFO                               // no kernel output from VSTATUS

	numLocalFlags
)

// Darwin Control Character Indices
const (
	VDSUSP  Char = VWERASE + 1 + iota // ISIG together with IEXTEN
	VSTATUS                           // ICANON together with IEXTEN

	numChars
)

// Darwin speeds
const (
	B7200 BaudRate = B230400 + 1 + iota
	B14400
	B28800
	B76800

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
	ONOEOT: unix.ONOEOT,
	OXTABS: unix.OXTABS,
}

var outputNames = [numOutputFlags]string{
	OCRNL:  "OCRNL",
	ONLCR:  "ONLCR",
	ONLRET: "ONLRET",
	ONOCR:  "ONOCR",
	OPOST:  "OPOST",
	OFDEL:  "OFDEL",
	OFILL:  "OFILL",
	ONOEOT: "ONOEOT",
	OXTABS: "OXTABS",
}

// Flow control bits from <sys/termios.h>
const (
	cctsOflow tcflag = 0x00010000
	crtsIflow tcflag = 0x00020000
	cdtrIflow tcflag = 0x00040000
	cdsrOflow tcflag = 0x00080000
	ccarOflow tcflag = 0x00100000
)

var controlMasks = [numControlFlags]tcflag{
	CLOCAL:     unix.CLOCAL,
	CREAD:      unix.CREAD,
	CRTSCTS:    unix.CRTSCTS,
	CSTOPB:     unix.CSTOPB,
	HUPCL:      unix.HUPCL,
	PARENB:     unix.PARENB,
	PARODD:     unix.PARODD,
	CCTS_OFLOW: cctsOflow,
	CRTS_IFLOW: crtsIflow,
	CDTR_IFLOW: cdtrIflow,
	CDSR_OFLOW: cdsrOflow,
	CCAR_OFLOW: ccarOflow,
}

var controlNames = [numControlFlags]string{
	CLOCAL:     "CLOCAL",
	CREAD:      "CREAD",
	CRTSCTS:    "CRTSCTS",
	CSTOPB:     "CSTOPB",
	HUPCL:      "HUPCL",
	PARENB:     "PARENB",
	PARODD:     "PARODD",
	CCTS_OFLOW: "CCTS_OFLOW",
	CRTS_IFLOW: "CRTS_IFLOW",
	CDTR_IFLOW: "CDTR_IFLOW",
	CDSR_OFLOW: "CDSR_OFLOW",
	CCAR_OFLOW: "CCAR_OFLOW",
}

const charSizeField tcflag = unix.CSIZE

var charSizeMasks = [...]tcflag{
	CS5: unix.CS5,
	CS6: unix.CS6,
	CS7: unix.CS7,
	CS8: unix.CS8,
}

var localMasks = [numLocalFlags]tcflag{
	ECHOCTL:    unix.ECHOCTL,
	ECHOE:      unix.ECHOE,
	ECHOKE:     unix.ECHOKE,
	ECHOK:      unix.ECHOK,
	ECHONL:     unix.ECHONL,
	ECHOPRT:    unix.ECHOPRT,
	ECHO:       unix.ECHO,
	EXTPROC:    unix.EXTPROC,
	FLUSHO:     unix.FLUSHO,
	ICANON:     unix.ICANON,
	IEXTEN:     unix.IEXTEN,
	ISIG:       unix.ISIG,
	NOFLSH:     unix.NOFLSH,
	PENDIN:     unix.PENDIN,
	TOSTOP:     unix.TOSTOP,
	ALTWERASE:  unix.ALTWERASE,
	NOKERNINFO: unix.NOKERNINFO,
}

var localNames = [numLocalFlags]string{
	ECHOCTL:    "ECHOCTL",
	ECHOE:      "ECHOE",
	ECHOKE:     "ECHOKE",
	ECHOK:      "ECHOK",
	ECHONL:     "ECHONL",
	ECHOPRT:    "ECHOPRT",
	ECHO:       "ECHO",
	EXTPROC:    "EXTPROC",
	FLUSHO:     "FLUSHO",
	ICANON:     "ICANON",
	IEXTEN:     "IEXTEN",
	ISIG:       "ISIG",
	NOFLSH:     "NOFLSH",
	PENDIN:     "PENDIN",
	TOSTOP:     "TOSTOP",
	ALTWERASE:  "ALTWERASE",
	NOKERNINFO: "NOKERNINFO",
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
	VDSUSP:   unix.VDSUSP,
	VSTATUS:  unix.VSTATUS,
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
	VDSUSP:   "VDSUSP",
	VSTATUS:  "VSTATUS",
}

// _POSIX_VDISABLE
const vDisable = 0xff

var baudCodes = [numBaudRates]speed{
	B0:      unix.B0,
	B50:     unix.B50,
	B75:     unix.B75,
	B110:    unix.B110,
	B134:    unix.B134,
	B150:    unix.B150,
	B200:    unix.B200,
	B300:    unix.B300,
	B600:    unix.B600,
	B1200:   unix.B1200,
	B1800:   unix.B1800,
	B2400:   unix.B2400,
	B4800:   unix.B4800,
	B9600:   unix.B9600,
	B19200:  unix.B19200,
	B38400:  unix.B38400,
	B57600:  unix.B57600,
	B115200: unix.B115200,
	B230400: unix.B230400,
	B7200:   unix.B7200,
	B14400:  unix.B14400,
	B28800:  unix.B28800,
	B76800:  unix.B76800,
}

var baudBits = [numBaudRates]int{
	B0:      0,
	B50:     50,
	B75:     75,
	B110:    110,
	B134:    134,
	B150:    150,
	B200:    200,
	B300:    300,
	B600:    600,
	B1200:   1200,
	B1800:   1800,
	B2400:   2400,
	B4800:   4800,
	B9600:   9600,
	B19200:  19200,
	B38400:  38400,
	B57600:  57600,
	B115200: 115200,
	B230400: 230400,
	B7200:   7200,
	B14400:  14400,
	B28800:  28800,
	B76800:  76800,
}

// ioctl requests
const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetNow     = unix.TIOCSETA
	ioctlSetDrain   = unix.TIOCSETAW
	ioctlSetFlush   = unix.TIOCSETAF
)
