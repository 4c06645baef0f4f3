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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/kylelemons/ttyattr/termios"
)

var label = color.New(color.FgCyan, color.Bold).SprintFunc()

// writeAttrs prints t one field per line with the field name highlighted.
func writeAttrs(w io.Writer, t termios.Termios) {
	for _, line := range strings.Split(t.String(), "\n") {
		name, value, ok := strings.Cut(line, "\t")
		if !ok {
			fmt.Fprintln(w, line)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", label(name), value)
	}
}

// echoKeys reads single bytes from r and reports each one on w, ending every
// report with eol.  It stops at the end of r or after reporting one of stop.
func echoKeys(r io.Reader, w io.Writer, eol string, stop ...byte) error {
	in := bufio.NewReader(r)
	for {
		b, err := in.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read")
		}
		if _, err := fmt.Fprintf(w, "Got %d (%s)%s", b, termios.Caret(b), eol); err != nil {
			return errors.Wrap(err, "write")
		}
		for _, s := range stop {
			if b == s {
				return nil
			}
		}
	}
}

// parseWhen maps the --when flag to an update timing.
func parseWhen(s string) (termios.When, error) {
	switch strings.ToLower(s) {
	case "now":
		return termios.Now, nil
	case "drain":
		return termios.AfterDrain, nil
	case "flush":
		return termios.AfterFlush, nil
	}
	return 0, errors.Errorf("unknown update timing %q: want now, drain or flush", s)
}

// setSpeed sets the input speed, the output speed or both.  Asking for
// neither is the same as asking for both.
func setSpeed(t *termios.Termios, rate termios.BaudRate, input, output bool) {
	switch {
	case input && !output:
		t.SetInputSpeed(rate)
	case output && !input:
		t.SetOutputSpeed(rate)
	default:
		t.SetSpeed(rate)
	}
}

// fdReader reads from a descriptor it does not own.  It never closes the
// descriptor.
type fdReader int

func (fd fdReader) Read(p []byte) (int, error) {
	n, err := unix.Read(int(fd), p)
	if n < 0 {
		n = 0
	}
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// ttyReader returns a reader for fd.
func ttyReader(fd int) io.Reader {
	if fd == int(os.Stdin.Fd()) {
		return os.Stdin
	}
	return fdReader(fd)
}
