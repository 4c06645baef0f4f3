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
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/kylelemons/ttyattr/termios"
)

var showCommand = &cli.Command{
	Name:  "show",
	Usage: "print the settings of the terminal",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "dump", Usage: "also dump the raw record"},
	},
	Action: func(ctx *cli.Context) error {
		fd := ctx.Int(flagFd)
		t, err := termios.Fetch(fd)
		if err != nil {
			return errors.Wrapf(err, "fetch fd %d", fd)
		}
		writeAttrs(os.Stdout, t)
		if ctx.Bool("dump") {
			spew.Fdump(os.Stdout, t.Raw())
		}
		return nil
	},
}

var rawCommand = &cli.Command{
	Name:  "raw",
	Usage: "compare cooked and raw settings, or read keys in raw mode",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "apply", Usage: "enter raw mode and echo key codes until ^C or ^D"},
	},
	Action: func(ctx *cli.Context) error {
		fd := ctx.Int(flagFd)
		if !ctx.Bool("apply") {
			t, err := termios.Fetch(fd)
			if err != nil {
				return errors.Wrapf(err, "fetch fd %d", fd)
			}
			fmt.Println("Cooked:")
			writeAttrs(os.Stdout, t)
			t.MakeRaw()
			fmt.Println("\nRaw:")
			writeAttrs(os.Stdout, t)
			return nil
		}

		if !termios.IsTerminal(fd) {
			return errors.Errorf("fd %d is not a terminal", fd)
		}

		// Set the terminal to RAW mode
		tio, err := termios.NewTermSettings(fd)
		if err != nil {
			return errors.Wrap(err, "termios")
		}
		if err := tio.Raw(); err != nil {
			return errors.Wrap(err, "rawterm")
		}
		log.WithField("fd", fd).Debug("entered raw mode")

		// Restore cooked settings on exit
		defer func() {
			if err := tio.Reset(); err != nil {
				log.WithError(err).Error("reset terminal")
			}
		}()

		return echoKeys(ttyReader(fd), os.Stdout, "\r\n", termios.ETX, termios.EOT)
	},
}

var echoCommand = &cli.Command{
	Name:  "echo",
	Usage: "print the code of every byte read from the terminal",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "unbuffered", Usage: "disable line buffering and echo; stop at ^D"},
	},
	Action: func(ctx *cli.Context) error {
		fd := ctx.Int(flagFd)
		in := ttyReader(fd)
		if !ctx.Bool("unbuffered") {
			return echoKeys(in, os.Stdout, "\n")
		}

		saved, err := termios.Fetch(fd)
		if err != nil {
			return errors.Wrapf(err, "fetch fd %d", fd)
		}
		t := saved

		// Disable line buffering and echo
		t.Lflag.Clear(termios.ICANON, termios.ECHO)
		if err := t.Update(fd, termios.Now); err != nil {
			return errors.Wrapf(err, "update fd %d", fd)
		}
		log.WithField("fd", fd).Debug("line buffering and echo disabled")

		defer func() {
			if err := saved.Update(fd, termios.Now); err != nil {
				log.WithError(err).Error("restore terminal")
			}
		}()
		return echoKeys(in, os.Stdout, "\n", termios.EOT)
	},
}

var speedCommand = &cli.Command{
	Name:      "speed",
	Usage:     "print or set the line speed",
	ArgsUsage: "[bits-per-second]",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "input", Usage: "only change the input speed"},
		&cli.BoolFlag{Name: "output", Usage: "only change the output speed"},
		&cli.StringFlag{Name: "when", Value: "drain", Usage: "when to apply the change: now, drain or flush"},
	},
	Action: func(ctx *cli.Context) error {
		fd := ctx.Int(flagFd)
		t, err := termios.Fetch(fd)
		if err != nil {
			return errors.Wrapf(err, "fetch fd %d", fd)
		}
		if ctx.NArg() == 0 {
			fmt.Printf("ispeed:\t%v\nospeed:\t%v\n", t.InputSpeed(), t.OutputSpeed())
			return nil
		}

		bps, err := strconv.Atoi(ctx.Args().First())
		if err != nil {
			return errors.Wrapf(err, "bad speed %q", ctx.Args().First())
		}
		rate, err := termios.ParseBaudRate(bps)
		if err != nil {
			return err
		}
		when, err := parseWhen(ctx.String("when"))
		if err != nil {
			return err
		}

		setSpeed(&t, rate, ctx.Bool("input"), ctx.Bool("output"))
		if err := t.Update(fd, when); err != nil {
			return errors.Wrapf(err, "update fd %d", fd)
		}
		log.WithFields(log.Fields{
			"fd":    fd,
			"speed": rate,
			"when":  when,
		}).Debug("speed updated")
		return nil
	},
}

var sizeCommand = &cli.Command{
	Name:  "size",
	Usage: "print the window size of the terminal",
	Action: func(ctx *cli.Context) error {
		fd := ctx.Int(flagFd)
		width, height, err := termios.WindowSize(fd)
		if err != nil {
			return errors.Wrapf(err, "window size of fd %d", fd)
		}
		fmt.Printf("%dx%d\n", width, height)
		return nil
	},
}
