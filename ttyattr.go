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

// ttyattr
//
// It is a basic example of terminal attribute handling with the
// "ttyattr/termios" package.  It can print the settings of a terminal,
// compare cooked and raw mode, echo input with and without line buffering,
// and change the line speed.
//
//	ttyattr show
//	ttyattr raw --apply
//	ttyattr echo --unbuffered
//	ttyattr speed 9600
//
// Press ^C or ^D to leave the interactive commands.
package main

import (
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	flagFd      = "fd"
	flagDebug   = "debug"
	flagNoColor = "no-color"
)

var app = &cli.App{
	Name:  "ttyattr",
	Usage: "inspect and change terminal attributes",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    flagFd,
			Value:   0,
			Usage:   "file descriptor of the terminal",
			EnvVars: []string{"TTYATTR_FD"},
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Usage:   "enable debug logging",
			EnvVars: []string{"TTYATTR_DEBUG"},
		},
		&cli.BoolFlag{
			Name:    flagNoColor,
			Usage:   "disable colored output",
			EnvVars: []string{"TTYATTR_NO_COLOR"},
		},
	},
	Before: func(ctx *cli.Context) error {
		if ctx.Bool(flagDebug) {
			log.SetLevel(log.DebugLevel)
		}
		if ctx.Bool(flagNoColor) {
			color.NoColor = true
		}
		return nil
	},
	Commands: []*cli.Command{
		showCommand,
		rawCommand,
		echoCommand,
		speedCommand,
		sizeCommand,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
