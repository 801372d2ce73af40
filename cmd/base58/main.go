// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	cfg "github.com/dusk-network/base58/pkg/config"
)

var app = cli.NewApp()

func initLog() {
	log = logrus.WithFields(logrus.Fields{
		"app":    "base58",
		"prefix": "main",
	})
}

func init() {
	initLog()

	app.Action = action
	app.Before = setup
	app.Copyright = "Copyright (c) 2021 DUSK"
	app.Name = "base58"
	app.Usage = "Official Dusk base58 command-line interface"
	app.Author = "DUSK 2021"
	app.Version = semver.MustParse(cfg.CliVersion).String()
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Aliases:   []string{"e"},
			Usage:     "encode binary data to a base58 string",
			ArgsUsage: "<INPUT>",
			Action:    encodeAction,
		},
		{
			Name:      "decode",
			Aliases:   []string{"d"},
			Usage:     "decode a base58 string back to binary data",
			ArgsUsage: "<INPUT>",
			Action:    decodeAction,
		},
	}
	app.Flags = append(app.Flags, CLIFlags...)
	app.Flags = append(app.Flags, GlobalFlags...)
}

func main() {
	defer handlePanic()

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handlePanic() {
	if r := recover(); r != nil {
		log.WithError(fmt.Errorf("%+v", r)).Errorln("Application panic")
		os.Exit(1)
	}
}
