// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/dusk-network/base58/pkg/config"
	"github.com/dusk-network/base58/pkg/crypto/base58"
	"github.com/dusk-network/base58/pkg/util/logging"
)

var log *logrus.Entry

// setup loads the configuration and initializes logging before any command
// runs. Logging goes to stderr so that stdout carries nothing but the single
// result or error line.
func setup(ctx *cli.Context) error {
	confFile := ctx.GlobalString(ConfigFlag.Name)

	if err := config.Load(confFile); err != nil {
		fmt.Printf("Error: %v\n", err)
		return cli.NewExitError("", 1)
	}

	logging.InitLog(os.Stderr)

	if verbosity := ctx.GlobalString(VerbosityFlag.Name); verbosity != "" {
		logging.SetToLevel(verbosity)
	}

	log.WithField("file", config.Get().UsedConfigFile).Trace("Loaded config file")

	return nil
}

// action runs when no known command is given. An unknown command gets an
// error line; either way the usage text is printed and the process exits
// non-zero.
func action(ctx *cli.Context) error {
	if args := ctx.Args(); len(args) > 0 {
		fmt.Printf("Error: Unknown command '%s'\n", args[0])
	}

	printUsage()

	return cli.NewExitError("", 1)
}

func encodeAction(ctx *cli.Context) error {
	input, ok := commandInput(ctx)
	if !ok {
		printUsage()
		return cli.NewExitError("", 1)
	}

	out, err := runEncode(input)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return cli.NewExitError("", 1)
	}

	fmt.Println(out)

	return nil
}

func decodeAction(ctx *cli.Context) error {
	input, ok := commandInput(ctx)
	if !ok {
		printUsage()
		return cli.NewExitError("", 1)
	}

	out, err := runDecode(input)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return cli.NewExitError("", 1)
	}

	fmt.Println(out)

	return nil
}

// commandInput extracts the single input argument of a command. Empty input
// is treated the same as a missing argument.
func commandInput(ctx *cli.Context) (string, bool) {
	args := ctx.Args()
	if len(args) < 1 || args[0] == "" {
		return "", false
	}

	return args[0], true
}

// runEncode checks the configured length cap and encodes input as base58.
func runEncode(input string) (string, error) {
	data := []byte(input)

	if max := encodeLimit(); len(data) > max {
		return "", fmt.Errorf("Input length %d exceeds maximum of %d", len(data), max)
	}

	out, err := base58.Encoding(data)
	if err != nil {
		return "", err
	}

	log.WithField("bytes", len(data)).Trace("Encoded input")

	return out, nil
}

// runDecode decodes input and renders the decoded bytes as UTF-8 text.
func runDecode(input string) (string, error) {
	if max := base58.MaxDecodeLength(); len(input) > max {
		return "", fmt.Errorf("Input length %d exceeds maximum of %d", len(input), max)
	}

	decoded, err := base58.Decoding(input)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("Decoded data is not valid UTF-8")
	}

	log.WithField("bytes", len(decoded)).Trace("Decoded input")

	return string(decoded), nil
}

// encodeLimit is the CLI-side cap on encode payloads. Configuration can
// lower it; the codec's own MaxEncodeLength stays the ceiling.
func encodeLimit() int {
	max := int(config.Get().Codec.MaxEncodeLength)
	if max <= 0 || max > base58.MaxEncodeLength {
		return base58.MaxEncodeLength
	}

	return max
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  base58 encode <INPUT>")
	fmt.Println("  base58 decode <INPUT>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  encode    Encode binary data to a base58 string")
	fmt.Println("  decode    Decode a base58 string to binary data")
	fmt.Println()
	fmt.Println("Constraints:")
	fmt.Printf("  encode: max input length is %d bytes\n", encodeLimit())
	fmt.Printf("  decode: max input length is %d characters\n", base58.MaxDecodeLength())
}
