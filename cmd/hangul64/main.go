// Copyright 2025 The Rivaas Authors
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

// Command hangul64 drives the hangul64 codec from the shell.
//
// It is a thin harness around the two library operations: it parses one
// argument, calls Encode or Decode, and prints the result. All codec logic
// lives in the library.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"rivaas.dev/hangul64"
	"rivaas.dev/logging"
)

var log = logging.MustNew(
	logging.WithTextHandler(),
	logging.WithServiceName("hangul64"),
)

func main() {
	app := &cli.App{
		Name:  "hangul64",
		Usage: "encode bytes as Hangul token streams and back",
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "encode text (or 0x-prefixed hex) to a token stream",
				ArgsUsage: "<text|0xHEX>",
				Action:    runEncode,
			},
			{
				Name:      "decode",
				Usage:     "decode a token stream; prints hex and, when valid, UTF-8",
				ArgsUsage: "<tokens>",
				Action:    runDecode,
			},
			{
				Name:   "selftest",
				Usage:  "round-trip a fixed sample set",
				Action: runSelftest,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.LogError(err, "command failed")
		os.Exit(1)
	}
}

func runEncode(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("encode expects exactly one argument, got %d", c.NArg())
	}

	data, err := parseInput(c.Args().First())
	if err != nil {
		return err
	}

	fmt.Println(hangul64.Encode(data))

	return nil
}

func runDecode(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("decode expects exactly one argument, got %d", c.NArg())
	}

	data, err := hangul64.Decode(c.Args().First())
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(data))
	if utf8.Valid(data) {
		fmt.Println(string(data))
	} else {
		fmt.Println("<binary>")
	}

	return nil
}

func runSelftest(*cli.Context) error {
	samples := [][]byte{
		{},
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte("hello world"),
		{0x00, 0xff, 0x10, 0x20},
	}

	for _, sample := range samples {
		tokens := hangul64.Encode(sample)

		back, err := hangul64.Decode(tokens)
		if err != nil {
			return fmt.Errorf("selftest: decode of %x failed: %w", sample, err)
		}
		if !bytes.Equal(sample, back) {
			return fmt.Errorf("selftest: round trip of %x returned %x", sample, back)
		}

		fmt.Printf("%x -> %s -> ok\n", sample, tokens)
	}

	fmt.Println("all samples round-tripped")

	return nil
}

// parseInput interprets a command-line argument as raw bytes. An argument
// starting with "0x" is hex-decoded; anything else is taken as UTF-8 text.
func parseInput(arg string) ([]byte, error) {
	if !strings.HasPrefix(arg, "0x") {
		return []byte(arg), nil
	}

	data, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex argument %q: %w", arg, err)
	}

	return data, nil
}
