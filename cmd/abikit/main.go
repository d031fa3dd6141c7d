// Copyright 2025 The abikit Authors
// This file is part of the abikit library.
//
// The abikit library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The abikit library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the abikit library. If not, see <http://www.gnu.org/licenses/>.

// abikit inspects contract ABI files and builds call data from them.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/ethergo/abikit/abi"
	"github.com/ethergo/abikit/common"
	"github.com/ethergo/abikit/compiler"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var (
	abiFlag = &cli.StringFlag{
		Name:  "abi",
		Usage: "path to a plain ABI JSON array",
	}
	combinedFlag = &cli.StringFlag{
		Name:  "combined",
		Usage: "path to solc --combined-json output",
	}
	contractFlag = &cli.StringFlag{
		Name:  "contract",
		Usage: "contract name to select from combined JSON",
	}
)

var app = &cli.App{
	Name:  "abikit",
	Usage: "inspect contract ABIs and encode call data",
	Commands: []*cli.Command{
		listCommand,
		selectorCommand,
		topicCommand,
		encodeCommand,
	},
}

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "print every function, event and error with its selector or topic",
	Flags:     []cli.Flag{abiFlag, combinedFlag, contractFlag},
	Action:    list,
	ArgsUsage: " ",
}

var selectorCommand = &cli.Command{
	Name:      "selector",
	Usage:     "print the 4 byte selector of a canonical signature",
	ArgsUsage: "<signature>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.Exit("one signature argument required", 1)
		}
		sel, err := abi.SelectorOf(ctx.Args().First())
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Println(sel.Hex())
		return nil
	},
}

var topicCommand = &cli.Command{
	Name:      "topic",
	Usage:     "print the 32 byte topic0 of a canonical event signature",
	ArgsUsage: "<signature>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.Exit("one signature argument required", 1)
		}
		topic, err := abi.Topic0Of(ctx.Args().First())
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Println(topic.Hex())
		return nil
	},
}

var encodeCommand = &cli.Command{
	Name:  "encode",
	Usage: "encode call data for a signature and JSON argument array",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "sig",
			Usage:    "canonical signature, e.g. 'transfer(address,uint256)'",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "args",
			Usage: "JSON array of argument values",
			Value: "[]",
		},
	},
	Action: encode,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadContracts resolves the --abi/--combined flags to registry input.
func loadContracts(ctx *cli.Context) (map[string]json.RawMessage, error) {
	switch {
	case ctx.IsSet("combined"):
		data, err := os.ReadFile(ctx.String("combined"))
		if err != nil {
			return nil, err
		}
		return compiler.ParseCombinedJSON(data)
	case ctx.IsSet("abi"):
		path := ctx.String("abi")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		name := ctx.String("contract")
		if name == "" {
			name = path
		}
		return map[string]json.RawMessage{name: data}, nil
	default:
		return nil, fmt.Errorf("either --abi or --combined is required")
	}
}

func list(ctx *cli.Context) error {
	contracts, err := loadContracts(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	reg, err := abi.LoadRegistry(contracts)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	names := reg.Names()
	if name := ctx.String("contract"); name != "" && ctx.IsSet("combined") {
		names = []string{name}
	}
	for _, name := range names {
		contract, err := reg.Get(name)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Printf("contract %s\n", contract.Name)
		for _, method := range contract.Functions.All() {
			fmt.Printf("  function %s  %s\n", method.ID.Hex(), method.Sig)
		}
		for _, event := range contract.Events.All() {
			fmt.Printf("  event    %s  %s\n", event.ID.Hex(), event.Sig)
		}
		for _, abiErr := range contract.Errors.All() {
			fmt.Printf("  error    %s  %s\n", abiErr.ID.Hex(), abiErr.Sig)
		}
		if contract.Functions.Len() == 0 && contract.Events.Len() == 0 && contract.Errors.Len() == 0 {
			log.Warn().Str("contract", name).Msg("no callable entries")
		}
	}
	return nil
}

func encode(ctx *cli.Context) error {
	name, inputs, err := abi.ParseSignature(ctx.String("sig"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	method, err := abi.NewMethod(name, abi.Function, "", inputs, nil)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	values, err := abi.ParseValues(inputs.Types(), json.RawMessage(ctx.String("args")))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	data, err := method.EncodeCall(values...)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Println(common.HexEncode(data))
	return nil
}
