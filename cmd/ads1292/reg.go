package main

import (
	"context"
	"encoding/hex"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ads1292"
	"github.com/mklimuk/ads1292/cmd/ads1292/console"
)

var regCmd = cli.Command{
	Name:  "reg",
	Usage: "register access",
	Subcommands: []*cli.Command{
		&regGetCmd,
		&regSetCmd,
	},
}

var regGetCmd = cli.Command{
	Name:      "get",
	Usage:     "read a register by its datasheet name",
	ArgsUsage: "<register>",
	Flags:     deviceFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return console.Exit(1, "expected 1 argument, got %d", c.NArg())
		}
		reg, ok := ads1292.RegisterByName(c.Args().Get(0))
		if !ok {
			return console.Exit(1, "unknown register: %s", c.Args().Get(0))
		}
		ctx := context.Background()
		dev, closeAll, err := openDevice(ctx, c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeAll()
		value, err := dev.ReadRegister(ctx, reg)
		if err != nil {
			return console.Exit(1, "error reading %s: %s", reg, console.Red(err))
		}
		console.Printf("%s: %#02x\n", reg, value)
		return nil
	},
}

var regSetCmd = cli.Command{
	Name:      "set",
	Usage:     "write a register by its datasheet name",
	ArgsUsage: "<register> <hex value>",
	Flags:     deviceFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
		}
		reg, ok := ads1292.RegisterByName(c.Args().Get(0))
		if !ok {
			return console.Exit(1, "unknown register: %s", c.Args().Get(0))
		}
		raw, err := hex.DecodeString(c.Args().Get(1))
		if err != nil || len(raw) != 1 {
			return console.Exit(1, "could not decode value: %s", c.Args().Get(1))
		}
		confirmed, err := console.YesOrNo(console.Yellow("overwrite " + reg.String() + "?"))
		if err != nil {
			return console.Exit(1, "%v", err)
		}
		if !confirmed {
			console.Print("aborted")
			return nil
		}
		ctx := context.Background()
		dev, closeAll, err := openDevice(ctx, c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeAll()
		if err := dev.WriteRegister(ctx, reg, raw[0]); err != nil {
			return console.Exit(1, "error writing %s: %s", reg, console.Red(err))
		}
		console.Printf("%s: %#02x\n", reg, raw[0])
		return nil
	},
}
