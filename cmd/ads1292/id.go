package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ads1292"
	"github.com/mklimuk/ads1292/cmd/ads1292/console"
)

var idCmd = cli.Command{
	Name:  "id",
	Usage: "initialize the device and print the ID register",
	Flags: deviceFlags,
	Action: func(c *cli.Context) error {
		ctx := context.Background()
		dev, closeAll, err := openDevice(ctx, c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeAll()
		id, err := dev.ReadRegister(ctx, ads1292.RegID)
		if err != nil {
			return console.Exit(1, "error reading ID register: %s", console.Red(err))
		}
		console.PInfof(console.PictoChip, "device ID: %s", console.White(id))
		return nil
	},
}
