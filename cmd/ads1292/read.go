package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ads1292"
	"github.com/mklimuk/ads1292/cmd/ads1292/console"
)

var readCmd = cli.Command{
	Name:  "read",
	Usage: "read a single sample frame",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "temperature",
			Usage: "interpret channel 1 as the internal temperature sensor",
		},
	}, deviceFlags...),
	Action: func(c *cli.Context) error {
		ctx := context.Background()
		dev, closeAll, err := openDevice(ctx, c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeAll()
		if err := dev.SendCommand(ctx, ads1292.Start); err != nil {
			return console.Exit(1, "error starting conversions: %s", console.Red(err))
		}
		// leave the modulator time to settle before the first read
		if err := dev.Wait(200); err != nil {
			return console.Exit(1, "error waiting for settle: %s", console.Red(err))
		}
		frame, err := dev.ReadData(ctx)
		if err != nil {
			return console.Exit(1, "error reading sample: %s", console.Red(err))
		}
		console.Print(frame.String())
		if c.Bool("temperature") {
			console.PInfof(console.PictoThermometer, "%s°C", console.White(frame.Channel1().Temperature()))
			return nil
		}
		console.PInfof(console.PictoWave, "ch1: %s mV, ch2: %s mV",
			console.White(frame.Channel1().Millivolts()), console.White(frame.Channel2().Millivolts()))
		return nil
	},
}
