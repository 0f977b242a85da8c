package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ads1292"
	"github.com/mklimuk/ads1292/cmd/ads1292/console"
)

var streamCmd = cli.Command{
	Name:  "stream",
	Usage: "acquire sample frames in continuous mode",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Value: 10,
			Usage: "number of frames to acquire",
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
		if err := dev.Wait(200); err != nil {
			return console.Exit(1, "error waiting for settle: %s", console.Red(err))
		}
		stream, err := dev.Stream(ctx)
		if err != nil {
			return console.Exit(1, "error entering continuous mode: %s", console.Red(err))
		}
		for i := 0; i < c.Int("count"); i++ {
			frame, err := stream.Next(ctx)
			if err != nil {
				console.Errorf("error reading frame %d: %s", i, console.Red(err))
				break
			}
			console.Printf("%6d  ch1: %12.6f mV  ch2: %12.6f mV  %s\n",
				i, frame.Channel1().Millivolts(), frame.Channel2().Millivolts(), frame.LeadOffStatus())
		}
		if _, err := stream.Close(ctx); err != nil {
			return console.Exit(1, "error leaving continuous mode: %s", console.Red(err))
		}
		console.PInfof(console.PictoHeartbeat, "stream closed")
		return nil
	},
}
