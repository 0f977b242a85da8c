package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/ads1292"
	"github.com/mklimuk/ads1292/adapter"
	"github.com/mklimuk/ads1292/spi"
)

// flags shared by every command talking to the chip
var deviceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "adapter",
		Value: "periph",
		Usage: "bus backend: periph or mcp2210",
	},
	&cli.StringFlag{
		Name:  "bus",
		Value: "",
		Usage: "spi port name (periph backend, empty selects the first one)",
	},
	&cli.StringFlag{
		Name:  "cs",
		Value: "GPIO22",
		Usage: "chip-select gpio pin name (periph backend)",
	},
	&cli.IntFlag{
		Name:  "cs-pin",
		Value: 0,
		Usage: "chip-select GP pin number (mcp2210 backend)",
	},
	&cli.DurationFlag{
		Name:  "tick",
		Value: 100 * time.Microsecond,
		Usage: "timer tick interval",
	},
	&cli.StringFlag{
		Name:  "config",
		Usage: "yaml file with acquisition settings applied after init",
	},
}

func openDevice(ctx context.Context, c *cli.Context) (*ads1292.ADS1292, func(), error) {
	var bus ads1292.SPIBus
	var cs ads1292.ChipSelect
	cleanup := func() {}

	switch c.String("adapter") {
	case "mcp2210":
		bridge := adapter.NewMCP2210(c.Int("cs-pin"))
		if err := bridge.Init(); err != nil {
			return nil, nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		bus, cs = bridge, bridge
		cleanup = func() { _ = bridge.Close() }
	case "periph":
		genericBus, err := spi.NewGenericBus(c.String("bus"), 0)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open spi bus: %w", err)
		}
		pin, err := spi.NewPin(c.String("cs"))
		if err != nil {
			_ = genericBus.Close()
			return nil, nil, fmt.Errorf("could not open chip-select pin: %w", err)
		}
		bus, cs = genericBus, pin
		cleanup = func() { _ = genericBus.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown adapter: %s", c.String("adapter"))
	}

	timer := spi.NewTickTimer(c.Duration("tick"))
	transport, err := ads1292.NewTransport(bus, cs, timer)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("could not create transport: %w", err)
	}
	dev, err := ads1292.Init(ctx, transport)
	if err != nil {
		timer.Stop()
		cleanup()
		return nil, nil, fmt.Errorf("could not initialize device: %w", err)
	}
	closeAll := func() {
		timer.Stop()
		cleanup()
	}
	if path := c.String("config"); path != "" {
		if err := applyConfigFile(ctx, dev, path); err != nil {
			closeAll()
			return nil, nil, err
		}
	}
	return dev, closeAll, nil
}

func applyConfigFile(ctx context.Context, dev *ads1292.ADS1292, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	var conf ads1292.Config
	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}
	if err := conf.Apply(ctx, dev); err != nil {
		return fmt.Errorf("could not apply config: %w", err)
	}
	return nil
}
