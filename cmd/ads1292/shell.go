package main

import (
	"context"
	"encoding/hex"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ads1292"
	"github.com/mklimuk/ads1292/cmd/ads1292/console"
)

var shellCmd = cli.Command{
	Name:  "shell",
	Usage: "interactive register shell",
	Flags: deviceFlags,
	Action: func(c *cli.Context) error {
		ctx := context.Background()
		dev, closeAll, err := openDevice(ctx, c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeAll()

		rl, err := readline.New(console.Bold("ads1292> "))
		if err != nil {
			return console.Exit(1, "could not open terminal: %v", err)
		}
		defer func() { _ = rl.Close() }()

		console.Print(console.Faint("commands: get <reg>, set <reg> <hex>, cmd <name>, read, exit"))
		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt || err == io.EOF {
				return nil
			}
			if err != nil {
				return console.Exit(1, "%v", err)
			}
			if done := eval(ctx, dev, strings.Fields(line)); done {
				return nil
			}
		}
	},
}

var commandNames = map[string]ads1292.Command{
	"wakeup":    ads1292.Wakeup,
	"standby":   ads1292.Standby,
	"reset":     ads1292.Reset,
	"start":     ads1292.Start,
	"stop":      ads1292.Stop,
	"offsetcal": ads1292.OffsetCal,
}

func eval(ctx context.Context, dev *ads1292.ADS1292, fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "exit", "quit":
		return true
	case "get":
		if len(fields) != 2 {
			console.Error("usage: get <reg>")
			return false
		}
		reg, ok := ads1292.RegisterByName(fields[1])
		if !ok {
			console.Errorf("unknown register: %s", fields[1])
			return false
		}
		value, err := dev.ReadRegister(ctx, reg)
		if err != nil {
			console.Errorf("read failed: %v", err)
			return false
		}
		console.Printf("%s: %#02x\n", reg, value)
	case "set":
		if len(fields) != 3 {
			console.Error("usage: set <reg> <hex>")
			return false
		}
		reg, ok := ads1292.RegisterByName(fields[1])
		if !ok {
			console.Errorf("unknown register: %s", fields[1])
			return false
		}
		raw, err := hex.DecodeString(fields[2])
		if err != nil || len(raw) != 1 {
			console.Errorf("could not decode value: %s", fields[2])
			return false
		}
		if err := dev.WriteRegister(ctx, reg, raw[0]); err != nil {
			console.Errorf("write failed: %v", err)
			return false
		}
		console.Printf("%s: %#02x\n", reg, raw[0])
	case "cmd":
		if len(fields) != 2 {
			console.Error("usage: cmd <name>")
			return false
		}
		command, ok := commandNames[strings.ToLower(fields[1])]
		if !ok {
			console.Errorf("unknown command: %s", fields[1])
			return false
		}
		if err := dev.SendCommand(ctx, command); err != nil {
			console.Errorf("command failed: %v", err)
			return false
		}
		console.Infof("sent %s", command)
	case "read":
		frame, err := dev.ReadData(ctx)
		if err != nil {
			console.Errorf("read failed: %v", err)
			return false
		}
		console.Print(frame.String())
	default:
		console.Errorf("unknown input: %s", fields[0])
	}
	return false
}
