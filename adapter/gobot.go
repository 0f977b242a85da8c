package adapter

import (
	"context"
	"fmt"

	"gobot.io/x/gobot/v2/drivers/gpio"
	"gobot.io/x/gobot/v2/drivers/spi"

	"github.com/mklimuk/ads1292"
)

var _ ads1292.SPIBus = &GobotSPI{}

// spiOps is the subset of operations we need from the Gobot SPI connection.
type spiOps interface {
	ReadCommandData(command []byte, data []byte) error
	WriteBytes(data []byte) error
}

// GobotSPI adapts a Gobot SPI adaptor to the ads1292 bus capability.
// Tested with the sysfs SPI adaptor, but should work on any board that
// exposes a compliant spi.Connection.
type GobotSPI struct {
	driver *spi.Driver
}

// NewGobotSPI binds the bus to a Gobot SPI adaptor. bus is the board's SPI
// bus name. Additional driver options (e.g. speed) may be supplied as in
// other Gobot SPI drivers.
func NewGobotSPI(adaptor spi.Connector, bus string, opts ...func(spi.Config)) *GobotSPI {
	d := spi.NewDriver(adaptor, bus, opts...)

	// Datasheet limits: mode 1 (CPOL=0, CPHA=1), SCLK period >= 50 ns.
	d.SetMode(1)
	if d.GetSpeedOrDefault(0) == 0 {
		d.SetSpeed(1_000_000)
	}
	return &GobotSPI{driver: d}
}

// Start establishes the SPI bus. Required by the Gobot lifecycle.
func (g *GobotSPI) Start() error { return g.driver.Start() }

// Halt releases the bus.
func (g *GobotSPI) Halt() error { return g.driver.Halt() }

// Transfer emulates a full-duplex exchange over the command/data split the
// Gobot connection exposes. The opcode byte(s) form the command phase; RREG
// frames carry a two-byte header (opcode|address plus count), sample-frame
// reads have no header and clock out zeros only. Header positions in the
// buffer are zeroed since their echo is undefined; the device returns
// nothing useful there anyway.
func (g *GobotSPI) Transfer(ctx context.Context, buffer []byte) error {
	ops, err := g.ops()
	if err != nil {
		return err
	}
	headerLen := 0
	if len(buffer) > 0 {
		switch {
		case ads1292.Command(buffer[0]&0xE0) == ads1292.ReadReg:
			headerLen = 2
		case buffer[0] != 0:
			headerLen = 1
		}
	}
	data := make([]byte, len(buffer)-headerLen)
	if err := ops.ReadCommandData(buffer[:headerLen], data); err != nil {
		return fmt.Errorf("could not transfer spi frame: %w", err)
	}
	for i := 0; i < headerLen; i++ {
		buffer[i] = 0
	}
	copy(buffer[headerLen:], data)
	return nil
}

func (g *GobotSPI) Write(ctx context.Context, buffer []byte) error {
	ops, err := g.ops()
	if err != nil {
		return err
	}
	if err := ops.WriteBytes(buffer); err != nil {
		return fmt.Errorf("could not write spi frame: %w", err)
	}
	return nil
}

func (g *GobotSPI) ops() (spiOps, error) {
	conn := g.driver.Connection()
	ops, ok := conn.(spiOps)
	if !ok {
		return nil, fmt.Errorf("spi connection does not support required operations")
	}
	return ops, nil
}

var _ ads1292.ChipSelect = &GobotPin{}

// GobotPin drives the chip-select line through any Gobot adaptor exposing
// digital writes.
type GobotPin struct {
	writer gpio.DigitalWriter
	pin    string
}

func NewGobotPin(writer gpio.DigitalWriter, pin string) *GobotPin {
	return &GobotPin{writer: writer, pin: pin}
}

func (p *GobotPin) SetHigh() error {
	return p.writer.DigitalWrite(p.pin, 1)
}

func (p *GobotPin) SetLow() error {
	return p.writer.DigitalWrite(p.pin, 0)
}
