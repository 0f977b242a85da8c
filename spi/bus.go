package spi

import (
	"context"
	"fmt"

	"github.com/mklimuk/ads1292"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var _ ads1292.SPIBus = &GenericBus{}

// GenericBus drives the ADS1292 through any periph.io SPI port. The
// dedicated chip-select pin is handled separately (see Pin) so the driver
// can honor the settle times around each transaction; pick a port name
// whose hardware CS stays unused or unconnected.
type GenericBus struct {
	port spi.PortCloser
	conn spi.Conn
}

// NewGenericBus opens a periph.io SPI port by name ("" selects the first
// available one). The connection uses mode 1 (CPOL=0, CPHA=1) as the
// datasheet requires.
func NewGenericBus(dev string, speed physic.Frequency) (*GenericBus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	port, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("could not open spi port: %w", err)
	}
	if speed == 0 {
		speed = physic.MegaHertz
	}
	conn, err := port.Connect(speed, spi.Mode1, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("could not connect to spi port: %w", err)
	}
	return &GenericBus{port: port, conn: conn}, nil
}

func (b *GenericBus) Transfer(ctx context.Context, buffer []byte) error {
	tx := make([]byte, len(buffer))
	copy(tx, buffer)
	err := b.conn.Tx(tx, buffer)
	if err != nil {
		return fmt.Errorf("could not transfer on spi bus: %w", err)
	}
	return nil
}

func (b *GenericBus) Write(ctx context.Context, buffer []byte) error {
	err := b.conn.Tx(buffer, nil)
	if err != nil {
		return fmt.Errorf("could not write to spi bus: %w", err)
	}
	return nil
}

func (b *GenericBus) Close() error {
	return b.port.Close()
}
