package spi

import (
	"fmt"

	"github.com/mklimuk/ads1292"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

var _ ads1292.ChipSelect = &Pin{}

// Pin drives the nCS line through a periph.io GPIO pin.
type Pin struct {
	pin gpio.PinIO
}

// NewPin resolves a GPIO pin by name (e.g. "GPIO22").
func NewPin(name string) (*Pin, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no such gpio pin: %s", name)
	}
	return &Pin{pin: pin}, nil
}

func (p *Pin) SetHigh() error {
	return p.pin.Out(gpio.High)
}

func (p *Pin) SetLow() error {
	return p.pin.Out(gpio.Low)
}
