package adapter

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/karalabe/hid"

	"github.com/mklimuk/ads1292"
)

const VendorID = 0x04D8
const ProductID = 0x00DE

// HID command codes (MCP2210 datasheet chapter 3)
const (
	cmdTransferSPI  = 0x42
	cmdSetGPIOValue = 0x30
	cmdGetGPIOValue = 0x31
)

// SPI transfer engine status codes
const (
	statusOK         = 0x00
	statusBusBusy    = 0xF7
	statusInProgress = 0xF8

	engineFinished = 0x10
)

// One HID packet carries at most 60 bytes of SPI payload; every frame the
// ads1292 core produces fits in a single packet.
const maxPayload = 60

var ErrBusBusy = errors.New("spi engine is busy (external owner holds the bus)")
var ErrFrameTooLong = fmt.Errorf("frame exceeds %d bytes", maxPayload)

var _ ads1292.SPIBus = &MCP2210{}
var _ ads1292.ChipSelect = &MCP2210{}

// MCP2210 is a Microchip USB-to-SPI bridge reachable over USB HID. It
// implements both the bus and the chip-select capabilities: the chip-select
// line is a GP pin configured for GPIO operation so the driver core can
// sequence it around each transaction.
type MCP2210 struct {
	mx           sync.Mutex
	dev          *hid.Device
	request      []byte
	response     []byte
	responseWait time.Duration
	pollLimit    int

	csMask    uint16
	gpioValue uint16
}

// NewMCP2210 creates a bridge using the given GP pin (0-8) as the
// chip-select line.
func NewMCP2210(csPin int) *MCP2210 {
	return &MCP2210{
		request:      make([]byte, 64),
		response:     make([]byte, 64),
		responseWait: 2 * time.Millisecond,
		pollLimit:    100,
		csMask:       1 << csPin,
		gpioValue:    0xFFFF,
	}
}

// Init opens the HID device and raises the chip-select pin.
func (d *MCP2210) Init() error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if d.dev != nil {
		return nil
	}
	devs := hid.Enumerate(VendorID, ProductID)
	if len(devs) == 0 {
		return fmt.Errorf("MCP2210 device not found")
	}
	if len(devs) > 1 {
		return fmt.Errorf("ambiguous device identification")
	}
	dev, err := devs[0].Open()
	if err != nil {
		return fmt.Errorf("error opening device: %w", err)
	}
	d.dev = dev
	return d.setGPIO(d.gpioValue)
}

// Close releases the HID device.
func (d *MCP2210) Close() error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if d.dev == nil {
		return nil
	}
	err := d.dev.Close()
	d.dev = nil
	return err
}

func (d *MCP2210) Transfer(ctx context.Context, buffer []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if len(buffer) > maxPayload {
		return ErrFrameTooLong
	}
	rx, err := d.transfer(ctx, buffer)
	if err != nil {
		return err
	}
	copy(buffer, rx)
	return nil
}

func (d *MCP2210) Write(ctx context.Context, buffer []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if len(buffer) > maxPayload {
		return ErrFrameTooLong
	}
	_, err := d.transfer(ctx, buffer)
	return err
}

func (d *MCP2210) SetHigh() error {
	d.mx.Lock()
	defer d.mx.Unlock()
	return d.setGPIO(d.gpioValue | d.csMask)
}

func (d *MCP2210) SetLow() error {
	d.mx.Lock()
	defer d.mx.Unlock()
	return d.setGPIO(d.gpioValue &^ d.csMask)
}

// transfer pushes the payload into the SPI engine and polls with empty
// transfer requests until the engine reports completion, collecting the
// received bytes along the way.
func (d *MCP2210) transfer(ctx context.Context, payload []byte) ([]byte, error) {
	rx := make([]byte, 0, len(payload))
	pending := payload
	for i := 0; ; i++ {
		if i >= d.pollLimit {
			return nil, fmt.Errorf("spi engine did not finish after %d polls", d.pollLimit)
		}
		d.resetBuffers()
		d.request[0] = cmdTransferSPI
		d.request[1] = byte(len(pending))
		copy(d.request[4:], pending)
		if err := d.send(ctx, true); err != nil {
			return nil, fmt.Errorf("spi transfer request failed: %w", err)
		}
		switch d.response[1] {
		case statusOK:
			pending = nil
		case statusBusBusy:
			return nil, ErrBusBusy
		case statusInProgress:
			// engine accepted nothing this round, resend
		default:
			return nil, fmt.Errorf("spi transfer rejected: %#x", d.response[1])
		}
		if n := int(d.response[2]); n > 0 {
			rx = append(rx, d.response[4:4+n]...)
		}
		if d.response[3] == engineFinished && len(rx) >= len(payload) {
			return rx[:len(payload)], nil
		}
		time.Sleep(d.responseWait)
	}
}

func (d *MCP2210) setGPIO(value uint16) error {
	d.resetBuffers()
	d.request[0] = cmdSetGPIOValue
	binary.LittleEndian.PutUint16(d.request[4:6], value)
	if err := d.send(context.Background(), true); err != nil {
		return fmt.Errorf("set GPIO value command failed: %w", err)
	}
	d.gpioValue = value
	return nil
}

func (d *MCP2210) send(ctx context.Context, response bool) error {
	if d.dev == nil {
		return fmt.Errorf("adapter not initialized")
	}
	slog.Debug("sending message to adapter", "dump", hex.Dump(d.request))
	n, err := d.dev.Write(d.request)
	if err != nil {
		return fmt.Errorf("could not write request: %w", err)
	}
	if n != 64 {
		return fmt.Errorf("short write: %d", n)
	}
	if !response {
		return nil
	}
	n, err = d.dev.Read(d.response)
	if err != nil {
		return fmt.Errorf("could not read response: %w", err)
	}
	if n != 64 {
		return fmt.Errorf("short read: %d", n)
	}
	slog.Debug("read message from adapter", "dump", hex.Dump(d.response))
	if d.response[0] != d.request[0] {
		return fmt.Errorf("response does not match command: %#x", d.response[0])
	}
	return nil
}

func (d *MCP2210) resetBuffers() {
	resetBuffer(d.request)
	resetBuffer(d.response)
}

func resetBuffer(buf []byte) {
	for i := range buf {
		buf[i] = 0x00
	}
}
