package ads1292

import "context"

// SPIBus is the serial bus capability consumed by the driver core.
// Implementations live in the spi and adapter packages.
type SPIBus interface {
	// Transfer performs a full-duplex exchange. The buffer is clocked out
	// and overwritten with the bytes received from the device.
	Transfer(ctx context.Context, buffer []byte) error
	// Write clocks the buffer out and discards the response.
	Write(ctx context.Context, buffer []byte) error
}

// ChipSelect drives the dedicated nCS line of one device (active low).
type ChipSelect interface {
	SetHigh() error
	SetLow() error
}

// Timer is a countdown timer capability. Start begins the periodic
// countdown, Wait blocks until the next expiry.
type Timer interface {
	Start()
	Wait() error
}
