package ads1292

import "fmt"

// ErrBootFailure is returned by Init when the ID register does not report a
// supported device. This is a validation failure, not a transport error.
var ErrBootFailure = fmt.Errorf("device identity check failed (bit 4 of the ID register is not set)")

// ErrStreaming is returned by command-mode operations while a data stream is
// open. Close the stream first.
var ErrStreaming = fmt.Errorf("device is in continuous acquisition mode")

// ErrStreamClosed is returned by a data stream after Close has been called.
var ErrStreamClosed = fmt.Errorf("data stream is closed")

// BusError wraps a failure reported by the underlying SPI bus exchange.
type BusError struct {
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("spi bus error: %s", e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// PinError wraps a failure driving the chip-select line.
type PinError struct {
	Err error
}

func (e *PinError) Error() string {
	return fmt.Sprintf("chip select error: %s", e.Err)
}

func (e *PinError) Unwrap() error {
	return e.Err
}

// WaitError wraps a timer wait that failed to complete.
type WaitError struct {
	Err error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("timer wait error: %s", e.Err)
}

func (e *WaitError) Unwrap() error {
	return e.Err
}
