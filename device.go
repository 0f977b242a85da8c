package ads1292

import "context"

// ADS1292 represents one ADS1292 ECG front end hanging off a Transport.
// Typical usage:
//
//	dev, err := ads1292.Init(ctx, transport)
//	frame, err := dev.ReadData(ctx)
//
// or, for continuous acquisition:
//
//	stream, err := dev.Stream(ctx)
//	frame, err := stream.Next(ctx)
//	dev, err = stream.Close(ctx)
type ADS1292 struct {
	spi       *Transport
	streaming bool
}

// Init brings the device into command mode and validates its identity. The
// chip powers up in read data continuous mode, so SDATAC is sent
// unconditionally before anything else is assumed. A failed identity check
// returns ErrBootFailure without touching any further register.
func Init(ctx context.Context, spi *Transport) (*ADS1292, error) {
	a := &ADS1292{spi: spi}
	if err := a.sendCommand(ctx, StopContinuous); err != nil {
		return nil, err
	}
	if err := a.Wait(40); err != nil {
		return nil, err
	}
	id, err := a.readRegister(ctx, RegID)
	if err != nil {
		return nil, err
	}
	// bit 4 must be high in ID
	if id&0x10 != 0x10 {
		return nil, ErrBootFailure
	}
	return a, nil
}

// Wait blocks for the given number of timer ticks. Used to space commands.
func (a *ADS1292) Wait(ticks int) error {
	return a.spi.Wait(ticks)
}

// ReadData sends the RDATA command and reads a single sample frame.
func (a *ADS1292) ReadData(ctx context.Context) (SampleFrame, error) {
	var frame SampleFrame
	if a.streaming {
		return frame, ErrStreaming
	}
	if err := a.sendCommand(ctx, ReadData); err != nil {
		return frame, err
	}
	if err := a.spi.Transfer(ctx, frame.Data[:]); err != nil {
		return frame, err
	}
	return frame, nil
}

// ReadRaw reads a single sample frame without sending the RDATA command
// first, skipping the usual inter-phase delays. Only valid while the device
// is in read data continuous mode. The caller must leave at least 50
// microseconds between ReadRaw calls and before any other bus operation.
func (a *ADS1292) ReadRaw(ctx context.Context) (SampleFrame, error) {
	var frame SampleFrame
	if err := a.spi.FastTransfer(ctx, frame.Data[:]); err != nil {
		return frame, err
	}
	return frame, nil
}

// Stream sends the RDATAC command and returns a DataStream owning this
// controller. Command-mode operations return ErrStreaming until the stream
// is closed.
func (a *ADS1292) Stream(ctx context.Context) (*DataStream, error) {
	if a.streaming {
		return nil, ErrStreaming
	}
	if err := a.sendCommand(ctx, ReadContinuous); err != nil {
		return nil, err
	}
	a.streaming = true
	return &DataStream{dev: a}, nil
}

// Release returns the wrapped Transport.
func (a *ADS1292) Release() *Transport {
	return a.spi
}
