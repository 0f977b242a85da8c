package ads1292

import "context"

// DataStream pulls sample frames while the device is in read data
// continuous mode. The stream never ends on its own; the caller must call
// Close to send SDATAC and get the controller back. Dropping a stream
// without Close leaves the device in continuous mode.
type DataStream struct {
	dev    *ADS1292
	closed bool
}

// Next reads the next sample frame. Each pull is one timed 9-byte
// transaction; no read command is sent.
func (s *DataStream) Next(ctx context.Context) (SampleFrame, error) {
	var frame SampleFrame
	if s.closed {
		return frame, ErrStreamClosed
	}
	if err := s.dev.spi.Transfer(ctx, frame.Data[:]); err != nil {
		return frame, err
	}
	return frame, nil
}

// Close sends the SDATAC command and returns the controller to command
// mode. The controller is returned even when the command write fails, so
// the caller can retry or release the transport.
func (s *DataStream) Close(ctx context.Context) (*ADS1292, error) {
	if s.closed {
		return s.dev, ErrStreamClosed
	}
	s.closed = true
	s.dev.streaming = false
	if err := s.dev.sendCommand(ctx, StopContinuous); err != nil {
		return s.dev, err
	}
	return s.dev, nil
}
