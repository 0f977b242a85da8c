package ads1292

import "context"

// Chip-select timing (timer ticks, 500 kHz timer assumed).
const (
	settleTicks  = 20
	releaseTicks = 10
)

// Transport performs single bus transactions against one device, bracketing
// every exchange with the chip-select sequencing and settle times the
// ADS129xx family requires. The bus, pin and timer are exclusively owned by
// one Transport; transactions must not interleave.
type Transport struct {
	bus   SPIBus
	cs    ChipSelect
	timer Timer
}

// NewTransport wraps a bus, a chip-select pin and a timer. The chip-select
// line is deasserted and the timer started before the transport is handed
// out.
func NewTransport(bus SPIBus, cs ChipSelect, timer Timer) (*Transport, error) {
	if err := cs.SetHigh(); err != nil {
		return nil, &PinError{Err: err}
	}
	timer.Start()
	return &Transport{bus: bus, cs: cs, timer: timer}, nil
}

// Transfer performs one full-duplex transaction: nCS low, 20 ticks, the
// exchange (buffer is overwritten with the response), 20 ticks, nCS high,
// 10 ticks. The chip-select line is released even when the exchange fails;
// the exchange error is returned after the line is restored.
func (t *Transport) Transfer(ctx context.Context, buffer []byte) error {
	if err := t.cs.SetLow(); err != nil {
		return &PinError{Err: err}
	}
	res := t.exchange(ctx, buffer, false)
	if err := t.cs.SetHigh(); err != nil {
		return &PinError{Err: err}
	}
	if err := t.Wait(releaseTicks); err != nil {
		return err
	}
	return res
}

// Write performs one write-only transaction with the same chip-select and
// timing discipline as Transfer. Response bytes are discarded.
func (t *Transport) Write(ctx context.Context, buffer []byte) error {
	if err := t.cs.SetLow(); err != nil {
		return &PinError{Err: err}
	}
	res := t.exchange(ctx, buffer, true)
	if err := t.cs.SetHigh(); err != nil {
		return &PinError{Err: err}
	}
	if err := t.Wait(releaseTicks); err != nil {
		return err
	}
	return res
}

// FastTransfer performs a full-duplex transaction without the inter-phase
// waits. Only valid while the device is in continuous acquisition mode,
// where the regular timing overhead is unacceptable. The caller must insert
// a delay of at least 50 microseconds before any subsequent bus operation.
func (t *Transport) FastTransfer(ctx context.Context, buffer []byte) error {
	if err := t.cs.SetLow(); err != nil {
		return &PinError{Err: err}
	}
	res := t.bus.Transfer(ctx, buffer)
	if err := t.cs.SetHigh(); err != nil {
		return &PinError{Err: err}
	}
	if res != nil {
		return &BusError{Err: res}
	}
	return nil
}

// Wait blocks until ticks timer expirations have elapsed.
func (t *Transport) Wait(ticks int) error {
	for i := 0; i < ticks; i++ {
		if err := t.timer.Wait(); err != nil {
			return &WaitError{Err: err}
		}
	}
	return nil
}

func (t *Transport) exchange(ctx context.Context, buffer []byte, writeOnly bool) error {
	if err := t.Wait(settleTicks); err != nil {
		return err
	}
	var err error
	if writeOnly {
		err = t.bus.Write(ctx, buffer)
	} else {
		err = t.bus.Transfer(ctx, buffer)
	}
	if err != nil {
		return &BusError{Err: err}
	}
	return t.Wait(settleTicks)
}
