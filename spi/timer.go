package spi

import (
	"fmt"
	"time"

	"github.com/mklimuk/ads1292"
)

var _ ads1292.Timer = &TickTimer{}

// TickTimer implements the countdown timer capability on a wall-clock
// ticker. The embedded targets the original chip timing was calibrated for
// run a 500 kHz timer; host kernels cannot tick that fast, so the interval
// is configurable and the resulting waits are conservative rather than
// exact.
type TickTimer struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewTickTimer creates a timer expiring every interval. A zero interval
// defaults to 100 microseconds.
func NewTickTimer(interval time.Duration) *TickTimer {
	if interval == 0 {
		interval = 100 * time.Microsecond
	}
	return &TickTimer{interval: interval}
}

func (t *TickTimer) Start() {
	if t.ticker != nil {
		t.ticker.Reset(t.interval)
		return
	}
	t.ticker = time.NewTicker(t.interval)
}

func (t *TickTimer) Wait() error {
	if t.ticker == nil {
		return fmt.Errorf("timer not started")
	}
	<-t.ticker.C
	return nil
}

// Stop releases the underlying ticker.
func (t *TickTimer) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
	}
}
