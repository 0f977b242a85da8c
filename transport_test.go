package ads1292

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventLog records chip-select transitions, exchanges and timer ticks in
// the order the transport performs them.
type eventLog struct {
	events []string
}

func (l *eventLog) record(event string) {
	l.events = append(l.events, event)
}

func (l *eventLog) count(event string) int {
	n := 0
	for _, e := range l.events {
		if e == event {
			n++
		}
	}
	return n
}

func newLoggedTransport(t *testing.T, log *eventLog, exchange error) *Transport {
	t.Helper()
	bus := &MockBus{
		TransferBehavior: func(ctx context.Context, buffer []byte) error {
			log.record("transfer")
			return exchange
		},
		WriteBehavior: func(ctx context.Context, buffer []byte) error {
			log.record("write")
			return exchange
		},
	}
	pin := &MockPin{
		LowBehavior:  func() error { log.record("cs_low"); return nil },
		HighBehavior: func() error { log.record("cs_high"); return nil },
	}
	timer := &MockTimer{
		WaitBehavior: func() error { log.record("tick"); return nil },
	}
	transport, err := NewTransport(bus, pin, timer)
	require.NoError(t, err)
	require.True(t, timer.Started)
	// drop the construction-time cs_high to keep expectations focused on
	// the transaction
	log.events = nil
	return transport
}

func ticks(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "tick"
	}
	return out
}

func TestTransport_TransactionSequence(t *testing.T) {
	tests := []struct {
		name     string
		exchange string
		run      func(tr *Transport) error
	}{
		{"transfer", "transfer", func(tr *Transport) error {
			return tr.Transfer(context.Background(), make([]byte, 4))
		}},
		{"write", "write", func(tr *Transport) error {
			return tr.Write(context.Background(), []byte{0x08})
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var log eventLog
			tr := newLoggedTransport(t, &log, nil)
			require.NoError(t, test.run(tr))
			var expected []string
			expected = append(expected, "cs_low")
			expected = append(expected, ticks(20)...)
			expected = append(expected, test.exchange)
			expected = append(expected, ticks(20)...)
			expected = append(expected, "cs_high")
			expected = append(expected, ticks(10)...)
			assert.Equal(t, expected, log.events)
		})
	}
}

func TestTransport_ReleasesChipSelectOnBusFailure(t *testing.T) {
	var log eventLog
	tr := newLoggedTransport(t, &log, fmt.Errorf("exchange interrupted"))
	err := tr.Transfer(context.Background(), make([]byte, 9))
	require.Error(t, err)
	var busErr *BusError
	assert.ErrorAs(t, err, &busErr)
	assert.EqualError(t, busErr.Err, "exchange interrupted")
	// exactly one assert followed by exactly one deassert
	assert.Equal(t, 1, log.count("cs_low"))
	assert.Equal(t, 1, log.count("cs_high"))
	low, high := -1, -1
	for i, e := range log.events {
		switch e {
		case "cs_low":
			low = i
		case "cs_high":
			high = i
		}
	}
	assert.Less(t, low, high)
	// trailing guard ticks still happen after release
	assert.Equal(t, "tick", log.events[len(log.events)-1])
}

func TestTransport_FastTransferSkipsWaits(t *testing.T) {
	var log eventLog
	tr := newLoggedTransport(t, &log, nil)
	require.NoError(t, tr.FastTransfer(context.Background(), make([]byte, 9)))
	assert.Equal(t, []string{"cs_low", "transfer", "cs_high"}, log.events)
}

func TestTransport_FastTransferReleasesChipSelect(t *testing.T) {
	var log eventLog
	tr := newLoggedTransport(t, &log, fmt.Errorf("exchange interrupted"))
	err := tr.FastTransfer(context.Background(), make([]byte, 9))
	var busErr *BusError
	assert.ErrorAs(t, err, &busErr)
	assert.Equal(t, []string{"cs_low", "transfer", "cs_high"}, log.events)
}

func TestTransport_WaitFailure(t *testing.T) {
	bus := &MockBus{}
	pin := &MockPin{}
	timer := &MockTimer{WaitBehavior: func() error { return fmt.Errorf("timer gone") }}
	tr, err := NewTransport(bus, pin, timer)
	require.NoError(t, err)
	err = tr.Wait(5)
	var waitErr *WaitError
	assert.ErrorAs(t, err, &waitErr)
}

func TestTransport_PinFailureDuringTransfer(t *testing.T) {
	bus := &MockBus{}
	pin := &MockPin{}
	timer := &MockTimer{}
	tr, err := NewTransport(bus, pin, timer)
	require.NoError(t, err)
	pin.LowBehavior = func() error { return fmt.Errorf("pin stuck") }
	err = tr.Transfer(context.Background(), make([]byte, 4))
	var pinErr *PinError
	assert.ErrorAs(t, err, &pinErr)
}

func TestNewTransport_DeassertsChipSelect(t *testing.T) {
	var log eventLog
	pin := &MockPin{
		HighBehavior: func() error { log.record("cs_high"); return nil },
	}
	_, err := NewTransport(&MockBus{}, pin, &MockTimer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"cs_high"}, log.events)
}

func TestNewTransport_PinFailure(t *testing.T) {
	pin := &MockPin{
		HighBehavior: func() error { return fmt.Errorf("pin stuck") },
	}
	_, err := NewTransport(&MockBus{}, pin, &MockTimer{})
	var pinErr *PinError
	assert.ErrorAs(t, err, &pinErr)
}
