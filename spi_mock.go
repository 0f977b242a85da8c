package ads1292

import "context"

// ExchangeBehaviorFunc defines the function signature for mock bus
// transfers and writes.
type ExchangeBehaviorFunc func(ctx context.Context, buffer []byte) error

// PinBehaviorFunc defines the function signature for mock chip-select
// transitions.
type PinBehaviorFunc func() error

// WaitBehaviorFunc defines the function signature for mock timer waits.
type WaitBehaviorFunc func() error

// MockBus is a behavior-driven SPIBus implementation for tests and
// hardware-free development. Nil behaviors succeed and leave the buffer
// untouched.
type MockBus struct {
	TransferBehavior ExchangeBehaviorFunc
	WriteBehavior    ExchangeBehaviorFunc
}

func (m *MockBus) Transfer(ctx context.Context, buffer []byte) error {
	if m.TransferBehavior == nil {
		return nil
	}
	return m.TransferBehavior(ctx, buffer)
}

func (m *MockBus) Write(ctx context.Context, buffer []byte) error {
	if m.WriteBehavior == nil {
		return nil
	}
	return m.WriteBehavior(ctx, buffer)
}

// MockPin is a behavior-driven ChipSelect implementation. Nil behaviors
// succeed.
type MockPin struct {
	HighBehavior PinBehaviorFunc
	LowBehavior  PinBehaviorFunc
}

func (m *MockPin) SetHigh() error {
	if m.HighBehavior == nil {
		return nil
	}
	return m.HighBehavior()
}

func (m *MockPin) SetLow() error {
	if m.LowBehavior == nil {
		return nil
	}
	return m.LowBehavior()
}

// MockTimer is a behavior-driven Timer implementation. A nil wait behavior
// expires immediately.
type MockTimer struct {
	Started      bool
	WaitBehavior WaitBehaviorFunc
}

func (m *MockTimer) Start() {
	m.Started = true
}

func (m *MockTimer) Wait() error {
	if m.WaitBehavior == nil {
		return nil
	}
	return m.WaitBehavior()
}
