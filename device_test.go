package ads1292

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deviceSim scripts the byte-level behavior of a simulated ADS1292 behind a
// MockBus: RREG frames are answered from the register map, 9-byte transfers
// return the prepared frame, every write is recorded.
type deviceSim struct {
	id        byte
	registers map[Register]byte
	frame     [FrameSize]byte
	writes    [][]byte
	transfers int
}

func (s *deviceSim) bus() *MockBus {
	return &MockBus{
		WriteBehavior: func(ctx context.Context, buffer []byte) error {
			recorded := make([]byte, len(buffer))
			copy(recorded, buffer)
			s.writes = append(s.writes, recorded)
			return nil
		},
		TransferBehavior: func(ctx context.Context, buffer []byte) error {
			s.transfers++
			switch {
			case len(buffer) == 4 && Command(buffer[0]&0xE0) == ReadReg:
				reg := Register(buffer[0] &^ ReadReg.Word())
				if reg == RegID {
					buffer[2] = s.id
				} else {
					buffer[2] = s.registers[reg]
				}
			case len(buffer) == FrameSize:
				copy(buffer, s.frame[:])
			}
			return nil
		},
	}
}

func (s *deviceSim) transport(t *testing.T) *Transport {
	t.Helper()
	transport, err := NewTransport(s.bus(), &MockPin{}, &MockTimer{})
	require.NoError(t, err)
	return transport
}

// lastWrite returns the most recent recorded write frame.
func (s *deviceSim) lastWrite() []byte {
	if len(s.writes) == 0 {
		return nil
	}
	return s.writes[len(s.writes)-1]
}

func TestInit(t *testing.T) {
	sim := &deviceSim{id: 0x53} // ADS1292 revision ID
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)
	require.NotNil(t, dev)
	// the device powers up in continuous mode, SDATAC must come first
	require.Len(t, sim.writes, 1)
	assert.Equal(t, []byte{StopContinuous.Word()}, sim.writes[0])
	assert.Equal(t, 1, sim.transfers)
}

func TestInit_BootFailure(t *testing.T) {
	sim := &deviceSim{id: 0x00} // bit 4 clear
	dev, err := Init(context.Background(), sim.transport(t))
	assert.Nil(t, dev)
	assert.ErrorIs(t, err, ErrBootFailure)
	// no further register access after the failed identity check
	assert.Equal(t, 1, sim.transfers)
	assert.Len(t, sim.writes, 1)
}

func TestReadRegister_FrameLayout(t *testing.T) {
	sim := &deviceSim{id: 0x53, registers: map[Register]byte{RegConfig2: 0xA3}}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)
	value, err := dev.ReadRegister(context.Background(), RegConfig2)
	require.NoError(t, err)
	assert.Equal(t, byte(0xA3), value)
}

func TestWriteRegister_FrameLayout(t *testing.T) {
	sim := &deviceSim{id: 0x53}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)
	require.NoError(t, dev.WriteRegister(context.Background(), RegCh1Set, 0x64))
	assert.Equal(t, []byte{WriteReg.Word() | RegCh1Set.Addr(), 0x00, 0x64}, sim.lastWrite())
}

func TestSendCommand(t *testing.T) {
	sim := &deviceSim{id: 0x53}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)
	require.NoError(t, dev.SendCommand(context.Background(), Start))
	assert.Equal(t, []byte{Start.Word()}, sim.lastWrite())
}

func TestReadData(t *testing.T) {
	sim := &deviceSim{id: 0x53}
	sim.frame = [FrameSize]byte{0x00, 0x00, 0x00, 0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)
	frame, err := dev.ReadData(context.Background())
	require.NoError(t, err)
	// the single-read command precedes the frame transfer
	assert.Equal(t, []byte{ReadData.Word()}, sim.lastWrite())
	assert.Equal(t, ChannelData{0x12, 0x34, 0x56}, frame.Channel1())
	assert.Equal(t, ChannelData{0x78, 0x9A, 0xBC}, frame.Channel2())
}

func TestReadRaw_NoCommand(t *testing.T) {
	sim := &deviceSim{id: 0x53}
	sim.frame = [FrameSize]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0xFF, 0xFF, 0xFF}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)
	writes := len(sim.writes)
	frame, err := dev.ReadRaw(context.Background())
	require.NoError(t, err)
	assert.Len(t, sim.writes, writes)
	assert.Equal(t, int32(1), frame.Channel1().Int32())
	assert.Equal(t, int32(-1), frame.Channel2().Int32())
}

func TestTypedAccessors(t *testing.T) {
	sim := &deviceSim{id: 0x53, registers: map[Register]byte{
		RegConfig1: 0x02,
		RegCh2Set:  0x60,
	}}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)

	conf1, err := dev.Config1(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SPS500, conf1.Oversampling())
	assert.False(t, conf1.SingleShot())

	ch2, err := dev.Channel2Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Gain12, ch2.Gain())
	assert.Equal(t, NormalElectrodeInput, ch2.Mux())

	require.NoError(t, dev.SetChannel2Settings(context.Background(), ch2.WithGain(Gain4)))
	assert.Equal(t, []byte{WriteReg.Word() | RegCh2Set.Addr(), 0x00, 0x40}, sim.lastWrite())
}

func TestRelease(t *testing.T) {
	sim := &deviceSim{id: 0x53}
	transport := sim.transport(t)
	dev, err := Init(context.Background(), transport)
	require.NoError(t, err)
	assert.Same(t, transport, dev.Release())
}
