package ads1292

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_Apply(t *testing.T) {
	doc := `
sample_rate: 500
channel1:
  gain: 12
  mux: temperature
channel2:
  power_down: true
  gain: 6
  mux: shorted
`
	var conf Config
	require.NoError(t, yaml.Unmarshal([]byte(doc), &conf))
	assert.Equal(t, 500, conf.SampleRate)
	require.NotNil(t, conf.Channel1)
	require.NotNil(t, conf.Channel2)

	sim := &deviceSim{id: 0x53}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)

	require.NoError(t, conf.Apply(context.Background(), dev))
	// SDATAC from Init, then CONFIG1, CH1SET and CH2SET writes
	require.Len(t, sim.writes, 4)
	assert.Equal(t, []byte{WriteReg.Word() | RegConfig1.Addr(), 0, 0x02}, sim.writes[1])
	assert.Equal(t, []byte{WriteReg.Word() | RegCh1Set.Addr(), 0, 0x64}, sim.writes[2])
	assert.Equal(t, []byte{WriteReg.Word() | RegCh2Set.Addr(), 0, 0x81}, sim.writes[3])
}

func TestConfig_ApplyPreservesConfig1Bits(t *testing.T) {
	sim := &deviceSim{id: 0x53, registers: map[Register]byte{RegConfig1: 0b10000110}}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)

	conf := Config{SampleRate: 250}
	require.NoError(t, conf.Apply(context.Background(), dev))
	// rate bits replaced, single-shot bit cleared because the config says so
	assert.Equal(t, []byte{WriteReg.Word() | RegConfig1.Addr(), 0, 0x01}, sim.lastWrite())
}

func TestConfig_ApplyEmpty(t *testing.T) {
	sim := &deviceSim{id: 0x53}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)

	require.NoError(t, Config{}.Apply(context.Background(), dev))
	// nothing beyond the SDATAC sent during Init
	assert.Len(t, sim.writes, 1)
	assert.Equal(t, 1, sim.transfers)
}

func TestConfig_ApplyValidation(t *testing.T) {
	sim := &deviceSim{id: 0x53}
	dev, err := Init(context.Background(), sim.transport(t))
	require.NoError(t, err)

	tests := []struct {
		name  string
		given Config
	}{
		{"sample rate", Config{SampleRate: 300}},
		{"gain", Config{Channel1: &ChannelConfig{Gain: 5, Mux: "normal"}}},
		{"mux", Config{Channel2: &ChannelConfig{Gain: 6, Mux: "nope"}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Error(t, test.given.Apply(context.Background(), dev))
		})
	}
	// rejected configs must not reach the device
	assert.Len(t, sim.writes, 1)
}

func TestChannelConfig_MuxCaseInsensitive(t *testing.T) {
	settings, err := ChannelConfig{Gain: 4, Mux: "RLD_DRPM"}.settings()
	require.NoError(t, err)
	assert.Equal(t, Gain4, settings.Gain())
	assert.Equal(t, RLDDrpm, settings.Mux())
}
