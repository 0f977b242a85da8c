package ads1292

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelData_Int32(t *testing.T) {
	tests := []struct {
		given    ChannelData
		expected int32
	}{
		{ChannelData{0x00, 0x00, 0x00}, 0},
		{ChannelData{0x00, 0x00, 0x01}, 1},
		{ChannelData{0x12, 0x34, 0x56}, 0x123456},
		{ChannelData{0x7F, 0xFF, 0xFF}, 1<<23 - 1},
		{ChannelData{0xFF, 0xFF, 0xFF}, -1},
		{ChannelData{0x80, 0x00, 0x00}, -(1 << 23)},
	}
	for _, test := range tests {
		t.Run(hex.EncodeToString(test.given[:]), func(t *testing.T) {
			assert.Equal(t, test.expected, test.given.Int32())
			assert.Equal(t, test.given, ChannelDataFromInt32(test.expected))
		})
	}
}

func TestChannelData_Int32RoundTrip(t *testing.T) {
	// sweep the 24-bit signed range, boundaries included
	for v := int32(-(1 << 23)); v <= 1<<23-1; v += 4099 {
		assert.Equal(t, v, ChannelDataFromInt32(v).Int32())
	}
	for _, v := range []int32{-(1 << 23), -1, 0, 1, 1<<23 - 1} {
		assert.Equal(t, v, ChannelDataFromInt32(v).Int32())
	}
}

func TestChannelData_Millivolts(t *testing.T) {
	tests := []struct {
		given    ChannelData
		expected float64
	}{
		{ChannelData{0x00, 0x00, 0x00}, 0},
		{ChannelData{0x40, 0x00, 0x00}, 1200},
		{ChannelData{0xC0, 0x00, 0x00}, -1200},
		{ChannelData{0x7F, 0xFF, 0xFF}, 2400.0 * (1<<23 - 1) / (1 << 23)},
		{ChannelData{0x80, 0x00, 0x00}, -2400},
	}
	for _, test := range tests {
		t.Run(hex.EncodeToString(test.given[:]), func(t *testing.T) {
			assert.Equal(t, test.expected, test.given.Millivolts())
		})
	}
}

func TestChannelData_MillivoltsIdempotentAfterQuantization(t *testing.T) {
	// arbitrary voltages are not recovered bit-exact, but once quantized to
	// the 24-bit domain the round trip is stable
	for _, mv := range []float64{0, 0.0001, 1.5, -1.5, 123.456789, -2399.9, 2399.9} {
		quantized := ChannelDataFromMillivolts(mv)
		assert.Equal(t, quantized, ChannelDataFromMillivolts(quantized.Millivolts()), "mv=%v", mv)
	}
}

func TestChannelData_Temperature(t *testing.T) {
	tests := []struct {
		given    int32
		expected int32
	}{
		{145_300, 25},
		{343_562, 429}, // (343562-145300)/490 truncates to 404
		{145_300 + 490, 26},
		{145_300 - 490, 24},
		{145_300 + 489, 25}, // truncation toward zero
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.given), func(t *testing.T) {
			assert.Equal(t, test.expected, ChannelDataFromInt32(test.given).Temperature())
		})
	}
}

func TestLeadOffStatus_Accessors(t *testing.T) {
	status := LeadOffStatus{Status: 0b01011010}
	assert.Equal(t, byte(1), status.ClkDiv())
	assert.True(t, status.RLDStat())
	assert.True(t, status.In2NOff())
	assert.False(t, status.In2POff())
	assert.True(t, status.In1NOff())
	assert.False(t, status.In1POff())
}

func TestGpioStatus_Accessors(t *testing.T) {
	status := GpioStatus{Status: 0b0101}
	assert.False(t, status.GpioC2())
	assert.True(t, status.GpioC1())
	assert.False(t, status.GpioD2())
	assert.True(t, status.GpioD1())
}
