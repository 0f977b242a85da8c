package ads1292

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleFrame_Channels(t *testing.T) {
	frame := SampleFrame{Data: [FrameSize]byte{0x00, 0x00, 0x00, 0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC}}
	assert.Equal(t, ChannelData{0x12, 0x34, 0x56}, frame.Channel1())
	assert.Equal(t, ChannelData{0x78, 0x9A, 0xBC}, frame.Channel2())
}

func TestSampleFrame_StatusDecoding(t *testing.T) {
	frame := SampleFrame{Data: [FrameSize]byte{0b10110000, 0b01100000}}
	// (byte0 << 1) truncates to a byte before the or
	loff := frame.LeadOffStatus()
	assert.Equal(t, byte(0b01100000), loff.Status)
	assert.False(t, loff.RLDStat())
	assert.Equal(t, byte(1), loff.ClkDiv())

	gpio := frame.GpioStatus()
	assert.Equal(t, byte(0b011), gpio.Status)
	assert.False(t, gpio.GpioC2())
	assert.False(t, gpio.GpioC1())
	assert.True(t, gpio.GpioD2())
	assert.True(t, gpio.GpioD1())
}

func TestSampleFrame_LeadOffSpansTwoBytes(t *testing.T) {
	// low bit of byte 0 ends up as bit 1, high bit of byte 1 as bit 0
	frame := SampleFrame{Data: [FrameSize]byte{0b00000001, 0b10000000}}
	loff := frame.LeadOffStatus()
	assert.Equal(t, byte(0b00000011), loff.Status)
	assert.True(t, loff.In1POff())
	assert.True(t, loff.In1NOff())
}

func TestSampleFrame_ReservedByteIgnored(t *testing.T) {
	frame := SampleFrame{Data: [FrameSize]byte{0, 0, 0xFF, 0, 0, 0, 0, 0, 0}}
	assert.Equal(t, byte(0), frame.LeadOffStatus().Status)
	assert.Equal(t, byte(0), frame.GpioStatus().Status)
	assert.Equal(t, int32(0), frame.Channel1().Int32())
	assert.Equal(t, int32(0), frame.Channel2().Int32())
}
