package ads1292

import (
	"encoding/binary"
	"fmt"
	"math"
)

// full-scale reference: +-2400 mV over the 24-bit range
const fullScaleMillivolts = 2400.0

// LeadOffStatus is a read-only view over the lead-off status bits of a
// sample frame. Bits 7:5 are unused.
type LeadOffStatus struct {
	Status byte
}

// ClkDiv returns the clock divider selection bit.
func (s LeadOffStatus) ClkDiv() byte {
	return s.Status >> 6 & 1
}

// RLDStat reports the RLD lead-off status.
func (s LeadOffStatus) RLDStat() bool {
	return s.Status&(1<<4) > 0
}

// In2NOff reports whether the channel 2 negative electrode is off.
func (s LeadOffStatus) In2NOff() bool {
	return s.Status&(1<<3) > 0
}

// In2POff reports whether the channel 2 positive electrode is off.
func (s LeadOffStatus) In2POff() bool {
	return s.Status&(1<<2) > 0
}

// In1NOff reports whether the channel 1 negative electrode is off.
func (s LeadOffStatus) In1NOff() bool {
	return s.Status&(1<<1) > 0
}

// In1POff reports whether the channel 1 positive electrode is off.
func (s LeadOffStatus) In1POff() bool {
	return s.Status&1 > 0
}

func (s LeadOffStatus) String() string {
	return fmt.Sprintf("[clk_div: %d; rld_stat: %t; in2n_off: %t; in2p_off: %t; in1n_off: %t; in1p_off: %t]",
		s.ClkDiv(), s.RLDStat(), s.In2NOff(), s.In2POff(), s.In1NOff(), s.In1POff())
}

// GpioStatus is a read-only view over the GPIO status bits of a sample
// frame. Bits 7:4 are unused.
type GpioStatus struct {
	Status byte
}

// GpioC2 reports the GPIO 2 control bit.
func (s GpioStatus) GpioC2() bool {
	return s.Status&(1<<3) > 0
}

// GpioC1 reports the GPIO 1 control bit.
func (s GpioStatus) GpioC1() bool {
	return s.Status&(1<<2) > 0
}

// GpioD2 reports the GPIO 2 data bit.
func (s GpioStatus) GpioD2() bool {
	return s.Status&(1<<1) > 0
}

// GpioD1 reports the GPIO 1 data bit.
func (s GpioStatus) GpioD1() bool {
	return s.Status&1 > 0
}

func (s GpioStatus) String() string {
	return fmt.Sprintf("[gpio_c_2: %t; gpio_c_1: %t; gpio_d_2: %t; gpio_d_1: %t]",
		s.GpioC2(), s.GpioC1(), s.GpioD2(), s.GpioD1())
}

// ChannelData holds one 24-bit two's-complement sample, big-endian with the
// sign bit in the high bit of the first byte.
type ChannelData [3]byte

// ChannelDataFromInt32 encodes a sample value. Values must be in the 24-bit
// signed range; higher bits are discarded.
func ChannelDataFromInt32(v int32) ChannelData {
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(v<<8))
	return ChannelData{word[0], word[1], word[2]}
}

// ChannelDataFromMillivolts quantizes a voltage to the nearest 24-bit
// sample value.
func ChannelDataFromMillivolts(mv float64) ChannelData {
	return ChannelDataFromInt32(int32(math.Round(mv * (1 << 23) / fullScaleMillivolts)))
}

// Int32 returns the sign-extended sample value. The three bytes form the
// high-order 24 bits of a big-endian word which is arithmetic-shifted right
// by 8.
func (c ChannelData) Int32() int32 {
	return int32(binary.BigEndian.Uint32([]byte{c[0], c[1], c[2], 0})) >> 8
}

// Millivolts converts the sample to a voltage against the 2.4 V reference.
func (c ChannelData) Millivolts() float64 {
	return float64(c.Int32()) * fullScaleMillivolts / (1 << 23)
}

// Temperature converts the sample to degrees Celsius using the datasheet
// formula for the internal temperature sensor (page 19). The division
// truncates toward zero as the datasheet specifies.
func (c ChannelData) Temperature() int32 {
	microvolts := c.Int32()
	return (microvolts-145_300)/490 + 25
}

func (c ChannelData) String() string {
	return fmt.Sprintf("(%02x, %02x, %02x)", c[0], c[1], c[2])
}
