package ads1292

import "fmt"

// FrameSize is the size in bytes of one acquisition block.
const FrameSize = 9

// SampleFrame is the fixed 9-byte block returned per acquisition: 16 status
// bits, a reserved byte, then two 24-bit channel samples.
type SampleFrame struct {
	Data [FrameSize]byte
}

// LeadOffStatus extracts the lead-off status spread over the first two
// bytes. The left shift deliberately truncates to a byte.
func (f SampleFrame) LeadOffStatus() LeadOffStatus {
	return LeadOffStatus{Status: f.Data[0]<<1 | f.Data[1]>>7}
}

// GpioStatus extracts the GPIO status from the second byte.
func (f SampleFrame) GpioStatus() GpioStatus {
	return GpioStatus{Status: f.Data[1] >> 5}
}

// Channel1 returns the channel 1 sample.
func (f SampleFrame) Channel1() ChannelData {
	return ChannelData{f.Data[3], f.Data[4], f.Data[5]}
}

// Channel2 returns the channel 2 sample.
func (f SampleFrame) Channel2() ChannelData {
	return ChannelData{f.Data[6], f.Data[7], f.Data[8]}
}

func (f SampleFrame) String() string {
	return fmt.Sprintf("[\n\tlead off:\t%s;\n\tgpio:\t%s;\n\tch1:\t%s;\n\tch2:\t%s\n]",
		f.LeadOffStatus(), f.GpioStatus(), f.Channel1(), f.Channel2())
}
